package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

const companyColumns = `id, name, COALESCE(dot_number, ''), COALESCE(mc_number, ''), COALESCE(tax_id, ''), COALESCE(email, ''), COALESCE(phone, ''), COALESCE(website, ''), COALESCE(logo, ''), status, COALESCE(address, ''), COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip_code, ''), COALESCE(country, ''), created_at, updated_at`

func scanCompany(row rowScanner) (*domain.Company, error) {
	c := &domain.Company{}
	err := row.Scan(&c.ID, &c.Name, &c.DOTNumber, &c.MCNumber, &c.TaxID, &c.Email, &c.Phone,
		&c.Website, &c.Logo, &c.Status, &c.Address, &c.City, &c.State, &c.ZipCode, &c.Country,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (id, name, dot_number, mc_number, tax_id, email, phone, website, logo, status, address, city, state, zip_code, country, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, nullable(c.DOTNumber), nullable(c.MCNumber),
		c.TaxID, c.Email, c.Phone, c.Website, c.Logo, c.Status, c.Address, c.City, c.State,
		c.ZipCode, c.Country, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return scanCompany(r.db.QueryRowContext(ctx, query, id))
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies SET name=$1, dot_number=$2, mc_number=$3, tax_id=$4, email=$5, phone=$6, website=$7, logo=$8, status=$9, address=$10, city=$11, state=$12, zip_code=$13, country=$14, updated_at=$15 WHERE id=$16`
	_, err := r.db.ExecContext(ctx, query, c.Name, nullable(c.DOTNumber), nullable(c.MCNumber),
		c.TaxID, c.Email, c.Phone, c.Website, c.Logo, c.Status, c.Address, c.City, c.State,
		c.ZipCode, c.Country, time.Now(), c.ID)
	return err
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

// nullable maps "" to NULL for columns carrying a unique index, so empty
// values don't collide.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
