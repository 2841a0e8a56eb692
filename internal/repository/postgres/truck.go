package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type truckRepository struct {
	db *sql.DB
}

func NewTruckRepository(db *sql.DB) repository.TruckRepository {
	return &truckRepository{db: db}
}

const truckColumns = `id, truck_number, license_plate, vin, make, model, year, color, truck_type, fuel_type, transmission_type, daily_rate, odometer, fuel_capacity, max_payload, status, condition, last_inspection_date, next_inspection_date, insurance_expiry_date, registration_expiry_date, COALESCE(description, ''), COALESCE(notes, ''), COALESCE(location, ''), specifications, owner_id, company_id, created_at, updated_at`

func scanTruck(row rowScanner) (*domain.Truck, error) {
	t := &domain.Truck{}
	err := row.Scan(&t.ID, &t.TruckNumber, &t.LicensePlate, &t.VIN, &t.Make, &t.Model, &t.Year, &t.Color,
		&t.TruckType, &t.FuelType, &t.TransmissionType, &t.DailyRate, &t.Odometer, &t.FuelCapacity,
		&t.MaxPayload, &t.Status, &t.Condition, &t.LastInspectionDate, &t.NextInspectionDate,
		&t.InsuranceExpiryDate, &t.RegistrationExpiryDate, &t.Description, &t.Notes, &t.Location,
		&t.Specifications, &t.OwnerID, &t.CompanyID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *truckRepository) Create(ctx context.Context, t *domain.Truck) error {
	query := `INSERT INTO trucks (id, truck_number, license_plate, vin, make, model, year, color, truck_type, fuel_type, transmission_type, daily_rate, odometer, fuel_capacity, max_payload, status, condition, last_inspection_date, next_inspection_date, insurance_expiry_date, registration_expiry_date, description, notes, location, specifications, owner_id, company_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.TruckNumber, t.LicensePlate, t.VIN, t.Make, t.Model,
		t.Year, t.Color, t.TruckType, t.FuelType, t.TransmissionType, t.DailyRate, t.Odometer,
		t.FuelCapacity, t.MaxPayload, t.Status, t.Condition, t.LastInspectionDate, t.NextInspectionDate,
		t.InsuranceExpiryDate, t.RegistrationExpiryDate, t.Description, t.Notes, t.Location,
		t.Specifications, t.OwnerID, t.CompanyID, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *truckRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`
	return scanTruck(r.db.QueryRowContext(ctx, query, id))
}

func (r *truckRepository) Update(ctx context.Context, t *domain.Truck) error {
	query := `UPDATE trucks SET truck_number=$1, license_plate=$2, vin=$3, make=$4, model=$5, year=$6, color=$7, truck_type=$8, fuel_type=$9, transmission_type=$10, daily_rate=$11, odometer=$12, fuel_capacity=$13, max_payload=$14, status=$15, condition=$16, last_inspection_date=$17, next_inspection_date=$18, insurance_expiry_date=$19, registration_expiry_date=$20, description=$21, notes=$22, location=$23, specifications=$24, company_id=$25, updated_at=$26 WHERE id=$27`
	_, err := r.db.ExecContext(ctx, query, t.TruckNumber, t.LicensePlate, t.VIN, t.Make, t.Model, t.Year,
		t.Color, t.TruckType, t.FuelType, t.TransmissionType, t.DailyRate, t.Odometer, t.FuelCapacity,
		t.MaxPayload, t.Status, t.Condition, t.LastInspectionDate, t.NextInspectionDate,
		t.InsuranceExpiryDate, t.RegistrationExpiryDate, t.Description, t.Notes, t.Location,
		t.Specifications, t.CompanyID, time.Now(), t.ID)
	return err
}

// Delete removes the truck row. truck_images and truck_documents cascade at
// the schema level; bookings keep their rows and their truck_id reference.
func (r *truckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trucks WHERE id = $1`, id)
	return err
}

func (r *truckRepository) ListByStatus(ctx context.Context, status domain.TruckStatus) ([]domain.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *truckRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

// Search applies the optional criteria over available trucks, mirroring the
// public truck search surface. Date-range availability is layered on top by
// the service.
func (r *truckRepository) Search(ctx context.Context, filter repository.TruckSearchFilter) ([]domain.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE status = $1`
	args := []interface{}{domain.TruckStatusAvailable}
	argIdx := 2

	if filter.TruckType != "" {
		query += fmt.Sprintf(" AND truck_type = $%d", argIdx)
		args = append(args, filter.TruckType)
		argIdx++
	}
	if filter.MaxDailyRate > 0 {
		query += fmt.Sprintf(" AND daily_rate <= $%d", argIdx)
		args = append(args, filter.MaxDailyRate)
		argIdx++
	}
	if filter.MinPayload > 0 {
		query += fmt.Sprintf(" AND max_payload >= $%d", argIdx)
		args = append(args, filter.MinPayload)
		argIdx++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}

	query += " ORDER BY created_at DESC"
	return r.list(ctx, query, args...)
}

func (r *truckRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Truck, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trucks []domain.Truck
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, *t)
	}
	return trucks, rows.Err()
}
