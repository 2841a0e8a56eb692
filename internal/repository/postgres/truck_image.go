package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type truckImageRepository struct {
	db *sql.DB
}

func NewTruckImageRepository(db *sql.DB) repository.TruckImageRepository {
	return &truckImageRepository{db: db}
}

const truckImageColumns = `id, truck_id, file_name, url, COALESCE(mime_type, ''), COALESCE(file_size, 0), display_order, is_primary, COALESCE(caption, ''), uploaded_at`

func scanTruckImage(row rowScanner) (*domain.TruckImage, error) {
	img := &domain.TruckImage{}
	err := row.Scan(&img.ID, &img.TruckID, &img.FileName, &img.URL, &img.MimeType,
		&img.FileSize, &img.DisplayOrder, &img.IsPrimary, &img.Caption, &img.UploadedAt)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *truckImageRepository) Create(ctx context.Context, img *domain.TruckImage) error {
	query := `INSERT INTO truck_images (id, truck_id, file_name, url, mime_type, file_size, display_order, is_primary, caption, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query, img.ID, img.TruckID, img.FileName, img.URL,
		img.MimeType, img.FileSize, img.DisplayOrder, img.IsPrimary, img.Caption, img.UploadedAt)
	return err
}

func (r *truckImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckImage, error) {
	query := `SELECT ` + truckImageColumns + ` FROM truck_images WHERE id = $1`
	return scanTruckImage(r.db.QueryRowContext(ctx, query, id))
}

func (r *truckImageRepository) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckImage, error) {
	query := `SELECT ` + truckImageColumns + ` FROM truck_images WHERE truck_id = $1 ORDER BY display_order ASC, uploaded_at ASC`
	rows, err := r.db.QueryContext(ctx, query, truckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.TruckImage
	for rows.Next() {
		img, err := scanTruckImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *truckImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM truck_images WHERE id = $1`, id)
	return err
}
