package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type truckDocumentRepository struct {
	db *sql.DB
}

func NewTruckDocumentRepository(db *sql.DB) repository.TruckDocumentRepository {
	return &truckDocumentRepository{db: db}
}

const truckDocumentColumns = `id, truck_id, document_type, file_name, url, COALESCE(mime_type, ''), COALESCE(file_size, 0), expiry_date, COALESCE(document_number, ''), COALESCE(notes, ''), uploaded_at`

func scanTruckDocument(row rowScanner) (*domain.TruckDocument, error) {
	doc := &domain.TruckDocument{}
	err := row.Scan(&doc.ID, &doc.TruckID, &doc.DocumentType, &doc.FileName, &doc.URL,
		&doc.MimeType, &doc.FileSize, &doc.ExpiryDate, &doc.DocumentNumber, &doc.Notes, &doc.UploadedAt)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *truckDocumentRepository) Create(ctx context.Context, doc *domain.TruckDocument) error {
	query := `INSERT INTO truck_documents (id, truck_id, document_type, file_name, url, mime_type, file_size, expiry_date, document_number, notes, uploaded_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query, doc.ID, doc.TruckID, doc.DocumentType, doc.FileName,
		doc.URL, doc.MimeType, doc.FileSize, doc.ExpiryDate, doc.DocumentNumber, doc.Notes, doc.UploadedAt)
	return err
}

func (r *truckDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckDocument, error) {
	query := `SELECT ` + truckDocumentColumns + ` FROM truck_documents WHERE id = $1`
	return scanTruckDocument(r.db.QueryRowContext(ctx, query, id))
}

func (r *truckDocumentRepository) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckDocument, error) {
	query := `SELECT ` + truckDocumentColumns + ` FROM truck_documents WHERE truck_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.QueryContext(ctx, query, truckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []domain.TruckDocument
	for rows.Next() {
		doc, err := scanTruckDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

func (r *truckDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM truck_documents WHERE id = $1`, id)
	return err
}
