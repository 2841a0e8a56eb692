package postgres

import (
	"database/sql"

	"truckrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.CompanyRepository
	repository.TruckRepository
	repository.BookingRepository
	repository.TruckImageRepository
	repository.TruckDocumentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		CompanyRepository:       NewCompanyRepository(db),
		TruckRepository:         NewTruckRepository(db),
		BookingRepository:       NewBookingRepository(db),
		TruckImageRepository:    NewTruckImageRepository(db),
		TruckDocumentRepository: NewTruckDocumentRepository(db),
	}
}
