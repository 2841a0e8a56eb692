package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
)

// ErrConflict is returned by booking writes when the transactional
// availability re-check finds an overlapping blocking booking.
var ErrConflict = errors.New("booking dates conflict with an existing booking")

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TruckSearchFilter narrows truck search results. Zero values mean
// "no constraint".
type TruckSearchFilter struct {
	TruckType    domain.TruckType
	MaxDailyRate domain.Money
	MinPayload   int
	Location     string
}

type TruckRepository interface {
	Create(ctx context.Context, t *domain.Truck) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Truck, error)
	Update(ctx context.Context, t *domain.Truck) error
	// Delete removes the truck; images and documents cascade at the
	// schema level, bookings are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStatus(ctx context.Context, status domain.TruckStatus) ([]domain.Truck, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Truck, error)
	Search(ctx context.Context, filter TruckSearchFilter) ([]domain.Truck, error)
}

type BookingRepository interface {
	// Create inserts the booking after re-verifying, inside the same
	// transaction, that no blocking booking overlaps its range. Returns
	// ErrConflict when the re-check fails.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	// Update persists the booking under the same transactional overlap
	// re-check as Create, excluding the booking itself from the scan.
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.Booking, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error)
	ListByTruckOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	// CountOverlapping counts blocking bookings of truckID intersecting
	// [startDate, endDate], skipping excludeID when non-nil.
	CountOverlapping(ctx context.Context, truckID uuid.UUID, startDate, endDate time.Time, excludeID uuid.UUID) (int, error)
}

type TruckImageRepository interface {
	Create(ctx context.Context, img *domain.TruckImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckImage, error)
	ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TruckDocumentRepository interface {
	Create(ctx context.Context, doc *domain.TruckDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckDocument, error)
	ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
