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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, truck_id, renter_id, booking_number, start_date, end_date, total_amount, deposit_amount, status, payment_status, COALESCE(notes, ''), COALESCE(pickup_location, ''), COALESCE(dropoff_location, ''), COALESCE(purpose, ''), confirmed_at, cancelled_at, COALESCE(cancellation_reason, ''), created_at, updated_at`

// overlapCountQuery implements the inclusive overlap test
// (start_date <= requestedEnd AND end_date >= requestedStart) against
// blocking statuses. excludeID is uuid.Nil when creating.
const overlapCountQuery = `SELECT COUNT(id) FROM bookings
	WHERE truck_id = $1
	  AND status IN ('pending', 'confirmed', 'in_progress')
	  AND start_date <= $3
	  AND end_date >= $2
	  AND id <> $4`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var deposit domain.NullMoney
	err := row.Scan(&b.ID, &b.TruckID, &b.RenterID, &b.BookingNumber, &b.StartDate, &b.EndDate,
		&b.TotalAmount, &deposit, &b.Status, &b.PaymentStatus, &b.Notes, &b.PickupLocation,
		&b.DropoffLocation, &b.Purpose, &b.ConfirmedAt, &b.CancelledAt, &b.CancellationReason,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if deposit.Valid {
		b.DepositAmount = &deposit.Money
	}
	return b, nil
}

func depositArg(b *domain.Booking) domain.NullMoney {
	if b.DepositAmount == nil {
		return domain.NullMoney{}
	}
	return domain.NullMoney{Money: *b.DepositAmount, Valid: true}
}

// Create inserts the booking after re-running the overlap count inside the
// same transaction. The availability engine's earlier read and this write
// have a check-then-act gap; this re-check closes it at the storage boundary.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin booking insert: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, overlapCountQuery, b.TruckID, b.StartDate, b.EndDate, uuid.Nil).Scan(&count); err != nil {
		return fmt.Errorf("availability re-check: %w", err)
	}
	if count > 0 {
		return repository.ErrConflict
	}

	query := `INSERT INTO bookings (id, truck_id, renter_id, booking_number, start_date, end_date, total_amount, deposit_amount, status, payment_status, notes, pickup_location, dropoff_location, purpose, cancellation_reason, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.ExecContext(ctx, query, b.ID, b.TruckID, b.RenterID, b.BookingNumber, b.StartDate, b.EndDate,
		b.TotalAmount, depositArg(b), b.Status, b.PaymentStatus, b.Notes, b.PickupLocation,
		b.DropoffLocation, b.Purpose, b.CancellationReason, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return scanBooking(r.db.QueryRowContext(ctx, query, id))
}

// Update persists the booking under the same transactional overlap re-check
// as Create, skipping the booking's own row in the scan.
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin booking update: %w", err)
	}
	defer tx.Rollback()

	// Only a booking that still blocks can create a new conflict.
	if b.Blocks() {
		var count int
		if err := tx.QueryRowContext(ctx, overlapCountQuery, b.TruckID, b.StartDate, b.EndDate, b.ID).Scan(&count); err != nil {
			return fmt.Errorf("availability re-check: %w", err)
		}
		if count > 0 {
			return repository.ErrConflict
		}
	}

	query := `UPDATE bookings SET start_date=$1, end_date=$2, total_amount=$3, deposit_amount=$4, status=$5, payment_status=$6, notes=$7, pickup_location=$8, dropoff_location=$9, purpose=$10, confirmed_at=$11, cancelled_at=$12, cancellation_reason=$13, updated_at=$14 WHERE id=$15`
	_, err = tx.ExecContext(ctx, query, b.StartDate, b.EndDate, b.TotalAmount, depositArg(b), b.Status,
		b.PaymentStatus, b.Notes, b.PickupLocation, b.DropoffLocation, b.Purpose,
		b.ConfirmedAt, b.CancelledAt, b.CancellationReason, time.Now(), b.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}

func (r *bookingRepository) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE truck_id = $1 ORDER BY start_date DESC`
	return r.list(ctx, query, truckID)
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, renterID)
}

func (r *bookingRepository) ListByTruckOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT b.id, b.truck_id, b.renter_id, b.booking_number, b.start_date, b.end_date, b.total_amount, b.deposit_amount, b.status, b.payment_status, COALESCE(b.notes, ''), COALESCE(b.pickup_location, ''), COALESCE(b.dropoff_location, ''), COALESCE(b.purpose, ''), b.confirmed_at, b.cancelled_at, COALESCE(b.cancellation_reason, ''), b.created_at, b.updated_at
	          FROM bookings b JOIN trucks t ON t.id = b.truck_id
	          WHERE t.owner_id = $1 ORDER BY b.created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *bookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, status)
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, truckID uuid.UUID, startDate, endDate time.Time, excludeID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, overlapCountQuery, truckID, startDate, endDate, excludeID).Scan(&count)
	return count, err
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
