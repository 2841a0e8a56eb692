package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/availability"
	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/logger"
	"truckrental-backend/internal/repository"
	"truckrental-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	truckRepo   repository.TruckRepository
	userRepo    repository.UserRepository
	email       EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	truckRepo repository.TruckRepository,
	userRepo repository.UserRepository,
	email EmailService,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		truckRepo:   truckRepo,
		userRepo:    userRepo,
		email:       email,
	}
}

func (s *bookingService) Create(ctx context.Context, actor Actor, in CreateBookingInput) (*domain.Booking, error) {
	if in.StartDate.IsZero() || in.EndDate.IsZero() || !in.EndDate.After(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	truck, err := s.truckRepo.GetByID(ctx, in.TruckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.ListByTruck(ctx, truck.ID)
	if err != nil {
		return nil, err
	}
	if !availability.IsAvailable(truck, existing, in.StartDate, in.EndDate, uuid.Nil) {
		return nil, ErrTruckNotAvailable
	}

	booking := domain.NewBooking(truck.ID, actor.UserID, in.StartDate, in.EndDate)
	booking.TotalAmount = utils.PriceBooking(truck, in.StartDate, in.EndDate)
	booking.DepositAmount = in.DepositAmount
	booking.Notes = in.Notes
	booking.PickupLocation = in.PickupLocation
	booking.DropoffLocation = in.DropoffLocation
	booking.Purpose = in.Purpose

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTruckNotAvailable
		}
		return nil, err
	}

	s.notifyRequest(ctx, booking, truck)
	return booking, nil
}

func (s *bookingService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// List scopes results by role: renters see their own bookings, truck owners
// see bookings of their trucks, admins see everything.
func (s *bookingService) List(ctx context.Context, actor Actor, filter BookingListFilter) ([]domain.Booking, error) {
	var (
		bookings []domain.Booking
		err      error
	)
	switch {
	case actor.IsAdmin():
		if filter.Status != "" {
			return s.bookingRepo.ListByStatus(ctx, filter.Status)
		}
		// Admin listing without a status filter walks every state.
		for _, st := range []domain.BookingStatus{
			domain.BookingStatusPending, domain.BookingStatusConfirmed,
			domain.BookingStatusInProgress, domain.BookingStatusCompleted,
			domain.BookingStatusCancelled,
		} {
			batch, err := s.bookingRepo.ListByStatus(ctx, st)
			if err != nil {
				return nil, err
			}
			bookings = append(bookings, batch...)
		}
		return bookings, nil
	case actor.Role == domain.UserRoleTruckOwner:
		bookings, err = s.bookingRepo.ListByTruckOwner(ctx, actor.UserID)
	default:
		bookings, err = s.bookingRepo.ListByRenter(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}
	if filter.Status == "" {
		return bookings, nil
	}

	filtered := bookings[:0]
	for _, b := range bookings {
		if b.Status == filter.Status {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *bookingService) UpdateDates(ctx context.Context, actor Actor, id uuid.UUID, startDate, endDate time.Time, reprice bool) (*domain.Booking, error) {
	if startDate.IsZero() || endDate.IsZero() || !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}

	booking, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == domain.BookingStatusCompleted || booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrInvalidTransition
	}

	truck, err := s.truckRepo.GetByID(ctx, booking.TruckID)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.ListByTruck(ctx, truck.ID)
	if err != nil {
		return nil, err
	}
	// The booking's own range must not count against it.
	if !availability.IsAvailable(truck, existing, startDate, endDate, booking.ID) {
		return nil, ErrTruckNotAvailable
	}

	booking.StartDate = startDate
	booking.EndDate = endDate
	if reprice {
		booking.TotalAmount = utils.PriceBooking(truck, startDate, endDate)
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTruckNotAvailable
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) TransitionStatus(ctx context.Context, actor Actor, id uuid.UUID, next domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// Confirmation and completion are the owner's call; cancellation goes
	// through Cancel so a reason is recorded.
	if next == domain.BookingStatusCancelled {
		return s.Cancel(ctx, actor, id, "")
	}

	if err := booking.TransitionStatus(next, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if next == domain.BookingStatusConfirmed {
		s.notifyConfirmation(ctx, booking)
	}
	if next == domain.BookingStatusCompleted {
		s.notifyCompletion(ctx, booking)
	}
	return booking, nil
}

func (s *bookingService) TransitionPaymentStatus(ctx context.Context, actor Actor, id uuid.UUID, next domain.PaymentStatus) (*domain.Booking, error) {
	booking, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := booking.TransitionPaymentStatus(next, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) Cancel(ctx context.Context, actor Actor, id uuid.UUID, reason string) (*domain.Booking, error) {
	booking, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !booking.CanBeCancelled() {
		return nil, ErrCannotCancel
	}
	if err := booking.TransitionStatus(domain.BookingStatusCancelled, time.Now().UTC()); err != nil {
		return nil, err
	}
	booking.CancellationReason = reason
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyCancellation(ctx, booking, reason)
	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return s.bookingRepo.Delete(ctx, id)
}

// authorize allows the renter, the truck's owner, and admins.
func (s *bookingService) authorize(ctx context.Context, actor Actor, booking *domain.Booking) error {
	if actor.IsAdmin() || booking.RenterID == actor.UserID {
		return nil
	}
	truck, err := s.truckRepo.GetByID(ctx, booking.TruckID)
	if err != nil {
		return ErrUnauthorized
	}
	if truck.OwnerID != actor.UserID {
		return ErrUnauthorized
	}
	return nil
}

// Notifications are best effort; a mail failure never fails the booking.

func (s *bookingService) notifyRequest(ctx context.Context, booking *domain.Booking, truck *domain.Truck) {
	if s.email == nil {
		return
	}
	owner, err := s.userRepo.GetByID(ctx, truck.OwnerID)
	if err != nil {
		logger.Warn("booking request notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		logger.Warn("booking request notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	if err := s.email.SendBookingRequestNotification(ctx, owner.Email, renter.FullName(), truck.DisplayName(), booking.BookingNumber); err != nil {
		logger.Warn("booking request notification failed", "booking", booking.BookingNumber, "error", err)
	}
}

func (s *bookingService) notifyConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.email == nil {
		return
	}
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		logger.Warn("confirmation notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	truck, err := s.truckRepo.GetByID(ctx, booking.TruckID)
	if err != nil {
		logger.Warn("confirmation notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	if err := s.email.SendBookingConfirmationNotification(ctx, renter.Email, truck.DisplayName(), booking.BookingNumber); err != nil {
		logger.Warn("confirmation notification failed", "booking", booking.BookingNumber, "error", err)
	}
}

func (s *bookingService) notifyCancellation(ctx context.Context, booking *domain.Booking, reason string) {
	if s.email == nil {
		return
	}
	truck, err := s.truckRepo.GetByID(ctx, booking.TruckID)
	if err != nil {
		logger.Warn("cancellation notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	owner, err := s.userRepo.GetByID(ctx, truck.OwnerID)
	if err != nil {
		logger.Warn("cancellation notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	if err := s.email.SendBookingCancellationNotification(ctx, owner.Email, truck.DisplayName(), booking.BookingNumber, reason); err != nil {
		logger.Warn("cancellation notification failed", "booking", booking.BookingNumber, "error", err)
	}
}

func (s *bookingService) notifyCompletion(ctx context.Context, booking *domain.Booking) {
	if s.email == nil {
		return
	}
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		logger.Warn("completion notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	truck, err := s.truckRepo.GetByID(ctx, booking.TruckID)
	if err != nil {
		logger.Warn("completion notification skipped", "booking", booking.BookingNumber, "error", err)
		return
	}
	if err := s.email.SendBookingCompletionNotification(ctx, renter.Email, truck.DisplayName(), booking.BookingNumber, booking.TotalAmount); err != nil {
		logger.Warn("completion notification failed", "booking", booking.BookingNumber, "error", err)
	}
}
