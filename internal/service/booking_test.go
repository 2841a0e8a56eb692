package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"truckrental-backend/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func newBookingFixture() (*MockBookingRepo, *MockTruckRepo, *MockUserRepo, *MockEmailService, BookingService) {
	bookingRepo := new(MockBookingRepo)
	truckRepo := new(MockTruckRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := NewBookingService(bookingRepo, truckRepo, userRepo, emailSvc)
	return bookingRepo, truckRepo, userRepo, emailSvc, svc
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	renterID := uuid.New()
	rate, _ := domain.ParseMoney("100.00")
	truck := &domain.Truck{
		ID:        uuid.New(),
		Status:    domain.TruckStatusAvailable,
		DailyRate: rate,
		OwnerID:   ownerID,
	}
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	t.Run("Success", func(t *testing.T) {
		bookingRepo, truckRepo, userRepo, emailSvc, svc := newBookingFixture()
		truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)
		bookingRepo.On("ListByTruck", ctx, truck.ID).Return([]domain.Booking{}, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		userRepo.On("GetByID", ctx, ownerID).Return(&domain.User{ID: ownerID, Email: "owner@test.com", FirstName: "Olive", LastName: "Owner"}, nil)
		userRepo.On("GetByID", ctx, renterID).Return(&domain.User{ID: renterID, Email: "renter@test.com", FirstName: "Rita", LastName: "Renter"}, nil)
		emailSvc.On("SendBookingRequestNotification", ctx, "owner@test.com", "Rita Renter", mock.Anything, mock.Anything).Return(nil)

		res, err := svc.Create(ctx, actor, CreateBookingInput{
			TruckID:   truck.ID,
			StartDate: day(10),
			EndDate:   day(12),
		})

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, truck.ID, res.TruckID)
		assert.Equal(t, renterID, res.RenterID)
		assert.Equal(t, domain.BookingStatusPending, res.Status)
		assert.Equal(t, domain.PaymentStatusPending, res.PaymentStatus)
		// 3 inclusive days at 100.00.
		assert.Equal(t, "300.00", res.TotalAmount.String())
		assert.Contains(t, res.BookingNumber, "BK-")
	})

	t.Run("InvalidDateRange", func(t *testing.T) {
		_, _, _, _, svc := newBookingFixture()

		_, err := svc.Create(ctx, actor, CreateBookingInput{
			TruckID:   truck.ID,
			StartDate: day(12),
			EndDate:   day(10),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		// End equal to start is rejected at the boundary too.
		_, err = svc.Create(ctx, actor, CreateBookingInput{
			TruckID:   truck.ID,
			StartDate: day(10),
			EndDate:   day(10),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("OverlappingBooking", func(t *testing.T) {
		bookingRepo, truckRepo, _, _, svc := newBookingFixture()
		truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)
		bookingRepo.On("ListByTruck", ctx, truck.ID).Return([]domain.Booking{{
			ID:        uuid.New(),
			Status:    domain.BookingStatusConfirmed,
			StartDate: day(10),
			EndDate:   day(15),
		}}, nil)

		_, err := svc.Create(ctx, actor, CreateBookingInput{
			TruckID:   truck.ID,
			StartDate: day(12),
			EndDate:   day(20),
		})
		assert.ErrorIs(t, err, ErrTruckNotAvailable)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("TruckInMaintenance", func(t *testing.T) {
		bookingRepo, truckRepo, _, _, svc := newBookingFixture()
		unavailable := &domain.Truck{ID: truck.ID, Status: domain.TruckStatusInMaintenance, DailyRate: rate, OwnerID: ownerID}
		truckRepo.On("GetByID", ctx, truck.ID).Return(unavailable, nil)
		bookingRepo.On("ListByTruck", ctx, truck.ID).Return([]domain.Booking{}, nil)

		_, err := svc.Create(ctx, actor, CreateBookingInput{
			TruckID:   truck.ID,
			StartDate: day(10),
			EndDate:   day(12),
		})
		assert.ErrorIs(t, err, ErrTruckNotAvailable)
	})
}

func TestBookingService_UpdateDates_ExcludesSelf(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	rate, _ := domain.ParseMoney("100.00")
	truck := &domain.Truck{ID: uuid.New(), Status: domain.TruckStatusAvailable, DailyRate: rate}
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	booking := &domain.Booking{
		ID:          uuid.New(),
		TruckID:     truck.ID,
		RenterID:    renterID,
		StartDate:   day(10),
		EndDate:     day(15),
		TotalAmount: rate.Mul(6),
		Status:      domain.BookingStatusConfirmed,
	}

	bookingRepo, truckRepo, _, _, svc := newBookingFixture()
	bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
	truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)
	// The only blocking booking on the truck is the one being edited.
	bookingRepo.On("ListByTruck", ctx, truck.ID).Return([]domain.Booking{*booking}, nil)
	bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	res, err := svc.UpdateDates(ctx, actor, booking.ID, day(12), day(18), false)

	require.NoError(t, err)
	assert.Equal(t, day(12), res.StartDate)
	assert.Equal(t, day(18), res.EndDate)
	// No reprice requested: the original total stands.
	assert.Equal(t, rate.Mul(6), res.TotalAmount)
}

func TestBookingService_UpdateDates_Reprice(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	rate, _ := domain.ParseMoney("100.00")
	truck := &domain.Truck{ID: uuid.New(), Status: domain.TruckStatusAvailable, DailyRate: rate}
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	booking := &domain.Booking{
		ID:       uuid.New(),
		TruckID:  truck.ID,
		RenterID: renterID,
		Status:   domain.BookingStatusPending,
	}

	bookingRepo, truckRepo, _, _, svc := newBookingFixture()
	bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
	truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)
	bookingRepo.On("ListByTruck", ctx, truck.ID).Return([]domain.Booking{}, nil)
	bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	res, err := svc.UpdateDates(ctx, actor, booking.ID, day(10), day(12), true)

	require.NoError(t, err)
	assert.Equal(t, "300.00", res.TotalAmount.String())
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	ownerID := uuid.New()
	truck := &domain.Truck{ID: uuid.New(), OwnerID: ownerID}
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	t.Run("Success", func(t *testing.T) {
		booking := &domain.Booking{
			ID:       uuid.New(),
			TruckID:  truck.ID,
			RenterID: renterID,
			Status:   domain.BookingStatusConfirmed,
		}

		bookingRepo, truckRepo, userRepo, emailSvc, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)
		userRepo.On("GetByID", ctx, ownerID).Return(&domain.User{ID: ownerID, Email: "owner@test.com"}, nil)
		emailSvc.On("SendBookingCancellationNotification", ctx, "owner@test.com", mock.Anything, mock.Anything, "schedule change").Return(nil)

		res, err := svc.Cancel(ctx, actor, booking.ID, "schedule change")

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, res.Status)
		assert.Equal(t, "schedule change", res.CancellationReason)
		require.NotNil(t, res.CancelledAt)
	})

	t.Run("AlreadyInProgress", func(t *testing.T) {
		booking := &domain.Booking{
			ID:       uuid.New(),
			TruckID:  truck.ID,
			RenterID: renterID,
			Status:   domain.BookingStatusInProgress,
		}

		bookingRepo, _, _, _, svc := newBookingFixture()
		bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)

		_, err := svc.Cancel(ctx, actor, booking.ID, "")
		assert.ErrorIs(t, err, ErrCannotCancel)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_TransitionStatus_InvalidEdge(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	booking := &domain.Booking{
		ID:       uuid.New(),
		TruckID:  uuid.New(),
		RenterID: renterID,
		Status:   domain.BookingStatusPending,
	}
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	bookingRepo, _, _, _, svc := newBookingFixture()
	bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)

	_, err := svc.TransitionStatus(ctx, actor, booking.ID, domain.BookingStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_Get_Authorization(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	truck := &domain.Truck{ID: uuid.New(), OwnerID: ownerID}
	booking := &domain.Booking{ID: uuid.New(), TruckID: truck.ID, RenterID: renterID}

	bookingRepo, truckRepo, _, _, svc := newBookingFixture()
	bookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
	truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)

	_, err := svc.Get(ctx, Actor{UserID: renterID, Role: domain.UserRoleRenter}, booking.ID)
	assert.NoError(t, err, "renter can read own booking")

	_, err = svc.Get(ctx, Actor{UserID: ownerID, Role: domain.UserRoleTruckOwner}, booking.ID)
	assert.NoError(t, err, "truck owner can read bookings of own truck")

	_, err = svc.Get(ctx, Actor{UserID: uuid.New(), Role: domain.UserRoleAdmin}, booking.ID)
	assert.NoError(t, err, "admin can read any booking")

	_, err = svc.Get(ctx, Actor{UserID: strangerID, Role: domain.UserRoleRenter}, booking.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBookingService_List_FiltersByStatus(t *testing.T) {
	ctx := context.Background()
	renterID := uuid.New()
	actor := Actor{UserID: renterID, Role: domain.UserRoleRenter}

	bookingRepo, _, _, _, svc := newBookingFixture()
	bookingRepo.On("ListByRenter", ctx, renterID).Return([]domain.Booking{
		{ID: uuid.New(), Status: domain.BookingStatusPending},
		{ID: uuid.New(), Status: domain.BookingStatusConfirmed},
		{ID: uuid.New(), Status: domain.BookingStatusPending},
	}, nil)

	got, err := svc.List(ctx, actor, BookingListFilter{Status: domain.BookingStatusPending})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, domain.BookingStatusPending, b.Status)
	}
}
