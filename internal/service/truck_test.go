package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

func newTruckFixture() (*MockTruckRepo, *MockBookingRepo, *MockTruckImageRepo, *MockTruckDocumentRepo, TruckService) {
	truckRepo := new(MockTruckRepo)
	bookingRepo := new(MockBookingRepo)
	imageRepo := new(MockTruckImageRepo)
	documentRepo := new(MockTruckDocumentRepo)
	svc := NewTruckService(truckRepo, bookingRepo, imageRepo, documentRepo)
	return truckRepo, bookingRepo, imageRepo, documentRepo, svc
}

func TestTruckService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("OwnerDefaultsToActor", func(t *testing.T) {
		truckRepo, _, _, _, svc := newTruckFixture()
		truckRepo.On("Create", ctx, mock.AnythingOfType("*domain.Truck")).Return(nil)

		truck := &domain.Truck{TruckNumber: "TRK-001", LicensePlate: "ABC-123", VIN: "1FTFW1ET5DFC12345"}
		err := svc.Create(ctx, Actor{UserID: ownerID, Role: domain.UserRoleTruckOwner}, truck)

		require.NoError(t, err)
		assert.Equal(t, ownerID, truck.OwnerID)
		assert.Equal(t, domain.TruckStatusAvailable, truck.Status)
		assert.NotEqual(t, uuid.Nil, truck.ID)
	})

	t.Run("RenterCannotCreate", func(t *testing.T) {
		truckRepo, _, _, _, svc := newTruckFixture()

		err := svc.Create(ctx, Actor{UserID: uuid.New(), Role: domain.UserRoleRenter}, &domain.Truck{})

		assert.ErrorIs(t, err, ErrUnauthorized)
		truckRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTruckService_Update_OwnershipGuard(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	truck := &domain.Truck{ID: uuid.New(), OwnerID: ownerID, Status: domain.TruckStatusAvailable}

	truckRepo, _, _, _, svc := newTruckFixture()
	truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)

	err := svc.Update(ctx, Actor{UserID: uuid.New(), Role: domain.UserRoleTruckOwner}, &domain.Truck{ID: truck.ID})
	assert.ErrorIs(t, err, ErrUnauthorized)

	truckRepo.On("Update", ctx, mock.AnythingOfType("*domain.Truck")).Return(nil)
	err = svc.Update(ctx, Actor{UserID: ownerID, Role: domain.UserRoleTruckOwner}, &domain.Truck{ID: truck.ID})
	assert.NoError(t, err)

	// Admins bypass the ownership check.
	err = svc.Update(ctx, Actor{UserID: uuid.New(), Role: domain.UserRoleAdmin}, &domain.Truck{ID: truck.ID})
	assert.NoError(t, err)
}

func TestTruckService_Search_DateWindow(t *testing.T) {
	ctx := context.Background()
	free := domain.Truck{ID: uuid.New(), Status: domain.TruckStatusAvailable}
	busy := domain.Truck{ID: uuid.New(), Status: domain.TruckStatusAvailable}

	truckRepo, bookingRepo, _, _, svc := newTruckFixture()
	filter := repository.TruckSearchFilter{TruckType: domain.TruckTypeBoxTruck}
	truckRepo.On("Search", ctx, filter).Return([]domain.Truck{free, busy}, nil)
	bookingRepo.On("ListByTruck", ctx, free.ID).Return([]domain.Booking{}, nil)
	bookingRepo.On("ListByTruck", ctx, busy.ID).Return([]domain.Booking{{
		ID:        uuid.New(),
		Status:    domain.BookingStatusConfirmed,
		StartDate: day(10),
		EndDate:   day(15),
	}}, nil)

	got, err := svc.Search(ctx, TruckSearchInput{
		Filter:    filter,
		StartDate: day(12),
		EndDate:   day(14),
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, free.ID, got[0].ID)
}

func TestTruckService_Search_NoDatesSkipsBookings(t *testing.T) {
	ctx := context.Background()
	trucks := []domain.Truck{
		{ID: uuid.New(), Status: domain.TruckStatusAvailable},
		{ID: uuid.New(), Status: domain.TruckStatusAvailable},
	}

	truckRepo, bookingRepo, _, _, svc := newTruckFixture()
	truckRepo.On("Search", ctx, repository.TruckSearchFilter{}).Return(trucks, nil)

	got, err := svc.Search(ctx, TruckSearchInput{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	bookingRepo.AssertNotCalled(t, "ListByTruck", mock.Anything, mock.Anything)
}

func TestTruckService_DeleteImage_ChecksTruckOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	truck := &domain.Truck{ID: uuid.New(), OwnerID: ownerID}
	img := &domain.TruckImage{ID: uuid.New(), TruckID: truck.ID}

	truckRepo, _, imageRepo, _, svc := newTruckFixture()
	imageRepo.On("GetByID", ctx, img.ID).Return(img, nil)
	truckRepo.On("GetByID", ctx, truck.ID).Return(truck, nil)

	err := svc.DeleteImage(ctx, Actor{UserID: uuid.New(), Role: domain.UserRoleTruckOwner}, img.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	imageRepo.On("Delete", ctx, img.ID).Return(nil)
	err = svc.DeleteImage(ctx, Actor{UserID: ownerID, Role: domain.UserRoleTruckOwner}, img.ID)
	assert.NoError(t, err)
}
