package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTruckRepo struct{ mock.Mock }

func (m *MockTruckRepo) Create(ctx context.Context, t *domain.Truck) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTruckRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Truck), args.Error(1)
}

func (m *MockTruckRepo) Update(ctx context.Context, t *domain.Truck) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTruckRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTruckRepo) ListByStatus(ctx context.Context, status domain.TruckStatus) ([]domain.Truck, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Truck, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}

func (m *MockTruckRepo) Search(ctx context.Context, filter repository.TruckSearchFilter) ([]domain.Truck, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Truck), args.Error(1)
}

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingRepo) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByTruckOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) CountOverlapping(ctx context.Context, truckID uuid.UUID, startDate, endDate time.Time, excludeID uuid.UUID) (int, error) {
	args := m.Called(ctx, truckID, startDate, endDate, excludeID)
	return args.Int(0), args.Error(1)
}

type MockTruckImageRepo struct{ mock.Mock }

func (m *MockTruckImageRepo) Create(ctx context.Context, img *domain.TruckImage) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MockTruckImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TruckImage), args.Error(1)
}

func (m *MockTruckImageRepo) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckImage, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TruckImage), args.Error(1)
}

func (m *MockTruckImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTruckDocumentRepo struct{ mock.Mock }

func (m *MockTruckDocumentRepo) Create(ctx context.Context, doc *domain.TruckDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockTruckDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TruckDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TruckDocument), args.Error(1)
}

func (m *MockTruckDocumentRepo) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]domain.TruckDocument, error) {
	args := m.Called(ctx, truckID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TruckDocument), args.Error(1)
}

func (m *MockTruckDocumentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, truckName, bookingNumber string) error {
	return m.Called(ctx, ownerEmail, renterName, truckName, bookingNumber).Error(0)
}

func (m *MockEmailService) SendBookingConfirmationNotification(ctx context.Context, renterEmail, truckName, bookingNumber string) error {
	return m.Called(ctx, renterEmail, truckName, bookingNumber).Error(0)
}

func (m *MockEmailService) SendBookingCancellationNotification(ctx context.Context, email, truckName, bookingNumber, reason string) error {
	return m.Called(ctx, email, truckName, bookingNumber, reason).Error(0)
}

func (m *MockEmailService) SendBookingCompletionNotification(ctx context.Context, renterEmail, truckName, bookingNumber string, total domain.Money) error {
	return m.Called(ctx, renterEmail, truckName, bookingNumber, total).Error(0)
}

func (m *MockEmailService) SendInspectionReminderNotification(ctx context.Context, ownerEmail, ownerName, truckName string, dueDate time.Time) error {
	return m.Called(ctx, ownerEmail, ownerName, truckName, dueDate).Error(0)
}
