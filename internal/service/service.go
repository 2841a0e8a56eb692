package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("not authorized to perform this action")
	ErrInvalidDateRange  = errors.New("end date must be after start date")
	ErrTruckNotAvailable = errors.New("truck is not available for the selected dates")
	ErrCannotCancel      = errors.New("booking can no longer be cancelled")
	ErrEmailTaken        = errors.New("email is already registered")
)

// Actor identifies the authenticated caller on write paths. Handlers build it
// from the validated token; services never reach into ambient state for it.
type Actor struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == domain.UserRoleAdmin
}

// TokenPair carries the access/refresh tokens issued on login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RegisterInput struct {
	Email     string          `json:"email"`
	Password  string          `json:"password"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	UserRole  domain.UserRole `json:"userRole"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type UpdateUserInput struct {
	FirstName    *string            `json:"firstName"`
	LastName     *string            `json:"lastName"`
	Phone        *string            `json:"phone"`
	ProfileImage *string            `json:"profileImage"`
	Password     *string            `json:"password"`
	Status       *domain.UserStatus `json:"status"`
	CompanyID    *uuid.UUID         `json:"companyId"`
}

type UserService interface {
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, actor Actor) ([]domain.User, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type CompanyService interface {
	Create(ctx context.Context, actor Actor, c *domain.Company) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, actor Actor, c *domain.Company) error
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

// TruckSearchInput layers an optional date window over the repository filter.
// When both dates are set, results are narrowed to trucks with no blocking
// booking overlapping the window.
type TruckSearchInput struct {
	Filter    repository.TruckSearchFilter
	StartDate time.Time
	EndDate   time.Time
}

type TruckService interface {
	Create(ctx context.Context, actor Actor, t *domain.Truck) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Truck, error)
	Update(ctx context.Context, actor Actor, t *domain.Truck) error
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Truck, error)
	Search(ctx context.Context, in TruckSearchInput) ([]domain.Truck, error)

	AddImage(ctx context.Context, actor Actor, img *domain.TruckImage) error
	ListImages(ctx context.Context, truckID uuid.UUID) ([]domain.TruckImage, error)
	DeleteImage(ctx context.Context, actor Actor, imageID uuid.UUID) error
	AddDocument(ctx context.Context, actor Actor, doc *domain.TruckDocument) error
	ListDocuments(ctx context.Context, actor Actor, truckID uuid.UUID) ([]domain.TruckDocument, error)
	DeleteDocument(ctx context.Context, actor Actor, documentID uuid.UUID) error
}

type CreateBookingInput struct {
	TruckID         uuid.UUID     `json:"truckId"`
	StartDate       time.Time     `json:"startDate"`
	EndDate         time.Time     `json:"endDate"`
	DepositAmount   *domain.Money `json:"depositAmount"`
	Notes           string        `json:"notes"`
	PickupLocation  string        `json:"pickupLocation"`
	DropoffLocation string        `json:"dropoffLocation"`
	Purpose         string        `json:"purpose"`
}

type BookingListFilter struct {
	Status domain.BookingStatus
}

type BookingService interface {
	Create(ctx context.Context, actor Actor, in CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, actor Actor, filter BookingListFilter) ([]domain.Booking, error)
	// UpdateDates moves the booked window, re-running the availability check
	// with the booking itself excluded. Reprice recomputes the total from the
	// truck's current daily rate.
	UpdateDates(ctx context.Context, actor Actor, id uuid.UUID, startDate, endDate time.Time, reprice bool) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, actor Actor, id uuid.UUID, next domain.BookingStatus) (*domain.Booking, error)
	TransitionPaymentStatus(ctx context.Context, actor Actor, id uuid.UUID, next domain.PaymentStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID, reason string) (*domain.Booking, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, truckName, bookingNumber string) error
	SendBookingConfirmationNotification(ctx context.Context, renterEmail, truckName, bookingNumber string) error
	SendBookingCancellationNotification(ctx context.Context, email, truckName, bookingNumber, reason string) error
	SendBookingCompletionNotification(ctx context.Context, renterEmail, truckName, bookingNumber string, total domain.Money) error
	SendInspectionReminderNotification(ctx context.Context, ownerEmail, ownerName, truckName string, dueDate time.Time) error
}
