package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/availability"
	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type truckService struct {
	truckRepo    repository.TruckRepository
	bookingRepo  repository.BookingRepository
	imageRepo    repository.TruckImageRepository
	documentRepo repository.TruckDocumentRepository
}

func NewTruckService(
	truckRepo repository.TruckRepository,
	bookingRepo repository.BookingRepository,
	imageRepo repository.TruckImageRepository,
	documentRepo repository.TruckDocumentRepository,
) TruckService {
	return &truckService{
		truckRepo:    truckRepo,
		bookingRepo:  bookingRepo,
		imageRepo:    imageRepo,
		documentRepo: documentRepo,
	}
}

func (s *truckService) Create(ctx context.Context, actor Actor, t *domain.Truck) error {
	if actor.Role != domain.UserRoleTruckOwner && !actor.IsAdmin() {
		return ErrUnauthorized
	}
	now := time.Now().UTC()
	t.ID = uuid.New()
	if t.OwnerID == uuid.Nil {
		t.OwnerID = actor.UserID
	}
	if t.Status == "" {
		t.Status = domain.TruckStatusAvailable
	}
	if t.Condition == "" {
		t.Condition = domain.TruckConditionGood
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.truckRepo.Create(ctx, t)
}

func (s *truckService) Get(ctx context.Context, id uuid.UUID) (*domain.Truck, error) {
	t, err := s.truckRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *truckService) Update(ctx context.Context, actor Actor, t *domain.Truck) error {
	existing, err := s.ownedTruck(ctx, actor, t.ID)
	if err != nil {
		return err
	}
	t.OwnerID = existing.OwnerID
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now().UTC()
	return s.truckRepo.Update(ctx, t)
}

func (s *truckService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.ownedTruck(ctx, actor, id); err != nil {
		return err
	}
	return s.truckRepo.Delete(ctx, id)
}

func (s *truckService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Truck, error) {
	return s.truckRepo.ListByOwner(ctx, ownerID)
}

// Search narrows trucks by the repository filter and, when a date window is
// given, drops trucks with a blocking booking overlapping it. Result order is
// the repository's order.
func (s *truckService) Search(ctx context.Context, in TruckSearchInput) ([]domain.Truck, error) {
	trucks, err := s.truckRepo.Search(ctx, in.Filter)
	if err != nil {
		return nil, err
	}

	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return trucks, nil
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, ErrInvalidDateRange
	}

	bookingsByTruck := make(map[uuid.UUID][]domain.Booking, len(trucks))
	for _, t := range trucks {
		bookings, err := s.bookingRepo.ListByTruck(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		bookingsByTruck[t.ID] = bookings
	}

	return availability.FilterAvailable(trucks, bookingsByTruck, in.StartDate, in.EndDate), nil
}

func (s *truckService) AddImage(ctx context.Context, actor Actor, img *domain.TruckImage) error {
	if _, err := s.ownedTruck(ctx, actor, img.TruckID); err != nil {
		return err
	}
	img.ID = uuid.New()
	img.UploadedAt = time.Now().UTC()
	return s.imageRepo.Create(ctx, img)
}

func (s *truckService) ListImages(ctx context.Context, truckID uuid.UUID) ([]domain.TruckImage, error) {
	return s.imageRepo.ListByTruck(ctx, truckID)
}

func (s *truckService) DeleteImage(ctx context.Context, actor Actor, imageID uuid.UUID) error {
	img, err := s.imageRepo.GetByID(ctx, imageID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.ownedTruck(ctx, actor, img.TruckID); err != nil {
		return err
	}
	return s.imageRepo.Delete(ctx, imageID)
}

func (s *truckService) AddDocument(ctx context.Context, actor Actor, doc *domain.TruckDocument) error {
	if _, err := s.ownedTruck(ctx, actor, doc.TruckID); err != nil {
		return err
	}
	doc.ID = uuid.New()
	doc.UploadedAt = time.Now().UTC()
	return s.documentRepo.Create(ctx, doc)
}

// ListDocuments is restricted to the truck's owner and admins; documents
// carry registration and insurance details.
func (s *truckService) ListDocuments(ctx context.Context, actor Actor, truckID uuid.UUID) ([]domain.TruckDocument, error) {
	if _, err := s.ownedTruck(ctx, actor, truckID); err != nil {
		return nil, err
	}
	return s.documentRepo.ListByTruck(ctx, truckID)
}

func (s *truckService) DeleteDocument(ctx context.Context, actor Actor, documentID uuid.UUID) error {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if _, err := s.ownedTruck(ctx, actor, doc.TruckID); err != nil {
		return err
	}
	return s.documentRepo.Delete(ctx, documentID)
}

// ownedTruck loads the truck and verifies the actor owns it or is an admin.
func (s *truckService) ownedTruck(ctx context.Context, actor Actor, truckID uuid.UUID) (*domain.Truck, error) {
	t, err := s.truckRepo.GetByID(ctx, truckID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if t.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return t, nil
}
