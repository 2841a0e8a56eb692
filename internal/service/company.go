package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Create(ctx context.Context, actor Actor, c *domain.Company) error {
	if actor.Role != domain.UserRoleTruckOwner && !actor.IsAdmin() {
		return ErrUnauthorized
	}
	now := time.Now().UTC()
	c.ID = uuid.New()
	if c.Status == "" {
		c.Status = domain.CompanyStatusActive
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.companyRepo.Create(ctx, c)
}

func (s *companyService) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *companyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *companyService) Update(ctx context.Context, actor Actor, c *domain.Company) error {
	if actor.Role != domain.UserRoleTruckOwner && !actor.IsAdmin() {
		return ErrUnauthorized
	}
	existing, err := s.companyRepo.GetByID(ctx, c.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return s.companyRepo.Update(ctx, c)
}

func (s *companyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return s.companyRepo.Delete(ctx, id)
}
