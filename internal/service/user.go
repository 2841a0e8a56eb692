package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"truckrental-backend/internal/domain"
	"truckrental-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.User, error) {
	if actor.UserID != id && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) List(ctx context.Context, actor Actor) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return s.userRepo.List(ctx)
}

func (s *userService) Update(ctx context.Context, actor Actor, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	if actor.UserID != id && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	// Status changes are an admin concern.
	if in.Status != nil {
		if !actor.IsAdmin() {
			return nil, ErrUnauthorized
		}
		user.Status = *in.Status
	}
	if in.CompanyID != nil {
		user.CompanyID = in.CompanyID
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return s.userRepo.Delete(ctx, id)
}
