package domain

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleRenter     UserRole = "renter"
	UserRoleTruckOwner UserRole = "truck_owner"
	UserRoleAdmin      UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Phone        string     `json:"phone,omitempty"`
	ProfileImage string     `json:"profileImage,omitempty"`
	UserRole     UserRole   `json:"userRole"`
	Status       UserStatus `json:"status"`
	CompanyID    *uuid.UUID `json:"companyId,omitempty"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
