package domain

import (
	"time"

	"github.com/google/uuid"
)

type CompanyStatus string

const (
	CompanyStatusActive    CompanyStatus = "active"
	CompanyStatusInactive  CompanyStatus = "inactive"
	CompanyStatusSuspended CompanyStatus = "suspended"
)

type Company struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	DOTNumber string        `json:"dotNumber,omitempty"`
	MCNumber  string        `json:"mcNumber,omitempty"`
	TaxID     string        `json:"taxId,omitempty"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Website   string        `json:"website,omitempty"`
	Logo      string        `json:"logo,omitempty"`
	Status    CompanyStatus `json:"status"`
	Address   string        `json:"address,omitempty"`
	City      string        `json:"city,omitempty"`
	State     string        `json:"state,omitempty"`
	ZipCode   string        `json:"zipCode,omitempty"`
	Country   string        `json:"country,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
