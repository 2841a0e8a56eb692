package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TruckStatus string

const (
	TruckStatusAvailable     TruckStatus = "available"
	TruckStatusRented        TruckStatus = "rented"
	TruckStatusInMaintenance TruckStatus = "in_maintenance"
	TruckStatusOutOfService  TruckStatus = "out_of_service"
	TruckStatusRetired       TruckStatus = "retired"
)

type TruckType string

const (
	TruckTypeSemiTruck    TruckType = "semi_truck"
	TruckTypeBoxTruck     TruckType = "box_truck"
	TruckTypeFlatbed      TruckType = "flatbed"
	TruckTypeTanker       TruckType = "tanker"
	TruckTypeRefrigerated TruckType = "refrigerated"
	TruckTypeDumpTruck    TruckType = "dump_truck"
	TruckTypeTowTruck     TruckType = "tow_truck"
	TruckTypeDeliveryVan  TruckType = "delivery_van"
)

type FuelType string

const (
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeGasoline FuelType = "gasoline"
	FuelTypeElectric FuelType = "electric"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeCNG      FuelType = "cng"
	FuelTypeLNG      FuelType = "lng"
)

type TransmissionType string

const (
	TransmissionTypeManual    TransmissionType = "manual"
	TransmissionTypeAutomatic TransmissionType = "automatic"
	TransmissionTypeAMT       TransmissionType = "amt"
)

type TruckCondition string

const (
	TruckConditionExcellent   TruckCondition = "excellent"
	TruckConditionGood        TruckCondition = "good"
	TruckConditionFair        TruckCondition = "fair"
	TruckConditionPoor        TruckCondition = "poor"
	TruckConditionNeedsRepair TruckCondition = "needs_repair"
)

type Truck struct {
	ID                     uuid.UUID        `json:"id"`
	TruckNumber            string           `json:"truckNumber"`
	LicensePlate           string           `json:"licensePlate"`
	VIN                    string           `json:"vin"`
	Make                   string           `json:"make"`
	Model                  string           `json:"model"`
	Year                   int              `json:"year"`
	Color                  string           `json:"color"`
	TruckType              TruckType        `json:"truckType"`
	FuelType               FuelType         `json:"fuelType"`
	TransmissionType       TransmissionType `json:"transmissionType"`
	DailyRate              Money            `json:"dailyRate"`
	Odometer               int              `json:"odometer"`
	FuelCapacity           float64          `json:"fuelCapacity"`
	MaxPayload             int              `json:"maxPayload"`
	Status                 TruckStatus      `json:"status"`
	Condition              TruckCondition   `json:"condition"`
	LastInspectionDate     *time.Time       `json:"lastInspectionDate,omitempty"`
	NextInspectionDate     *time.Time       `json:"nextInspectionDate,omitempty"`
	InsuranceExpiryDate    *time.Time       `json:"insuranceExpiryDate,omitempty"`
	RegistrationExpiryDate *time.Time       `json:"registrationExpiryDate,omitempty"`
	Description            string           `json:"description,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
	Location               string           `json:"location,omitempty"`
	Specifications         JSONMap          `json:"specifications,omitempty"`
	OwnerID                uuid.UUID        `json:"ownerId"`
	CompanyID              *uuid.UUID       `json:"companyId,omitempty"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// DisplayName is the short human-facing label used in notifications.
func (t *Truck) DisplayName() string {
	return fmt.Sprintf("%s - %s %s %d", t.TruckNumber, t.Make, t.Model, t.Year)
}

// TruckImage belongs to its truck and is removed with it (ON DELETE CASCADE);
// bookings are never cascaded.
type TruckImage struct {
	ID           uuid.UUID `json:"id"`
	TruckID      uuid.UUID `json:"truckId"`
	FileName     string    `json:"fileName"`
	URL          string    `json:"url"`
	MimeType     string    `json:"mimeType,omitempty"`
	FileSize     int64     `json:"fileSize,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	IsPrimary    bool      `json:"isPrimary"`
	Caption      string    `json:"caption,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type DocumentType string

const (
	DocumentTypeInsurance         DocumentType = "insurance"
	DocumentTypeRegistration      DocumentType = "registration"
	DocumentTypeInspection        DocumentType = "inspection"
	DocumentTypePermit            DocumentType = "permit"
	DocumentTypeLeaseAgreement    DocumentType = "lease_agreement"
	DocumentTypePurchaseAgreement DocumentType = "purchase_agreement"
	DocumentTypeMaintenanceRecord DocumentType = "maintenance_record"
	DocumentTypeDOTCertificate    DocumentType = "dot_certificate"
	DocumentTypeEmissionTest      DocumentType = "emission_test"
	DocumentTypeOther             DocumentType = "other"
)

type TruckDocument struct {
	ID             uuid.UUID    `json:"id"`
	TruckID        uuid.UUID    `json:"truckId"`
	DocumentType   DocumentType `json:"documentType"`
	FileName       string       `json:"fileName"`
	URL            string       `json:"url"`
	MimeType       string       `json:"mimeType,omitempty"`
	FileSize       int64        `json:"fileSize,omitempty"`
	ExpiryDate     *time.Time   `json:"expiryDate,omitempty"`
	DocumentNumber string       `json:"documentNumber,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	UploadedAt     time.Time    `json:"uploadedAt"`
}

// JSONMap maps a free-form specifications object onto a JSON column.
type JSONMap map[string]interface{}

func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONMap", src)
	}
	return json.Unmarshal(data, m)
}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
