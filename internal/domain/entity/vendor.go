package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a supplier the business purchases from and is billed by
type Vendor struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	ContactPerson    *string        `gorm:"size:255" json:"contact_person,omitempty"`
	Email            *string        `gorm:"size:255" json:"email,omitempty"`
	Phone            *string        `gorm:"size:50" json:"phone,omitempty"`
	GSTIN            *string        `gorm:"size:50;column:gstin" json:"gstin,omitempty"`
	PaymentTermsDays int            `gorm:"default:30" json:"payment_terms_days"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:VendorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
