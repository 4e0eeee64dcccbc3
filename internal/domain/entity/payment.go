package entity

import (
	"encoding/json"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents money received against an invoice. InvoiceNo and
// VendorName are denormalized snapshots so the record stays readable even if
// the invoice is later deleted.
type Payment struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	InvoiceNo   string             `gorm:"size:100" json:"invoice_no"`
	VendorName  string             `gorm:"size:255" json:"vendor_name"`
	PaymentDate time.Time          `gorm:"type:date;not null" json:"payment_date"`
	Amount      int64              `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Method      enum.PaymentMethod `gorm:"size:50;default:'Cash'" json:"method"`
	ReferenceNo *string            `gorm:"size:100" json:"reference_no,omitempty"`
	Remarks     *string            `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
