package entity

import (
	"encoding/json"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense represents a daily business expense. It carries no derived fields
// and does not participate in cross-entity recomputation.
type Expense struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Date          time.Time            `gorm:"type:date;not null" json:"date"`
	Category      enum.ExpenseCategory `gorm:"size:50;not null" json:"category"`
	Description   string               `gorm:"type:text" json:"description"`
	Amount        int64                `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	PaymentMode   enum.PaymentMode     `gorm:"size:50;default:'Cash'" json:"payment_mode"`
	Status        enum.ExpenseStatus   `gorm:"size:20;default:'Pending'" json:"status"`
	AttachmentRef *string              `gorm:"size:255" json:"attachment_ref,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
