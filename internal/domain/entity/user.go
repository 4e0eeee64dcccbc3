package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the owning user of a set of financial records.
// Every other entity is scoped to exactly one user.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Password     string         `gorm:"size:255" json:"-"`
	BusinessName *string        `gorm:"size:255" json:"business_name,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendors    []Vendor    `gorm:"foreignKey:UserID" json:"-"`
	Customers  []Customer  `gorm:"foreignKey:UserID" json:"-"`
	SaleOrders []SaleOrder `gorm:"foreignKey:UserID" json:"-"`
	Invoices   []Invoice   `gorm:"foreignKey:UserID" json:"-"`
	Expenses   []Expense   `gorm:"foreignKey:UserID" json:"-"`
	Payments   []Payment   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
