package entity

import (
	"encoding/json"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaleOrder represents a customer order with its line items.
// Total is derived from the line items and never edited directly.
type SaleOrder struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	OrderNo      string               `gorm:"size:100;unique;not null" json:"order_no"`
	CustomerID   *uuid.UUID           `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName string               `gorm:"size:255" json:"customer_name"`
	OrderDate    time.Time            `gorm:"type:date;not null" json:"order_date"`
	BuyerPORef   *string              `gorm:"size:100" json:"buyer_po_ref,omitempty"`
	Status       enum.SaleOrderStatus `gorm:"default:0" json:"status"`
	Total        int64                `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	Notes        *string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleOrderItem `gorm:"foreignKey:SaleOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (o SaleOrder) MarshalJSON() ([]byte, error) {
	type Alias SaleOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale order
func (o *SaleOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleOrder model
func (SaleOrder) TableName() string {
	return "sale_orders"
}

// SaleOrderItem represents a line item in a sale order.
// BalanceQty, TaxAmount and LineTotal are derived fields.
type SaleOrderItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleOrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_order_id"`
	Particulars   string         `gorm:"size:255;not null" json:"particulars"`
	OrderedQty    float64        `gorm:"not null" json:"ordered_qty"`
	DispatchedQty float64        `gorm:"default:0" json:"dispatched_qty"`
	BalanceQty    float64        `gorm:"default:0" json:"balance_qty"`
	BasicAmount   int64          `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	TaxPercent    float64        `gorm:"type:decimal(5,2);default:0" json:"tax_percent"`
	TaxAmount     int64          `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	LineTotal     int64          `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	SaleOrder SaleOrder `gorm:"foreignKey:SaleOrderID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i SaleOrderItem) MarshalJSON() ([]byte, error) {
	type Alias SaleOrderItem
	return json.Marshal(&struct {
		Alias
		BasicAmount float64 `json:"basic_amount"`
		TaxAmount   float64 `json:"tax_amount"`
		LineTotal   float64 `json:"line_total"`
	}{
		Alias:       Alias(i),
		BasicAmount: float64(i.BasicAmount) / 100,
		TaxAmount:   float64(i.TaxAmount) / 100,
		LineTotal:   float64(i.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale order item
func (i *SaleOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleOrderItem model
func (SaleOrderItem) TableName() string {
	return "sale_order_items"
}
