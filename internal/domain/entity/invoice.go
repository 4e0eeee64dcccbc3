package entity

import (
	"encoding/json"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents a vendor bill with its line items.
// TotalCost, PendingAmount, Status and DaysDelayed are derived fields and are
// recomputed from scratch on every mutation, never trusted from the caller.
type Invoice struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	InvoiceNo          string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	VendorID           *uuid.UUID         `gorm:"type:uuid;index" json:"vendor_id,omitempty"`
	VendorName         string             `gorm:"size:255" json:"vendor_name"`
	InvoiceDate        time.Time          `gorm:"type:date;not null" json:"invoice_date"`
	BuyerPONo          *string            `gorm:"size:100" json:"buyer_po_no,omitempty"`
	BuyerPODate        *time.Time         `gorm:"type:date" json:"buyer_po_date,omitempty"`
	TransportationCost int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	Discount           int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	TotalCost          int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	AmountReceived     int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	PendingAmount      int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	Status             enum.InvoiceStatus `gorm:"default:0" json:"status"`
	DueDate            time.Time          `gorm:"type:date;not null" json:"due_date"`
	DaysDelayed        int                `gorm:"default:0" json:"days_delayed"`
	SourceOrderID      *uuid.UUID         `gorm:"type:uuid;index" json:"source_order_id,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Vendor   *Vendor       `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	Payments []Payment     `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (inv Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		TransportationCost float64 `json:"transportation_cost"`
		Discount           float64 `json:"discount"`
		TotalCost          float64 `json:"total_cost"`
		AmountReceived     float64 `json:"amount_received"`
		PendingAmount      float64 `json:"pending_amount"`
	}{
		Alias:              Alias(inv),
		TransportationCost: float64(inv.TransportationCost) / 100,
		Discount:           float64(inv.Discount) / 100,
		TotalCost:          float64(inv.TotalCost) / 100,
		AmountReceived:     float64(inv.AmountReceived) / 100,
		PendingAmount:      float64(inv.PendingAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (inv *Invoice) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem represents a line item in an invoice
type InvoiceItem struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
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
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
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

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
