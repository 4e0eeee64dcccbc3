package repository

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice data operations.
// Header and line item writes always travel together so a partial write
// can never leave a headerless or itemless invoice behind.
type InvoiceRepository interface {
	// CreateWithItems persists the invoice header and its line items in a
	// single transaction
	CreateWithItems(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByInvoiceNo(ctx context.Context, userID uuid.UUID, invoiceNo string) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	// UpdateWithItems saves the invoice header and replaces its line items
	// wholesale in a single transaction
	UpdateWithItems(ctx context.Context, invoice *entity.Invoice, items []entity.InvoiceItem) error
	// Delete removes the invoice and its line items in a single transaction
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListAll returns every invoice owned by the user, items included,
	// for aggregation and export
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Invoice, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries.
// The Status filter matches the status as derived today, not the stored
// column, which goes stale as due dates pass.
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	VendorID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
