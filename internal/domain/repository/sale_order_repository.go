package repository

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// SaleOrderRepository defines the interface for sale order data operations.
// As with invoices, header and line item writes are transactional.
type SaleOrderRepository interface {
	// CreateWithItems persists the order header and its line items in a
	// single transaction
	CreateWithItems(ctx context.Context, order *entity.SaleOrder, items []entity.SaleOrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error)
	// UpdateWithItems saves the order header and replaces its line items
	// wholesale in a single transaction
	UpdateWithItems(ctx context.Context, order *entity.SaleOrder, items []entity.SaleOrderItem) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleOrderStatus) error
	// Delete removes the order and its line items in a single transaction
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *SaleOrderFilterParams) ([]entity.SaleOrder, int64, error)
	// ListAll returns every sale order owned by the user, items included,
	// for aggregation and export
	ListAll(ctx context.Context, userID uuid.UUID) ([]entity.SaleOrder, error)
}

// SaleOrderFilterParams contains filtering parameters for sale order queries
type SaleOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.SaleOrderStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
