package repository

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseRepository defines the interface for expense data operations
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	// ListByDateRange returns every expense owned by the user within
	// [from, to), for aggregation and export
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Expense, error)
}

// ExpenseFilterParams contains filtering parameters for expense queries
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.ExpenseCategory
	Status     *enum.ExpenseStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
