package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/derive"
	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/infrastructure/events"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	publisher   events.Publisher
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, publisher events.Publisher) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, publisher: publisher}
}

// ExpenseInput represents the expense create/update input
type ExpenseInput struct {
	Date          time.Time
	Category      enum.ExpenseCategory
	Description   string
	Amount        float64 // decimal currency
	PaymentMode   enum.PaymentMode
	Status        enum.ExpenseStatus
	AttachmentRef *string
}

// CreateExpense creates a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid expense category")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	status := input.Status
	if status == "" {
		status = enum.ExpenseStatusPending
	}
	mode := input.PaymentMode
	if mode == "" {
		mode = enum.PaymentModeCash
	}

	expense := &entity.Expense{
		UserID:        userID,
		Date:          date,
		Category:      input.Category,
		Description:   input.Description,
		Amount:        derive.Paise(input.Amount),
		PaymentMode:   mode,
		Status:        status,
		AttachmentRef: input.AttachmentRef,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityExpense,
		Action: events.ActionCreated,
		ID:     expense.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return expense, nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil || expense.UserID != userID {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// UpdateExpense updates an existing expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid expense category")
	}

	if !input.Date.IsZero() {
		expense.Date = input.Date
	}
	expense.Category = input.Category
	expense.Description = input.Description
	expense.Amount = derive.Paise(input.Amount)
	if input.PaymentMode != "" {
		expense.PaymentMode = input.PaymentMode
	}
	if input.Status != "" {
		expense.Status = input.Status
	}
	expense.AttachmentRef = input.AttachmentRef

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityExpense,
		Action: events.ActionUpdated,
		ID:     expense.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return expense, nil
}

// DeleteExpense deletes an expense
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	expense, err := s.GetExpense(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.expenseRepo.Delete(ctx, expense.ID); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityExpense,
		Action: events.ActionDeleted,
		ID:     expense.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// ListExpenses lists expenses with filtering
func (s *ExpenseService) ListExpenses(ctx context.Context, userID uuid.UUID, params *repository.ExpenseFilterParams) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, total, err := s.expenseRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(expenses, pag), nil
}

// ListExpensesByRange returns every expense dated within [from, to). Used by
// exports and the monthly summary.
func (s *ExpenseService) ListExpensesByRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	return s.expenseRepo.ListByDateRange(ctx, userID, from, to)
}

// MonthlyExpenseSummary is the aggregate view of one month's expenses
type MonthlyExpenseSummary struct {
	Year       int                `json:"year"`
	Month      time.Month         `json:"month"`
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	ByCategory map[string]float64 `json:"by_category"`
}

// MonthlySummary aggregates the expenses of one calendar month
func (s *ExpenseService) MonthlySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*MonthlyExpenseSummary, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)

	expenses, err := s.expenseRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := &MonthlyExpenseSummary{
		Year:       year,
		Month:      month,
		Count:      len(expenses),
		ByCategory: make(map[string]float64),
	}

	var total int64
	byCategory := make(map[string]int64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[string(e.Category)] += e.Amount
	}
	summary.Total = derive.Rupees(total)
	for cat, amount := range byCategory {
		summary.ByCategory[cat] = derive.Rupees(amount)
	}
	return summary, nil
}
