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

// SaleOrderService handles sale order operations
type SaleOrderService struct {
	orderRepo    repository.SaleOrderRepository
	customerRepo repository.CustomerRepository
	sequenceRepo repository.SequenceRepository
	publisher    events.Publisher
}

// NewSaleOrderService creates a new sale order service
func NewSaleOrderService(
	orderRepo repository.SaleOrderRepository,
	customerRepo repository.CustomerRepository,
	sequenceRepo repository.SequenceRepository,
	publisher events.Publisher,
) *SaleOrderService {
	return &SaleOrderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		sequenceRepo: sequenceRepo,
		publisher:    publisher,
	}
}

// LineItemInput represents a line item in a document input. Only editable
// fields appear here: tax amount, line total and balance quantity are always
// recomputed server-side.
type LineItemInput struct {
	Particulars   string
	OrderedQty    float64
	DispatchedQty float64
	BasicAmount   float64 // decimal currency, converted to paise internally
	TaxPercent    float64
}

// CreateSaleOrderInput represents the create sale order input
type CreateSaleOrderInput struct {
	CustomerID *uuid.UUID
	OrderDate  time.Time
	BuyerPORef *string
	Notes      *string
	Items      []LineItemInput
}

// CreateSaleOrder creates a sale order, assigns a year-scoped order number
// and derives all computed fields
func (s *SaleOrderService) CreateSaleOrder(ctx context.Context, userID uuid.UUID, input *CreateSaleOrderInput) (*entity.SaleOrder, error) {
	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.UserID != userID {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	seq, err := s.sequenceRepo.Next(ctx, repository.DocTypeSaleOrder, orderDate.Year())
	if err != nil {
		return nil, err
	}

	order := &entity.SaleOrder{
		UserID:       userID,
		OrderNo:      derive.DocumentNumber(repository.DocTypeSaleOrder, orderDate.Year(), seq),
		CustomerID:   input.CustomerID,
		CustomerName: customerName,
		OrderDate:    orderDate,
		BuyerPORef:   input.BuyerPORef,
		Status:       enum.SaleOrderStatusDraft,
		Notes:        input.Notes,
		Items:        buildSaleOrderItems(input.Items),
	}
	derive.ReviseSaleOrder(order)

	items := order.Items
	order.Items = nil
	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntitySaleOrder,
		Action: events.ActionCreated,
		ID:     order.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// GetSaleOrder retrieves a sale order with its items
func (s *SaleOrderService) GetSaleOrder(ctx context.Context, userID, id uuid.UUID) (*entity.SaleOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.NewNotFoundError("Sale order")
	}
	return order, nil
}

// UpdateSaleOrderInput represents the update sale order input
type UpdateSaleOrderInput struct {
	CustomerID *uuid.UUID
	OrderDate  time.Time
	BuyerPORef *string
	Notes      *string
	Status     *enum.SaleOrderStatus
	Items      []LineItemInput
}

// UpdateSaleOrder replaces the editable fields and line items of a sale order
// and rederives everything computed. The order number is immutable.
func (s *SaleOrderService) UpdateSaleOrder(ctx context.Context, userID, id uuid.UUID, input *UpdateSaleOrderInput) (*entity.SaleOrder, error) {
	order, err := s.GetSaleOrder(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || customer.UserID != userID {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	order.CustomerID = input.CustomerID
	order.CustomerName = customerName
	if !input.OrderDate.IsZero() {
		order.OrderDate = input.OrderDate
	}
	order.BuyerPORef = input.BuyerPORef
	order.Notes = input.Notes
	if input.Status != nil {
		order.Status = *input.Status
	}
	order.Items = buildSaleOrderItems(input.Items)
	derive.ReviseSaleOrder(order)

	items := order.Items
	order.Items = nil
	if err := s.orderRepo.UpdateWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntitySaleOrder,
		Action: events.ActionUpdated,
		ID:     order.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// UpdateStatus moves a sale order through its fulfilment lifecycle
func (s *SaleOrderService) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status enum.SaleOrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil || order.UserID != userID {
		return apperror.NewNotFoundError("Sale order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntitySaleOrder,
		Action: events.ActionUpdated,
		ID:     id,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// DeleteSaleOrder deletes a sale order and its line items
func (s *SaleOrderService) DeleteSaleOrder(ctx context.Context, userID, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil || order.UserID != userID {
		return apperror.NewNotFoundError("Sale order")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntitySaleOrder,
		Action: events.ActionDeleted,
		ID:     id,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// ListSaleOrders lists sale orders with filtering
func (s *SaleOrderService) ListSaleOrders(ctx context.Context, userID uuid.UUID, params *repository.SaleOrderFilterParams) (*pagination.PaginatedResult[entity.SaleOrder], error) {
	orders, total, err := s.orderRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

func buildSaleOrderItems(inputs []LineItemInput) []entity.SaleOrderItem {
	items := make([]entity.SaleOrderItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.SaleOrderItem{
			Particulars:   in.Particulars,
			OrderedQty:    in.OrderedQty,
			DispatchedQty: in.DispatchedQty,
			BasicAmount:   derive.Paise(in.BasicAmount),
			TaxPercent:    in.TaxPercent,
		})
	}
	return items
}
