package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/derive"
	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/infrastructure/events"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceService handles invoice operations
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	vendorRepo   repository.VendorRepository
	orderRepo    repository.SaleOrderRepository
	sequenceRepo repository.SequenceRepository
	publisher    events.Publisher
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	vendorRepo repository.VendorRepository,
	orderRepo repository.SaleOrderRepository,
	sequenceRepo repository.SequenceRepository,
	publisher events.Publisher,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		vendorRepo:   vendorRepo,
		orderRepo:    orderRepo,
		sequenceRepo: sequenceRepo,
		publisher:    publisher,
	}
}

// CreateInvoiceInput represents the create invoice input. Derived fields
// (totals, pending, status, days delayed) are absent on purpose: they are
// always recomputed server-side.
type CreateInvoiceInput struct {
	VendorID           *uuid.UUID
	InvoiceDate        time.Time
	BuyerPONo          *string
	BuyerPODate        *time.Time
	TransportationCost float64 // decimal currency
	Discount           float64 // decimal currency
	DueDate            time.Time
	SourceOrderID      *uuid.UUID
	Items              []LineItemInput
}

// CreateInvoice creates an invoice, assigns a year-scoped invoice number and
// derives all computed fields. Amount received starts at zero; only payments
// move it.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID uuid.UUID, input *CreateInvoiceInput) (*entity.Invoice, error) {
	var vendorName string
	var paymentTermsDays = 30
	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil || vendor.UserID != userID {
			return nil, apperror.NewNotFoundError("Vendor")
		}
		vendorName = vendor.Name
		if vendor.PaymentTermsDays > 0 {
			paymentTermsDays = vendor.PaymentTermsDays
		}
	}

	if input.SourceOrderID != nil {
		order, err := s.orderRepo.GetByID(ctx, *input.SourceOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil || order.UserID != userID {
			return nil, apperror.NewNotFoundError("Sale order")
		}
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = invoiceDate.AddDate(0, 0, paymentTermsDays)
	}

	seq, err := s.sequenceRepo.Next(ctx, repository.DocTypeInvoice, invoiceDate.Year())
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		UserID:             userID,
		InvoiceNo:          derive.DocumentNumber(repository.DocTypeInvoice, invoiceDate.Year(), seq),
		VendorID:           input.VendorID,
		VendorName:         vendorName,
		InvoiceDate:        invoiceDate,
		BuyerPONo:          input.BuyerPONo,
		BuyerPODate:        input.BuyerPODate,
		TransportationCost: derive.Paise(input.TransportationCost),
		Discount:           derive.Paise(input.Discount),
		DueDate:            dueDate,
		SourceOrderID:      input.SourceOrderID,
		Items:              buildInvoiceItems(input.Items),
	}
	derive.ReviseInvoice(invoice, time.Now())

	items := invoice.Items
	invoice.Items = nil
	if err := s.invoiceRepo.CreateWithItems(ctx, invoice, items); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityInvoice,
		Action: events.ActionCreated,
		ID:     invoice.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its items, re-deriving delinquency
// against today so a stale stored status never reaches the caller
func (s *InvoiceService) GetInvoice(ctx context.Context, userID, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	derive.ReviseInvoice(invoice, time.Now())
	return invoice, nil
}

// UpdateInvoiceInput represents the update invoice input
type UpdateInvoiceInput struct {
	VendorID           *uuid.UUID
	InvoiceDate        time.Time
	BuyerPONo          *string
	BuyerPODate        *time.Time
	TransportationCost float64
	Discount           float64
	DueDate            time.Time
	Items              []LineItemInput
}

// UpdateInvoice replaces the editable fields and line items of an invoice
// and rederives everything computed. The invoice number and the accumulated
// amount received are immutable here.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, userID, id uuid.UUID, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	var vendorName string
	if input.VendorID != nil {
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil || vendor.UserID != userID {
			return nil, apperror.NewNotFoundError("Vendor")
		}
		vendorName = vendor.Name
	}

	invoice.VendorID = input.VendorID
	invoice.VendorName = vendorName
	if !input.InvoiceDate.IsZero() {
		invoice.InvoiceDate = input.InvoiceDate
	}
	invoice.BuyerPONo = input.BuyerPONo
	invoice.BuyerPODate = input.BuyerPODate
	invoice.TransportationCost = derive.Paise(input.TransportationCost)
	invoice.Discount = derive.Paise(input.Discount)
	if !input.DueDate.IsZero() {
		invoice.DueDate = input.DueDate
	}
	invoice.Items = buildInvoiceItems(input.Items)
	derive.ReviseInvoice(invoice, time.Now())

	items := invoice.Items
	invoice.Items = nil
	if err := s.invoiceRepo.UpdateWithItems(ctx, invoice, items); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityInvoice,
		Action: events.ActionUpdated,
		ID:     invoice.ID,
		UserID: userID,
		At:     time.Now(),
	})
	return s.invoiceRepo.GetWithItems(ctx, invoice.ID)
}

// DeleteInvoice deletes an invoice and its line items
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil || invoice.UserID != userID {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityInvoice,
		Action: events.ActionDeleted,
		ID:     id,
		UserID: userID,
		At:     time.Now(),
	})
	return nil
}

// ListInvoices lists invoices with filtering. Stored statuses may be stale
// relative to today, so every page entry is re-derived before it goes out.
func (s *InvoiceService) ListInvoices(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range invoices {
		derive.ReviseInvoice(&invoices[i], now)
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// ListAllInvoices returns every invoice with items, re-derived against
// today. Used by exports.
func (s *InvoiceService) ListAllInvoices(ctx context.Context, userID uuid.UUID) ([]entity.Invoice, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range invoices {
		derive.ReviseInvoice(&invoices[i], now)
	}
	return invoices, nil
}

func buildInvoiceItems(inputs []LineItemInput) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, entity.InvoiceItem{
			Particulars:   in.Particulars,
			OrderedQty:    in.OrderedQty,
			DispatchedQty: in.DispatchedQty,
			BasicAmount:   derive.Paise(in.BasicAmount),
			TaxPercent:    in.TaxPercent,
		})
	}
	return items
}
