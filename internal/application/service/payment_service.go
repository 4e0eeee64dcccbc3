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

// PaymentService handles payments and their cross-entity effect on invoices
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.InvoiceRepository
	publisher   events.Publisher
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	invoiceRepo repository.InvoiceRepository,
	publisher events.Publisher,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		invoiceRepo: invoiceRepo,
		publisher:   publisher,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	InvoiceID   uuid.UUID
	PaymentDate time.Time
	Amount      float64 // decimal currency
	Method      enum.PaymentMethod
	ReferenceNo *string
	Remarks     *string
}

// CreatePayment records a payment against an invoice, then adds the amount
// to the invoice and re-derives its pending amount and status
func (s *PaymentService) CreatePayment(ctx context.Context, userID uuid.UUID, input *CreatePaymentInput) (*entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	paymentDate := input.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}
	method := input.Method
	if method == "" {
		method = enum.PaymentMethodCash
	}

	payment := &entity.Payment{
		UserID:      userID,
		InvoiceID:   invoice.ID,
		InvoiceNo:   invoice.InvoiceNo,
		VendorName:  invoice.VendorName,
		PaymentDate: paymentDate,
		Amount:      derive.Paise(input.Amount),
		Method:      method,
		ReferenceNo: input.ReferenceNo,
		Remarks:     input.Remarks,
	}

	invoice.AmountReceived += payment.Amount
	derive.ReviseInvoice(invoice, time.Now())
	invoice.Items = nil
	if err := s.paymentRepo.CreateWithInvoice(ctx, payment, invoice); err != nil {
		return nil, err
	}

	now := time.Now()
	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityPayment,
		Action: events.ActionCreated,
		ID:     payment.ID,
		UserID: userID,
		At:     now,
	})
	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityInvoice,
		Action: events.ActionUpdated,
		ID:     invoice.ID,
		UserID: userID,
		At:     now,
	})
	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, userID, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// DeletePayment removes a payment and subtracts its amount from the linked
// invoice, restoring the invoice to its pre-payment state. If the invoice
// has since been deleted the payment is still removed.
func (s *PaymentService) DeletePayment(ctx context.Context, userID, id uuid.UUID) error {
	payment, err := s.GetPayment(ctx, userID, id)
	if err != nil {
		return err
	}

	now := time.Now()
	invoice, err := s.invoiceRepo.GetWithItems(ctx, payment.InvoiceID)
	if err != nil {
		return err
	}
	if invoice != nil {
		invoice.AmountReceived -= payment.Amount
		derive.ReviseInvoice(invoice, now)
		invoice.Items = nil
	}
	if err := s.paymentRepo.DeleteWithInvoice(ctx, payment, invoice); err != nil {
		return err
	}
	if invoice != nil {
		s.publisher.Publish(ctx, events.ChangeEvent{
			Entity: events.EntityInvoice,
			Action: events.ActionUpdated,
			ID:     invoice.ID,
			UserID: userID,
			At:     now,
		})
	}

	s.publisher.Publish(ctx, events.ChangeEvent{
		Entity: events.EntityPayment,
		Action: events.ActionDeleted,
		ID:     payment.ID,
		UserID: userID,
		At:     now,
	})
	return nil
}

// ListPayments lists payments with pagination
func (s *PaymentService) ListPayments(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Payment], error) {
	payments, total, err := s.paymentRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(payments, pag), nil
}

// ListInvoicePayments lists the payments recorded against one invoice
func (s *PaymentService) ListInvoicePayments(ctx context.Context, userID, invoiceID uuid.UUID) ([]entity.Payment, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.UserID != userID {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return s.paymentRepo.ListByInvoiceID(ctx, invoiceID)
}
