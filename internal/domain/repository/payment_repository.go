package repository

import (
	"context"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment data operations.
// A payment and the invoice it applies to are always written together.
type PaymentRepository interface {
	// CreateWithInvoice persists the payment and the adjusted invoice in a
	// single transaction
	CreateWithInvoice(ctx context.Context, payment *entity.Payment, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	// DeleteWithInvoice removes the payment and saves the adjusted invoice
	// in a single transaction. A nil invoice skips the invoice write.
	DeleteWithInvoice(ctx context.Context, payment *entity.Payment, invoice *entity.Invoice) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Payment, int64, error)
	ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error)
}
