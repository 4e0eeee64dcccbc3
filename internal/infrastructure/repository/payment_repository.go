package repository

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	domainRepo "github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateWithInvoice(ctx context.Context, payment *entity.Payment, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Omit("Items").Save(invoice).Error
	})
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) DeleteWithInvoice(ctx context.Context, payment *entity.Payment, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Payment{}, "id = ?", payment.ID).Error; err != nil {
			return err
		}
		if invoice == nil {
			return nil
		}
		return tx.Omit("Items").Save(invoice).Error
	})
}

func (r *paymentRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Payment, int64, error) {
	var payments []entity.Payment
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Payment{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("payment_date DESC, created_at DESC").
		Find(&payments).Error

	return payments, total, err
}

func (r *paymentRepository) ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date ASC").
		Find(&payments).Error
	return payments, err
}
