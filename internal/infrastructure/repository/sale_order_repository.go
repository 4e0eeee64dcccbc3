package repository

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	domainRepo "github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleOrderRepository struct {
	db *gorm.DB
}

// NewSaleOrderRepository creates a new sale order repository
func NewSaleOrderRepository(db *gorm.DB) domainRepo.SaleOrderRepository {
	return &saleOrderRepository{db: db}
}

func (r *saleOrderRepository) CreateWithItems(ctx context.Context, order *entity.SaleOrder, items []entity.SaleOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].SaleOrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *saleOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error) {
	var order entity.SaleOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *saleOrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error) {
	var order entity.SaleOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *saleOrderRepository) UpdateWithItems(ctx context.Context, order *entity.SaleOrder, items []entity.SaleOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}
		// Replace line items wholesale
		if err := tx.Unscoped().Delete(&entity.SaleOrderItem{}, "sale_order_id = ?", order.ID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].SaleOrderID = order.ID
		}
		return tx.Create(&items).Error
	})
}

func (r *saleOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleOrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.SaleOrder{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *saleOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.SaleOrderItem{}, "sale_order_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.SaleOrder{}, "id = ?", id).Error
	})
}

func (r *saleOrderRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.SaleOrderFilterParams) ([]entity.SaleOrder, int64, error) {
	var orders []entity.SaleOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleOrder{}).Where("user_id = ?", userID)

	if params.Search != "" {
		query = query.Where("order_no ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.StartDate != nil {
		query = query.Where("order_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("order_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("order_date DESC, created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *saleOrderRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.SaleOrder, error) {
	var orders []entity.SaleOrder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("order_date ASC, created_at ASC").
		Find(&orders).Error
	return orders, err
}
