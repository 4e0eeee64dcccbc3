package service

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/google/uuid"
)

func newSaleOrderFixture(store *memStore) *SaleOrderService {
	return NewSaleOrderService(
		&fakeSaleOrderRepo{store}, &fakeCustomerRepo{store},
		&fakeSequenceRepo{store}, store,
	)
}

func TestCreateSaleOrderNumbering(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newSaleOrderFixture(store)
	ctx := context.Background()

	orderDate := time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local)

	first, err := svc.CreateSaleOrder(ctx, userID, &CreateSaleOrderInput{
		OrderDate: orderDate,
		Items:     []LineItemInput{{Particulars: "Bolts", OrderedQty: 500, BasicAmount: 12000, TaxPercent: 18}},
	})
	if err != nil {
		t.Fatalf("CreateSaleOrder: %v", err)
	}
	second, err := svc.CreateSaleOrder(ctx, userID, &CreateSaleOrderInput{
		OrderDate: orderDate,
		Items:     []LineItemInput{{Particulars: "Nuts", OrderedQty: 500, BasicAmount: 8000}},
	})
	if err != nil {
		t.Fatalf("CreateSaleOrder: %v", err)
	}

	if first.OrderNo != "SO-2025-001" {
		t.Errorf("first OrderNo = %q, want SO-2025-001", first.OrderNo)
	}
	if second.OrderNo != "SO-2025-002" {
		t.Errorf("second OrderNo = %q, want SO-2025-002", second.OrderNo)
	}

	// A different year starts its own counter
	next, err := svc.CreateSaleOrder(ctx, userID, &CreateSaleOrderInput{
		OrderDate: orderDate.AddDate(1, 0, 0),
		Items:     []LineItemInput{{Particulars: "Washers", OrderedQty: 100, BasicAmount: 1500}},
	})
	if err != nil {
		t.Fatalf("CreateSaleOrder: %v", err)
	}
	if next.OrderNo != "SO-2026-001" {
		t.Errorf("next-year OrderNo = %q, want SO-2026-001", next.OrderNo)
	}
}

func TestCreateSaleOrderSnapshotsCustomerName(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newSaleOrderFixture(store)
	ctx := context.Background()

	customer := &entity.Customer{UserID: userID, Name: "Mehta Traders"}
	_ = (&fakeCustomerRepo{store}).Create(ctx, customer)

	order, err := svc.CreateSaleOrder(ctx, userID, &CreateSaleOrderInput{
		CustomerID: &customer.ID,
		OrderDate:  time.Now(),
		Items:      []LineItemInput{{Particulars: "Pipes", OrderedQty: 20, DispatchedQty: 5, BasicAmount: 40000, TaxPercent: 12}},
	})
	if err != nil {
		t.Fatalf("CreateSaleOrder: %v", err)
	}

	if order.CustomerName != "Mehta Traders" {
		t.Errorf("CustomerName snapshot = %q, want Mehta Traders", order.CustomerName)
	}
	if order.Status != enum.SaleOrderStatusDraft {
		t.Errorf("Status = %v, want Draft", order.Status)
	}
	item := order.Items[0]
	if item.BalanceQty != 15 {
		t.Errorf("BalanceQty = %v, want 15", item.BalanceQty)
	}
	// 40000.00 basic + 12% tax = 44800.00
	if order.Total != 4480000 {
		t.Errorf("Total = %d, want 4480000", order.Total)
	}
}

func TestCreateSaleOrderUnknownCustomer(t *testing.T) {
	store := newMemStore()
	svc := newSaleOrderFixture(store)
	missing := uuid.New()

	_, err := svc.CreateSaleOrder(context.Background(), uuid.New(), &CreateSaleOrderInput{
		CustomerID: &missing,
		OrderDate:  time.Now(),
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown customer should yield 404, got %v", err)
	}
}

func TestUpdateSaleOrderReplacesItems(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newSaleOrderFixture(store)
	ctx := context.Background()

	order, err := svc.CreateSaleOrder(ctx, userID, &CreateSaleOrderInput{
		OrderDate: time.Now(),
		Items: []LineItemInput{
			{Particulars: "Pipes", OrderedQty: 20, BasicAmount: 40000, TaxPercent: 12},
			{Particulars: "Clamps", OrderedQty: 40, BasicAmount: 5000},
		},
	})
	if err != nil {
		t.Fatalf("CreateSaleOrder: %v", err)
	}

	status := enum.SaleOrderStatusConfirmed
	updated, err := svc.UpdateSaleOrder(ctx, userID, order.ID, &UpdateSaleOrderInput{
		OrderDate: order.OrderDate,
		Status:    &status,
		Items: []LineItemInput{
			{Particulars: "Pipes", OrderedQty: 20, DispatchedQty: 20, BasicAmount: 40000, TaxPercent: 12},
		},
	})
	if err != nil {
		t.Fatalf("UpdateSaleOrder: %v", err)
	}

	if len(updated.Items) != 1 {
		t.Fatalf("items after replace = %d, want 1", len(updated.Items))
	}
	if updated.Items[0].BalanceQty != 0 {
		t.Errorf("BalanceQty = %v, want 0", updated.Items[0].BalanceQty)
	}
	if updated.Total != 4480000 {
		t.Errorf("Total = %d, want 4480000", updated.Total)
	}
	if updated.Status != enum.SaleOrderStatusConfirmed {
		t.Errorf("Status = %v, want Confirmed", updated.Status)
	}
	if updated.OrderNo != order.OrderNo {
		t.Errorf("OrderNo changed on update: %q -> %q", order.OrderNo, updated.OrderNo)
	}
}

func TestDeleteSaleOrderNotFound(t *testing.T) {
	store := newMemStore()
	svc := newSaleOrderFixture(store)

	err := svc.DeleteSaleOrder(context.Background(), uuid.New(), uuid.New())
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("delete on unknown id should yield 404, got %v", err)
	}
}
