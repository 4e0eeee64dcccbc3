package service

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

func TestCreateInvoiceDerivesEverything(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newInvoiceFixture(t, store, userID)
	ctx := context.Background()

	vendorRepo := &fakeVendorRepo{store}
	vendor := &entity.Vendor{UserID: userID, Name: "Acme Steel", PaymentTermsDays: 30}
	_ = vendorRepo.Create(ctx, vendor)

	invoice, err := svc.CreateInvoice(ctx, userID, &CreateInvoiceInput{
		VendorID:           &vendor.ID,
		InvoiceDate:        time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local),
		DueDate:            time.Now().AddDate(0, 0, 30),
		TransportationCost: 10000,
		Discount:           5000,
		Items: []LineItemInput{
			{Particulars: "Steel coils", OrderedQty: 100, DispatchedQty: 60, BasicAmount: 250000, TaxPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if invoice.InvoiceNo != "INV-2025-001" {
		t.Errorf("InvoiceNo = %q, want INV-2025-001", invoice.InvoiceNo)
	}
	if invoice.VendorName != "Acme Steel" {
		t.Errorf("VendorName snapshot = %q, want Acme Steel", invoice.VendorName)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(invoice.Items))
	}
	item := invoice.Items[0]
	if item.TaxAmount != 4500000 {
		t.Errorf("TaxAmount = %d, want 4500000", item.TaxAmount)
	}
	if item.LineTotal != 29500000 {
		t.Errorf("LineTotal = %d, want 29500000", item.LineTotal)
	}
	if item.BalanceQty != 40 {
		t.Errorf("BalanceQty = %v, want 40", item.BalanceQty)
	}
	if invoice.TotalCost != 30000000 {
		t.Errorf("TotalCost = %d, want 30000000", invoice.TotalCost)
	}
	if invoice.PendingAmount != 30000000 {
		t.Errorf("PendingAmount = %d, want 30000000", invoice.PendingAmount)
	}
}

func TestUpdateInvoiceIgnoresStoredDerivedFields(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newInvoiceFixture(t, store, userID)
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, userID, &CreateInvoiceInput{
		DueDate: time.Now().AddDate(0, 0, 30),
		Items:   []LineItemInput{{Particulars: "Widgets", OrderedQty: 10, BasicAmount: 1000, TaxPercent: 10}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	// Corrupt the stored derived fields directly; the next update must wipe
	// the corruption by recomputing from editable inputs alone
	stored := store.invoices[invoice.ID]
	stored.TotalCost = 999999999
	stored.PendingAmount = -12345
	stored.Status = enum.InvoiceStatusPaid

	updated, err := svc.UpdateInvoice(ctx, userID, invoice.ID, &UpdateInvoiceInput{
		DueDate: invoice.DueDate,
		Items:   []LineItemInput{{Particulars: "Widgets", OrderedQty: 10, BasicAmount: 2000, TaxPercent: 10}},
	})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}

	if updated.TotalCost != 220000 {
		t.Errorf("TotalCost = %d, want 220000", updated.TotalCost)
	}
	if updated.PendingAmount != 220000 {
		t.Errorf("PendingAmount = %d, want 220000", updated.PendingAmount)
	}
	if updated.Status != enum.InvoiceStatusUnpaid {
		t.Errorf("Status = %v, want Unpaid", updated.Status)
	}
}

func TestListInvoicesStatusFilterTracksDueDate(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newInvoiceFixture(t, store, userID)
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, userID, &CreateInvoiceInput{
		DueDate: time.Now().AddDate(0, 0, 10),
		Items:   []LineItemInput{{Particulars: "Widgets", OrderedQty: 5, BasicAmount: 1000, TaxPercent: 18}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if invoice.Status != enum.InvoiceStatusUnpaid {
		t.Fatalf("Status at creation = %v, want Unpaid", invoice.Status)
	}

	// Let the due date slip into the past without any write touching the
	// stored status, as happens when days pass between requests
	store.invoices[invoice.ID].DueDate = time.Now().AddDate(0, 0, -5)

	listStatus := func(status enum.InvoiceStatus) []entity.Invoice {
		t.Helper()
		result, err := svc.ListInvoices(ctx, userID, &repository.InvoiceFilterParams{
			Pagination: &pagination.PaginationParams{Page: 1, PerPage: 15},
			Status:     &status,
		})
		if err != nil {
			t.Fatalf("ListInvoices(%v): %v", status, err)
		}
		return result.Items
	}

	overdue := listStatus(enum.InvoiceStatusOverdue)
	if len(overdue) != 1 || overdue[0].ID != invoice.ID {
		t.Fatalf("Overdue filter returned %d invoices, want the slipped one", len(overdue))
	}
	if overdue[0].Status != enum.InvoiceStatusOverdue {
		t.Errorf("returned Status = %v, want Overdue", overdue[0].Status)
	}
	if unpaid := listStatus(enum.InvoiceStatusUnpaid); len(unpaid) != 0 {
		t.Errorf("Unpaid filter returned %d invoices, want none", len(unpaid))
	}
}

func TestInvoiceNotFound(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	svc := newInvoiceFixture(t, store, userID)
	ctx := context.Background()

	if _, err := svc.GetInvoice(ctx, userID, uuid.New()); apperror.GetAppError(err).Code != 404 {
		t.Error("GetInvoice on unknown id should return 404")
	}
	if _, err := svc.UpdateInvoice(ctx, userID, uuid.New(), &UpdateInvoiceInput{}); apperror.GetAppError(err).Code != 404 {
		t.Error("UpdateInvoice on unknown id should return 404")
	}
	if err := svc.DeleteInvoice(ctx, userID, uuid.New()); apperror.GetAppError(err).Code != 404 {
		t.Error("DeleteInvoice on unknown id should return 404")
	}
}

func TestInvoiceScopedToOwner(t *testing.T) {
	store := newMemStore()
	owner := uuid.New()
	other := uuid.New()
	svc := newInvoiceFixture(t, store, owner)
	ctx := context.Background()

	invoice, err := svc.CreateInvoice(ctx, owner, &CreateInvoiceInput{
		DueDate: time.Now().AddDate(0, 0, 7),
		Items:   []LineItemInput{{Particulars: "Widgets", OrderedQty: 1, BasicAmount: 100}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if _, err := svc.GetInvoice(ctx, other, invoice.ID); apperror.GetAppError(err).Code != 404 {
		t.Error("another user's invoice must read as not found")
	}
}
