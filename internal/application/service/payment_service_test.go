package service

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/pkg/apperror"
	"github.com/google/uuid"
)

func newInvoiceFixture(t *testing.T, s *memStore, userID uuid.UUID) *InvoiceService {
	t.Helper()
	return NewInvoiceService(
		&fakeInvoiceRepo{s}, &fakeVendorRepo{s}, &fakeSaleOrderRepo{s},
		&fakeSequenceRepo{s}, s,
	)
}

func TestPaymentRoundTripRestoresInvoice(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	invoiceSvc := newInvoiceFixture(t, store, userID)
	paymentSvc := NewPaymentService(&fakePaymentRepo{store}, &fakeInvoiceRepo{store}, store)
	ctx := context.Background()

	invoice, err := invoiceSvc.CreateInvoice(ctx, userID, &CreateInvoiceInput{
		InvoiceDate:        time.Now(),
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
	if invoice.TotalCost != 30000000 {
		t.Fatalf("TotalCost = %d, want 30000000", invoice.TotalCost)
	}
	if invoice.Status != enum.InvoiceStatusUnpaid {
		t.Fatalf("Status = %v, want Unpaid", invoice.Status)
	}

	payment, err := paymentSvc.CreatePayment(ctx, userID, &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    150000,
		Method:    enum.PaymentMethodUPI,
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if payment.InvoiceNo != invoice.InvoiceNo {
		t.Errorf("payment snapshot InvoiceNo = %q, want %q", payment.InvoiceNo, invoice.InvoiceNo)
	}

	paid, err := invoiceSvc.GetInvoice(ctx, userID, invoice.ID)
	if err != nil {
		t.Fatalf("GetInvoice after payment: %v", err)
	}
	if paid.AmountReceived != 15000000 {
		t.Errorf("AmountReceived = %d, want 15000000", paid.AmountReceived)
	}
	if paid.PendingAmount != 15000000 {
		t.Errorf("PendingAmount = %d, want 15000000", paid.PendingAmount)
	}
	if paid.Status != enum.InvoiceStatusPartial {
		t.Errorf("Status = %v, want Partial", paid.Status)
	}

	if err := paymentSvc.DeletePayment(ctx, userID, payment.ID); err != nil {
		t.Fatalf("DeletePayment: %v", err)
	}

	restored, err := invoiceSvc.GetInvoice(ctx, userID, invoice.ID)
	if err != nil {
		t.Fatalf("GetInvoice after delete: %v", err)
	}
	if restored.AmountReceived != 0 {
		t.Errorf("AmountReceived after round trip = %d, want 0", restored.AmountReceived)
	}
	if restored.PendingAmount != 30000000 {
		t.Errorf("PendingAmount after round trip = %d, want 30000000", restored.PendingAmount)
	}
	if restored.Status != enum.InvoiceStatusUnpaid {
		t.Errorf("Status after round trip = %v, want Unpaid", restored.Status)
	}
}

func TestCreatePaymentUnknownInvoice(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	paymentSvc := NewPaymentService(&fakePaymentRepo{store}, &fakeInvoiceRepo{store}, store)

	_, err := paymentSvc.CreatePayment(context.Background(), userID, &CreatePaymentInput{
		InvoiceID: uuid.New(),
		Amount:    100,
	})
	if err == nil {
		t.Fatal("expected error for unknown invoice")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("code = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestDeletePaymentInvoiceGone(t *testing.T) {
	store := newMemStore()
	userID := uuid.New()
	invoiceSvc := newInvoiceFixture(t, store, userID)
	paymentSvc := NewPaymentService(&fakePaymentRepo{store}, &fakeInvoiceRepo{store}, store)
	ctx := context.Background()

	invoice, err := invoiceSvc.CreateInvoice(ctx, userID, &CreateInvoiceInput{
		DueDate: time.Now().AddDate(0, 0, 7),
		Items:   []LineItemInput{{Particulars: "Widgets", OrderedQty: 10, BasicAmount: 1000}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	payment, err := paymentSvc.CreatePayment(ctx, userID, &CreatePaymentInput{
		InvoiceID: invoice.ID,
		Amount:    500,
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}

	if err := invoiceSvc.DeleteInvoice(ctx, userID, invoice.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}

	// The orphaned payment must still be deletable
	if err := paymentSvc.DeletePayment(ctx, userID, payment.ID); err != nil {
		t.Fatalf("DeletePayment with missing invoice: %v", err)
	}
	if _, err := paymentSvc.GetPayment(ctx, userID, payment.ID); apperror.GetAppError(err).Code != 404 {
		t.Error("payment should be gone after delete")
	}
}
