package export

import (
	"testing"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/xuri/excelize/v2"
)

func TestInvoiceRegister(t *testing.T) {
	invoices := []entity.Invoice{
		{
			InvoiceNo:     "INV-2025-001",
			VendorName:    "Acme Steel",
			InvoiceDate:   time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			DueDate:       time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			Status:        enum.InvoiceStatusPartial,
			TotalCost:     30000000,
			PendingAmount: 15000000,
			Items: []entity.InvoiceItem{
				{Particulars: "Steel coils", OrderedQty: 100, DispatchedQty: 60, BalanceQty: 40,
					BasicAmount: 25000000, TaxPercent: 18, TaxAmount: 4500000, LineTotal: 29500000},
			},
		},
	}

	buf, err := InvoiceRegister(invoices)
	if err != nil {
		t.Fatalf("InvoiceRegister: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	no, err := f.GetCellValue("Invoices", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if no != "INV-2025-001" {
		t.Errorf("A2 = %q, want INV-2025-001", no)
	}

	// Unit price = basic / dispatched = 250000 / 60
	unitPrice, err := f.GetCellValue("Invoices", "J2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if unitPrice == "" || unitPrice == "0" {
		t.Errorf("J2 unit price = %q, want non-zero", unitPrice)
	}
}

func TestInvoiceRegisterZeroDispatched(t *testing.T) {
	invoices := []entity.Invoice{
		{
			InvoiceNo: "INV-2025-002",
			Items: []entity.InvoiceItem{
				{Particulars: "Undispatched", OrderedQty: 10, DispatchedQty: 0, BasicAmount: 100000},
			},
		},
	}

	// Must not divide by the zero dispatched quantity
	if _, err := InvoiceRegister(invoices); err != nil {
		t.Fatalf("InvoiceRegister: %v", err)
	}
}

func TestExpenseReportTotalsRow(t *testing.T) {
	expenses := []entity.Expense{
		{Date: time.Now(), Category: enum.ExpenseCategoryTravel, Amount: 50000},
		{Date: time.Now(), Category: enum.ExpenseCategoryRent, Amount: 250000},
	}

	buf, err := ExpenseReport(expenses)
	if err != nil {
		t.Fatalf("ExpenseReport: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	total, err := f.GetCellValue("Expenses", "F4")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if total != "3000" {
		t.Errorf("totals cell = %q, want 3000", total)
	}
}
