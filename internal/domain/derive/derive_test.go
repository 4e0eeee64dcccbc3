package derive

import (
	"testing"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestTaxAmount(t *testing.T) {
	tests := []struct {
		name    string
		basic   int64
		percent float64
		want    int64
	}{
		{"gst 18 percent", 25000000, 18, 4500000},
		{"zero percent", 25000000, 0, 0},
		{"zero basic", 0, 18, 0},
		{"rounds to nearest paisa", 1050, 5, 53}, // 52.5 rounds up
		{"negative basic stays total", -1000, 10, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxAmount(tt.basic, tt.percent); got != tt.want {
				t.Errorf("TaxAmount(%d, %v) = %d, want %d", tt.basic, tt.percent, got, tt.want)
			}
		})
	}
}

func TestStatusOfPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		received    int64
		total       int64
		daysDelayed int
		want        enum.InvoiceStatus
	}{
		{"fully paid", 100000, 100000, 0, enum.InvoiceStatusPaid},
		{"overpaid", 150000, 100000, 0, enum.InvoiceStatusPaid},
		{"paid dominates delinquency", 100000, 100000, 45, enum.InvoiceStatusPaid},
		{"partial", 50000, 100000, 0, enum.InvoiceStatusPartial},
		{"partial dominates delinquency", 50000, 100000, 45, enum.InvoiceStatusPartial},
		{"overdue", 0, 100000, 1, enum.InvoiceStatusOverdue},
		{"unpaid not yet due", 0, 100000, 0, enum.InvoiceStatusUnpaid},
		{"zero total counts as paid", 0, 0, 0, enum.InvoiceStatusPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusOf(tt.received, tt.total, tt.daysDelayed)
			if got != tt.want {
				t.Errorf("StatusOf(%d, %d, %d) = %v, want %v",
					tt.received, tt.total, tt.daysDelayed, got, tt.want)
			}
		})
	}
}

func TestDaysDelayed(t *testing.T) {
	today := date(2025, time.March, 15)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"due today", date(2025, time.March, 15), 0},
		{"due tomorrow", date(2025, time.March, 16), 0},
		{"due yesterday", date(2025, time.March, 14), 1},
		{"due last week", date(2025, time.March, 8), 7},
		{"due last month", date(2025, time.February, 15), 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysDelayed(tt.due, today); got != tt.want {
				t.Errorf("DaysDelayed(%v, %v) = %d, want %d", tt.due, today, got, tt.want)
			}
		})
	}
}

func TestDaysDelayedIgnoresTimeOfDay(t *testing.T) {
	// Late evening today vs early morning due date must still count whole days
	due := time.Date(2025, time.March, 14, 23, 59, 0, 0, time.Local)
	today := time.Date(2025, time.March, 15, 0, 1, 0, 0, time.Local)
	if got := DaysDelayed(due, today); got != 1 {
		t.Errorf("DaysDelayed across midnight = %d, want 1", got)
	}
}

func TestDocumentNumber(t *testing.T) {
	tests := []struct {
		prefix string
		year   int
		seq    int64
		want   string
	}{
		{"SO", 2025, 3, "SO-2025-003"},
		{"INV", 2025, 7, "INV-2025-007"},
		{"INV", 2026, 42, "INV-2026-042"},
		{"SO", 2025, 1234, "SO-2025-1234"},
	}
	for _, tt := range tests {
		if got := DocumentNumber(tt.prefix, tt.year, tt.seq); got != tt.want {
			t.Errorf("DocumentNumber(%q, %d, %d) = %q, want %q",
				tt.prefix, tt.year, tt.seq, got, tt.want)
		}
	}
}

// The worked example: one line with basic 250000.00, 18% tax, 60 of 100
// dispatched, transportation 5000.00, received 150000.00, due in the future.
func TestReviseInvoiceWorkedExample(t *testing.T) {
	inv := &entity.Invoice{
		TransportationCost: 500000,
		AmountReceived:     15000000,
		DueDate:            date(2025, time.June, 30),
		Items: []entity.InvoiceItem{
			{
				Particulars:   "MS angle 50x50x6",
				OrderedQty:    100,
				DispatchedQty: 60,
				BasicAmount:   25000000,
				TaxPercent:    18,
			},
		},
	}

	ReviseInvoice(inv, date(2025, time.June, 1))

	item := inv.Items[0]
	if item.TaxAmount != 4500000 {
		t.Errorf("tax amount = %d, want 4500000", item.TaxAmount)
	}
	if item.LineTotal != 29500000 {
		t.Errorf("line total = %d, want 29500000", item.LineTotal)
	}
	if item.BalanceQty != 40 {
		t.Errorf("balance qty = %v, want 40", item.BalanceQty)
	}
	if inv.TotalCost != 30000000 {
		t.Errorf("total cost = %d, want 30000000", inv.TotalCost)
	}
	if inv.PendingAmount != 15000000 {
		t.Errorf("pending amount = %d, want 15000000", inv.PendingAmount)
	}
	if inv.Status != enum.InvoiceStatusPartial {
		t.Errorf("status = %v, want Partial", inv.Status)
	}
	if inv.DaysDelayed != 0 {
		t.Errorf("days delayed = %d, want 0", inv.DaysDelayed)
	}
}

func TestReviseInvoiceIsIdempotent(t *testing.T) {
	today := date(2025, time.June, 1)
	inv := &entity.Invoice{
		TransportationCost: 120000,
		Discount:           50000,
		AmountReceived:     9999,
		DueDate:            date(2025, time.May, 20),
		Items: []entity.InvoiceItem{
			{OrderedQty: 10, DispatchedQty: 4, BasicAmount: 333333, TaxPercent: 12},
			{OrderedQty: 5, DispatchedQty: 5, BasicAmount: 100000, TaxPercent: 18},
		},
	}

	ReviseInvoice(inv, today)
	first := *inv
	firstItems := append([]entity.InvoiceItem(nil), inv.Items...)

	// Second pass over already-derived state must change nothing
	ReviseInvoice(inv, today)

	if inv.TotalCost != first.TotalCost || inv.PendingAmount != first.PendingAmount ||
		inv.Status != first.Status || inv.DaysDelayed != first.DaysDelayed {
		t.Errorf("header changed on second derivation: %+v vs %+v", inv, first)
	}
	for i := range inv.Items {
		if inv.Items[i].TaxAmount != firstItems[i].TaxAmount ||
			inv.Items[i].LineTotal != firstItems[i].LineTotal ||
			inv.Items[i].BalanceQty != firstItems[i].BalanceQty {
			t.Errorf("item %d changed on second derivation", i)
		}
	}
}

func TestReviseInvoiceAggregateFormula(t *testing.T) {
	inv := &entity.Invoice{
		TransportationCost: 10000,
		Discount:           2500,
		DueDate:            date(2025, time.July, 1),
		Items: []entity.InvoiceItem{
			{OrderedQty: 1, BasicAmount: 100000, TaxPercent: 18},
			{OrderedQty: 2, BasicAmount: 200000, TaxPercent: 5},
			{OrderedQty: 3, BasicAmount: 50000, TaxPercent: 0},
		},
	}

	ReviseInvoice(inv, date(2025, time.June, 1))

	var sum int64
	for _, item := range inv.Items {
		sum += item.LineTotal
	}
	want := sum + inv.TransportationCost - inv.Discount
	if inv.TotalCost != want {
		t.Errorf("total cost = %d, want sum(line totals) + transportation - discount = %d",
			inv.TotalCost, want)
	}
}

func TestReviseInvoiceUnclampedNegatives(t *testing.T) {
	inv := &entity.Invoice{
		AmountReceived: 500000,
		DueDate:        date(2025, time.July, 1),
		Items: []entity.InvoiceItem{
			// Dispatched more than ordered
			{OrderedQty: 10, DispatchedQty: 12, BasicAmount: 100000, TaxPercent: 0},
		},
	}

	ReviseInvoice(inv, date(2025, time.June, 1))

	if inv.Items[0].BalanceQty != -2 {
		t.Errorf("balance qty = %v, want -2 (unclamped)", inv.Items[0].BalanceQty)
	}
	// Overpayment: received 5000.00 against total 1000.00
	if inv.PendingAmount != -400000 {
		t.Errorf("pending amount = %d, want -400000 (unclamped)", inv.PendingAmount)
	}
	if inv.Status != enum.InvoiceStatusPaid {
		t.Errorf("status = %v, want Paid on overpayment", inv.Status)
	}
}

func TestReviseInvoiceDelinquencyBoundary(t *testing.T) {
	today := date(2025, time.March, 15)

	dueToday := &entity.Invoice{DueDate: date(2025, time.March, 15),
		Items: []entity.InvoiceItem{{OrderedQty: 1, BasicAmount: 100000}}}
	ReviseInvoice(dueToday, today)
	if dueToday.DaysDelayed != 0 {
		t.Errorf("due today: days delayed = %d, want 0", dueToday.DaysDelayed)
	}
	if dueToday.Status == enum.InvoiceStatusOverdue {
		t.Error("due today must not be Overdue")
	}

	dueYesterday := &entity.Invoice{DueDate: date(2025, time.March, 14),
		Items: []entity.InvoiceItem{{OrderedQty: 1, BasicAmount: 100000}}}
	ReviseInvoice(dueYesterday, today)
	if dueYesterday.DaysDelayed != 1 {
		t.Errorf("due yesterday: days delayed = %d, want 1", dueYesterday.DaysDelayed)
	}
	if dueYesterday.Status != enum.InvoiceStatusOverdue {
		t.Errorf("due yesterday: status = %v, want Overdue", dueYesterday.Status)
	}
}

func TestReviseSaleOrder(t *testing.T) {
	so := &entity.SaleOrder{
		Items: []entity.SaleOrderItem{
			{OrderedQty: 100, DispatchedQty: 60, BasicAmount: 25000000, TaxPercent: 18},
			{OrderedQty: 20, DispatchedQty: 0, BasicAmount: 500000, TaxPercent: 5},
		},
	}

	ReviseSaleOrder(so)

	if so.Items[0].LineTotal != 29500000 {
		t.Errorf("item 0 line total = %d, want 29500000", so.Items[0].LineTotal)
	}
	if so.Items[1].TaxAmount != 25000 {
		t.Errorf("item 1 tax = %d, want 25000", so.Items[1].TaxAmount)
	}
	if so.Items[1].BalanceQty != 20 {
		t.Errorf("item 1 balance = %v, want 20", so.Items[1].BalanceQty)
	}
	want := so.Items[0].LineTotal + so.Items[1].LineTotal
	if so.Total != want {
		t.Errorf("total = %d, want %d", so.Total, want)
	}
}

func TestUnitPrice(t *testing.T) {
	if got := UnitPrice(25000000, 60); got != 250000.0/60 {
		t.Errorf("unit price = %v, want %v", got, 250000.0/60)
	}
	if got := UnitPrice(25000000, 0); got != 0 {
		t.Errorf("unit price with zero dispatched = %v, want 0", got)
	}
}

func TestPaiseRoundTrip(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{250000, 25000000},
		{0.01, 1},
		{19.99, 1999},
		{0.005, 1}, // rounds half up
		{-10.50, -1050},
	}
	for _, tt := range tests {
		if got := Paise(tt.amount); got != tt.want {
			t.Errorf("Paise(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
	if got := Rupees(1999); got != 19.99 {
		t.Errorf("Rupees(1999) = %v, want 19.99", got)
	}
}
