package derive

import (
	"fmt"
	"math"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
)

// Package derive recomputes every derived field of a financial record from
// its editable inputs. All functions are pure and total over their numeric
// domain: they never fail, never consult previous derived values, and applying
// them twice yields the same result. Input validation (negative quantities,
// tax percent outside 0-100) is the handler layer's job.

// Paise converts a decimal currency amount to integer paise
func Paise(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Rupees converts integer paise back to a decimal currency amount
func Rupees(paise int64) float64 {
	return float64(paise) / 100
}

// TaxAmount computes the tax on a basic amount at the given percent rate
func TaxAmount(basicAmount int64, taxPercent float64) int64 {
	return int64(math.Round(float64(basicAmount) * taxPercent / 100))
}

// BalanceQty is the ordered quantity still awaiting dispatch. It is not
// clamped at zero: dispatching more than ordered yields a negative balance,
// which represents a valid overage state.
func BalanceQty(orderedQty, dispatchedQty float64) float64 {
	return orderedQty - dispatchedQty
}

// PendingAmount is what remains to be received against an invoice. Not
// clamped at zero: an overpayment yields a negative pending amount.
func PendingAmount(totalCost, amountReceived int64) int64 {
	return totalCost - amountReceived
}

// DaysDelayed returns the whole days elapsed past the due date, zero when the
// due date is today or in the future. Both dates are normalized to midnight
// local time first so time-of-day components cannot produce partial-day
// artifacts.
func DaysDelayed(dueDate, today time.Time) int {
	due := midnight(dueDate)
	now := midnight(today)
	if !now.After(due) {
		return 0
	}
	return int(math.Round(now.Sub(due).Hours() / 24))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StatusOf derives the invoice status. Precedence order matters: full payment
// dominates delinquency, so a fully paid invoice past its due date is Paid,
// not Overdue.
func StatusOf(amountReceived, totalCost int64, daysDelayed int) enum.InvoiceStatus {
	switch {
	case amountReceived >= totalCost:
		return enum.InvoiceStatusPaid
	case amountReceived > 0:
		return enum.InvoiceStatusPartial
	case daysDelayed > 0:
		return enum.InvoiceStatusOverdue
	default:
		return enum.InvoiceStatusUnpaid
	}
}

// DocumentNumber formats a year-scoped document number such as INV-2025-007.
// The sequence is zero-padded to three digits and widens as needed.
func DocumentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, seq)
}

// ReviseInvoice recomputes every derived field of an invoice and its line
// items in place: per-line tax, line total and balance quantity, then the
// aggregate total cost, pending amount, days delayed and status. The formula
// for total cost is sum of line totals plus header transportation cost minus
// discount, applied uniformly.
func ReviseInvoice(inv *entity.Invoice, today time.Time) {
	var total int64
	for i := range inv.Items {
		item := &inv.Items[i]
		item.TaxAmount = TaxAmount(item.BasicAmount, item.TaxPercent)
		item.LineTotal = item.BasicAmount + item.TaxAmount
		item.BalanceQty = BalanceQty(item.OrderedQty, item.DispatchedQty)
		total += item.LineTotal
	}
	inv.TotalCost = total + inv.TransportationCost - inv.Discount
	inv.PendingAmount = PendingAmount(inv.TotalCost, inv.AmountReceived)
	inv.DaysDelayed = DaysDelayed(inv.DueDate, today)
	inv.Status = StatusOf(inv.AmountReceived, inv.TotalCost, inv.DaysDelayed)
}

// ReviseSaleOrder recomputes every derived field of a sale order and its line
// items in place
func ReviseSaleOrder(so *entity.SaleOrder) {
	var total int64
	for i := range so.Items {
		item := &so.Items[i]
		item.TaxAmount = TaxAmount(item.BasicAmount, item.TaxPercent)
		item.LineTotal = item.BasicAmount + item.TaxAmount
		item.BalanceQty = BalanceQty(item.OrderedQty, item.DispatchedQty)
		total += item.LineTotal
	}
	so.Total = total
}

// UnitPrice is the effective per-unit price of a dispatched line, used by
// exports and document rendering. A zero dispatched quantity yields zero
// rather than dividing by it.
func UnitPrice(basicAmount int64, dispatchedQty float64) float64 {
	if dispatchedQty == 0 {
		return 0
	}
	return Rupees(basicAmount) / dispatchedQty
}
