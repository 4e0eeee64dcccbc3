package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/derive"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// DashboardService aggregates the owner's collections into summary figures
type DashboardService struct {
	orderRepo    repository.SaleOrderRepository
	invoiceRepo  repository.InvoiceRepository
	expenseRepo  repository.ExpenseRepository
	vendorRepo   repository.VendorRepository
	customerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.SaleOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	expenseRepo repository.ExpenseRepository,
	vendorRepo repository.VendorRepository,
	customerRepo repository.CustomerRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		expenseRepo:  expenseRepo,
		vendorRepo:   vendorRepo,
		customerRepo: customerRepo,
	}
}

// DashboardStats is the aggregate snapshot returned to the dashboard.
// Monetary figures are decimal currency values.
type DashboardStats struct {
	TotalOrderValue    float64            `json:"total_order_value"`
	TotalInvoiced      float64            `json:"total_invoiced"`
	TotalReceived      float64            `json:"total_received"`
	TotalOutstanding   float64            `json:"total_outstanding"`
	OverdueCount       int                `json:"overdue_count"`
	OverdueAmount      float64            `json:"overdue_amount"`
	VendorCount        int64              `json:"vendor_count"`
	CustomerCount      int64              `json:"customer_count"`
	SaleOrderCount     int                `json:"sale_order_count"`
	InvoiceCount       int                `json:"invoice_count"`
	ExpenseMonthToDate float64            `json:"expense_month_to_date"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

// GetStats recomputes the dashboard from scratch on every call. Nothing is
// cached and every invoice is re-derived against today, so delinquency that
// accrued since the last write is reflected without a mutation.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	now := time.Now()
	stats := &DashboardStats{
		ExpensesByCategory: make(map[string]float64),
	}

	orders, err := s.orderRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	var orderValue int64
	for i := range orders {
		derive.ReviseSaleOrder(&orders[i])
		orderValue += orders[i].Total
	}
	stats.SaleOrderCount = len(orders)
	stats.TotalOrderValue = derive.Rupees(orderValue)

	invoices, err := s.invoiceRepo.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	var invoiced, received, outstanding, overdueAmount int64
	for i := range invoices {
		inv := &invoices[i]
		derive.ReviseInvoice(inv, now)
		invoiced += inv.TotalCost
		received += inv.AmountReceived
		outstanding += inv.PendingAmount
		if inv.Status == enum.InvoiceStatusOverdue {
			stats.OverdueCount++
			overdueAmount += inv.PendingAmount
		}
	}
	stats.InvoiceCount = len(invoices)
	stats.TotalInvoiced = derive.Rupees(invoiced)
	stats.TotalReceived = derive.Rupees(received)
	stats.TotalOutstanding = derive.Rupees(outstanding)
	stats.OverdueAmount = derive.Rupees(overdueAmount)

	countParams := &pagination.PaginationParams{Page: 1, PerPage: 1}
	if _, vendorTotal, err := s.vendorRepo.List(ctx, userID, countParams, ""); err == nil {
		stats.VendorCount = vendorTotal
	} else {
		return nil, err
	}
	countParams = &pagination.PaginationParams{Page: 1, PerPage: 1}
	if _, customerTotal, err := s.customerRepo.List(ctx, userID, countParams, ""); err == nil {
		stats.CustomerCount = customerTotal
	} else {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	expenses, err := s.expenseRepo.ListByDateRange(ctx, userID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	var expenseTotal int64
	byCategory := make(map[string]int64)
	for _, e := range expenses {
		expenseTotal += e.Amount
		byCategory[string(e.Category)] += e.Amount
	}
	stats.ExpenseMonthToDate = derive.Rupees(expenseTotal)
	for cat, amount := range byCategory {
		stats.ExpensesByCategory[cat] = derive.Rupees(amount)
	}

	return stats, nil
}
