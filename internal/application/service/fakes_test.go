package service

import (
	"context"
	"time"

	"github.com/bizledger/bizledger-api/internal/domain/derive"
	"github.com/bizledger/bizledger-api/internal/domain/entity"
	"github.com/bizledger/bizledger-api/internal/domain/enum"
	"github.com/bizledger/bizledger-api/internal/domain/repository"
	"github.com/bizledger/bizledger-api/internal/infrastructure/events"
	"github.com/bizledger/bizledger-api/pkg/pagination"
	"github.com/google/uuid"
)

// memStore is a shared in-memory backing store for the fake repositories.
// It intentionally skips filtering beyond what the tests exercise.
type memStore struct {
	vendors      map[uuid.UUID]*entity.Vendor
	customers    map[uuid.UUID]*entity.Customer
	orders       map[uuid.UUID]*entity.SaleOrder
	orderItems   map[uuid.UUID][]entity.SaleOrderItem
	invoices     map[uuid.UUID]*entity.Invoice
	invoiceItems map[uuid.UUID][]entity.InvoiceItem
	expenses     map[uuid.UUID]*entity.Expense
	payments     map[uuid.UUID]*entity.Payment
	sequences    map[string]int64
	published    []events.ChangeEvent
}

func newMemStore() *memStore {
	return &memStore{
		vendors:      make(map[uuid.UUID]*entity.Vendor),
		customers:    make(map[uuid.UUID]*entity.Customer),
		orders:       make(map[uuid.UUID]*entity.SaleOrder),
		orderItems:   make(map[uuid.UUID][]entity.SaleOrderItem),
		invoices:     make(map[uuid.UUID]*entity.Invoice),
		invoiceItems: make(map[uuid.UUID][]entity.InvoiceItem),
		expenses:     make(map[uuid.UUID]*entity.Expense),
		payments:     make(map[uuid.UUID]*entity.Payment),
		sequences:    make(map[string]int64),
	}
}

func (m *memStore) Publish(ctx context.Context, event events.ChangeEvent) {
	m.published = append(m.published, event)
}

func (m *memStore) Close() error { return nil }

type fakeVendorRepo struct{ s *memStore }

func (r *fakeVendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cp := *v
	r.s.vendors[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	v, ok := r.s.vendors[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	cp := *v
	r.s.vendors[v.ID] = &cp
	return nil
}

func (r *fakeVendorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.vendors, id)
	return nil
}

func (r *fakeVendorRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Vendor, int64, error) {
	var out []entity.Vendor
	for _, v := range r.s.vendors {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct{ s *memStore }

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.s.customers {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

type fakeSaleOrderRepo struct{ s *memStore }

func (r *fakeSaleOrderRepo) CreateWithItems(ctx context.Context, o *entity.SaleOrder, items []entity.SaleOrderItem) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	cp := *o
	r.s.orders[o.ID] = &cp
	return r.storeItems(o.ID, items)
}

func (r *fakeSaleOrderRepo) storeItems(orderID uuid.UUID, items []entity.SaleOrderItem) error {
	delete(r.s.orderItems, orderID)
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].SaleOrderID = orderID
		r.s.orderItems[orderID] = append(r.s.orderItems[orderID], items[i])
	}
	return nil
}

func (r *fakeSaleOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeSaleOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SaleOrder, error) {
	o, err := r.GetByID(ctx, id)
	if o == nil || err != nil {
		return o, err
	}
	o.Items = append([]entity.SaleOrderItem(nil), r.s.orderItems[id]...)
	return o, nil
}

func (r *fakeSaleOrderRepo) UpdateWithItems(ctx context.Context, o *entity.SaleOrder, items []entity.SaleOrderItem) error {
	cp := *o
	cp.Items = nil
	r.s.orders[o.ID] = &cp
	return r.storeItems(o.ID, items)
}

func (r *fakeSaleOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SaleOrderStatus) error {
	if o, ok := r.s.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakeSaleOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.orders, id)
	delete(r.s.orderItems, id)
	return nil
}

func (r *fakeSaleOrderRepo) List(ctx context.Context, userID uuid.UUID, params *repository.SaleOrderFilterParams) ([]entity.SaleOrder, int64, error) {
	orders, err := r.ListAll(ctx, userID)
	return orders, int64(len(orders)), err
}

func (r *fakeSaleOrderRepo) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.SaleOrder, error) {
	var out []entity.SaleOrder
	for id, o := range r.s.orders {
		if o.UserID == userID {
			cp := *o
			cp.Items = append([]entity.SaleOrderItem(nil), r.s.orderItems[id]...)
			out = append(out, cp)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct{ s *memStore }

func (r *fakeInvoiceRepo) CreateWithItems(ctx context.Context, inv *entity.Invoice, items []entity.InvoiceItem) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	cp := *inv
	r.s.invoices[inv.ID] = &cp
	return r.storeItems(inv.ID, items)
}

func (r *fakeInvoiceRepo) storeItems(invoiceID uuid.UUID, items []entity.InvoiceItem) error {
	delete(r.s.invoiceItems, invoiceID)
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = invoiceID
		r.s.invoiceItems[invoiceID] = append(r.s.invoiceItems[invoiceID], items[i])
	}
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetByInvoiceNo(ctx context.Context, userID uuid.UUID, invoiceNo string) (*entity.Invoice, error) {
	for _, inv := range r.s.invoices {
		if inv.UserID == userID && inv.InvoiceNo == invoiceNo {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, err := r.GetByID(ctx, id)
	if inv == nil || err != nil {
		return inv, err
	}
	inv.Items = append([]entity.InvoiceItem(nil), r.s.invoiceItems[id]...)
	return inv, nil
}

func (r *fakeInvoiceRepo) UpdateWithItems(ctx context.Context, inv *entity.Invoice, items []entity.InvoiceItem) error {
	cp := *inv
	cp.Items = nil
	r.s.invoices[inv.ID] = &cp
	return r.storeItems(inv.ID, items)
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.invoices, id)
	delete(r.s.invoiceItems, id)
	return nil
}

// List mirrors the production repository's derived-status filter: the match
// is against the status as of today, never the stored column.
func (r *fakeInvoiceRepo) List(ctx context.Context, userID uuid.UUID, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	invoices, err := r.ListAll(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if params.Status != nil {
		now := time.Now()
		var matched []entity.Invoice
		for _, inv := range invoices {
			rederived := inv
			rederived.Items = append([]entity.InvoiceItem(nil), inv.Items...)
			derive.ReviseInvoice(&rederived, now)
			if rederived.Status == *params.Status {
				matched = append(matched, inv)
			}
		}
		invoices = matched
	}
	return invoices, int64(len(invoices)), nil
}

func (r *fakeInvoiceRepo) ListAll(ctx context.Context, userID uuid.UUID) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for id, inv := range r.s.invoices {
		if inv.UserID == userID {
			cp := *inv
			cp.Items = append([]entity.InvoiceItem(nil), r.s.invoiceItems[id]...)
			out = append(out, cp)
		}
	}
	return out, nil
}

type fakeExpenseRepo struct{ s *memStore }

func (r *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.s.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error {
	cp := *e
	r.s.expenses[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var out []entity.Expense
	for _, e := range r.s.expenses {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeExpenseRepo) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entity.Expense, error) {
	var out []entity.Expense
	for _, e := range r.s.expenses {
		if e.UserID == userID && !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakePaymentRepo struct{ s *memStore }

func (r *fakePaymentRepo) CreateWithInvoice(ctx context.Context, p *entity.Payment, inv *entity.Invoice) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.s.payments[p.ID] = &cp
	invCp := *inv
	invCp.Items = nil
	r.s.invoices[inv.ID] = &invCp
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) DeleteWithInvoice(ctx context.Context, p *entity.Payment, inv *entity.Invoice) error {
	delete(r.s.payments, p.ID)
	if inv != nil {
		invCp := *inv
		invCp.Items = nil
		r.s.invoices[inv.ID] = &invCp
	}
	return nil
}

func (r *fakePaymentRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Payment, int64, error) {
	var out []entity.Payment
	for _, p := range r.s.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) ListByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.s.payments {
		if p.InvoiceID == invoiceID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeSequenceRepo struct{ s *memStore }

func (r *fakeSequenceRepo) Next(ctx context.Context, docType string, year int) (int64, error) {
	key := docType + ":" + time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
	r.s.sequences[key]++
	return r.s.sequences[key], nil
}
