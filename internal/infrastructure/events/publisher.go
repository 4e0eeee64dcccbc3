package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entity names carried in change events
const (
	EntityVendor    = "vendor"
	EntityCustomer  = "customer"
	EntitySaleOrder = "sale_order"
	EntityInvoice   = "invoice"
	EntityExpense   = "expense"
	EntityPayment   = "payment"
)

// Actions carried in change events
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent notifies subscribers that a record changed so dashboards can
// refresh without polling
type ChangeEvent struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	At     time.Time `json:"at"`
}

// Publisher emits change events. Publishing is best-effort: a failed publish
// never fails the mutation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent)
	Close() error
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event ChangeEvent) {}

func (NopPublisher) Close() error { return nil }
