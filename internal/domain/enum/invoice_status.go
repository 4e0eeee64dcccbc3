package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the payment state of an invoice.
// It is always derived from amount received, total cost and due date,
// never edited directly.
type InvoiceStatus int

const (
	InvoiceStatusUnpaid  InvoiceStatus = 0
	InvoiceStatusPartial InvoiceStatus = 1
	InvoiceStatusPaid    InvoiceStatus = 2
	InvoiceStatusOverdue InvoiceStatus = 3
)

func (s InvoiceStatus) String() string {
	names := [...]string{"Unpaid", "Partial", "Paid", "Overdue"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Unpaid"
	}
	return names[s]
}

// InvoiceStatusFromString parses a display name, defaulting to Unpaid
func InvoiceStatusFromString(str string) InvoiceStatus {
	switch str {
	case "Partial":
		return InvoiceStatusPartial
	case "Paid":
		return InvoiceStatusPaid
	case "Overdue":
		return InvoiceStatusOverdue
	default:
		return InvoiceStatusUnpaid
	}
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = InvoiceStatusUnpaid
	case "Partial":
		*s = InvoiceStatusPartial
	case "Paid":
		*s = InvoiceStatusPaid
	case "Overdue":
		*s = InvoiceStatusOverdue
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
