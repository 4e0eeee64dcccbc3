package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleOrderStatus represents the fulfilment stage of a sale order
type SaleOrderStatus int

const (
	SaleOrderStatusDraft      SaleOrderStatus = 0
	SaleOrderStatusConfirmed  SaleOrderStatus = 1
	SaleOrderStatusDispatched SaleOrderStatus = 2
	SaleOrderStatusDelivered  SaleOrderStatus = 3
	SaleOrderStatusCompleted  SaleOrderStatus = 4
)

func (s SaleOrderStatus) String() string {
	names := [...]string{"Draft", "Confirmed", "Dispatched", "Delivered", "Completed"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Draft"
	}
	return names[s]
}

// SaleOrderStatusFromString parses a display name, defaulting to Draft
func SaleOrderStatusFromString(str string) SaleOrderStatus {
	switch str {
	case "Confirmed":
		return SaleOrderStatusConfirmed
	case "Dispatched":
		return SaleOrderStatusDispatched
	case "Delivered":
		return SaleOrderStatusDelivered
	case "Completed":
		return SaleOrderStatusCompleted
	default:
		return SaleOrderStatusDraft
	}
}

func (s SaleOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleOrderStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = SaleOrderStatusDraft
	case "Confirmed":
		*s = SaleOrderStatusConfirmed
	case "Dispatched":
		*s = SaleOrderStatusDispatched
	case "Delivered":
		*s = SaleOrderStatusDelivered
	case "Completed":
		*s = SaleOrderStatusCompleted
	}
	return nil
}

func (s SaleOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleOrderStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleOrderStatus(v)
	case int:
		*s = SaleOrderStatus(v)
	}
	return nil
}
