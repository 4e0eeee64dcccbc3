package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseStatus represents whether an expense has been settled
type ExpenseStatus string

const (
	ExpenseStatusPaid    ExpenseStatus = "Paid"
	ExpenseStatusPending ExpenseStatus = "Pending"
)

func (s ExpenseStatus) String() string {
	return string(s)
}

// IsValid reports whether the status belongs to the closed set
func (s ExpenseStatus) IsValid() bool {
	return s == ExpenseStatusPaid || s == ExpenseStatusPending
}

func (s ExpenseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *ExpenseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ExpenseStatus(str)
	return nil
}

func (s ExpenseStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ExpenseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ExpenseStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ExpenseStatus(v)
	case []byte:
		*s = ExpenseStatus(v)
	}
	return nil
}
