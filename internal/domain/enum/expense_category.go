package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory represents the category of a daily expense
type ExpenseCategory string

const (
	ExpenseCategoryTravel    ExpenseCategory = "Travel"
	ExpenseCategoryRent      ExpenseCategory = "Rent"
	ExpenseCategoryUtilities ExpenseCategory = "Utilities"
	ExpenseCategorySupplies  ExpenseCategory = "Supplies"
	ExpenseCategoryMisc      ExpenseCategory = "Misc"
)

// AllExpenseCategories lists every valid category, in display order
func AllExpenseCategories() []ExpenseCategory {
	return []ExpenseCategory{
		ExpenseCategoryTravel,
		ExpenseCategoryRent,
		ExpenseCategoryUtilities,
		ExpenseCategorySupplies,
		ExpenseCategoryMisc,
	}
}

func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid reports whether the category belongs to the closed set
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryTravel, ExpenseCategoryRent, ExpenseCategoryUtilities,
		ExpenseCategorySupplies, ExpenseCategoryMisc:
		return true
	}
	return false
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = ExpenseCategory(str)
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryMisc
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = ExpenseCategory(v)
	case []byte:
		*c = ExpenseCategory(v)
	}
	return nil
}
