package models

import "time"

// ExpenseCategory is the closed set of expense classifications.
type ExpenseCategory string

const (
	ExpenseMaintenance ExpenseCategory = "maintenance"
	ExpenseElectricity ExpenseCategory = "electricity"
	ExpenseWater       ExpenseCategory = "water"
	ExpenseOther       ExpenseCategory = "other"
)

// Valid reports whether c is a known category.
func (c ExpenseCategory) Valid() bool {
	switch c {
	case ExpenseMaintenance, ExpenseElectricity, ExpenseWater, ExpenseOther:
		return true
	}
	return false
}

// Expense is an operating cost booked against a property.
type Expense struct {
	ID          int64           `json:"id"`
	PropertyID  int64           `json:"propertyId"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	Description string          `json:"description"`
	CreatedBy   int64           `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	Status      ApprovalStatus  `json:"status"`
}
