package handlers

import (
	"net/http"
	"time"

	"prms/backend/models"
	"prms/backend/store"
)

// ExpenseHandler serves expense routes.
type ExpenseHandler struct {
	store *store.Store
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(s *store.Store) *ExpenseHandler {
	return &ExpenseHandler{store: s}
}

// ListExpenses handles GET /expenses.
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.store.Expenses(actor))
}

type createExpenseRequest struct {
	PropertyID  int64                  `json:"propertyId" validate:"required"`
	Category    models.ExpenseCategory `json:"category" validate:"required,oneof=maintenance electricity water other"`
	Amount      float64                `json:"amount" validate:"required,gt=0"`
	ExpenseDate time.Time              `json:"expenseDate" validate:"required"`
	Description string                 `json:"description"`
}

// CreateExpense handles POST /expenses.
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	actor, ok := actingUser(w, r)
	if !ok {
		return
	}
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expense, err := h.store.AddExpense(actor, store.ExpenseInput{
		PropertyID:  req.PropertyID,
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}
