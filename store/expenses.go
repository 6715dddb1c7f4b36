package store

import (
	"fmt"
	"time"

	"prms/backend/models"
)

// ExpenseInput is the payload for AddExpense.
type ExpenseInput struct {
	PropertyID  int64
	Category    models.ExpenseCategory
	Amount      float64
	ExpenseDate time.Time
	Description string
}

// AddExpense books an operating cost against an existing property,
// applying the same creation-time approval rule as payments.
func (s *Store) AddExpense(actorID int64, in ExpenseInput) (models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.authorizeOp(actorID, OpAddExpense)
	if err != nil {
		return models.Expense{}, err
	}
	if !s.propertyExists(in.PropertyID) {
		return models.Expense{}, fmt.Errorf("property %d: %w", in.PropertyID, ErrNotFound)
	}

	status := models.StatusApproved
	if !actor.IsAdmin() && actor.Permissions.Validation.RequireAdminApprovalForExpenses {
		status = models.StatusPending
	}

	e := models.Expense{
		ID:          nextID(len(s.state.Expenses), func(i int) int64 { return s.state.Expenses[i].ID }),
		PropertyID:  in.PropertyID,
		Category:    in.Category,
		Amount:      in.Amount,
		ExpenseDate: in.ExpenseDate,
		Description: in.Description,
		CreatedBy:   actorID,
		CreatedAt:   s.now(),
		Status:      status,
	}
	s.state.Expenses = append(s.state.Expenses, e)
	s.appendLog(actorID, models.ActionExpenseAuth, models.TableExpenses, e.ID)
	if err := s.commit(); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Expenses returns expenses visible to the caller, applying the same
// own-entries restriction as payments.
func (s *Store) Expenses(userID int64) []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleExpenses(userID)
}

func (s *Store) visibleExpenses(userID int64) []models.Expense {
	if !s.allowed(userID, models.PermViewExpenses) {
		return nil
	}
	u, _ := s.findUser(userID)
	if !u.IsAdmin() && u.Permissions.Scope.ViewOnlyOwnEntries {
		var out []models.Expense
		for _, e := range s.state.Expenses {
			if e.CreatedBy == userID {
				out = append(out, e)
			}
		}
		return out
	}
	out := make([]models.Expense, len(s.state.Expenses))
	copy(out, s.state.Expenses)
	return out
}
