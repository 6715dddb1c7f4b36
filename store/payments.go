package store

import (
	"fmt"
	"time"

	"prms/backend/models"
)

// PaymentInput is the payload for AddPayment. Creator, timestamps, and
// approval status are assigned by the store.
type PaymentInput struct {
	TenantID      int64
	UnitID        int64
	Amount        float64
	PaymentDate   time.Time
	PaymentMethod string
	Notes         string
}

// AddPayment records a rent payment. The payment is created approved
// when the creator is an admin or is not flagged for admin approval;
// otherwise it starts pending. Pending is only ever assigned here —
// no operation promotes it later.
func (s *Store) AddPayment(actorID int64, in PaymentInput) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, err := s.authorizeOp(actorID, OpAddPayment)
	if err != nil {
		return models.Payment{}, err
	}
	if !s.tenantExists(in.TenantID) {
		return models.Payment{}, fmt.Errorf("tenant %d: %w", in.TenantID, ErrNotFound)
	}
	if !s.unitExists(in.UnitID) {
		return models.Payment{}, fmt.Errorf("unit %d: %w", in.UnitID, ErrNotFound)
	}

	status := models.StatusApproved
	if !actor.IsAdmin() && actor.Permissions.Validation.RequireAdminApprovalForPayments {
		status = models.StatusPending
	}

	p := models.Payment{
		ID:            nextID(len(s.state.Payments), func(i int) int64 { return s.state.Payments[i].ID }),
		TenantID:      in.TenantID,
		UnitID:        in.UnitID,
		Amount:        in.Amount,
		PaymentDate:   in.PaymentDate,
		PaymentMethod: in.PaymentMethod,
		CreatedBy:     actorID,
		CreatedAt:     s.now(),
		IsCorrected:   false,
		Status:        status,
		Notes:         in.Notes,
	}
	s.state.Payments = append(s.state.Payments, p)
	s.appendLog(actorID, models.ActionRevenueEntry, models.TablePayments, p.ID)
	if err := s.commit(); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// MarkPaymentCorrected sets the one-way correction flag. A corrected
// payment stays on record but is excluded from financial totals.
// Marking twice is rejected so the terminal state is explicit.
func (s *Store) MarkPaymentCorrected(actorID, paymentID int64) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorizeOp(actorID, OpMarkPaymentCorrected); err != nil {
		return models.Payment{}, err
	}

	idx := -1
	for i, p := range s.state.Payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Payment{}, fmt.Errorf("payment %d: %w", paymentID, ErrNotFound)
	}
	if s.state.Payments[idx].IsCorrected {
		return models.Payment{}, fmt.Errorf("payment %d already corrected: %w", paymentID, ErrInvalidState)
	}

	s.state.Payments[idx].IsCorrected = true
	s.appendLog(actorID, models.ActionDataCorrection, models.TablePayments, paymentID)
	if err := s.commit(); err != nil {
		return models.Payment{}, err
	}
	return s.state.Payments[idx], nil
}

// Payments returns payments visible to the caller: nothing without
// view_payments, and only the caller's own entries under
// view_only_own_entries (admins always see everything).
func (s *Store) Payments(userID int64) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visiblePayments(userID)
}

func (s *Store) visiblePayments(userID int64) []models.Payment {
	if !s.allowed(userID, models.PermViewPayments) {
		return nil
	}
	u, _ := s.findUser(userID)
	if !u.IsAdmin() && u.Permissions.Scope.ViewOnlyOwnEntries {
		var out []models.Payment
		for _, p := range s.state.Payments {
			if p.CreatedBy == userID {
				out = append(out, p)
			}
		}
		return out
	}
	out := make([]models.Payment, len(s.state.Payments))
	copy(out, s.state.Payments)
	return out
}

func (s *Store) tenantExists(id int64) bool {
	for _, t := range s.state.Tenants {
		if t.ID == id {
			return true
		}
	}
	return false
}
