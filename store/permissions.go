package store

import (
	"fmt"

	"prms/backend/models"
)

// Operation identifies a permission-gated mutator for the static
// operation -> required switch table.
type Operation string

const (
	OpAddProperty          Operation = "add_property"
	OpAddUnit              Operation = "add_unit"
	OpAddTenant            Operation = "add_tenant"
	OpUpdateTenantStatus   Operation = "update_tenant_status"
	OpAddPayment           Operation = "add_payment"
	OpMarkPaymentCorrected Operation = "mark_payment_corrected"
	OpAddExpense           Operation = "add_expense"
)

// requiredPermission maps each gated mutator to the single switch it
// consults. Account provisioning, profile updates, permission edits,
// and the log purge check the admin role directly and are deliberately
// absent.
var requiredPermission = map[Operation]models.PermissionKey{
	OpAddProperty:          models.PermAddProperties,
	OpAddUnit:              models.PermAddUnits,
	OpAddTenant:            models.PermAddTenants,
	OpUpdateTenantStatus:   models.PermChangeTenantStatus,
	OpAddPayment:           models.PermAddPayments,
	OpMarkPaymentCorrected: models.PermCorrectRecords,
	OpAddExpense:           models.PermAddExpenses,
}

// RequiredPermission exposes the operation table so callers (and tests)
// can inspect the mapping without invoking a mutator.
func RequiredPermission(op Operation) (models.PermissionKey, bool) {
	key, ok := requiredPermission[op]
	return key, ok
}

// Authorize reports whether the user may perform actions gated by key.
// Unknown user ids fail closed; the admin role short-circuits to true
// for every key.
func (s *Store) Authorize(userID int64, key models.PermissionKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allowed(userID, key)
}

// allowed is Authorize without locking, for use inside operations that
// already hold the lock.
func (s *Store) allowed(userID int64, key models.PermissionKey) bool {
	u, ok := s.findUser(userID)
	if !ok {
		return false
	}
	if u.IsAdmin() {
		return true
	}
	return u.Permissions.Allows(key)
}

// authorizeOp resolves the operation's required switch and checks it,
// returning the acting user on success. Runs before any state change so
// a rejection is side-effect free. Caller must hold the write lock.
func (s *Store) authorizeOp(userID int64, op Operation) (models.User, error) {
	u, ok := s.findUser(userID)
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	key, known := requiredPermission[op]
	if !known {
		return models.User{}, fmt.Errorf("%s: no permission mapping: %w", op, ErrUnauthorized)
	}
	if !u.IsAdmin() && !u.Permissions.Allows(key) {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	return u, nil
}

// requireAdmin checks the literal admin role, used by the account
// management operations and the log purge where a permission switch is
// not enough. Caller must hold the write lock.
func (s *Store) requireAdmin(userID int64) (models.User, error) {
	u, ok := s.findUser(userID)
	if !ok || !u.IsAdmin() {
		return models.User{}, fmt.Errorf("admin role required: %w", ErrUnauthorized)
	}
	return u, nil
}
