package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prms/backend/models"
)

func TestAdminBypassesEverySwitch(t *testing.T) {
	s := newTestStore(t)

	// The seeded admin's stored vector does not carry every switch, but
	// the role check short-circuits before the vector is consulted.
	for _, key := range models.BooleanPermissionKeys() {
		require.True(t, s.Authorize(1, key), "admin should be authorized for %q", key)
	}
}

func TestAuthorizeUnknownUserFailsClosed(t *testing.T) {
	s := newTestStore(t)
	require.False(t, s.Authorize(999, models.PermViewProperties))
}

func TestAuthorizeEmployeeUsesVector(t *testing.T) {
	s := newTestStore(t)
	id := newEmployee(t, s, "casey", models.DefaultEmployeePermissions())

	require.True(t, s.Authorize(id, models.PermAddPayments))
	require.True(t, s.Authorize(id, models.PermViewTenants))
	require.False(t, s.Authorize(id, models.PermAddProperties))
	require.False(t, s.Authorize(id, models.PermExportReports))
}

func TestOperationPermissionTable(t *testing.T) {
	expected := map[Operation]models.PermissionKey{
		OpAddProperty:          models.PermAddProperties,
		OpAddUnit:              models.PermAddUnits,
		OpAddTenant:            models.PermAddTenants,
		OpUpdateTenantStatus:   models.PermChangeTenantStatus,
		OpAddPayment:           models.PermAddPayments,
		OpMarkPaymentCorrected: models.PermCorrectRecords,
		OpAddExpense:           models.PermAddExpenses,
	}

	for op, want := range expected {
		key, ok := RequiredPermission(op)
		require.True(t, ok, "operation %q should have a mapping", op)
		require.Equal(t, want, key)
	}

	_, ok := RequiredPermission("no_such_operation")
	require.False(t, ok)
}

func TestSingleSwitchIsEnough(t *testing.T) {
	s := newTestStore(t)

	// An otherwise empty vector with just add_properties set can create
	// a property; every gate consults exactly one switch.
	var perms models.Permissions
	perms.Creation.AddProperties = true
	id := newEmployee(t, s, "casey", perms)

	p, err := s.AddProperty(id, PropertyInput{Name: "Riverside", Location: "North Bank", Type: "residential"})
	require.NoError(t, err)
	require.Equal(t, "Riverside", p.Name)
}
