package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prms/backend/models"
)

func TestLogsVisibilityMatrix(t *testing.T) {
	s := newTestStore(t)

	var scoped models.Permissions
	scoped.Creation.AddProperties = true
	scoped.Audit.ViewOwnLogsOnly = true
	scopedID := newEmployee(t, s, "scoped", scoped)

	auditor := models.Permissions{}
	auditor.Audit.ViewAllEmployeeLogs = true
	auditorID := newEmployee(t, s, "auditor", auditor)

	blindID := newEmployee(t, s, "blind", models.Permissions{})

	// One entry by the admin, one by the scoped employee.
	newProperty(t, s, "Riverside")
	_, err := s.AddProperty(scopedID, PropertyInput{Name: "Hillcrest", Location: "Uptown", Type: "residential"})
	require.NoError(t, err)

	all := s.Logs(1)
	require.Greater(t, len(all), 2)

	// view_all_employee_logs sees the same trail as the admin.
	require.Equal(t, all, s.Logs(auditorID))

	// view_own_logs_only sees only its own actions.
	own := s.Logs(scopedID)
	require.Len(t, own, 1)
	require.Equal(t, scopedID, own[0].UserID)

	// No audit switch at all sees nothing.
	require.Empty(t, s.Logs(blindID))

	// Unknown ids fail closed.
	require.Empty(t, s.Logs(999))
}

func TestClearLogsPurgesEverything(t *testing.T) {
	s := newTestStore(t)
	newProperty(t, s, "Riverside")
	newProperty(t, s, "Hillcrest")
	require.NotEmpty(t, s.Logs(1))

	require.NoError(t, s.ClearLogs(1))

	// The purge removes its own trace too; the trail is simply empty.
	require.Empty(t, s.Logs(1))

	// The purge is itself a committed mutation, so undo brings the
	// trail back.
	done, err := s.Undo()
	require.NoError(t, err)
	require.True(t, done)
	require.Len(t, s.Logs(1), 2)
}

func TestClearLogsRequiresAdmin(t *testing.T) {
	s := newTestStore(t)
	newProperty(t, s, "Riverside")

	auditor := models.Permissions{}
	auditor.Audit.ViewActivityLogs = true
	auditor.Audit.ViewAllEmployeeLogs = true
	id := newEmployee(t, s, "auditor", auditor)

	err := s.ClearLogs(id)
	require.ErrorIs(t, err, ErrUnauthorized)
	require.NotEmpty(t, s.Logs(1))
}
