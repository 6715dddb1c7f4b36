package store

import (
	"fmt"

	"prms/backend/models"
)

// Logs returns the audit trail visible to the caller, newest first.
// Admins and view_all_employee_logs holders see everything,
// view_own_logs_only holders see their own entries, everyone else sees
// nothing. Unknown callers get an empty result.
func (s *Store) Logs(userID int64) []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.findUser(userID)
	if !ok {
		return nil
	}
	if u.IsAdmin() || u.Permissions.Audit.ViewAllEmployeeLogs {
		out := make([]models.ActivityLog, len(s.state.Logs))
		copy(out, s.state.Logs)
		return out
	}
	if u.Permissions.Audit.ViewOwnLogsOnly {
		var out []models.ActivityLog
		for _, l := range s.state.Logs {
			if l.UserID == userID {
				out = append(out, l)
			}
		}
		return out
	}
	return nil
}

// ClearLogs wipes the entire audit trail. Admin role only. The purge
// clears its own trace by design; the history snapshot it pushes still
// allows undoing the purge.
func (s *Store) ClearLogs(actorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(actorID); err != nil {
		return fmt.Errorf("log purge: %w", err)
	}

	s.state.Logs = nil
	return s.commit()
}
