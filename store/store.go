// Package store is the authorization-and-consistency core: it owns the
// live collections, gates every mutation on the acting user's
// permission vector, appends the audit trail, and tracks whole-state
// snapshots for undo/redo. Mutations run as short all-or-nothing
// transactions under one lock; no partial state is ever observable.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"prms/backend/database"
	"prms/backend/models"
)

// historyLimit bounds the undo stack; the oldest snapshot is evicted on
// overflow.
const historyLimit = 50

// Seed credentials for the first-boot admin account.
const (
	SeedAdminUsername = "admin"
	SeedAdminEmail    = "admin@prms.com"
	SeedAdminPassword = "admin"
)

// Store owns all collection state. Construct with New; all operations
// are methods on the instance.
type Store struct {
	mu      sync.RWMutex
	state   models.State
	history [][]byte
	redo    [][]byte

	db  *database.DB
	log *logrus.Logger
	now func() time.Time
}

// New loads the persisted snapshot (an absent snapshot is not an
// error), seeds the default admin account when the user collection is
// empty, and primes the history with the baseline state.
func New(db *database.DB, logger *logrus.Logger) (*Store, error) {
	s := &Store{db: db, log: logger, now: time.Now}

	blob, err := db.LoadSnapshot()
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &s.state); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
	}

	seeded := false
	if len(s.state.Users) == 0 {
		s.state.Users = append(s.state.Users, models.User{
			ID:                  1,
			Username:            SeedAdminUsername,
			Email:               SeedAdminEmail,
			Password:            SeedAdminPassword,
			Role:                models.RoleAdmin,
			IsActive:            true,
			AssignedPropertyIDs: []int64{},
			Permissions:         models.SeedAdminPermissions(),
		})
		seeded = true
	}

	baseline, err := json.Marshal(s.state)
	if err != nil {
		return nil, fmt.Errorf("encode baseline snapshot: %w", err)
	}
	if seeded {
		if err := db.SaveSnapshot(baseline); err != nil {
			return nil, fmt.Errorf("persist seeded snapshot: %w", err)
		}
		s.log.Info("seeded default admin account")
	}
	s.history = append(s.history, baseline)

	return s, nil
}

// commit serializes the post-mutation state, persists it, and pushes it
// onto the history stack. A persistence failure rolls the in-memory
// state back to the last committed snapshot so the mutation stays
// all-or-nothing. Caller must hold the write lock.
func (s *Store) commit() error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		s.restore(s.history[len(s.history)-1])
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.db.SaveSnapshot(blob); err != nil {
		s.restore(s.history[len(s.history)-1])
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.history = append(s.history, blob)
	if len(s.history) > historyLimit {
		s.history = s.history[1:]
	}
	// A new mutation invalidates any pending redo path.
	s.redo = nil
	return nil
}

// restore replaces the live state with a deserialized snapshot. Caller
// must hold the write lock.
func (s *Store) restore(blob []byte) {
	var st models.State
	if err := json.Unmarshal(blob, &st); err != nil {
		s.log.WithError(err).Error("corrupt history snapshot, state left unchanged")
		return
	}
	s.state = st
}

// appendLog prepends one audit entry so the log reads newest-first.
// Caller must hold the write lock.
func (s *Store) appendLog(userID int64, action models.Action, table models.Table, recordID int64) {
	entry := models.ActivityLog{
		ID:        nextID(len(s.state.Logs), func(i int) int64 { return s.state.Logs[i].ID }),
		UserID:    userID,
		Action:    action,
		TableName: table,
		RecordID:  recordID,
		Timestamp: s.now(),
	}
	s.state.Logs = append([]models.ActivityLog{entry}, s.state.Logs...)
}

func (s *Store) findUser(id int64) (models.User, bool) {
	for _, u := range s.state.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// nextID returns one greater than the maximum id in a collection, or 1
// when it is empty. Max-based rather than a counter so ids stay stable
// if records are ever removed.
func nextID(n int, id func(i int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if v := id(i); v > max {
			max = v
		}
	}
	return max + 1
}
