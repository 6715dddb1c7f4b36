package store

import (
	"fmt"

	"prms/backend/models"
)

// EmployeeInput is the payload for AddEmployee.
type EmployeeInput struct {
	Username string
	Email    string
	Password string
}

// AddEmployee provisions a new employee account with the default
// permission vector. Requires the literal admin role, not a permission
// switch.
func (s *Store) AddEmployee(actorID int64, in EmployeeInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(actorID); err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:                  nextID(len(s.state.Users), func(i int) int64 { return s.state.Users[i].ID }),
		Username:            in.Username,
		Email:               in.Email,
		Password:            in.Password,
		Role:                models.RoleEmployee,
		IsActive:            true,
		AssignedPropertyIDs: []int64{},
		Permissions:         models.DefaultEmployeePermissions(),
	}
	s.state.Users = append(s.state.Users, u)
	s.appendLog(actorID, models.ActionProvisionAccount, models.TableUsers, u.ID)
	if err := s.commit(); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UserUpdate carries the optional profile fields for UpdateUser; nil
// pointers leave the current value in place.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
	IsActive *bool
}

// UpdateUser edits a profile. Admins may edit anyone; a non-admin may
// only edit their own profile (and never their own permission vector,
// which this payload cannot carry).
func (s *Store) UpdateUser(actorID, targetID int64, in UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, ok := s.findUser(actorID)
	if !ok || (!actor.IsAdmin() && actorID != targetID) {
		return models.User{}, fmt.Errorf("profile update: %w", ErrUnauthorized)
	}

	idx := -1
	for i, u := range s.state.Users {
		if u.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, fmt.Errorf("user %d: %w", targetID, ErrNotFound)
	}

	if in.Username != nil {
		s.state.Users[idx].Username = *in.Username
	}
	if in.Email != nil {
		s.state.Users[idx].Email = *in.Email
	}
	if in.Password != nil {
		s.state.Users[idx].Password = *in.Password
	}
	if in.IsActive != nil {
		s.state.Users[idx].IsActive = *in.IsActive
	}
	s.appendLog(actorID, models.ActionUpdateUserProfile, models.TableUsers, targetID)
	if err := s.commit(); err != nil {
		return models.User{}, err
	}
	return s.state.Users[idx], nil
}

// UpdateUserPermissions replaces a user's whole permission vector.
// Admin role only; employees cannot edit anyone's vector, their own
// included.
func (s *Store) UpdateUserPermissions(actorID, targetID int64, perms models.Permissions) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireAdmin(actorID); err != nil {
		return models.User{}, err
	}

	idx := -1
	for i, u := range s.state.Users {
		if u.ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.User{}, fmt.Errorf("user %d: %w", targetID, ErrNotFound)
	}

	s.state.Users[idx].Permissions = perms
	s.appendLog(actorID, models.ActionModifyAccess, models.TableUsers, targetID)
	if err := s.commit(); err != nil {
		return models.User{}, err
	}
	return s.state.Users[idx], nil
}

// Users returns every account, unfiltered; the login flow needs the
// full collection and the caller's UI handles presentation.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out
}
