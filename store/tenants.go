package store

import (
	"fmt"
	"time"

	"prms/backend/models"
)

// TenantInput is the payload for AddTenant. The TNT-#### token and the
// active status are assigned by the store.
type TenantInput struct {
	FullName   string
	Phone      string
	MoveInDate time.Time
	UnitID     int64
}

// AddTenant registers a tenant against an existing unit.
func (s *Store) AddTenant(actorID int64, in TenantInput) (models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorizeOp(actorID, OpAddTenant); err != nil {
		return models.Tenant{}, err
	}
	if !s.unitExists(in.UnitID) {
		return models.Tenant{}, fmt.Errorf("unit %d: %w", in.UnitID, ErrNotFound)
	}

	id := nextID(len(s.state.Tenants), func(i int) int64 { return s.state.Tenants[i].ID })
	t := models.Tenant{
		ID:         id,
		FullName:   in.FullName,
		AutoID:     fmt.Sprintf("TNT-%04d", id),
		Phone:      in.Phone,
		MoveInDate: in.MoveInDate,
		UnitID:     in.UnitID,
		Status:     models.TenantActive,
	}
	s.state.Tenants = append(s.state.Tenants, t)
	s.appendLog(actorID, models.ActionRegisterTenant, models.TableTenants, t.ID)
	if err := s.commit(); err != nil {
		return models.Tenant{}, err
	}
	return t, nil
}

// UpdateTenantStatus moves a tenant along the one-way active -> left
// lifecycle. Reactivating a departed tenant is rejected.
func (s *Store) UpdateTenantStatus(actorID, tenantID int64, status models.TenantStatus) (models.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorizeOp(actorID, OpUpdateTenantStatus); err != nil {
		return models.Tenant{}, err
	}

	idx := -1
	for i, t := range s.state.Tenants {
		if t.ID == tenantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Tenant{}, fmt.Errorf("tenant %d: %w", tenantID, ErrNotFound)
	}
	if s.state.Tenants[idx].Status == models.TenantLeft && status == models.TenantActive {
		return models.Tenant{}, fmt.Errorf("tenant %d already left: %w", tenantID, ErrInvalidState)
	}

	s.state.Tenants[idx].Status = status
	s.appendLog(actorID, models.ActionChangeTenantStatus, models.TableTenants, tenantID)
	if err := s.commit(); err != nil {
		return models.Tenant{}, err
	}
	return s.state.Tenants[idx], nil
}

// Tenants returns tenants visible to the caller; an unauthorized read
// yields an empty result, never an error.
func (s *Store) Tenants(userID int64) []models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.allowed(userID, models.PermViewTenants) {
		return nil
	}
	out := make([]models.Tenant, len(s.state.Tenants))
	copy(out, s.state.Tenants)
	return out
}
