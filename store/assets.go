package store

import (
	"fmt"

	"prms/backend/models"
)

// PropertyInput is the payload for AddProperty.
type PropertyInput struct {
	Name     string
	Location string
	Type     string
}

// AddProperty registers a new property and returns the created record.
func (s *Store) AddProperty(actorID int64, in PropertyInput) (models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorizeOp(actorID, OpAddProperty); err != nil {
		return models.Property{}, err
	}

	p := models.Property{
		ID:       nextID(len(s.state.Properties), func(i int) int64 { return s.state.Properties[i].ID }),
		Name:     in.Name,
		Location: in.Location,
		Type:     in.Type,
	}
	s.state.Properties = append(s.state.Properties, p)
	s.appendLog(actorID, models.ActionCreateAsset, models.TableProperties, p.ID)
	if err := s.commit(); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

// UnitInput is the payload for AddUnit.
type UnitInput struct {
	PropertyID int64
	UnitNumber string
	RentAmount float64
	MaxTenants *int
}

// AddUnit registers a unit under an existing property.
func (s *Store) AddUnit(actorID int64, in UnitInput) (models.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.authorizeOp(actorID, OpAddUnit); err != nil {
		return models.Unit{}, err
	}
	if !s.propertyExists(in.PropertyID) {
		return models.Unit{}, fmt.Errorf("property %d: %w", in.PropertyID, ErrNotFound)
	}

	u := models.Unit{
		ID:         nextID(len(s.state.Units), func(i int) int64 { return s.state.Units[i].ID }),
		PropertyID: in.PropertyID,
		UnitNumber: in.UnitNumber,
		RentAmount: in.RentAmount,
		MaxTenants: in.MaxTenants,
	}
	s.state.Units = append(s.state.Units, u)
	s.appendLog(actorID, models.ActionCreateUnit, models.TableUnits, u.ID)
	if err := s.commit(); err != nil {
		return models.Unit{}, err
	}
	return u, nil
}

// Properties returns all properties. Deliberately unfiltered: property
// and unit listings back every picker in the caller's UI.
func (s *Store) Properties() []models.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Property, len(s.state.Properties))
	copy(out, s.state.Properties)
	return out
}

// Units returns all units, unfiltered.
func (s *Store) Units() []models.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Unit, len(s.state.Units))
	copy(out, s.state.Units)
	return out
}

func (s *Store) propertyExists(id int64) bool {
	for _, p := range s.state.Properties {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) unitExists(id int64) bool {
	for _, u := range s.state.Units {
		if u.ID == id {
			return true
		}
	}
	return false
}
