package models

import "time"

// TenantStatus is the occupancy lifecycle. The base flow only moves
// active -> left; nothing moves a tenant back.
type TenantStatus string

const (
	TenantActive TenantStatus = "active"
	TenantLeft   TenantStatus = "left"
)

// Valid reports whether s is a known status value.
func (s TenantStatus) Valid() bool {
	return s == TenantActive || s == TenantLeft
}

// Tenant is an occupant of a unit. AutoID is the generated TNT-####
// token used for human-readable identification.
type Tenant struct {
	ID         int64        `json:"id"`
	FullName   string       `json:"fullName"`
	AutoID     string       `json:"autoId"`
	Phone      string       `json:"phone"`
	MoveInDate time.Time    `json:"moveInDate"`
	UnitID     int64        `json:"unitId"`
	Status     TenantStatus `json:"status"`
}
