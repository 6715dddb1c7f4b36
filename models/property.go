package models

// Property is a managed building or site. Fields are immutable once
// created; the edit switches on the permission vector are reserved for
// a future edit mutator.
type Property struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

// Unit is a rentable unit inside a property. MaxTenants nil means no
// occupancy cap.
type Unit struct {
	ID         int64   `json:"id"`
	PropertyID int64   `json:"propertyId"`
	UnitNumber string  `json:"unitNumber"`
	RentAmount float64 `json:"rentAmount"`
	MaxTenants *int    `json:"maxTenants"`
}
