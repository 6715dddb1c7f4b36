package models

// State is the complete dataset owned by the record store. It
// serializes as one JSON blob: that blob is both the persisted
// representation and the unit of undo/redo, so the collections always
// move together.
type State struct {
	Properties []Property    `json:"properties"`
	Units      []Unit        `json:"units"`
	Tenants    []Tenant      `json:"tenants"`
	Payments   []Payment     `json:"payments"`
	Expenses   []Expense     `json:"expenses"`
	Users      []User        `json:"users"`
	Logs       []ActivityLog `json:"logs"`
}
