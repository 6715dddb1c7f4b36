package models

import "time"

// ApprovalStatus is the financial record lifecycle. Approved is
// terminal; nothing moves a record back to pending.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
)

// Payment is a rent payment received from a tenant. IsCorrected is
// write-once: once marked, the payment stays excluded from financial
// totals for its lifetime.
type Payment struct {
	ID            int64          `json:"id"`
	TenantID      int64          `json:"tenantId"`
	UnitID        int64          `json:"unitId"`
	Amount        float64        `json:"amount"`
	PaymentDate   time.Time      `json:"paymentDate"`
	PaymentMethod string         `json:"paymentMethod"`
	CreatedBy     int64          `json:"createdBy"`
	CreatedAt     time.Time      `json:"createdAt"`
	IsCorrected   bool           `json:"isCorrected"`
	Status        ApprovalStatus `json:"status"`
	Notes         string         `json:"notes,omitempty"`
}
