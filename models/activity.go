package models

import "time"

// Action is the closed vocabulary of audit tags. Every mutator logs
// exactly one of these.
type Action string

const (
	ActionCreateAsset        Action = "CREATE_ASSET"
	ActionCreateUnit         Action = "CREATE_UNIT"
	ActionRegisterTenant     Action = "REGISTER_TENANT"
	ActionChangeTenantStatus Action = "CHANGE_TENANT_STATUS"
	ActionRevenueEntry       Action = "REVENUE_ENTRY"
	ActionDataCorrection     Action = "DATA_CORRECTION"
	ActionExpenseAuth        Action = "EXPENSE_AUTHORIZATION"
	ActionProvisionAccount   Action = "PROVISION_ACCOUNT"
	ActionUpdateUserProfile  Action = "UPDATE_USER_PROFILE"
	ActionModifyAccess       Action = "MODIFY_ACCESS_CONTROL"
)

// Table names the collection an audit entry targets.
type Table string

const (
	TableProperties Table = "properties"
	TableUnits      Table = "units"
	TableTenants    Table = "tenants"
	TablePayments   Table = "payments"
	TableExpenses   Table = "expenses"
	TableUsers      Table = "users"
)

// ActivityLog is one append-only audit entry attributing an action to
// the acting user.
type ActivityLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Action    Action    `json:"action"`
	TableName Table     `json:"tableName"`
	RecordID  int64     `json:"recordId"`
	Timestamp time.Time `json:"timestamp"`
}
