package models

// PermissionKey names a single switch on the permission vector. The set
// is closed; Permissions.Allows fails closed on anything it does not
// recognize.
type PermissionKey string

// Creation
const (
	PermAddProperties        PermissionKey = "add_properties"
	PermAddUnits             PermissionKey = "add_units"
	PermAddTenants           PermissionKey = "add_tenants"
	PermAddTenantNotes       PermissionKey = "add_tenant_notes"
	PermAddPayments          PermissionKey = "add_payments"
	PermAddExpenses          PermissionKey = "add_expenses"
	PermAddExpenseCategories PermissionKey = "add_expense_categories"
	PermAddEmployeeAccounts  PermissionKey = "add_employee_accounts"
)

// Editing
const (
	PermEditPropertyDetails PermissionKey = "edit_property_details"
	PermEditUnitDetails     PermissionKey = "edit_unit_details"
	PermEditTenantDetails   PermissionKey = "edit_tenant_details"
	PermChangeTenantStatus  PermissionKey = "change_tenant_status"
	PermEditPayments        PermissionKey = "edit_payments"
	PermEditExpenses        PermissionKey = "edit_expenses"
	PermCorrectRecords      PermissionKey = "correct_records"
)

// Deletion / control
const (
	PermDeleteUnits         PermissionKey = "delete_units"
	PermDeletePayments      PermissionKey = "delete_payments"
	PermDeleteExpenses      PermissionKey = "delete_expenses"
	PermArchiveTenants      PermissionKey = "archive_tenants"
	PermForceDeleteProperty PermissionKey = "force_delete_property"
)

// Visibility
const (
	PermViewProperties           PermissionKey = "view_properties"
	PermViewUnits                PermissionKey = "view_units"
	PermViewTenants              PermissionKey = "view_tenants"
	PermViewTenantContactDetails PermissionKey = "view_tenant_contact_details"
	PermViewPayments             PermissionKey = "view_payments"
	PermViewExpenses             PermissionKey = "view_expenses"
	PermViewFinancialTotals      PermissionKey = "view_financial_totals"
	PermViewProfitAndLoss        PermissionKey = "view_profit_and_loss"
	PermViewExpectedNextMonth    PermissionKey = "view_expected_next_month_report"
)

// Reporting
const (
	PermViewReports        PermissionKey = "view_reports"
	PermViewCharts         PermissionKey = "view_charts"
	PermViewMonthlyReports PermissionKey = "view_monthly_reports"
	PermViewYearlyReports  PermissionKey = "view_yearly_reports"
	PermExportReports      PermissionKey = "export_reports"
)

// Personnel management
const (
	PermViewEmployeeList             PermissionKey = "view_employee_list"
	PermEditEmployeePermissions      PermissionKey = "edit_employee_permissions"
	PermActivateDeactivateEmployees  PermissionKey = "activate_deactivate_employees"
	PermResetEmployeePasswords       PermissionKey = "reset_employee_passwords"
)

// Audit visibility
const (
	PermViewActivityLogs    PermissionKey = "view_activity_logs"
	PermViewOwnLogsOnly     PermissionKey = "view_own_logs_only"
	PermViewAllEmployeeLogs PermissionKey = "view_all_employee_logs"
)

// Time and date restrictions. backdate_limit_days is a magnitude, not a
// switch, and is read off the vector directly rather than via Allows.
const (
	PermAllowBackdatedEntries    PermissionKey = "allow_backdated_entries"
	PermLockPreviousMonthRecords PermissionKey = "lock_previous_month_records"
	PermEditOnlySameDayRecords   PermissionKey = "edit_only_same_day_records"
)

// Scope restriction
const (
	PermRestrictToAssignedProperties PermissionKey = "restrict_to_assigned_properties"
	PermRestrictToAssignedUnits      PermissionKey = "restrict_to_assigned_units"
	PermRestrictToAssignedTenants    PermissionKey = "restrict_to_assigned_tenants"
	PermViewOnlyOwnEntries           PermissionKey = "view_only_own_entries"
)

// Approval and validation requirements
const (
	PermRequireAdminApprovalForPayments PermissionKey = "require_admin_approval_for_payments"
	PermRequireAdminApprovalForExpenses PermissionKey = "require_admin_approval_for_expenses"
	PermRequireMandatoryNotesOnEdits    PermissionKey = "require_mandatory_notes_on_edits"
	PermRequireReasonForCorrections     PermissionKey = "require_reason_for_corrections"
)

// Permissions is the full capability record carried by every user,
// grouped by concern so the authorization mapping stays reviewable.
type Permissions struct {
	Creation   CreationPermissions   `json:"creation"`
	Editing    EditingPermissions    `json:"editing"`
	Deletion   DeletionPermissions   `json:"deletion"`
	Visibility VisibilityPermissions `json:"visibility"`
	Reporting  ReportingPermissions  `json:"reporting"`
	Management ManagementPermissions `json:"management"`
	Audit      AuditPermissions      `json:"audit"`
	TimeRules  TimeRulePermissions   `json:"timeRules"`
	Scope      ScopePermissions      `json:"scope"`
	Validation ValidationPermissions `json:"validation"`
}

type CreationPermissions struct {
	AddProperties        bool `json:"add_properties"`
	AddUnits             bool `json:"add_units"`
	AddTenants           bool `json:"add_tenants"`
	AddTenantNotes       bool `json:"add_tenant_notes"`
	AddPayments          bool `json:"add_payments"`
	AddExpenses          bool `json:"add_expenses"`
	AddExpenseCategories bool `json:"add_expense_categories"`
	AddEmployeeAccounts  bool `json:"add_employee_accounts"`
}

type EditingPermissions struct {
	EditPropertyDetails bool `json:"edit_property_details"`
	EditUnitDetails     bool `json:"edit_unit_details"`
	EditTenantDetails   bool `json:"edit_tenant_details"`
	ChangeTenantStatus  bool `json:"change_tenant_status"`
	EditPayments        bool `json:"edit_payments"`
	EditExpenses        bool `json:"edit_expenses"`
	CorrectRecords      bool `json:"correct_records"`
}

type DeletionPermissions struct {
	DeleteUnits         bool `json:"delete_units"`
	DeletePayments      bool `json:"delete_payments"`
	DeleteExpenses      bool `json:"delete_expenses"`
	ArchiveTenants      bool `json:"archive_tenants"`
	ForceDeleteProperty bool `json:"force_delete_property"`
}

type VisibilityPermissions struct {
	ViewProperties           bool `json:"view_properties"`
	ViewUnits                bool `json:"view_units"`
	ViewTenants              bool `json:"view_tenants"`
	ViewTenantContactDetails bool `json:"view_tenant_contact_details"`
	ViewPayments             bool `json:"view_payments"`
	ViewExpenses             bool `json:"view_expenses"`
	ViewFinancialTotals      bool `json:"view_financial_totals"`
	ViewProfitAndLoss        bool `json:"view_profit_and_loss"`
	ViewExpectedNextMonth    bool `json:"view_expected_next_month_report"`
}

type ReportingPermissions struct {
	ViewReports        bool `json:"view_reports"`
	ViewCharts         bool `json:"view_charts"`
	ViewMonthlyReports bool `json:"view_monthly_reports"`
	ViewYearlyReports  bool `json:"view_yearly_reports"`
	ExportReports      bool `json:"export_reports"`
}

type ManagementPermissions struct {
	ViewEmployeeList            bool `json:"view_employee_list"`
	EditEmployeePermissions     bool `json:"edit_employee_permissions"`
	ActivateDeactivateEmployees bool `json:"activate_deactivate_employees"`
	ResetEmployeePasswords      bool `json:"reset_employee_passwords"`
}

type AuditPermissions struct {
	ViewActivityLogs    bool `json:"view_activity_logs"`
	ViewOwnLogsOnly     bool `json:"view_own_logs_only"`
	ViewAllEmployeeLogs bool `json:"view_all_employee_logs"`
}

type TimeRulePermissions struct {
	AllowBackdatedEntries    bool `json:"allow_backdated_entries"`
	BackdateLimitDays        int  `json:"backdate_limit_days"`
	LockPreviousMonthRecords bool `json:"lock_previous_month_records"`
	EditOnlySameDayRecords   bool `json:"edit_only_same_day_records"`
}

type ScopePermissions struct {
	RestrictToAssignedProperties bool `json:"restrict_to_assigned_properties"`
	RestrictToAssignedUnits      bool `json:"restrict_to_assigned_units"`
	RestrictToAssignedTenants    bool `json:"restrict_to_assigned_tenants"`
	ViewOnlyOwnEntries           bool `json:"view_only_own_entries"`
}

type ValidationPermissions struct {
	RequireAdminApprovalForPayments bool `json:"require_admin_approval_for_payments"`
	RequireAdminApprovalForExpenses bool `json:"require_admin_approval_for_expenses"`
	RequireMandatoryNotesOnEdits    bool `json:"require_mandatory_notes_on_edits"`
	RequireReasonForCorrections     bool `json:"require_reason_for_corrections"`
}

// Allows returns the value of the named boolean switch. Unknown keys
// (including the numeric backdate_limit_days) report false.
func (p Permissions) Allows(key PermissionKey) bool {
	switch key {
	case PermAddProperties:
		return p.Creation.AddProperties
	case PermAddUnits:
		return p.Creation.AddUnits
	case PermAddTenants:
		return p.Creation.AddTenants
	case PermAddTenantNotes:
		return p.Creation.AddTenantNotes
	case PermAddPayments:
		return p.Creation.AddPayments
	case PermAddExpenses:
		return p.Creation.AddExpenses
	case PermAddExpenseCategories:
		return p.Creation.AddExpenseCategories
	case PermAddEmployeeAccounts:
		return p.Creation.AddEmployeeAccounts
	case PermEditPropertyDetails:
		return p.Editing.EditPropertyDetails
	case PermEditUnitDetails:
		return p.Editing.EditUnitDetails
	case PermEditTenantDetails:
		return p.Editing.EditTenantDetails
	case PermChangeTenantStatus:
		return p.Editing.ChangeTenantStatus
	case PermEditPayments:
		return p.Editing.EditPayments
	case PermEditExpenses:
		return p.Editing.EditExpenses
	case PermCorrectRecords:
		return p.Editing.CorrectRecords
	case PermDeleteUnits:
		return p.Deletion.DeleteUnits
	case PermDeletePayments:
		return p.Deletion.DeletePayments
	case PermDeleteExpenses:
		return p.Deletion.DeleteExpenses
	case PermArchiveTenants:
		return p.Deletion.ArchiveTenants
	case PermForceDeleteProperty:
		return p.Deletion.ForceDeleteProperty
	case PermViewProperties:
		return p.Visibility.ViewProperties
	case PermViewUnits:
		return p.Visibility.ViewUnits
	case PermViewTenants:
		return p.Visibility.ViewTenants
	case PermViewTenantContactDetails:
		return p.Visibility.ViewTenantContactDetails
	case PermViewPayments:
		return p.Visibility.ViewPayments
	case PermViewExpenses:
		return p.Visibility.ViewExpenses
	case PermViewFinancialTotals:
		return p.Visibility.ViewFinancialTotals
	case PermViewProfitAndLoss:
		return p.Visibility.ViewProfitAndLoss
	case PermViewExpectedNextMonth:
		return p.Visibility.ViewExpectedNextMonth
	case PermViewReports:
		return p.Reporting.ViewReports
	case PermViewCharts:
		return p.Reporting.ViewCharts
	case PermViewMonthlyReports:
		return p.Reporting.ViewMonthlyReports
	case PermViewYearlyReports:
		return p.Reporting.ViewYearlyReports
	case PermExportReports:
		return p.Reporting.ExportReports
	case PermViewEmployeeList:
		return p.Management.ViewEmployeeList
	case PermEditEmployeePermissions:
		return p.Management.EditEmployeePermissions
	case PermActivateDeactivateEmployees:
		return p.Management.ActivateDeactivateEmployees
	case PermResetEmployeePasswords:
		return p.Management.ResetEmployeePasswords
	case PermViewActivityLogs:
		return p.Audit.ViewActivityLogs
	case PermViewOwnLogsOnly:
		return p.Audit.ViewOwnLogsOnly
	case PermViewAllEmployeeLogs:
		return p.Audit.ViewAllEmployeeLogs
	case PermAllowBackdatedEntries:
		return p.TimeRules.AllowBackdatedEntries
	case PermLockPreviousMonthRecords:
		return p.TimeRules.LockPreviousMonthRecords
	case PermEditOnlySameDayRecords:
		return p.TimeRules.EditOnlySameDayRecords
	case PermRestrictToAssignedProperties:
		return p.Scope.RestrictToAssignedProperties
	case PermRestrictToAssignedUnits:
		return p.Scope.RestrictToAssignedUnits
	case PermRestrictToAssignedTenants:
		return p.Scope.RestrictToAssignedTenants
	case PermViewOnlyOwnEntries:
		return p.Scope.ViewOnlyOwnEntries
	case PermRequireAdminApprovalForPayments:
		return p.Validation.RequireAdminApprovalForPayments
	case PermRequireAdminApprovalForExpenses:
		return p.Validation.RequireAdminApprovalForExpenses
	case PermRequireMandatoryNotesOnEdits:
		return p.Validation.RequireMandatoryNotesOnEdits
	case PermRequireReasonForCorrections:
		return p.Validation.RequireReasonForCorrections
	}
	return false
}

// BooleanPermissionKeys lists every boolean switch on the vector.
func BooleanPermissionKeys() []PermissionKey {
	return []PermissionKey{
		PermAddProperties, PermAddUnits, PermAddTenants, PermAddTenantNotes,
		PermAddPayments, PermAddExpenses, PermAddExpenseCategories, PermAddEmployeeAccounts,
		PermEditPropertyDetails, PermEditUnitDetails, PermEditTenantDetails,
		PermChangeTenantStatus, PermEditPayments, PermEditExpenses, PermCorrectRecords,
		PermDeleteUnits, PermDeletePayments, PermDeleteExpenses, PermArchiveTenants,
		PermForceDeleteProperty,
		PermViewProperties, PermViewUnits, PermViewTenants, PermViewTenantContactDetails,
		PermViewPayments, PermViewExpenses, PermViewFinancialTotals, PermViewProfitAndLoss,
		PermViewExpectedNextMonth,
		PermViewReports, PermViewCharts, PermViewMonthlyReports, PermViewYearlyReports,
		PermExportReports,
		PermViewEmployeeList, PermEditEmployeePermissions, PermActivateDeactivateEmployees,
		PermResetEmployeePasswords,
		PermViewActivityLogs, PermViewOwnLogsOnly, PermViewAllEmployeeLogs,
		PermAllowBackdatedEntries, PermLockPreviousMonthRecords, PermEditOnlySameDayRecords,
		PermRestrictToAssignedProperties, PermRestrictToAssignedUnits,
		PermRestrictToAssignedTenants, PermViewOnlyOwnEntries,
		PermRequireAdminApprovalForPayments, PermRequireAdminApprovalForExpenses,
		PermRequireMandatoryNotesOnEdits, PermRequireReasonForCorrections,
	}
}

// DefaultEmployeePermissions is the vector assigned to newly provisioned
// employee accounts.
func DefaultEmployeePermissions() Permissions {
	return Permissions{
		Creation: CreationPermissions{
			AddUnits:       true,
			AddTenants:     true,
			AddTenantNotes: true,
			AddPayments:    true,
			AddExpenses:    true,
		},
		Editing: EditingPermissions{
			EditTenantDetails:  true,
			ChangeTenantStatus: true,
		},
		Deletion: DeletionPermissions{
			ArchiveTenants: true,
		},
		Visibility: VisibilityPermissions{
			ViewProperties:           true,
			ViewUnits:                true,
			ViewTenants:              true,
			ViewTenantContactDetails: true,
			ViewPayments:             true,
			ViewExpenses:             true,
			ViewFinancialTotals:      true,
		},
		Reporting: ReportingPermissions{
			ViewReports:        true,
			ViewCharts:         true,
			ViewMonthlyReports: true,
		},
		Audit: AuditPermissions{
			ViewOwnLogsOnly: true,
		},
		TimeRules: TimeRulePermissions{
			LockPreviousMonthRecords: true,
			EditOnlySameDayRecords:   true,
		},
		Validation: ValidationPermissions{
			RequireAdminApprovalForPayments: true,
			RequireAdminApprovalForExpenses: true,
			RequireMandatoryNotesOnEdits:    true,
			RequireReasonForCorrections:     true,
		},
	}
}

// SeedAdminPermissions is the vector written onto the first-boot admin
// account. The role bypass makes it mostly informational, but the
// elevated switches are recorded explicitly so a later demotion does not
// silently strip them.
func SeedAdminPermissions() Permissions {
	p := DefaultEmployeePermissions()
	p.Creation.AddProperties = true
	p.Creation.AddUnits = true
	p.Audit.ViewActivityLogs = true
	p.Audit.ViewAllEmployeeLogs = true
	p.Management.EditEmployeePermissions = true
	return p
}
