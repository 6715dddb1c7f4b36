package models

// User roles
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)
