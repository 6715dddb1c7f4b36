package models

// User is an operator account. The admin role bypasses every permission
// switch; employees carry a full permission vector.
//
// Password holds the credential in the clear and the login check is a
// straight comparison. A production deployment must swap in real
// hashing; the lookup shape stays the same.
type User struct {
	ID                  int64       `json:"id"`
	Username            string      `json:"username"`
	Email               string      `json:"email"`
	Password            string      `json:"password,omitempty"`
	Role                string      `json:"role"`
	IsActive            bool        `json:"isActive"`
	AssignedPropertyIDs []int64     `json:"assignedPropertyIds"`
	Permissions         Permissions `json:"permissions"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
