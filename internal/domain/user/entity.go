package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // full access, user management and reports
	RoleAdmin      Role = "admin"       // employee and attendance management
	RoleScanner    Role = "scanner"     // badge scanning station
	RoleViewer     Role = "viewer"      // read-only
)

// AllowedRoles are the roles accepted when creating or updating users.
var AllowedRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleScanner, RoleViewer}

func IsAllowedRole(r Role) bool {
	for _, allowed := range AllowedRoles {
		if r == allowed {
			return true
		}
	}
	return false
}

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsSuperAdmin checks if the user holds the protected role.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanRegisterAttendance checks if the user may operate the scanner
// endpoints (entry/exit, employee management).
func (u *User) CanRegisterAttendance() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin || u.Role == RoleScanner
}
