package domain

import "time"

// Role enumerates directory account kinds.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is a known variant.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleEmployee:
		return true
	}
	return false
}

// User is a directory entry for a manager or an employee.
// Team membership is derived from ManagerID rather than stored on the
// manager, so the two sides of the relationship cannot drift apart.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	ManagerID *string
	Avatar    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReportsTo reports whether the user is an employee managed by managerID.
func (u *User) ReportsTo(managerID string) bool {
	return u.Role == RoleEmployee && u.ManagerID != nil && *u.ManagerID == managerID
}

// Credential pairs a login email with the hashed password and the user
// it authenticates. Kept apart from User so the directory itself never
// carries secrets.
type Credential struct {
	Email        string
	PasswordHash string
	UserID       string
}
