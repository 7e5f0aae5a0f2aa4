// Package entities contains core business entities.
package entities

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleAdmin          UserRole = "ADMIN"
	RoleProjectManager UserRole = "PROJECT_MANAGER"
	RoleDeveloper      UserRole = "DEVELOPER"
	RoleTester         UserRole = "TESTER"
)

// Valid reports whether the role is known.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleDeveloper, RoleTester:
		return true
	}
	return false
}

// DeveloperType is a skill classification used for assignment matching.
type DeveloperType string

const (
	DeveloperFrontend  DeveloperType = "FRONTEND"
	DeveloperBackend   DeveloperType = "BACKEND"
	DeveloperFullStack DeveloperType = "FULL_STACK"
	DeveloperOther     DeveloperType = "OTHER"
)

// User is a domain representation of an account.
type User struct {
	ID            string
	Email         string
	FirstName     string
	LastName      string
	Role          UserRole
	DeveloperType DeveloperType
	IsActive      bool
}
