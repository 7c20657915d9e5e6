// Package authz holds the authorization policy shared by comment moderation
// and any future admin tooling.
package authz

import (
	"github.com/google/uuid"
)

// Role is the closed set of roles known to the system.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a stored role string onto the closed set. Unknown values
// degrade to RoleUser rather than granting anything.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// CanDelete reports whether a caller may delete a comment: the owner may,
// and admins may.
func CanDelete(ownerID, callerID uuid.UUID, role Role) bool {
	return callerID == ownerID || role == RoleAdmin
}
