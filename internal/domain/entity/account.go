package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Role represents the party an authenticated account acts as.
type Role string

const (
	// RoleOSB is the business party of a delivery partnership.
	RoleOSB Role = "osb"
	// RoleOSD is the delivery-agent party of a delivery partnership.
	RoleOSD Role = "osd"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOSB, RoleOSD:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// accountRefSeparator joins a role prefix and an identifier, e.g. "osb::corner-bakery".
const accountRefSeparator = "::"

// BusinessAccountRef addresses the business party of a partnership.
func BusinessAccountRef(businessRefID string) string {
	return RoleOSB.String() + accountRefSeparator + businessRefID
}

// UserAccountRef addresses the delivery-agent party of a partnership.
func UserAccountRef(userID uuid.UUID) string {
	return RoleOSD.String() + accountRefSeparator + userID.String()
}

// ParseAccountRef splits an account ref into its role and identifier.
func ParseAccountRef(ref string) (Role, string, bool) {
	prefix, id, found := strings.Cut(ref, accountRefSeparator)
	if !found || id == "" {
		return "", "", false
	}

	role := Role(prefix)
	if !role.IsValid() {
		return "", "", false
	}

	return role, id, true
}
