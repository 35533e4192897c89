// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of account a user holds in the marketplace.
type Role string

const (
	// RoleHousehold indicates a household account that creates pickup requests.
	RoleHousehold Role = "household"
	// RoleWastepicker indicates a waste-picker account that fulfills pickup requests.
	RoleWastepicker Role = "wastepicker"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleHousehold, RoleWastepicker, RoleAdmin:
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
