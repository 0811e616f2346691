package model

import (
	"github.com/google/uuid"
)

// Role determines what a user can see and do.
type Role string

const (
	RoleClient         Role = "client"
	RoleDoctor         Role = "doctor"
	RoleFacilityAdmin  Role = "facility_admin"
	RoleAuthorityAdmin Role = "authority_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleDoctor, RoleFacilityAdmin, RoleAuthorityAdmin:
		return true
	}
	return false
}

// RequiresFacility reports whether users of this role must carry a facility
// affiliation. Clients and the authority never do.
func (r Role) RequiresFacility() bool {
	return r == RoleDoctor || r == RoleFacilityAdmin
}

// User is a registered member of the network.
type User struct {
	Base
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	FacilityID   *uuid.UUID `json:"facility_id,omitempty"`
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role       Role
	FacilityID uuid.UUID
}

// Principal is the identity resolved from a session token. Scoping decisions
// use it exclusively; handlers never trust caller-supplied identities for
// self-scoped operations.
type Principal struct {
	UserID     uuid.UUID
	Role       Role
	FacilityID *uuid.UUID
}
