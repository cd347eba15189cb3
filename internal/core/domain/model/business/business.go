// Package business models the tenant scope every order belongs to.
package business

import (
	"errors"
	"strings"
)

// ErrNoActiveBusiness is returned by every operation invoked without a selected business.
var ErrNoActiveBusiness = errors.New("no business selected")

// ID identifies a business. The zero value means no business is selected.
type ID string

// NewID trims s and rejects the empty identifier.
func NewID(s string) (ID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrNoActiveBusiness
	}
	return ID(trimmed), nil
}

func (id ID) String() string {
	return string(id)
}

func (id ID) IsZero() bool {
	return id == ""
}

// Validate reports ErrNoActiveBusiness for the zero ID.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrNoActiveBusiness
	}
	return nil
}

// Context is what the business-context collaborator hands to the tracker:
// the selected business and the role of the current staff member in it.
type Context struct {
	ID   ID
	Name string
	Role Role
}

// Role is free-form; the tracker only carries it through for auditing.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)
