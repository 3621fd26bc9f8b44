// Package roles holds the advisory permission predicates consulted before
// exposing or forwarding privileged actions. The backend remains the real
// authorization boundary.
package roles

import (
	"context"
	"strings"
)

// Role is an account role as reported by the backend profile endpoint.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdmin       Role = "admin"
	RoleSportsAdmin Role = "sports_admin"
	RoleUser        Role = "user"
)

// User is the authenticated profile.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) role() Role {
	return Role(strings.ToLower(strings.TrimSpace(string(u.Role))))
}

// Authenticated reports whether u carries an identity.
func (u User) Authenticated() bool {
	return strings.TrimSpace(u.ID) != ""
}

// IsAdmin gates the admin area.
func IsAdmin(u User) bool {
	if !u.Authenticated() {
		return false
	}
	switch u.role() {
	case RoleSuperAdmin, RoleAdmin, RoleSportsAdmin:
		return true
	}
	return false
}

// CanManageTOTS gates session creation and finalization.
func CanManageTOTS(u User) bool {
	if !u.Authenticated() {
		return false
	}
	r := u.role()
	return r == RoleSuperAdmin || r == RoleSportsAdmin
}

// CanCastAdminVote gates the weighted admin ballot.
func CanCastAdminVote(u User) bool {
	return IsAdmin(u)
}

// CanVote gates the public ballot; any signed-in account may vote.
func CanVote(u User) bool {
	return u.Authenticated()
}

type userKey struct{}

// WithUser stores the resolved profile on the context.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the profile stored by WithUser.
func UserFrom(ctx context.Context) (User, bool) {
	if ctx == nil {
		return User{}, false
	}
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}
