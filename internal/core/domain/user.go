package domain

import "time"

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User models an authenticated actor. OpenID is the identity provider
// subject and never changes after the row is created.
type User struct {
	ID           int64
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastSignedIn time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// RoleFor is the provisioning policy: the configured owner identity is
// an admin, everyone else is a regular user.
func RoleFor(openID, ownerOpenID string) Role {
	if ownerOpenID != "" && openID == ownerOpenID {
		return RoleAdmin
	}
	return RoleUser
}

// Session is the payload carried by a verified session token.
type Session struct {
	OpenID string
	AppID  string
	Name   string
}
