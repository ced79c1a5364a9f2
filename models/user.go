package models

import "time"

// Role is the authorization role of an account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// User represents an account as seen by the client and returned by the
// backend's sign-in and /api/auth/me endpoints.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role controls which parts of a UI an external collaborator shows.
	Role Role `json:"role"`

	// PasswordHash is the bcrypt hash of the password.
	// It never leaves the backend.
	PasswordHash []byte `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasRole reports whether the user holds any of roles.
func (u User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Credentials is the body of POST /api/auth/login.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SignInResult is the response of a successful sign-in.
type SignInResult struct {
	TokenPair

	// User is the account the tokens were issued for.
	User User `json:"user"`
}
