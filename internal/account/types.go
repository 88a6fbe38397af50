// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package account defines the user identity types shared across the CLI.
// The backend owns these records; the client treats identity fields and the
// assigned role as read-only authorization data.
package account

// Role is the server-assigned user category. It is a closed set: the UI
// branches on it exhaustively and never mutates it client-side.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User is the backend's user record. ID, Email and CreatedAt are immutable
// identity fields; Name and Avatar may change via profile update.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at"`
}
