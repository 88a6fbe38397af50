// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package credstore implements persistence for the session credential: one
// opaque bearer token plus the cached user record it belongs to.
//
// The Store interface abstracts the persistence backend so the OS keychain
// used in production can be swapped for an in-memory fake in tests. The
// credential survives process restarts; validity of the token is not this
// package's concern; a stale token is still "present".
package credstore

import "learnhub/cli/internal/account"

// Store is scoped, synchronous key-value persistence for the credential pair.
type Store interface {
	// SetToken persists the bearer token.
	SetToken(token string) error
	// GetToken returns the persisted token, or "" when absent.
	GetToken() string
	// SetUser persists the user record in serialized form.
	SetUser(user *account.User) error
	// GetUser returns the persisted user record. Malformed persisted data
	// reads as absent: the result is nil, never an error.
	GetUser() *account.User
	// Logout clears token and user. The token goes first so a half-cleared
	// credential reads as logged out. Clearing an already-empty store is a
	// no-op.
	Logout()
	// IsAuthenticated reports whether a token is present. It does NOT verify
	// validity; an expired token still answers true here.
	IsAuthenticated() bool
}
