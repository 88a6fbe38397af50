// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/cli/internal/account"
)

func TestMemoryTokenLifecycle(t *testing.T) {
	s := NewMemory()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.GetToken())

	require.NoError(t, s.SetToken("T1"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "T1", s.GetToken())

	s.Logout()
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "", s.GetToken())
	assert.Nil(t, s.GetUser())
}

func TestMemoryUserRoundTrip(t *testing.T) {
	s := NewMemory()
	u := &account.User{
		ID:        1,
		Name:      "Ada",
		Email:     "a@b.com",
		Role:      account.RoleStudent,
		CreatedAt: "2025-01-02T03:04:05Z",
	}

	require.NoError(t, s.SetUser(u))
	got := s.GetUser()
	require.NotNil(t, got)
	assert.Equal(t, u, got)
}

func TestMemoryMalformedUserReadsAsAbsent(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.SetToken("T1"))
	s.SetRawUser([]byte("not-json{{{"))

	// Corrupt persisted data must not surface as an error anywhere.
	assert.Nil(t, s.GetUser())
	// The token is a separate key and is unaffected.
	assert.True(t, s.IsAuthenticated())
}

func TestMemoryLogoutIdempotent(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.SetToken("T1"))
	require.NoError(t, s.SetUser(&account.User{ID: 1, Role: account.RoleStudent}))

	s.Logout()
	s.Logout() // clearing an already-cleared store is fine

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.GetUser())
}
