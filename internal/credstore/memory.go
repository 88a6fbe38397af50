// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"encoding/json"
	"sync"

	"learnhub/cli/internal/account"
)

// Memory is an in-memory Store for tests and environments without a usable
// keychain. It mirrors the keychain-backed store's behavior, including the
// serialized user record and its fail-soft decoding.
type Memory struct {
	mu    sync.Mutex
	token string
	user  []byte
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) GetToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Memory) SetUser(user *account.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = data
	return nil
}

// SetRawUser stores an arbitrary serialized record, bypassing encoding.
// Tests use it to simulate corrupt persisted state.
func (m *Memory) SetRawUser(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = data
}

func (m *Memory) GetUser() *account.User {
	m.mu.Lock()
	data := m.user
	m.mu.Unlock()
	if len(data) == 0 {
		return nil
	}
	var u account.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	return &u
}

func (m *Memory) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Token first, then user: a reader between the two sees a logged-out
	// store, never a usable half-credential.
	m.token = ""
	m.user = nil
}

func (m *Memory) IsAuthenticated() bool {
	return m.GetToken() != ""
}
