// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for learnhub.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving sensitive data such as
// the bearer token and the cached user record.
//
// The package supports macOS Keychain, Windows Credential Manager and the
// freedesktop Secret Service, with an encrypted file fallback under the XDG
// state directory for headless environments.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	"learnhub/cli/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend defines the interface for keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "learnhub"

// Keys used for storing secrets in the OS keychain.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("keychain: key not found")

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}

	return &Manager{
		ring: ring,
	}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	// If already initialized successfully, return it
	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// MustGetManager returns the global keychain manager instance.
// Panics if initialization fails. Use only when you're sure initialization will succeed.
func MustGetManager() *Manager {
	manager, err := GetManager()
	if err != nil {
		panic(err)
	}
	return manager
}

// openRing opens the OS keyring, preferring native platform backends and
// falling back to an encrypted file under the XDG state dir.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	case "windows":
		allowedBackends = []keyring.BackendType{
			keyring.WinCredBackend,
			keyring.FileBackend,
		}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}

	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName:      ServiceName,
		AllowedBackends:  allowedBackends,
		PassPrefix:       ServiceName,
		FileDir:          stateDir,
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	return keyring.Open(cfg)
}

// SaveToken stores the bearer token in the OS keychain.
// This method is thread-safe.
func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(KeyToken, token)
	}
	return m.ring.Set(keyring.Item{Key: KeyToken, Data: []byte(token)})
}

// LoadToken retrieves the bearer token from the keychain.
// Returns ErrNotFound when no token is stored.
// This method is thread-safe.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		token, err := m.backend.Get(KeyToken)
		if err != nil {
			return "", ErrNotFound
		}
		if token == "" {
			return "", ErrNotFound
		}
		return token, nil
	}

	it, err := m.ring.Get(KeyToken)
	if err != nil {
		return "", ErrNotFound
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// SaveUser stores the serialized user record in the keychain.
// This method is thread-safe.
func (m *Manager) SaveUser(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(KeyUser, string(data))
	}
	return m.ring.Set(keyring.Item{Key: KeyUser, Data: data})
}

// LoadUser retrieves the serialized user record from the keychain.
// Returns ErrNotFound when no record is stored.
// This method is thread-safe.
func (m *Manager) LoadUser() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		data, err := m.backend.Get(KeyUser)
		if err != nil {
			return nil, ErrNotFound
		}
		return []byte(data), nil
	}

	it, err := m.ring.Get(KeyUser)
	if err != nil {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// ClearCredentials removes the token and the user record from the keychain.
// The token is removed first; a half-cleared state then reads as logged out
// rather than as a usable session. Missing keys are not an error.
// This method is thread-safe.
func (m *Manager) ClearCredentials() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		_ = m.backend.Delete(KeyToken)
		_ = m.backend.Delete(KeyUser)
		return nil
	}

	_ = m.ring.Remove(KeyToken)
	_ = m.ring.Remove(KeyUser)
	return nil
}
