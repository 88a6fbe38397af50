// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package credstore

import (
	"encoding/json"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/keychain"
)

// Keychain is the production Store backed by the OS keychain manager.
type Keychain struct {
	mgr *keychain.Manager
}

var _ Store = (*Keychain)(nil)

// NewKeychain returns a Store over the global keychain manager.
func NewKeychain() (*Keychain, error) {
	mgr, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return &Keychain{mgr: mgr}, nil
}

func (k *Keychain) SetToken(token string) error {
	return k.mgr.SaveToken(token)
}

func (k *Keychain) GetToken() string {
	token, err := k.mgr.LoadToken()
	if err != nil {
		return ""
	}
	return token
}

func (k *Keychain) SetUser(user *account.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return k.mgr.SaveUser(data)
}

func (k *Keychain) GetUser() *account.User {
	data, err := k.mgr.LoadUser()
	if err != nil || len(data) == 0 {
		return nil
	}
	var u account.User
	if err := json.Unmarshal(data, &u); err != nil {
		// Corrupt persisted record reads as absent.
		return nil
	}
	return &u
}

func (k *Keychain) Logout() {
	_ = k.mgr.ClearCredentials()
}

func (k *Keychain) IsAuthenticated() bool {
	return k.GetToken() != ""
}
