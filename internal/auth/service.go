// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides the authentication operations of the LearnHub
// backend: register, login, and profile read/update. The service is a pure
// request/response mapper over the API gateway; persistence of the issued
// credential is the session layer's job, which keeps this package free of
// storage coupling.
package auth

import (
	"context"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/api"
)

// AuthResult is the payload of a successful register or login call.
type AuthResult struct {
	User    account.User `json:"user"`
	Token   string       `json:"token"`
	Message string       `json:"message"`
}

// RegisterRequest carries the fields of POST /auth/register. Role is
// optional; the backend defaults it and remains the authority on it.
type RegisterRequest struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     account.Role `json:"role,omitempty"`
}

// Service performs auth operations against the backend.
type Service struct {
	client *api.Client
}

// NewService constructs an auth Service over the shared API gateway.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Register creates a new account and returns the issued credential.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var out AuthResult
	if err := s.client.Post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges email/password for a credential.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResult
	if err := s.client.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile returns the server's current copy of the authenticated user.
// The session layer uses it both for initial hydration and re-validation.
func (s *Service) GetProfile(ctx context.Context) (*account.User, error) {
	var out struct {
		User account.User `json:"user"`
	}
	if err := s.client.Get(ctx, "/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateProfile changes the mutable profile fields and returns the updated
// record.
func (s *Service) UpdateProfile(ctx context.Context, name string) (*account.User, error) {
	body := map[string]string{"name": name}
	var out struct {
		User account.User `json:"user"`
	}
	if err := s.client.Put(ctx, "/auth/profile", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
