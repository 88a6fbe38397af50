// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the in-memory answer to "who is using the CLI". It is
// an explicit state machine kept consistent with the credential store: every
// mutation of the persisted credential flows through this package, including
// the API gateway's 401 handling, which is routed here via Invalidate rather
// than clearing storage behind the session's back.
package session

import (
	"context"
	"sync"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/credstore"
	errs "learnhub/cli/internal/errors"
)

// State enumerates the session lifecycle.
type State int

const (
	// Uninitialized is the state before Init has run.
	Uninitialized State = iota
	// Validating covers the startup window while a persisted credential is
	// being checked against the backend.
	Validating
	// Authenticated means a user is logged in and the store holds a matching
	// token and user record.
	Authenticated
	// Anonymous is the logged-out state, reachable from anywhere via Logout
	// or an authorization failure.
	Anonymous
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Validating:
		return "validating"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return "unknown"
}

// authAPI is the slice of the auth service the session depends on.
// Tests substitute fakes; production wires *auth.Service.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*auth.AuthResult, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResult, error)
	GetProfile(ctx context.Context) (*account.User, error)
}

// Session is the process-wide session handle. All mutation entry points are
// methods here; the rest of the program reads the Current projection.
type Session struct {
	mu      sync.Mutex
	state   State
	user    *account.User
	offline bool
	store   credstore.Store
	svc     authAPI
}

// New creates a session in the Uninitialized state.
func New(store credstore.Store, svc *auth.Service) *Session {
	return newSession(store, svc)
}

func newSession(store credstore.Store, svc authAPI) *Session {
	return &Session{state: Uninitialized, store: store, svc: svc}
}

// Token returns the persisted bearer token for the API gateway's pre-send
// hook, or "" when logged out.
func (s *Session) Token() string {
	return s.store.GetToken()
}

// Init validates any persisted credential and settles the session into
// Authenticated or Anonymous. It runs the Validating phase exactly once per
// process; repeated calls are no-ops.
//
// With a persisted pair the server's current user record wins over the
// cached copy, so server-side changes (e.g. a role change) take effect on
// next start. Any validation failure clears the store.
func (s *Session) Init(ctx context.Context) {
	s.mu.Lock()
	if s.state != Uninitialized {
		s.mu.Unlock()
		return
	}
	s.state = Validating
	s.mu.Unlock()

	token := s.store.GetToken()
	cached := s.store.GetUser()
	if token == "" || cached == nil {
		// Nothing usable persisted. A dangling half-credential (token
		// without a readable user, or the reverse) is cleared rather than
		// left to confuse a later run.
		if token != "" || cached != nil {
			s.store.Logout()
		}
		s.settle(Anonymous, nil)
		return
	}

	serverUser, err := s.svc.GetProfile(ctx)
	if err != nil {
		// Record why validation failed: a transport failure means the
		// credential was never checked, anything else means the backend saw
		// it and refused. Callers use the distinction for offline fallbacks.
		s.mu.Lock()
		s.offline = errs.IsKind(err, errs.Transport)
		s.mu.Unlock()
		s.store.Logout()
		s.settle(Anonymous, nil)
		return
	}
	// Reconcile drift: overwrite the cached record with the server's copy.
	_ = s.store.SetUser(serverUser)
	s.settle(Authenticated, serverUser)
}

func (s *Session) settle(state State, user *account.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	s.mu.Unlock()
}

// Current returns the read-only projection the view layer consumes:
// the authenticated user (nil when anonymous) and whether the initial
// validation is still pending.
func (s *Session) Current() (user *account.User, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.state == Uninitialized || s.state == Validating
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Offline reports whether startup validation settled Anonymous because the
// backend was unreachable. It stays false when no credential existed or when
// the backend rejected the credential, so read-only commands can tell
// "could not check" apart from "checked and refused" before showing any
// locally cached data.
func (s *Session) Offline() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

// Login authenticates with the backend, persists the issued credential, then
// flips the in-memory state. On failure the session stays Anonymous and the
// error is surfaced for display.
func (s *Session) Login(ctx context.Context, email, password string) (*account.User, error) {
	res, err := s.svc.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(res)
}

// Register creates an account and logs the new user in, persisting the
// credential the same way Login does.
func (s *Session) Register(ctx context.Context, req auth.RegisterRequest) (*account.User, error) {
	res, err := s.svc.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.adopt(res)
}

func (s *Session) adopt(res *auth.AuthResult) (*account.User, error) {
	if err := s.store.SetToken(res.Token); err != nil {
		return nil, err
	}
	user := res.User
	s.mu.Lock()
	s.offline = false
	s.mu.Unlock()
	if err := s.store.SetUser(&user); err != nil {
		// Keep store and memory consistent: a credential we could not fully
		// persist is rolled back rather than half-kept.
		s.store.Logout()
		return nil, err
	}
	s.settle(Authenticated, &user)
	return &user, nil
}

// Logout clears the store and the in-memory user. Synchronous, no network
// call; logging out an already-anonymous session is a no-op.
func (s *Session) Logout() {
	s.store.Logout()
	s.settle(Anonymous, nil)
}

// Invalidate is the single entry point for externally detected authorization
// failure (the API gateway's 401 hook). Same effect as Logout; kept separate
// so the two paths are distinguishable at call sites.
func (s *Session) Invalidate() {
	s.Logout()
}

// UpdateUser replaces the in-memory user and the persisted copy. No server
// round-trip: the caller has already confirmed the update with the backend.
func (s *Session) UpdateUser(user *account.User) error {
	s.mu.Lock()
	if s.state != Authenticated {
		s.mu.Unlock()
		return errNotAuthenticated
	}
	s.mu.Unlock()

	if err := s.store.SetUser(user); err != nil {
		return err
	}
	s.settle(Authenticated, user)
	return nil
}
