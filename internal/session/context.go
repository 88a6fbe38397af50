// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
)

var errNotAuthenticated = errors.New("session: not authenticated")

type ctxKey struct{}

// WithContext attaches the session handle to a context. The command layer
// does this once at startup; everything below reads it via FromContext.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached to ctx. Calling it from code that
// runs outside the wired command tree is a programmer error, so a missing
// session panics rather than silently defaulting.
func FromContext(ctx context.Context) *Session {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	if !ok {
		panic("session.FromContext: no session attached to context; wrap the context with session.WithContext first")
	}
	return s
}
