// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api implements the single outbound HTTP gateway to the LearnHub
// backend. Every request the CLI makes goes through this client: the bearer
// token is attached on the way out when one exists, and an authorization
// failure on the way back clears the session through one registered hook
// before the error reaches the caller.
//
// The base URL is resolved once at construction and never re-read.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	errs "learnhub/cli/internal/errors"
)

// TokenSource supplies the current bearer token, or "" when the request
// should go out unauthenticated.
type TokenSource func() string

// Client is the configured HTTP gateway. It performs no retries; every
// non-authorization failure propagates to the caller unmodified.
type Client struct {
	// baseURL is the base URL for all requests (e.g. "http://localhost:3001/api")
	baseURL string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// tokenSource yields the bearer token for the pre-send hook
	tokenSource TokenSource
	// onUnauthorized runs once per 401 response, before the error returns
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets the pre-send credential hook.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokenSource = ts }
}

// OnUnauthorized registers the hook invoked when the backend rejects the
// bearer credential. The session layer uses this to invalidate itself so
// storage is only ever cleared through one path.
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.client = h }
}

// New creates a client rooted at baseURL with a 10-second timeout.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs GET path?query, decoding the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs POST path with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs PUT path with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs PATCH path with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs DELETE path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	c.setStandardHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Pre-send hook: attach the credential when one exists.
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(errs.Transport, "backend unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Post-receive hook: invalidate the session first, then surface the
		// failure. Callers still get the error and must handle it, but the
		// credential is already gone by the time they do.
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errs.New(errs.Unauthorized, serverMessage(resp, "session expired"))
	}

	if resp.StatusCode >= 500 {
		return errs.New(errs.Transport, fmt.Sprintf("server error (%d): %s", resp.StatusCode, serverMessage(resp, http.StatusText(resp.StatusCode))))
	}

	if resp.StatusCode >= 400 {
		return errs.New(errs.Validation, serverMessage(resp, http.StatusText(resp.StatusCode)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(errs.Transport, "malformed response", err)
	}
	return nil
}

// setStandardHeaders applies headers common to all requests.
func (c *Client) setStandardHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("User-Agent", "learnhub-cli/1.0")
}

// serverMessage extracts the backend's human-readable error message from a
// failed response, falling back to the provided default.
func serverMessage(resp *http.Response, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if m := strings.TrimSpace(payload.Message); m != "" {
			return m
		}
		if m := strings.TrimSpace(payload.Error); m != "" {
			return m
		}
	}
	return fallback
}
