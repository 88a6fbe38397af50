// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPutGetRoundTrip(t *testing.T) {
	c := openTemp(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, KeyEnrollments, []byte(`[{"id":1}]`)))

	value, age, err := c.Get(ctx, KeyEnrollments)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(value))
	assert.GreaterOrEqual(t, age.Seconds(), 0.0)
}

func TestGetMissingKey(t *testing.T) {
	c := openTemp(t)

	value, _, err := c.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestPutReplaces(t *testing.T) {
	c := openTemp(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, KeyProfile, []byte("v1")))
	require.NoError(t, c.Put(ctx, KeyProfile, []byte("v2")))

	value, _, err := c.Get(ctx, KeyProfile)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(value))
}

func TestClear(t *testing.T) {
	c := openTemp(t)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, KeyEnrollments, []byte("a")))
	require.NoError(t, c.Put(ctx, KeyProfile, []byte("b")))
	require.NoError(t, c.Clear(ctx))

	for _, key := range []string{KeyEnrollments, KeyProfile} {
		value, _, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, value)
	}
}
