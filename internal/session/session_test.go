// Copyright (c) 2025 LearnHub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/cli/internal/account"
	"learnhub/cli/internal/auth"
	"learnhub/cli/internal/credstore"
	errs "learnhub/cli/internal/errors"
)

// fakeAuth implements authAPI for tests.
type fakeAuth struct {
	loginResult    *auth.AuthResult
	loginErr       error
	registerResult *auth.AuthResult
	registerErr    error
	profileUser    *account.User
	profileErr     error
	profileCalls   int
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*auth.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResult, error) {
	return f.registerResult, f.registerErr
}

func (f *fakeAuth) GetProfile(ctx context.Context) (*account.User, error) {
	f.profileCalls++
	return f.profileUser, f.profileErr
}

func student(id int64, name string) *account.User {
	return &account.User{ID: id, Name: name, Email: "a@b.com", Role: account.RoleStudent}
}

func TestInitWithoutCredentialGoesAnonymous(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{}
	s := newSession(store, fake)

	_, loading := s.Current()
	assert.True(t, loading)
	assert.Equal(t, Uninitialized, s.State())

	s.Init(context.Background())

	user, loading := s.Current()
	assert.Nil(t, user)
	assert.False(t, loading)
	assert.Equal(t, Anonymous, s.State())
	assert.Zero(t, fake.profileCalls, "no network call without a persisted pair")
}

func TestInitValidCredentialAdoptsServerUser(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("T1"))
	require.NoError(t, store.SetUser(student(1, "Stale Name")))

	// The server copy differs from the persisted one (role changed
	// server-side); the server wins and the store is reconciled.
	serverUser := &account.User{ID: 1, Name: "Stale Name", Email: "a@b.com", Role: account.RoleInstructor}
	fake := &fakeAuth{profileUser: serverUser}
	s := newSession(store, fake)

	s.Init(context.Background())

	user, loading := s.Current()
	require.NotNil(t, user)
	assert.False(t, loading)
	assert.Equal(t, account.RoleInstructor, user.Role)
	assert.Equal(t, account.RoleInstructor, store.GetUser().Role)
	assert.Equal(t, Authenticated, s.State())
}

func TestInitUnreachableBackendMarksOffline(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("T1"))
	require.NoError(t, store.SetUser(student(1, "Ada")))

	fake := &fakeAuth{profileErr: errs.New(errs.Transport, "backend unreachable")}
	s := newSession(store, fake)

	s.Init(context.Background())

	assert.Equal(t, Anonymous, s.State())
	assert.True(t, s.Offline())
}

func TestInitRejectedCredentialIsNotOffline(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("stale"))
	require.NoError(t, store.SetUser(student(1, "Ada")))

	// The backend was reached and refused the credential. Offline must stay
	// false so no command falls back to cached per-user data.
	fake := &fakeAuth{profileErr: errs.New(errs.Unauthorized, "session expired")}
	s := newSession(store, fake)

	s.Init(context.Background())

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, s.Offline())
	assert.False(t, store.IsAuthenticated())
}

func TestInitWithoutCredentialIsNotOffline(t *testing.T) {
	s := newSession(credstore.NewMemory(), &fakeAuth{})
	s.Init(context.Background())
	assert.False(t, s.Offline())
}

func TestLoginAfterOfflineStartResetsOffline(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("T1"))
	require.NoError(t, store.SetUser(student(1, "Ada")))
	fake := &fakeAuth{
		profileErr:  errs.New(errs.Transport, "backend unreachable"),
		loginResult: &auth.AuthResult{User: *student(1, "Ada"), Token: "T2"},
	}
	s := newSession(store, fake)
	s.Init(context.Background())
	require.True(t, s.Offline())

	_, err := s.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.False(t, s.Offline())
}

func TestInitInvalidTokenClearsStore(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("stale"))
	require.NoError(t, store.SetUser(student(1, "Ada")))

	fake := &fakeAuth{profileErr: errors.New("unauthorized")}
	s := newSession(store, fake)

	s.Init(context.Background())

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.GetUser())
}

func TestInitMalformedCachedUserClearsDanglingToken(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("T1"))
	store.SetRawUser([]byte("{corrupt"))

	fake := &fakeAuth{}
	s := newSession(store, fake)

	s.Init(context.Background())

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, store.IsAuthenticated())
	assert.Zero(t, fake.profileCalls)
}

func TestInitRunsOnce(t *testing.T) {
	store := credstore.NewMemory()
	require.NoError(t, store.SetToken("T1"))
	require.NoError(t, store.SetUser(student(1, "Ada")))
	fake := &fakeAuth{profileUser: student(1, "Ada")}
	s := newSession(store, fake)

	s.Init(context.Background())
	s.Init(context.Background())

	assert.Equal(t, 1, fake.profileCalls)
}

func TestLoginThenLogoutLeavesStoreEmpty(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{loginResult: &auth.AuthResult{User: *student(1, "Ada"), Token: "T1"}}
	s := newSession(store, fake)
	s.Init(context.Background())

	user, err := s.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "T1", store.GetToken())
	assert.Equal(t, Authenticated, s.State())

	s.Logout()

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.GetUser())

	cur, _ := s.Current()
	assert.Nil(t, cur)
}

func TestFailedLoginStaysAnonymous(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{loginErr: errors.New("invalid credentials")}
	s := newSession(store, fake)
	s.Init(context.Background())

	_, err := s.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)
	assert.Equal(t, Anonymous, s.State())
	assert.False(t, store.IsAuthenticated())
}

func TestRegisterPersistsCredential(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{registerResult: &auth.AuthResult{User: *student(2, "Ida"), Token: "T2"}}
	s := newSession(store, fake)
	s.Init(context.Background())

	user, err := s.Register(context.Background(), auth.RegisterRequest{Name: "Ida", Email: "i@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "T2", store.GetToken())
	assert.Equal(t, "Ida", store.GetUser().Name)
}

func TestUpdateUserIsLocalOnly(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{loginResult: &auth.AuthResult{User: *student(1, "Ada"), Token: "T1"}}
	s := newSession(store, fake)
	s.Init(context.Background())
	_, err := s.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	updated := student(1, "New Name")
	require.NoError(t, s.UpdateUser(updated))

	cur, _ := s.Current()
	assert.Equal(t, "New Name", cur.Name)
	// A fresh read from the store reflects the update too.
	assert.Equal(t, "New Name", store.GetUser().Name)
	assert.Equal(t, 0, fake.profileCalls, "no network call")
}

func TestUpdateUserRequiresAuthenticated(t *testing.T) {
	store := credstore.NewMemory()
	s := newSession(store, &fakeAuth{})
	s.Init(context.Background())

	err := s.UpdateUser(student(1, "X"))
	require.Error(t, err)
}

func TestInvalidateFromAnyStateEmptiesStore(t *testing.T) {
	store := credstore.NewMemory()
	fake := &fakeAuth{loginResult: &auth.AuthResult{User: *student(1, "Ada"), Token: "T1"}}
	s := newSession(store, fake)
	s.Init(context.Background())
	_, err := s.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	// Simulates the API gateway's 401 hook firing.
	s.Invalidate()

	assert.Equal(t, Anonymous, s.State())
	assert.False(t, store.IsAuthenticated())

	// Idempotent: a second 401 racing the first changes nothing.
	s.Invalidate()
	assert.Equal(t, Anonymous, s.State())
}

func TestFromContextPanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() {
		session := FromContext(context.Background())
		_ = session
	})
}

func TestFromContextRoundTrip(t *testing.T) {
	s := newSession(credstore.NewMemory(), &fakeAuth{})
	ctx := WithContext(context.Background(), s)
	assert.Same(t, s, FromContext(ctx))
}
