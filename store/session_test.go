package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/ezkit-shop/storefront/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEstablishWithoutCookie(t *testing.T) {
	_, api := newTestClient(t)

	session := NewSession(api)
	// A 401 just means nobody is logged in
	require.NoError(t, session.Establish(context.Background()))
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User())
}

func TestSessionEstablishAfterLogin(t *testing.T) {
	_, api := newTestClient(t)
	loginTestUser(t, api)

	session := NewSession(api)
	require.NoError(t, session.Establish(context.Background()))
	assert.True(t, session.Authenticated())
	require.NotNil(t, session.User())
	assert.Equal(t, "test@example.com", session.User().Email)
}

func TestSessionLoginLogout(t *testing.T) {
	_, api := newTestClient(t)

	ctx := context.Background()
	session := NewSession(api)
	require.NoError(t, session.Login(ctx, "test@example.com", "Password1"))
	assert.True(t, session.Authenticated())

	require.NoError(t, session.Logout(ctx))
	assert.False(t, session.Authenticated())
	assert.Nil(t, session.User())
}

func TestSessionLogoutInvalidatesOnFailure(t *testing.T) {
	backend, api := newTestClient(t)

	ctx := context.Background()
	session := NewSession(api)
	require.NoError(t, session.Login(ctx, "test@example.com", "Password1"))

	backend.FailNext("/api/auth/logout", 1)
	require.Error(t, session.Logout(ctx))
	assert.False(t, session.Authenticated())
}

func TestSessionObserveInvalidatesOn401(t *testing.T) {
	_, api := newTestClient(t)

	ctx := context.Background()
	session := NewSession(api)
	require.NoError(t, session.Login(ctx, "test@example.com", "Password1"))

	stale := &client.APIError{StatusCode: http.StatusUnauthorized, Message: "Unauthorized access"}
	assert.Equal(t, stale, session.Observe(stale))
	assert.False(t, session.Authenticated())

	// Other errors pass through without touching the session
	require.NoError(t, session.Login(ctx, "test@example.com", "Password1"))
	boom := &client.APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}
	session.Observe(boom)
	assert.True(t, session.Authenticated())
}
