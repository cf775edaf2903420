package store

import (
	"context"

	"github.com/ezkit-shop/storefront/client"
	"github.com/ezkit-shop/storefront/models"
	"github.com/ezkit-shop/storefront/utils"
)

// Session holds the authenticated-user state for the process. It is built
// from a server round trip and invalidated explicitly on logout or on any
// 401 the API layer surfaces; nothing is cached across runs. Not safe for
// concurrent use.
type Session struct {
	api           *client.Client
	user          *models.User
	authenticated bool
}

// NewSession creates an unauthenticated session backed by the given client
func NewSession(api *client.Client) *Session {
	return &Session{api: api}
}

// Establish derives the initial auth state from the server. A 401 means the
// cookie is absent or stale and is not an error; anything else is.
func (s *Session) Establish(ctx context.Context) error {
	user, err := s.api.GetProfile(ctx)
	if err != nil {
		if client.IsUnauthorized(err) {
			utils.LogInfo("No active session")
			s.Invalidate()
			return nil
		}
		utils.LogError("Failed to establish session: %v", err)
		return err
	}
	s.user = user
	s.authenticated = true
	utils.LogInfo("Session established for %s", user.Email)
	return nil
}

// Login authenticates and marks the session active
func (s *Session) Login(ctx context.Context, email, password string) error {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		utils.LogError("Login failed: %v", err)
		return err
	}
	s.user = user
	s.authenticated = true
	utils.LogInfo("User logged in successfully: %s", user.Email)
	return nil
}

// Logout ends the server session and invalidates the local state even when
// the server call fails; a dead cookie is gone either way.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	s.Invalidate()
	if err != nil {
		utils.LogError("Logout call failed: %v", err)
		return err
	}
	utils.LogInfo("User logged out successfully")
	return nil
}

// Invalidate clears the local auth state
func (s *Session) Invalidate() {
	s.user = nil
	s.authenticated = false
}

// Observe inspects an error from any API call and invalidates the session
// on 401, so stale cookies flip the state without a dedicated check. It
// returns the error unchanged for the caller's own handling.
func (s *Session) Observe(err error) error {
	if client.IsUnauthorized(err) {
		utils.LogInfo("Session invalidated by 401 response")
		s.Invalidate()
	}
	return err
}

// Authenticated reports the current auth state
func (s *Session) Authenticated() bool {
	return s.authenticated
}

// User returns the logged-in user, or nil
func (s *Session) User() *models.User {
	return s.user
}
