package backoffice

import (
	"context"
	"sync"

	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/backoffice/tokenstore"
	"github.com/cccteam/ccc/accesstypes"
	"github.com/go-playground/errors/v5"
)

// Session holds the authenticated operator's state: the opaque bearer token, the
// user record, and the current feature access mapping. It is an explicit,
// injectable object rather than an ambient singleton; all mutation goes through
// its methods, which serialize against a single mutex.
//
// FeatureAccess is nil until the first successful fetch or fallback lands, which
// is a distinct state from "loaded with every flag false".
type Session struct {
	mu             sync.Mutex
	token          string
	user           *User
	featureAccess  featuretypes.FeatureAccess
	fetchAttempted bool
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// NewSessionFromStore returns a session hydrated with the token persisted in store.
func NewSessionFromStore(ctx context.Context, store tokenstore.Store) (*Session, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "tokenstore.Store.Token()")
	}

	s := NewSession()
	s.SetToken(token)

	return s, nil
}

// SetToken installs a new bearer token. Any previously resolved feature access is
// discarded and the one-shot fetch latch is reset, so the next EnsureLoaded will
// fetch for the new credential.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.featureAccess = nil
	s.fetchAttempted = false
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// SetUser installs the operator's user record.
func (s *Session) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = u
}

// User returns the operator's user record, nil when unknown.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// Role returns the operator's role, empty when no user record is loaded.
func (s *Session) Role() accesstypes.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ""
	}

	return s.user.Role
}

// SetFeatureAccess replaces the stored feature access wholesale.
func (s *Session) SetFeatureAccess(fa featuretypes.FeatureAccess) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.featureAccess = fa.Clone()
}

// FeatureAccess returns a copy of the stored mapping and whether one is loaded.
func (s *Session) FeatureAccess() (featuretypes.FeatureAccess, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.featureAccess == nil {
		return nil, false
	}

	return s.featureAccess.Clone(), true
}

// Clear resets the session to its unauthenticated state (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.featureAccess = nil
	s.fetchAttempted = false
}

// beginFetch flips the one-shot fetch latch. It reports false when a fetch was
// already attempted for this credential or no fetch is warranted.
func (s *Session) beginFetch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" || s.featureAccess != nil || s.fetchAttempted {
		return false
	}
	s.fetchAttempted = true

	return true
}
