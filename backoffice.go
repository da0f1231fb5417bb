// Package backoffice is a client for the administrative back-office API. It owns
// the session state container, resolves feature visibility and permission gates
// from the remote permissions endpoint (with role-based fallbacks when that
// endpoint is degraded), coordinates fund/deduct operations against the
// balance-management endpoints, and reconciles other admins' feature grants.
//
// Feature flags resolved here are visibility hints for a console UI, not a
// security boundary; enforcement stays with the remote API.
package backoffice

import (
	"net/http"

	"github.com/cccteam/ccc/accesstypes"
)

const name = "github.com/cccteam/backoffice" // Define package name for tracer

// Roles recognized by the console.
const (
	RoleSuperAdmin accesstypes.Role = "super_admin"
	RoleAdmin      accesstypes.Role = "admin"
	RoleModerator  accesstypes.Role = "moderator"
)

// User is the authenticated operator's record as reported by the remote API.
type User struct {
	ID    string           `json:"id"`
	Email string           `json:"email"`
	Name  string           `json:"name"`
	Role  accesstypes.Role `json:"role"`
}

// Client bundles the session state container with the resolver, funding
// coordinator, and feature editor, all backed by one API client.
type Client struct {
	Session  *Session
	Features *FeatureResolver
	Funding  *FundingCoordinator
	Grants   *FeatureEditor

	api *apiClient
}

// New constructs a Client against cfg's base URL. The zero Session is
// unauthenticated; hydrate it with SetToken or a token store.
func New(cfg *Config, opts ...Option) *Client {
	c := &Client{
		Session: NewSession(),
		api: &apiClient{
			baseURL: cfg.BaseURL,
			hc:      &http.Client{Timeout: cfg.HTTPTimeout},
		},
	}
	c.Features = NewFeatureResolver(c.api, c.Session)
	c.Funding = NewFundingCoordinator(c.api, c.Session)
	c.Grants = NewFeatureEditor(c.api, c.Session)

	for _, opt := range opts {
		opt(c)
	}

	return c
}
