package backoffice

import (
	"net/http"
)

// Option defines a function signature for setting Client options.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. (default: one with the
// configured timeout)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.api.hc = hc
	}
}

// WithExclusiveFunding makes the funding coordinator reject a fund or deduct
// call while another is still pending, instead of the default last-completion-wins
// tracking.
func WithExclusiveFunding() Option {
	return func(c *Client) {
		c.Funding.exclusive = true
	}
}

// WithPermissionSource overrides the source the feature resolver reads from.
// (default: the remote permissions endpoint)
func WithPermissionSource(source PermissionSource) Option {
	return func(c *Client) {
		c.Features.source = source
	}
}
