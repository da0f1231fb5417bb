// Handles serving fixed feature access for the backoffice package
package backoffice

import (
	"context"

	"github.com/cccteam/backoffice/featuretypes"
)

// StaticPermissions is a PermissionSource that serves a fixed mapping, for tests
// and development hosts that run without the remote permissions endpoint.
type StaticPermissions struct {
	access featuretypes.FeatureAccess
}

// NewStaticPermissions returns a StaticPermissions serving fa.
func NewStaticPermissions(fa featuretypes.FeatureAccess) StaticPermissions {
	return StaticPermissions{access: fa.Clone()}
}

// FeatureAccess returns the fixed mapping regardless of token.
func (s StaticPermissions) FeatureAccess(_ context.Context, _ string) (featuretypes.FeatureAccess, error) {
	return s.access.Clone(), nil
}
