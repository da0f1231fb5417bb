package backoffice

import (
	"context"

	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// FeatureResolver owns the mapping from a feature name to a boolean grant. The
// remote permissions endpoint is the source of truth; when it is unreachable the
// resolver degrades to role-based fallbacks so the console stays minimally usable.
type FeatureResolver struct {
	source  PermissionSource
	session *Session
}

// NewFeatureResolver creates a FeatureResolver over the given source and session.
func NewFeatureResolver(source PermissionSource, session *Session) *FeatureResolver {
	return &FeatureResolver{
		source:  source,
		session: session,
	}
}

// Fetch requests the permissions endpoint and replaces the session's feature
// access wholesale on success. On failure the degraded state is applied before
// the error is returned: super admins get every flag granted, everyone else is
// left with feature access unset.
func (r *FeatureResolver) Fetch(ctx context.Context) (featuretypes.FeatureAccess, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "FeatureResolver.Fetch()")
	defer span.End()

	fa, err := r.source.FeatureAccess(ctx, r.session.Token())
	if err != nil {
		if r.session.Role() == RoleSuperAdmin {
			fallback := featuretypes.AllGranted()
			r.session.SetFeatureAccess(fallback)

			return fallback, errors.Wrap(err, "PermissionSource.FeatureAccess()")
		}

		return nil, errors.Wrap(err, "PermissionSource.FeatureAccess()")
	}

	r.session.SetFeatureAccess(fa)

	return fa, nil
}

// EnsureLoaded triggers Fetch at most once per credential, and only when a token
// exists and feature access is still unset. Failures are logged, never raised;
// feature visibility must not block the rest of the console. There is no retry
// and no polling.
func (r *FeatureResolver) EnsureLoaded(ctx context.Context) {
	if !r.session.beginFetch() {
		return
	}

	if _, err := r.Fetch(ctx); err != nil {
		logger.Ctx(ctx).Error(errors.Wrap(err, "FeatureResolver.Fetch()"))
	}
}

// Query reports feature visibility. Before any mapping is loaded it answers from
// the default visibility table, so the dashboard and settings sections render
// while everything else stays hidden.
func (r *FeatureResolver) Query(f featuretypes.Feature) bool {
	fa, loaded := r.session.FeatureAccess()
	if !loaded {
		return featuretypes.DefaultVisibility().Enabled(f)
	}

	return fa.Enabled(f)
}

// QueryPermission reports a permission gate. Unlike Query it is pessimistic:
// before any mapping is loaded every gate is closed. Call sites use Query to
// decide whether to show a section and QueryPermission to decide whether an
// action inside it is allowed.
func (r *FeatureResolver) QueryPermission(f featuretypes.Feature) bool {
	fa, loaded := r.session.FeatureAccess()
	if !loaded {
		return false
	}

	return fa.Enabled(f)
}
