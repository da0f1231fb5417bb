package backoffice

import (
	"net/http"
	"strings"

	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"go.opentelemetry.io/otel"
)

// handle returns a handler that logs any error coming from our custom handlers
func handle(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			if httpio.CauseIsError(err) {
				logger.Req(r).Error(err)
			} else {
				logger.Req(r).Infof("['%s']", strings.Join(httpio.Messages(err), "', '"))
			}
		}
	})
}

// Features is a handler reporting the session's current feature flags, for hosts
// that proxy console visibility to their own UI.
func (r *FeatureResolver) Features() http.HandlerFunc {
	type response struct {
		Loaded   bool                       `json:"loaded"`
		Features featuretypes.FeatureAccess `json:"features"`
	}

	return handle(func(w http.ResponseWriter, req *http.Request) error {
		ctx, span := otel.Tracer(name).Start(req.Context(), "FeatureResolver.Features()")
		defer span.End()

		r.EnsureLoaded(ctx)

		fa, loaded := r.session.FeatureAccess()
		if !loaded {
			fa = featuretypes.DefaultVisibility()
		}

		return httpio.NewEncoder(w).Ok(response{Loaded: loaded, Features: fa})
	})
}

// RequireFeature hides routes behind a feature's visibility: requests for a
// feature that is not visible get a 404, as if the section did not exist.
func (r *FeatureResolver) RequireFeature(f featuretypes.Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handle(func(w http.ResponseWriter, req *http.Request) error {
			ctx, span := otel.Tracer(name).Start(req.Context(), "FeatureResolver.RequireFeature()")
			defer span.End()

			r.EnsureLoaded(ctx)

			if !r.Query(f) {
				return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewNotFoundMessagef("%s not found", req.URL.Path))
			}

			next.ServeHTTP(w, req.WithContext(ctx))

			return nil
		})
	}
}

// RequirePermission gates routes behind a permission: requests without the
// permission get a 403. Unlike RequireFeature it is pessimistic before the
// mapping loads, matching QueryPermission.
func (r *FeatureResolver) RequirePermission(f featuretypes.Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return handle(func(w http.ResponseWriter, req *http.Request) error {
			ctx, span := otel.Tracer(name).Start(req.Context(), "FeatureResolver.RequirePermission()")
			defer span.End()

			r.EnsureLoaded(ctx)

			if !r.QueryPermission(f) {
				return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewForbiddenMessage("permission denied"))
			}

			next.ServeHTTP(w, req.WithContext(ctx))

			return nil
		})
	}
}
