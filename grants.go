package backoffice

import (
	"context"

	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/backoffice/util"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// FeatureEditor reconciles another admin's feature grants against a desired set.
// It backs the console's permission-management screens; like everything else here
// it is a client of the remote API, which remains the enforcement point.
type FeatureEditor struct {
	features FeatureManager
	session  *Session
}

// NewFeatureEditor creates a new FeatureEditor.
func NewFeatureEditor(features FeatureManager, session *Session) *FeatureEditor {
	return &FeatureEditor{
		features: features,
		session:  session,
	}
}

// SetFeatures ensures that the target admin is granted the specified features ONLY.
// Names outside the fixed flag set are skipped. It returns true if the admin has
// at least one granted feature after the operation.
func (e *FeatureEditor) SetFeatures(ctx context.Context, adminID string, features []featuretypes.Feature) (hasFeature bool, err error) {
	ctx, span := otel.Tracer(name).Start(ctx, "FeatureEditor.SetFeatures()")
	defer span.End()

	token := e.session.Token()
	if token == "" {
		return false, errors.New("no auth token in session")
	}

	current, err := e.features.AdminFeatureAccess(ctx, token, adminID)
	if err != nil {
		return false, errors.Wrap(err, "FeatureManager.AdminFeatureAccess()")
	}

	var currentGranted []featuretypes.Feature
	for _, f := range featuretypes.All() {
		if current.Enabled(f) {
			currentGranted = append(currentGranted, f)
		}
	}

	var desired []featuretypes.Feature
	for _, f := range util.Dedupe(features) {
		if util.Contains(featuretypes.All(), f) {
			desired = append(desired, f)
		}
	}

	enable := util.Exclude(desired, currentGranted)
	if len(enable) > 0 {
		if err := e.features.EnableFeatures(ctx, token, adminID, enable...); err != nil {
			return false, errors.Wrap(err, "FeatureManager.EnableFeatures()")
		}
		logger.Ctx(ctx).Infof("Admin %s granted features %v", adminID, enable)
	}

	disable := util.Exclude(currentGranted, desired)
	if len(disable) > 0 {
		if err := e.features.DisableFeatures(ctx, token, adminID, disable...); err != nil {
			return false, errors.Wrap(err, "FeatureManager.DisableFeatures()")
		}
		logger.Ctx(ctx).Infof("Admin %s revoked features %v", adminID, disable)
	}

	return len(desired) > 0, nil
}
