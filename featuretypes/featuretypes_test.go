package featuretypes

import (
	"testing"
)

func TestEnabledDefaultsFalse(t *testing.T) {
	t.Parallel()

	fa := FeatureAccess{Dashboard: true}
	if !fa.Enabled(Dashboard) {
		t.Error("Enabled(Dashboard) = false, want true")
	}
	if fa.Enabled(KYCReview) {
		t.Error("Enabled(KYCReview) = true for omitted flag, want false")
	}
	if (FeatureAccess)(nil).Enabled(Dashboard) {
		t.Error("Enabled() on nil mapping = true, want false")
	}
}

func TestFallbackTablesAreDistinct(t *testing.T) {
	t.Parallel()

	visibility := DefaultVisibility()
	granted := AllGranted()

	if !visibility.Enabled(Dashboard) || !visibility.Enabled(Settings) {
		t.Error("DefaultVisibility() must show dashboard and settings")
	}
	if visibility.Enabled(UserManagement) {
		t.Error("DefaultVisibility() must hide everything else")
	}

	for _, f := range All() {
		if !granted.Enabled(f) {
			t.Errorf("AllGranted() missing %s", f)
		}
	}
	if len(granted) == len(visibility) {
		t.Error("fallback tables must differ")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	fa := FeatureAccess{Dashboard: true}
	clone := fa.Clone()
	clone[Dashboard] = false

	if !fa.Enabled(Dashboard) {
		t.Error("mutating a clone leaked into the source")
	}
	if (FeatureAccess)(nil).Clone() != nil {
		t.Error("Clone() of nil mapping must stay nil")
	}
}
