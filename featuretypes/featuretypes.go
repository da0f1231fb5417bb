// featuretypes package contains the feature flag vocabulary shared by the backoffice packages.
package featuretypes

// Feature is the logical name of a console feature or permission flag.
type Feature string

const (
	Dashboard           Feature = "dashboard"
	PlatformStats       Feature = "platformStats"
	UserManagement      Feature = "userManagement"
	KYCReview           Feature = "kycReview"
	FeesAndRates        Feature = "feesAndRates"
	GiftCards           Feature = "giftCards"
	Banners             Feature = "banners"
	FundingAndBalances  Feature = "fundingAndBalances"
	PushNotifications   Feature = "pushNotifications"
	Security            Feature = "security"
	AuditAndMonitoring  Feature = "auditAndMonitoring"
	AdminSettings       Feature = "adminSettings"
	Settings            Feature = "settings"
	CanDeleteUsers      Feature = "canDeleteUsers"
	CanManageWallets    Feature = "canManageWallets"
	CanManageFees       Feature = "canManageFees"
	CanViewTransactions Feature = "canViewTransactions"
	CanFundUsers        Feature = "canFundUsers"
	CanManageKYC        Feature = "canManageKYC"
	CanAccessReports    Feature = "canAccessReports"
	CanManageAdmins     Feature = "canManageAdmins"
)

// All returns the full fixed flag set.
func All() []Feature {
	return []Feature{
		Dashboard, PlatformStats, UserManagement, KYCReview, FeesAndRates,
		GiftCards, Banners, FundingAndBalances, PushNotifications, Security,
		AuditAndMonitoring, AdminSettings, Settings, CanDeleteUsers,
		CanManageWallets, CanManageFees, CanViewTransactions, CanFundUsers,
		CanManageKYC, CanAccessReports, CanManageAdmins,
	}
}

// FeatureAccess is the server-provided flag mapping for one session. It is stored
// wholesale; flags the server omitted stay absent rather than being backfilled.
// A nil FeatureAccess means not loaded, which is distinct from all flags false.
type FeatureAccess map[Feature]bool

// Enabled reports the flag's stored value, false for flags the server omitted.
func (fa FeatureAccess) Enabled(f Feature) bool {
	return fa[f]
}

// Clone returns an independent copy so callers can't mutate shared state.
func (fa FeatureAccess) Clone() FeatureAccess {
	if fa == nil {
		return nil
	}
	clone := make(FeatureAccess, len(fa))
	for f, v := range fa {
		clone[f] = v
	}

	return clone
}

// DefaultVisibility is the table used for feature visibility before any fetch has
// landed. It is intentionally distinct from AllGranted and from all-false.
func DefaultVisibility() FeatureAccess {
	return FeatureAccess{
		Dashboard: true,
		Settings:  true,
	}
}

// AllGranted is the fallback synthesized for super admins when the permissions
// service is unreachable.
func AllGranted() FeatureAccess {
	fa := make(FeatureAccess, len(All()))
	for _, f := range All() {
		fa[f] = true
	}

	return fa
}
