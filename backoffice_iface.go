package backoffice

import (
	"context"

	"github.com/cccteam/backoffice/apitypes"
	"github.com/cccteam/backoffice/featuretypes"
)

// PermissionSource defines an interface for retrieving the session's feature access mapping.
type PermissionSource interface {
	FeatureAccess(ctx context.Context, token string) (featuretypes.FeatureAccess, error)
}

// BalanceManager defines an interface for funding and deducting user balances.
type BalanceManager interface {
	Fund(ctx context.Context, token string, req apitypes.FundingRequest) (*apitypes.FundingResult, error)
	Deduct(ctx context.Context, token string, req apitypes.FundingRequest) (*apitypes.FundingResult, error)
}

// FeatureManager defines an interface for managing another admin's feature grants.
type FeatureManager interface {
	AdminFeatureAccess(ctx context.Context, token, adminID string) (featuretypes.FeatureAccess, error)
	EnableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error
	DisableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error
}
