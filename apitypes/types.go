// apitypes is a package that contains types mirroring the remote admin API's JSON shapes
package apitypes

import (
	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/backoffice/util"
	"github.com/cccteam/httpio"
)

// Currency is one of the fixed set of currencies the balance-management API serves.
type Currency string

const (
	BTC   Currency = "BTC"
	ETH   Currency = "ETH"
	SOL   Currency = "SOL"
	USDT  Currency = "USDT"
	USDC  Currency = "USDC"
	BNB   Currency = "BNB"
	MATIC Currency = "MATIC"
	TRX   Currency = "TRX"
	NGNZ  Currency = "NGNZ"
)

// Currencies returns the fixed currency set.
func Currencies() []Currency {
	return []Currency{BTC, ETH, SOL, USDT, USDC, BNB, MATIC, TRX, NGNZ}
}

// FundingRequest is the body for the fund and deduct endpoints.
type FundingRequest struct {
	Email    string   `json:"email"`
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// Validate applies boundary validation before the request goes over the wire.
func (r FundingRequest) Validate() error {
	if r.Email == "" {
		return httpio.NewBadRequestMessage("Email is required")
	}
	if r.Amount <= 0 {
		return httpio.NewBadRequestMessage("Amount must be greater than zero")
	}
	if !util.Contains(Currencies(), r.Currency) {
		return httpio.NewBadRequestMessage("Unsupported currency")
	}

	return nil
}

// Balances is the per-currency balance snapshot returned after a funding operation.
// The API always sends the full fixed shape; fields are never trusted as populated
// beyond their zero value.
type Balances struct {
	BTC   float64 `json:"BTC"`
	ETH   float64 `json:"ETH"`
	SOL   float64 `json:"SOL"`
	USDT  float64 `json:"USDT"`
	USDC  float64 `json:"USDC"`
	BNB   float64 `json:"BNB"`
	MATIC float64 `json:"MATIC"`
	TRX   float64 `json:"TRX"`
	NGNZ  float64 `json:"NGNZ"`
}

// FundingResult is the settlement payload for a fund or deduct call.
type FundingResult struct {
	Email        string   `json:"email"`
	Currency     Currency `json:"currency"`
	AmountFunded float64  `json:"amountFunded"`
	NewBalance   float64  `json:"newBalance"`
	Balances     Balances `json:"balances"`
}

// PermissionsData is the payload of the permissions endpoint.
type PermissionsData struct {
	FeatureAccess featuretypes.FeatureAccess `json:"featureAccess"`
}

// FeatureUpdate is the body for the enable/disable feature endpoints.
type FeatureUpdate struct {
	Features []featuretypes.Feature `json:"features"`
}
