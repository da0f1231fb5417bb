package backoffice

import (
	"context"
	"sync"

	"github.com/cccteam/backoffice/apitypes"
	"github.com/cccteam/ccc"
	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// FundingState is the lifecycle position of the coordinator's tracked call.
type FundingState string

const (
	FundingIdle    FundingState = "idle"
	FundingPending FundingState = "pending"
	FundingSettled FundingState = "settled"
	FundingFailed  FundingState = "failed"
)

// Fallback display messages when neither the server nor the transport supplied one.
const (
	fundingFailedMessage   = "Funding failed"
	deductionFailedMessage = "Deduction failed"
)

// FundingStatus is a snapshot of the coordinator's tracked state. Correlation
// identifies which call's completion wrote the snapshot, since under the default
// concurrency model the last completion wins.
type FundingStatus struct {
	State       FundingState
	Correlation ccc.UUID
	Response    *apitypes.FundingResult
	Err         string
}

// FundingCoordinator issues fund and deduct requests against the
// balance-management endpoints and tracks the in-flight/settled/failed lifecycle
// of the most recent call.
//
// By default concurrent calls are not mutually excluded: each transition
// overwrites the shared status, so the final stored result belongs to whichever
// call's completion was processed last. Construct the parent Client with
// WithExclusiveFunding to instead reject a call while another is pending.
type FundingCoordinator struct {
	balances  BalanceManager
	session   *Session
	exclusive bool

	mu     sync.Mutex
	status FundingStatus
}

// NewFundingCoordinator creates a FundingCoordinator over the given balance
// manager and session.
func NewFundingCoordinator(balances BalanceManager, session *Session) *FundingCoordinator {
	return &FundingCoordinator{
		balances: balances,
		session:  session,
		status:   FundingStatus{State: FundingIdle},
	}
}

// Fund credits the target user's balance.
func (c *FundingCoordinator) Fund(ctx context.Context, req apitypes.FundingRequest) (*apitypes.FundingResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "FundingCoordinator.Fund()")
	defer span.End()

	return c.transfer(ctx, c.balances.Fund, req, fundingFailedMessage)
}

// Deduct debits the target user's balance.
func (c *FundingCoordinator) Deduct(ctx context.Context, req apitypes.FundingRequest) (*apitypes.FundingResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "FundingCoordinator.Deduct()")
	defer span.End()

	return c.transfer(ctx, c.balances.Deduct, req, deductionFailedMessage)
}

// Status returns a snapshot of the tracked call state.
func (c *FundingCoordinator) Status() FundingStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status
}

type transferFunc func(ctx context.Context, token string, req apitypes.FundingRequest) (*apitypes.FundingResult, error)

func (c *FundingCoordinator) transfer(ctx context.Context, call transferFunc, req apitypes.FundingRequest, fallbackMsg string) (*apitypes.FundingResult, error) {
	id, err := ccc.NewUUID()
	if err != nil {
		return nil, errors.Wrap(err, "ccc.NewUUID()")
	}

	if err := c.begin(id); err != nil {
		return nil, err
	}

	// Local precondition: never send an unauthenticated funding call over the wire.
	token := c.session.Token()
	if token == "" {
		err := httpio.NewUnauthorizedMessage("No auth token")
		c.complete(id, nil, httpio.Message(err))

		return nil, err
	}

	if err := req.Validate(); err != nil {
		c.complete(id, nil, httpio.Message(err))

		return nil, err
	}

	resp, err := call(ctx, token, req)
	if err != nil {
		msg := displayMessage(err, fallbackMsg)
		c.complete(id, nil, msg)
		logger.Ctx(ctx).Infof("funding call %s failed: %s", id, msg)

		return nil, err
	}

	c.complete(id, resp, "")

	return resp, nil
}

// begin transitions the tracked status to pending, clearing any previous
// response or error. In exclusive mode it instead rejects while a call is pending.
func (c *FundingCoordinator) begin(id ccc.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.exclusive && c.status.State == FundingPending {
		return httpio.NewBadRequestMessage("A funding operation is already in progress")
	}

	c.status = FundingStatus{State: FundingPending, Correlation: id}

	return nil
}

// complete records a call's settlement. Writes are unconditional: when two calls
// raced, the stored result is the one whose completion was processed last, and
// Correlation records which call that was.
func (c *FundingCoordinator) complete(id ccc.UUID, resp *apitypes.FundingResult, errMsg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if errMsg != "" {
		c.status = FundingStatus{State: FundingFailed, Correlation: id, Err: errMsg}

		return
	}

	c.status = FundingStatus{State: FundingSettled, Correlation: id, Response: resp}
}

// displayMessage resolves the human-readable failure text: the structured server
// message when present, then the transport error's own text, then the fallback.
// Transport failures arrive wrapped, so the cause supplies the displayable text
// rather than the chain's source-annotated rendering.
func displayMessage(err error, fallback string) string {
	if msg := httpio.Message(err); msg != "" {
		return msg
	}
	if err != nil {
		if msg := errors.Cause(err).Error(); msg != "" {
			return msg
		}
	}

	return fallback
}
