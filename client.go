package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cccteam/backoffice/apitypes"
	"github.com/cccteam/backoffice/featuretypes"
	"github.com/cccteam/httpio"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
)

// Remote endpoint paths, relative to the configured base URL.
const (
	permissionsPath      = "/admin/permissions"
	fundPath             = "/admin/balance/fund"
	deductPath           = "/admin/balance/deduct"
	adminPermissionsPath = "/admin/admins/%s/permissions"
)

// envelope is the fixed response wrapper every admin API endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// apiClient talks to the remote admin API. It implements PermissionSource,
// BalanceManager, and FeatureManager.
type apiClient struct {
	baseURL string
	hc      *http.Client
}

var (
	_ PermissionSource = &apiClient{}
	_ BalanceManager   = &apiClient{}
	_ FeatureManager   = &apiClient{}
)

// FeatureAccess retrieves the session's feature access mapping from the
// permissions endpoint.
func (c *apiClient) FeatureAccess(ctx context.Context, token string) (featuretypes.FeatureAccess, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.FeatureAccess()")
	defer span.End()

	data := &apitypes.PermissionsData{}
	if err := c.get(ctx, permissionsPath, token, data); err != nil {
		return nil, err
	}
	if data.FeatureAccess == nil {
		return nil, errors.New("permissions response missing featureAccess")
	}

	return data.FeatureAccess, nil
}

// Fund credits the target user's balance.
func (c *apiClient) Fund(ctx context.Context, token string, req apitypes.FundingRequest) (*apitypes.FundingResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.Fund()")
	defer span.End()

	result := &apitypes.FundingResult{}
	if err := c.post(ctx, fundPath, token, req, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Deduct debits the target user's balance.
func (c *apiClient) Deduct(ctx context.Context, token string, req apitypes.FundingRequest) (*apitypes.FundingResult, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.Deduct()")
	defer span.End()

	result := &apitypes.FundingResult{}
	if err := c.post(ctx, deductPath, token, req, result); err != nil {
		return nil, err
	}

	return result, nil
}

// AdminFeatureAccess retrieves another admin's feature access mapping.
func (c *apiClient) AdminFeatureAccess(ctx context.Context, token, adminID string) (featuretypes.FeatureAccess, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.AdminFeatureAccess()")
	defer span.End()

	data := &apitypes.PermissionsData{}
	if err := c.get(ctx, fmt.Sprintf(adminPermissionsPath, adminID), token, data); err != nil {
		return nil, err
	}
	if data.FeatureAccess == nil {
		return nil, errors.New("permissions response missing featureAccess")
	}

	return data.FeatureAccess, nil
}

// EnableFeatures turns the given flags on for another admin.
func (c *apiClient) EnableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.EnableFeatures()")
	defer span.End()

	path := fmt.Sprintf(adminPermissionsPath+"/enable", adminID)

	return c.post(ctx, path, token, apitypes.FeatureUpdate{Features: features}, nil)
}

// DisableFeatures turns the given flags off for another admin.
func (c *apiClient) DisableFeatures(ctx context.Context, token, adminID string, features ...featuretypes.Feature) error {
	ctx, span := otel.Tracer(name).Start(ctx, "apiClient.DisableFeatures()")
	defer span.End()

	path := fmt.Sprintf(adminPermissionsPath+"/disable", adminID)

	return c.post(ctx, path, token, apitypes.FeatureUpdate{Features: features}, nil)
}

func (c *apiClient) get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *apiClient) post(ctx context.Context, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *apiClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "json.Marshal()")
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "http.NewRequestWithContext()")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrap(err, "http.Client.Do()")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "io.ReadAll()")
	}

	env := &envelope{}
	if decodeErr := json.Unmarshal(raw, env); decodeErr != nil {
		// A malformed body is a fetch failure regardless of status code.
		return errors.Wrapf(decodeErr, "json.Unmarshal() status %d", resp.StatusCode)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, env.Message)
	}
	if !env.Success {
		if env.Message != "" {
			return httpio.NewBadRequestMessage(env.Message)
		}

		return errors.Newf("server reported failure for %s", path)
	}

	if out != nil {
		if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
			return errors.Newf("response missing data for %s", path)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "json.Unmarshal()")
		}
	}

	return nil
}

// statusError maps a non-2xx response to a message error carrying the server's
// structured message when one was present.
func statusError(statusCode int, message string) error {
	if message == "" {
		return errors.Newf("unexpected status %d", statusCode)
	}

	switch statusCode {
	case http.StatusUnauthorized:
		return httpio.NewUnauthorizedMessage(message)
	case http.StatusForbidden:
		return httpio.NewForbiddenMessage(message)
	case http.StatusNotFound:
		return httpio.NewNotFoundMessage(message)
	default:
		return httpio.NewBadRequestMessage(message)
	}
}
