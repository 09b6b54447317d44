// Package commerce is the HTTP gateway to the legacy commerce backend. The
// upstream owns carts, orders, gift cards and the points ledger; everything
// here is a thin, typed client over its JSON API.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"luna-storefront/internal/infra"
	"luna-storefront/internal/pkg/config"
)

// Client is the shared HTTP plumbing of all upstream gateways. The configured
// timeout bounds every round-trip, so nothing downstream can wait on the
// upstream longer than that.
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		serviceToken: cfg.ServiceToken,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		logger:       logger,
	}
}

// envelope is the legacy response wrapper. Older endpoints report the boolean
// under "status", newer ones under "success"; both are honored.
type envelope struct {
	Status  *bool           `json:"status"`
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) ok() bool {
	if e.Status != nil {
		return *e.Status
	}
	if e.Success != nil {
		return *e.Success
	}
	// bare payloads without a wrapper are successes
	return true
}

func (c *Client) get(ctx context.Context, userID int64, path string, out any) error {
	return c.do(ctx, http.MethodGet, userID, path, nil, out)
}

func (c *Client) post(ctx context.Context, userID int64, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, userID, path, body, out)
}

func (c *Client) do(ctx context.Context, method string, userID int64, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapGatewayErr(c.logger, infra.KindDecode, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "failed to build upstream request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Acting-User", strconv.FormatInt(userID, 10))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "upstream unreachable", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "failed to read upstream response", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return infra.WrapGatewayErr(c.logger, infra.KindNotFound, "resource not found upstream", nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return infra.WrapGatewayErr(c.logger, infra.KindUnavailable, "upstream returned "+resp.Status, nil)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecode, "malformed upstream response", err)
	}

	if !env.ok() || resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = "request rejected by upstream"
		}
		return infra.WrapGatewayErr(c.logger, infra.KindRejected, msg, nil)
	}

	if out == nil {
		return nil
	}
	payload := env.Data
	if len(payload) == 0 {
		payload = raw
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return infra.WrapGatewayErr(c.logger, infra.KindDecode, "malformed upstream payload", err)
	}
	return nil
}
