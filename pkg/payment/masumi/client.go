// Package masumi implements payment.Client against the Masumi registry and
// payment services.
package masumi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agenthub/pkg/metrics"
	"agenthub/pkg/payment"
	"agenthub/pkg/serrors"
)

const (
	DefaultRegistryURL = "http://localhost:3000"
	DefaultPaymentURL  = "http://localhost:3001"

	serviceName       = "masumi"
	agentsUnreachable = "Endpoint /api/v1/agents not reachable or not implemented."
)

type Options struct {
	RegistryURL string
	PaymentURL  string
	// APIKey is sent in the token header.
	APIKey string
}

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	registryURL string
	paymentURL  string
	apiKey      string
}

var _ payment.Client = (*Client)(nil)

func (c *Client) Status(ctx context.Context) payment.Status {
	var st payment.Status
	st.Registry = c.health(ctx, c.registryURL)
	st.Payment = c.health(ctx, c.paymentURL)

	return st
}

func (c *Client) health(ctx context.Context, base string) any {
	var out any
	if err := c.do(ctx, "health", http.MethodGet, base+"/api/v1/health", nil, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}

	return out
}

func (c *Client) Agents(ctx context.Context) (payment.AgentList, error) {
	var raw any
	if err := c.do(ctx, "agents", http.MethodGet, c.registryURL+"/api/v1/agents", nil, &raw); err != nil {
		return payment.AgentList{Agents: []any{}, Note: agentsUnreachable}, nil //nolint: nilerr
	}

	switch v := raw.(type) {
	case []any:
		return payment.AgentList{Agents: v}, nil
	case map[string]any:
		if agents, ok := v["agents"].([]any); ok {
			return payment.AgentList{Agents: agents}, nil
		}
		if data, ok := v["data"].(map[string]any); ok {
			if agents, ok := data["agents"].([]any); ok {
				return payment.AgentList{Agents: agents}, nil
			}
		}
	}

	return payment.AgentList{Agents: []any{}}, errors.New("unexpected registry agents payload")
}

func (c *Client) Wallet(ctx context.Context) (string, error) {
	var rs struct {
		Data struct {
			WalletAddress string `json:"walletAddress"`
		} `json:"data"`
	}
	if err := c.do(ctx, "wallet", http.MethodGet, c.paymentURL+"/api/v1/wallet", nil, &rs); err != nil {
		return "", err
	}
	if rs.Data.WalletAddress == "" {
		return "", serrors.With(serrors.ErrUnavailable, "payment service has no wallet configured")
	}

	return rs.Data.WalletAddress, nil
}

func (c *Client) Transfer(ctx context.Context, to string, lovelace int64) (*payment.Transfer, error) {
	type transferReq struct {
		To       string `json:"to"`
		Lovelace string `json:"lovelace"`
	}
	var rs struct {
		Data struct {
			From   string `json:"from"`
			TxHash string `json:"txHash"`
		} `json:"data"`
	}
	body := transferReq{To: to, Lovelace: fmt.Sprint(lovelace)}
	if err := c.do(ctx, "transfer", http.MethodPost, c.paymentURL+"/api/v1/transfer", body, &rs); err != nil {
		return nil, err
	}
	if rs.Data.TxHash == "" {
		return nil, errors.New("payment service returned no transaction hash")
	}

	return &payment.Transfer{From: rs.Data.From, To: to, Lovelace: lovelace, TxHash: rs.Data.TxHash}, nil
}

// do sends a JSON request and decodes a successful JSON response into out.
func (c *Client) do(ctx context.Context, operation, method, url string, in, out any) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveOutbound(serviceName, operation, start, err) }()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("token", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return serrors.With(serrors.ErrNotFound, "%s not found", operation)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return serrors.With(serrors.ErrUnauthorized, "masumi rejected the API key")
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%s failed with status %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}

	return nil
}

// New constructs a Client. Empty URLs fall back to the local defaults.
func New(httpClient *http.Client, options Options) *Client {
	if options.RegistryURL == "" {
		options.RegistryURL = DefaultRegistryURL
	}
	if options.PaymentURL == "" {
		options.PaymentURL = DefaultPaymentURL
	}

	return &Client{
		httpClient:  httpClient,
		registryURL: strings.TrimRight(options.RegistryURL, "/"),
		paymentURL:  strings.TrimRight(options.PaymentURL, "/"),
		apiKey:      options.APIKey,
	}
}
