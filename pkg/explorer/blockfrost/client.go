// Package blockfrost provides an explorer.Explorer backed by the Blockfrost
// REST API.
package blockfrost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"agenthub/pkg/domain"
	"agenthub/pkg/explorer"
	"agenthub/pkg/metrics"
	"agenthub/pkg/serrors"
)

const (
	// PreprodURL is the Blockfrost endpoint for the Preprod test network.
	PreprodURL = "https://cardano-preprod.blockfrost.io/api/v0"

	serviceName = "blockfrost"
)

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Blockfrost
	baseURL    string       // baseURL is the network specific API root
	projectID  string       // projectID is the Blockfrost API key
}

type amount struct {
	Unit     string `json:"unit"`
	Quantity string `json:"quantity"`
}

// lovelaceOf returns the lovelace entry of a Blockfrost amount list along
// with the remaining native assets.
func lovelaceOf(amounts []amount) (int64, []domain.Asset, error) {
	var (
		lovelace int64
		assets   []domain.Asset
	)
	for _, a := range amounts {
		if a.Unit != "lovelace" {
			assets = append(assets, domain.Asset{Unit: a.Unit, Quantity: a.Quantity})

			continue
		}
		n, err := strconv.ParseInt(a.Quantity, 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("could not parse lovelace quantity %q: %w", a.Quantity, err)
		}
		lovelace += n
	}

	return lovelace, assets, nil
}

func (c *Client) Address(ctx context.Context, address string) (*domain.AddressInfo, error) {
	// https://docs.blockfrost.io/#tag/cardano--addresses/GET/addresses/{address}
	var rs struct {
		Address string   `json:"address"`
		Amount  []amount `json:"amount"`
	}
	if err := c.get(ctx, "address", "/addresses/"+url.PathEscape(address), nil, &rs); err != nil {
		return nil, err
	}

	lovelace, assets, err := lovelaceOf(rs.Amount)
	if err != nil {
		return nil, err
	}

	return &domain.AddressInfo{Address: rs.Address, Lovelace: lovelace, Assets: assets}, nil
}

func (c *Client) UTXOs(ctx context.Context, address string) ([]domain.UTXO, error) {
	var rs []struct {
		TxHash      string   `json:"tx_hash"`
		OutputIndex int      `json:"output_index"`
		Amount      []amount `json:"amount"`
	}
	if err := c.get(ctx, "utxos", "/addresses/"+url.PathEscape(address)+"/utxos", nil, &rs); err != nil {
		return nil, err
	}

	out := make([]domain.UTXO, 0, len(rs))
	for _, u := range rs {
		lovelace, _, err := lovelaceOf(u.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.UTXO{TxHash: u.TxHash, OutputIndex: u.OutputIndex, Lovelace: lovelace})
	}

	return out, nil
}

func (c *Client) AddressTransactions(ctx context.Context, address string, count int) ([]domain.AddressTx, error) {
	q := url.Values{}
	q.Set("order", "desc")
	if count > 0 {
		q.Set("count", strconv.Itoa(count))
	}

	var rs []struct {
		TxHash      string `json:"tx_hash"`
		TxIndex     int    `json:"tx_index"`
		BlockHeight int64  `json:"block_height"`
	}
	if err := c.get(ctx, "address_transactions",
		"/addresses/"+url.PathEscape(address)+"/transactions", q, &rs); err != nil {
		return nil, err
	}

	out := make([]domain.AddressTx, 0, len(rs))
	for _, tx := range rs {
		out = append(out, domain.AddressTx(tx))
	}

	return out, nil
}

func (c *Client) Transaction(ctx context.Context, hash string) (*domain.ChainTx, error) {
	var rs struct {
		Hash        string `json:"hash"`
		BlockHeight int64  `json:"block_height"`
		BlockTime   int64  `json:"block_time"`
		Fees        string `json:"fees"`
	}
	if err := c.get(ctx, "transaction", "/txs/"+url.PathEscape(hash), nil, &rs); err != nil {
		return nil, err
	}

	fees, err := strconv.ParseInt(rs.Fees, 10, 64)
	if err != nil && rs.Fees != "" {
		return nil, fmt.Errorf("could not parse fees %q: %w", rs.Fees, err)
	}

	return &domain.ChainTx{
		Hash:        rs.Hash,
		BlockHeight: rs.BlockHeight,
		BlockTime:   time.Unix(rs.BlockTime, 0).UTC(),
		Fees:        fees,
	}, nil
}

// get performs a GET against path and decodes a successful JSON body into out.
// A 404 maps to serrors.ErrNotFound and a 429 to serrors.ErrRateLimited.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values, out any) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveOutbound(serviceName, operation, start, err) }()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("project_id", c.projectID)

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

var _ explorer.Explorer = (*Client)(nil)

// New constructs a Client. An empty baseURL selects the Preprod endpoint.
func New(httpClient *http.Client, baseURL, projectID string) *Client {
	if baseURL == "" {
		baseURL = PreprodURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		projectID:  projectID,
	}
}
