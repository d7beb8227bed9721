package blockfrost_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"agenthub/pkg/explorer/blockfrost"
	"agenthub/pkg/serrors"

	"github.com/stretchr/testify/require"
)

const addr = "addr_test1qz2fxv2umyhttkxyxp8x0dlpdt3k6cwng5pxj3jhsydzer3jcu5d8ps7zex2k2xt3uqxgjqnnj0vs2f"

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *blockfrost.Client {
	return blockfrost.New(&http.Client{Transport: fn}, "", "test-project")
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestClient_Address_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "cardano-preprod.blockfrost.io", r.URL.Host)
		require.Equal(t, "/api/v0/addresses/"+addr, r.URL.Path)
		require.Equal(t, "test-project", r.Header.Get("project_id"))

		return respond(http.StatusOK, `{"address":"`+addr+`","amount":[
			{"unit":"lovelace","quantity":"12500000"},
			{"unit":"abc123","quantity":"7"}]}`), nil
	})

	info, err := c.Address(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, addr, info.Address)
	require.Equal(t, int64(12_500_000), info.Lovelace)
	require.Len(t, info.Assets, 1)
	require.Equal(t, "abc123", info.Assets[0].Unit)
}

func TestClient_Address_notFound(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusNotFound, `{"status_code":404,"error":"Not Found"}`), nil
	})

	_, err := c.Address(context.Background(), addr)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestClient_rateLimited429(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusTooManyRequests, "slow down"), nil
	})

	_, err := c.UTXOs(context.Background(), addr)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "slow down")
}

func TestClient_serverError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusInternalServerError, "oops"), nil
	})

	_, err := c.Transaction(context.Background(), "deadbeef")
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
	require.Contains(t, err.Error(), "oops")
}

func TestClient_transportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})

	_, err := c.Address(context.Background(), addr)
	require.ErrorContains(t, err, "dial failed")
}

func TestClient_UTXOs_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/v0/addresses/"+addr+"/utxos", r.URL.Path)

		return respond(http.StatusOK, `[
			{"tx_hash":"aa","output_index":0,"amount":[{"unit":"lovelace","quantity":"1000000"}]},
			{"tx_hash":"bb","output_index":2,"amount":[{"unit":"lovelace","quantity":"2500000"}]}]`), nil
	})

	utxos, err := c.UTXOs(context.Background(), addr)
	require.NoError(t, err)
	require.Len(t, utxos, 2)
	require.Equal(t, "bb", utxos[1].TxHash)
	require.Equal(t, 2, utxos[1].OutputIndex)
	require.Equal(t, int64(2_500_000), utxos[1].Lovelace)
}

func TestClient_AddressTransactions_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/v0/addresses/"+addr+"/transactions", r.URL.Path)
		require.Equal(t, "5", r.URL.Query().Get("count"))
		require.Equal(t, "desc", r.URL.Query().Get("order"))

		return respond(http.StatusOK, `[{"tx_hash":"cc","tx_index":1,"block_height":42,"block_time":1700000000}]`), nil
	})

	txs, err := c.AddressTransactions(context.Background(), addr, 5)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, "cc", txs[0].TxHash)
	require.Equal(t, int64(42), txs[0].BlockHeight)
}

func TestClient_Transaction_success(t *testing.T) {
	c := blockfrost.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "example.test", r.URL.Host)
		require.Equal(t, "/txs/deadbeef", r.URL.Path)

		return respond(http.StatusOK, `{"hash":"deadbeef","block_height":100,"block_time":1700000000,"fees":"170000"}`), nil
	})}, "https://example.test/", "k")

	tx, err := c.Transaction(context.Background(), "deadbeef")
	require.NoError(t, err)
	require.Equal(t, "deadbeef", tx.Hash)
	require.Equal(t, int64(100), tx.BlockHeight)
	require.Equal(t, int64(170000), tx.Fees)
	require.True(t, tx.BlockTime.Equal(time.Unix(1700000000, 0)))
}
