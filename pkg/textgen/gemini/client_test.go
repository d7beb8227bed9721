package gemini_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"agenthub/pkg/serrors"
	"agenthub/pkg/textgen/gemini"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *gemini.Client {
	t.Helper()
	c, err := gemini.New(context.Background(), gemini.Options{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: fn},
		BaseURL:    "https://gemini.test/",
	})
	require.NoError(t, err)

	return c
}

func jsonResponse(status int, body string) *http.Response {
	h := http.Header{}
	h.Set("Content-Type", "application/json")

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_requiresAPIKey(t *testing.T) {
	_, err := gemini.New(context.Background(), gemini.Options{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Generate_success(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "gemini.test", r.URL.Host)
		require.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "write a haiku")
		require.Contains(t, string(body), "you are a poet")

		return jsonResponse(http.StatusOK,
			`{"candidates":[{"content":{"role":"model","parts":[{"text":"  autumn ledger  "}]}}]}`), nil
	})

	require.Equal(t, gemini.DefaultModel, c.Model())
	text, err := c.Generate(context.Background(), "you are a poet", "write a haiku")
	require.NoError(t, err)
	require.Equal(t, "autumn ledger", text)
}

func TestClient_Generate_rateLimited(t *testing.T) {
	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests,
			`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`), nil
	})

	_, err := c.Generate(context.Background(), "", "hello")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestClient_Generate_emptyResponse(t *testing.T) {
	c := newTestClient(t, func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
	})

	_, err := c.Generate(context.Background(), "", "hello")
	require.ErrorContains(t, err, "empty response")
}
