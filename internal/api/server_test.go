package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"agenthub/internal/api/handler/v1handler"
	"agenthub/pkg/controller"

	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

// the otel exporter registers itself globally, so every test shares one handler
var testHandler = sync.OnceValues(func() (http.Handler, error) {
	return newHandler(Deps{Database: fakePinger{}}, Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{},
		MetricsPath:       "/metrics",
	})
})

func serve(t *testing.T, method, path string) *http.Response {
	t.Helper()

	h, err := testHandler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec.Result()
}

func TestRoot(t *testing.T) {
	res := serve(t, http.MethodGet, "/")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "AgentHub API is running", body["message"])
	require.Equal(t, Version, body["version"])
}

func TestHealth(t *testing.T) {
	res := serve(t, http.MethodGet, "/health")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "connected", body["database"])
}

func TestHealthDatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	healthHandler(fakePinger{err: errors.New("connection refused")}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"status":"unhealthy","database":"unreachable"}`, rec.Body.String())
}

func TestSpecs(t *testing.T) {
	res := serve(t, http.MethodGet, "/specs/v1.yaml")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, v1Spec, b)
}

func TestV1Routing(t *testing.T) {
	res := serve(t, http.MethodGet, "/v1/unknown")
	defer res.Body.Close()

	require.Equal(t, http.StatusNotFound, res.StatusCode)
	var body v1handler.ErrorBody
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Equal(t, "NOT_FOUND", body.Code)
	require.Equal(t, "route not found", body.Message)
}

func TestRequestIDEchoed(t *testing.T) {
	res := serve(t, http.MethodGet, "/")
	defer res.Body.Close()

	require.NotEmpty(t, res.Header.Get(controller.RequestIDHeader))
}
