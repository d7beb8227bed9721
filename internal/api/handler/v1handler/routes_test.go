package v1handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agenthub/internal/api/handler/v1handler"
	"agenthub/internal/marketplace"
	mockmarketplace "agenthub/internal/marketplace/mock"
	"agenthub/pkg/domain"
	"agenthub/pkg/serrors"
	"agenthub/pkg/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routesEnv struct {
	service *mockmarketplace.MockService
	server  *httptest.Server
	token   string
}

func newRoutesEnv(t *testing.T) *routesEnv {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	service := mockmarketplace.NewMockService(gomock.NewController(t))
	srv := httptest.NewServer(v1handler.New(v1handler.Deps{Marketplace: service}).Routes(sh))
	t.Cleanup(srv.Close)

	now := time.Now()

	return &routesEnv{
		service: service,
		server:  srv,
		token:   signJWTRS256(t, priv, wallet, false, now, now.Add(time.Hour)),
	}
}

func (env *routesEnv) do(t *testing.T, method, path, body string, auth bool) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, env.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+env.token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out map[string]any
	if res.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	}

	return res, out
}

func TestRoutes_ListAgents(t *testing.T) {
	env := newRoutesEnv(t)
	agent := domain.Agent{ID: domain.NewAgentID(), Name: "Summarizer", Price: 2_500_000, Tags: []string{"nlp"}}

	env.service.EXPECT().ListAgents(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q marketplace.AgentQuery) ([]domain.Agent, error) {
			require.Equal(t, "nlp", q.Category)
			require.Equal(t, 5, q.Limit)
			require.NotNil(t, q.IsApproved)
			require.False(t, *q.IsApproved)
			require.Nil(t, q.IsActive)

			return []domain.Agent{agent}, nil
		})

	res, body := env.do(t, http.MethodGet, "/agents?category=nlp&limit=5&is_approved=false", "", false)
	require.Equal(t, http.StatusOK, res.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	first := items[0].(map[string]any)
	require.Equal(t, "Summarizer", first["name"])
	require.Equal(t, "2.500000", first["price_ada"])
	require.Equal(t, agent.ID.String(), first["id"])
}

func TestRoutes_BadQuery(t *testing.T) {
	env := newRoutesEnv(t)

	res, body := env.do(t, http.MethodGet, "/agents?limit=ten", "", false)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "limit must be an integer", body["message"])

	res, _ = env.do(t, http.MethodGet, "/agents/not-a-uuid", "", false)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRoutes_GetAgentNotFound(t *testing.T) {
	env := newRoutesEnv(t)
	id := domain.NewAgentID()

	env.service.EXPECT().Agent(gomock.Any(), id).Return(nil, serrors.With(serrors.ErrNotFound, "agent not found"))

	res, body := env.do(t, http.MethodGet, "/agents/"+id.String(), "", false)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "NOT_FOUND", body["code"])
	require.Equal(t, "agent not found", body["message"])
}

func TestRoutes_CreateAgent(t *testing.T) {
	env := newRoutesEnv(t)

	res, _ := env.do(t, http.MethodPost, "/agents", `{"name":"x"}`, false)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, body := env.do(t, http.MethodPost, "/agents", `{"name":"x"}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Contains(t, body["message"], "description is required")
	require.Contains(t, body["message"], "short_description is required")

	long := strings.Repeat("d", 1001)
	res, body = env.do(t, http.MethodPost, "/agents",
		`{"name":"x","description":"`+long+`","short_description":"s","creator":"me","category":"misc"}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "description must be at most 1000", body["message"])

	res, body = env.do(t, http.MethodPost, "/agents",
		`{"name":"x","description":"d","short_description":"","creator":"me","category":"misc"}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "short_description is required", body["message"])

	env.service.EXPECT().CreateAgent(gomock.Any(), marketplace.Caller{Wallet: wallet}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ marketplace.Caller, in marketplace.AgentInput) (*domain.Agent, error) {
			require.Equal(t, int64(1_000_000), in.Price)
			require.Equal(t, []string{"a"}, in.Tags)

			return &domain.Agent{ID: domain.NewAgentID(), Name: in.Name, Price: in.Price}, nil
		})

	res, body = env.do(t, http.MethodPost, "/agents",
		`{"name":"x","description":"d","short_description":"s","creator":"me","category":"misc","price":1000000,"tags":["a"]}`, true)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "x", body["name"])
}

func TestRoutes_UpdateAndDeleteAgent(t *testing.T) {
	env := newRoutesEnv(t)
	id := domain.NewAgentID()

	env.service.EXPECT().UpdateAgent(gomock.Any(), gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ marketplace.Caller, _ domain.AgentID, u storage.AgentUpdates) (*domain.Agent, error) {
			require.NotNil(t, u.IsActive)
			require.False(t, *u.IsActive)
			require.Nil(t, u.Name)

			return &domain.Agent{ID: id}, nil
		})
	res, _ := env.do(t, http.MethodPatch, "/agents/"+id.String(), `{"is_active":false}`, true)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = env.do(t, http.MethodPatch, "/agents/"+id.String(), `{"unknown":1}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	env.service.EXPECT().DeleteAgent(gomock.Any(), marketplace.Caller{Wallet: wallet}, id).Return(nil)
	res, _ = env.do(t, http.MethodDelete, "/agents/"+id.String(), "", true)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestRoutes_Demo(t *testing.T) {
	env := newRoutesEnv(t)
	id := domain.NewAgentID()
	jobID := domain.NewJobID()

	env.service.EXPECT().Demo(gomock.Any(), id, marketplace.DemoRequest{
		Input:      map[string]any{"q": "hi"},
		UserWallet: "addr_test1anon",
	}).Return(&marketplace.DemoResult{
		JobID:     jobID,
		Status:    domain.JobStatusCompleted,
		Message:   "Demo completed successfully",
		DemoCount: 1,
		DemoLimit: 3,
	}, nil)

	res, body := env.do(t, http.MethodPost, "/agents/"+id.String()+"/demo",
		`{"input":{"q":"hi"},"user_wallet":"addr_test1anon"}`, false)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, jobID.String(), body["job_id"])
	require.EqualValues(t, 1, body["demo_count"])

	// authenticated callers are counted under their own wallet, body may be empty
	env.service.EXPECT().Demo(gomock.Any(), id, marketplace.DemoRequest{UserWallet: wallet}).
		Return(nil, serrors.With(serrors.ErrRateLimited, "Demo limit reached. You have used 3/3 demos for this agent."))

	res, body = env.do(t, http.MethodPost, "/agents/"+id.String()+"/demo", "", true)
	require.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	require.Equal(t, "Demo limit reached. You have used 3/3 demos for this agent.", body["message"])
}

func TestRoutes_Purchase(t *testing.T) {
	env := newRoutesEnv(t)
	id := domain.NewAgentID()

	res, body := env.do(t, http.MethodPost, "/agents/"+id.String()+"/purchase", `{}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "tx_hash is required", body["message"])

	env.service.EXPECT().Purchase(gomock.Any(), marketplace.Caller{Wallet: wallet}, id,
		marketplace.PurchaseRequest{TxHash: "abc"}).
		Return(&marketplace.PurchaseResult{
			Transaction: domain.Transaction{TxHash: "abc", Status: domain.TransactionStatusPending},
			Job:         domain.AgentJob{Status: domain.JobStatusQueued},
		}, nil)

	res, body = env.do(t, http.MethodPost, "/agents/"+id.String()+"/purchase", `{"tx_hash":"abc"}`, true)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "pending", body["transaction"].(map[string]any)["status"])
	require.Equal(t, "queued", body["job"].(map[string]any)["status"])
}

func TestRoutes_Users(t *testing.T) {
	env := newRoutesEnv(t)
	user := &domain.User{ID: domain.NewUserID(), WalletAddress: wallet, Username: "bob"}

	env.service.EXPECT().RegisterUser(gomock.Any(), wallet, "bob", "").Return(user, nil)
	res, body := env.do(t, http.MethodPost, "/users", `{"username":"bob"}`, true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, wallet, body["wallet_address"])
	require.Empty(t, body["purchased_agents"])

	res, _ = env.do(t, http.MethodPatch, "/users/me", `{"email":"nope"}`, true)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	env.service.EXPECT().UserByWallet(gomock.Any(), wallet).Return(user, nil)
	res, _ = env.do(t, http.MethodGet, "/users/me", "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = env.do(t, http.MethodGet, "/users/me", "", false)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRoutes_Transactions(t *testing.T) {
	env := newRoutesEnv(t)
	id := domain.NewTransactionID()

	env.service.EXPECT().Transactions(gomock.Any(), marketplace.Caller{Wallet: wallet},
		storage.TransactionFilter{Status: domain.TransactionStatusConfirmed}).
		Return([]domain.Transaction{{ID: id, BlockHeight: 10}}, nil)
	res, body := env.do(t, http.MethodGet, "/transactions?status=confirmed", "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, body["items"], 1)

	env.service.EXPECT().VerifyTransaction(gomock.Any(), marketplace.Caller{Wallet: wallet}, id).
		Return(&domain.Transaction{ID: id, Status: domain.TransactionStatusConfirmed}, nil)
	res, body = env.do(t, http.MethodPost, "/transactions/"+id.String()+"/verify", "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "confirmed", body["status"])

	res, _ = env.do(t, http.MethodGet, "/transactions", "", false)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRoutes_JobsAndWallets(t *testing.T) {
	env := newRoutesEnv(t)

	env.service.EXPECT().JobStats(gomock.Any(), (*domain.AgentID)(nil)).Return(domain.JobStats{Total: 4, Demos: 2}, nil)
	res, body := env.do(t, http.MethodGet, "/jobs/stats", "", false)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.EqualValues(t, 4, body["total"])

	env.service.EXPECT().WalletBalance(gomock.Any(), "addr_test1x").
		Return(&domain.AddressInfo{Address: "addr_test1x", Lovelace: 1_500_000}, nil)
	res, body = env.do(t, http.MethodGet, "/wallets/addr_test1x/balance", "", false)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "1.500000", body["ada"])

	env.service.EXPECT().Earnings(gomock.Any(), "addr_test1x").Return(int64(0), nil)
	res, body = env.do(t, http.MethodGet, "/wallets/addr_test1x/earnings", "", false)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.EqualValues(t, 0, body["lovelace"])

	jobID := domain.NewJobID()
	env.service.EXPECT().Job(gomock.Any(), marketplace.Caller{}, jobID).
		Return(nil, serrors.With(serrors.ErrNotFound, "job not found"))
	res, body = env.do(t, http.MethodGet, "/jobs/"+jobID.String(), "", false)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "job not found", body["message"])
	require.NotContains(t, body, "output")

	env.service.EXPECT().Job(gomock.Any(), marketplace.Caller{Wallet: wallet}, jobID).
		Return(&domain.AgentJob{ID: jobID, UserWallet: wallet, Output: map[string]any{"result": "ok"}}, nil)
	res, body = env.do(t, http.MethodGet, "/jobs/"+jobID.String(), "", true)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, wallet, body["user_wallet"])

	res, body = env.do(t, http.MethodGet, "/nowhere", "", false)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	require.Equal(t, "route not found", body["message"])
}
