package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakegov/governance-engine/internal/api"
	"github.com/stakegov/governance-engine/internal/config"
	"github.com/stakegov/governance-engine/internal/observability/metrics"
	"github.com/stakegov/governance-engine/internal/services"
	"github.com/stakegov/governance-engine/testutil"
)

func TestMain(m *testing.M) {
	metrics.Init(0)
	os.Exit(m.Run())
}

type apiHarness struct {
	router http.Handler
	chain  *testutil.FakeChainClient
	bank   *testutil.FakeBankClient
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			WriteTimeout: time.Second,
		},
		Governance: *config.DefaultGovernanceConfig(),
		Bank: config.BankConfig{
			URL:            "http://bank.local",
			CustodyAccount: "0x000000000000000000000000000000000000c0de",
			Timeout:        time.Second,
		},
	}

	store := testutil.NewInMemoryStore()
	bank := testutil.NewFakeBankClient()
	chain := testutil.NewFakeChainClient(1000)
	service := services.NewService(cfg, store, bank, chain, nil)

	return &apiHarness{
		router: api.New(cfg, service).Router(),
		chain:  chain,
		bank:   bank,
	}
}

func (h *apiHarness) do(t *testing.T, method, path, caller string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if caller != "" {
		req.Header.Set("X-Staker-Address", caller)
	}

	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestHealthcheck(t *testing.T) {
	h := newAPIHarness(t)
	rec := h.do(t, http.MethodGet, "/healthcheck", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStakeEndpoints(t *testing.T) {
	h := newAPIHarness(t)
	staker := testutil.RandomStakerAddress()

	rec := h.do(t, http.MethodPost, "/v1/stake", staker, map[string]any{"amount": 60_000})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, staker, resp["staker"])
	assert.Equal(t, float64(60_000), resp["staked_amount"])

	rec = h.do(t, http.MethodGet, "/v1/stakes/"+staker, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(60_000), resp["staked_amount"])

	rec = h.do(t, http.MethodGet, "/v1/staked", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(60_000), resp["total_staked"])
}

func TestStake_MissingCaller(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/v1/stake", "", map[string]any{"amount": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStake_InvalidAddress(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/v1/stake", "not-an-address", map[string]any{"amount": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStake_ZeroAmount(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodPost, "/v1/stake", testutil.RandomStakerAddress(), map[string]any{"amount": 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "INVALID_AMOUNT", resp["errorCode"])
}

func TestProposalLifecycleOverHTTP(t *testing.T) {
	h := newAPIHarness(t)
	creator := testutil.RandomStakerAddress()

	rec := h.do(t, http.MethodPost, "/v1/stake", creator, map[string]any{"amount": 100_000})
	require.Equal(t, http.StatusOK, rec.Code)

	// voting period falls back to the configured default when omitted
	rec = h.do(t, http.MethodPost, "/v1/proposals/", creator, map[string]any{
		"title":       "Raise the cap",
		"description": "Increase the block size cap.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[map[string]any](t, rec)
	require.Equal(t, float64(1), created["proposal_id"])

	rec = h.do(t, http.MethodGet, "/v1/proposals/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	proposal := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "ACTIVE", proposal["status"])
	assert.Equal(t, float64(1000), proposal["start_height"])
	assert.Equal(t, float64(1144), proposal["end_height"])
	assert.Equal(t, float64(10_000), proposal["min_votes_required"])
	assert.Equal(t, false, proposal["voting_closed"])
	assert.Equal(t, false, proposal["executable"])

	rec = h.do(t, http.MethodPost, "/v1/proposals/1/votes", creator, map[string]any{"support": true})
	require.Equal(t, http.StatusCreated, rec.Code)
	vote := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(100_000), vote["weight"])

	// double vote over HTTP maps to 409
	rec = h.do(t, http.MethodPost, "/v1/proposals/1/votes", creator, map[string]any{"support": false})
	require.Equal(t, http.StatusConflict, rec.Code)
	errResp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "ALREADY_VOTED", errResp["errorCode"])

	rec = h.do(t, http.MethodGet, fmt.Sprintf("/v1/proposals/1/votes/%s", creator), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/v1/proposals/1/votes", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	votes := decodeBody[[]map[string]any](t, rec)
	require.Len(t, votes, 1)

	// premature execution maps to 409
	rec = h.do(t, http.MethodPost, "/v1/proposals/1/execute", creator, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	h.chain.SetTipHeight(1144)
	rec = h.do(t, http.MethodPost, "/v1/proposals/1/execute", creator, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(t, http.MethodGet, "/v1/proposals/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	proposal = decodeBody[map[string]any](t, rec)
	assert.Equal(t, "EXECUTED", proposal["status"])
	assert.Equal(t, true, proposal["executed"])
	assert.Equal(t, true, proposal["voting_closed"])
	assert.Equal(t, false, proposal["executable"])
}

func TestCastVote_RequiresSupportField(t *testing.T) {
	h := newAPIHarness(t)
	creator := testutil.RandomStakerAddress()

	rec := h.do(t, http.MethodPost, "/v1/stake", creator, map[string]any{"amount": 100_000})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = h.do(t, http.MethodPost, "/v1/proposals/", creator, map[string]any{
		"title":       "Support required",
		"description": "The vote direction cannot be omitted.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = h.do(t, http.MethodPost, "/v1/proposals/1/votes", creator, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProposal_InvalidAndMissingID(t *testing.T) {
	h := newAPIHarness(t)

	rec := h.do(t, http.MethodGet, "/v1/proposals/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodGet, "/v1/proposals/42", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "PROPOSAL_NOT_FOUND", errResp["errorCode"])
}

func TestStake_BankFailureMapsToBadGateway(t *testing.T) {
	h := newAPIHarness(t)

	h.bank.FailNext = true
	rec := h.do(t, http.MethodPost, "/v1/stake", testutil.RandomStakerAddress(), map[string]any{"amount": 100})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
