package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/ent/pipelinesteplog"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/pending"
	"github.com/braid-labs/braid/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- fakes ---------------------------------------------------------------

type fakeAnalyzer struct {
	lastUserID    string
	lastText      string
	lastConnected []string
	result        *models.AgentRunResult
}

func (f *fakeAnalyzer) RunAgentAnalysis(_ context.Context, userID, userText string, connected []string) *models.AgentRunResult {
	f.lastUserID = userID
	f.lastText = userText
	f.lastConnected = connected
	if f.result != nil {
		return f.result
	}
	return &models.AgentRunResult{OK: true, Stage: models.StageCompleted, ResultSummary: "done"}
}

type fakeConnections struct {
	connected map[string][]string
	saved     []services.SaveTokenRequest
	deleted   []string
	err       error
}

func (f *fakeConnections) SaveToken(_ context.Context, req services.SaveTokenRequest) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, req)
	return nil
}

func (f *fakeConnections) DeleteToken(_ context.Context, userID, provider string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, userID+"/"+provider)
	return nil
}

func (f *fakeConnections) ConnectedServices(_ context.Context, userID string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.connected[userID], nil
}

type fakeLinkReader struct {
	byUser []*ent.PipelineLink
	manual []*ent.PipelineLink
}

func (f *fakeLinkReader) ListByUser(context.Context, string, int) ([]*ent.PipelineLink, error) {
	return f.byUser, nil
}

func (f *fakeLinkReader) ListManualRequired(context.Context, int) ([]*ent.PipelineLink, error) {
	return f.manual, nil
}

type fakeStepReader struct {
	rows []*ent.PipelineStepLog
}

func (f *fakeStepReader) ListByRun(context.Context, string) ([]*ent.PipelineStepLog, error) {
	return f.rows, nil
}

// --- harness -------------------------------------------------------------

type apiHarness struct {
	router      *gin.Engine
	analyzer    *fakeAnalyzer
	connections *fakeConnections
	links       *fakeLinkReader
	steps       *fakeStepReader
	pending     pending.Store
}

func newAPIHarness() *apiHarness {
	h := &apiHarness{
		analyzer:    &fakeAnalyzer{},
		connections: &fakeConnections{connected: map[string][]string{}},
		links:       &fakeLinkReader{},
		steps:       &fakeStepReader{},
		pending:     pending.NewMemoryStore(),
	}
	server := NewServer(nil, h.analyzer, h.connections, h.links, h.steps, h.pending)
	h.router = server.Router()
	return h
}

func (h *apiHarness) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func strptr(s string) *string { return &s }

// --- tests ---------------------------------------------------------------

func TestAnalyzeUsesRequestServices(t *testing.T) {
	h := newAPIHarness()

	rec := h.do(t, http.MethodPost, "/api/v1/analyze",
		`{"user_id":"u1","text":"노션에 페이지 만들어줘","connected_services":["notion"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", h.analyzer.lastUserID)
	assert.Equal(t, "노션에 페이지 만들어줘", h.analyzer.lastText)
	assert.Equal(t, []string{"notion"}, h.analyzer.lastConnected)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, models.StageCompleted, body["stage"])
}

func TestAnalyzeFallsBackToStoredConnections(t *testing.T) {
	h := newAPIHarness()
	h.connections.connected["u1"] = []string{"notion", "linear"}

	rec := h.do(t, http.MethodPost, "/api/v1/analyze", `{"user_id":"u1","text":"이슈 정리해줘"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"notion", "linear"}, h.analyzer.lastConnected)
}

func TestAnalyzeRejectsMissingFields(t *testing.T) {
	h := newAPIHarness()

	rec := h.do(t, http.MethodPost, "/api/v1/analyze", `{"user_id":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = h.do(t, http.MethodPost, "/api/v1/analyze", `{"text":"뭔가"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeFailureStillReturns200(t *testing.T) {
	h := newAPIHarness()
	h.analyzer.result = &models.AgentRunResult{
		OK:            false,
		Stage:         models.StageValidation,
		ResultSummary: "데이터소스 ID가 필요합니다",
	}

	rec := h.do(t, http.MethodPost, "/api/v1/analyze",
		`{"user_id":"u1","text":"데이터베이스 조회","connected_services":["notion"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, models.StageValidation, body["stage"])
}

func TestListLinks(t *testing.T) {
	h := newAPIHarness()
	h.links.byUser = []*ent.PipelineLink{{
		UserID:             "u1",
		EventID:            "evt_1",
		NotionPageID:       strptr("page_1"),
		Title:              strptr("주간 회의"),
		Status:             pipelinelink.StatusSucceeded,
		CompensationStatus: pipelinelink.CompensationStatusNotRequired,
		RunID:              "run_1",
		UpdatedAt:          time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
	}}

	rec := h.do(t, http.MethodGet, "/api/v1/users/u1/links", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	linksOut, ok := body["links"].([]any)
	require.True(t, ok)
	require.Len(t, linksOut, 1)
	row := linksOut[0].(map[string]any)
	assert.Equal(t, "evt_1", row["event_id"])
	assert.Equal(t, "page_1", row["notion_page_id"])
	assert.Equal(t, "succeeded", row["status"])
	assert.Equal(t, "2026-08-20T09:00:00Z", row["updated_at"])
}

func TestListManualRequired(t *testing.T) {
	h := newAPIHarness()
	h.links.manual = []*ent.PipelineLink{{
		UserID:             "u2",
		EventID:            "evt_9",
		Status:             pipelinelink.StatusManualRequired,
		ErrorCode:          strptr("COMPENSATION_FAILED"),
		CompensationStatus: pipelinelink.CompensationStatusFailed,
		RunID:              "run_9",
	}}

	rec := h.do(t, http.MethodGet, "/api/v1/links/manual-required", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	rows := body["links"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "u2", row["user_id"])
	link := row["link"].(map[string]any)
	assert.Equal(t, "manual_required", link["status"])
	assert.Equal(t, "COMPENSATION_FAILED", link["error_code"])
}

func TestListRunSteps(t *testing.T) {
	h := newAPIHarness()
	idx := 0
	h.steps.rows = []*ent.PipelineStepLog{
		{
			NodeID:    "fetch",
			NodeType:  "tool",
			ToolName:  strptr("notion_data_source_query"),
			Status:    pipelinesteplog.StatusSucceeded,
			Attempt:   1,
			LatencyMs: 120,
		},
		{
			NodeID:    "create",
			NodeType:  "tool",
			Status:    pipelinesteplog.StatusFailed,
			Attempt:   3,
			ItemIndex: &idx,
			ErrorCode: strptr("TOOL_TIMEOUT"),
			LatencyMs: 5000,
		},
	}

	rec := h.do(t, http.MethodGet, "/api/v1/runs/run_1/steps", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "run_1", body["run_id"])
	steps := body["steps"].([]any)
	require.Len(t, steps, 2)

	first := steps[0].(map[string]any)
	assert.Equal(t, "notion_data_source_query", first["tool_name"])
	assert.Equal(t, "succeeded", first["status"])

	second := steps[1].(map[string]any)
	assert.Equal(t, "failed", second["status"])
	assert.Equal(t, float64(3), second["attempt"])
	assert.Equal(t, float64(0), second["item_index"])
	assert.Equal(t, "TOOL_TIMEOUT", second["error_code"])
}

func TestPendingLifecycle(t *testing.T) {
	h := newAPIHarness()
	ctx := context.Background()

	rec := h.do(t, http.MethodGet, "/api/v1/users/u1/pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["pending"])

	require.NoError(t, h.pending.Set(ctx, &models.PendingAction{
		UserID:       "u1",
		Intent:       "data_source_query",
		Action:       "notion.data_source_query",
		MissingSlots: []string{"data_source_id"},
		ExpiresAt:    time.Now().Add(10 * time.Minute),
	}))

	rec = h.do(t, http.MethodGet, "/api/v1/users/u1/pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	pendingOut := decodeBody(t, rec)["pending"].(map[string]any)
	assert.Equal(t, "notion.data_source_query", pendingOut["action"])
	assert.Equal(t, []any{"data_source_id"}, pendingOut["missing_slots"])

	rec = h.do(t, http.MethodDelete, "/api/v1/users/u1/pending", "")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := h.pending.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConnectionEndpoints(t *testing.T) {
	h := newAPIHarness()
	h.connections.connected["u1"] = []string{"notion"}

	rec := h.do(t, http.MethodGet, "/api/v1/users/u1/connections", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"notion"}, decodeBody(t, rec)["connected_services"])

	rec = h.do(t, http.MethodPut, "/api/v1/users/u1/connections/linear",
		`{"access_token":"tok_123","scopes":["issues:create"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, h.connections.saved, 1)
	assert.Equal(t, "u1", h.connections.saved[0].UserID)
	assert.Equal(t, "linear", h.connections.saved[0].Provider)
	assert.Equal(t, "tok_123", h.connections.saved[0].AccessToken)

	// token body without access_token is rejected before the service
	rec = h.do(t, http.MethodPut, "/api/v1/users/u1/connections/linear", `{"scopes":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, h.connections.saved, 1)

	rec = h.do(t, http.MethodDelete, "/api/v1/users/u1/connections/linear", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"u1/linear"}, h.connections.deleted)
}

func TestServiceErrorMapping(t *testing.T) {
	h := newAPIHarness()

	h.connections.err = services.ErrNotFound
	rec := h.do(t, http.MethodDelete, "/api/v1/users/u1/connections/notion", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h.connections.err = services.NewValidationError("provider", "unsupported provider")
	rec = h.do(t, http.MethodDelete, "/api/v1/users/u1/connections/notion", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	h := newAPIHarness()

	rec := h.do(t, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["database"])
}
