package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/pkg/models"
	testdb "github.com/braid-labs/braid/test/database"
)

func testSealer(t *testing.T) *TokenSealer {
	t.Helper()
	sealer, err := NewTokenSealer(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return sealer
}

func TestTokenServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewTokenService(client.Client, testSealer(t))
	userID := uuid.New().String()

	t.Run("save and read back", func(t *testing.T) {
		err := svc.SaveToken(ctx, SaveTokenRequest{
			UserID:      userID,
			Provider:    "notion",
			AccessToken: "secret-notion-token",
			Scopes:      []string{"read_content", "insert_content"},
		})
		require.NoError(t, err)

		token, err := svc.AccessToken(ctx, userID, "notion")
		require.NoError(t, err)
		assert.Equal(t, "secret-notion-token", token)

		scopes, err := svc.GrantedScopes(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"read_content", "insert_content"}, scopes["notion"])
	})

	t.Run("save again replaces the row", func(t *testing.T) {
		err := svc.SaveToken(ctx, SaveTokenRequest{
			UserID:      userID,
			Provider:    "notion",
			AccessToken: "rotated-token",
			Scopes:      []string{"read_content"},
		})
		require.NoError(t, err)

		token, err := svc.AccessToken(ctx, userID, "notion")
		require.NoError(t, err)
		assert.Equal(t, "rotated-token", token)

		services, err := svc.ConnectedServices(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"notion"}, services)
	})

	t.Run("missing provider", func(t *testing.T) {
		_, err := svc.AccessToken(ctx, userID, "linear")
		require.ErrorIs(t, err, ErrTokenMissing)
	})

	t.Run("delete disconnects", func(t *testing.T) {
		require.NoError(t, svc.DeleteToken(ctx, userID, "notion"))
		_, err := svc.AccessToken(ctx, userID, "notion")
		require.ErrorIs(t, err, ErrTokenMissing)
	})
}

func TestPendingActionServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewPendingActionService(client.Client)
	userID := uuid.New().String()

	action := &models.PendingAction{
		UserID: userID,
		Intent: "notion_update",
		Action: "notion.page_update",
		Plan: &models.AgentPlan{
			UserText:       "페이지 제목 바꿔줘",
			TargetServices: []string{"notion"},
		},
		PlanSource:     models.PlanSourceRule,
		CollectedSlots: map[string]any{"new_title": "주간 회의록"},
		MissingSlots:   []string{"page_id"},
		ExpiresAt:      time.Now().Add(5 * time.Minute),
	}

	t.Run("upsert and get round-trips the plan", func(t *testing.T) {
		require.NoError(t, svc.UpsertPendingAction(ctx, action))

		got, err := svc.GetPendingAction(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "notion.page_update", got.Action)
		assert.Equal(t, []string{"page_id"}, got.MissingSlots)
		assert.Equal(t, "주간 회의록", got.CollectedSlots["new_title"])
		require.NotNil(t, got.Plan)
		assert.Equal(t, []string{"notion"}, got.Plan.TargetServices)
	})

	t.Run("second upsert replaces the row", func(t *testing.T) {
		updated := action.Clone()
		updated.CollectedSlots["page_id"] = "12345678-1234-1234-1234-1234567890ab"
		updated.MissingSlots = nil
		require.NoError(t, svc.UpsertPendingAction(ctx, updated))

		got, err := svc.GetPendingAction(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.MissingSlots)
	})

	t.Run("expired row reads as absent and is reaped", func(t *testing.T) {
		expired := action.Clone()
		expired.ExpiresAt = time.Now().Add(-time.Second)
		require.NoError(t, svc.UpsertPendingAction(ctx, expired))

		got, err := svc.GetPendingAction(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, got)

		n, err := svc.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Zero(t, n, "get should already have reaped the row")
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, svc.DeletePendingAction(ctx, userID))
		require.NoError(t, svc.DeletePendingAction(ctx, userID))
	})
}

func TestLinkServiceIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := NewLinkService(client.Client)
	userID := uuid.New().String()

	record := models.PipelineLinkRecord{
		UserID:             userID,
		EventID:            "evt_1",
		NotionPageID:       "page_1",
		LinearIssueID:      "issue_1",
		Title:              "주간 회의",
		Status:             models.LinkSucceeded,
		CompensationStatus: models.CompensationNotRequired,
		RunID:              "run_1",
		PipelineID:         "meeting_sync",
	}

	t.Run("upsert inserts", func(t *testing.T) {
		require.NoError(t, svc.Upsert(ctx, record))

		row, err := svc.GetByEvent(ctx, userID, "evt_1")
		require.NoError(t, err)
		assert.Equal(t, pipelinelink.StatusSucceeded, row.Status)
		require.NotNil(t, row.NotionPageID)
		assert.Equal(t, "page_1", *row.NotionPageID)
	})

	t.Run("re-run overwrites the same (user,event) row", func(t *testing.T) {
		failed := record
		failed.Status = models.LinkFailed
		failed.ErrorCode = "TOOL_TIMEOUT"
		failed.CompensationStatus = models.CompensationCompleted
		failed.RunID = "run_2"
		require.NoError(t, svc.Upsert(ctx, failed))

		rows, err := svc.ListByUser(ctx, userID, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1, "unique (user_id, event_id) must hold across runs")
		assert.Equal(t, pipelinelink.StatusFailed, rows[0].Status)
		assert.Equal(t, "run_2", rows[0].RunID)
		require.NotNil(t, rows[0].ErrorCode)
		assert.Equal(t, "TOOL_TIMEOUT", *rows[0].ErrorCode)
	})

	t.Run("manual_required rows are listable", func(t *testing.T) {
		manual := record
		manual.EventID = "evt_2"
		manual.Status = models.LinkManualRequired
		manual.CompensationStatus = models.CompensationFailed
		manual.ErrorCode = "COMPENSATION_FAILED"
		require.NoError(t, svc.Upsert(ctx, manual))

		rows, err := svc.ListManualRequired(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "evt_2", rows[0].EventID)
	})

	t.Run("rejects rows without an event id", func(t *testing.T) {
		bad := record
		bad.EventID = ""
		err := svc.Upsert(ctx, bad)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestObservabilityLogServicesIntegration(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	commands := NewCommandLogService(client.Client)
	steps := NewStepLogService(client.Client)
	userID := uuid.New().String()

	t.Run("command log append and query", func(t *testing.T) {
		err := commands.Append(ctx, models.CommandLogEntry{
			UserID:        userID,
			Command:       "agent_plan",
			Status:        "completed",
			FinalStatus:   "completed",
			PlanSource:    "llm",
			ExecutionMode: "pipeline_dag",
			Detail:        "services=notion,linear;request_id=req_1;analysis_latency_ms=812",
		})
		require.NoError(t, err)

		rows, err := commands.RecentByUser(ctx, userID, 5)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Contains(t, rows[0].Detail, "request_id=req_1")
	})

	t.Run("step log append and list by run", func(t *testing.T) {
		itemIndex := 0
		entries := []models.StepLogEntry{
			{RequestID: "req_1", RunID: "run_1", PipelineID: "meeting_sync", NodeID: "n1", NodeType: "skill", ToolName: "google_calendar_list_events", Status: models.StepSucceeded, Attempt: 1, LatencyMS: 120},
			{RequestID: "req_1", RunID: "run_1", PipelineID: "meeting_sync", NodeID: "n2_2", NodeType: "skill", ToolName: "notion_create_page", Status: models.StepFailed, Attempt: 3, ItemIndex: &itemIndex, LatencyMS: 4500, ErrorCode: "TOOL_TIMEOUT"},
		}
		for _, entry := range entries {
			require.NoError(t, steps.Append(ctx, entry))
		}

		rows, err := steps.ListByRun(ctx, "run_1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "n1", rows[0].NodeID)
		assert.Equal(t, 3, rows[1].Attempt)
		require.NotNil(t, rows[1].ItemIndex)
		assert.Equal(t, 0, *rows[1].ItemIndex)
	})

	t.Run("retention cleanup keeps fresh rows", func(t *testing.T) {
		n, err := commands.CleanupOlderThan(ctx, 30)
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = steps.CleanupOlderThan(ctx, 30)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
