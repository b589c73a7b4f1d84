package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

type memoryCommandLog struct {
	entries []models.CommandLogEntry
	err     error
}

func (m *memoryCommandLog) Append(_ context.Context, entry models.CommandLogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

type memoryStepLog struct {
	entries []models.StepLogEntry
}

func (m *memoryStepLog) Append(_ context.Context, entry models.StepLogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func TestBuildDetail(t *testing.T) {
	t.Run("known keys keep their order", func(t *testing.T) {
		detail := BuildDetail(map[string]any{
			"idempotent_success_reuse_count": 1,
			"analysis_latency_ms":            1234,
			"request_id":                     "req-1",
			"services":                       "notion,linear",
			"dag_pipeline":                   true,
		})
		assert.Equal(t,
			"services=notion,linear;request_id=req-1;dag_pipeline=true;analysis_latency_ms=1234;idempotent_success_reuse_count=1",
			detail)
	})

	t.Run("unknown keys are sorted after known ones", func(t *testing.T) {
		detail := BuildDetail(map[string]any{
			"zeta":       1,
			"alpha":      2,
			"request_id": "req-1",
		})
		assert.Equal(t, "request_id=req-1;alpha=2;zeta=1", detail)
	})

	t.Run("empty map", func(t *testing.T) {
		assert.Empty(t, BuildDetail(nil))
	})
}

func TestRecordCommand(t *testing.T) {
	t.Run("masks detail before writing", func(t *testing.T) {
		store := &memoryCommandLog{}
		recorder := NewRecorder(store, nil, nil)

		recorder.RecordCommand(context.Background(), models.CommandLogEntry{
			UserID:  "u1",
			Command: "agent_plan",
			Status:  "completed",
			Detail:  "request_id=req-1;note=Bearer abcdef1234567890",
		})

		require.Len(t, store.entries, 1)
		assert.NotContains(t, store.entries[0].Detail, "abcdef1234567890")
		assert.Contains(t, store.entries[0].Detail, "request_id=req-1")
	})

	t.Run("write failure does not panic", func(t *testing.T) {
		recorder := NewRecorder(&memoryCommandLog{err: errors.New("db down")}, nil, nil)
		recorder.RecordCommand(context.Background(), models.CommandLogEntry{UserID: "u1"})
	})

	t.Run("nil store is skipped", func(t *testing.T) {
		recorder := NewRecorder(nil, nil, nil)
		recorder.RecordCommand(context.Background(), models.CommandLogEntry{UserID: "u1"})
	})
}

func TestRecordSteps(t *testing.T) {
	store := &memoryStepLog{}
	recorder := NewRecorder(nil, store, nil)

	idx := 1
	recorder.RecordSteps(context.Background(), "req-1", "run-1", "meeting-minutes", []models.ExecutionStep{
		{ID: "source", Type: "skill", ToolName: "google_calendar_list_events",
			Status: models.StepSucceeded, Attempts: 1, LatencyMS: 80},
		{ID: "create", Type: "skill", ToolName: "notion_create_page",
			Status: models.StepFailed, ErrorCode: "TOOL_TIMEOUT", Attempts: 3, ItemIndex: &idx, LatencyMS: 900},
	})

	require.Len(t, store.entries, 2)
	assert.Equal(t, "req-1", store.entries[0].RequestID)
	assert.Equal(t, "run-1", store.entries[0].RunID)
	assert.Equal(t, "meeting-minutes", store.entries[1].PipelineID)
	assert.Equal(t, "TOOL_TIMEOUT", store.entries[1].ErrorCode)
	require.NotNil(t, store.entries[1].ItemIndex)
	assert.Equal(t, 1, *store.entries[1].ItemIndex)
}
