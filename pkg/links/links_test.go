package links

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

type memoryStore struct {
	rows map[string]models.PipelineLinkRecord
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[string]models.PipelineLinkRecord{}}
}

func (m *memoryStore) Upsert(_ context.Context, record models.PipelineLinkRecord) error {
	m.rows[record.UserID+"/"+record.EventID] = record
	return nil
}

func fanoutArtifacts() map[string]any {
	return map[string]any{
		"router_mode":     "PIPELINE_DAG",
		"pipeline_run_id": "run-1",
		"fanout": map[string]any{
			"item_count": 2,
			"item_results": []any{
				map[string]any{
					"n2_1": map[string]any{"id": "evt-a", "summary": "주간 회의", "start": map[string]any{}},
					"n2_2": map[string]any{"object": "page", "id": "page-a", "url": "https://notion.so/page-a"},
					"n2_3": map[string]any{
						"issueCreate": map[string]any{"issue": map[string]any{"id": "iss-a", "title": "주간 회의 후속"}},
					},
				},
				map[string]any{
					"n2_1": map[string]any{"event_id": "evt-b"},
					"n2_2": map[string]any{"data": map[string]any{"object": "page", "id": "page-b"}},
				},
			},
		},
	}
}

func TestWriteSuccess(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store)

	written, err := writer.WriteSuccess(context.Background(), "u1", "run-1", "meeting-minutes", fanoutArtifacts())
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	first := store.rows["u1/evt-a"]
	assert.Equal(t, "page-a", first.NotionPageID)
	assert.Equal(t, "iss-a", first.LinearIssueID)
	assert.Equal(t, models.LinkSucceeded, first.Status)
	assert.Equal(t, models.CompensationNotRequired, first.CompensationStatus)
	assert.Equal(t, "run-1", first.RunID)
	assert.Equal(t, "meeting-minutes", first.PipelineID)
	assert.Equal(t, "주간 회의 후속", first.Title)

	second := store.rows["u1/evt-b"]
	assert.Equal(t, "page-b", second.NotionPageID)
	assert.Empty(t, second.LinearIssueID)
}

func TestWriteSuccessSkipsItemsWithoutEventID(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store)

	artifacts := map[string]any{
		"fanout": map[string]any{
			"item_results": []any{
				map[string]any{"n2_2": map[string]any{"object": "page", "id": "page-x"}},
			},
		},
	}
	written, err := writer.WriteSuccess(context.Background(), "u1", "run-1", "", artifacts)
	require.NoError(t, err)
	assert.Zero(t, written)
	assert.Empty(t, store.rows)
}

func TestWriteSuccessIgnoresScalarArtifacts(t *testing.T) {
	store := newMemoryStore()
	writer := NewWriter(store)

	written, err := writer.WriteSuccess(context.Background(), "u1", "run-1", "", map[string]any{
		"router_mode":                   "PIPELINE_DAG",
		"idempotent_success_reuse_count": 0,
	})
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestWriteFailure(t *testing.T) {
	t.Run("compensated failure stays failed", func(t *testing.T) {
		store := newMemoryStore()
		writer := NewWriter(store)

		err := writer.WriteFailure(context.Background(), "u1", "evt-a", "run-1", "p1",
			string(models.ErrToolFailed), models.CompensationCompleted)
		require.NoError(t, err)

		row := store.rows["u1/evt-a"]
		assert.Equal(t, models.LinkFailed, row.Status)
		assert.Equal(t, string(models.ErrToolFailed), row.ErrorCode)
		assert.Equal(t, models.CompensationCompleted, row.CompensationStatus)
	})

	t.Run("failed compensation requires manual action", func(t *testing.T) {
		store := newMemoryStore()
		writer := NewWriter(store)

		err := writer.WriteFailure(context.Background(), "u1", "evt-a", "run-1", "p1",
			string(models.ErrCompensationFailed), models.CompensationFailed)
		require.NoError(t, err)
		assert.Equal(t, models.LinkManualRequired, store.rows["u1/evt-a"].Status)
	})
}
