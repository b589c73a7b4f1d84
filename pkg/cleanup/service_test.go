package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/catalog"
	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/services"
	testdb "github.com/braid-labs/braid/test/database"
)

func TestCleanupReapsExpiredPendingActions(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	pendingSvc := services.NewPendingActionService(client.Client)

	expired := &models.PendingAction{
		UserID:    uuid.New().String(),
		Intent:    "notion_update",
		Action:    "notion.page_update",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, pendingSvc.UpsertPendingAction(ctx, expired))
	live := &models.PendingAction{
		UserID:    uuid.New().String(),
		Intent:    "notion_update",
		Action:    "notion.page_update",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	require.NoError(t, pendingSvc.UpsertPendingAction(ctx, live))

	svc := NewService(config.DefaultRetentionConfig(), pendingSvc, nil, nil, nil)
	svc.RunAll(ctx)

	got, err := pendingSvc.GetPendingAction(ctx, live.UserID)
	require.NoError(t, err)
	assert.NotNil(t, got, "live row must survive the sweep")

	got, err = pendingSvc.GetPendingAction(ctx, expired.UserID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCleanupSweepsCatalog(t *testing.T) {
	cache := catalog.New()
	_, created, err := cache.GetOrCreate("u1", map[string]any{"tools": []any{"notion_create_page"}}, time.Minute)
	require.NoError(t, err)
	require.True(t, created)

	svc := NewService(nil, nil, nil, nil, cache)
	svc.RunAll(context.Background())
	assert.Equal(t, 1, cache.Len(), "unexpired entries stay")
}

func TestCleanupStartStop(t *testing.T) {
	svc := NewService(&config.RetentionConfig{
		CommandLogRetentionDays: 1,
		StepLogRetentionDays:    1,
		CleanupInterval:         time.Hour,
	}, nil, nil, nil, catalog.New())

	svc.Start(context.Background())
	svc.Stop()
}
