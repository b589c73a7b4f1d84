package pending

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/models"
)

func testAction(userID string, ttl time.Duration) *models.PendingAction {
	return &models.PendingAction{
		UserID:         userID,
		Intent:         "create",
		Action:         "notion.page_create",
		CollectedSlots: map[string]any{"title": "회의록"},
		MissingSlots:   []string{"parent_page_id"},
		ExpiresAt:      time.Now().Add(ttl),
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "notion.page_create", got.Action)
		assert.Equal(t, []string{"parent_page_id"}, got.MissingSlots)
	})

	t.Run("set replaces existing entry", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		replacement := testAction("u1", time.Minute)
		replacement.Action = "linear.issue_create"
		require.NoError(t, store.Set(ctx, replacement))

		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "linear.issue_create", got.Action)
	})

	t.Run("returned copy is isolated", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		got.CollectedSlots["title"] = "mutated"

		again, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "회의록", again.CollectedSlots["title"])
	})

	t.Run("absent user", func(t *testing.T) {
		got, err := NewMemoryStore().Get(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired entry deleted on read", func(t *testing.T) {
		store := NewMemoryStore()
		now := time.Now()
		store.now = func() time.Time { return now }
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		now = now.Add(2 * time.Minute)
		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, got)

		// Entry is gone, not just hidden
		store.mu.Lock()
		_, exists := store.entries["u1"]
		store.mu.Unlock()
		assert.False(t, exists)
	})

	t.Run("clear", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))
		require.NoError(t, store.Clear(ctx, "u1"))

		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// flakyPersistence fails every call until healed.
type flakyPersistence struct {
	healthy bool
	rows    map[string]*models.PendingAction
}

func newFlakyPersistence() *flakyPersistence {
	return &flakyPersistence{rows: make(map[string]*models.PendingAction)}
}

func (f *flakyPersistence) UpsertPendingAction(_ context.Context, action *models.PendingAction) error {
	if !f.healthy {
		return fmt.Errorf("connection refused")
	}
	f.rows[action.UserID] = action.Clone()
	return nil
}

func (f *flakyPersistence) GetPendingAction(_ context.Context, userID string) (*models.PendingAction, error) {
	if !f.healthy {
		return nil, fmt.Errorf("connection refused")
	}
	return f.rows[userID].Clone(), nil
}

func (f *flakyPersistence) DeletePendingAction(_ context.Context, userID string) error {
	if !f.healthy {
		return fmt.Errorf("connection refused")
	}
	delete(f.rows, userID)
	return nil
}

func TestAutoStore(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy db round trip", func(t *testing.T) {
		db := newFlakyPersistence()
		db.healthy = true
		store := NewAutoStore(db)

		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))
		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Contains(t, db.rows, "u1")
	})

	t.Run("db failure degrades to memory without losing state", func(t *testing.T) {
		db := newFlakyPersistence()
		store := NewAutoStore(db)

		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))
		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "notion.page_create", got.Action)
	})

	t.Run("memory copy serves when db read fails after healthy write", func(t *testing.T) {
		db := newFlakyPersistence()
		db.healthy = true
		store := NewAutoStore(db)
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		db.healthy = false
		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("clear clears memory even when db fails", func(t *testing.T) {
		db := newFlakyPersistence()
		store := NewAutoStore(db)
		require.NoError(t, store.Set(ctx, testAction("u1", time.Minute)))

		err := store.Clear(ctx, "u1")
		require.Error(t, err)

		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
