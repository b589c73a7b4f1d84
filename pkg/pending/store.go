// Package pending holds the per-user slot-collection state between
// conversational turns. Three backends exist: in-process memory, the
// pending_actions table, and an auto mode that tries the DB and degrades
// to memory for the failing operation only.
package pending

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/braid-labs/braid/pkg/models"
)

// Store is the slot-collection state store. Get returns nil for an absent
// or expired entry; expired entries are deleted on read.
type Store interface {
	Set(ctx context.Context, action *models.PendingAction) error
	Get(ctx context.Context, userID string) (*models.PendingAction, error)
	Clear(ctx context.Context, userID string) error
}

// Persistence is the DB surface the db/auto stores need. Implemented by
// services.PendingActionService.
type Persistence interface {
	UpsertPendingAction(ctx context.Context, action *models.PendingAction) error
	GetPendingAction(ctx context.Context, userID string) (*models.PendingAction, error)
	DeletePendingAction(ctx context.Context, userID string) error
}

// MemoryStore keeps pending actions in a process-local map.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*models.PendingAction
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*models.PendingAction),
		now:     time.Now,
	}
}

// Set replaces any existing entry for the user, copying slot state.
func (s *MemoryStore) Set(_ context.Context, action *models.PendingAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[action.UserID] = action.Clone()
	return nil
}

// Get returns the user's live pending action, deleting it when expired.
func (s *MemoryStore) Get(_ context.Context, userID string) (*models.PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.entries[userID]
	if !ok {
		return nil, nil
	}
	if action.Expired(s.now()) {
		delete(s.entries, userID)
		return nil, nil
	}
	return action.Clone(), nil
}

// Clear deletes the user's entry unconditionally.
func (s *MemoryStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

// DBStore persists pending actions through the pending_actions table.
type DBStore struct {
	db Persistence
}

// NewDBStore creates a store over the given persistence surface.
func NewDBStore(db Persistence) *DBStore {
	return &DBStore{db: db}
}

// Set upserts the user's row.
func (s *DBStore) Set(ctx context.Context, action *models.PendingAction) error {
	return s.db.UpsertPendingAction(ctx, action)
}

// Get reads the user's row; the persistence layer hides expired rows.
func (s *DBStore) Get(ctx context.Context, userID string) (*models.PendingAction, error) {
	return s.db.GetPendingAction(ctx, userID)
}

// Clear deletes the user's row.
func (s *DBStore) Clear(ctx context.Context, userID string) error {
	return s.db.DeletePendingAction(ctx, userID)
}

// AutoStore tries the DB first and falls back to memory for the current
// operation on any DB failure. A failed DB write never loses the state:
// it lands in memory and the next successful write re-syncs the table.
type AutoStore struct {
	db     Store
	memory Store
}

// NewAutoStore combines a DB store with a memory fallback.
func NewAutoStore(db Persistence) *AutoStore {
	return &AutoStore{
		db:     NewDBStore(db),
		memory: NewMemoryStore(),
	}
}

// Set writes to the DB, degrading to memory when the write fails.
func (s *AutoStore) Set(ctx context.Context, action *models.PendingAction) error {
	if err := s.db.Set(ctx, action); err != nil {
		slog.Warn("Pending action DB write failed, degrading to memory",
			"user_id", action.UserID,
			"error", err)
		return s.memory.Set(ctx, action)
	}
	// Keep the memory copy in sync so a later DB read failure still
	// sees the newest state.
	_ = s.memory.Set(ctx, action)
	return nil
}

// Get reads from the DB, consulting the memory copy when the read fails.
func (s *AutoStore) Get(ctx context.Context, userID string) (*models.PendingAction, error) {
	action, err := s.db.Get(ctx, userID)
	if err != nil {
		slog.Warn("Pending action DB read failed, consulting memory",
			"user_id", userID,
			"error", err)
		return s.memory.Get(ctx, userID)
	}
	if action == nil {
		return s.memory.Get(ctx, userID)
	}
	return action, nil
}

// Clear deletes from both backends; a DB failure is reported after the
// memory copy is gone so retrying is safe.
func (s *AutoStore) Clear(ctx context.Context, userID string) error {
	memErr := s.memory.Clear(ctx, userID)
	if err := s.db.Clear(ctx, userID); err != nil {
		slog.Warn("Pending action DB delete failed",
			"user_id", userID,
			"error", err)
		return err
	}
	return memErr
}
