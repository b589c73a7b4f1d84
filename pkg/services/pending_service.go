package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/pendingaction"
	"github.com/braid-labs/braid/pkg/models"
)

// PendingActionService is the pending_actions persistence surface behind
// pending.DBStore. One row per user; rows past expires_at behave as
// not-found and are reaped opportunistically.
type PendingActionService struct {
	client *ent.Client
}

// NewPendingActionService creates a new PendingActionService.
func NewPendingActionService(client *ent.Client) *PendingActionService {
	return &PendingActionService{client: client}
}

// UpsertPendingAction replaces the user's row with the given action.
func (s *PendingActionService) UpsertPendingAction(ctx context.Context, action *models.PendingAction) error {
	if action == nil || action.UserID == "" {
		return NewValidationError("user_id", "pending action requires a user id")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	planJSON, err := planToMap(action.Plan)
	if err != nil {
		return err
	}

	create := s.client.PendingAction.Create().
		SetID(action.UserID).
		SetIntent(action.Intent).
		SetAction(action.Action).
		SetTaskID(action.TaskID).
		SetPlanSource(string(action.PlanSource)).
		SetCollectedSlots(action.CollectedSlots).
		SetMissingSlots(action.MissingSlots).
		SetExpiresAt(action.ExpiresAt)
	if planJSON != nil {
		create.SetPlan(planJSON)
	}

	err = create.
		OnConflictColumns(pendingaction.FieldID).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert pending action for %s: %w", action.UserID, err)
	}
	return nil
}

// GetPendingAction returns the user's live pending action, or nil when
// absent or expired. Expired rows are deleted on read.
func (s *PendingActionService) GetPendingAction(ctx context.Context, userID string) (*models.PendingAction, error) {
	row, err := s.client.PendingAction.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pending action for %s: %w", userID, err)
	}
	if !row.ExpiresAt.After(time.Now()) {
		if err := s.DeletePendingAction(ctx, userID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return rowToPendingAction(row)
}

// DeletePendingAction removes the user's row unconditionally.
func (s *PendingActionService) DeletePendingAction(ctx context.Context, userID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.PendingAction.Delete().
		Where(pendingaction.IDEQ(userID)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete pending action for %s: %w", userID, err)
	}
	return nil
}

// CleanupExpired removes every row past its TTL. Called by the cleanup loop.
func (s *PendingActionService) CleanupExpired(ctx context.Context) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.PendingAction.Delete().
		Where(pendingaction.ExpiresAtLT(time.Now())).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired pending actions: %w", err)
	}
	return count, nil
}

// planToMap serializes a plan for the JSON column.
func planToMap(plan *models.AgentPlan) (map[string]interface{}, error) {
	if plan == nil {
		return nil, nil
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize suspended plan: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to serialize suspended plan: %w", err)
	}
	return out, nil
}

// rowToPendingAction rebuilds the domain model from a row.
func rowToPendingAction(row *ent.PendingAction) (*models.PendingAction, error) {
	action := &models.PendingAction{
		UserID:         row.ID,
		Intent:         row.Intent,
		Action:         row.Action,
		TaskID:         row.TaskID,
		PlanSource:     models.PlanSource(row.PlanSource),
		CollectedSlots: row.CollectedSlots,
		MissingSlots:   append([]string(nil), row.MissingSlots...),
		ExpiresAt:      row.ExpiresAt,
	}
	if len(row.Plan) > 0 {
		raw, err := json.Marshal(row.Plan)
		if err != nil {
			return nil, fmt.Errorf("failed to decode suspended plan for %s: %w", row.ID, err)
		}
		var plan models.AgentPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return nil, fmt.Errorf("failed to decode suspended plan for %s: %w", row.ID, err)
		}
		action.Plan = &plan
	}
	return action, nil
}
