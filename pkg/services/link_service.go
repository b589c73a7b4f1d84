package services

import (
	"context"
	"fmt"
	"time"

	"github.com/braid-labs/braid/ent"
	"github.com/braid-labs/braid/ent/pipelinelink"
	"github.com/braid-labs/braid/pkg/models"
)

// LinkService persists pipeline link rows, unique on (user_id, event_id).
// Implements links.Store.
type LinkService struct {
	client *ent.Client
}

// NewLinkService creates a new LinkService.
func NewLinkService(client *ent.Client) *LinkService {
	return &LinkService{client: client}
}

// Upsert writes one link row; re-runs of the same (user, event) replace
// the previous terminal state. Last write wins.
func (s *LinkService) Upsert(ctx context.Context, record models.PipelineLinkRecord) error {
	if record.UserID == "" || record.EventID == "" {
		return NewValidationError("event_id", "link rows require user_id and event_id")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	create := s.client.PipelineLink.Create().
		SetUserID(record.UserID).
		SetEventID(record.EventID).
		SetStatus(pipelinelink.Status(record.Status)).
		SetCompensationStatus(pipelinelink.CompensationStatus(record.CompensationStatus)).
		SetRunID(record.RunID)
	if record.NotionPageID != "" {
		create.SetNotionPageID(record.NotionPageID)
	}
	if record.LinearIssueID != "" {
		create.SetLinearIssueID(record.LinearIssueID)
	}
	if record.Title != "" {
		create.SetTitle(record.Title)
	}
	if record.ErrorCode != "" {
		create.SetErrorCode(record.ErrorCode)
	}
	if record.PipelineID != "" {
		create.SetPipelineID(record.PipelineID)
	}

	err := create.
		OnConflictColumns(pipelinelink.FieldUserID, pipelinelink.FieldEventID).
		UpdateNewValues().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert pipeline link %s/%s: %w", record.UserID, record.EventID, err)
	}
	return nil
}

// GetByEvent returns the link row for one (user, event), or ErrNotFound.
func (s *LinkService) GetByEvent(ctx context.Context, userID, eventID string) (*ent.PipelineLink, error) {
	row, err := s.client.PipelineLink.Query().
		Where(
			pipelinelink.UserIDEQ(userID),
			pipelinelink.EventIDEQ(eventID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: link %s/%s", ErrNotFound, userID, eventID)
		}
		return nil, fmt.Errorf("failed to get pipeline link %s/%s: %w", userID, eventID, err)
	}
	return row, nil
}

// ListByUser returns the user's most recent link rows, newest first.
func (s *LinkService) ListByUser(ctx context.Context, userID string, limit int) ([]*ent.PipelineLink, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.PipelineLink.Query().
		Where(pipelinelink.UserIDEQ(userID)).
		Order(ent.Desc(pipelinelink.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline links for %s: %w", userID, err)
	}
	return rows, nil
}

// ListManualRequired returns rows stuck in manual_required across all
// users, oldest first, for the operator dashboard.
func (s *LinkService) ListManualRequired(ctx context.Context, limit int) ([]*ent.PipelineLink, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.client.PipelineLink.Query().
		Where(pipelinelink.StatusEQ(pipelinelink.StatusManualRequired)).
		Order(ent.Asc(pipelinelink.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list manual_required links: %w", err)
	}
	return rows, nil
}
