// Package links turns executor artifacts into pipeline link rows: one
// (user, event) → cross-service artifact mapping per processed item.
package links

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/braid-labs/braid/pkg/models"
)

// Store persists link rows. Implemented by the link service over ent;
// in-memory in tests.
type Store interface {
	Upsert(ctx context.Context, record models.PipelineLinkRecord) error
}

// Writer extracts link rows from execution results and upserts them.
type Writer struct {
	store Store
}

func NewWriter(store Store) *Writer {
	return &Writer{store: store}
}

// WriteSuccess walks the artifacts of a succeeded pipeline run, finds
// every for_each item result, and upserts one succeeded row per item
// that carries an event id. Returns the number of rows written.
func (w *Writer) WriteSuccess(ctx context.Context, userID, runID, pipelineID string, artifacts map[string]any) (int, error) {
	written := 0
	for _, value := range artifacts {
		node, ok := value.(map[string]any)
		if !ok {
			continue
		}
		items, ok := node["item_results"].([]any)
		if !ok {
			continue
		}
		for _, raw := range items {
			item, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			record := extractRecord(item)
			if record.EventID == "" {
				continue
			}
			record.UserID = userID
			record.RunID = runID
			record.PipelineID = pipelineID
			record.Status = models.LinkSucceeded
			record.CompensationStatus = models.CompensationNotRequired
			if err := w.store.Upsert(ctx, record); err != nil {
				return written, fmt.Errorf("failed to upsert link for event %s: %w", record.EventID, err)
			}
			written++
		}
	}
	slog.Debug("pipeline links written", "run_id", runID, "rows", written)
	return written, nil
}

// WriteFailure upserts the single failure row of a run, with the status
// the compensation outcome dictates.
func (w *Writer) WriteFailure(ctx context.Context, userID, eventID, runID, pipelineID, errorCode string, comp models.CompensationStatus) error {
	status := models.LinkFailed
	if comp == models.CompensationFailed {
		status = models.LinkManualRequired
	}
	record := models.PipelineLinkRecord{
		UserID:             userID,
		EventID:            eventID,
		RunID:              runID,
		PipelineID:         pipelineID,
		Status:             status,
		ErrorCode:          errorCode,
		CompensationStatus: comp,
	}
	if err := w.store.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to upsert failure link: %w", err)
	}
	return nil
}

// extractRecord pulls event/page/issue identifiers out of one for_each
// item result: a map of node id → node output.
func extractRecord(item map[string]any) models.PipelineLinkRecord {
	var record models.PipelineLinkRecord
	titleRank := 0
	for _, output := range item {
		child, ok := output.(map[string]any)
		if !ok {
			continue
		}
		if record.EventID == "" {
			record.EventID = eventIDFrom(child)
		}
		if record.NotionPageID == "" {
			record.NotionPageID = notionPageIDFrom(child)
		}
		if record.LinearIssueID == "" {
			record.LinearIssueID = linearIssueIDFrom(child)
		}
		if title, rank := titleFrom(child); title != "" && (titleRank == 0 || rank < titleRank) {
			record.Title = title
			titleRank = rank
		}
	}
	return record
}

func eventIDFrom(output map[string]any) string {
	for _, path := range [][]string{{"event_id"}, {"data", "event_id"}} {
		if id := stringAt(output, path); id != "" {
			return id
		}
	}
	// calendar event shapes carry id + summary/start
	if id := stringAt(output, []string{"id"}); id != "" {
		if _, hasSummary := output["summary"]; hasSummary {
			return id
		}
		if _, hasStart := output["start"]; hasStart {
			return id
		}
	}
	return ""
}

func notionPageIDFrom(output map[string]any) string {
	if obj, _ := output["object"].(string); obj == "page" {
		return stringAt(output, []string{"id"})
	}
	for _, path := range [][]string{{"page_id"}, {"data", "page_id"}} {
		if id := stringAt(output, path); id != "" {
			return id
		}
	}
	if url := stringAt(output, []string{"url"}); strings.Contains(url, "notion") {
		return stringAt(output, []string{"id"})
	}
	if data, ok := output["data"].(map[string]any); ok {
		if obj, _ := data["object"].(string); obj == "page" {
			return stringAt(data, []string{"id"})
		}
	}
	return ""
}

func linearIssueIDFrom(output map[string]any) string {
	for _, path := range [][]string{
		{"issueCreate", "issue", "id"},
		{"data", "issueCreate", "issue", "id"},
		{"issue_id"},
	} {
		if id := stringAt(output, path); id != "" {
			return id
		}
	}
	// GraphQL issue payloads carry an identifier like "ENG-42"
	if _, ok := output["identifier"]; ok {
		return stringAt(output, []string{"id"})
	}
	return ""
}

// titleFrom returns a title candidate and its rank; explicit titles
// beat calendar event summaries when an item carries both.
func titleFrom(output map[string]any) (string, int) {
	ranked := []struct {
		path []string
		rank int
	}{
		{[]string{"title"}, 1},
		{[]string{"issueCreate", "issue", "title"}, 1},
		{[]string{"data", "issueCreate", "issue", "title"}, 1},
		{[]string{"summary"}, 2},
	}
	for _, candidate := range ranked {
		if title := stringAt(output, candidate.path); title != "" {
			return title, candidate.rank
		}
	}
	return "", 0
}

func stringAt(root map[string]any, path []string) string {
	var current any = root
	for _, key := range path {
		node, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = node[key]
		if !ok {
			return ""
		}
	}
	s, _ := current.(string)
	return s
}
