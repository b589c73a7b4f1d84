package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/braid-labs/braid/ent"
)

// linkResponse is the wire shape of one pipeline link row.
type linkResponse struct {
	EventID            string `json:"event_id"`
	NotionPageID       string `json:"notion_page_id,omitempty"`
	LinearIssueID      string `json:"linear_issue_id,omitempty"`
	Title              string `json:"title,omitempty"`
	Status             string `json:"status"`
	ErrorCode          string `json:"error_code,omitempty"`
	CompensationStatus string `json:"compensation_status"`
	RunID              string `json:"run_id"`
	UpdatedAt          string `json:"updated_at"`
}

func toLinkResponse(row *ent.PipelineLink) linkResponse {
	resp := linkResponse{
		EventID:            row.EventID,
		Status:             string(row.Status),
		CompensationStatus: string(row.CompensationStatus),
		RunID:              row.RunID,
		UpdatedAt:          row.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if row.NotionPageID != nil {
		resp.NotionPageID = *row.NotionPageID
	}
	if row.LinearIssueID != nil {
		resp.LinearIssueID = *row.LinearIssueID
	}
	if row.Title != nil {
		resp.Title = *row.Title
	}
	if row.ErrorCode != nil {
		resp.ErrorCode = *row.ErrorCode
	}
	return resp
}

// ListLinks handles GET /api/v1/users/:user_id/links.
func (s *Server) ListLinks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := s.links.ListByUser(c.Request.Context(), c.Param("user_id"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	out := make([]linkResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toLinkResponse(row))
	}
	c.JSON(http.StatusOK, gin.H{"links": out})
}

// ListManualRequired handles GET /api/v1/links/manual-required: the rows
// an operator has to resolve by hand after failed compensation.
func (s *Server) ListManualRequired(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	rows, err := s.links.ListManualRequired(c.Request.Context(), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		resp := toLinkResponse(row)
		out = append(out, gin.H{"user_id": row.UserID, "link": resp})
	}
	c.JSON(http.StatusOK, gin.H{"links": out})
}

// ListRunSteps handles GET /api/v1/runs/:run_id/steps.
func (s *Server) ListRunSteps(c *gin.Context) {
	rows, err := s.steps.ListByRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	out := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		step := gin.H{
			"node_id":    row.NodeID,
			"node_type":  row.NodeType,
			"status":     string(row.Status),
			"attempt":    row.Attempt,
			"latency_ms": row.LatencyMs,
		}
		if row.ToolName != nil {
			step["tool_name"] = *row.ToolName
		}
		if row.ItemIndex != nil {
			step["item_index"] = *row.ItemIndex
		}
		if row.ErrorCode != nil {
			step["error_code"] = *row.ErrorCode
		}
		out = append(out, step)
	}
	c.JSON(http.StatusOK, gin.H{"run_id": c.Param("run_id"), "steps": out})
}
