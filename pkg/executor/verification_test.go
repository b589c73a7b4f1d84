package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braid-labs/braid/pkg/models"
)

func successResult(steps ...models.ExecutionStep) *models.AgentExecutionResult {
	return &models.AgentExecutionResult{Success: true, Steps: steps}
}

func okStep(tool string, output map[string]any) models.ExecutionStep {
	return models.ExecutionStep{ID: tool, ToolName: tool, Status: models.StepSucceeded, Output: output}
}

func TestVerifyExecution(t *testing.T) {
	tests := []struct {
		name     string
		userText string
		result   *models.AgentExecutionResult
		reason   string
	}{
		{
			name:     "move obligation satisfied",
			userText: "회의록 페이지를 아카이브 폴더로 이동해줘",
			result:   successResult(okStep("notion_update_page", map[string]any{"id": "p1"})),
			reason:   "",
		},
		{
			name:     "move without update page",
			userText: "회의록 페이지를 아카이브 폴더로 이동해줘",
			result:   successResult(okStep("notion_search_pages", map[string]any{})),
			reason:   "move_requires_update_page",
		},
		{
			name:     "append obligation satisfied",
			userText: "회의록 페이지 본문에 추가해줘",
			result:   successResult(okStep("notion_append_block_children", map[string]any{})),
			reason:   "",
		},
		{
			name:     "append without block children call",
			userText: "회의록 페이지 본문에 추가해줘",
			result:   successResult(okStep("notion_update_page", map[string]any{})),
			reason:   "append_requires_block_children",
		},
		{
			name:     "append to two targets needs two calls",
			userText: "회의록과 기획안 페이지 본문에 추가해줘",
			result:   successResult(okStep("notion_append_block_children", map[string]any{})),
			reason:   "append_requires_multiple_targets",
		},
		{
			name:     "create shows the artifact id",
			userText: "노션에 회의록 페이지를 생성해줘",
			result: successResult(okStep("notion_create_page",
				map[string]any{"id": "p1", "url": "https://notion.so/p1"})),
			reason: "",
		},
		{
			name:     "create without artifact id",
			userText: "노션에 회의록 페이지를 생성해줘",
			result:   successResult(okStep("notion_create_page", map[string]any{"ok": true})),
			reason:   "create_requires_artifact_id",
		},
		{
			name:     "create id nested under issueCreate",
			userText: "리니어에 이슈를 생성해줘",
			result: successResult(okStep("linear_create_issue", map[string]any{
				"issueCreate": map[string]any{"issue": map[string]any{"id": "iss-1"}},
			})),
			reason: "",
		},
		{
			name:     "lookup needs at least one call",
			userText: "노션 페이지를 조회해줘",
			result:   successResult(),
			reason:   "lookup_requires_tool_call",
		},
		{
			name:     "delete via archived update",
			userText: "회의록 페이지를 삭제해줘",
			result:   successResult(okStep("notion_update_page", map[string]any{"archived": true})),
			reason:   "",
		},
		{
			name:     "delete without archive",
			userText: "회의록 페이지를 삭제해줘",
			result:   successResult(okStep("notion_search_pages", map[string]any{})),
			reason:   "delete_requires_archive",
		},
		{
			name:     "failed runs are not verified",
			userText: "페이지를 이동해줘",
			result:   &models.AgentExecutionResult{Success: false},
			reason:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, VerifyExecution(tt.userText, tt.result))
		})
	}
}
