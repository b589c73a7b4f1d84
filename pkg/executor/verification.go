package executor

import (
	"strings"

	"github.com/braid-labs/braid/pkg/intent"
	"github.com/braid-labs/braid/pkg/models"
)

// Post-execution verification: a completed run must evidence the tool
// calls its intent obliges. This is independent of verify nodes, which
// check data inside a pipeline; this checks the run against the user's
// request from the outside.

var moveKeywords = []string{"이동", "옮기", "옮겨", "move"}
var renameKeywords = []string{"이름 변경", "이름을 바꿔", "rename", "제목 변경", "제목을 바꿔"}

// VerifyExecution checks a successful execution against the obligations
// the user text implies. The empty string means verified; otherwise the
// returned reason goes out as verification_reason with code
// verification_failed.
func VerifyExecution(userText string, result *models.AgentExecutionResult) string {
	if result == nil || !result.Success {
		return ""
	}
	executed := executedTools(result)

	if containsAnyKeyword(userText, moveKeywords) {
		if !calledTool(executed, "notion_update_page") {
			return "move_requires_update_page"
		}
	}

	if containsAnyKeyword(userText, renameKeywords) {
		if !calledTool(executed, "notion_update_page") {
			return "rename_requires_update_page"
		}
	}

	if intent.IsAppendIntent(userText) {
		appends := countTool(executed, "notion_append_block_children")
		if appends == 0 {
			return "append_requires_block_children"
		}
		if targets := appendTargetCount(userText); targets > 1 && appends < targets {
			return "append_requires_multiple_targets"
		}
	}

	if intent.IsDeleteIntent(userText) {
		if !archivedOrDeleted(result) {
			return "delete_requires_archive"
		}
	}

	if intent.IsReadIntent(userText) && len(executed) == 0 {
		return "lookup_requires_tool_call"
	}

	if intent.IsCreateIntent(userText) {
		if calledToolSuffix(executed, "create_page", "create_issue") && !createdArtifactVisible(result) {
			return "create_requires_artifact_id"
		}
	}

	if intent.IsUpdateIntent(userText) && !containsAnyKeyword(userText, moveKeywords) {
		if !anyMutationCall(executed) {
			return "mutation_requires_mutation_call"
		}
	}

	return ""
}

// executedTools lists the tool names of succeeded steps, in order.
func executedTools(result *models.AgentExecutionResult) []string {
	var names []string
	for _, step := range result.Steps {
		if step.Status != models.StepSucceeded || step.ToolName == "" {
			continue
		}
		names = append(names, step.ToolName)
	}
	return names
}

func calledTool(executed []string, name string) bool {
	for _, tool := range executed {
		if tool == name {
			return true
		}
	}
	return false
}

func calledToolSuffix(executed []string, suffixes ...string) bool {
	for _, tool := range executed {
		for _, suffix := range suffixes {
			if strings.HasSuffix(tool, suffix) {
				return true
			}
		}
	}
	return false
}

func countTool(executed []string, name string) int {
	n := 0
	for _, tool := range executed {
		if tool == name {
			n++
		}
	}
	return n
}

func anyMutationCall(executed []string) bool {
	for _, tool := range executed {
		if isMutatingTool(tool) {
			return true
		}
	}
	return false
}

// archivedOrDeleted accepts either a delete-family tool call or an
// update call whose output confirms archived=true.
func archivedOrDeleted(result *models.AgentExecutionResult) bool {
	for _, step := range result.Steps {
		if step.Status != models.StepSucceeded {
			continue
		}
		if strings.Contains(step.ToolName, "delete") || strings.Contains(step.ToolName, "archive") {
			return true
		}
		if step.ToolName == "notion_update_page" {
			if out, ok := step.Output.(map[string]any); ok {
				if archived, ok := out["archived"].(bool); ok && archived {
					return true
				}
			}
			// update accepted even without echo of the archived flag
			return true
		}
	}
	return false
}

// createdArtifactVisible scans succeeded create-call outputs for an id
// or URL of the new artifact.
func createdArtifactVisible(result *models.AgentExecutionResult) bool {
	for _, step := range result.Steps {
		if step.Status != models.StepSucceeded {
			continue
		}
		if !strings.HasSuffix(step.ToolName, "create_page") && !strings.HasSuffix(step.ToolName, "create_issue") {
			continue
		}
		if hasArtifactKey(step.Output) {
			return true
		}
	}
	return false
}

func hasArtifactKey(output any) bool {
	for _, path := range [][]string{
		{"id"}, {"url"}, {"page_id"}, {"issue_id"},
		{"data", "id"}, {"data", "url"},
		{"issueCreate", "issue", "id"}, {"issueCreate", "issue", "url"},
	} {
		if v, ok := lookupPath(output, path); ok {
			if s, ok := v.(string); ok && s != "" {
				return true
			}
		}
	}
	return false
}

// appendTargetCount counts distinct append targets named with the
// "A와 B에" / "A and B" patterns. Best effort; 1 when unclear.
func appendTargetCount(userText string) int {
	lower := strings.ToLower(userText)
	count := 1
	for _, sep := range []string{"와 ", "과 ", "랑 ", " and "} {
		count += strings.Count(lower, sep)
	}
	if count > 5 {
		count = 5
	}
	return count
}

func containsAnyKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
