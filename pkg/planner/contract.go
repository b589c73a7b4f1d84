package planner

import (
	"fmt"
	"strings"

	"github.com/braid-labs/braid/pkg/models"
)

// internalToolMarkers never appear in a user-visible plan.
var internalToolMarkers = []string{"oauth", "token_exchange"}

// ValidatePlan is the plan contract every planner output must pass
// before execution. The empty string means the plan is acceptable;
// otherwise the returned code names the first violation.
func ValidatePlan(plan *models.AgentPlan) string {
	if plan == nil || len(plan.TargetServices) == 0 {
		return "missing_target_services"
	}

	if len(plan.Tasks) == 0 {
		for _, name := range plan.SelectedTools {
			if isInternalTool(name) {
				return fmt.Sprintf("internal_tool_selected:%s", name)
			}
		}
		return "missing_tool_task"
	}

	targets := make(map[string]bool, len(plan.TargetServices))
	for _, svc := range plan.TargetServices {
		targets[strings.ToLower(svc)] = true
	}

	ids := make(map[string]bool, len(plan.Tasks))
	for _, task := range plan.Tasks {
		if task.ID == "" {
			return "missing_task_id"
		}
		if ids[task.ID] {
			return "duplicate_task_id"
		}
		ids[task.ID] = true
	}

	hasTool := false
	for _, task := range plan.Tasks {
		switch task.TaskType {
		case models.TaskTypeTool:
			hasTool = true
			if task.Service == "" {
				return fmt.Sprintf("missing_service:%s", task.ID)
			}
			if !targets[strings.ToLower(task.Service)] {
				return fmt.Sprintf("service_not_targeted:%s", task.Service)
			}
			if task.ToolName == "" {
				return fmt.Sprintf("missing_tool_name:%s", task.ID)
			}
			if !strings.HasPrefix(task.ToolName, task.Service+"_") {
				return fmt.Sprintf("tool_service_mismatch:%s", task.ToolName)
			}
			if isInternalTool(task.ToolName) {
				return fmt.Sprintf("internal_tool_selected:%s", task.ToolName)
			}
		case models.TaskTypeLLM:
			if task.Instruction == "" {
				return fmt.Sprintf("missing_instruction:%s", task.ID)
			}
		case models.TaskTypePipelineDAG, models.TaskTypeStepwise:
			hasTool = true
		default:
			return fmt.Sprintf("invalid_task_type:%s", task.ID)
		}

		if len(task.OutputSchema) == 0 {
			return fmt.Sprintf("missing_output_schema:%s", task.ID)
		}
		for _, dep := range task.DependsOn {
			if !ids[dep] {
				return fmt.Sprintf("unknown_dependency:%s", dep)
			}
		}
	}

	if !hasTool {
		return "missing_tool_task"
	}
	return ""
}

func isInternalTool(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range internalToolMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
