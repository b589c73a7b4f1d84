package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/registry"
)

// LLMPlanner asks the configured provider chain for a JSON plan. A nil
// plan with a reason tag means the caller should fall back to the rule
// planner.
type LLMPlanner struct {
	registry *registry.Registry
	client   *llm.Client
}

// NewLLMPlanner creates an LLM planner over the registry and client.
func NewLLMPlanner(reg *registry.Registry, client *llm.Client) *LLMPlanner {
	return &LLMPlanner{registry: reg, client: client}
}

// Plan requests a plan for the user text. On any provider failure or an
// unacceptable plan it returns (nil, reason) and no error; errors are
// reserved for registry access problems.
func (p *LLMPlanner) Plan(ctx context.Context, userText string, connected []string) (*models.AgentPlan, string, error) {
	catalog, err := p.availableCatalog(connected)
	if err != nil {
		return nil, "", err
	}
	if len(catalog) == 0 {
		return nil, "no_available_tools", nil
	}

	obj, provider, err := p.client.CompleteJSON(ctx, llm.PlanRequest(userText, connected, catalog))
	if err != nil {
		return nil, "provider_error", nil
	}

	plan, reason := decodePlan(userText, obj)
	if plan == nil {
		return nil, reason, nil
	}

	if reason := p.acceptable(plan, connected); reason != "" {
		return nil, reason, nil
	}

	plan.AddNote("llm_provider=" + provider)
	return plan, "", nil
}

// availableCatalog projects the tools of connected services for the
// provider prompt.
func (p *LLMPlanner) availableCatalog(connected []string) ([]registry.LLMTool, error) {
	defs, err := p.registry.ListAvailableTools(connected, nil)
	if err != nil {
		return nil, err
	}
	catalog := make([]registry.LLMTool, 0, len(defs))
	for _, def := range defs {
		catalog = append(catalog, registry.LLMTool{
			Name:        def.ToolName,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}
	return catalog, nil
}

// decodePlan turns the provider's JSON object into a typed plan.
func decodePlan(userText string, obj map[string]any) (*models.AgentPlan, string) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, "plan_encode_failed"
	}
	var plan models.AgentPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, "plan_schema_mismatch"
	}
	if len(plan.TargetServices) == 0 || len(plan.Tasks) == 0 {
		return nil, "plan_incomplete"
	}
	plan.UserText = userText

	for i := range plan.Tasks {
		if plan.Tasks[i].OutputSchema == nil {
			plan.Tasks[i].OutputSchema = map[string]any{"type": "object"}
		}
		if plan.Tasks[i].Payload == nil && plan.Tasks[i].TaskType == models.TaskTypeTool {
			plan.Tasks[i].Payload = map[string]any{}
		}
	}
	return &plan, ""
}

// acceptable enforces the admission rules: target services must be a
// subset of connected, and every selected tool must exist.
func (p *LLMPlanner) acceptable(plan *models.AgentPlan, connected []string) string {
	connectedSet := make(map[string]bool, len(connected))
	for _, svc := range connected {
		connectedSet[strings.ToLower(svc)] = true
	}
	for _, svc := range plan.TargetServices {
		if !connectedSet[strings.ToLower(svc)] {
			return fmt.Sprintf("service_not_connected:%s", svc)
		}
	}
	for _, name := range plan.SelectedTools {
		if !p.registry.Has(name) {
			return fmt.Sprintf("unknown_tool:%s", name)
		}
	}
	for _, task := range plan.Tasks {
		if task.TaskType == models.TaskTypeTool && task.ToolName != "" && !p.registry.Has(task.ToolName) {
			return fmt.Sprintf("unknown_tool:%s", task.ToolName)
		}
	}
	return ""
}
