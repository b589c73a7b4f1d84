package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/braid-labs/braid/pkg/catalog"
	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/intent"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/policy"
	"github.com/braid-labs/braid/pkg/registry"
)

const maxChunks = 5

// chunkSplitRE matches the sequencing conjunctions user text is split on.
var chunkSplitRE = regexp.MustCompile(`,?\s+(?:and then|then|and)\s+|\s*(?:그리고|그 다음에?|다음으로)\s*`)

// StepwisePlanner decomposes user text into an ordered tool list and
// emits a single STEPWISE_PIPELINE task over a runtime catalog.
type StepwisePlanner struct {
	registry *registry.Registry
	catalog  *catalog.Cache
	client   *llm.Client
	executor *config.ExecutorConfig
	policy   *config.PolicyConfig
	ttl      time.Duration
}

// NewStepwisePlanner creates a stepwise planner.
func NewStepwisePlanner(reg *registry.Registry, cat *catalog.Cache, client *llm.Client, cfg *config.Config) *StepwisePlanner {
	ttl := 15 * time.Minute
	if cfg.Catalog != nil && cfg.Catalog.DefaultTTLSec > 0 {
		ttl = time.Duration(cfg.Catalog.DefaultTTLSec) * time.Second
	}
	return &StepwisePlanner{
		registry: reg,
		catalog:  cat,
		client:   client,
		executor: cfg.Executor,
		policy:   cfg.Policy,
		ttl:      ttl,
	}
}

// Applies reports whether the stepwise path should handle this request:
// either forced by configuration, or the text carries a create/read/update
// intent and mentions a connected service family.
func (p *StepwisePlanner) Applies(userText string, connected []string) bool {
	if p.executor != nil && p.executor.ForceStepwise {
		return true
	}
	if !intent.IsCreateIntent(userText) && !intent.IsReadIntent(userText) && !intent.IsUpdateIntent(userText) {
		return false
	}
	for _, svc := range connected {
		if intent.MentionsService(userText, strings.ToLower(svc)) {
			return true
		}
	}
	return false
}

// Plan decomposes the text into chunks, maps each chunk to tools (LLM
// first, deterministic pattern matcher on failure), and emits a plan
// with one STEPWISE_PIPELINE task.
func (p *StepwisePlanner) Plan(ctx context.Context, userID, userText string, connected []string, grantedScopes map[string][]string) (*models.AgentPlan, error) {
	allowed, catalogTools, err := p.allowedCatalog(connected, grantedScopes)
	if err != nil {
		return nil, err
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("stepwise: no tools available for %v", connected)
	}

	chunks := SplitChunks(userText)

	var tasks []models.StepwiseTask
	seq := 1
	for _, chunk := range chunks {
		for _, task := range p.chunkTasks(ctx, chunk, connected, catalogTools) {
			def, ok := allowed[task.ToolName]
			if !ok {
				continue
			}
			task.TaskID = fmt.Sprintf("s%d", seq)
			task.Service = def.Service
			tasks = append(tasks, task)
			seq++
		}
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("stepwise: no tasks resolved from %q", userText)
	}

	catalogID, _, err := p.catalog.GetOrCreate(userID, catalogPayload(catalogTools), p.ttl)
	if err != nil {
		return nil, fmt.Errorf("stepwise: catalog: %w", err)
	}

	payload := models.StepwisePayload{
		Tasks: tasks,
		Ctx:   models.StepwiseContext{Enabled: true, CatalogID: catalogID},
	}

	plan := &models.AgentPlan{
		UserText:       userText,
		TargetServices: servicesOf(tasks),
		SelectedTools:  stepwiseToolNames(tasks),
		Tasks: []models.AgentTask{{
			ID:           "stepwise",
			Title:        "stepwise pipeline",
			TaskType:     models.TaskTypeStepwise,
			Payload:      toPayloadMap(payload),
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
	plan.AddNote("planner=llm_stepwise")
	plan.AddNote("router_mode=STEPWISE_PIPELINE")
	plan.AddNote("catalog_id=" + catalogID)
	return plan, nil
}

// allowedCatalog intersects available tools with the policy-enabled set,
// gates high-risk tools on the delete-operations setting, and excludes
// internal tools.
func (p *StepwisePlanner) allowedCatalog(connected []string, grantedScopes map[string][]string) (map[string]*registry.ToolDefinition, []registry.LLMTool, error) {
	profile, err := policy.Compute(p.registry, connected, grantedScopes, p.policy)
	if err != nil {
		return nil, nil, err
	}

	defs, err := p.registry.ListAvailableTools(connected, grantedScopes)
	if err != nil {
		return nil, nil, err
	}

	allowDelete := p.executor != nil && p.executor.AllowDeleteOperations

	allowed := make(map[string]*registry.ToolDefinition)
	var catalogTools []registry.LLMTool
	for _, def := range defs {
		if !profile.Enabled(def.ToolName) {
			continue
		}
		if def.IsHighRisk() && !allowDelete {
			continue
		}
		if isInternalTool(def.ToolName) {
			continue
		}
		allowed[def.ToolName] = def
		catalogTools = append(catalogTools, registry.LLMTool{
			Name:        def.ToolName,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}
	return allowed, catalogTools, nil
}

// chunkTasks asks the LLM for the chunk's tasks and falls back to the
// deterministic pattern matcher on failure or an empty answer.
func (p *StepwisePlanner) chunkTasks(ctx context.Context, chunk string, connected []string, catalogTools []registry.LLMTool) []models.StepwiseTask {
	if p.client != nil {
		obj, _, err := p.client.CompleteJSON(ctx, llm.StepwiseRequest(chunk, catalogTools))
		if err == nil {
			if tasks := decodeStepwiseTasks(chunk, obj); len(tasks) > 0 {
				return tasks
			}
		}
	}
	return MatchChunk(chunk, connected)
}

func decodeStepwiseTasks(chunk string, obj map[string]any) []models.StepwiseTask {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	var decoded struct {
		Tasks []models.StepwiseTask `json:"tasks"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	var tasks []models.StepwiseTask
	for _, task := range decoded.Tasks {
		if task.ToolName == "" {
			continue
		}
		if task.Sentence == "" {
			task.Sentence = chunk
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// SplitChunks splits user text into 1..5 ordered chunks on sequencing
// conjunctions.
func SplitChunks(userText string) []string {
	text := intent.NormalizeWhitespace(userText)
	parts := chunkSplitRE.Split(text, -1)

	var chunks []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		chunks = append(chunks, part)
		if len(chunks) == maxChunks {
			break
		}
	}
	if len(chunks) == 0 {
		chunks = []string{text}
	}
	return chunks
}

// stepwisePattern is one deterministic chunk-to-tool rule, tried in order.
type stepwisePattern struct {
	service  string
	tool     string
	keywords []string
	verbs    []string
}

// Verb-gated creation patterns come first: "회의록" would otherwise be
// swallowed by the bare "회의" calendar keyword.
var stepwisePatterns = []stepwisePattern{
	{service: "notion", tool: "notion_create_page",
		keywords: []string{"회의록", "초안", "페이지", "노션", "notion", "page"},
		verbs:    []string{"생성", "만들", "작성", "저장", "create"}},
	{service: "linear", tool: "linear_create_issue",
		keywords: []string{"이슈", "리니어", "linear", "issue"},
		verbs:    []string{"생성", "등록", "만들", "create"}},
	{service: "google", tool: "google_calendar_list_events",
		keywords: []string{"회의", "일정", "캘린더", "calendar", "meeting"}},
	{service: "notion", tool: "notion_data_source_query",
		keywords: []string{"데이터소스", "데이터베이스", "database"}},
	{service: "notion", tool: "notion_search_pages",
		keywords: []string{"노션", "notion", "페이지"},
		verbs:    []string{"조회", "검색", "찾"}},
	{service: "linear", tool: "linear_search_issues",
		keywords: []string{"이슈", "리니어", "linear"},
		verbs:    []string{"조회", "검색", "찾"}},
}

// MatchChunk is the deterministic fallback: picks the most likely tool
// for a chunk from keyword/verb patterns, restricted to connected
// services.
func MatchChunk(chunk string, connected []string) []models.StepwiseTask {
	lower := strings.ToLower(chunk)
	connectedSet := make(map[string]bool, len(connected))
	for _, svc := range connected {
		connectedSet[strings.ToLower(svc)] = true
	}

	for _, pattern := range stepwisePatterns {
		if len(connectedSet) > 0 && !connectedSet[pattern.service] {
			continue
		}
		if !containsAnyOf(lower, pattern.keywords) {
			continue
		}
		if len(pattern.verbs) > 0 && !containsAnyOf(lower, pattern.verbs) {
			continue
		}
		return []models.StepwiseTask{{
			Sentence: chunk,
			Service:  pattern.service,
			ToolName: pattern.tool,
		}}
	}
	return nil
}

func catalogPayload(tools []registry.LLMTool) map[string]any {
	names := make([]any, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	return map[string]any{"tools": names}
}

func servicesOf(tasks []models.StepwiseTask) []string {
	seen := map[string]bool{}
	var out []string
	for _, task := range tasks {
		if task.Service == "" || seen[task.Service] {
			continue
		}
		seen[task.Service] = true
		out = append(out, task.Service)
	}
	return out
}

func stepwiseToolNames(tasks []models.StepwiseTask) []string {
	names := make([]string, 0, len(tasks))
	for _, task := range tasks {
		names = append(names, task.ToolName)
	}
	return names
}

func toPayloadMap(payload models.StepwisePayload) map[string]any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}
