package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/guides"
	"github.com/braid-labs/braid/pkg/intent"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/registry"
)

// verbBoosts maps a Korean verb to tool-name fragments it favours and
// the extra score each match earns.
type verbBoost struct {
	verbs     []string
	fragments []string
	bonus     int
}

var verbBoosts = []verbBoost{
	{verbs: []string{"요약"}, fragments: []string{"retrieve", "search"}, bonus: 1},
	{verbs: []string{"생성", "만들", "작성"}, fragments: []string{"create", "append"}, bonus: 2},
	{verbs: []string{"조회", "검색", "목록"}, fragments: []string{"search", "get", "retrieve", "list"}, bonus: 1},
	{verbs: []string{"삭제", "아카이브"}, fragments: []string{"update"}, bonus: 2},
}

// workflowStages is the fixed human-readable step list every rule plan
// carries; the selected tool names are appended at the end.
var workflowStages = []string{
	"1. 요구사항 분석",
	"2. 대상 서비스 결정",
	"3. 사용 가능한 도구 조회",
	"4. 도구 선택",
	"5. 실행 계획 구성",
	"6. 계획 검증",
	"7. 실행",
}

// RulePlanner builds plans deterministically from keyword tables and
// tool-description scoring.
type RulePlanner struct {
	registry *registry.Registry
	guides   *guides.Loader
	maxTools int
}

// NewRulePlanner creates a rule planner. executor config supplies the
// selected-tool cap.
func NewRulePlanner(reg *registry.Registry, guideLoader *guides.Loader, cfg *config.ExecutorConfig) *RulePlanner {
	maxTools := 5
	if cfg != nil && cfg.MaxSelectedTools > 0 {
		maxTools = cfg.MaxSelectedTools
	}
	return &RulePlanner{registry: reg, guides: guideLoader, maxTools: maxTools}
}

// Plan produces an AgentPlan for the user text without any LLM call.
func (p *RulePlanner) Plan(userText string, connected []string) (*models.AgentPlan, error) {
	text := intent.NormalizeWhitespace(userText)

	plan := &models.AgentPlan{
		UserText:       userText,
		Requirements:   extractRequirements(text),
		TargetServices: ResolveServices(p.registry, text, connected, 3),
	}

	union := unionServices(plan.TargetServices, connected)
	available, err := p.registry.ListAvailableTools(union, nil)
	if err != nil {
		return nil, err
	}

	selected := p.selectTools(text, plan.TargetServices, available)
	plan.SelectedTools = toolNames(selected)

	for _, svc := range plan.TargetServices {
		if ctx, ok := p.guides.PlanningContext(svc); ok {
			plan.AddNote(fmt.Sprintf("guide:%s:%s", svc, firstLine(ctx)))
		} else {
			plan.AddNote(fmt.Sprintf("guide:%s:not_available", svc))
		}
	}

	plan.WorkflowSteps = append(append([]string{}, workflowStages...),
		"도구: "+strings.Join(plan.SelectedTools, ", "))

	plan.Tasks = buildRuleTasks(text, selected)
	return plan, nil
}

// extractRequirements derives requirement summaries from intent keywords.
func extractRequirements(text string) []models.AgentRequirement {
	var reqs []models.AgentRequirement
	add := func(summary string, quantity *int) {
		reqs = append(reqs, models.AgentRequirement{Summary: summary, Quantity: quantity})
	}

	if intent.IsSummaryIntent(text) {
		n := intent.ExtractSentenceCount(text)
		var q *int
		if n > 0 {
			q = &n
		}
		add("summarize", q)
	}
	if intent.IsCreateIntent(text) {
		add("create", nil)
	}
	if intent.IsUpdateIntent(text) {
		add("update", nil)
	}
	if intent.IsDeleteIntent(text) {
		add("delete", nil)
	}
	if intent.IsAppendIntent(text) {
		add("append", nil)
	}
	if intent.IsReadIntent(text) && !intent.IsSummaryIntent(text) {
		n := intent.ExtractCountLimit(text, 0, 1, 100)
		var q *int
		if n > 0 {
			q = &n
		}
		add("read", q)
	}
	if len(reqs) == 0 {
		add("fulfill request", nil)
	}
	return reqs
}

// selectTools scores available tools against the text and returns up to
// maxTools with positive score, falling back to the first registered
// tools of the target services.
func (p *RulePlanner) selectTools(text string, targets []string, available []*registry.ToolDefinition) []*registry.ToolDefinition {
	targetSet := make(map[string]bool, len(targets))
	for _, svc := range targets {
		targetSet[svc] = true
	}

	type scored struct {
		def   *registry.ToolDefinition
		score int
		order int
	}
	var candidates []scored
	for i, def := range available {
		if len(targetSet) > 0 && !targetSet[def.Service] {
			continue
		}
		candidates = append(candidates, scored{def: def, score: scoreTool(text, def), order: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].order < candidates[j].order
	})

	var selected []*registry.ToolDefinition
	for _, c := range candidates {
		if c.score <= 0 {
			break
		}
		selected = append(selected, c.def)
		if len(selected) == p.maxTools {
			break
		}
	}

	if len(selected) == 0 {
		for _, c := range candidates {
			selected = append(selected, c.def)
			if len(selected) == p.maxTools {
				break
			}
		}
	}
	return selected
}

// scoreTool counts word overlap between the text and the tool's name and
// description, plus Korean verb boosts.
func scoreTool(text string, def *registry.ToolDefinition) int {
	lower := strings.ToLower(text)
	haystack := strings.ToLower(def.ToolName + " " + def.Description)

	score := 0
	seen := map[string]bool{}
	for _, word := range tokenize(haystack) {
		if len(word) < 2 || seen[word] {
			continue
		}
		seen[word] = true
		if strings.Contains(lower, word) {
			score++
		}
	}

	name := strings.ToLower(def.ToolName)
	for _, boost := range verbBoosts {
		if !containsAnyOf(lower, boost.verbs) {
			continue
		}
		if containsAnyOf(name, boost.fragments) {
			score += boost.bonus
		}
	}
	return score
}

// buildRuleTasks sequences the selected tools: read tools first, then a
// summarisation LLM task when the text asks for one, then mutation tools
// depending on the summary so created artifacts carry it.
func buildRuleTasks(text string, selected []*registry.ToolDefinition) []models.AgentTask {
	var reads, mutations []*registry.ToolDefinition
	for _, def := range selected {
		if isMutationTool(def.ToolName) {
			mutations = append(mutations, def)
		} else {
			reads = append(reads, def)
		}
	}

	var tasks []models.AgentTask
	next := 1
	addTool := func(def *registry.ToolDefinition, dependsOn string) string {
		task := models.AgentTask{
			ID:           fmt.Sprintf("t%d", next),
			Title:        def.Description,
			TaskType:     models.TaskTypeTool,
			Service:      def.Service,
			ToolName:     def.ToolName,
			Payload:      map[string]any{},
			OutputSchema: map[string]any{"type": "object"},
		}
		if dependsOn != "" {
			task.DependsOn = []string{dependsOn}
		}
		tasks = append(tasks, task)
		next++
		return task.ID
	}

	var prev string
	for _, def := range reads {
		prev = addTool(def, prev)
	}

	if intent.IsSummaryIntent(text) && prev != "" {
		instruction := "결과를 요약해 주세요."
		payload := map[string]any{}
		if n := intent.ExtractSentenceCount(text); n > 0 {
			instruction = fmt.Sprintf("결과를 %d문장으로 요약해 주세요.", n)
			payload["sentences"] = n
		}
		llm := models.AgentTask{
			ID:           fmt.Sprintf("t%d", next),
			Title:        "summarize",
			TaskType:     models.TaskTypeLLM,
			DependsOn:    []string{prev},
			Instruction:  instruction,
			Payload:      payload,
			OutputSchema: map[string]any{"type": "object"},
		}
		tasks = append(tasks, llm)
		next++
		prev = llm.ID

		// Every mutation consumes the summary directly.
		for _, def := range mutations {
			addTool(def, llm.ID)
		}
		return tasks
	}

	for _, def := range mutations {
		prev = addTool(def, prev)
	}
	return tasks
}

// isMutationTool marks tools that create or change upstream state.
func isMutationTool(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"create", "append", "update", "delete", "archive"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func unionServices(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, svc := range append(append([]string{}, a...), b...) {
		svc = strings.ToLower(svc)
		if svc == "" || seen[svc] {
			continue
		}
		seen[svc] = true
		out = append(out, svc)
	}
	return out
}

func toolNames(defs []*registry.ToolDefinition) []string {
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.ToolName)
	}
	return names
}

func containsAnyOf(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	const max = 120
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > max {
		return string(runes[:max])
	}
	return string(runes)
}
