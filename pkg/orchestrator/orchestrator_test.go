package orchestrator

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/executor"
	"github.com/braid-labs/braid/pkg/links"
	"github.com/braid-labs/braid/pkg/masking"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/observability"
	"github.com/braid-labs/braid/pkg/pending"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/slots"
)

// --- fakes ---------------------------------------------------------------

type fakeRulePlanner struct {
	plan *models.AgentPlan
	err  error
}

func (f *fakeRulePlanner) Plan(string, []string) (*models.AgentPlan, error) {
	if f.plan != nil {
		// deep-enough copy so AddNote in the orchestrator does not leak
		// between test calls
		clone := *f.plan
		return &clone, f.err
	}
	return nil, f.err
}

type fakeLLMPlanner struct {
	plan   *models.AgentPlan
	reason string
	err    error
}

func (f *fakeLLMPlanner) Plan(context.Context, string, []string) (*models.AgentPlan, string, error) {
	return f.plan, f.reason, f.err
}

type fakeEngine struct {
	result  *models.AgentExecutionResult
	lastRun executor.Run
	calls   int
}

func (f *fakeEngine) Execute(_ context.Context, run executor.Run) *models.AgentExecutionResult {
	f.lastRun = run
	f.calls++
	if f.result != nil {
		return f.result
	}
	return &models.AgentExecutionResult{Success: true, Summary: "done"}
}

type fakeLinkStore struct {
	records []models.PipelineLinkRecord
}

func (f *fakeLinkStore) Upsert(_ context.Context, record models.PipelineLinkRecord) error {
	f.records = append(f.records, record)
	return nil
}

type fakeCommandStore struct {
	entries []models.CommandLogEntry
}

func (f *fakeCommandStore) Append(_ context.Context, entry models.CommandLogEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeStepStore struct {
	entries []models.StepLogEntry
}

func (f *fakeStepStore) Append(_ context.Context, entry models.StepLogEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

// --- fixtures ------------------------------------------------------------

func fixtureRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	dir := t.TempDir()
	spec := map[string]any{
		"service":  "notion",
		"version":  "2024-06",
		"base_url": "https://api.notion.com/v1",
		"tools": []map[string]any{
			{
				"tool_name":        "notion_data_source_query",
				"description":      "Query rows of a Notion data source",
				"method":           "POST",
				"path":             "/databases/{data_source_id}/query",
				"adapter_function": "notion.data_source_query",
				"input_schema":     map[string]any{"type": "object"},
			},
			{
				"tool_name":        "notion_create_page",
				"description":      "Create a page",
				"method":           "POST",
				"path":             "/pages",
				"adapter_function": "notion.create_page",
				"input_schema":     map[string]any{"type": "object"},
			},
		},
	}
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notion.json"), data, 0o644))
	return registry.NewRegistry(dir)
}

type testHarness struct {
	orch     *Orchestrator
	engine   *fakeEngine
	pending  pending.Store
	links    *fakeLinkStore
	commands *fakeCommandStore
	steps    *fakeStepStore
}

func newHarness(t *testing.T, mutate func(*Deps)) *testHarness {
	t.Helper()
	normalizer, err := slots.New("")
	require.NoError(t, err)

	h := &testHarness{
		engine:   &fakeEngine{},
		pending:  pending.NewMemoryStore(),
		links:    &fakeLinkStore{},
		commands: &fakeCommandStore{},
		steps:    &fakeStepStore{},
	}
	deps := Deps{
		Registry: fixtureRegistry(t),
		Executor: h.engine,
		Rule:     &fakeRulePlanner{plan: simpleToolPlan()},
		Pending:  h.pending,
		Slots:    normalizer,
		Links:    links.NewWriter(h.links),
		Recorder: observability.NewRecorder(h.commands, h.steps, masking.NewService()),
	}
	if mutate != nil {
		mutate(&deps)
	}
	h.orch = New(deps)
	return h
}

func simpleToolPlan() *models.AgentPlan {
	return &models.AgentPlan{
		TargetServices: []string{"notion"},
		SelectedTools:  []string{"notion_create_page"},
		Tasks: []models.AgentTask{{
			ID:           "t1",
			Title:        "페이지 생성",
			TaskType:     models.TaskTypeTool,
			Service:      "notion",
			ToolName:     "notion_create_page",
			Payload:      map[string]any{"title": "회의록"},
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
}

// --- tests ---------------------------------------------------------------

func TestDataSourceQueryWithoutIDAsksForSlot(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	result := h.orch.RunAgentAnalysis(ctx, "user-1", "노션 데이터베이스에서 이번 주 항목 조회해줘", []string{"notion"})

	assert.False(t, result.OK)
	assert.Equal(t, models.StageValidation, result.Stage)
	require.NotNil(t, result.Execution)
	assert.Equal(t, string(models.ErrValidation), result.Execution.Artifact("error_code"))
	assert.Equal(t, "data_source_id", result.Execution.Artifact("missing_slot"))
	assert.Contains(t, result.Execution.UserMessage, "12345678-1234-1234-1234-1234567890ab",
		"the prompt must show an example id")

	// nothing executed, and the slot wait is stored for the next turn
	assert.Zero(t, h.engine.calls)
	pa, err := h.pending.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, pa)
	assert.Equal(t, "notion.data_source_query", pa.Action)
	assert.Equal(t, []string{"data_source_id"}, pa.MissingSlots)

	// the failed turn is still command-logged
	require.Len(t, h.commands.entries, 1)
	assert.Equal(t, "failed", h.commands.entries[0].Status)
	assert.Equal(t, models.StageValidation, h.commands.entries[0].FinalStatus)
}

func TestDataSourceQueryWithIDPassesValidation(t *testing.T) {
	h := newHarness(t, nil)

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"데이터베이스 12345678-1234-1234-1234-1234567890ab 조회해줘", []string{"notion"})

	// validation passed; the rule planner's plan executed
	assert.Equal(t, 1, h.engine.calls)
	assert.NotEqual(t, models.StageValidation, result.Stage)
}

func TestPendingResumeExecutesWithCollectedSlot(t *testing.T) {
	h := newHarness(t, nil)
	h.engine.result = &models.AgentExecutionResult{
		Success: true,
		Summary: "조회 완료",
		Steps: []models.ExecutionStep{{
			ID: "t1", Type: "TOOL", ToolName: "notion_data_source_query",
			Status: models.StepSucceeded, Attempts: 1,
		}},
	}
	ctx := context.Background()

	require.NoError(t, h.pending.Set(ctx, &models.PendingAction{
		UserID:       "user-1",
		Intent:       "data_source_query",
		Action:       "notion.data_source_query",
		MissingSlots: []string{"data_source_id"},
		ExpiresAt:    time.Now().Add(10 * time.Minute),
	}))

	// undashed uppercase form must normalize to dashed lowercase
	result := h.orch.RunAgentAnalysis(ctx, "user-1",
		"ABCDEF12123412341234ABCDEF123456", []string{"notion"})

	assert.True(t, result.OK)
	assert.Equal(t, models.StageCompleted, result.Stage)
	require.Equal(t, 1, h.engine.calls)
	plan := h.engine.lastRun.Plan
	require.NotNil(t, plan)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "notion_data_source_query", plan.Tasks[0].ToolName)
	assert.Equal(t, "abcdef12-1234-1234-1234-abcdef123456", plan.Tasks[0].Payload["data_source_id"])

	pa, err := h.pending.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, pa, "pending action must be cleared after the resumed run")
}

func TestPendingResumeRejectsBadSlotValue(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()

	require.NoError(t, h.pending.Set(ctx, &models.PendingAction{
		UserID:       "user-1",
		Intent:       "data_source_query",
		Action:       "notion.data_source_query",
		MissingSlots: []string{"data_source_id"},
		ExpiresAt:    time.Now().Add(10 * time.Minute),
	}))

	result := h.orch.RunAgentAnalysis(ctx, "user-1", "그냥 아무거나", []string{"notion"})

	assert.False(t, result.OK)
	assert.Equal(t, models.StageValidation, result.Stage)
	assert.Equal(t, string(models.ErrClarificationNeeded), result.Execution.Artifact("error_code"))
	assert.Equal(t, "data_source_id", result.Execution.Artifact("missing_slot"))
	assert.Zero(t, h.engine.calls)

	pa, err := h.pending.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, pa, "pending action survives a rejected value")
	assert.Equal(t, []string{"data_source_id"}, pa.MissingSlots)
}

func TestLLMPlannerFallsBackToRules(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.LLM = &fakeLLMPlanner{reason: "low_confidence"}
	})

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"노션에 회의록 페이지 만들어줘", []string{"notion"})

	assert.True(t, result.OK)
	assert.Equal(t, models.PlanSourceRule, result.PlanSource)
	require.NotNil(t, result.Plan)
	assert.Contains(t, result.Plan.Notes, "llm_planner_fallback:low_confidence")

	require.Len(t, h.commands.entries, 1)
	entry := h.commands.entries[0]
	assert.Equal(t, "completed", entry.Status)
	assert.Equal(t, string(models.PlanSourceRule), entry.PlanSource)
	assert.Contains(t, entry.Detail, "plan_fallback_reason=low_confidence")
}

func TestLLMPlanUsedWhenAvailable(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.LLM = &fakeLLMPlanner{plan: simpleToolPlan()}
	})

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"노션에 회의록 페이지 만들어줘", []string{"notion"})

	assert.True(t, result.OK)
	assert.Equal(t, models.PlanSourceLLM, result.PlanSource)
}

func TestPlanWithoutTargetServicesIsRejected(t *testing.T) {
	h := newHarness(t, func(d *Deps) {
		d.Rule = &fakeRulePlanner{plan: &models.AgentPlan{}}
	})

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1", "뭔가 해줘", nil)

	assert.False(t, result.OK)
	assert.Equal(t, models.StagePlanning, result.Stage)
	assert.Equal(t, string(models.ErrClarificationNeeded), result.Execution.Artifact("error_code"))
	assert.Zero(t, h.engine.calls)
}

func TestContractViolationStopsExecution(t *testing.T) {
	// a TOOL task naming a service outside the plan's targets
	bad := &models.AgentPlan{
		TargetServices: []string{"notion"},
		Tasks: []models.AgentTask{{
			ID:           "t1",
			TaskType:     models.TaskTypeTool,
			Service:      "linear",
			ToolName:     "linear_create_issue",
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
	h := newHarness(t, func(d *Deps) {
		d.Rule = &fakeRulePlanner{plan: bad}
	})

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1", "이슈 만들어줘", []string{"notion"})

	assert.False(t, result.OK)
	assert.Equal(t, models.StagePlanning, result.Stage)
	assert.Equal(t, string(models.ErrValidation), result.Execution.Artifact("error_code"))
	assert.Zero(t, h.engine.calls)
}

func TestVerificationDowngradesUnfinishedRun(t *testing.T) {
	// the engine claims success but never called a tool; a read request
	// must then fail verification
	h := newHarness(t, nil)
	h.engine.result = &models.AgentExecutionResult{Success: true, Summary: "완료"}

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"노션 페이지 목록 보여줘", []string{"notion"})

	assert.False(t, result.OK)
	assert.Equal(t, models.StageExecution, result.Stage)
	assert.Equal(t, string(models.ErrVerificationFailed), result.Execution.Artifact("error_code"))
	assert.Equal(t, "lookup_requires_tool_call", result.Execution.Artifact("verification_reason"))

	require.Len(t, h.commands.entries, 1)
	assert.Equal(t, "failed", h.commands.entries[0].Status)
	assert.Equal(t, "lookup_requires_tool_call", h.commands.entries[0].VerificationReason)
}

func TestFailedDAGRunWritesFailureLink(t *testing.T) {
	dagPlan := &models.AgentPlan{
		TargetServices: []string{"notion"},
		Tasks: []models.AgentTask{{
			ID:           "dag1",
			TaskType:     models.TaskTypePipelineDAG,
			Payload:      map[string]any{"pipeline_id": "daily_brief"},
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
	h := newHarness(t, func(d *Deps) {
		d.Rule = &fakeRulePlanner{plan: dagPlan}
	})
	h.engine.result = &models.AgentExecutionResult{
		Success: false,
		Summary: "파이프라인 실패",
		Artifacts: map[string]any{
			"router_mode":         "PIPELINE_DAG",
			"pipeline_run_id":     "run_1",
			"error_code":          "TOOL_TIMEOUT",
			"compensation_status": string(models.CompensationCompleted),
		},
	}

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"노션으로 데일리 브리핑 돌려줘", []string{"notion"})

	assert.False(t, result.OK)
	require.Len(t, h.links.records, 1)
	record := h.links.records[0]
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "run_1", record.EventID, "run id stands in when no event id is known")
	assert.Equal(t, models.LinkFailed, record.Status)
	assert.Equal(t, "TOOL_TIMEOUT", record.ErrorCode)
	assert.Equal(t, models.CompensationCompleted, record.CompensationStatus)
}

func TestSuccessfulDAGRunWritesItemLinks(t *testing.T) {
	dagPlan := &models.AgentPlan{
		TargetServices: []string{"notion"},
		Tasks: []models.AgentTask{{
			ID:           "dag1",
			TaskType:     models.TaskTypePipelineDAG,
			Payload:      map[string]any{"pipeline_id": "daily_brief"},
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
	h := newHarness(t, func(d *Deps) {
		d.Rule = &fakeRulePlanner{plan: dagPlan}
	})
	h.engine.result = &models.AgentExecutionResult{
		Success: true,
		Summary: "2건 처리",
		Artifacts: map[string]any{
			"router_mode":     "PIPELINE_DAG",
			"pipeline_run_id": "run_7",
			"fanout": map[string]any{
				"item_results": []any{
					map[string]any{
						"fetch":  map[string]any{"event_id": "evt_1"},
						"create": map[string]any{"object": "page", "id": "page_1", "title": "주간 회의"},
					},
					map[string]any{
						"fetch": map[string]any{"event_id": "evt_2"},
					},
				},
			},
		},
		Steps: []models.ExecutionStep{{
			ID: "fanout", Type: "for_each", Status: models.StepSucceeded, Attempts: 1,
		}},
	}

	result := h.orch.RunAgentAnalysis(context.Background(), "user-1",
		"노션으로 데일리 브리핑 돌려줘", []string{"notion"})

	assert.True(t, result.OK)
	require.Len(t, h.links.records, 2)
	byEvent := map[string]models.PipelineLinkRecord{}
	for _, record := range h.links.records {
		byEvent[record.EventID] = record
		assert.Equal(t, models.LinkSucceeded, record.Status)
		assert.Equal(t, "run_7", record.RunID)
		assert.Equal(t, "daily_brief", record.PipelineID)
	}
	assert.Equal(t, "page_1", byEvent["evt_1"].NotionPageID)
	assert.Equal(t, "주간 회의", byEvent["evt_1"].Title)

	// step rows are recorded against the run
	require.Len(t, h.steps.entries, 1)
	assert.Equal(t, "run_7", h.steps.entries[0].RunID)
}

func TestFindUUIDNormalizesForms(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "id: 12345678-1234-1234-1234-1234567890ab 확인", "12345678-1234-1234-1234-1234567890ab"},
		{"dashed uppercase", "ABCDEF12-1234-1234-1234-ABCDEF123456", "abcdef12-1234-1234-1234-abcdef123456"},
		{"undashed", "db 123456781234123412341234567890ab 조회", "12345678-1234-1234-1234-1234567890ab"},
		{"none", "그냥 문장", ""},
		{"too short", "12345678", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findUUID(tt.text))
		})
	}
}
