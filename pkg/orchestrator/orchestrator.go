// Package orchestrator is the entry point of the analysis loop. One
// RunAgentAnalysis call resolves pending slot collection, validates the
// request, picks a plan source (stepwise, LLM, rule fallback), chooses
// the execution mode (autonomous or classical), runs the plan, verifies
// the outcome against the user's intent, and records link rows, command
// logs, and metrics.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/braid-labs/braid/pkg/config"
	"github.com/braid-labs/braid/pkg/executor"
	"github.com/braid-labs/braid/pkg/intent"
	"github.com/braid-labs/braid/pkg/links"
	"github.com/braid-labs/braid/pkg/llm"
	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/observability"
	"github.com/braid-labs/braid/pkg/pending"
	"github.com/braid-labs/braid/pkg/planner"
	"github.com/braid-labs/braid/pkg/policy"
	"github.com/braid-labs/braid/pkg/registry"
	"github.com/braid-labs/braid/pkg/rollout"
	"github.com/braid-labs/braid/pkg/slots"
	"github.com/braid-labs/braid/pkg/tools"
)

// Rollout feature names the orchestrator consults.
const (
	FeatureAutonomous = "autonomous_execution"
	FeatureStepwise   = "stepwise_pipeline"
)

const commandAgentPlan = "agent_plan"

// RulePlanner is the deterministic fallback planner.
type RulePlanner interface {
	Plan(userText string, connected []string) (*models.AgentPlan, error)
}

// LLMPlanner is the primary planner. A nil plan with a reason means the
// caller should fall back to the rule planner.
type LLMPlanner interface {
	Plan(ctx context.Context, userText string, connected []string) (*models.AgentPlan, string, error)
}

// StepwisePlanner handles requests that decompose into an ordered tool
// list over a runtime catalog.
type StepwisePlanner interface {
	Applies(userText string, connected []string) bool
	Plan(ctx context.Context, userID, userText string, connected []string, grantedScopes map[string][]string) (*models.AgentPlan, error)
}

// Engine executes a plan. Implemented by *executor.Executor.
type Engine interface {
	Execute(ctx context.Context, run executor.Run) *models.AgentExecutionResult
}

// ActionClient drives one turn of the autonomous loop. Implemented by
// *llm.Client.
type ActionClient interface {
	CompleteJSON(ctx context.Context, req llm.CompletionRequest) (map[string]any, string, error)
}

// ScopeSource reports the OAuth scopes a user granted per service.
// Implemented by the token service; nil means no scopes are known.
type ScopeSource interface {
	GrantedScopes(ctx context.Context, userID string) (map[string][]string, error)
}

// Deps are the injected collaborators of an Orchestrator. Registry,
// Executor, Rule, and Config are required; everything else degrades
// gracefully when nil.
type Deps struct {
	Registry *registry.Registry
	Executor Engine
	Rule     RulePlanner
	LLM      LLMPlanner
	Stepwise StepwisePlanner
	Invoker  tools.Invoker
	Scopes   ScopeSource
	Pending  pending.Store
	Slots    *slots.Normalizer
	Links    *links.Writer
	Recorder *observability.Recorder
	Rollout  *rollout.Controller
	Action   ActionClient
	Config   *config.Config
}

// Orchestrator runs the analysis loop.
type Orchestrator struct {
	deps Deps

	// injectable for tests
	now   func() time.Time
	newID func() string
}

// New creates an orchestrator over its collaborators.
func New(deps Deps) *Orchestrator {
	if deps.Config == nil {
		deps.Config = &config.Config{}
	}
	return &Orchestrator{
		deps:  deps,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// RunAgentAnalysis is the single entry point of the engine: user text in,
// AgentRunResult out. It never returns an error; every failure is a
// result with ok=false and a user-facing message.
func (o *Orchestrator) RunAgentAnalysis(ctx context.Context, userID, userText string, connected []string) *models.AgentRunResult {
	started := o.now()
	requestID := o.newID()
	text := intent.NormalizeWhitespace(userText)

	rec := &runRecord{
		requestID: requestID,
		started:   started,
		userID:    userID,
		connected: connected,
	}

	// A live pending action consumes this turn as a slot value.
	if o.deps.Pending != nil {
		if pa, err := o.deps.Pending.Get(ctx, userID); err == nil && pa != nil {
			return o.resumePending(ctx, rec, text, connected, pa)
		}
	}

	if result := o.validateDataSource(ctx, userID, text); result != nil {
		return o.finish(ctx, rec, result)
	}

	grantedScopes := o.grantedScopes(ctx, userID)
	profile, err := policy.Compute(o.deps.Registry, connected, grantedScopes, o.deps.Config.Policy)
	if err != nil {
		slog.Error("failed to compute runtime profile", "user_id", userID, "error", err)
		return o.finish(ctx, rec, planningFailure(models.ErrExecution, "실행 프로파일 계산 실패"))
	}

	plan, planSource, fallbackReason := o.buildPlan(ctx, userID, text, connected, grantedScopes)
	rec.planSource = planSource
	rec.planFallbackReason = fallbackReason
	if plan == nil {
		return o.finish(ctx, rec, planningFailure(models.ErrExecution, "계획 수립 실패"))
	}

	if len(plan.TargetServices) == 0 {
		result := planningFailure(models.ErrClarificationNeeded, "대상 서비스 없음")
		result.Plan = plan
		result.PlanSource = planSource
		return o.finish(ctx, rec, result)
	}

	if code := planner.ValidatePlan(plan); code != "" {
		slog.Warn("plan rejected by contract", "user_id", userID, "violation", code, "plan_source", planSource)
		result := planningFailure(models.ErrValidation, "계획 검증 실패: "+code)
		result.Plan = plan
		result.PlanSource = planSource
		return o.finish(ctx, rec, result)
	}

	return o.executePlan(ctx, rec, text, connected, grantedScopes, profile, plan, planSource)
}

// executePlan runs an admitted plan end to end: execution mode choice,
// execution, link rows, post-verification.
func (o *Orchestrator) executePlan(ctx context.Context, rec *runRecord, text string, connected []string,
	grantedScopes map[string][]string, profile *policy.Profile,
	plan *models.AgentPlan, planSource models.PlanSource) *models.AgentRunResult {

	var execResult *models.AgentExecutionResult

	if planSource == models.PlanSourceLLM {
		decision := o.evaluateFeature(rec.userID, FeatureAutonomous)
		if decision.Serve {
			catalog := o.enabledCatalog(connected, grantedScopes, profile)
			result, loopErr := o.runAutonomousWithRetry(ctx, rec.userID, text, catalog)
			switch {
			case loopErr == "":
				execResult = result
			case o.autonomousStrict():
				execResult = result
				rec.autonomousFallbackReason = loopErr
			default:
				rec.autonomousFallbackReason = loopErr
				slog.Warn("autonomous loop failed, falling back to classical execution",
					"user_id", rec.userID, "loop_error", loopErr)
			}
		}
	}

	if execResult == nil {
		execResult = o.deps.Executor.Execute(ctx, executor.Run{
			UserID:  rec.userID,
			Plan:    plan,
			Profile: profile,
		})
	}

	// Link rows reflect the run's own outcome, before intent verification.
	o.writeLinks(ctx, rec.userID, plan, execResult)

	verificationReason := ""
	if execResult.Success {
		if reason := executor.VerifyExecution(text, execResult); reason != "" {
			verificationReason = reason
			execResult.Success = false
			if execResult.Artifacts == nil {
				execResult.Artifacts = map[string]any{}
			}
			execResult.Artifacts["error_code"] = string(models.ErrVerificationFailed)
			execResult.Artifacts["verification_reason"] = reason
			execResult.Summary = "실행 검증 실패"
		}
	}
	rec.verificationReason = verificationReason

	if execResult.UserMessage == "" {
		execResult.UserMessage = FormatUserMessage(execResult)
	}

	stage := models.StageCompleted
	if !execResult.Success {
		stage = models.StageExecution
	}
	result := &models.AgentRunResult{
		OK:            execResult.Success,
		Stage:         stage,
		Plan:          plan,
		ResultSummary: execResult.Summary,
		Execution:     execResult,
		PlanSource:    planSource,
	}
	return o.finish(ctx, rec, result)
}

// buildPlan picks the plan source: stepwise when it applies and is
// rolled out, otherwise LLM with the rule planner as fallback.
func (o *Orchestrator) buildPlan(ctx context.Context, userID, text string, connected []string,
	grantedScopes map[string][]string) (*models.AgentPlan, models.PlanSource, string) {

	if o.deps.Stepwise != nil && o.deps.Stepwise.Applies(text, connected) {
		if o.evaluateFeature(userID, FeatureStepwise).Serve {
			plan, err := o.deps.Stepwise.Plan(ctx, userID, text, connected, grantedScopes)
			if err == nil {
				return plan, models.PlanSourceStepwise, ""
			}
			slog.Warn("stepwise planning failed, falling back", "user_id", userID, "error", err)
		}
	}

	fallbackReason := "no_llm_client"
	if o.deps.LLM != nil {
		plan, reason, err := o.deps.LLM.Plan(ctx, text, connected)
		if err == nil && plan != nil {
			return plan, models.PlanSourceLLM, ""
		}
		fallbackReason = reason
		if err != nil {
			fallbackReason = "planner_error"
		}
		if fallbackReason == "" {
			fallbackReason = "plan_rejected"
		}
	}

	plan, err := o.deps.Rule.Plan(text, connected)
	if err != nil {
		slog.Error("rule planning failed", "user_id", userID, "error", err)
		return nil, models.PlanSourceRule, fallbackReason
	}
	plan.AddNote("llm_planner_fallback:" + fallbackReason)
	return plan, models.PlanSourceRule, fallbackReason
}

// validateDataSource short-circuits data-source queries without a usable
// id: the user gets a deterministic prompt with an example, and a
// pending action waits for the id on the next turn.
func (o *Orchestrator) validateDataSource(ctx context.Context, userID, text string) *models.AgentRunResult {
	if !intent.IsDataSourceIntent(text) {
		return nil
	}
	if findUUID(text) != "" {
		return nil
	}

	if o.deps.Pending != nil {
		pa := &models.PendingAction{
			UserID:         userID,
			Intent:         "data_source_query",
			Action:         "notion.data_source_query",
			CollectedSlots: map[string]any{},
			MissingSlots:   []string{"data_source_id"},
			ExpiresAt:      o.now().Add(o.pendingTTL()),
		}
		if err := o.deps.Pending.Set(ctx, pa); err != nil {
			slog.Warn("failed to store pending action", "user_id", userID, "error", err)
		}
	}

	message := PromptForSlot("data_source_id")
	exec := &models.AgentExecutionResult{
		Success:     false,
		Summary:     "데이터소스 ID 검증 실패",
		UserMessage: message,
		Artifacts: map[string]any{
			"error_code":   string(models.ErrValidation),
			"missing_slot": "data_source_id",
		},
	}
	return &models.AgentRunResult{
		OK:            false,
		Stage:         models.StageValidation,
		ResultSummary: message,
		Execution:     exec,
	}
}

// resumePending treats the turn's text as the value of the next missing
// slot, re-validates, and either asks for the next slot or executes.
func (o *Orchestrator) resumePending(ctx context.Context, rec *runRecord, text string,
	connected []string, pa *models.PendingAction) *models.AgentRunResult {

	if len(pa.MissingSlots) == 0 || o.deps.Slots == nil {
		_ = o.deps.Pending.Clear(ctx, rec.userID)
		return o.finish(ctx, rec, planningFailure(models.ErrClarificationNeeded, "이전 요청 상태가 유효하지 않음"))
	}

	slot := pa.MissingSlots[0]
	collected := make(map[string]any, len(pa.CollectedSlots)+1)
	for k, v := range pa.CollectedSlots {
		collected[k] = v
	}
	collected[slot] = slotValueFrom(slot, text)

	normalized, missing, errs := o.deps.Slots.Validate(pa.Action, collected)
	if slotRejected(slot, errs) {
		// same slot again, pending untouched
		return o.finish(ctx, rec, slotClarification(slot))
	}
	if len(missing) > 0 {
		pa.CollectedSlots = normalized
		pa.MissingSlots = missing
		pa.ExpiresAt = o.now().Add(o.pendingTTL())
		if err := o.deps.Pending.Set(ctx, pa); err != nil {
			slog.Warn("failed to update pending action", "user_id", rec.userID, "error", err)
		}
		return o.finish(ctx, rec, slotClarification(missing[0]))
	}

	if err := o.deps.Pending.Clear(ctx, rec.userID); err != nil {
		slog.Warn("failed to clear pending action", "user_id", rec.userID, "error", err)
	}

	plan := pa.Plan
	planSource := pa.PlanSource
	if planSource == "" {
		planSource = models.PlanSourceRule
	}
	if plan == nil {
		plan = resumedPlan(pa, normalized, text)
	}
	if plan == nil {
		return o.finish(ctx, rec, planningFailure(models.ErrClarificationNeeded, "재개할 작업 없음"))
	}
	rec.planSource = planSource

	grantedScopes := o.grantedScopes(ctx, rec.userID)
	profile, err := policy.Compute(o.deps.Registry, connected, grantedScopes, o.deps.Config.Policy)
	if err != nil {
		return o.finish(ctx, rec, planningFailure(models.ErrExecution, "실행 프로파일 계산 실패"))
	}
	if code := planner.ValidatePlan(plan); code != "" {
		result := planningFailure(models.ErrValidation, "계획 검증 실패: "+code)
		result.Plan = plan
		return o.finish(ctx, rec, result)
	}
	return o.executePlan(ctx, rec, text, connected, grantedScopes, profile, plan, planSource)
}

// resumedPlan rebuilds an executable plan for a pending action that was
// stored without one. Only the data-source query needs this today.
func resumedPlan(pa *models.PendingAction, normalized map[string]any, text string) *models.AgentPlan {
	if pa.Action != "notion.data_source_query" {
		return nil
	}
	payload := map[string]any{"data_source_id": normalized["data_source_id"]}
	if size, ok := normalized["page_size"]; ok {
		payload["page_size"] = size
	}
	return &models.AgentPlan{
		UserText:       text,
		TargetServices: []string{"notion"},
		SelectedTools:  []string{"notion_data_source_query"},
		Tasks: []models.AgentTask{{
			ID:           "t1",
			Title:        "데이터소스 조회",
			TaskType:     models.TaskTypeTool,
			Service:      "notion",
			ToolName:     "notion_data_source_query",
			Payload:      payload,
			OutputSchema: map[string]any{"type": "object"},
		}},
	}
}

// writeLinks derives pipeline link rows from a DAG run's artifacts.
func (o *Orchestrator) writeLinks(ctx context.Context, userID string, plan *models.AgentPlan, result *models.AgentExecutionResult) {
	if o.deps.Links == nil || result.Artifact("router_mode") != "PIPELINE_DAG" {
		return
	}
	runID := result.Artifact("pipeline_run_id")
	pipelineID := dagPipelineID(plan)

	if result.Success {
		if _, err := o.deps.Links.WriteSuccess(ctx, userID, runID, pipelineID, result.Artifacts); err != nil {
			slog.Warn("failed to write pipeline links", "user_id", userID, "run_id", runID, "error", err)
		}
		return
	}

	eventID := firstEventID(result.Artifacts)
	if eventID == "" {
		eventID = runID
	}
	comp := models.CompensationStatus(result.Artifact("compensation_status"))
	if err := o.deps.Links.WriteFailure(ctx, userID, eventID, runID, pipelineID,
		result.Artifact("error_code"), comp); err != nil {
		slog.Warn("failed to write failure link", "user_id", userID, "run_id", runID, "error", err)
	}
}

// finish records metrics and the command log row, formats a missing user
// message, and returns the result.
func (o *Orchestrator) finish(ctx context.Context, rec *runRecord, result *models.AgentRunResult) *models.AgentRunResult {
	latencyMS := o.now().Sub(rec.started).Milliseconds()
	observability.AnalysisLatency.Observe(float64(latencyMS) / 1000)

	if result.Execution != nil && result.Execution.UserMessage == "" {
		result.Execution.UserMessage = FormatUserMessage(result.Execution)
	}
	if result.ResultSummary == "" && result.Execution != nil {
		result.ResultSummary = result.Execution.Summary
	}

	errorCode := ""
	executionMode := ""
	runID := ""
	pipelineID := ""
	if exec := result.Execution; exec != nil {
		errorCode = exec.Artifact("error_code")
		executionMode = exec.Artifact("execution_mode")
		if executionMode == "" && exec.Artifact("router_mode") != "" {
			executionMode = strings.ToLower(exec.Artifact("router_mode"))
		}
		runID = exec.Artifact("pipeline_run_id")
		if comp := exec.Artifact("compensation_status"); comp != "" && comp != string(models.CompensationNotRequired) {
			observability.CompensationTotal.WithLabelValues(comp).Inc()
		}
	}
	if result.Plan != nil {
		pipelineID = dagPipelineID(result.Plan)
	}

	fields := map[string]any{
		"services":            strings.Join(rec.connected, ","),
		"request_id":          rec.requestID,
		"analysis_latency_ms": latencyMS,
	}
	if runID != "" {
		fields["pipeline_run_id"] = runID
		fields["dag_pipeline"] = true
	}
	if exec := result.Execution; exec != nil && exec.Artifacts != nil {
		if v, ok := exec.Artifacts["idempotent_success_reuse_count"]; ok {
			fields["idempotent_success_reuse_count"] = v
		}
	}
	if rec.planFallbackReason != "" {
		fields["plan_fallback_reason"] = rec.planFallbackReason
	}

	status := "completed"
	if !result.OK {
		status = "failed"
	}
	if o.deps.Recorder != nil {
		o.deps.Recorder.RecordCommand(ctx, models.CommandLogEntry{
			UserID:                   rec.userID,
			Command:                  commandAgentPlan,
			Status:                   status,
			FinalStatus:              result.Stage,
			PlanSource:               string(rec.planSource),
			ExecutionMode:            executionMode,
			ErrorCode:                errorCode,
			VerificationReason:       rec.verificationReason,
			AutonomousFallbackReason: rec.autonomousFallbackReason,
			Detail:                   observability.BuildDetail(fields),
		})
		if runID != "" && result.Execution != nil {
			o.deps.Recorder.RecordSteps(ctx, rec.requestID, runID, pipelineID, result.Execution.Steps)
		}
	}
	return result
}

// runRecord accumulates what one run needs to log at the end.
type runRecord struct {
	requestID                string
	started                  time.Time
	userID                   string
	connected                []string
	planSource               models.PlanSource
	planFallbackReason       string
	verificationReason       string
	autonomousFallbackReason string
}

// evaluateFeature consults the rollout controller and counts the decision.
func (o *Orchestrator) evaluateFeature(userID, feature string) rollout.Decision {
	if o.deps.Rollout == nil {
		return rollout.Decision{Reason: "disabled"}
	}
	decision := o.deps.Rollout.Evaluate(userID, feature)
	observability.RolloutDecisions.WithLabelValues(feature, decision.Reason).Inc()
	return decision
}

func (o *Orchestrator) grantedScopes(ctx context.Context, userID string) map[string][]string {
	if o.deps.Scopes == nil {
		return nil
	}
	scopes, err := o.deps.Scopes.GrantedScopes(ctx, userID)
	if err != nil {
		slog.Warn("failed to read granted scopes", "user_id", userID, "error", err)
		return nil
	}
	return scopes
}

// enabledCatalog projects the profile-enabled tools of the connected
// services for the autonomous loop's provider prompt.
func (o *Orchestrator) enabledCatalog(connected []string, grantedScopes map[string][]string, profile *policy.Profile) []registry.LLMTool {
	defs, err := o.deps.Registry.ListAvailableTools(connected, grantedScopes)
	if err != nil {
		slog.Warn("failed to list available tools", "error", err)
		return nil
	}
	var catalog []registry.LLMTool
	for _, def := range defs {
		if profile != nil && !profile.Enabled(def.ToolName) {
			continue
		}
		catalog = append(catalog, registry.LLMTool{
			Name:        def.ToolName,
			Description: def.Description,
			InputSchema: def.InputSchema,
		})
	}
	return catalog
}

func (o *Orchestrator) pendingTTL() time.Duration {
	if o.deps.Config.Pending != nil {
		return o.deps.Config.Pending.TTL()
	}
	return 10 * time.Minute
}

func (o *Orchestrator) autonomousStrict() bool {
	return o.deps.Config.Autonomous != nil && o.deps.Config.Autonomous.Strict
}

// planningFailure renders a planning-stage failure result.
func planningFailure(code models.ErrorCode, summary string) *models.AgentRunResult {
	exec := &models.AgentExecutionResult{
		Success:   false,
		Summary:   summary,
		Artifacts: map[string]any{"error_code": string(code)},
	}
	return &models.AgentRunResult{
		OK:            false,
		Stage:         models.StagePlanning,
		ResultSummary: summary,
		Execution:     exec,
	}
}

// slotClarification renders the validation result asking for one slot.
func slotClarification(slot string) *models.AgentRunResult {
	message := PromptForSlot(slot)
	exec := &models.AgentExecutionResult{
		Success:     false,
		Summary:     "추가 정보 필요: " + slot,
		UserMessage: message,
		Artifacts: map[string]any{
			"error_code":   string(models.ErrClarificationNeeded),
			"missing_slot": slot,
		},
	}
	return &models.AgentRunResult{
		OK:            false,
		Stage:         models.StageValidation,
		ResultSummary: message,
		Execution:     exec,
	}
}

// slotRejected reports whether the validation errors include the slot.
func slotRejected(slot string, errs []string) bool {
	for _, e := range errs {
		if strings.HasPrefix(e, slot+":") {
			return true
		}
	}
	return false
}

// slotValueFrom extracts the slot value from a conversational turn.
// UUID-shaped slots accept dashed and undashed forms anywhere in the
// text; everything else takes the trimmed text.
func slotValueFrom(slot, text string) any {
	switch slot {
	case "data_source_id", "page_id", "parent_page_id":
		if id := findUUID(text); id != "" {
			return id
		}
	case "issue_id":
		if ref := intent.ExtractLinearIssueReference(text); ref != "" {
			return ref
		}
	}
	return strings.TrimSpace(text)
}

var (
	dashedUUIDRE   = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	undashedUUIDRE = regexp.MustCompile(`\b[0-9a-fA-F]{32}\b`)
)

// findUUID returns the first UUID in the text in dashed lowercase form;
// undashed forms are normalized. Empty when none.
func findUUID(text string) string {
	if m := dashedUUIDRE.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	if m := undashedUUIDRE.FindString(text); m != "" {
		m = strings.ToLower(m)
		return fmt.Sprintf("%s-%s-%s-%s-%s", m[0:8], m[8:12], m[12:16], m[16:20], m[20:32])
	}
	return ""
}

// dagPipelineID reads the pipeline id of the plan's DAG task, if any.
func dagPipelineID(plan *models.AgentPlan) string {
	for _, task := range plan.Tasks {
		if task.TaskType != models.TaskTypePipelineDAG {
			continue
		}
		if id, ok := task.Payload["pipeline_id"].(string); ok && id != "" {
			return id
		}
		return task.ID
	}
	return ""
}

// firstEventID finds an upstream event id in a failed run's artifacts,
// for the single failure link row.
func firstEventID(artifacts map[string]any) string {
	for _, value := range artifacts {
		node, ok := value.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := node["event_id"].(string); ok && id != "" {
			return id
		}
		for _, inner := range node {
			items, ok := inner.([]any)
			if !ok {
				continue
			}
			for _, raw := range items {
				item, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				if id, ok := item["event_id"].(string); ok && id != "" {
					return id
				}
				id, _ := item["id"].(string)
				if id == "" {
					continue
				}
				if _, hasSummary := item["summary"]; hasSummary {
					return id
				}
				if _, hasStart := item["start"]; hasStart {
					return id
				}
			}
		}
	}
	return ""
}
