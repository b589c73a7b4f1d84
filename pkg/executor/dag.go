package executor

import (
	"context"
	"log/slog"
	"time"

	"github.com/braid-labs/braid/pkg/models"
	"github.com/braid-labs/braid/pkg/tools"
	"github.com/braid-labs/braid/pkg/transform"
)

// dagRun is the ephemeral state of one pipeline execution.
type dagRun struct {
	exec          *Executor
	run           Run
	dag           *models.PipelineDAG
	pipelineRunID string

	results   map[string]any
	steps     []models.ExecutionStep
	mutations []mutationRecord
	toolCalls int

	idemSuccess map[string]bool
	reuseCount  int
}

// ExecuteDAG runs a PIPELINE_DAG task: gate, topological execution,
// compensation on failure.
func (e *Executor) ExecuteDAG(ctx context.Context, run Run, task *models.AgentTask) *models.AgentExecutionResult {
	dag, err := models.DAGFromPayload(task.Payload)
	if err != nil {
		return stepFailure(
			models.NewStepError(models.ErrDSLValidationFailed, task.ID, "%v", err),
			nil, dagArtifacts("", models.CompensationNotRequired))
	}

	r := &dagRun{
		exec:          e,
		run:           run,
		dag:           dag,
		pipelineRunID: e.newID(),
		results:       map[string]any{},
		idemSuccess:   map[string]bool{},
	}

	if gateErr := r.gate(); gateErr != nil {
		return stepFailure(gateErr, nil, dagArtifacts(r.pipelineRunID, models.CompensationNotRequired))
	}

	timeout := time.Duration(dag.Limits.PipelineTimeoutSec) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	top := r.topLevelIDs()
	order, _ := topoOrder(top, r.scopedDeps(top))
	for _, id := range order {
		node := dag.Node(id)
		if stepErr := r.executeNode(runCtx, node, nil); stepErr != nil {
			return r.fail(runCtx, stepErr)
		}
	}

	return r.succeed()
}

// topLevelIDs returns the nodes scheduled directly, excluding for_each
// child nodes.
func (r *dagRun) topLevelIDs() []string {
	children := map[string]bool{}
	for _, node := range r.dag.Nodes {
		for _, child := range node.ItemNodeIDs {
			children[child] = true
		}
	}
	var ids []string
	for _, node := range r.dag.Nodes {
		if !children[node.ID] {
			ids = append(ids, node.ID)
		}
	}
	return ids
}

func (r *dagRun) depsMap() map[string][]string {
	deps := make(map[string][]string, len(r.dag.Nodes))
	for _, node := range r.dag.Nodes {
		deps[node.ID] = node.DependsOn
	}
	return deps
}

// scopedDeps restricts each node's dependency list to the given
// scheduling scope. Cross-scope edges (a for_each child depending on a
// top-level source node) order the scopes, not the nodes within one.
func (r *dagRun) scopedDeps(ids []string) map[string][]string {
	scope := make(map[string]bool, len(ids))
	for _, id := range ids {
		scope[id] = true
	}
	deps := make(map[string][]string, len(ids))
	for _, id := range ids {
		node := r.dag.Node(id)
		var within []string
		for _, dep := range node.DependsOn {
			if scope[dep] {
				within = append(within, dep)
			}
		}
		deps[id] = within
	}
	return deps
}

// gate enforces the planning limits and the policy gate before any node
// executes.
func (r *dagRun) gate() *models.StepError {
	dag := r.dag
	if dag.Version != models.DAGVersion {
		return models.NewStepError(models.ErrDSLValidationFailed, "",
			"unsupported pipeline version %q", dag.Version)
	}

	limits := &dag.Limits
	if limits.MaxNodes <= 0 {
		limits.MaxNodes = models.MaxDAGNodes
	}
	if limits.MaxFanout <= 0 {
		limits.MaxFanout = models.MaxDAGFanout
	}
	if limits.MaxToolCalls <= 0 {
		limits.MaxToolCalls = models.MaxDAGToolCalls
	}
	if limits.PipelineTimeoutSec <= 0 {
		limits.PipelineTimeoutSec = r.exec.cfg.PipelineTimeoutSec
	}
	if limits.PipelineTimeoutSec <= 0 {
		limits.PipelineTimeoutSec = models.MaxPipelineTimeoutSc
	}

	switch {
	case limits.MaxNodes > models.MaxDAGNodes:
		return models.NewStepError(models.ErrDSLValidationFailed, "", "max_nodes above %d", models.MaxDAGNodes)
	case limits.MaxFanout > models.MaxDAGFanout:
		return models.NewStepError(models.ErrDSLValidationFailed, "", "max_fanout above %d", models.MaxDAGFanout)
	case limits.MaxToolCalls > models.MaxDAGToolCalls:
		return models.NewStepError(models.ErrDSLValidationFailed, "", "max_tool_calls above %d", models.MaxDAGToolCalls)
	case limits.PipelineTimeoutSec > models.MaxPipelineTimeoutSc:
		return models.NewStepError(models.ErrPipelineTimeout, "", "pipeline_timeout_sec above %d", models.MaxPipelineTimeoutSc)
	}

	if len(dag.Nodes) == 0 {
		return models.NewStepError(models.ErrDSLValidationFailed, "", "pipeline has no nodes")
	}
	if len(dag.Nodes) > limits.MaxNodes {
		return models.NewStepError(models.ErrDSLValidationFailed, "", "%d nodes above limit %d", len(dag.Nodes), limits.MaxNodes)
	}

	seen := map[string]bool{}
	for _, node := range dag.Nodes {
		if node.ID == "" {
			return models.NewStepError(models.ErrDSLValidationFailed, "", "node without id")
		}
		if seen[node.ID] {
			return models.NewStepError(models.ErrDSLValidationFailed, node.ID, "duplicate node id")
		}
		seen[node.ID] = true

		switch node.Type {
		case models.NodeTypeSkill:
			if _, stepErr := r.resolveRuntimeTool(&node); stepErr != nil {
				return stepErr
			}
		case models.NodeTypeLLMTransform:
			// transform dispatch tolerates unknown names
		case models.NodeTypeForEach:
			if node.SourceRef == "" {
				return models.NewStepError(models.ErrDSLValidationFailed, node.ID, "for_each without source_ref")
			}
			if len(node.ItemNodeIDs) == 0 {
				return models.NewStepError(models.ErrDSLValidationFailed, node.ID, "for_each without item_node_ids")
			}
			for _, child := range node.ItemNodeIDs {
				if dag.Node(child) == nil {
					return models.NewStepError(models.ErrDSLRefNotFound, node.ID, "unknown item node %s", child)
				}
			}
		case models.NodeTypeVerify:
			if len(node.Rules) == 0 {
				return models.NewStepError(models.ErrDSLValidationFailed, node.ID, "verify without rules")
			}
		default:
			return models.NewStepError(models.ErrDSLValidationFailed, node.ID, "unknown node type %q", node.Type)
		}

		for _, dep := range node.DependsOn {
			if dag.Node(dep) == nil {
				return models.NewStepError(models.ErrDSLRefNotFound, node.ID, "unknown dependency %s", dep)
			}
		}
	}

	allIDs := make([]string, 0, len(dag.Nodes))
	for _, node := range dag.Nodes {
		allIDs = append(allIDs, node.ID)
	}
	if _, ok := topoOrder(allIDs, r.depsMap()); !ok {
		return models.NewStepError(models.ErrDSLValidationFailed, "", "dependency cycle")
	}
	return nil
}

// resolveRuntimeTool maps a skill node name to a registered tool: a
// skill contract's first registered runtime tool, or a direct tool name.
// The policy gate fails closed with TOOL_AUTH_ERROR for disabled tools.
func (r *dagRun) resolveRuntimeTool(node *models.DAGNode) (string, *models.StepError) {
	var toolName string
	if r.exec.contracts != nil {
		if contract, err := r.exec.contracts.Get(node.Name); err == nil {
			for _, candidate := range contract.RuntimeTools {
				if r.exec.registry.Has(candidate) {
					toolName = candidate
					break
				}
			}
		}
	}
	if toolName == "" && r.exec.registry.Has(node.Name) {
		toolName = node.Name
	}
	if toolName == "" {
		return "", models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"no runtime tool for skill %q", node.Name)
	}
	if r.run.Profile != nil && !r.run.Profile.Enabled(toolName) {
		return "", models.NewStepError(models.ErrToolAuthError, node.ID,
			"tool %s not enabled for user", toolName)
	}
	return toolName, nil
}

// executeNode runs one node as a single cooperative step. item is the
// current for_each element for child nodes, nil otherwise.
func (r *dagRun) executeNode(ctx context.Context, node *models.DAGNode, item any) *models.StepError {
	if ctx.Err() != nil {
		return models.NewStepError(models.ErrPipelineTimeout, node.ID, "pipeline deadline exceeded")
	}

	started := time.Now()
	var output any
	var stepErr *models.StepError
	attempts := 1

	switch node.Type {
	case models.NodeTypeSkill:
		output, attempts, stepErr = r.executeSkill(ctx, node, item)
	case models.NodeTypeLLMTransform:
		output, stepErr = r.executeTransform(node, item)
	case models.NodeTypeForEach:
		output, stepErr = r.executeForEach(ctx, node)
	case models.NodeTypeVerify:
		stepErr = r.executeVerify(node)
		output = map[string]any{"verified": stepErr == nil}
	}

	step := models.ExecutionStep{
		ID:        node.ID,
		Type:      string(node.Type),
		ToolName:  r.stepToolName(node),
		Status:    models.StepSucceeded,
		Output:    output,
		Attempts:  attempts,
		LatencyMS: time.Since(started).Milliseconds(),
	}
	if stepErr != nil {
		step.Status = models.StepFailed
		step.ErrorCode = string(stepErr.Code)
		step.Output = nil
	}
	r.steps = append(r.steps, step)

	if stepErr != nil {
		return stepErr
	}
	if item == nil {
		r.results[node.ID] = output
	}
	return nil
}

// stepToolName records the resolved runtime tool on skill step traces.
func (r *dagRun) stepToolName(node *models.DAGNode) string {
	if node.Type != models.NodeTypeSkill {
		return ""
	}
	toolName, stepErr := r.resolveRuntimeTool(node)
	if stepErr != nil {
		return node.Name
	}
	return toolName
}

func (r *dagRun) executeSkill(ctx context.Context, node *models.DAGNode, item any) (any, int, *models.StepError) {
	toolName, stepErr := r.resolveRuntimeTool(node)
	if stepErr != nil {
		return nil, 1, stepErr
	}

	input, refErr := ResolveRefs(node.ID, node.Input, r.results, item)
	if refErr != nil {
		return nil, 1, refErr
	}

	if r.toolCalls >= r.dag.Limits.MaxToolCalls {
		return nil, 1, models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"tool call budget %d exhausted", r.dag.Limits.MaxToolCalls)
	}
	r.toolCalls++

	hash := tools.PayloadHash(input)
	if r.idemSuccess[toolName+":"+hash] {
		r.reuseCount++
	}

	callCtx := ctx
	var cancel context.CancelFunc
	if node.TimeoutSec > 0 {
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(node.TimeoutSec)*time.Second)
	} else {
		callCtx, cancel = context.WithTimeout(ctx, r.exec.toolTimeout())
	}
	defer cancel()

	result, attempts := r.exec.retryInvoke(callCtx, tools.Call{
		UserID:   r.run.UserID,
		ToolName: toolName,
		Payload:  input,
		EventID:  eventIDOf(item, r.run.EventID),
	})
	if !result.OK {
		if ctx.Err() != nil {
			return nil, attempts, models.NewStepError(models.ErrPipelineTimeout, node.ID, "%s", result.ErrorCode)
		}
		return nil, attempts, toolStepError(node.ID, result.ErrorCode)
	}

	r.idemSuccess[toolName+":"+hash] = true
	if isMutatingTool(toolName) {
		r.mutations = append(r.mutations, mutationRecord{
			NodeID:   node.ID,
			ToolName: toolName,
			Payload:  input,
			Output:   result.Data,
		})
	}
	return result.Data, attempts, nil
}

func (r *dagRun) executeTransform(node *models.DAGNode, item any) (any, *models.StepError) {
	input, refErr := ResolveRefs(node.ID, node.Input, r.results, item)
	if refErr != nil {
		return nil, refErr
	}

	output, err := transform.Run(node.Name, input)
	if err != nil {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, node.ID, "%v", err)
	}

	if missing := missingRequiredKeys(node.OutputSchema, output); missing != "" {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"transform output missing required key %s", missing)
	}
	return output, nil
}

// executeForEach iterates the source array sequentially; any item
// failure fails the node with that item's error after earlier items'
// mutations stay recorded for compensation.
func (r *dagRun) executeForEach(ctx context.Context, node *models.DAGNode) (any, *models.StepError) {
	source, stepErr := resolveString(node.ID, node.SourceRef, r.results, nil)
	if stepErr != nil {
		return nil, stepErr
	}
	items, ok := source.([]any)
	if !ok {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"source_ref %s is not an array", node.SourceRef)
	}
	if len(items) > r.dag.Limits.MaxFanout {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"fan-out %d above limit %d", len(items), r.dag.Limits.MaxFanout)
	}

	childOrder, ok := topoOrder(node.ItemNodeIDs, r.scopedDeps(node.ItemNodeIDs))
	if !ok {
		return nil, models.NewStepError(models.ErrDSLValidationFailed, node.ID, "item subgraph cycle")
	}

	var itemResults []any
	for idx, item := range items {
		itemOutput := map[string]any{}
		for _, childID := range childOrder {
			child := r.dag.Node(childID)
			savedResults := r.results
			r.results = mergedResults(savedResults, itemOutput)
			childErr := r.executeChildNode(ctx, child, item, idx, itemOutput)
			r.results = savedResults
			if childErr != nil {
				return nil, childErr
			}
		}
		itemResults = append(itemResults, itemOutput)
	}
	if itemResults == nil {
		itemResults = []any{}
	}
	return map[string]any{
		"item_results": itemResults,
		"item_count":   len(itemResults),
	}, nil
}

// executeChildNode runs one node of a for_each body for one item and
// records its output into the item's result map.
func (r *dagRun) executeChildNode(ctx context.Context, node *models.DAGNode, item any, idx int, itemOutput map[string]any) *models.StepError {
	if ctx.Err() != nil {
		return models.NewStepError(models.ErrPipelineTimeout, node.ID, "pipeline deadline exceeded")
	}

	started := time.Now()
	var output any
	var stepErr *models.StepError
	attempts := 1

	switch node.Type {
	case models.NodeTypeSkill:
		output, attempts, stepErr = r.executeSkill(ctx, node, item)
	case models.NodeTypeLLMTransform:
		output, stepErr = r.executeTransform(node, item)
	default:
		stepErr = models.NewStepError(models.ErrDSLValidationFailed, node.ID,
			"node type %q not allowed inside for_each", node.Type)
	}

	itemIdx := idx
	step := models.ExecutionStep{
		ID:        node.ID,
		Type:      string(node.Type),
		ToolName:  r.stepToolName(node),
		Status:    models.StepSucceeded,
		Output:    output,
		Attempts:  attempts,
		ItemIndex: &itemIdx,
		LatencyMS: time.Since(started).Milliseconds(),
	}
	if stepErr != nil {
		step.Status = models.StepFailed
		step.ErrorCode = string(stepErr.Code)
		step.Output = nil
	}
	r.steps = append(r.steps, step)

	if stepErr != nil {
		return stepErr
	}
	itemOutput[node.ID] = output
	return nil
}

// fail runs compensation and renders the failure result.
func (r *dagRun) fail(ctx context.Context, stepErr *models.StepError) *models.AgentExecutionResult {
	compStatus := r.compensate(ctx)

	artifacts := dagArtifacts(r.pipelineRunID, compStatus)
	artifacts["idempotent_success_reuse_count"] = r.reuseCount
	if compStatus == models.CompensationFailed {
		artifacts["pipeline_links_failure_status"] = string(models.LinkManualRequired)
	} else {
		artifacts["pipeline_links_failure_status"] = string(models.LinkFailed)
	}
	for nodeID, output := range r.results {
		artifacts[nodeID] = output
	}

	slog.Warn("pipeline failed",
		"pipeline_run_id", r.pipelineRunID,
		"failed_step", stepErr.Node,
		"error_code", stepErr.Code,
		"compensation_status", compStatus)

	result := stepFailure(stepErr, r.steps, artifacts)
	result.UserMessage = ""
	return result
}

func (r *dagRun) succeed() *models.AgentExecutionResult {
	artifacts := dagArtifacts(r.pipelineRunID, models.CompensationNotRequired)
	artifacts["idempotent_success_reuse_count"] = r.reuseCount
	artifacts["node_run_log"] = runLog(r.steps)
	for nodeID, output := range r.results {
		artifacts[nodeID] = output
	}

	return &models.AgentExecutionResult{
		Success:   true,
		Summary:   "DAG 파이프라인 실행 완료",
		Artifacts: artifacts,
		Steps:     r.steps,
	}
}

func dagArtifacts(pipelineRunID string, comp models.CompensationStatus) map[string]any {
	return map[string]any{
		"router_mode":         "PIPELINE_DAG",
		"pipeline_run_id":     pipelineRunID,
		"compensation_status": string(comp),
	}
}

// runLog serializes the per-node trace for evaluators.
func runLog(steps []models.ExecutionStep) []map[string]any {
	log := make([]map[string]any, 0, len(steps))
	for _, step := range steps {
		entry := map[string]any{
			"id":         step.ID,
			"type":       step.Type,
			"status":     string(step.Status),
			"attempts":   step.Attempts,
			"latency_ms": step.LatencyMS,
		}
		if step.ErrorCode != "" {
			entry["error_code"] = step.ErrorCode
		}
		if step.ItemIndex != nil {
			entry["item_index"] = *step.ItemIndex
		}
		log = append(log, entry)
	}
	return log
}

// missingRequiredKeys checks output_schema.required against the output.
func missingRequiredKeys(schema map[string]any, output map[string]any) string {
	required, ok := schema["required"].([]any)
	if !ok {
		return ""
	}
	for _, raw := range required {
		key, ok := raw.(string)
		if !ok {
			continue
		}
		if _, present := output[key]; !present {
			return key
		}
	}
	return ""
}

// mergedResults overlays item-local outputs on the shared node results
// so $child_id references resolve inside a for_each body.
func mergedResults(base map[string]any, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// eventIDOf extracts an upstream event id from the current for_each
// item for the event_id idempotency policy.
func eventIDOf(item any, fallback string) string {
	if obj, ok := item.(map[string]any); ok {
		if id, ok := obj["event_id"].(string); ok && id != "" {
			return id
		}
		if id, ok := obj["id"].(string); ok && id != "" {
			return id
		}
	}
	return fallback
}
