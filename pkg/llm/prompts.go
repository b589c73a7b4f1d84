package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/braid-labs/braid/pkg/registry"
)

// Prompt builders. Every builder returns a CompletionRequest whose answer
// is expected to be a single JSON object, except SummarizeRequest which
// asks for prose.

const plannerSystem = `You are a workflow planner for SaaS automation.
Answer with exactly one JSON object and nothing else. Never invent tool
names: use only tools from the provided catalog.`

// PlanRequest asks for a full agent plan over the connected services.
// The expected answer shape is:
//
//	{
//	  "requirements": [{"summary": "...", "quantity": 3, "constraints": ["..."]}],
//	  "target_services": ["notion"],
//	  "selected_tools": ["notion_create_page"],
//	  "workflow_steps": ["..."],
//	  "tasks": [{"task_id": "t1", "task_type": "TOOL", "service": "notion",
//	             "tool_name": "notion_create_page", "payload": {...},
//	             "depends_on": [], "output_schema": {"type": "object"}}]
//	}
func PlanRequest(userText string, connected []string, catalog []registry.LLMTool) CompletionRequest {
	var b strings.Builder
	b.WriteString("User request:\n")
	b.WriteString(userText)
	b.WriteString("\n\nConnected services: ")
	b.WriteString(strings.Join(connected, ", "))
	b.WriteString("\n\nTool catalog:\n")
	writeCatalog(&b, catalog)
	b.WriteString(`
Produce a JSON plan:
{
  "requirements": [{"summary": string, "quantity": number?, "constraints": [string]}],
  "target_services": [string],
  "selected_tools": [string],
  "workflow_steps": [string],
  "tasks": [{
    "task_id": string,
    "task_type": "TOOL" | "LLM",
    "service": string,
    "tool_name": string,
    "instruction": string,
    "payload": object,
    "depends_on": [string],
    "output_schema": {"type": "object"}
  }]
}
Rules: target_services must be a subset of the connected services.
Every tool_name must come from the catalog. TOOL task names start with
"<service>_". Use "$<task_id>.<key>" strings in payloads to reference an
earlier task's output.`)

	return CompletionRequest{System: plannerSystem, Prompt: b.String()}
}

// StepwiseRequest asks to map one sentence chunk onto catalog tools.
// Expected answer: {"tasks":[{"task_id","sentence","service","tool_name"}]}.
func StepwiseRequest(chunk string, catalog []registry.LLMTool) CompletionRequest {
	var b strings.Builder
	b.WriteString("Sentence:\n")
	b.WriteString(chunk)
	b.WriteString("\n\nTool catalog:\n")
	writeCatalog(&b, catalog)
	b.WriteString(`
Pick the tools needed to satisfy the sentence, in execution order.
Answer as JSON:
{"tasks": [{"task_id": string, "sentence": string, "service": string, "tool_name": string}]}
Use an empty tasks array when no catalog tool applies.`)

	return CompletionRequest{System: plannerSystem, Prompt: b.String()}
}

// AutofillRequest asks for a tool payload that satisfies the input schema,
// given the step sentence and the outputs of earlier steps.
func AutofillRequest(sentence, toolName string, inputSchema map[string]any, priorOutputs map[string]any) CompletionRequest {
	var b strings.Builder
	b.WriteString("Step instruction:\n")
	b.WriteString(sentence)
	fmt.Fprintf(&b, "\n\nTool: %s\nInput schema:\n%s\n", toolName, compactJSON(inputSchema))
	if len(priorOutputs) > 0 {
		b.WriteString("\nOutputs of earlier steps:\n")
		b.WriteString(compactJSON(priorOutputs))
		b.WriteString("\n")
	}
	b.WriteString(`
Answer with one JSON object: the payload for the tool call. Include every
required schema field. Take concrete values (ids, titles, dates) from the
instruction and the earlier outputs; never invent identifiers.`)

	return CompletionRequest{
		System: "You fill in tool-call payloads. Answer with exactly one JSON object.",
		Prompt: b.String(),
	}
}

// SummarizeRequest asks for a prose summary of dependency outputs for an
// LLM task. sentences of zero means no length constraint.
func SummarizeRequest(instruction string, inputs map[string]any, sentences int) CompletionRequest {
	var b strings.Builder
	b.WriteString("Instruction:\n")
	b.WriteString(instruction)
	b.WriteString("\n\nData:\n")
	b.WriteString(compactJSON(inputs))
	if sentences > 0 {
		fmt.Fprintf(&b, "\n\nAnswer in at most %d sentences.", sentences)
	}
	return CompletionRequest{
		System: "You summarise structured data for a chat user. Answer in the language of the instruction.",
		Prompt: b.String(),
	}
}

// NextActionRequest drives one turn of the autonomous loop. Expected
// answer:
//
//	{"action": "tool_call", "tool_name": "...", "payload": {...}}
//	{"action": "final", "message": "..."}
func NextActionRequest(userText string, transcript []string, catalog []registry.LLMTool) CompletionRequest {
	var b strings.Builder
	b.WriteString("User request:\n")
	b.WriteString(userText)
	b.WriteString("\n\nTool catalog:\n")
	writeCatalog(&b, catalog)
	if len(transcript) > 0 {
		b.WriteString("\nActions so far:\n")
		for _, line := range transcript {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString(`
Decide the next step. Answer as JSON, one of:
{"action": "tool_call", "tool_name": string, "payload": object}
{"action": "final", "message": string}
Finish with "final" once the request is satisfied or cannot proceed.`)

	return CompletionRequest{System: plannerSystem, Prompt: b.String()}
}

func writeCatalog(b *strings.Builder, catalog []registry.LLMTool) {
	for _, tool := range catalog {
		fmt.Fprintf(b, "- %s: %s\n  input_schema: %s\n",
			tool.Name, tool.Description, compactJSON(tool.InputSchema))
	}
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(data)
}
