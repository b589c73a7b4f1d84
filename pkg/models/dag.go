package models

import (
	"encoding/json"
	"fmt"
)

// NodeType discriminates pipeline DAG nodes.
type NodeType string

const (
	NodeTypeSkill        NodeType = "skill"
	NodeTypeLLMTransform NodeType = "llm_transform"
	NodeTypeForEach      NodeType = "for_each"
	NodeTypeVerify       NodeType = "verify"
)

// DAGVersion is the only accepted pipeline definition version.
const DAGVersion = "1.0"

// Hard ceilings for pipeline limits. Declared limits above these are
// rejected before any node executes.
const (
	MaxDAGNodes          = 6
	MaxDAGFanout         = 50
	MaxDAGToolCalls      = 200
	MaxPipelineTimeoutSc = 300
)

// DAGLimits bounds a single pipeline run.
type DAGLimits struct {
	MaxNodes           int `json:"max_nodes"`
	MaxFanout          int `json:"max_fanout"`
	MaxToolCalls       int `json:"max_tool_calls"`
	PipelineTimeoutSec int `json:"pipeline_timeout_sec"`
}

// DAGNode is one typed node of a pipeline definition. Type-specific fields:
// for_each uses SourceRef and ItemNodeIDs, verify uses Rules, llm_transform
// uses OutputSchema. Input may contain $node_id.path references, and
// $item.path inside for_each children.
type DAGNode struct {
	ID           string         `json:"id"`
	Type         NodeType       `json:"type"`
	Name         string         `json:"name"`
	DependsOn    []string       `json:"depends_on,omitempty"`
	Input        map[string]any `json:"input,omitempty"`
	TimeoutSec   int            `json:"timeout_sec,omitempty"`
	SourceRef    string         `json:"source_ref,omitempty"`
	ItemNodeIDs  []string       `json:"item_node_ids,omitempty"`
	Rules        []string       `json:"rules,omitempty"`
	OutputSchema map[string]any `json:"output_schema,omitempty"`
}

// PipelineDAG is the typed payload of a PIPELINE_DAG task.
type PipelineDAG struct {
	PipelineID string    `json:"pipeline_id"`
	Version    string    `json:"version"`
	Limits     DAGLimits `json:"limits"`
	Nodes      []DAGNode `json:"nodes"`
}

// Node returns the node with the given id, or nil.
func (d *PipelineDAG) Node(id string) *DAGNode {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// DAGFromPayload decodes a task payload into a typed pipeline definition.
// It only decodes; structural validation is the planning gate's job.
func DAGFromPayload(payload map[string]any) (*PipelineDAG, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pipeline payload: %w", err)
	}
	var dag PipelineDAG
	if err := json.Unmarshal(raw, &dag); err != nil {
		return nil, fmt.Errorf("failed to decode pipeline payload: %w", err)
	}
	return &dag, nil
}

// StepwiseFromPayload decodes a task payload into a typed stepwise payload.
func StepwiseFromPayload(payload map[string]any) (*StepwisePayload, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stepwise payload: %w", err)
	}
	var sp StepwisePayload
	if err := json.Unmarshal(raw, &sp); err != nil {
		return nil, fmt.Errorf("failed to decode stepwise payload: %w", err)
	}
	return &sp, nil
}
