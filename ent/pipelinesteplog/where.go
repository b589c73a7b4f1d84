// Code generated by ent, DO NOT EDIT.

package pipelinesteplog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldRequestID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldRunID, v))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldPipelineID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldNodeID, v))
}

// NodeType applies equality check predicate on the "node_type" field. It's identical to NodeTypeEQ.
func NodeType(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldNodeType, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldToolName, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldAttempt, v))
}

// ItemIndex applies equality check predicate on the "item_index" field. It's identical to ItemIndexEQ.
func ItemIndex(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldItemIndex, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldLatencyMs, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldErrorCode, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldRequestID, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldRunID, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDIsNil applies the IsNil predicate on the "pipeline_id" field.
func PipelineIDIsNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIsNull(FieldPipelineID))
}

// PipelineIDNotNil applies the NotNil predicate on the "pipeline_id" field.
func PipelineIDNotNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotNull(FieldPipelineID))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldPipelineID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldNodeID, v))
}

// NodeTypeEQ applies the EQ predicate on the "node_type" field.
func NodeTypeEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldNodeType, v))
}

// NodeTypeNEQ applies the NEQ predicate on the "node_type" field.
func NodeTypeNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldNodeType, v))
}

// NodeTypeIn applies the In predicate on the "node_type" field.
func NodeTypeIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldNodeType, vs...))
}

// NodeTypeNotIn applies the NotIn predicate on the "node_type" field.
func NodeTypeNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldNodeType, vs...))
}

// NodeTypeGT applies the GT predicate on the "node_type" field.
func NodeTypeGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldNodeType, v))
}

// NodeTypeGTE applies the GTE predicate on the "node_type" field.
func NodeTypeGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldNodeType, v))
}

// NodeTypeLT applies the LT predicate on the "node_type" field.
func NodeTypeLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldNodeType, v))
}

// NodeTypeLTE applies the LTE predicate on the "node_type" field.
func NodeTypeLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldNodeType, v))
}

// NodeTypeContains applies the Contains predicate on the "node_type" field.
func NodeTypeContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldNodeType, v))
}

// NodeTypeHasPrefix applies the HasPrefix predicate on the "node_type" field.
func NodeTypeHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldNodeType, v))
}

// NodeTypeHasSuffix applies the HasSuffix predicate on the "node_type" field.
func NodeTypeHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldNodeType, v))
}

// NodeTypeEqualFold applies the EqualFold predicate on the "node_type" field.
func NodeTypeEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldNodeType, v))
}

// NodeTypeContainsFold applies the ContainsFold predicate on the "node_type" field.
func NodeTypeContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldNodeType, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameIsNil applies the IsNil predicate on the "tool_name" field.
func ToolNameIsNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIsNull(FieldToolName))
}

// ToolNameNotNil applies the NotNil predicate on the "tool_name" field.
func ToolNameNotNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotNull(FieldToolName))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldToolName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldAttempt, v))
}

// ItemIndexEQ applies the EQ predicate on the "item_index" field.
func ItemIndexEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldItemIndex, v))
}

// ItemIndexNEQ applies the NEQ predicate on the "item_index" field.
func ItemIndexNEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldItemIndex, v))
}

// ItemIndexIn applies the In predicate on the "item_index" field.
func ItemIndexIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldItemIndex, vs...))
}

// ItemIndexNotIn applies the NotIn predicate on the "item_index" field.
func ItemIndexNotIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldItemIndex, vs...))
}

// ItemIndexGT applies the GT predicate on the "item_index" field.
func ItemIndexGT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldItemIndex, v))
}

// ItemIndexGTE applies the GTE predicate on the "item_index" field.
func ItemIndexGTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldItemIndex, v))
}

// ItemIndexLT applies the LT predicate on the "item_index" field.
func ItemIndexLT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldItemIndex, v))
}

// ItemIndexLTE applies the LTE predicate on the "item_index" field.
func ItemIndexLTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldItemIndex, v))
}

// ItemIndexIsNil applies the IsNil predicate on the "item_index" field.
func ItemIndexIsNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIsNull(FieldItemIndex))
}

// ItemIndexNotNil applies the NotNil predicate on the "item_index" field.
func ItemIndexNotNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotNull(FieldItemIndex))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldLatencyMs, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldErrorCode, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStepLog) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStepLog) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStepLog) predicate.PipelineStepLog {
	return predicate.PipelineStepLog(sql.NotPredicates(p))
}
