// Code generated by ent, DO NOT EDIT.

package commandlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldUserID, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldCommand, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldStatus, v))
}

// FinalStatus applies equality check predicate on the "final_status" field. It's identical to FinalStatusEQ.
func FinalStatus(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldFinalStatus, v))
}

// PlanSource applies equality check predicate on the "plan_source" field. It's identical to PlanSourceEQ.
func PlanSource(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldPlanSource, v))
}

// ExecutionMode applies equality check predicate on the "execution_mode" field. It's identical to ExecutionModeEQ.
func ExecutionMode(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldExecutionMode, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldErrorCode, v))
}

// VerificationReason applies equality check predicate on the "verification_reason" field. It's identical to VerificationReasonEQ.
func VerificationReason(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldVerificationReason, v))
}

// AutonomousFallbackReason applies equality check predicate on the "autonomous_fallback_reason" field. It's identical to AutonomousFallbackReasonEQ.
func AutonomousFallbackReason(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldAutonomousFallbackReason, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldDetail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldUserID, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldCommand, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldStatus, v))
}

// FinalStatusEQ applies the EQ predicate on the "final_status" field.
func FinalStatusEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldFinalStatus, v))
}

// FinalStatusNEQ applies the NEQ predicate on the "final_status" field.
func FinalStatusNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldFinalStatus, v))
}

// FinalStatusIn applies the In predicate on the "final_status" field.
func FinalStatusIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldFinalStatus, vs...))
}

// FinalStatusNotIn applies the NotIn predicate on the "final_status" field.
func FinalStatusNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldFinalStatus, vs...))
}

// FinalStatusGT applies the GT predicate on the "final_status" field.
func FinalStatusGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldFinalStatus, v))
}

// FinalStatusGTE applies the GTE predicate on the "final_status" field.
func FinalStatusGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldFinalStatus, v))
}

// FinalStatusLT applies the LT predicate on the "final_status" field.
func FinalStatusLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldFinalStatus, v))
}

// FinalStatusLTE applies the LTE predicate on the "final_status" field.
func FinalStatusLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldFinalStatus, v))
}

// FinalStatusContains applies the Contains predicate on the "final_status" field.
func FinalStatusContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldFinalStatus, v))
}

// FinalStatusHasPrefix applies the HasPrefix predicate on the "final_status" field.
func FinalStatusHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldFinalStatus, v))
}

// FinalStatusHasSuffix applies the HasSuffix predicate on the "final_status" field.
func FinalStatusHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldFinalStatus, v))
}

// FinalStatusIsNil applies the IsNil predicate on the "final_status" field.
func FinalStatusIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldFinalStatus))
}

// FinalStatusNotNil applies the NotNil predicate on the "final_status" field.
func FinalStatusNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldFinalStatus))
}

// FinalStatusEqualFold applies the EqualFold predicate on the "final_status" field.
func FinalStatusEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldFinalStatus, v))
}

// FinalStatusContainsFold applies the ContainsFold predicate on the "final_status" field.
func FinalStatusContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldFinalStatus, v))
}

// PlanSourceEQ applies the EQ predicate on the "plan_source" field.
func PlanSourceEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldPlanSource, v))
}

// PlanSourceNEQ applies the NEQ predicate on the "plan_source" field.
func PlanSourceNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldPlanSource, v))
}

// PlanSourceIn applies the In predicate on the "plan_source" field.
func PlanSourceIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldPlanSource, vs...))
}

// PlanSourceNotIn applies the NotIn predicate on the "plan_source" field.
func PlanSourceNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldPlanSource, vs...))
}

// PlanSourceGT applies the GT predicate on the "plan_source" field.
func PlanSourceGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldPlanSource, v))
}

// PlanSourceGTE applies the GTE predicate on the "plan_source" field.
func PlanSourceGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldPlanSource, v))
}

// PlanSourceLT applies the LT predicate on the "plan_source" field.
func PlanSourceLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldPlanSource, v))
}

// PlanSourceLTE applies the LTE predicate on the "plan_source" field.
func PlanSourceLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldPlanSource, v))
}

// PlanSourceContains applies the Contains predicate on the "plan_source" field.
func PlanSourceContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldPlanSource, v))
}

// PlanSourceHasPrefix applies the HasPrefix predicate on the "plan_source" field.
func PlanSourceHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldPlanSource, v))
}

// PlanSourceHasSuffix applies the HasSuffix predicate on the "plan_source" field.
func PlanSourceHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldPlanSource, v))
}

// PlanSourceIsNil applies the IsNil predicate on the "plan_source" field.
func PlanSourceIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldPlanSource))
}

// PlanSourceNotNil applies the NotNil predicate on the "plan_source" field.
func PlanSourceNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldPlanSource))
}

// PlanSourceEqualFold applies the EqualFold predicate on the "plan_source" field.
func PlanSourceEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldPlanSource, v))
}

// PlanSourceContainsFold applies the ContainsFold predicate on the "plan_source" field.
func PlanSourceContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldPlanSource, v))
}

// ExecutionModeEQ applies the EQ predicate on the "execution_mode" field.
func ExecutionModeEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldExecutionMode, v))
}

// ExecutionModeNEQ applies the NEQ predicate on the "execution_mode" field.
func ExecutionModeNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldExecutionMode, v))
}

// ExecutionModeIn applies the In predicate on the "execution_mode" field.
func ExecutionModeIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldExecutionMode, vs...))
}

// ExecutionModeNotIn applies the NotIn predicate on the "execution_mode" field.
func ExecutionModeNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldExecutionMode, vs...))
}

// ExecutionModeGT applies the GT predicate on the "execution_mode" field.
func ExecutionModeGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldExecutionMode, v))
}

// ExecutionModeGTE applies the GTE predicate on the "execution_mode" field.
func ExecutionModeGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldExecutionMode, v))
}

// ExecutionModeLT applies the LT predicate on the "execution_mode" field.
func ExecutionModeLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldExecutionMode, v))
}

// ExecutionModeLTE applies the LTE predicate on the "execution_mode" field.
func ExecutionModeLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldExecutionMode, v))
}

// ExecutionModeContains applies the Contains predicate on the "execution_mode" field.
func ExecutionModeContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldExecutionMode, v))
}

// ExecutionModeHasPrefix applies the HasPrefix predicate on the "execution_mode" field.
func ExecutionModeHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldExecutionMode, v))
}

// ExecutionModeHasSuffix applies the HasSuffix predicate on the "execution_mode" field.
func ExecutionModeHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldExecutionMode, v))
}

// ExecutionModeIsNil applies the IsNil predicate on the "execution_mode" field.
func ExecutionModeIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldExecutionMode))
}

// ExecutionModeNotNil applies the NotNil predicate on the "execution_mode" field.
func ExecutionModeNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldExecutionMode))
}

// ExecutionModeEqualFold applies the EqualFold predicate on the "execution_mode" field.
func ExecutionModeEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldExecutionMode, v))
}

// ExecutionModeContainsFold applies the ContainsFold predicate on the "execution_mode" field.
func ExecutionModeContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldExecutionMode, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldErrorCode, v))
}

// VerificationReasonEQ applies the EQ predicate on the "verification_reason" field.
func VerificationReasonEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldVerificationReason, v))
}

// VerificationReasonNEQ applies the NEQ predicate on the "verification_reason" field.
func VerificationReasonNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldVerificationReason, v))
}

// VerificationReasonIn applies the In predicate on the "verification_reason" field.
func VerificationReasonIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldVerificationReason, vs...))
}

// VerificationReasonNotIn applies the NotIn predicate on the "verification_reason" field.
func VerificationReasonNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldVerificationReason, vs...))
}

// VerificationReasonGT applies the GT predicate on the "verification_reason" field.
func VerificationReasonGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldVerificationReason, v))
}

// VerificationReasonGTE applies the GTE predicate on the "verification_reason" field.
func VerificationReasonGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldVerificationReason, v))
}

// VerificationReasonLT applies the LT predicate on the "verification_reason" field.
func VerificationReasonLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldVerificationReason, v))
}

// VerificationReasonLTE applies the LTE predicate on the "verification_reason" field.
func VerificationReasonLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldVerificationReason, v))
}

// VerificationReasonContains applies the Contains predicate on the "verification_reason" field.
func VerificationReasonContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldVerificationReason, v))
}

// VerificationReasonHasPrefix applies the HasPrefix predicate on the "verification_reason" field.
func VerificationReasonHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldVerificationReason, v))
}

// VerificationReasonHasSuffix applies the HasSuffix predicate on the "verification_reason" field.
func VerificationReasonHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldVerificationReason, v))
}

// VerificationReasonIsNil applies the IsNil predicate on the "verification_reason" field.
func VerificationReasonIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldVerificationReason))
}

// VerificationReasonNotNil applies the NotNil predicate on the "verification_reason" field.
func VerificationReasonNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldVerificationReason))
}

// VerificationReasonEqualFold applies the EqualFold predicate on the "verification_reason" field.
func VerificationReasonEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldVerificationReason, v))
}

// VerificationReasonContainsFold applies the ContainsFold predicate on the "verification_reason" field.
func VerificationReasonContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldVerificationReason, v))
}

// AutonomousFallbackReasonEQ applies the EQ predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonNEQ applies the NEQ predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonIn applies the In predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldAutonomousFallbackReason, vs...))
}

// AutonomousFallbackReasonNotIn applies the NotIn predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldAutonomousFallbackReason, vs...))
}

// AutonomousFallbackReasonGT applies the GT predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonGTE applies the GTE predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonLT applies the LT predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonLTE applies the LTE predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonContains applies the Contains predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonHasPrefix applies the HasPrefix predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonHasSuffix applies the HasSuffix predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonIsNil applies the IsNil predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldAutonomousFallbackReason))
}

// AutonomousFallbackReasonNotNil applies the NotNil predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldAutonomousFallbackReason))
}

// AutonomousFallbackReasonEqualFold applies the EqualFold predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldAutonomousFallbackReason, v))
}

// AutonomousFallbackReasonContainsFold applies the ContainsFold predicate on the "autonomous_fallback_reason" field.
func AutonomousFallbackReasonContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldAutonomousFallbackReason, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailIsNil applies the IsNil predicate on the "detail" field.
func DetailIsNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIsNull(FieldDetail))
}

// DetailNotNil applies the NotNil predicate on the "detail" field.
func DetailNotNil() predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotNull(FieldDetail))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldContainsFold(FieldDetail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CommandLog {
	return predicate.CommandLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CommandLog) predicate.CommandLog {
	return predicate.CommandLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CommandLog) predicate.CommandLog {
	return predicate.CommandLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CommandLog) predicate.CommandLog {
	return predicate.CommandLog(sql.NotPredicates(p))
}
