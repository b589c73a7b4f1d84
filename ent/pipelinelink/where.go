// Code generated by ent, DO NOT EDIT.

package pipelinelink

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/braid-labs/braid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldUserID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldEventID, v))
}

// NotionPageID applies equality check predicate on the "notion_page_id" field. It's identical to NotionPageIDEQ.
func NotionPageID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldNotionPageID, v))
}

// LinearIssueID applies equality check predicate on the "linear_issue_id" field. It's identical to LinearIssueIDEQ.
func LinearIssueID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldLinearIssueID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldTitle, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldErrorCode, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldRunID, v))
}

// PipelineID applies equality check predicate on the "pipeline_id" field. It's identical to PipelineIDEQ.
func PipelineID(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldPipelineID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldUserID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldEventID, v))
}

// NotionPageIDEQ applies the EQ predicate on the "notion_page_id" field.
func NotionPageIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldNotionPageID, v))
}

// NotionPageIDNEQ applies the NEQ predicate on the "notion_page_id" field.
func NotionPageIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldNotionPageID, v))
}

// NotionPageIDIn applies the In predicate on the "notion_page_id" field.
func NotionPageIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldNotionPageID, vs...))
}

// NotionPageIDNotIn applies the NotIn predicate on the "notion_page_id" field.
func NotionPageIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldNotionPageID, vs...))
}

// NotionPageIDGT applies the GT predicate on the "notion_page_id" field.
func NotionPageIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldNotionPageID, v))
}

// NotionPageIDGTE applies the GTE predicate on the "notion_page_id" field.
func NotionPageIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldNotionPageID, v))
}

// NotionPageIDLT applies the LT predicate on the "notion_page_id" field.
func NotionPageIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldNotionPageID, v))
}

// NotionPageIDLTE applies the LTE predicate on the "notion_page_id" field.
func NotionPageIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldNotionPageID, v))
}

// NotionPageIDContains applies the Contains predicate on the "notion_page_id" field.
func NotionPageIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldNotionPageID, v))
}

// NotionPageIDHasPrefix applies the HasPrefix predicate on the "notion_page_id" field.
func NotionPageIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldNotionPageID, v))
}

// NotionPageIDHasSuffix applies the HasSuffix predicate on the "notion_page_id" field.
func NotionPageIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldNotionPageID, v))
}

// NotionPageIDIsNil applies the IsNil predicate on the "notion_page_id" field.
func NotionPageIDIsNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIsNull(FieldNotionPageID))
}

// NotionPageIDNotNil applies the NotNil predicate on the "notion_page_id" field.
func NotionPageIDNotNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotNull(FieldNotionPageID))
}

// NotionPageIDEqualFold applies the EqualFold predicate on the "notion_page_id" field.
func NotionPageIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldNotionPageID, v))
}

// NotionPageIDContainsFold applies the ContainsFold predicate on the "notion_page_id" field.
func NotionPageIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldNotionPageID, v))
}

// LinearIssueIDEQ applies the EQ predicate on the "linear_issue_id" field.
func LinearIssueIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldLinearIssueID, v))
}

// LinearIssueIDNEQ applies the NEQ predicate on the "linear_issue_id" field.
func LinearIssueIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldLinearIssueID, v))
}

// LinearIssueIDIn applies the In predicate on the "linear_issue_id" field.
func LinearIssueIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldLinearIssueID, vs...))
}

// LinearIssueIDNotIn applies the NotIn predicate on the "linear_issue_id" field.
func LinearIssueIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldLinearIssueID, vs...))
}

// LinearIssueIDGT applies the GT predicate on the "linear_issue_id" field.
func LinearIssueIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldLinearIssueID, v))
}

// LinearIssueIDGTE applies the GTE predicate on the "linear_issue_id" field.
func LinearIssueIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldLinearIssueID, v))
}

// LinearIssueIDLT applies the LT predicate on the "linear_issue_id" field.
func LinearIssueIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldLinearIssueID, v))
}

// LinearIssueIDLTE applies the LTE predicate on the "linear_issue_id" field.
func LinearIssueIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldLinearIssueID, v))
}

// LinearIssueIDContains applies the Contains predicate on the "linear_issue_id" field.
func LinearIssueIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldLinearIssueID, v))
}

// LinearIssueIDHasPrefix applies the HasPrefix predicate on the "linear_issue_id" field.
func LinearIssueIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldLinearIssueID, v))
}

// LinearIssueIDHasSuffix applies the HasSuffix predicate on the "linear_issue_id" field.
func LinearIssueIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldLinearIssueID, v))
}

// LinearIssueIDIsNil applies the IsNil predicate on the "linear_issue_id" field.
func LinearIssueIDIsNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIsNull(FieldLinearIssueID))
}

// LinearIssueIDNotNil applies the NotNil predicate on the "linear_issue_id" field.
func LinearIssueIDNotNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotNull(FieldLinearIssueID))
}

// LinearIssueIDEqualFold applies the EqualFold predicate on the "linear_issue_id" field.
func LinearIssueIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldLinearIssueID, v))
}

// LinearIssueIDContainsFold applies the ContainsFold predicate on the "linear_issue_id" field.
func LinearIssueIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldLinearIssueID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldErrorCode, v))
}

// CompensationStatusEQ applies the EQ predicate on the "compensation_status" field.
func CompensationStatusEQ(v CompensationStatus) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldCompensationStatus, v))
}

// CompensationStatusNEQ applies the NEQ predicate on the "compensation_status" field.
func CompensationStatusNEQ(v CompensationStatus) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldCompensationStatus, v))
}

// CompensationStatusIn applies the In predicate on the "compensation_status" field.
func CompensationStatusIn(vs ...CompensationStatus) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldCompensationStatus, vs...))
}

// CompensationStatusNotIn applies the NotIn predicate on the "compensation_status" field.
func CompensationStatusNotIn(vs ...CompensationStatus) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldCompensationStatus, vs...))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldRunID, v))
}

// PipelineIDEQ applies the EQ predicate on the "pipeline_id" field.
func PipelineIDEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldPipelineID, v))
}

// PipelineIDNEQ applies the NEQ predicate on the "pipeline_id" field.
func PipelineIDNEQ(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldPipelineID, v))
}

// PipelineIDIn applies the In predicate on the "pipeline_id" field.
func PipelineIDIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldPipelineID, vs...))
}

// PipelineIDNotIn applies the NotIn predicate on the "pipeline_id" field.
func PipelineIDNotIn(vs ...string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldPipelineID, vs...))
}

// PipelineIDGT applies the GT predicate on the "pipeline_id" field.
func PipelineIDGT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldPipelineID, v))
}

// PipelineIDGTE applies the GTE predicate on the "pipeline_id" field.
func PipelineIDGTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldPipelineID, v))
}

// PipelineIDLT applies the LT predicate on the "pipeline_id" field.
func PipelineIDLT(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldPipelineID, v))
}

// PipelineIDLTE applies the LTE predicate on the "pipeline_id" field.
func PipelineIDLTE(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldPipelineID, v))
}

// PipelineIDContains applies the Contains predicate on the "pipeline_id" field.
func PipelineIDContains(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContains(FieldPipelineID, v))
}

// PipelineIDHasPrefix applies the HasPrefix predicate on the "pipeline_id" field.
func PipelineIDHasPrefix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasPrefix(FieldPipelineID, v))
}

// PipelineIDHasSuffix applies the HasSuffix predicate on the "pipeline_id" field.
func PipelineIDHasSuffix(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldHasSuffix(FieldPipelineID, v))
}

// PipelineIDIsNil applies the IsNil predicate on the "pipeline_id" field.
func PipelineIDIsNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIsNull(FieldPipelineID))
}

// PipelineIDNotNil applies the NotNil predicate on the "pipeline_id" field.
func PipelineIDNotNil() predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotNull(FieldPipelineID))
}

// PipelineIDEqualFold applies the EqualFold predicate on the "pipeline_id" field.
func PipelineIDEqualFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEqualFold(FieldPipelineID, v))
}

// PipelineIDContainsFold applies the ContainsFold predicate on the "pipeline_id" field.
func PipelineIDContainsFold(v string) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldContainsFold(FieldPipelineID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PipelineLink {
	return predicate.PipelineLink(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineLink) predicate.PipelineLink {
	return predicate.PipelineLink(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineLink) predicate.PipelineLink {
	return predicate.PipelineLink(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineLink) predicate.PipelineLink {
	return predicate.PipelineLink(sql.NotPredicates(p))
}
