package models

import "fmt"

// ErrorCode is a canonical error identifier. Pipeline codes are uppercase
// and produced by the DAG/stepwise machinery; business codes are lowercase
// and produced by planning, validation, and the tool invoker.
type ErrorCode string

// Pipeline error codes.
const (
	ErrDSLValidationFailed ErrorCode = "DSL_VALIDATION_FAILED"
	ErrDSLRefNotFound      ErrorCode = "DSL_REF_NOT_FOUND"
	ErrLLMAutofillFailed   ErrorCode = "LLM_AUTOFILL_FAILED"
	ErrToolAuthError       ErrorCode = "TOOL_AUTH_ERROR"
	ErrToolRateLimited     ErrorCode = "TOOL_RATE_LIMITED"
	ErrToolTimeout         ErrorCode = "TOOL_TIMEOUT"
	ErrVerifyCountMismatch ErrorCode = "VERIFY_COUNT_MISMATCH"
	ErrCompensationFailed  ErrorCode = "COMPENSATION_FAILED"
	ErrPipelineTimeout     ErrorCode = "PIPELINE_TIMEOUT"
	ErrToolFailed          ErrorCode = "TOOL_FAILED"
)

// Business error codes.
const (
	ErrValidation          ErrorCode = "validation_error"
	ErrAuth                ErrorCode = "auth_error"
	ErrTokenMissing        ErrorCode = "token_missing"
	ErrServiceNotConnected ErrorCode = "service_not_connected"
	ErrRateLimited         ErrorCode = "rate_limited"
	ErrNotFound            ErrorCode = "not_found"
	ErrUpstream            ErrorCode = "upstream_error"
	ErrExecution           ErrorCode = "execution_error"
	ErrVerificationFailed  ErrorCode = "verification_failed"
	ErrClarificationNeeded ErrorCode = "clarification_needed"
	ErrRiskGateBlocked     ErrorCode = "risk_gate_blocked"
	ErrToolFailedBusiness  ErrorCode = "tool_failed"
)

// IsRetryable reports whether a failed tool call may be retried.
// Exactly TOOL_RATE_LIMITED and TOOL_TIMEOUT qualify; everything else
// is terminal.
func IsRetryable(code ErrorCode) bool {
	return code == ErrToolRateLimited || code == ErrToolTimeout
}

// StepError is a failure value carried out of plan/DAG execution. Node
// identifies the failing node or task; Detail is kept for logging and the
// second-line hint of the user-facing formatter, never shown verbatim.
type StepError struct {
	Code   ErrorCode
	Node   string
	Detail string
}

func (e *StepError) Error() string {
	if e.Node == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Node, e.Code)
}

// NewStepError builds a StepError for a node with an optional detail format.
func NewStepError(code ErrorCode, node, format string, args ...any) *StepError {
	detail := format
	if len(args) > 0 {
		detail = fmt.Sprintf(format, args...)
	}
	return &StepError{Code: code, Node: node, Detail: detail}
}
