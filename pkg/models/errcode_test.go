package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	retryable := []ErrorCode{ErrToolRateLimited, ErrToolTimeout}
	terminal := []ErrorCode{
		ErrDSLValidationFailed,
		ErrDSLRefNotFound,
		ErrLLMAutofillFailed,
		ErrToolAuthError,
		ErrVerifyCountMismatch,
		ErrCompensationFailed,
		ErrPipelineTimeout,
		ErrToolFailed,
		ErrValidation,
		ErrAuth,
		ErrTokenMissing,
		ErrServiceNotConnected,
		ErrRateLimited,
		ErrNotFound,
		ErrUpstream,
		ErrExecution,
		ErrVerificationFailed,
		ErrClarificationNeeded,
		ErrRiskGateBlocked,
		ErrToolFailedBusiness,
	}

	for _, code := range retryable {
		assert.True(t, IsRetryable(code), "expected %s to be retryable", code)
	}
	for _, code := range terminal {
		assert.False(t, IsRetryable(code), "expected %s to be terminal", code)
	}
}

func TestStepError(t *testing.T) {
	err := NewStepError(ErrToolTimeout, "n2_2", "status=504 after %d attempts", 3)

	assert.Equal(t, "n2_2: TOOL_TIMEOUT", err.Error())
	assert.Equal(t, "status=504 after 3 attempts", err.Detail)

	var stepErr *StepError
	require.True(t, errors.As(error(err), &stepErr))
	assert.Equal(t, ErrToolTimeout, stepErr.Code)
}

func TestStepErrorWithoutNode(t *testing.T) {
	err := &StepError{Code: ErrPipelineTimeout}
	assert.Equal(t, "PIPELINE_TIMEOUT", err.Error())
}
