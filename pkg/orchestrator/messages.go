package orchestrator

import (
	"fmt"

	"github.com/braid-labs/braid/pkg/models"
)

// User-facing message formatting. This is the only place canonical error
// codes become prose; upstream detail strings never appear verbatim.

// slotPrompt is the user-visible alias and example value of one slot.
type slotPrompt struct {
	alias   string
	example string
}

var slotPrompts = map[string]slotPrompt{
	"data_source_id": {"데이터소스 ID", "12345678-1234-1234-1234-1234567890ab"},
	"page_id":        {"페이지 ID", "12345678-1234-1234-1234-1234567890ab"},
	"parent_page_id": {"상위 페이지 ID", "12345678-1234-1234-1234-1234567890ab"},
	"issue_id":       {"이슈 ID", "ENG-123"},
	"title":          {"제목", "주간 회의록"},
	"content":        {"내용", "오늘 논의한 내용 정리"},
	"team_id":        {"팀 ID", "team-backend"},
}

// PromptForSlot renders the deterministic single-line prompt for one
// missing slot: its alias plus an example value.
func PromptForSlot(slot string) string {
	p, ok := slotPrompts[slot]
	if !ok {
		p = slotPrompt{alias: slot, example: "값"}
	}
	return fmt.Sprintf("%s이(가) 필요합니다. 예: \"%s\" 형식으로 알려주세요.", p.alias, p.example)
}

// leadSentences maps canonical error codes to the first line of the
// user-facing message.
var leadSentences = map[string]string{
	"validation_error":      "입력값 확인이 필요합니다.",
	"clarification_needed":  "요청을 조금 더 구체적으로 알려주세요.",
	"token_missing":         "서비스 인증 정보가 없습니다.",
	"service_not_connected": "연결되지 않은 서비스입니다.",
	"auth_error":            "서비스 인증에 실패했습니다.",
	"rate_limited":          "요청이 일시적으로 제한되었습니다.",
	"not_found":             "대상을 찾을 수 없습니다.",
	"upstream_error":        "외부 서비스 오류가 발생했습니다.",
	"execution_error":       "실행 중 오류가 발생했습니다.",
	"verification_failed":   "요청한 작업이 끝까지 수행되지 않았습니다.",
	"risk_gate_blocked":     "정책상 차단된 작업입니다.",
	"tool_failed":           "도구 호출에 실패했습니다.",
	"TOOL_FAILED":           "도구 호출에 실패했습니다.",
	"TOOL_AUTH_ERROR":       "도구 사용 권한이 없습니다.",
	"TOOL_RATE_LIMITED":     "외부 서비스 호출이 제한되었습니다.",
	"TOOL_TIMEOUT":          "외부 서비스 응답이 지연되었습니다.",
	"PIPELINE_TIMEOUT":      "파이프라인 실행 시간이 초과되었습니다.",
	"DSL_VALIDATION_FAILED": "파이프라인 정의가 올바르지 않습니다.",
	"DSL_REF_NOT_FOUND":     "파이프라인 참조를 찾을 수 없습니다.",
	"LLM_AUTOFILL_FAILED":   "입력값 자동 구성에 실패했습니다.",
	"VERIFY_COUNT_MISMATCH": "실행 결과가 검증 조건을 만족하지 않습니다.",
	"COMPENSATION_FAILED":   "실패 복구가 완료되지 않았습니다.",
}

// actionHints carries the optional actionable second line per code.
var actionHints = map[string]string{
	"token_missing":         "서비스 연결 설정에서 다시 인증해 주세요.",
	"auth_error":            "서비스 연결 설정에서 다시 인증해 주세요.",
	"service_not_connected": "해당 서비스를 먼저 연결해 주세요.",
	"risk_gate_blocked":     "관리자에게 정책 확인을 요청해 주세요.",
	"verification_failed":   "요청을 더 작은 단계로 나눠서 다시 요청해 주세요.",
	"TOOL_AUTH_ERROR":       "관리자에게 도구 사용 권한을 요청해 주세요.",
	"COMPENSATION_FAILED":   "일부 변경이 남아 있을 수 있습니다. 생성된 항목을 직접 확인해 주세요.",
}

// FormatUserMessage renders the user-facing message of an execution
// result. Missing-slot validation failures produce the single-line slot
// prompt; other failures get a lead sentence and, when a hint exists, an
// actionable second line. The retry suffix is appended only when there
// is no second line.
func FormatUserMessage(result *models.AgentExecutionResult) string {
	if result == nil {
		return ""
	}
	if result.Success {
		if result.Summary != "" {
			return result.Summary
		}
		return "요청을 완료했습니다."
	}

	if slot := result.Artifact("missing_slot"); slot != "" {
		return PromptForSlot(slot)
	}

	code := result.Artifact("error_code")
	lead, ok := leadSentences[code]
	if !ok {
		lead = "요청을 처리하지 못했습니다."
	}
	if hint, ok := actionHints[code]; ok {
		return lead + "\n" + hint
	}
	return lead + " 다시 시도해 주세요."
}
