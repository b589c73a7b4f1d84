// Package intent classifies free-form Korean/English user text and
// extracts structured values (identifiers, titles, quantities) from it.
// Detection is a data-driven keyword table plus a compiled set of regex
// patterns, loaded once at package init.
package intent

import "strings"

// Keyword families. Korean tokens are kept intact; matching is a
// case-insensitive substring test.
var (
	createKeywords = []string{
		"생성", "만들", "작성", "추가해", "등록", "새로운", "새 ",
		"create", "make", "write", "add ", "register", "new ",
	}
	readKeywords = []string{
		"조회", "검색", "찾아", "목록", "보여", "확인",
		"read", "search", "find", "list", "show", "lookup", "get ",
	}
	summaryKeywords = []string{
		"요약", "정리해",
		"summarize", "summary", "recap",
	}
	updateKeywords = []string{
		"수정", "변경", "바꿔", "업데이트", "이름을", "제목을", "이동",
		"update", "change", "rename", "modify", "edit", "move",
	}
	deleteKeywords = []string{
		"삭제", "지워", "제거", "아카이브", "보관처리",
		"delete", "remove", "archive", "purge",
	}
	appendKeywords = []string{
		"덧붙", "본문에 추가", "내용 추가", "이어서",
		"append", "add to the page", "add content",
	}
	dataSourceKeywords = []string{
		"데이터소스", "데이터 소스", "데이터베이스",
		"data source", "datasource", "database",
	}
	issueKeywords = []string{
		"이슈", "티켓", "버그",
		"issue", "ticket", "bug",
	}
)

// serviceKeywords maps a service identifier to the tokens that refer to it.
var serviceKeywords = map[string][]string{
	"notion":  {"notion", "노션", "페이지", "문서"},
	"linear":  {"linear", "리니어", "이슈", "티켓"},
	"google":  {"google", "구글", "캘린더", "calendar", "일정", "회의"},
	"spotify": {"spotify", "스포티파이", "플레이리스트", "playlist", "노래", "음악"},
	"slack":   {"slack", "슬랙", "채널", "메시지"},
	"github":  {"github", "깃허브", "repo", "저장소", "pull request", "pr "},
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// IsCreateIntent reports whether the text asks to create something.
func IsCreateIntent(text string) bool { return containsAny(text, createKeywords) }

// IsReadIntent reports whether the text asks to look something up.
func IsReadIntent(text string) bool { return containsAny(text, readKeywords) }

// IsSummaryIntent reports whether the text asks for a summary.
func IsSummaryIntent(text string) bool { return containsAny(text, summaryKeywords) }

// IsUpdateIntent reports whether the text asks to change something.
func IsUpdateIntent(text string) bool { return containsAny(text, updateKeywords) }

// IsDeleteIntent reports whether the text asks to delete or archive.
func IsDeleteIntent(text string) bool { return containsAny(text, deleteKeywords) }

// IsAppendIntent reports whether the text asks to append to an existing body.
func IsAppendIntent(text string) bool { return containsAny(text, appendKeywords) }

// IsDataSourceIntent reports whether the text refers to a data source query.
func IsDataSourceIntent(text string) bool { return containsAny(text, dataSourceKeywords) }

// IsIssueIntent reports whether the text refers to an issue/ticket.
func IsIssueIntent(text string) bool { return containsAny(text, issueKeywords) }

// MentionsService reports whether the text contains any keyword of the
// given service family.
func MentionsService(text, service string) bool {
	return containsAny(text, serviceKeywords[service])
}

// ServiceKeywords returns the static keyword list of a service (copy).
func ServiceKeywords(service string) []string {
	return append([]string(nil), serviceKeywords[service]...)
}

// KnownServices returns the services with a static keyword family.
func KnownServices() []string {
	out := make([]string, 0, len(serviceKeywords))
	for svc := range serviceKeywords {
		out = append(out, svc)
	}
	return out
}
