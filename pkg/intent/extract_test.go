package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntentKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		fn   func(string) bool
		want bool
	}{
		{"korean create", "노션에 페이지를 생성해줘", IsCreateIntent, true},
		{"english create", "Create a new page in Notion", IsCreateIntent, true},
		{"not create", "노션 페이지 조회해줘", IsCreateIntent, false},
		{"korean read", "리니어 이슈 목록 보여줘", IsReadIntent, true},
		{"korean summary", "3문장으로 요약해줘", IsSummaryIntent, true},
		{"korean update", "제목을 바꿔줘", IsUpdateIntent, true},
		{"korean delete", "페이지를 아카이브해줘", IsDeleteIntent, true},
		{"korean append", "본문에 추가해줘", IsAppendIntent, true},
		{"data source", "노션 데이터소스 조회해줘", IsDataSourceIntent, true},
		{"issue", "linear의 새로운 이슈로 등록하세요", IsIssueIntent, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.text))
		})
	}
}

func TestMentionsService(t *testing.T) {
	assert.True(t, MentionsService("노션에 회의록 저장해줘", "notion"))
	assert.True(t, MentionsService("구글 캘린더에서 오늘 일정", "google"))
	assert.False(t, MentionsService("노션에 회의록 저장해줘", "spotify"))
}

func TestExtractLinearIssueReference(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"issue key", "ENG-1234 이슈의 설명을 바꿔줘", "ENG-1234"},
		{"issue key inside sentence", "update issue ABC-42 priority to 2", "ABC-42"},
		{"quoted fallback", `"구글로그인 구현" 이슈를 찾아줘`, "구글로그인 구현"},
		{"nothing", "이슈를 찾아줘", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinearIssueReference(tt.text))
		})
	}
}

func TestExtractNotionPageTitleForCreate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled korean", `제목: "주간 회의록" 으로 페이지 만들어줘`, "주간 회의록"},
		{"labelled english", `create a page, title is "Weekly Notes"`, "Weekly Notes"},
		{"quoted before page", `"스프린트 회고"라는 페이지를 생성해줘`, "스프린트 회고"},
		{"prefix before create", "회의록 페이지 생성해줘", "회의록"},
		{"particle rejected", "새 페이지 생성해줘", ""},
		{"single char rejected", `"a" 페이지 생성`, ""},
		{"no match", "노션에서 뭔가 해줘", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNotionPageTitleForCreate(tt.text))
		})
	}
}

func TestExtractUpdateFields(t *testing.T) {
	t.Run("notion new title", func(t *testing.T) {
		assert.Equal(t, "분기 보고서", ExtractNotionUpdateNewTitle(`제목을 "분기 보고서"로 변경해줘`))
		assert.Equal(t, "Q3 Report", ExtractNotionUpdateNewTitle(`rename it to "Q3 Report"`))
		assert.Equal(t, "", ExtractNotionUpdateNewTitle("페이지 내용 보여줘"))
	})

	t.Run("linear title", func(t *testing.T) {
		assert.Equal(t, "로그인 버그 수정", ExtractLinearUpdateTitle(`이슈 제목을 "로그인 버그 수정"으로 변경해줘`))
	})

	t.Run("linear description", func(t *testing.T) {
		assert.Equal(t, "재현 경로 추가", ExtractLinearUpdateDescription(`설명을 "재현 경로 추가"로 수정해줘`))
		assert.Equal(t, "repro steps", ExtractLinearUpdateDescription(`set description to "repro steps"`))
	})

	t.Run("priority digit", func(t *testing.T) {
		assert.Equal(t, 2, ExtractLinearUpdatePriority("우선순위를 2로 바꿔줘"))
		assert.Equal(t, 0, ExtractLinearUpdatePriority("set priority: 0"))
		assert.Equal(t, -1, ExtractLinearUpdatePriority("우선순위를 9로"))
		assert.Equal(t, -1, ExtractLinearUpdatePriority("그냥 바꿔줘"))
	})
}

func TestExtractCountLimit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"korean counter", "이슈 3개 보여줘", 3},
		{"korean documents", "문서 5건 조회", 5},
		{"english items", "show 7 items", 7},
		{"first n", "first: 4", 4},
		{"default", "이슈 보여줘", 10},
		{"clamped high", "이슈 500개 보여줘", 50},
		{"clamped low", "이슈 0개 보여줘", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCountLimit(tt.text, 10, 1, 50))
		})
	}
}

func TestExtractSentenceCount(t *testing.T) {
	assert.Equal(t, 3, ExtractSentenceCount("3문장으로 요약해줘"))
	assert.Equal(t, 5, ExtractSentenceCount("summarize in 5 sentences"))
	assert.Equal(t, 0, ExtractSentenceCount("요약해줘"))
}
