package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func event(summary string) map[string]any {
	return map[string]any{
		"id":      "evt_" + summary,
		"summary": summary,
		"start":   "2026-03-02T10:00:00+09:00",
		"end":     "2026-03-02T11:00:00+09:00",
	}
}

func TestFilterMeetingEvents(t *testing.T) {
	t.Run("default keywords", func(t *testing.T) {
		out, err := FilterMeetingEvents(map[string]any{
			"events": []any{
				event("주간 회의"),
				event("Design meeting"),
				event("점심"),
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, out["meeting_count"])
		assert.Equal(t, 3, out["source_count"])
		assert.Len(t, out["meeting_events"], 2)
	})

	t.Run("exclude keywords", func(t *testing.T) {
		out, err := FilterMeetingEvents(map[string]any{
			"events": []any{
				event("주간 회의"),
				event("전사 회의 (취소)"),
			},
			"exclude_keywords": []any{"취소"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, out["meeting_count"])
	})

	t.Run("custom include keywords", func(t *testing.T) {
		out, err := FilterMeetingEvents(map[string]any{
			"events":           []any{event("1:1 sync"), event("주간 회의")},
			"include_keywords": []any{"sync"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, out["meeting_count"])
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		out, err := FilterMeetingEvents(map[string]any{"events": []any{}})
		require.NoError(t, err)
		assert.Equal(t, []any{}, out["meeting_events"])
		assert.Equal(t, 0, out["meeting_count"])
	})

	t.Run("missing events is an error", func(t *testing.T) {
		_, err := FilterMeetingEvents(map[string]any{})
		assert.Error(t, err)
	})
}

func TestFormatDetailedMinutes(t *testing.T) {
	t.Run("renders bounded block list", func(t *testing.T) {
		e := event("스프린트 플래닝")
		e["attendees"] = []any{
			map[string]any{"email": "a@example.com"},
			map[string]any{"email": "b@example.com"},
		}
		e["description"] = "안건 1\n안건 2"

		out, err := FormatDetailedMinutes(map[string]any{"event": e})
		require.NoError(t, err)

		title := out["title"].(string)
		assert.True(t, strings.HasPrefix(title, "회의록: 스프린트 플래닝"))
		assert.LessOrEqual(t, len([]rune(title)), 100)

		blocks := out["blocks"].([]any)
		assert.Equal(t, len(blocks), out["block_count"])
		assert.LessOrEqual(t, len(blocks), 80)
	})

	t.Run("deterministic", func(t *testing.T) {
		payload := map[string]any{"event": event("회의")}
		a, err := FormatDetailedMinutes(payload)
		require.NoError(t, err)
		b, err := FormatDetailedMinutes(payload)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("long description split and capped", func(t *testing.T) {
		e := event("회의")
		e["description"] = strings.Repeat("가", 5000)
		out, err := FormatDetailedMinutes(map[string]any{"event": e})
		require.NoError(t, err)
		for _, raw := range out["blocks"].([]any) {
			block := raw.(map[string]any)
			blockType := block["type"].(string)
			body := block[blockType].(map[string]any)
			text := body["rich_text"].([]any)[0].(map[string]any)["text"].(map[string]any)["content"].(string)
			assert.LessOrEqual(t, len([]rune(text)), 1800)
		}
	})

	t.Run("missing event is an error", func(t *testing.T) {
		_, err := FormatDetailedMinutes(map[string]any{})
		assert.Error(t, err)
	})
}

func TestFormatLinearMeetingIssue(t *testing.T) {
	t.Run("renders title and description", func(t *testing.T) {
		out, err := FormatLinearMeetingIssue(map[string]any{
			"event":           event("주간 회의"),
			"notion_page_url": "https://notion.so/page123",
		})
		require.NoError(t, err)
		assert.Equal(t, "[회의] 주간 회의", out["title"])
		description := out["description"].(string)
		assert.Contains(t, description, "https://notion.so/page123")
		assert.Contains(t, description, "액션 아이템")
		assert.LessOrEqual(t, len([]rune(description)), 7800)
	})

	t.Run("title capped at 200", func(t *testing.T) {
		e := event(strings.Repeat("회", 500))
		out, err := FormatLinearMeetingIssue(map[string]any{"event": e})
		require.NoError(t, err)
		assert.Equal(t, 200, len([]rune(out["title"].(string))))
	})
}

func TestRunDispatch(t *testing.T) {
	t.Run("known transform", func(t *testing.T) {
		out, err := Run("filter_meeting_events", map[string]any{"events": []any{event("회의")}})
		require.NoError(t, err)
		assert.Equal(t, 1, out["meeting_count"])
	})

	t.Run("unknown name passes payload through", func(t *testing.T) {
		payload := map[string]any{"anything": 1}
		out, err := Run("not_a_transform", payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})
}
