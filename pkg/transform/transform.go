// Package transform holds the pure, deterministic payload transforms the
// DAG executor runs for llm_transform nodes. No I/O, no clock, no
// randomness: the same payload always yields the same output.
package transform

import (
	"fmt"
	"strings"
)

// Rendering bounds.
const (
	maxMinuteBlocks   = 80
	maxBlockTextChars = 1800
	maxMinuteTitle    = 100
	maxIssueTitle     = 200
	maxIssueBody      = 7800
)

// defaultMeetingKeywords applies when filter_meeting_events gets no
// include keywords.
var defaultMeetingKeywords = []string{"회의", "meeting"}

// Run dispatches a named transform contract. Unknown names pass the
// payload through unchanged.
func Run(name string, payload map[string]any) (map[string]any, error) {
	switch name {
	case "filter_meeting_events":
		return FilterMeetingEvents(payload)
	case "format_detailed_minutes":
		return FormatDetailedMinutes(payload)
	case "format_linear_meeting_issue":
		return FormatLinearMeetingIssue(payload)
	default:
		return payload, nil
	}
}

// FilterMeetingEvents keeps the calendar events whose summary matches an
// include keyword and no exclude keyword.
func FilterMeetingEvents(payload map[string]any) (map[string]any, error) {
	events, err := eventList(payload, "events")
	if err != nil {
		return nil, err
	}

	include := stringList(payload["include_keywords"])
	if len(include) == 0 {
		include = defaultMeetingKeywords
	}
	exclude := stringList(payload["exclude_keywords"])

	var meetings []any
	for _, raw := range events {
		event, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		summary := strings.ToLower(str(event["summary"]))
		if !matchesAny(summary, include) || matchesAny(summary, exclude) {
			continue
		}
		meetings = append(meetings, event)
	}
	if meetings == nil {
		meetings = []any{}
	}

	return map[string]any{
		"meeting_events": meetings,
		"meeting_count":  len(meetings),
		"source_count":   len(events),
	}, nil
}

// FormatDetailedMinutes renders one calendar event into a bounded Notion
// block list for a meeting-minutes page.
func FormatDetailedMinutes(payload map[string]any) (map[string]any, error) {
	event, ok := payload["event"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("format_detailed_minutes: payload has no event object")
	}

	title := str(event["summary"])
	if title == "" {
		title = "회의록"
	}
	title = truncate("회의록: "+title, maxMinuteTitle)

	var blocks []map[string]any
	addBlock := func(blockType, text string) {
		if len(blocks) >= maxMinuteBlocks || text == "" {
			return
		}
		blocks = append(blocks, notionBlock(blockType, truncate(text, maxBlockTextChars)))
	}

	addBlock("heading_2", "개요")
	if start := str(event["start"]); start != "" {
		addBlock("paragraph", "일시: "+start+timeRangeSuffix(event))
	}
	if location := str(event["location"]); location != "" {
		addBlock("paragraph", "장소: "+location)
	}
	if attendees := stringList(event["attendees"]); len(attendees) > 0 {
		addBlock("paragraph", "참석자: "+strings.Join(attendees, ", "))
	}

	addBlock("heading_2", "안건")
	if description := str(event["description"]); description != "" {
		for _, line := range splitBounded(description, maxBlockTextChars) {
			addBlock("paragraph", line)
		}
	} else {
		addBlock("paragraph", "안건이 등록되지 않았습니다.")
	}

	addBlock("heading_2", "결정 사항")
	addBlock("paragraph", "회의 후 기록해 주세요.")

	return map[string]any{
		"title":       title,
		"blocks":      toAnySlice(blocks),
		"block_count": len(blocks),
	}, nil
}

// FormatLinearMeetingIssue renders one calendar event into a Linear issue
// title and description.
func FormatLinearMeetingIssue(payload map[string]any) (map[string]any, error) {
	event, ok := payload["event"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("format_linear_meeting_issue: payload has no event object")
	}

	summary := str(event["summary"])
	if summary == "" {
		summary = "회의"
	}
	title := truncate("[회의] "+summary, maxIssueTitle)

	var b strings.Builder
	b.WriteString("## 회의 후속 작업\n\n")
	if start := str(event["start"]); start != "" {
		b.WriteString("- 일시: " + start + timeRangeSuffix(event) + "\n")
	}
	if attendees := stringList(event["attendees"]); len(attendees) > 0 {
		b.WriteString("- 참석자: " + strings.Join(attendees, ", ") + "\n")
	}
	if pageURL := str(payload["notion_page_url"]); pageURL != "" {
		b.WriteString("- 회의록: " + pageURL + "\n")
	}
	if description := str(event["description"]); description != "" {
		b.WriteString("\n### 안건\n" + description + "\n")
	}
	b.WriteString("\n### 액션 아이템\n- [ ] 회의 결과 정리\n")

	return map[string]any{
		"title":       title,
		"description": truncate(b.String(), maxIssueBody),
	}, nil
}

func notionBlock(blockType, text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   blockType,
		blockType: map[string]any{
			"rich_text": []any{
				map[string]any{
					"type": "text",
					"text": map[string]any{"content": text},
				},
			},
		},
	}
}

func timeRangeSuffix(event map[string]any) string {
	if end := str(event["end"]); end != "" {
		return " ~ " + end
	}
	return ""
}

func eventList(payload map[string]any, key string) ([]any, error) {
	raw, ok := payload[key]
	if !ok {
		return nil, fmt.Errorf("filter_meeting_events: payload has no %s array", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("filter_meeting_events: %s is not an array", key)
	}
	return list, nil
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case map[string]any:
				// Calendar attendee objects carry an email field.
				if email := str(s["email"]); email != "" {
					out = append(out, email)
				}
			}
		}
		return out
	default:
		return nil
	}
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func splitBounded(text string, max int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for len([]rune(line)) > max {
			runes := []rune(line)
			out = append(out, string(runes[:max]))
			line = string(runes[max:])
		}
		out = append(out, line)
	}
	return out
}

func toAnySlice(blocks []map[string]any) []any {
	out := make([]any, len(blocks))
	for i, b := range blocks {
		out[i] = b
	}
	return out
}
