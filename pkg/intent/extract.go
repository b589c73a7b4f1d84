package intent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	issueRefRE    = regexp.MustCompile(`\b[A-Z]{2,10}-\d{1,6}\b`)
	quotedTokenRE = regexp.MustCompile(`["'“”‘’]([^"'“”‘’]+)["'“”‘’]`)

	// Labelled title forms, most explicit first.
	titleLabelKoRE = regexp.MustCompile(`제목\s*[:은는]?\s*["'“”]([^"'“”]{1,100})["'“”]`)
	titleLabelEnRE = regexp.MustCompile(`(?i)title\s*(?:is|:)\s*["']?([^"'\n]{1,100})["']?`)

	quotedBeforePageRE = regexp.MustCompile(`["'“”]([^"'“”]{1,100})["'“”]\s*(?:이라는|라는)?\s*페이지`)
	prefixBeforePageRE = regexp.MustCompile(`([^\s"'“”]{2,100}?)\s*페이지(?:를|를요)?\s*(?:새로\s*)?(?:생성|만들|작성)`)

	newTitleKoRE = regexp.MustCompile(`(?:제목을|이름을)\s*["'“”]?([^"'“”]{1,100})["'“”]?\s*(?:으로|로)\s*(?:변경|수정|바꿔)`)
	newTitleEnRE = regexp.MustCompile(`(?i)rename\s+(?:it\s+|to\s+)?["']([^"']{1,100})["']`)

	linearTitleRE  = regexp.MustCompile(`(?:이슈\s*)?제목을\s*["'“”]?([^"'“”]{1,120})["'“”]?\s*(?:으로|로)\s*(?:변경|수정)`)
	// Go's regexp caps repeat counts at 1000, so 1–5000 chars is expressed
	// as a sequence of up-to-1000-char chunks.
	linearDescKoRE = regexp.MustCompile(`설명을\s*["'“”]([^"'“”]{1,1000}[^"'“”]{0,1000}[^"'“”]{0,1000}[^"'“”]{0,1000}[^"'“”]{0,1000})["'“”]\s*(?:으로|로)\s*(?:변경|수정)`)
	linearDescEnRE = regexp.MustCompile(`(?i)description\s*(?:to|:)\s*["']([^"']{1,1000}[^"']{0,1000}[^"']{0,1000}[^"']{0,1000}[^"']{0,1000})["']`)
	priorityRE     = regexp.MustCompile(`(?:우선순위|priority)\s*[:를을]?\s*([0-4])\b`)

	countKoRE = regexp.MustCompile(`(\d{1,4})\s*(?:개|건)`)
	countEnRE = regexp.MustCompile(`(?i)(?:(\d{1,4})\s*items?|first\s*[:]?\s*(\d{1,4}))`)
)

// titleParticleBlocklist rejects bare Korean particles captured as a title.
var titleParticleBlocklist = map[string]bool{
	"새": true, "이": true, "그": true, "저": true, "내": true,
	"새로운": true, "하나": true, "해당": true,
}

// NormalizeWhitespace collapses runs of whitespace to single spaces.
// Every extractor operates on normalised text.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}

// ExtractLinearIssueReference finds a Linear issue key (e.g. ENG-1234) or,
// failing that, the first quoted token. Empty when neither matches.
func ExtractLinearIssueReference(text string) string {
	text = NormalizeWhitespace(text)
	if m := issueRefRE.FindString(text); m != "" {
		return m
	}
	if m := quotedTokenRE.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractNotionPageTitleForCreate pulls the intended page title out of a
// create request. Labelled forms win, then a quoted token before 페이지,
// then the prefix before 페이지-생성. Titles are bounded to 100 chars;
// one-char values and bare particles are rejected.
func ExtractNotionPageTitleForCreate(text string) string {
	text = NormalizeWhitespace(text)

	for _, re := range []*regexp.Regexp{titleLabelKoRE, titleLabelEnRE, quotedBeforePageRE, prefixBeforePageRE} {
		if m := re.FindStringSubmatch(text); m != nil {
			if title := cleanTitle(m[1], 100); title != "" {
				return title
			}
		}
	}
	return ""
}

// ExtractNotionUpdateNewTitle pulls the new title out of a rename request.
func ExtractNotionUpdateNewTitle(text string) string {
	text = NormalizeWhitespace(text)
	for _, re := range []*regexp.Regexp{newTitleKoRE, newTitleEnRE} {
		if m := re.FindStringSubmatch(text); m != nil {
			if title := cleanTitle(m[1], 100); title != "" {
				return title
			}
		}
	}
	return ""
}

// ExtractLinearUpdateTitle pulls the new issue title out of an update
// request, bounded to 120 chars.
func ExtractLinearUpdateTitle(text string) string {
	text = NormalizeWhitespace(text)
	if m := linearTitleRE.FindStringSubmatch(text); m != nil {
		return cleanTitle(m[1], 120)
	}
	return ""
}

// ExtractLinearUpdateDescription pulls the new issue description, bounded
// to 5000 chars.
func ExtractLinearUpdateDescription(text string) string {
	text = NormalizeWhitespace(text)
	for _, re := range []*regexp.Regexp{linearDescKoRE, linearDescEnRE} {
		if m := re.FindStringSubmatch(text); m != nil {
			desc := strings.TrimSpace(m[1])
			if len([]rune(desc)) > 5000 {
				desc = string([]rune(desc)[:5000])
			}
			if desc != "" {
				return desc
			}
		}
	}
	return ""
}

// ExtractLinearUpdatePriority reads a priority digit 0-4, or -1 when absent.
func ExtractLinearUpdatePriority(text string) int {
	text = NormalizeWhitespace(text)
	if m := priorityRE.FindStringSubmatch(text); m != nil {
		if p, err := strconv.Atoi(m[1]); err == nil {
			return p
		}
	}
	return -1
}

// ExtractCountLimit reads a requested item count ("3개", "5 items",
// "first: 10"), defaulting and clamping to [min, max].
func ExtractCountLimit(text string, def, min, max int) int {
	text = NormalizeWhitespace(text)
	n := def
	if m := countKoRE.FindStringSubmatch(text); m != nil {
		n, _ = strconv.Atoi(m[1])
	} else if m := countEnRE.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		n, _ = strconv.Atoi(raw)
	}

	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}

// ExtractSentenceCount reads "N문장" / "N sentences", or 0 when absent.
func ExtractSentenceCount(text string) int {
	text = NormalizeWhitespace(text)
	re := regexp.MustCompile(`(\d{1,2})\s*(?:문장|sentences?)`)
	if m := re.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

func cleanTitle(raw string, maxLen int) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, `"'“”‘’`)
	title = strings.TrimSpace(title)
	if runes := []rune(title); len(runes) > maxLen {
		title = string(runes[:maxLen])
	}
	if len([]rune(title)) <= 1 {
		return ""
	}
	if titleParticleBlocklist[title] {
		return ""
	}
	return title
}
