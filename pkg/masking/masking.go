// Package masking redacts credentials and personal data from strings
// before they reach logs and observability tables.
package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns is the data-driven pattern table. Order matters: the
// broad bearer pattern runs before the JSON field patterns so a token
// inside a JSON value is caught either way.
var builtinPatterns = []struct {
	name, pattern, replacement string
}{
	{"bearer_token", `(?i)bearer\s+[A-Za-z0-9\-._~+/]{8,}=*`, "Bearer ***MASKED***"},
	{"access_token_field", `(?i)("(?:access_token|refresh_token|api_key|secret)"\s*:\s*")[^"]+(")`, "${1}***MASKED***${2}"},
	{"token_kv", `(?i)\b(access_token|refresh_token|api_key|secret)=[^\s;,&]+`, "${1}=***MASKED***"},
	{"notion_secret", `\bsecret_[A-Za-z0-9]{20,}\b`, "***MASKED***"},
	{"linear_key", `\blin_api_[A-Za-z0-9]{20,}\b`, "***MASKED***"},
	{"email", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, "***EMAIL***"},
}

// Service applies the compiled pattern set.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the builtin table. Invalid patterns are logged and
// skipped rather than failing startup.
func NewService() *Service {
	s := &Service{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}
	return s
}

// Mask applies every pattern to the input.
func (s *Service) Mask(data string) string {
	for _, p := range s.patterns {
		data = p.Regex.ReplaceAllString(data, p.Replacement)
	}
	return data
}
