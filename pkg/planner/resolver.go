// Package planner turns user text into an AgentPlan: a deterministic
// rule planner, an LLM-assisted planner with rule fallback, a stepwise
// planner emitting STEPWISE_PIPELINE tasks, and the plan contract
// validator every plan must pass before execution.
package planner

import (
	"sort"
	"strings"

	"github.com/braid-labs/braid/pkg/intent"
	"github.com/braid-labs/braid/pkg/registry"
)

// excluded tokens when synthesizing service keywords from tool names.
var keywordStopwords = map[string]bool{
	"tool": true,
	"api":  true,
	"call": true,
}

// ResolveServices ranks candidate services for the user text. Connected
// services contribute synthesized keywords from their tools and get a +1
// score; the result is restricted to connected services when any are
// connected, and defaults to the single connected service when nothing
// matched.
func ResolveServices(reg *registry.Registry, text string, connected []string, maxServices int) []string {
	if maxServices <= 0 {
		maxServices = 3
	}
	lower := strings.ToLower(intent.NormalizeWhitespace(text))

	keywords := make(map[string][]string)
	for _, svc := range intent.KnownServices() {
		keywords[svc] = intent.ServiceKeywords(svc)
	}
	for _, svc := range connected {
		svc = strings.ToLower(svc)
		keywords[svc] = append(keywords[svc], synthesizeKeywords(reg, svc)...)
	}

	connectedSet := make(map[string]bool, len(connected))
	for _, svc := range connected {
		connectedSet[strings.ToLower(svc)] = true
	}

	type scored struct {
		service string
		score   int
	}
	var ranked []scored
	for svc, kws := range keywords {
		score := 0
		seen := map[string]bool{}
		for _, kw := range kws {
			kw = strings.ToLower(kw)
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > 0 && connectedSet[svc] {
			score++
		}
		if score > 0 {
			ranked = append(ranked, scored{service: svc, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].service < ranked[j].service
	})

	var result []string
	for _, s := range ranked {
		if len(connectedSet) > 0 && !connectedSet[s.service] {
			continue
		}
		result = append(result, s.service)
		if len(result) == maxServices {
			break
		}
	}

	if len(result) == 0 && len(connected) == 1 {
		result = []string{strings.ToLower(connected[0])}
	}
	return result
}

// synthesizeKeywords derives extra keywords for a service from its
// identifier and its tools' names and descriptions. Tokens shorter than
// three characters and generic words are dropped.
func synthesizeKeywords(reg *registry.Registry, service string) []string {
	keywords := []string{service}
	defs, err := reg.ListTools(service)
	if err != nil {
		return keywords
	}
	for _, def := range defs {
		for _, token := range tokenize(def.ToolName + " " + def.Description) {
			if len(token) < 3 || keywordStopwords[token] {
				continue
			}
			keywords = append(keywords, token)
		}
	}
	return keywords
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return false
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul syllables
			return false
		default:
			return true
		}
	})
}
