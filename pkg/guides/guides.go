// Package guides loads per-service API-guide markdown used as planning
// context. Files live under a configured directory as {service}.md;
// reads go through a TTL cache so planners never hit the disk per request.
package guides

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/braid-labs/braid/pkg/config"
)

// Loader resolves guide markdown and sections for services.
type Loader struct {
	dir   string
	cache *cache
}

// NewLoader creates a loader over the configured guides directory.
func NewLoader(cfg *config.GuidesConfig) *Loader {
	dir := ""
	ttl := time.Minute
	if cfg != nil {
		dir = cfg.Dir
		if cfg.CacheTTL > 0 {
			ttl = cfg.CacheTTL
		}
	}
	return &Loader{dir: dir, cache: newCache(ttl)}
}

// Guide returns the full markdown for a service. ok is false when the
// guide file does not exist or cannot be read; that is never an error.
func (l *Loader) Guide(service string) (string, bool) {
	if l.dir == "" || service == "" {
		return "", false
	}

	if content, ok := l.cache.get(service); ok {
		return content, true
	}

	data, err := os.ReadFile(filepath.Join(l.dir, service+".md"))
	if err != nil {
		return "", false
	}
	content := string(data)
	l.cache.set(service, content)
	return content, true
}

// Section returns the body of the first markdown section whose header
// contains the given text, case-insensitive. The body runs until the
// next header of the same or higher level.
func (l *Loader) Section(service, header string) (string, bool) {
	content, ok := l.Guide(service)
	if !ok {
		return "", false
	}
	return extractSection(content, header)
}

// PlanningContext returns the "Planning" section of a service guide, or
// the whole guide when no such section exists.
func (l *Loader) PlanningContext(service string) (string, bool) {
	if section, ok := l.Section(service, "planning"); ok {
		return section, true
	}
	content, ok := l.Guide(service)
	return strings.TrimSpace(content), ok
}

func extractSection(content, header string) (string, bool) {
	lines := strings.Split(content, "\n")
	needle := strings.ToLower(header)

	start := -1
	level := 0
	for i, line := range lines {
		l := headerLevel(line)
		if l == 0 {
			continue
		}
		text := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "# ")))
		if strings.Contains(text, needle) {
			start = i + 1
			level = l
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var body []string
	for _, line := range lines[start:] {
		if l := headerLevel(line); l > 0 && l <= level {
			break
		}
		body = append(body, line)
	}
	return strings.TrimSpace(strings.Join(body, "\n")), true
}

// headerLevel reports the markdown header level of a line, 0 for
// non-header lines.
func headerLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(trimmed) || trimmed[level] != ' ' {
		return 0
	}
	return level
}
