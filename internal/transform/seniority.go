package transform

import (
	"regexp"
	"strings"

	"github.com/project-tktt/go-jobmarket/internal/registry"
)

// keywordPattern compiles a whole-word matcher for one keyword. The
// stdlib \b boundary is ASCII-only and misfires on Vietnamese letters,
// so the boundary is spelled out with Unicode classes.
func keywordPattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?:\A|[^\p{L}\p{N}])` + regexp.QuoteMeta(kw) + `(?:[^\p{L}\p{N}]|\z)`)
}

// SeniorityClassifier detects a posting's seniority level by
// priority-ordered keyword matching. Patterns are compiled once at
// construction and the classifier is safe for concurrent use.
type SeniorityClassifier struct {
	levels []seniorityMatcher
}

type seniorityMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// NewSeniorityClassifier compiles the keyword registry into matchers,
// preserving its priority order.
func NewSeniorityClassifier(levels []registry.SeniorityLevel) *SeniorityClassifier {
	c := &SeniorityClassifier{levels: make([]seniorityMatcher, 0, len(levels))}
	for _, lvl := range levels {
		m := seniorityMatcher{name: lvl.Name, patterns: make([]*regexp.Regexp, 0, len(lvl.Keywords))}
		for _, kw := range lvl.Keywords {
			m.patterns = append(m.patterns, keywordPattern(kw))
		}
		c.levels = append(c.levels, m)
	}
	return c
}

// Detect returns the canonical seniority level for a posting, or ""
// when no keyword matches. Levels are evaluated highest first, so a
// title carrying both "lead" and "senior" classifies as manager_lead.
func (c *SeniorityClassifier) Detect(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, lvl := range c.levels {
		for _, p := range lvl.patterns {
			if p.MatchString(text) {
				return lvl.name
			}
		}
	}
	return ""
}
