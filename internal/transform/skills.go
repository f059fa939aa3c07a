package transform

import (
	"regexp"
	"strings"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/registry"
)

// SkillExtractor matches the skill keyword registry against posting
// text. Patterns are compiled once at construction and the extractor is
// safe for concurrent use.
type SkillExtractor struct {
	categories []categoryMatcher
}

type categoryMatcher struct {
	label  string
	skills []skillMatcher
}

type skillMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

// NewSkillExtractor compiles the skill registry into matchers in
// registry order.
func NewSkillExtractor(categories []registry.SkillCategory) *SkillExtractor {
	e := &SkillExtractor{categories: make([]categoryMatcher, 0, len(categories))}
	for _, cat := range categories {
		label := cat.Label
		if label == "" {
			label = registry.LabelOther
		}
		cm := categoryMatcher{label: label, skills: make([]skillMatcher, 0, len(cat.Skills))}
		for _, sk := range cat.Skills {
			sm := skillMatcher{name: sk.Name, patterns: make([]*regexp.Regexp, 0, len(sk.Keywords))}
			for _, kw := range sk.Keywords {
				sm.patterns = append(sm.patterns, keywordPattern(kw))
			}
			cm.skills = append(cm.skills, sm)
		}
		e.categories = append(e.categories, cm)
	}
	return e
}

// Extract scans the lowercased description plus title and returns every
// matched canonical skill once, in registry order. One keyword hit per
// skill is enough; remaining keywords of that skill are skipped.
func (e *SkillExtractor) Extract(description, title string) []domain.Skill {
	text := strings.ToLower(description + " " + title)
	seen := make(map[string]bool)
	var found []domain.Skill
	for _, cat := range e.categories {
		for _, sk := range cat.skills {
			if seen[sk.name] {
				continue
			}
			for _, p := range sk.patterns {
				if p.MatchString(text) {
					seen[sk.name] = true
					found = append(found, domain.Skill{Name: sk.name, Category: cat.label})
					break
				}
			}
		}
	}
	return found
}
