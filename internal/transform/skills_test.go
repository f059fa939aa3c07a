package transform

import (
	"testing"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/registry"
	"github.com/stretchr/testify/assert"
)

func skillNames(skills []domain.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}

func TestExtractSkills(t *testing.T) {
	extractor := NewSkillExtractor(registry.SkillCategories())

	got := extractor.Extract(
		"strong skills in sql, python, and tableau required. power bi is a plus.",
		"Data Analyst",
	)

	assert.ElementsMatch(t, []string{"SQL", "Python", "Tableau", "Power BI"}, skillNames(got))
}

func TestExtractSkillsDeduplicates(t *testing.T) {
	extractor := NewSkillExtractor(registry.SkillCategories())

	// "postgresql" is a keyword of both the SQL language entry and the
	// PostgreSQL database entry; each canonical skill appears once.
	got := extractor.Extract("postgresql and postgres experience", "dba")
	names := skillNames(got)

	assert.Contains(t, names, "SQL")
	assert.Contains(t, names, "PostgreSQL")
	seen := make(map[string]int)
	for _, n := range names {
		seen[n]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "skill %s extracted more than once", name)
	}
}

func TestExtractSkillsWordBoundary(t *testing.T) {
	extractor := NewSkillExtractor(registry.SkillCategories())

	// "r" must not match inside words, "git" must not match "digital"
	got := extractor.Extract("digital marketing for our brand", "marketing executive")
	assert.Empty(t, got)

	got = extractor.Extract("experience with r and spark", "data scientist")
	assert.ElementsMatch(t, []string{"R", "Spark"}, skillNames(got))
}

func TestExtractSkillsCategories(t *testing.T) {
	extractor := NewSkillExtractor(registry.SkillCategories())

	got := extractor.Extract("python, airflow and teamwork are required", "data engineer")

	categories := make(map[string]string)
	for _, s := range got {
		categories[s.Name] = s.Category
	}
	assert.Equal(t, "Language", categories["Python"])
	assert.Equal(t, "Tool", categories["Airflow"])
	assert.Equal(t, "Soft Skill", categories["Teamwork"])
}
