package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeniorityLevelsOrderedHighestFirst(t *testing.T) {
	var names []string
	for _, lvl := range SeniorityLevels() {
		names = append(names, lvl.Name)
		assert.NotEmpty(t, lvl.Keywords, "level %s has no keywords", lvl.Name)
	}
	assert.Equal(t, []string{
		SeniorityDirectorVP,
		SeniorityManagerLead,
		SenioritySenior,
		SeniorityMidLevel,
		SeniorityJunior,
		SeniorityIntern,
	}, names)
}

func TestEachSkillBelongsToOneCategory(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range SkillCategories() {
		assert.NotEmpty(t, cat.Label, "category %s has no label", cat.Name)
		for _, skill := range cat.Skills {
			if prev, ok := seen[skill.Name]; ok {
				t.Errorf("skill %s appears in both %s and %s", skill.Name, prev, cat.Name)
			}
			seen[skill.Name] = cat.Name
			assert.NotEmpty(t, skill.Keywords, "skill %s has no keywords", skill.Name)
		}
	}
}

func TestCanonicalLocation(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hochiminh", "hồ chí minh"},
		{"HCM", "hồ chí minh"},
		{"  Saigon  ", "hồ chí minh"},
		{"ha noi", "hà nội"},
		{"Đà Nẵng", "đà nẵng"},
		{"remote", "remote"},
		{"Vũng Tàu", "vũng tàu"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalLocation(tt.input))
		})
	}
}
