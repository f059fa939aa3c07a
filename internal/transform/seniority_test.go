package transform

import (
	"testing"

	"github.com/project-tktt/go-jobmarket/internal/registry"
	"github.com/stretchr/testify/assert"
)

func TestDetectSeniority(t *testing.T) {
	classifier := NewSeniorityClassifier(registry.SeniorityLevels())

	tests := []struct {
		title       string
		description string
		expected    string
	}{
		{"senior data analyst", "looking for an experienced professional.", "senior"},
		{"data analyst", "this is an entry-level position.", "junior"},
		{"thực tập sinh data", "opportunity for interns.", "intern"},
		{"lead data engineer", "will manage a team of engineers.", "manager_lead"},
		{"data analyst (fresher)", "open for fresh graduates.", "junior"},
		{"chuyên viên phân tích dữ liệu", "phân tích dữ liệu kinh doanh.", "mid_level"},
		{"director of analytics", "oversee the entire data department.", "director_vp"},
		{"giám đốc dữ liệu", "quản lý toàn bộ mảng dữ liệu.", "director_vp"},
		{"data analyst", "no level mentioned.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Detect(tt.title, tt.description))
		})
	}
}

func TestDetectSeniorityPriorityTieBreak(t *testing.T) {
	classifier := NewSeniorityClassifier(registry.SeniorityLevels())

	// "lead" sits in both the manager_lead and senior keyword sets; the
	// evaluation order must resolve it upward.
	got := classifier.Detect("Senior Lead Data Engineer", "senior engineer leading a team")
	assert.Equal(t, "manager_lead", got)

	// A higher level anywhere in the text beats a lower one in the title.
	got = classifier.Detect("Data Intern", "reporting to the director of analytics")
	assert.Equal(t, "director_vp", got)
}

func TestDetectSeniorityWordBoundary(t *testing.T) {
	classifier := NewSeniorityClassifier(registry.SeniorityLevels())

	// "internal" and "leadership" must not trigger intern or lead
	got := classifier.Detect("data analyst", "internal tools team, leadership principles valued")
	assert.Equal(t, "", got)
}
