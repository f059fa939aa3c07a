package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and collapses whitespace",
			input:    "Senior   Data\t\tAnalyst\n\nNeeded",
			expected: "senior data analyst needed",
		},
		{
			name:     "strips html tags keeping contents",
			input:    "<div><b>Python</b> and <i>SQL</i> required</div>",
			expected: "python and sql required",
		},
		{
			name:     "removes board boilerplate phrases",
			input:    "mô tả công việc chi tiết nộp đơn ngay",
			expected: "mô tả công việc ngay",
		},
		{
			name:     "replaces non-breaking and zero-width spaces",
			input:    "data analyst​ position",
			expected: "data analyst position",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \t\n  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeTextDropsOversizedTokens(t *testing.T) {
	garbage := strings.Repeat("x", 150)
	got := NormalizeText("apply at " + garbage + " today")
	assert.Equal(t, "apply at today", got)
}
