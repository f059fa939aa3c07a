package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *Salary
	}{
		{
			name:     "range with unit in millions",
			text:     "mức lương 10 - 15 triệu",
			expected: &Salary{Min: 10_000_000, Max: 15_000_000, Currency: "vnd"},
		},
		{
			name:     "compact range with short unit",
			text:     "lương 10-15tr",
			expected: &Salary{Min: 10_000_000, Max: 15_000_000, Currency: "vnd"},
		},
		{
			name:     "bare range assumed millions",
			text:     "thu nhập 10 - 15",
			expected: &Salary{Min: 10_000_000, Max: 15_000_000, Currency: "vnd"},
		},
		{
			name:     "absolute range with vnd unit",
			text:     "10.000.000 - 15.000.000 vnđ",
			expected: &Salary{Min: 10_000_000, Max: 15_000_000, Currency: "vnd"},
		},
		{
			name:     "up to caps both bounds",
			text:     "up to 15 triệu",
			expected: &Salary{Min: 15_000_000, Max: 15_000_000, Currency: "vnd"},
		},
		{
			name:     "from estimates the max",
			text:     "from 10 triệu",
			expected: &Salary{Min: 10_000_000, Max: 12_000_000, Currency: "vnd"},
		},
		{
			name:     "single value estimates the max",
			text:     "lương 12 triệu/tháng",
			expected: &Salary{Min: 12_000_000, Max: 14_400_000, Currency: "vnd"},
		},
		{
			name:     "negotiable has no salary",
			text:     "lương thỏa thuận",
			expected: nil,
		},
		{
			name:     "no numeric pattern",
			text:     "competitive salary and benefits",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSalary(tt.text)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractSalaryUnitNeedsBoundary(t *testing.T) {
	// "tr" inside a word must not read as the million unit
	assert.Nil(t, ExtractSalary("xem trang 2 để biết thêm"))
}
