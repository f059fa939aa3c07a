package transform

import (
	"testing"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtractCompany(t *testing.T) {
	tests := []struct {
		name     string
		clean    string
		raw      domain.RawJob
		expected string
	}{
		{
			name:     "labeled company bounded by next label",
			clean:    "công ty: tech solutions vietnam địa điểm: hà nội",
			expected: "tech solutions vietnam",
		},
		{
			name:     "labeled company at end of text",
			clean:    "mô tả công việc công ty: abc corp",
			expected: "abc corp",
		},
		{
			name:     "pipe cuts the value",
			clean:    "công ty: abc corp | tuyển gấp",
			expected: "abc corp",
		},
		{
			name:     "falls back to raw field verbatim",
			clean:    "no labels here",
			raw:      domain.RawJob{Company: "Tech Corp Vietnam"},
			expected: "Tech Corp Vietnam",
		},
		{
			name:     "no label and no raw field",
			clean:    "no labels here",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractCompany(tt.clean, &tt.raw))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name     string
		clean    string
		raw      domain.RawJob
		expected string
	}{
		{
			name:     "labeled location canonicalized",
			clean:    "địa điểm: hochiminh ngày cập nhật: 15/02/2026",
			expected: "hồ chí minh",
		},
		{
			name:     "unknown alias passes through lowercased",
			clean:    "địa điểm: Vũng Tàu",
			expected: "vũng tàu",
		},
		{
			name:     "falls back to raw field verbatim",
			clean:    "no labels",
			raw:      domain.RawJob{Location: "Ho Chi Minh City"},
			expected: "Ho Chi Minh City",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractLocation(tt.clean, &tt.raw))
		})
	}
}

func TestExtractPostedDate(t *testing.T) {
	tests := []struct {
		name     string
		clean    string
		expected string
	}{
		{"slash day first", "ngày cập nhật: 15/02/2026 yêu cầu: sql", "2026-02-15"},
		{"iso year first", "ngày cập nhật: 2026-02-15", "2026-02-15"},
		{"dot separator", "ngày cập nhật: 5.3.2026", "2026-03-05"},
		{"two digit year promoted", "ngày cập nhật: 15-02-26", "2026-02-15"},
		{"no date token in window", "ngày cập nhật: hôm qua", ""},
		{"label absent", "mô tả công việc", ""},
		{"invalid month", "ngày cập nhật: 15/13/2026", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPostedDate(tt.clean))
		})
	}
}

func TestNormalizePostingDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"iso date passes through", "2026-02-08", "2026-02-08"},
		{"timestamp truncated to date", "2026-02-08T10:30:00Z", "2026-02-08"},
		{"timestamp without zone", "2026-02-08T10:30:00", "2026-02-08"},
		{"relative phrase dropped", "2 ngày trước", ""},
		{"empty", "", ""},
		{"garbage", "hôm nay", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePostingDate(tt.input))
		})
	}
}
