package transform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/registry"
)

// nextLabel closes a labeled-field window: the capture of one label runs
// until the next known label or end of text. Descriptions are normalized
// to one line before extraction, so there are no newline boundaries.
const nextLabel = `(?:công ty|địa điểm|ngày cập nhật|yêu cầu|quyền lợi|thông tin)\s*:`

var (
	companyRe  = regexp.MustCompile(`công ty:\s*(.*?)\s*(?:` + nextLabel + `|$)`)
	locationRe = regexp.MustCompile(`địa điểm:\s*(.*?)\s*(?:` + nextLabel + `|$)`)
	postedRe   = regexp.MustCompile(`ngày cập nhật:\s*(.*?)\s*(?:` + nextLabel + `|$)`)

	// Numeric date tokens: DD/MM/YYYY, YYYY-MM-DD and the separator and
	// two-digit-year variants of both.
	dateTokenRe = regexp.MustCompile(`\b(?:\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}|\d{4}[/.\-]\d{1,2}[/.\-]\d{1,2})\b`)

	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// labelWindow returns the trimmed text between a label and the next
// label, cut at the first pipe in case the board crams metadata onto
// one line.
func labelWindow(re *regexp.Regexp, clean string) string {
	m := re.FindStringSubmatch(clean)
	if m == nil {
		return ""
	}
	v := m[1]
	if i := strings.IndexByte(v, '|'); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// ExtractCompany pulls the company name from the "công ty:" window of a
// normalized description, falling back to the scraper-provided field.
func ExtractCompany(clean string, raw *domain.RawJob) string {
	if v := labelWindow(companyRe, clean); v != "" {
		return v
	}
	return strings.TrimSpace(raw.Company)
}

// ExtractLocation pulls the location from the "địa điểm:" window and
// canonicalizes it against the province alias table. The scraper field
// is the fallback and is passed through verbatim.
func ExtractLocation(clean string, raw *domain.RawJob) string {
	if v := labelWindow(locationRe, clean); v != "" {
		return registry.CanonicalLocation(v)
	}
	return strings.TrimSpace(raw.Location)
}

// ExtractPostedDate finds a numeric date token in the "ngày cập nhật:"
// window and returns it as YYYY-MM-DD, or "" when the window is absent
// or holds no parseable date.
func ExtractPostedDate(clean string) string {
	window := labelWindow(postedRe, clean)
	if window == "" {
		return ""
	}
	token := dateTokenRe.FindString(window)
	if token == "" {
		return ""
	}
	return parseDateToken(token)
}

// parseDateToken normalizes a matched date token to YYYY-MM-DD. A first
// component above 31 means year-first ordering, otherwise day-first,
// which is how Vietnamese boards write dates.
func parseDateToken(token string) string {
	parts := strings.FieldsFunc(token, func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(parts) != 3 {
		return ""
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return ""
		}
		nums[i] = n
	}

	var year, month, day int
	if nums[0] > 31 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// timestampLayouts covers the timestamp shapes scrapers hand us when
// the board exposes a machine-readable posting time.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizePostingDate reduces a scraper-provided posting date to
// YYYY-MM-DD. Timestamps are truncated to their date, already-ISO dates
// pass through, and anything else (relative phrases like "2 ngày trước")
// is dropped.
func NormalizePostingDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isoDateRe.MatchString(s) {
		return s
	}
	if strings.ContainsAny(s, "Tt ") && strings.Contains(s, "-") {
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return ""
}
