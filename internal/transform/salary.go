package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// Salary is an extracted monthly salary range in VND.
type Salary struct {
	Min      int
	Max      int
	Currency string
}

const (
	salaryNum = `(\d+(?:[.,]\d+)*)`
	salarySep = `\s*(?:-|đến|tới)\s*`
	// Unit must not be followed by a letter or digit, so "tr" never
	// matches inside words like "trang". "triệu" goes first so the
	// short form does not steal its match.
	salaryUnit = `(?:triệu|tr|vnđ|vnd)(?:[^\p{L}0-9]|$)`
)

// Patterns are tried in order; the first match wins. Range forms come
// before single-value forms so "10 - 15 triệu" never parses as a lone
// "15 triệu".
var (
	salaryRangeUnitRe  = regexp.MustCompile(salaryNum + salarySep + salaryNum + `\s*` + salaryUnit)
	salaryRangeBareRe  = regexp.MustCompile(salaryNum + salarySep + salaryNum)
	salaryUpToRe       = regexp.MustCompile(`(?:up to|lên đến|lên tới|tối đa)\s*` + salaryNum + `\s*` + salaryUnit)
	salaryFromRe       = regexp.MustCompile(`(?:from|từ)\s*` + salaryNum + `\s*` + salaryUnit)
	salaryDualUnitRe   = regexp.MustCompile(salaryNum + `\s*` + salaryUnit + salarySep + salaryNum + `\s*` + salaryUnit)
	salarySingleUnitRe = regexp.MustCompile(salaryNum + `\s*` + salaryUnit)
)

// maxEstimateFactor pads a single-sided salary into a range. Postings
// that state only a floor usually pay somewhat above it.
const maxEstimateFactor = 1.2

// ExtractSalary pulls a salary range out of the title plus description
// text. It returns nil when no salary pattern matches, which covers
// "thỏa thuận" (negotiable) postings.
func ExtractSalary(text string) *Salary {
	text = strings.ToLower(text)
	if m := salaryRangeUnitRe.FindStringSubmatch(text); m != nil {
		return makeSalary(scaleAmount(m[1], m[0]), scaleAmount(m[2], m[0]))
	}
	if m := salaryRangeBareRe.FindStringSubmatch(text); m != nil {
		return makeSalary(scaleAmount(m[1], ""), scaleAmount(m[2], ""))
	}
	if m := salaryUpToRe.FindStringSubmatch(text); m != nil {
		n := scaleAmount(m[1], m[0])
		return makeSalary(n, n)
	}
	if m := salaryFromRe.FindStringSubmatch(text); m != nil {
		n := scaleAmount(m[1], m[0])
		return makeSalary(n, int(float64(n)*maxEstimateFactor))
	}
	if m := salaryDualUnitRe.FindStringSubmatch(text); m != nil {
		return makeSalary(scaleAmount(m[1], m[0]), scaleAmount(m[2], m[0]))
	}
	if m := salarySingleUnitRe.FindStringSubmatch(text); m != nil {
		n := scaleAmount(m[1], m[0])
		return makeSalary(n, int(float64(n)*maxEstimateFactor))
	}
	return nil
}

func makeSalary(min, max int) *Salary {
	if min <= 0 || max <= 0 {
		return nil
	}
	if max < min {
		min, max = max, min
	}
	return &Salary{Min: min, Max: max, Currency: "vnd"}
}

// scaleAmount parses one captured numeric group and scales it to VND.
// "triệu"/"tr" in the matched text means the figure is in millions; a
// bare number under seven digits is treated as millions too, since
// Vietnamese postings quote "10 - 15" meaning 10 to 15 million.
func scaleAmount(captured, matched string) int {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(captured)
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0
	}
	switch {
	case strings.Contains(matched, "tr"):
		return n * 1_000_000
	case matched == "" && len(cleaned) < 7:
		return n * 1_000_000
	default:
		return n
	}
}
