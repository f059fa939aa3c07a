package transform

import "fmt"

// FilterStatistics accumulates counters across a transformer's
// lifetime. Counters advance sequentially as records complete; a
// transformer must not be shared between concurrent batch calls.
type FilterStatistics struct {
	TotalJobs          int
	FilteredRelevant   int
	FilteredIrrelevant int
	ExtractionErrors   int
	MissingCompany     int
	MissingLocation    int
	MissingPostedDate  int
}

// NewFilterStatistics returns zeroed counters.
func NewFilterStatistics() *FilterStatistics {
	return &FilterStatistics{}
}

// Summary reports the counters in the shape downstream reporting and
// logging expect. Before any record has been seen it is an empty map.
func (s *FilterStatistics) Summary() map[string]any {
	if s.TotalJobs == 0 {
		return map[string]any{}
	}
	ratio := float64(s.FilteredRelevant) / float64(s.TotalJobs) * 100
	return map[string]any{
		"total_jobs":          s.TotalJobs,
		"filtered_relevant":   s.FilteredRelevant,
		"filtered_irrelevant": s.FilteredIrrelevant,
		"filter_ratio":        fmt.Sprintf("%.1f%%", ratio),
		"extraction_errors":   s.ExtractionErrors,
		"missing_company":     s.MissingCompany,
		"missing_location":    s.MissingLocation,
		"missing_posted_date": s.MissingPostedDate,
	}
}
