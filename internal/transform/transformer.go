// Package transform is the core of the pipeline: it turns raw scraped
// postings into normalized, analytics-ready records through text
// normalization, labeled-field extraction, salary and date parsing,
// seniority classification and skill extraction.
package transform

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/registry"
)

// ErrMissingFields marks a raw record lacking one of the required
// title, description, platform or URL fields.
var ErrMissingFields = errors.New("raw job missing required fields")

// RelevanceChecker decides whether a posting matches a search query.
// The nlp package provides the production implementation.
type RelevanceChecker interface {
	IsRelevant(ctx context.Context, title, description, query string) bool
}

// Transformer converts raw scraped jobs into normalized records and
// keeps per-run statistics. Create one per batch run; the keyword
// matchers are shared and immutable but the counters are not.
type Transformer struct {
	seniority *SeniorityClassifier
	skills    *SkillExtractor
	filter    RelevanceChecker
	stats     *FilterStatistics
}

// New builds a transformer over the static keyword registries. A nil
// filter disables relevance checking.
func New(filter RelevanceChecker) *Transformer {
	return &Transformer{
		seniority: NewSeniorityClassifier(registry.SeniorityLevels()),
		skills:    NewSkillExtractor(registry.SkillCategories()),
		filter:    filter,
		stats:     NewFilterStatistics(),
	}
}

// Stats exposes the running counters, mainly for the worker loop which
// transforms jobs one at a time and reports periodically.
func (t *Transformer) Stats() *FilterStatistics {
	return t.stats
}

// TransformJob normalizes a single raw record. It returns
// ErrMissingFields for incomplete records and never panics; a panic in
// any extraction step is recovered and reported as an error.
func (t *Transformer) TransformJob(raw *domain.RawJob) (job *domain.Job, err error) {
	defer func() {
		if r := recover(); r != nil {
			job = nil
			err = fmt.Errorf("transforming %s: %v", raw.JobURL, r)
		}
	}()

	if !raw.Complete() {
		return nil, ErrMissingFields
	}

	clean := NormalizeText(raw.JobDescription)

	company := ExtractCompany(clean, raw)
	if company == "" {
		t.stats.MissingCompany++
	}

	location := ExtractLocation(clean, raw)
	if location == "" {
		t.stats.MissingLocation++
	}

	posted := ExtractPostedDate(clean)
	if posted == "" {
		posted = NormalizePostingDate(raw.PostingDate)
	}
	if posted == "" {
		t.stats.MissingPostedDate++
	}

	job = &domain.Job{
		PlatformJobID:  GeneratePlatformJobID(raw),
		Platform:       raw.Platform,
		JobURL:         raw.JobURL,
		JobTitle:       raw.JobTitle,
		CompanyName:    company,
		Location:       location,
		PostedDate:     posted,
		SeniorityLevel: t.seniority.Detect(raw.JobTitle, raw.JobDescription),
		SalaryCurrency: "VND",
		RawDescription: raw.JobDescription,
		CleanDesc:      clean,
		Skills:         t.skills.Extract(raw.JobDescription, raw.JobTitle),
		ScrapedAt:      raw.ScrapedAt,
		ProcessedAt:    time.Now(),
	}
	if job.ScrapedAt.IsZero() {
		job.ScrapedAt = job.ProcessedAt
	}

	if salary := ExtractSalary(raw.JobTitle + " " + raw.JobDescription); salary != nil {
		job.SalaryMin = salary.Min
		job.SalaryMax = salary.Max
		job.SalaryCurrency = salary.Currency
	}

	return job, nil
}

// TransformBatch filters and transforms a batch of raw records. Output
// order follows input order; rejected records are absent from the
// output and show up only in the returned statistics summary. A batch
// never fails as a whole.
func (t *Transformer) TransformBatch(ctx context.Context, raws []*domain.RawJob, query string) ([]*domain.Job, map[string]any) {
	jobs := make([]*domain.Job, 0, len(raws))
	for _, raw := range raws {
		t.stats.TotalJobs++

		if query != "" && t.filter != nil {
			if !t.filter.IsRelevant(ctx, raw.JobTitle, raw.JobDescription, query) {
				t.stats.FilteredIrrelevant++
				log.Printf("[Transform] filtered out irrelevant job: %s", raw.JobTitle)
				continue
			}
		}
		t.stats.FilteredRelevant++

		job, err := t.TransformJob(raw)
		if err != nil {
			t.stats.ExtractionErrors++
			log.Printf("[Transform] skipping job %s: %v", raw.JobURL, err)
			continue
		}
		jobs = append(jobs, job)
	}

	log.Printf("[Transform] transformed %d of %d raw jobs", len(jobs), len(raws))
	return jobs, t.stats.Summary()
}
