package transform

import (
	"context"
	"testing"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
	"github.com/project-tktt/go-jobmarket/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRaw() *domain.RawJob {
	return &domain.RawJob{
		JobTitle:       "Senior Data Analyst",
		JobDescription: "Công ty: Tech Solutions Vietnam Địa điểm: Hochiminh Ngày cập nhật: 15/02/2026 Yêu cầu: thành thạo SQL và Python, lương 20 - 30 triệu",
		Platform:       "test",
		JobURL:         "https://example.com/job/1",
		ScrapedAt:      time.Now(),
	}
}

func TestTransformJob(t *testing.T) {
	tr := New(nil)

	job, err := tr.TransformJob(sampleRaw())
	require.NoError(t, err)

	assert.Equal(t, "tech solutions vietnam", job.CompanyName)
	assert.Equal(t, "hồ chí minh", job.Location)
	assert.Equal(t, "2026-02-15", job.PostedDate)
	assert.Equal(t, "senior", job.SeniorityLevel)
	assert.Equal(t, 20_000_000, job.SalaryMin)
	assert.Equal(t, 30_000_000, job.SalaryMax)
	assert.Equal(t, "vnd", job.SalaryCurrency)
	assert.ElementsMatch(t, []string{"SQL", "Python"}, skillNames(job.Skills))
	assert.Equal(t, "test", job.Platform)
	assert.NotEmpty(t, job.PlatformJobID)
	assert.NotEmpty(t, job.CleanDesc)
	assert.False(t, job.ProcessedAt.IsZero())
}

func TestTransformJobMissingFields(t *testing.T) {
	tr := New(nil)

	for _, raw := range []*domain.RawJob{
		{JobDescription: "desc", Platform: "test", JobURL: "u"},
		{JobTitle: "title", Platform: "test", JobURL: "u"},
		{JobTitle: "title", JobDescription: "desc", JobURL: "u"},
		{JobTitle: "title", JobDescription: "desc", Platform: "test"},
	} {
		job, err := tr.TransformJob(raw)
		assert.Nil(t, job)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestTransformJobIdempotent(t *testing.T) {
	tr := New(nil)

	first, err := tr.TransformJob(sampleRaw())
	require.NoError(t, err)
	second, err := tr.TransformJob(sampleRaw())
	require.NoError(t, err)

	assert.Equal(t, first.PlatformJobID, second.PlatformJobID)
	assert.Equal(t, first.CompanyName, second.CompanyName)
	assert.Equal(t, first.Location, second.Location)
	assert.Equal(t, first.PostedDate, second.PostedDate)
	assert.Equal(t, first.SeniorityLevel, second.SeniorityLevel)
	assert.Equal(t, first.Skills, second.Skills)
}

func TestTransformJobFallbackFields(t *testing.T) {
	tr := New(nil)

	raw := &domain.RawJob{
		JobTitle:       "Data Analyst",
		JobDescription: "analyze business data with excel",
		Platform:       "test",
		JobURL:         "https://example.com/job/2",
		Company:        "Bank Vietnam",
		Location:       "Ho Chi Minh City",
		PostingDate:    "2026-02-08",
	}

	job, err := tr.TransformJob(raw)
	require.NoError(t, err)

	// No labeled fields in the description, raw values win verbatim
	assert.Equal(t, "Bank Vietnam", job.CompanyName)
	assert.Equal(t, "Ho Chi Minh City", job.Location)
	assert.Equal(t, "2026-02-08", job.PostedDate)
	assert.Empty(t, job.SeniorityLevel)
	assert.Equal(t, 0, job.SalaryMin)
	assert.Equal(t, "VND", job.SalaryCurrency)
}

func TestTransformBatchKeywordFiltering(t *testing.T) {
	filter := nlp.NewRelevanceFilter(nil, 0)
	tr := New(filter)

	raws := []*domain.RawJob{
		sampleRaw(),
		{
			JobTitle:       "Chef Position",
			JobDescription: "Looking for experienced chef for our restaurant",
			Platform:       "test",
			JobURL:         "https://example.com/job/chef",
		},
	}

	jobs, stats := tr.TransformBatch(context.Background(), raws, "Data Analyst")

	require.Len(t, jobs, 1)
	assert.Equal(t, "Senior Data Analyst", jobs[0].JobTitle)

	assert.Equal(t, 2, stats["total_jobs"])
	assert.Equal(t, 1, stats["filtered_relevant"])
	assert.Equal(t, 1, stats["filtered_irrelevant"])
	assert.Equal(t, "50.0%", stats["filter_ratio"])
}

func TestTransformBatchCountsErrors(t *testing.T) {
	tr := New(nil)

	raws := []*domain.RawJob{
		sampleRaw(),
		{Platform: "test", JobURL: "https://example.com/job/broken"},
	}

	jobs, stats := tr.TransformBatch(context.Background(), raws, "")

	assert.Len(t, jobs, 1)
	assert.Equal(t, 2, stats["total_jobs"])
	assert.Equal(t, 1, stats["extraction_errors"])
	for _, key := range []string{
		"total_jobs", "filtered_relevant", "filtered_irrelevant", "filter_ratio",
		"extraction_errors", "missing_company", "missing_location", "missing_posted_date",
	} {
		assert.Contains(t, stats, key)
	}
}

func TestTransformBatchPreservesOrder(t *testing.T) {
	tr := New(nil)

	var raws []*domain.RawJob
	urls := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	for _, u := range urls {
		raw := sampleRaw()
		raw.JobURL = u
		raws = append(raws, raw)
	}

	jobs, _ := tr.TransformBatch(context.Background(), raws, "")
	require.Len(t, jobs, len(urls))
	for i, u := range urls {
		assert.Equal(t, u, jobs[i].JobURL)
	}
}

func TestStatsSummaryEmptyBeforeUse(t *testing.T) {
	assert.Empty(t, NewFilterStatistics().Summary())
}

func TestGeneratePlatformJobID(t *testing.T) {
	raw := sampleRaw()

	first := GeneratePlatformJobID(raw)
	second := GeneratePlatformJobID(raw)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "test_")

	other := sampleRaw()
	other.JobURL = "https://example.com/job/other"
	assert.NotEqual(t, first, GeneratePlatformJobID(other))

	noURL := sampleRaw()
	noURL.JobURL = ""
	assert.Contains(t, GeneratePlatformJobID(noURL), "test_no_url_")
}
