// Package mock provides a scraper returning fixed sample postings, for
// demos and for exercising the pipeline without touching the boards.
package mock

import (
	"context"
	"log"
	"time"

	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// Scraper returns sample job data
type Scraper struct{}

// New creates a new mock scraper
func New() *Scraper {
	return &Scraper{}
}

// Platform returns the board identifier
func (s *Scraper) Platform() string {
	return domain.PlatformMock
}

// Scrape ignores the query and returns the sample postings with a
// fresh scrape timestamp.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]*domain.RawJob, error) {
	log.Printf("[Mock] Returning %d sample jobs", len(sampleJobs))

	now := time.Now()
	jobs := make([]*domain.RawJob, 0, len(sampleJobs))
	for _, sample := range sampleJobs {
		job := sample
		job.ScrapedAt = now
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

var sampleJobs = []domain.RawJob{
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Senior Data Analyst",
		Company:        "Tech Corp Vietnam",
		Location:       "Ho Chi Minh City",
		JobDescription: "Looking for experienced Data Analyst with 5+ years in SQL, Python, Tableau. Must know distributed computing with Spark.",
		JobURL:         "https://example.com/job/1",
		PostingDate:    "2026-02-08",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Junior Data Engineer",
		Company:        "Data Solutions Inc",
		Location:       "Hanoi",
		JobDescription: "Entry-level Data Engineer needed. Experience with Python, PostgreSQL, and ETL pipelines required. Knowledge of AWS and Apache Airflow preferred.",
		JobURL:         "https://example.com/job/2",
		PostingDate:    "2026-02-09",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "BI Developer",
		Company:        "Analytics Firm",
		Location:       "Da Nang",
		JobDescription: "Tableau and Power BI expert needed. Must have SQL and database design skills. 3+ years experience.",
		JobURL:         "https://example.com/job/3",
		PostingDate:    "2026-02-07",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Machine Learning Engineer",
		Company:        "AI Startup",
		Location:       "Ho Chi Minh City",
		JobDescription: "ML Engineer with Python, TensorFlow, and scikit-learn. Work with large datasets using Spark and Hadoop.",
		JobURL:         "https://example.com/job/4",
		PostingDate:    "2026-02-09",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Data Scientist",
		Company:        "E-Commerce Giant",
		Location:       "Ho Chi Minh City",
		JobDescription: "Senior Data Scientist needed. Expertise in Python, R, machine learning, and statistical analysis. Knowledge of AWS and Azure.",
		JobURL:         "https://example.com/job/5",
		PostingDate:    "2026-02-06",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Database Administrator",
		Company:        "Enterprise Solutions",
		Location:       "Hanoi",
		JobDescription: "DBA with experience in MySQL, PostgreSQL, and Oracle. Must know backup, recovery, and performance tuning.",
		JobURL:         "https://example.com/job/6",
		PostingDate:    "2026-02-05",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "ETL Developer",
		Company:        "Data Integration Firm",
		Location:       "Ho Chi Minh City",
		JobDescription: "ETL specialist with Talend or Informatica. Skills in SQL, Python, and Apache Airflow. Working with large data pipelines.",
		JobURL:         "https://example.com/job/7",
		PostingDate:    "2026-02-08",
	},
	{
		Platform:       domain.PlatformMock,
		JobTitle:       "Data Analyst - Financial",
		Company:        "Bank Vietnam",
		Location:       "Ho Chi Minh City",
		JobDescription: "Financial Data Analyst required. SQL, Excel advanced skills, and knowledge of Power BI. Working with financial datasets.",
		JobURL:         "https://example.com/job/8",
		PostingDate:    "2026-02-04",
	},
}
