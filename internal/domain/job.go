package domain

import "time"

// RawJob is the loosely-typed record a scraper produces for one posting.
// Title, description, platform and URL are required for transformation;
// company, location and posting date are best-effort and may be empty.
type RawJob struct {
	JobTitle       string    `json:"job_title"`
	JobDescription string    `json:"job_description"`
	Platform       string    `json:"platform"`
	JobURL         string    `json:"job_url"`
	Company        string    `json:"company,omitempty"`
	Location       string    `json:"location,omitempty"`
	PostingDate    string    `json:"posting_date,omitempty"`
	ScrapedAt      time.Time `json:"scraped_at"`
}

// Complete reports whether the record carries every field the
// transformation engine requires.
func (r *RawJob) Complete() bool {
	return r.JobTitle != "" && r.JobDescription != "" && r.Platform != "" && r.JobURL != ""
}

// Skill is one extracted skill with its display category.
type Skill struct {
	Name     string `json:"skill_name"`
	Category string `json:"skill_category"`
}

// Job is the normalized, analytics-ready posting produced by the
// transformation engine. It is assembled once and never mutated after.
type Job struct {
	PlatformJobID  string    `json:"platform_job_id"`
	Platform       string    `json:"platform"`
	JobURL         string    `json:"job_url"`
	JobTitle       string    `json:"job_title"`
	CompanyName    string    `json:"company_name,omitempty"`
	Location       string    `json:"location,omitempty"`
	PostedDate     string    `json:"posted_date,omitempty"` // YYYY-MM-DD
	SeniorityLevel string    `json:"seniority_level,omitempty"`
	SalaryMin      int       `json:"salary_min,omitempty"` // VND, 0 = unknown
	SalaryMax      int       `json:"salary_max,omitempty"` // VND, 0 = unknown
	SalaryCurrency string    `json:"salary_currency"`
	RawDescription string    `json:"raw_description"`
	CleanDesc      string    `json:"clean_description"`
	Skills         []Skill   `json:"extracted_skills"`
	ScrapedAt      time.Time `json:"scraped_at"`
	ProcessedAt    time.Time `json:"processed_at"`
}

// Platform identifiers for the supported job boards.
const (
	PlatformCareerViet = "careerviet"
	PlatformTopCV      = "topcv"
	PlatformVieclam24h = "vieclam24h"
	PlatformMock       = "mock"
)
