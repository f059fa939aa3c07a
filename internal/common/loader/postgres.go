package loader

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// PostgresLoader persists normalized jobs into the relational schema:
// a jobs table keyed by job_url, a descriptions table keyed by job id,
// a canonical skills table and a job_skills link table.
type PostgresLoader struct {
	db *sql.DB
}

// NewPostgresLoader opens the connection and ensures the schema exists
func NewPostgresLoader(connStr string) (*PostgresLoader, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	l := &PostgresLoader{db: db}
	if err := l.ensureSchema(); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return l, nil
}

func (l *PostgresLoader) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			job_id SERIAL PRIMARY KEY,
			platform_job_id TEXT NOT NULL,
			platform TEXT NOT NULL,
			job_url TEXT NOT NULL UNIQUE,
			job_title TEXT NOT NULL,
			company_name TEXT,
			location TEXT,
			posted_date TEXT,
			seniority_level TEXT,
			salary_min BIGINT,
			salary_max BIGINT,
			salary_currency TEXT,
			scraped_at TIMESTAMP WITH TIME ZONE,
			processed_at TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS job_descriptions (
			job_id INTEGER PRIMARY KEY REFERENCES jobs(job_id) ON DELETE CASCADE,
			raw_description TEXT,
			clean_description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			skill_id SERIAL PRIMARY KEY,
			skill_name TEXT NOT NULL UNIQUE,
			skill_category TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS job_skills (
			job_id INTEGER NOT NULL REFERENCES jobs(job_id) ON DELETE CASCADE,
			skill_id INTEGER NOT NULL REFERENCES skills(skill_id) ON DELETE CASCADE,
			PRIMARY KEY (job_id, skill_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := l.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadBatch upserts jobs in one transaction. A failing job is logged
// and skipped so the rest of the batch still lands.
func (l *PostgresLoader) LoadBatch(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	loaded := 0
	for _, job := range jobs {
		if err := l.loadJob(ctx, job); err != nil {
			log.Printf("[Loader] error loading job %s: %v", job.PlatformJobID, err)
			continue
		}
		loaded++
	}

	log.Printf("[Loader] loaded %d/%d jobs into postgres", loaded, len(jobs))
	return nil
}

func (l *PostgresLoader) loadJob(ctx context.Context, job *domain.Job) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var jobID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO jobs (
			platform_job_id, platform, job_url, job_title, company_name,
			location, posted_date, seniority_level, salary_min, salary_max,
			salary_currency, scraped_at, processed_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (job_url) DO UPDATE SET
			platform_job_id = EXCLUDED.platform_job_id,
			job_title = EXCLUDED.job_title,
			company_name = EXCLUDED.company_name,
			location = EXCLUDED.location,
			posted_date = EXCLUDED.posted_date,
			seniority_level = EXCLUDED.seniority_level,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			scraped_at = EXCLUDED.scraped_at,
			processed_at = EXCLUDED.processed_at,
			updated_at = NOW()
		RETURNING job_id`,
		job.PlatformJobID, job.Platform, job.JobURL, job.JobTitle, nullString(job.CompanyName),
		nullString(job.Location), nullString(job.PostedDate), nullString(job.SeniorityLevel),
		nullInt(job.SalaryMin), nullInt(job.SalaryMax),
		job.SalaryCurrency, job.ScrapedAt, job.ProcessedAt,
	).Scan(&jobID)
	if err != nil {
		return fmt.Errorf("upsert job: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO job_descriptions (job_id, raw_description, clean_description)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id) DO UPDATE SET
			raw_description = EXCLUDED.raw_description,
			clean_description = EXCLUDED.clean_description`,
		jobID, job.RawDescription, job.CleanDesc,
	)
	if err != nil {
		return fmt.Errorf("upsert description: %w", err)
	}

	for _, skill := range job.Skills {
		var skillID int64
		err = tx.QueryRowContext(ctx, `
			INSERT INTO skills (skill_name, skill_category)
			VALUES ($1, $2)
			ON CONFLICT (skill_name) DO UPDATE SET skill_category = EXCLUDED.skill_category
			RETURNING skill_id`,
			skill.Name, skill.Category,
		).Scan(&skillID)
		if err != nil {
			return fmt.Errorf("upsert skill %s: %w", skill.Name, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO job_skills (job_id, skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			jobID, skillID,
		)
		if err != nil {
			return fmt.Errorf("link skill %s: %w", skill.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (l *PostgresLoader) Close() error {
	return l.db.Close()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
