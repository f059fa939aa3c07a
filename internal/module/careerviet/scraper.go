package careerviet

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// BaseListURL is the query-based listing endpoint.
// Page 1: {base}/{query}-k-vi.html, page N: {base}/{query}-k-trang-N-vi.html
const BaseListURL = "https://www.careerviet.vn/viec-lam"

// Scraper fetches job postings from CareerViet
type Scraper struct {
	collector *colly.Collector
	config    Config
}

// Config holds CareerViet-specific configuration
type Config struct {
	MaxPages     int
	RequestDelay time.Duration
	UserAgent    string
}

// New creates a new CareerViet scraper
func New(cfg Config) *Scraper {
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 3
	}
	if cfg.RequestDelay <= 0 {
		cfg.RequestDelay = 2 * time.Second
	}

	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Delay:       cfg.RequestDelay,
		RandomDelay: cfg.RequestDelay / 2,
	})

	return &Scraper{
		collector: c,
		config:    cfg,
	}
}

// Platform returns the board identifier
func (s *Scraper) Platform() string {
	return domain.PlatformCareerViet
}

// listingURL builds the pagination URL for a search query
func listingURL(query string, page int) string {
	q := url.QueryEscape(strings.ToLower(strings.TrimSpace(query)))
	if page <= 1 {
		return fmt.Sprintf("%s/%s-k-vi.html", BaseListURL, q)
	}
	return fmt.Sprintf("%s/%s-k-trang-%d-vi.html", BaseListURL, q, page)
}

// Scrape walks the listing pages for the query and fetches each job's
// detail page. Per-page and per-job failures are logged and skipped.
func (s *Scraper) Scrape(ctx context.Context, query string) ([]*domain.RawJob, error) {
	var all []*domain.RawJob

	for page := 1; page <= s.config.MaxPages; page++ {
		select {
		case <-ctx.Done():
			return all, ctx.Err()
		default:
		}

		log.Printf("[CareerViet] Scraping page %d/%d", page, s.config.MaxPages)

		jobURLs, err := s.scrapeListing(listingURL(query, page))
		if err != nil {
			log.Printf("[CareerViet] Error on page %d: %v", page, err)
			continue
		}
		if len(jobURLs) == 0 {
			log.Printf("[CareerViet] No more jobs on page %d", page)
			break
		}

		for _, jobURL := range jobURLs {
			select {
			case <-ctx.Done():
				return all, ctx.Err()
			default:
			}

			job, err := s.scrapeDetail(jobURL)
			if err != nil {
				log.Printf("[CareerViet] Error extracting %s: %v", jobURL, err)
				continue
			}
			all = append(all, job)
		}
	}

	log.Printf("[CareerViet] Scraped %d jobs", len(all))
	return all, nil
}

// scrapeListing collects the job detail URLs from one listing page.
// The detail link is the second anchor inside each job card.
func (s *Scraper) scrapeListing(pageURL string) ([]string, error) {
	var jobURLs []string

	c := s.collector.Clone()
	c.OnHTML("div.job-item", func(el *colly.HTMLElement) {
		link := el.DOM.Find("a").Eq(1)
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return
		}
		if !strings.HasPrefix(href, "http") {
			href = "https://careerviet.vn/" + strings.TrimPrefix(href, "/")
		}
		jobURLs = append(jobURLs, href)
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("visit listing: %w", err)
	}
	return jobURLs, nil
}

// scrapeDetail fetches one job's detail page and parses the title,
// posting date box and description section.
func (s *Scraper) scrapeDetail(jobURL string) (*domain.RawJob, error) {
	job := &domain.RawJob{
		Platform:  domain.PlatformCareerViet,
		JobURL:    jobURL,
		ScrapedAt: time.Now(),
	}

	c := s.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			log.Printf("[CareerViet] Parse error for %s: %v", jobURL, err)
			return
		}
		job.JobTitle = tidy(doc.Find("h1.title").First().Text())
		job.PostingDate = tidy(doc.Find("div.detail-box.has-background").First().Text())
		job.JobDescription = tidy(doc.Find("section.job-detail-content").Text())
	})

	if err := c.Visit(jobURL); err != nil {
		return nil, fmt.Errorf("visit detail: %w", err)
	}

	if job.JobTitle == "" || job.JobDescription == "" {
		return nil, fmt.Errorf("empty job page: %s", jobURL)
	}
	return job, nil
}

var spaceRe = regexp.MustCompile(`\s+`)

// tidy removes invisible characters and collapses whitespace in
// scraped text. Full normalization happens later in the transformer.
func tidy(s string) string {
	s = strings.NewReplacer(" ", " ", "​", "").Replace(s)
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
