package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/project-tktt/go-jobmarket/internal/domain"
)

// ElasticsearchLoader mirrors normalized jobs into a search index for
// ad-hoc querying alongside the relational store.
type ElasticsearchLoader struct {
	client    *elasticsearch.Client
	indexName string
}

// NewElasticsearchLoader creates a new Elasticsearch loader
func NewElasticsearchLoader(addresses []string, indexName string) (*ElasticsearchLoader, error) {
	cfg := elasticsearch.Config{
		Addresses: addresses,
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create es client: %w", err)
	}

	// Check connection
	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("es info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("es error: %s", res.Status())
	}

	return &ElasticsearchLoader{
		client:    client,
		indexName: indexName,
	}, nil
}

// LoadBatch bulk-indexes jobs keyed by platform_job_id
func (l *ElasticsearchLoader) LoadBatch(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	var buf bytes.Buffer

	for _, job := range jobs {
		// Meta line
		meta := map[string]any{
			"index": map[string]any{
				"_index": l.indexName,
				"_id":    job.PlatformJobID,
			},
		}
		metaBytes, _ := json.Marshal(meta)
		buf.Write(metaBytes)
		buf.WriteByte('\n')

		// Document line
		docBytes, err := json.Marshal(job)
		if err != nil {
			log.Printf("[Loader] marshal job %s: %v", job.PlatformJobID, err)
			continue
		}
		buf.Write(docBytes)
		buf.WriteByte('\n')
	}

	res, err := l.client.Bulk(bytes.NewReader(buf.Bytes()), l.client.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk error: %s", res.Status())
	}

	// Parse response to check for individual errors
	var bulkRes struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				ID     string `json:"_id"`
				Status int    `json:"status"`
				Error  struct {
					Type   string `json:"type"`
					Reason string `json:"reason"`
				} `json:"error"`
			} `json:"index"`
		} `json:"items"`
	}

	if err := json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("parse bulk response: %w", err)
	}

	if bulkRes.Errors {
		for _, item := range bulkRes.Items {
			if item.Index.Status >= 400 {
				log.Printf("[Loader] bulk index error for %s: %s - %s",
					item.Index.ID, item.Index.Error.Type, item.Index.Error.Reason)
			}
		}
	}

	return nil
}

// EnsureIndex creates the index with Vietnamese-friendly settings if it doesn't exist
func (l *ElasticsearchLoader) EnsureIndex(ctx context.Context) error {
	res, err := l.client.Indices.Exists([]string{l.indexName})
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == 200 {
		return nil // Index already exists
	}

	// Create index with Vietnamese analyzer settings
	mapping := `{
		"settings": {
			"analysis": {
				"analyzer": {
					"vietnamese_analyzer": {
						"type": "custom",
						"tokenizer": "standard",
						"filter": ["lowercase", "asciifolding"]
					}
				}
			}
		},
		"mappings": {
			"properties": {
				"platform_job_id": {"type": "keyword"},
				"platform": {"type": "keyword"},
				"job_url": {"type": "keyword"},
				"job_title": {
					"type": "text",
					"analyzer": "vietnamese_analyzer",
					"fields": {"keyword": {"type": "keyword"}}
				},
				"company_name": {"type": "text", "analyzer": "vietnamese_analyzer"},
				"location": {"type": "text", "analyzer": "vietnamese_analyzer"},
				"posted_date": {"type": "date", "format": "yyyy-MM-dd"},
				"seniority_level": {"type": "keyword"},
				"salary_min": {"type": "long"},
				"salary_max": {"type": "long"},
				"salary_currency": {"type": "keyword"},
				"raw_description": {"type": "text", "analyzer": "vietnamese_analyzer"},
				"clean_description": {"type": "text", "analyzer": "vietnamese_analyzer"},
				"extracted_skills": {
					"properties": {
						"skill_name": {"type": "keyword"},
						"skill_category": {"type": "keyword"}
					}
				},
				"scraped_at": {"type": "date"},
				"processed_at": {"type": "date"}
			}
		}
	}`

	res, err = l.client.Indices.Create(
		l.indexName,
		l.client.Indices.Create.WithBody(bytes.NewReader([]byte(mapping))),
	)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("create index error: %s", res.Status())
	}

	return nil
}
