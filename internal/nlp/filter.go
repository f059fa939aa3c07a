// Package nlp decides whether a scraped posting is relevant to the
// search query that produced it. The preferred strategy compares
// embedding vectors; when no embedding model is available it degrades
// to keyword overlap without failing the pipeline.
package nlp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the Gemini embedding model used when the
// configuration names none.
const DefaultEmbeddingModel = "gemini-embedding-001"

// DefaultThreshold is the cosine similarity above which a posting
// counts as relevant.
const DefaultThreshold = 0.3

// descriptionLimit caps how many characters of a description feed the
// embedding model. Relevance is decided by the opening of a posting,
// and the tail is mostly benefits boilerplate.
const descriptionLimit = 500

// Embedder produces a fixed-size vector for a text snippet.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// GeminiEmbedder embeds text through the Gemini API.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}
	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed returns the embedding vector for one text snippet.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embedding text: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("embedding response is empty")
	}
	return resp.Embeddings[0].Values, nil
}

// RelevanceFilter accepts or rejects a posting against a search query.
// With an embedder it compares cosine similarity against a threshold;
// without one, or when embedding fails, it falls back to keyword
// overlap. The degradation is logged once per filter.
type RelevanceFilter struct {
	embedder  Embedder
	threshold float64
	warnOnce  sync.Once
}

// NewRelevanceFilter builds a filter over the given embedder, which may
// be nil for keyword-only matching. Non-positive thresholds fall back
// to the default.
func NewRelevanceFilter(embedder Embedder, threshold float64) *RelevanceFilter {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &RelevanceFilter{embedder: embedder, threshold: threshold}
}

// NewFilter builds a relevance filter from pipeline configuration. It
// never fails: a missing API key or an unreachable embedding service
// degrades to keyword matching.
func NewFilter(ctx context.Context, apiKey, model string, threshold float64) *RelevanceFilter {
	if apiKey == "" {
		log.Printf("[NLP] no embedding API key configured, using keyword relevance")
		return NewRelevanceFilter(nil, threshold)
	}
	embedder, err := NewGeminiEmbedder(ctx, apiKey, model)
	if err != nil {
		log.Printf("[NLP] embedding model unavailable, using keyword relevance: %v", err)
		return NewRelevanceFilter(nil, threshold)
	}
	return NewRelevanceFilter(embedder, threshold)
}

// IsRelevant reports whether a posting matches the query. An empty
// query accepts everything.
func (f *RelevanceFilter) IsRelevant(ctx context.Context, title, description, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	if f.embedder != nil {
		relevant, err := f.semanticRelevance(ctx, title, description, query)
		if err == nil {
			return relevant
		}
		f.warnOnce.Do(func() {
			log.Printf("[NLP] embedding failed, falling back to keyword relevance: %v", err)
		})
	}
	return KeywordRelevance(title, description, query)
}

func (f *RelevanceFilter) semanticRelevance(ctx context.Context, title, description, query string) (bool, error) {
	snippet := description
	if runes := []rune(snippet); len(runes) > descriptionLimit {
		snippet = string(runes[:descriptionLimit])
	}

	jobVec, err := f.embedder.Embed(ctx, title+" "+snippet)
	if err != nil {
		return false, err
	}
	queryVec, err := f.embedder.Embed(ctx, query)
	if err != nil {
		return false, err
	}
	return cosineSimilarity(jobVec, queryVec) >= f.threshold, nil
}

// KeywordRelevance is the deterministic fallback: split the query into
// lowercase tokens and require at least half of them (minimum one) to
// appear as substrings of the posting text.
func KeywordRelevance(title, description, query string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return true
	}
	text := strings.ToLower(title + " " + description)
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched++
		}
	}
	return matched >= max(1, len(tokens)/2)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
