// Package cleaner strips HTML from scraped text using Bluemonday.
package cleaner

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner removes markup from job descriptions before text analysis.
type Cleaner struct {
	policy *bluemonday.Policy
}

// New creates a cleaner that strips all HTML, keeping element contents.
func New() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// StripTags removes every HTML tag and decodes entities, returning the
// remaining plain text. Whitespace is left for the caller to normalize.
func (c *Cleaner) StripTags(s string) string {
	return html.UnescapeString(c.policy.Sanitize(s))
}
