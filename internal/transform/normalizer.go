package transform

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/project-tktt/go-jobmarket/internal/common/cleaner"
)

var (
	htmlCleaner  = cleaner.New()
	whitespaceRe = regexp.MustCompile(`\s+`)

	// UI chrome that job boards leak into scraped description blocks.
	boilerplatePhrases = []string{
		"chi tiết",
		"gợi ý",
		"báo xấu",
		"nộp đơn",
		"chia sẻ",
	}

	// Non-breaking space and zero-width space show up constantly in
	// Vietnamese job boards.
	invisibleReplacer = strings.NewReplacer(" ", " ", "​", "")
)

// maxTokenLen drops whitespace-delimited tokens longer than this, a
// heuristic against embedded URLs and tracking garbage.
const maxTokenLen = 100

// NormalizeText lowercases a scraped description, strips HTML, removes
// board boilerplate and collapses whitespace. An empty result means the
// record effectively has no description and callers must fall back to
// the raw scraper fields.
func NormalizeText(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	s := strings.ToLower(raw)
	s = htmlCleaner.StripTags(s)
	s = invisibleReplacer.Replace(s)

	for _, phrase := range boilerplatePhrases {
		s = strings.ReplaceAll(s, phrase, " ")
	}

	s = whitespaceRe.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)
	kept := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < maxTokenLen {
			kept = append(kept, tok)
		}
	}

	return strings.TrimSpace(strings.Join(kept, " "))
}
