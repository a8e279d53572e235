// Package extract implements the heuristic signal extraction pipeline over
// raw page markup. It works on regular expressions rather than a DOM tree;
// malformed markup can leak fragments through, which is an accepted
// limitation of the heuristics.
package extract

import (
	"strings"
	"time"

	"github.com/leadlens/sitescraper/internal/scraper"
)

// maxMainContent bounds the cleaned-text excerpt stored per page.
const maxMainContent = 2000

// Extract runs every sub-extractor over the raw markup and assembles the
// result. Sub-steps degrade to empty defaults rather than failing; the only
// hard refusal (parking pages) is the caller's responsibility via
// IsParkingPage.
func Extract(markup, finalURL string, now time.Time) scraper.ExtractionResult {
	clean := CleanText(markup)

	return scraper.ExtractionResult{
		URL:              finalURL,
		Title:            Title(markup),
		Description:      MetaDescription(markup),
		MainContent:      truncateRunes(clean, maxMainContent),
		BusinessKeywords: BusinessKeywords(strings.ToLower(clean)),
		CompanyTerms:     CompanyTerms(markup),
		NavigationItems:  NavigationItems(markup),
		ExtractedAt:      now,
		WordCount:        len(strings.Fields(clean)),
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
