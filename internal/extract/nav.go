package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxNavigationItems = 15
	maxNavLabelRunes   = 50
)

var (
	navBlockRe = regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`)
	menuListRe = regexp.MustCompile(`(?is)<ul[^>]*class\s*=\s*["'][^"']*menu[^"']*["'][^>]*>.*?</ul>`)
	anchorRe   = regexp.MustCompile(`(?is)<a[^>]*>(.*?)</a>`)
)

// NavigationItems approximates the site's navigation structure: anchor texts
// inside <nav> blocks and <ul> elements whose class contains "menu", in
// document order. Entries that are empty or 50+ characters after tag
// stripping are discarded; at most 15 survive.
func NavigationItems(markup string) []string {
	var blocks strings.Builder
	for _, block := range navBlockRe.FindAllString(markup, -1) {
		blocks.WriteString(block)
	}
	for _, block := range menuListRe.FindAllString(markup, -1) {
		blocks.WriteString(block)
	}

	items := make([]string, 0, maxNavigationItems)
	for _, m := range anchorRe.FindAllStringSubmatch(blocks.String(), -1) {
		label := stripTags(m[1])
		if label == "" || utf8.RuneCountInString(label) >= maxNavLabelRunes {
			continue
		}
		items = append(items, label)
		if len(items) == maxNavigationItems {
			break
		}
	}
	return items
}
