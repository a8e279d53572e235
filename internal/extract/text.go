package extract

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe         = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// CleanText reduces raw markup to plain text: script and style blocks are
// dropped wholesale, remaining tags stripped, and whitespace runs collapsed
// to single spaces. The output is the basis for word count, the main-content
// excerpt, and keyword matching.
func CleanText(markup string) string {
	text := scriptBlockRe.ReplaceAllString(markup, " ")
	text = styleBlockRe.ReplaceAllString(text, " ")
	text = tagRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripTags removes tags and collapses whitespace within a markup fragment.
func stripTags(fragment string) string {
	text := tagRe.ReplaceAllString(fragment, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
