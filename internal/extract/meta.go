package extract

import (
	"regexp"
	"strings"
)

var (
	titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

	// The description meta tag may carry its attributes in either order.
	metaNameContentRe = regexp.MustCompile(`(?is)<meta[^>]+name\s*=\s*["']description["'][^>]*content\s*=\s*["']([^"']*)["']`)
	metaContentNameRe = regexp.MustCompile(`(?is)<meta[^>]+content\s*=\s*["']([^"']*)["'][^>]*name\s*=\s*["']description["']`)
)

// Title returns the first <title> element's inner text, trimmed. Empty when
// absent.
func Title(markup string) string {
	m := titleRe.FindStringSubmatch(markup)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// MetaDescription returns the content attribute of the first meta tag whose
// name is "description", trimmed. Empty when absent. Open Graph and other
// alternates are not consulted.
func MetaDescription(markup string) string {
	nameFirst := metaNameContentRe.FindStringSubmatchIndex(markup)
	contentFirst := metaContentNameRe.FindStringSubmatchIndex(markup)

	switch {
	case nameFirst == nil && contentFirst == nil:
		return ""
	case contentFirst == nil || (nameFirst != nil && nameFirst[0] <= contentFirst[0]):
		return strings.TrimSpace(markup[nameFirst[2]:nameFirst[3]])
	default:
		return strings.TrimSpace(markup[contentFirst[2]:contentFirst[3]])
	}
}
