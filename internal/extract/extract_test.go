package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractAcmeScenario(t *testing.T) {
	t.Parallel()

	markup := `<title>Acme Corp</title><meta name="description" content="We build things">` +
		`Acme Corp is great. Acme Corp leads innovation.`
	now := time.Unix(1700000000, 0).UTC()

	got := Extract(markup, "https://acme.example", now)

	require.Equal(t, "https://acme.example", got.URL)
	require.Equal(t, "Acme Corp", got.Title)
	require.Equal(t, "We build things", got.Description)
	require.Contains(t, got.BusinessKeywords, "innovation")
	require.Contains(t, got.CompanyTerms, "Acme Corp")
	require.Equal(t, now, got.ExtractedAt)
	require.Positive(t, got.WordCount)
}

func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	markup := `<title>Same</title><nav><a href="/">Home Base</a></nav><p>Steady Steady content.</p>`
	now := time.Unix(1700000000, 0).UTC()

	first := Extract(markup, "https://example.com", now)
	second := Extract(markup, "https://example.com", now)
	require.Equal(t, first, second)
}

func TestExtractMainContentTruncation(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("word ", 1000)
	got := Extract("<p>"+body+"</p>", "https://example.com", time.Now())

	require.Len(t, []rune(got.MainContent), 2000)
	clean := CleanText("<p>" + body + "</p>")
	require.Equal(t, string([]rune(clean)[:2000]), got.MainContent)
	require.Equal(t, 1000, got.WordCount)
}

func TestExtractEmptyMarkupDegradesToDefaults(t *testing.T) {
	t.Parallel()

	got := Extract("", "https://empty.example", time.Now())

	require.Empty(t, got.Title)
	require.Empty(t, got.Description)
	require.Empty(t, got.MainContent)
	require.Empty(t, got.BusinessKeywords)
	require.Empty(t, got.CompanyTerms)
	require.Empty(t, got.NavigationItems)
	require.Zero(t, got.WordCount)
}

func TestExtractInvariants(t *testing.T) {
	t.Parallel()

	markup := `<title>Invariant Page</title>
<nav><a href="/a">Alpha List</a><a href="/b">Beta</a></nav>
<p>Gadget Works ships software. Gadget Works supports consulting and training.</p>`
	got := Extract(markup, "https://inv.example", time.Now())

	require.LessOrEqual(t, len([]rune(got.MainContent)), 2000)
	require.LessOrEqual(t, len(got.CompanyTerms), 20)
	require.LessOrEqual(t, len(got.NavigationItems), 15)

	seen := map[string]bool{}
	for _, term := range got.CompanyTerms {
		require.False(t, seen[term], "duplicate company term %q", term)
		seen[term] = true
		require.Greater(t, len([]rune(term)), 2)
	}
	for _, kw := range got.BusinessKeywords {
		require.False(t, seen["kw:"+kw], "duplicate keyword %q", kw)
		seen["kw:"+kw] = true
	}
	for _, item := range got.NavigationItems {
		require.NotEmpty(t, item)
		require.Less(t, len([]rune(item)), 50)
	}
}
