package extract

import (
	"regexp"
	"unicode/utf8"
)

const maxCompanyTerms = 20

// capitalizedPhraseRe matches one or more capitalized words separated by
// single spaces, so "Acme Corp" counts as one phrase when the source markup
// keeps the words on a single space. That behavior is deliberate: splitting
// it differently would change which terms cross the repeat threshold.
var capitalizedPhraseRe = regexp.MustCompile(`[A-Z][a-z]+(?: [A-Z][a-z]+)*`)

// commonWords suppresses frequent capitalized English words and generic
// navigation labels that would otherwise pollute company-term detection.
var commonWords = map[string]struct{}{
	"The":        {},
	"This":       {},
	"That":       {},
	"These":      {},
	"Those":      {},
	"About":      {},
	"Contact":    {},
	"Home":       {},
	"Menu":       {},
	"Search":     {},
	"Login":      {},
	"Sign":       {},
	"Register":   {},
	"Privacy":    {},
	"Terms":      {},
	"Cookie":     {},
	"Cookies":    {},
	"Copyright":  {},
	"All":        {},
	"Rights":     {},
	"Reserved":   {},
	"Read":       {},
	"More":       {},
	"Learn":      {},
	"Get":        {},
	"Our":        {},
	"Your":       {},
	"New":        {},
	"Free":       {},
	"Best":       {},
	"Welcome":    {},
	"Page":       {},
	"Site":       {},
	"Blog":       {},
	"News":       {},
	"Email":      {},
	"Phone":      {},
	"Follow":     {},
	"Share":      {},
	"Skip":       {},
	"Main":       {},
	"Navigation": {},
}

// CompanyTerms scans raw markup for repeated capitalized phrases, a cheap
// proxy for brand and product names. A phrase qualifies when it is longer
// than two characters, not a common word, and appears more than once. Terms
// come back in first-encountered order, capped at 20.
func CompanyTerms(markup string) []string {
	counts := make(map[string]int)
	var order []string

	for _, term := range capitalizedPhraseRe.FindAllString(markup, -1) {
		if utf8.RuneCountInString(term) <= 2 {
			continue
		}
		if _, excluded := commonWords[term]; excluded {
			continue
		}
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	terms := make([]string, 0, maxCompanyTerms)
	for _, term := range order {
		if counts[term] <= 1 {
			continue
		}
		terms = append(terms, term)
		if len(terms) == maxCompanyTerms {
			break
		}
	}
	return terms
}
