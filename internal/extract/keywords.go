package extract

import "strings"

// businessVocabulary is the fixed set of business-domain terms checked for
// presence in cleaned page text. Order matters: matches are reported in
// declaration order.
var businessVocabulary = []string{
	"services",
	"products",
	"solutions",
	"consulting",
	"software",
	"technology",
	"marketing",
	"design",
	"development",
	"management",
	"finance",
	"insurance",
	"healthcare",
	"education",
	"retail",
	"manufacturing",
	"logistics",
	"construction",
	"engineering",
	"innovation",
	"strategy",
	"analytics",
	"ecommerce",
	"agency",
	"enterprise",
	"startup",
	"cloud",
	"security",
	"support",
	"training",
}

// BusinessKeywords returns the vocabulary terms present anywhere in the
// lower-cased cleaned text, in vocabulary order. Presence is binary per term.
func BusinessKeywords(cleanLower string) []string {
	matched := make([]string, 0, 8)
	for _, term := range businessVocabulary {
		if strings.Contains(cleanLower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
