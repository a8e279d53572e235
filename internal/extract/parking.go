package extract

import "strings"

// parkingIndicators are phrases that mark placeholder or for-sale domains.
// Matching is case-insensitive substring containment.
var parkingIndicators = []string{
	"domain for sale",
	"this domain may be for sale",
	"buy this domain",
	"domain is for sale",
	"parked domain",
	"domain parking",
	"this page is parked",
	"coming soon",
	"under construction",
	"website coming soon",
	"account suspended",
	"default web page",
	"this site is currently unavailable",
}

// IsParkingPage reports whether the markup looks like a parking or
// placeholder page. Callers must refuse to persist data when it returns true.
func IsParkingPage(markup string) bool {
	lower := strings.ToLower(markup)
	for _, phrase := range parkingIndicators {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
