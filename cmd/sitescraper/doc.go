// Command sitescraper runs the website scrape service: an HTTP API that
// fetches a single page per request, refuses parking pages, extracts
// heuristic business signals from the markup, and upserts the result into
// Postgres keyed by (user, website URL).
package main
