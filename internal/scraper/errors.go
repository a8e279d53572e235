package scraper

import "fmt"

// ValidationError reports a missing request field, detected before any fetch.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// FetchError reports a non-success HTTP status from the target site.
type FetchError struct {
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed with status %d %s", e.StatusCode, e.Status)
}

// NetworkError reports a transport-level failure (DNS, timeout, refused).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParkingPageError marks content identified as a placeholder domain. The
// scrape is refused rather than persisting low-value content.
type ParkingPageError struct {
	URL string
}

func (e *ParkingPageError) Error() string {
	return fmt.Sprintf("website %s appears to be a parked or placeholder domain", e.URL)
}

// PersistenceError wraps a failed record upsert.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist scrape record: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
