package repository

import "fmt"

// StatusError reports a non-2xx upstream response. The request URL is kept
// so the failure can be reproduced by hand. Nothing is retried.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// NoCandidatesError means the geocoding response was well formed but held no
// candidates. Body carries the raw upstream payload for display.
type NoCandidatesError struct {
	Location string
	Body     string
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("no geocoding candidates for %q", e.Location)
}

// MalformedResponseError means the payload could not be decoded or lacked
// the expected content, such as a forecast without a "current" object.
type MalformedResponseError struct {
	URL  string
	Body string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s", e.URL)
}
