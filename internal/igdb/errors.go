package igdb

import "fmt"

// UpstreamError is a failed token or query request. Body holds the raw
// upstream response so callers can surface it.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("igdb %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("igdb %s failed (%d): %s", e.Op, e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
