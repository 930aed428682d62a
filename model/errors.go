package model

import "fmt"

// ValidationError reports a bad form input. Detected before
// any network activity, so no fetch is attempted for it.
type ValidationError struct {
	Field  string // Offending input field
	Reason string // Short human-readable cause
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NetworkError reports a failed upstream round trip.
// Status is the HTTP status code, or 0 when the request
// never produced a response.
type NetworkError struct {
	Status int
	Err    error // underlying transport error, may be nil
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("rate card fetch failed with status %d", e.Status)
	}

	return fmt.Sprintf("rate card fetch failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON.
// Kept distinct from NetworkError for diagnostics even though
// both surface the same retry message to users.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rate card response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractionError reports a rate card that parsed fine but did
// not yield a usable quote: either no node matched the currency,
// or a node matched and none of its fields mapped to a number.
// This usually means the upstream response format changed.
type ExtractionError struct {
	Currency  string
	NodeFound bool // true when a currency node matched but carried no recognizable rates
}

func (e *ExtractionError) Error() string {
	if e.NodeFound {
		return fmt.Sprintf("no buy or sell rate recognized for %s, rate card format may have changed", e.Currency)
	}

	return fmt.Sprintf("currency %s not found in rate card", e.Currency)
}
