// Package upstream holds the pieces shared by all vendor API clients:
// the error types surfaced when a vendor call fails, and the common
// validate-and-parse step applied to every vendor response.
package upstream

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// HTTPError is returned when a vendor responds outside the 2xx range.
// It carries the status code and the raw body for diagnostics.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Message probes the common vendor error envelopes for a human-readable
// message. Vendors disagree on the shape (Graph API nests it under
// error.message, Google APIs under error.message or error.status, LinkedIn
// uses a top-level message), so the body is searched rather than decoded
// into a fixed struct.
func (e *HTTPError) Message() string {
	for _, path := range []string{"error.message", "error.error_description", "error_description", "message", "error"} {
		if v := gjson.Get(e.Body, path); v.Exists() && v.Type == gjson.String {
			return v.String()
		}
	}
	return e.Body
}

// DecodeError is returned when a vendor responds with a success status but
// a body that is not parseable JSON.
type DecodeError struct {
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("upstream response is not valid JSON: %.120s", e.Body)
}

// Decode validates the HTTP-level outcome of a vendor call and parses the
// body. Non-2xx statuses yield an *HTTPError, unparseable bodies a
// *DecodeError.
func Decode(resp *resty.Response) (gjson.Result, error) {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return gjson.Result{}, &HTTPError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	if !gjson.ValidBytes(resp.Body()) {
		return gjson.Result{}, &DecodeError{Body: string(resp.Body())}
	}
	return gjson.ParseBytes(resp.Body()), nil
}
