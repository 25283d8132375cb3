package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a business-level rejection embedded in the venue's response
// body. The venue may return it under any HTTP status, including 200, so
// response bodies are always inspected. Code and message are preserved
// verbatim for the caller.
type APIError struct {
	Code    int64  `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("venue API error [%d]: %s", e.Code, e.Message)
}

// AsAPIError unwraps err into an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// apiErrorFromBody inspects a JSON response body for a venue error object.
// The venue uses 0 for "no code" and 200 for success acknowledgements
// (e.g. cancel-all), so only code != 0 && code != 200 is an error. This
// predicate is intentionally as wide as observed; narrowing it to negative
// codes could swallow a legitimate error class.
func apiErrorFromBody(body []byte) *APIError {
	var probe struct {
		Code *int64 `json:"code"`
		Msg  string `json:"msg"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || probe.Code == nil {
		return nil
	}
	if *probe.Code != 0 && *probe.Code != 200 {
		msg := probe.Msg
		if msg == "" {
			msg = "unknown error"
		}
		return &APIError{Code: *probe.Code, Message: msg}
	}
	return nil
}
