package llm

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

// TransientError marks failures worth retrying: network faults, timeouts,
// rate limits, and provider-side errors.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient inference failure: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// FatalError marks failures a retry cannot fix: authentication and
// malformed-request conditions.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return "fatal inference failure: " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// classify wraps a provider error as TransientError or FatalError.
func classify(err error) error {
	if err == nil {
		return nil
	}

	if status, ok := statusCode(err); ok {
		if fatalStatus(status) {
			return &FatalError{Err: err}
		}
		return &TransientError{Err: err}
	}

	// No HTTP status: timeouts, cancellation, DNS and connection faults
	return &TransientError{Err: err}
}

func statusCode(err error) (int, bool) {
	var openaiAPIErr *openai.APIError
	if errors.As(err, &openaiAPIErr) {
		return openaiAPIErr.HTTPStatusCode, true
	}

	var openaiReqErr *openai.RequestError
	if errors.As(err, &openaiReqErr) {
		return openaiReqErr.HTTPStatusCode, true
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode, true
	}

	return 0, false
}

// fatalStatus reports whether the HTTP status indicates an auth or
// malformed-request condition that must not be retried.
func fatalStatus(status int) bool {
	switch status {
	case http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusUnprocessableEntity:
		return true
	}
	return false
}
