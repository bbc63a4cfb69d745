package llm

import (
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// ValidationError reports a misconfigured client or an upstream payload that
// does not have the expected shape. It is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "llm: validation: " + e.Message
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// APIError is a non-2xx answer from the completion endpoint.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("llm: api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("llm: api error: status %d", e.StatusCode)
}

// HTTPStatusCode returns the upstream status code.
func (e *APIError) HTTPStatusCode() int { return e.StatusCode }

// NetworkError is a transport failure, or the last failure once retries are exhausted.
type NetworkError struct {
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("llm: network error after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
