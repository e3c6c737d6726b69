package llm

import "errors"

var (
	// ErrUnavailable indicates the language model server is unreachable.
	ErrUnavailable = errors.New("language model server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("language model request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid language model output")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("language model retries exhausted")
)
