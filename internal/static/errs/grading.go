package errs

import (
	"errors"
	"fmt"
)

var (
	InternalError       = errors.New("internal error")
	UnsupportedLanguage = errors.New("unsupported language")
	EmptyTestCaseSet    = errors.New("no test cases selected for execution")
)

// ValidationError is a caller mistake: missing or unsupported input.
// Surfaced as a 400-equivalent, never retried.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

// InvalidConfigError reports a malformed TestCaseConfig, carrying the
// offending range or indices. It belongs to the validation family.
type InvalidConfigError struct {
	Category   string
	RangeStart int
	RangeEnd   int
	Indices    []int
	Count      int
	Reason     string
}

func (e *InvalidConfigError) Error() string {
	if len(e.Indices) > 0 {
		return fmt.Sprintf("invalid test case config for %s cases: %s (indices=%v, available=%d)",
			e.Category, e.Reason, e.Indices, e.Count)
	}
	return fmt.Sprintf("invalid test case config for %s cases: %s (range=[%d,%d], available=%d)",
		e.Category, e.Reason, e.RangeStart, e.RangeEnd, e.Count)
}

// NotFoundError reports an unknown problem or section-problem link.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ExternalServiceError reports a judge backend failure: network error or
// a non-2xx response. Infrastructure fault, 5xx-equivalent.
type ExternalServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("judge %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("judge %s failed with status %d", e.Op, e.StatusCode)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// TimeoutError reports an exhausted poll retry budget. The whole batch is
// considered unusable when this is returned.
type TimeoutError struct {
	Op       string
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("judge %s timed out after %d attempts", e.Op, e.Attempts)
}
