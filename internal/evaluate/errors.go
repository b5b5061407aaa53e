package evaluate

import (
	"encoding/json"
	"fmt"
)

// ErrUnavailable indicates the scoring provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evaluator unavailable: %v", e.Err)
	}
	return "evaluator unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit indicates the scoring provider rejected the request for
// rate limiting.
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("evaluator rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidVerdict indicates the model returned output that does not
// conform to the verdict schema.
type ErrInvalidVerdict struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidVerdict) Error() string {
	return fmt.Sprintf("invalid evaluation verdict: %v", e.Err)
}

func (e *ErrInvalidVerdict) Unwrap() error { return e.Err }
