package orchestrator

import (
	"errors"
	"fmt"
)

// ErrGenerationUnavailable means no generation backend is configured.
var ErrGenerationUnavailable = errors.New("generation unavailable")

// GenerationError wraps a backend failure together with the query that caused it.
type GenerationError struct {
	Query string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for query %q: %v", e.Query, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
