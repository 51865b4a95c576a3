package domain

import (
	"errors"
	"fmt"
)

// Common domain errors. None of them escapes the engine as a thrown
// failure: the coordinator resolves every one of them to a no-data or
// fallback result.
var (
	// ErrNoData indicates the snapshot or schema is missing a required
	// collection.
	ErrNoData = errors.New("no score data")

	// ErrUnknownDifficulty indicates the requested difficulty is absent
	// from the benchmark schema.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrUnregisteredStrategy indicates a scoring-method identifier with
	// no registered strategy factory.
	ErrUnregisteredStrategy = errors.New("unregistered scoring method")
)

// AlignmentError reports that the score source and the schema disagree
// about the benchmark's shape beyond the placeholder policy: the source
// carries more entries than the schema declares slots.
type AlignmentError struct {
	// Difficulty is the schema tier being aligned.
	Difficulty string

	// Category names the category where the divergence was detected.
	// Empty when the category collections themselves diverge.
	Category string

	// Detail describes the count mismatch.
	Detail string
}

// Error implements the error interface for AlignmentError.
func (e *AlignmentError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("alignment error in %q: %s", e.Difficulty, e.Detail)
	}
	return fmt.Sprintf("alignment error in %q category %q: %s", e.Difficulty, e.Category, e.Detail)
}
