package pattern

import "fmt"

// ValidationError represents a file-level validation error
// (e.g., invalid version number, no patterns).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// PatternError represents an error in a single pattern
// (e.g., invalid regex, duplicate ID, missing fields).
type PatternError struct {
	Index   int    // 0-based index of the pattern in the file
	ID      string // Pattern ID (may be empty if ID field is missing)
	Field   string
	Message string
	Cause   error // Underlying error (e.g., regex compile error)
}

func (e *PatternError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("pattern %q: %s: %s", e.ID, e.Field, e.Message)
	}
	return fmt.Sprintf("pattern[%d]: %s: %s", e.Index, e.Field, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *PatternError) Unwrap() error {
	return e.Cause
}
