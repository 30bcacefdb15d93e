package presenters

import "fmt"

// FormatConversionError reports form text that is not a number.
type FormatConversionError struct {
	// Target names what the text should have been, e.g. "integer for island size".
	Target string
	// Value is the text exactly as submitted.
	Value string
	Err   error
}

func (e *FormatConversionError) Error() string {
	return fmt.Sprintf("Invalid %s: %s", e.Target, e.Value)
}

func (e *FormatConversionError) Unwrap() error {
	return e.Err
}

const (
	targetIslandSize = "integer for island size"
	targetGCRatio    = "ratio for GC"
)
