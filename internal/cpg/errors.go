package cpg

import "fmt"

// AlphabetError is returned when a sequence contains symbols outside the
// accepted alphabet.
type AlphabetError struct {
	Sequence string
	Letters  string
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("Sequence letters not within alphabet:\n  Alphabet: %s\n  Sequence: %s", e.Letters, e.Sequence)
}

// InvalidIslandSizeError is returned for island sizes that are not positive.
type InvalidIslandSizeError struct {
	IslandSize int
}

func (e *InvalidIslandSizeError) Error() string {
	return fmt.Sprintf("Invalid island size: %d", e.IslandSize)
}

// IslandSizeExceedsSequenceError is returned when the island is longer than
// the sequence being scanned.
type IslandSizeExceedsSequenceError struct {
	IslandSize     int
	SequenceLength int
}

func (e *IslandSizeExceedsSequenceError) Error() string {
	return fmt.Sprintf("Island size (%d) exceeds sequence length (%d)", e.IslandSize, e.SequenceLength)
}

// InvalidGCRatioError is returned for GC ratios outside [0, 1].
type InvalidGCRatioError struct {
	Ratio float64
}

func (e *InvalidGCRatioError) Error() string {
	return fmt.Sprintf("Invalid GC ratio: %g (must be between 0 and 1)", e.Ratio)
}
