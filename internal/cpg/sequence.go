package cpg

import (
	"strings"
)

// Alphabet is a fixed set of single-letter nucleotide symbols.
type Alphabet struct {
	letters string
}

// UnambiguousDNA is the canonical four-letter DNA alphabet.
var UnambiguousDNA = Alphabet{letters: "GATC"}

// Letters returns the alphabet's symbols in their canonical order.
func (a Alphabet) Letters() string {
	return a.letters
}

// Contains reports whether b is a member of the alphabet.
func (a Alphabet) Contains(b byte) bool {
	return strings.IndexByte(a.letters, b) >= 0
}

// Verify reports whether every symbol of s belongs to the alphabet.
func (a Alphabet) Verify(s string) bool {
	for i := 0; i < len(s); i++ {
		if !a.Contains(s[i]) {
			return false
		}
	}
	return true
}

// Sequence is an immutable, upper-cased nucleotide sequence whose symbols
// all belong to its alphabet.
type Sequence struct {
	letters  string
	alphabet Alphabet
}

// NewSequence upper-cases raw and validates it against the unambiguous DNA
// alphabet. Invalid input is rejected with an *AlphabetError.
func NewSequence(raw string) (Sequence, error) {
	return NewSequenceWithAlphabet(raw, UnambiguousDNA)
}

// NewSequenceWithAlphabet is NewSequence for an arbitrary alphabet.
func NewSequenceWithAlphabet(raw string, alphabet Alphabet) (Sequence, error) {
	upper := strings.ToUpper(raw)
	if !alphabet.Verify(upper) {
		return Sequence{}, &AlphabetError{Sequence: upper, Letters: alphabet.Letters()}
	}
	return Sequence{letters: upper, alphabet: alphabet}, nil
}

// MustSequence is NewSequence for literals known to be valid. It panics otherwise.
func MustSequence(raw string) Sequence {
	s, err := NewSequence(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the sequence's symbols.
func (s Sequence) String() string {
	return s.letters
}

// Len returns the number of symbols.
func (s Sequence) Len() int {
	return len(s.letters)
}

// Alphabet returns the alphabet the sequence was validated against.
func (s Sequence) Alphabet() Alphabet {
	return s.alphabet
}

// Slice returns the symbols covered by loc. loc must lie within the sequence.
func (s Sequence) Slice(loc FeatureLocation) string {
	return s.letters[loc.Start:loc.End]
}
