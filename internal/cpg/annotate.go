// Package cpg finds candidate CpG islands: fixed-length windows of a DNA
// sequence whose GC ratio meets a threshold.
package cpg

import "math"

// Annotate scans every window of islandSize bases, left to right, and
// returns the windows whose GC percentage is at least minimumGCRatio*100.
// Overlapping windows are reported independently.
//
// Validation happens in this order: islandSize <= 0, islandSize longer than
// the sequence, ratio outside [0, 1].
func Annotate(seq Sequence, islandSize int, minimumGCRatio float64) ([]FeatureLocation, error) {
	if islandSize <= 0 {
		return nil, &InvalidIslandSizeError{IslandSize: islandSize}
	}
	if islandSize > seq.Len() {
		return nil, &IslandSizeExceedsSequenceError{IslandSize: islandSize, SequenceLength: seq.Len()}
	}
	if !validRatio(minimumGCRatio) {
		return nil, &InvalidGCRatioError{Ratio: minimumGCRatio}
	}

	letters := seq.String()
	threshold := minimumGCRatio * 100
	features := []FeatureLocation{}

	gc := 0
	for i := 0; i < islandSize; i++ {
		gc += gcBase(letters[i])
	}
	for start := 0; ; start++ {
		end := start + islandSize
		if GCPercentage(gc, islandSize) >= threshold {
			features = append(features, FeatureLocation{Start: start, End: end})
		}
		if end == len(letters) {
			break
		}
		gc += gcBase(letters[end]) - gcBase(letters[start])
	}
	return features, nil
}

// AnnotateDefinition is Annotate with the parameters taken from def, bundled
// into an Annotation.
func AnnotateDefinition(seq Sequence, def IslandDefinition) (Annotation, error) {
	locations, err := Annotate(seq, def.IslandSize, def.MinimumGCRatio)
	if err != nil {
		return Annotation{}, err
	}
	return Annotation{Sequence: seq, Definition: def, Locations: locations}, nil
}

// WindowCount returns how many windows of islandSize fit in a sequence of
// length n.
func WindowCount(n, islandSize int) int {
	if islandSize <= 0 || islandSize > n {
		return 0
	}
	return n - islandSize + 1
}

// GCPercentage converts a G/C count over size bases into a percentage.
// The ratio is taken before scaling so that a count matching the threshold
// ratio exactly rounds the same way as ratio*100.
func GCPercentage(gcCount, size int) float64 {
	return float64(gcCount) / float64(size) * 100
}

// GCContent returns the G/C percentage of s. Empty input yields 0.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		gc += gcBase(s[i])
	}
	return GCPercentage(gc, len(s))
}

func gcBase(b byte) int {
	switch b {
	case 'G', 'C', 'g', 'c':
		return 1
	}
	return 0
}

func validRatio(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}
