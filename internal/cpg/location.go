package cpg

import "fmt"

// FeatureLocation is the half-open interval [Start, End) of sequence positions.
type FeatureLocation struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns End - Start.
func (l FeatureLocation) Len() int {
	return l.End - l.Start
}

// Pair returns the location as a (start, end) pair.
func (l FeatureLocation) Pair() [2]int {
	return [2]int{l.Start, l.End}
}

func (l FeatureLocation) String() string {
	return fmt.Sprintf("[%d:%d]", l.Start, l.End)
}

// IslandDefinition holds the parameters a window must satisfy to count as
// an island.
type IslandDefinition struct {
	IslandSize     int     `json:"island_size" yaml:"islandSize"`
	MinimumGCRatio float64 `json:"minimum_gc_ratio" yaml:"minimumGCRatio"`
}

// NewIslandDefinition validates the sequence-independent invariants of an
// island definition. The size-versus-length check happens in Annotate.
func NewIslandDefinition(islandSize int, minimumGCRatio float64) (IslandDefinition, error) {
	if islandSize <= 0 {
		return IslandDefinition{}, &InvalidIslandSizeError{IslandSize: islandSize}
	}
	if !validRatio(minimumGCRatio) {
		return IslandDefinition{}, &InvalidGCRatioError{Ratio: minimumGCRatio}
	}
	return IslandDefinition{IslandSize: islandSize, MinimumGCRatio: minimumGCRatio}, nil
}

// Annotation is the outcome of one successful annotation: the scanned
// sequence, the definition used and the qualifying windows in scan order.
type Annotation struct {
	Sequence   Sequence
	Definition IslandDefinition
	Locations  []FeatureLocation
}

// Clone returns a copy whose Locations do not share storage with a.
func (a Annotation) Clone() Annotation {
	if a.Locations != nil {
		a.Locations = append([]FeatureLocation(nil), a.Locations...)
	}
	return a
}

// Pairs returns the locations as (start, end) pairs.
func (a Annotation) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(a.Locations))
	for _, l := range a.Locations {
		pairs = append(pairs, l.Pair())
	}
	return pairs
}

// CoverageMask reports, for each of length positions, whether it lies in
// at least one of the [start, end) pairs. Pairs are clipped to the range.
func CoverageMask(length int, pairs [][2]int) []bool {
	mask := make([]bool, length)
	for _, p := range pairs {
		start, end := max(p[0], 0), min(p[1], length)
		for i := start; i < end; i++ {
			mask[i] = true
		}
	}
	return mask
}
