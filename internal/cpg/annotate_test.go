package cpg

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate_Example(t *testing.T) {
	seq := MustSequence("ATATGCGCATAT")

	locations, err := Annotate(seq, 4, 0.5)
	require.NoError(t, err)

	assert.Equal(t, []FeatureLocation{
		{Start: 2, End: 6},
		{Start: 3, End: 7},
		{Start: 4, End: 8},
		{Start: 5, End: 9},
		{Start: 6, End: 10},
	}, locations)
}

func TestAnnotate_Validation(t *testing.T) {
	seq := MustSequence("GCGCAT")

	tests := []struct {
		name       string
		islandSize int
		ratio      float64
		check      func(t *testing.T, err error)
	}{
		{
			name:       "zero island size",
			islandSize: 0,
			ratio:      0.5,
			check: func(t *testing.T, err error) {
				var target *InvalidIslandSizeError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 0, target.IslandSize)
			},
		},
		{
			name:       "negative island size",
			islandSize: -3,
			ratio:      2,
			check: func(t *testing.T, err error) {
				var target *InvalidIslandSizeError
				require.True(t, errors.As(err, &target), "size is checked before ratio")
				assert.Equal(t, -3, target.IslandSize)
			},
		},
		{
			name:       "island longer than sequence",
			islandSize: 7,
			ratio:      1.5,
			check: func(t *testing.T, err error) {
				var target *IslandSizeExceedsSequenceError
				require.True(t, errors.As(err, &target), "length is checked before ratio")
				assert.Equal(t, 7, target.IslandSize)
				assert.Equal(t, 6, target.SequenceLength)
			},
		},
		{
			name:       "ratio above one",
			islandSize: 2,
			ratio:      1.01,
			check: func(t *testing.T, err error) {
				var target *InvalidGCRatioError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, 1.01, target.Ratio)
			},
		},
		{
			name:       "negative ratio",
			islandSize: 2,
			ratio:      -0.1,
			check: func(t *testing.T, err error) {
				var target *InvalidGCRatioError
				require.True(t, errors.As(err, &target))
			},
		},
		{
			name:       "NaN ratio",
			islandSize: 2,
			ratio:      math.NaN(),
			check: func(t *testing.T, err error) {
				var target *InvalidGCRatioError
				require.True(t, errors.As(err, &target))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations, err := Annotate(seq, tt.islandSize, tt.ratio)
			require.Error(t, err)
			assert.Nil(t, locations)
			tt.check(t, err)
		})
	}
}

func TestAnnotate_ErrorMessages(t *testing.T) {
	_, err := Annotate(MustSequence("ATGC"), 0, 0.5)
	assert.EqualError(t, err, "Invalid island size: 0")

	_, err = Annotate(MustSequence("ATGC"), 5, 0.5)
	assert.EqualError(t, err, "Island size (5) exceeds sequence length (4)")

	_, err = Annotate(MustSequence("ATGC"), 2, 3)
	assert.EqualError(t, err, "Invalid GC ratio: 3 (must be between 0 and 1)")
}

func TestAnnotate_BoundaryIslandSize(t *testing.T) {
	seq := MustSequence("GCAT")

	locations, err := Annotate(seq, seq.Len(), 0)
	require.NoError(t, err)
	assert.Equal(t, []FeatureLocation{{Start: 0, End: 4}}, locations, "exactly one window evaluated")

	_, err = Annotate(seq, seq.Len()+1, 0)
	var target *IslandSizeExceedsSequenceError
	assert.True(t, errors.As(err, &target))
}

func TestAnnotate_ThresholdIsInclusive(t *testing.T) {
	// 2 of 4 bases are G/C: exactly 50%.
	locations, err := Annotate(MustSequence("GCAT"), 4, 0.5)
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	// 3 of 10 against 0.3: both sides round to the same value.
	locations, err = Annotate(MustSequence("GCGAAAAAAA"), 10, 0.3)
	require.NoError(t, err)
	assert.Equal(t, []FeatureLocation{{Start: 0, End: 10}}, locations)

	locations, err = Annotate(MustSequence("GAA"), 3, 1.0/3)
	require.NoError(t, err)
	assert.Len(t, locations, 1)

	locations, err = Annotate(MustSequence("GCAT"), 4, 0.51)
	require.NoError(t, err)
	assert.Empty(t, locations)
}

func TestAnnotate_ThresholdIsExact(t *testing.T) {
	// 1 of 3 is 33.33...%; any ratio above 1/3 must exclude the window.
	for _, ratio := range []float64{0.33333333334, 0.3333333333334, 0.34} {
		locations, err := Annotate(MustSequence("GAA"), 3, ratio)
		require.NoError(t, err)
		assert.Empty(t, locations, "ratio %v", ratio)
	}
}

func TestAnnotate_EmptyResultIsNotNil(t *testing.T) {
	locations, err := Annotate(MustSequence("ATATATAT"), 3, 0.1)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestAnnotate_Properties(t *testing.T) {
	inputs := []string{
		"ATATGCGCATAT",
		"GGGGCCCCAAAATTTTGCGCGCGCATATATAT",
		"CGATCGATCGTAGCTAGCTAGCTGACGTAGCTAGCGGCGCGCGATATATCG",
		"A",
		"GC",
	}
	ratios := []float64{0, 0.25, 0.5, 0.6, 0.75, 1}

	for _, raw := range inputs {
		seq := MustSequence(raw)
		for size := 1; size <= seq.Len(); size++ {
			for _, ratio := range ratios {
				locations, err := Annotate(seq, size, ratio)
				require.NoError(t, err)

				windows := WindowCount(seq.Len(), size)
				assert.LessOrEqual(t, len(locations), windows)

				prev := -1
				for _, loc := range locations {
					assert.Equal(t, size, loc.Len())
					assert.GreaterOrEqual(t, loc.Start, 0)
					assert.LessOrEqual(t, loc.End, seq.Len())
					assert.Greater(t, loc.Start, prev, "ascending, no duplicate starts")
					prev = loc.Start

					assert.GreaterOrEqual(t, GCContent(seq.Slice(loc)), ratio*100)
				}

				if ratio == 0 {
					assert.Len(t, locations, windows, "every window qualifies at ratio 0")
				}

				again, err := Annotate(seq, size, ratio)
				require.NoError(t, err)
				assert.Equal(t, locations, again, "deterministic")
			}
		}
	}
}

func TestAnnotate_MatchesNaiveScan(t *testing.T) {
	seq := MustSequence("CGATCGATCGTAGCTAGCTAGCTGACGTAGCTAGCGGCGCGCGATATATCG")

	for size := 1; size <= 12; size++ {
		for _, ratio := range []float64{0.3, 0.5, 0.7} {
			var naive []FeatureLocation
			for start := 0; start+size <= seq.Len(); start++ {
				window := seq.String()[start : start+size]
				gc := strings.Count(window, "G") + strings.Count(window, "C")
				if float64(gc)/float64(size)*100 >= ratio*100 {
					naive = append(naive, FeatureLocation{Start: start, End: start + size})
				}
			}

			got, err := Annotate(seq, size, ratio)
			require.NoError(t, err)
			if naive == nil {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, naive, got, "size=%d ratio=%v", size, ratio)
		}
	}
}

func TestAnnotate_CaseInsensitive(t *testing.T) {
	upper, err := NewSequence("ATATGCGCATAT")
	require.NoError(t, err)
	lower, err := NewSequence("atatgcgcatat")
	require.NoError(t, err)
	mixed, err := NewSequence("ATatgcGCAtaT")
	require.NoError(t, err)

	want, err := Annotate(upper, 4, 0.5)
	require.NoError(t, err)

	for _, seq := range []Sequence{lower, mixed} {
		got, err := Annotate(seq, 4, 0.5)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAnnotateDefinition(t *testing.T) {
	def, err := NewIslandDefinition(4, 0.5)
	require.NoError(t, err)

	annotation, err := AnnotateDefinition(MustSequence("ATATGCGCATAT"), def)
	require.NoError(t, err)

	assert.Equal(t, "ATATGCGCATAT", annotation.Sequence.String())
	assert.Equal(t, def, annotation.Definition)
	assert.Equal(t, [][2]int{{2, 6}, {3, 7}, {4, 8}, {5, 9}, {6, 10}}, annotation.Pairs())

	_, err = AnnotateDefinition(MustSequence("AT"), def)
	assert.Error(t, err)
}

func TestNewIslandDefinition(t *testing.T) {
	_, err := NewIslandDefinition(0, 0.5)
	var sizeErr *InvalidIslandSizeError
	assert.True(t, errors.As(err, &sizeErr))

	_, err = NewIslandDefinition(200, 1.2)
	var ratioErr *InvalidGCRatioError
	assert.True(t, errors.As(err, &ratioErr))

	def, err := NewIslandDefinition(200, 0.5)
	require.NoError(t, err)
	assert.Equal(t, IslandDefinition{IslandSize: 200, MinimumGCRatio: 0.5}, def)
}

func TestWindowCount(t *testing.T) {
	assert.Equal(t, 9, WindowCount(12, 4))
	assert.Equal(t, 1, WindowCount(4, 4))
	assert.Equal(t, 0, WindowCount(4, 5))
	assert.Equal(t, 0, WindowCount(4, 0))
}

func TestGCContent(t *testing.T) {
	assert.Equal(t, 0.0, GCContent(""))
	assert.Equal(t, 50.0, GCContent("GCAT"))
	assert.Equal(t, 100.0, GCContent("gcGC"))
}
