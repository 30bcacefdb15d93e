package presenters

import "cpgislands/internal/event"

// Submission is the raw form content a user submits. All fields are the
// text exactly as typed; converting them is the presenter's job.
type Submission struct {
	Sequence       string `json:"sequence"`
	IslandSize     string `json:"island_size"`
	MinimumGCRatio string `json:"minimum_gc_ratio"`
}

// ApplicationView is the top-level window or command.
type ApplicationView interface {
	FileLoadRequested() *event.Event[string]

	Start()
}

// SeqInputView is where a sequence and island definition are entered.
type SeqInputView interface {
	Submitted() *event.Event[Submission]

	SetSeq(text string)
	SetIslandDefinitionDefaults(islandSize, minimumGCRatio string)
	ShowError(message string)
}

// ResultsView lists the islands found and shows their details.
type ResultsView interface {
	FeatureSelected() *event.Event[int]
	GlobalHighlight() *event.Signal

	SetSeq(text string)
	SetLocations(pairs [][2]int)
	ShowFeature(index, start, end int, bases string)
	HighlightLocations(pairs [][2]int)
	ShowError(message string)
}
