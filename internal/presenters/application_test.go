package presenters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cpgislands/internal/event"
)

func TestApplicationPresenter(t *testing.T) {
	model := newMockApplicationModel()
	view := newFakeView()
	p := NewApplicationPresenter(model, view)
	p.RegisterForEvents()

	model.On("LoadFile", "/data/seq.gb").Return().Once()

	event.Emit(model.Started())
	view.FileLoadRequested().Fire("/data/seq.gb")

	assert.Equal(t, []string{"start"}, view.calls)
	model.AssertExpectations(t)

	p.Close()
	event.Emit(model.Started())
	assert.Equal(t, []string{"start"}, view.calls)
}
