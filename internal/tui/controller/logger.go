package controller

import (
	"cpgislands/internal/tui/model"
	"cpgislands/internal/tui/view"
)

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	model.AddRawLineToActivityLog(m, msg.Entry.String())
	if m.CurrentAppMode == model.ModeLogOverlay {
		refreshLogViewport(m)
	}
}

func refreshLogViewport(m *model.Model) {
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
	m.LogViewport.GotoBottom()
	m.ActivityLogDirty = false
}
