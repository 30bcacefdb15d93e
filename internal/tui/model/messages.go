package model

import (
	tea "github.com/charmbracelet/bubbletea"

	"cpgislands/pkg/logging"
)

// ClearStatusBarMsg clears the status bar once its timer fires.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
