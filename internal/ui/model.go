// Package ui is the brewctl status dashboard: a single screen that
// collects the environment snapshot in the background and renders it
// with refresh/quit keys.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"brewctl/internal/status"
)

type statusMsg struct {
	rep status.Report
	err error
}

type model struct {
	spin     spinner.Model
	loading  bool
	rep      status.Report
	err      error
	quitting bool
}

// InitialModel builds the dashboard model.
func InitialModel() model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return model{spin: sp, loading: true}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, collectCmd())
}

// collectCmd gathers the status snapshot off the UI loop.
func collectCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		rep, err := status.Collect(ctx, nil)
		return statusMsg{rep: rep, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spin.Tick, collectCmd())
		}
	case statusMsg:
		m.loading = false
		m.rep = msg.rep
		m.err = msg.err
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}
