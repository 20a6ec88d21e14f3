package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Sampler reads the current state to display. It runs off the UI goroutine.
type Sampler func() []Section

type sampleMsg struct {
	sections []Section
}

// WatchModel polls a Sampler on an interval and renders the result.
type WatchModel struct {
	title    string
	interval time.Duration
	sample   Sampler
	sections []Section
	samples  int
	paused   bool
	width    int
	spinner  spinner.Model
}

// NewWatchModel creates a watch view refreshed every interval.
func NewWatchModel(title string, interval time.Duration, sample Sampler) *WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: SpinnerDot,
		FPS:    time.Second / 10,
	}
	s.Style = SpinnerStyle

	return &WatchModel{
		title:    title,
		interval: interval,
		sample:   sample,
		spinner:  s,
	}
}

func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return sampleMsg{sections: m.sample()}
	})
}

// Init implements tea.Model
func (m *WatchModel) Init() tea.Cmd {
	sample := m.sample
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return sampleMsg{sections: sample()}
	})
}

// Update implements tea.Model
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "p", " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		}
	case sampleMsg:
		m.sections = msg.sections
		m.samples++
		if m.paused {
			return m, nil
		}
		return m, m.tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// Samples returns how many samples have been received.
func (m *WatchModel) Samples() int { return m.samples }

// Paused reports whether refreshing is suspended.
func (m *WatchModel) Paused() bool { return m.paused }

// View implements tea.Model
func (m *WatchModel) View() string {
	var b strings.Builder

	status := m.spinner.View() + " live"
	if m.paused {
		status = WarningStyle.Render("paused")
	}
	b.WriteString(TitleStyle.Render(m.title) + "  " + status)
	b.WriteString("\n\n")

	if m.samples == 0 {
		b.WriteString(SubtleStyle.Render("Sampling..."))
		b.WriteString("\n")
	}
	for _, s := range m.sections {
		b.WriteString(RenderSection(s))
		b.WriteString("\n")
	}

	b.WriteString(MutedStyle.Render(fmt.Sprintf("every %s · p pause · q quit", m.interval)))
	return b.String()
}
