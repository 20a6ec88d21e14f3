package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Row is one labelled value in a Section.
type Row struct {
	Key   string
	Value string
}

// Section is a titled group of rows.
type Section struct {
	Title string
	Rows  []Row
}

// RenderSection renders s with aligned keys.
func RenderSection(s Section) string {
	width := 0
	for _, r := range s.Rows {
		width = max(width, lipgloss.Width(r.Key))
	}

	var b strings.Builder
	b.WriteString(FormatSection(s.Title))
	b.WriteString("\n")
	if len(s.Rows) == 0 {
		b.WriteString(MutedStyle.Render("  (none)"))
		b.WriteString("\n")
	}
	for _, r := range s.Rows {
		b.WriteString("  ")
		b.WriteString(FormatKeyValue(r.Key, r.Value, width))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTable renders rows under headers with padded columns.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = TableCellStyle.Render(style.Width(widths[i]).Render(cell))
		}
		return strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " ")
	}

	var b strings.Builder
	b.WriteString(line(headers, TableHeaderStyle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(line(row, TextStyle))
		b.WriteString("\n")
	}
	return b.String()
}
