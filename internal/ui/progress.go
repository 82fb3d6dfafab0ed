// Package ui renders the inline scan progress line shown on a tty.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/enratl/mdu/internal/scanner"
)

// ProgressMsg carries a fresh counter snapshot to the progress view.
type ProgressMsg scanner.Progress

// DoneMsg tells the progress view the scan has finished.
type DoneMsg struct{}

// Progress is a single-line inline view of a running scan.
type Progress struct {
	spinner spinner.Model
	snap    scanner.Progress
	done    bool
}

// NewProgress creates the progress view.
func NewProgress() Progress {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return Progress{spinner: s}
}

// Init starts the spinner animation.
func (p Progress) Init() tea.Cmd {
	return p.spinner.Tick
}

// Update handles messages.
func (p Progress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		p.snap = scanner.Progress(msg)
		return p, nil
	case DoneMsg:
		p.done = true
		return p, tea.Quit
	case tea.KeyMsg:
		// The scan is not interruptible; ignore input.
		return p, nil
	default:
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
}

// View renders the progress line, e.g. "⣾ 1203 files, 87 dirs (1.2 GiB)".
func (p Progress) View() string {
	if p.done {
		return ""
	}
	return fmt.Sprintf("%s%s %s\n",
		p.spinner.View(),
		CountStyle.Render(fmt.Sprintf("%d files, %d dirs", p.snap.Files, p.snap.Dirs)),
		DimStyle.Render("("+humanize.IBytes(uint64(p.snap.Blocks)*512)+")"),
	)
}
