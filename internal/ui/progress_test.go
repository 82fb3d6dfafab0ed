package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enratl/mdu/internal/scanner"
)

func TestProgressView(t *testing.T) {
	var m tea.Model = NewProgress()

	m, _ = m.Update(ProgressMsg(scanner.Progress{Files: 3, Dirs: 2, Blocks: 16}))

	view := m.View()
	if !strings.Contains(view, "3 files") {
		t.Errorf("expected file count in view, got %q", view)
	}
	if !strings.Contains(view, "2 dirs") {
		t.Errorf("expected dir count in view, got %q", view)
	}
}

func TestProgressDone(t *testing.T) {
	var m tea.Model = NewProgress()

	m, cmd := m.Update(DoneMsg{})
	if cmd == nil {
		t.Fatal("expected quit command on DoneMsg")
	}
	if view := m.View(); view != "" {
		t.Errorf("expected empty view after done, got %q", view)
	}
}
