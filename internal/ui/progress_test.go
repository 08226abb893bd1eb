package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rsyn/internal/roundtrip"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan roundtrip.Event)
	m := NewProgressModel("roundtrip", []string{"/abs/a.rs", "/abs/b.rs"}, []string{"a.rs", "b.rs"}, events).(*progressModel)

	m.Update(eventMsg{File: "/abs/a.rs", Stage: roundtrip.StageRender})
	m.Update(eventMsg{File: "/abs/b.rs", Stage: roundtrip.StageDone, Verdict: roundtrip.StatusMismatch})
	m.Update(eventMsg{File: "/abs/unknown.rs", Stage: roundtrip.StageDone, Verdict: roundtrip.StatusPass})

	if got := itemLabel(m.items[0]); got != "rendering" {
		t.Fatalf("a.rs label = %q, want rendering", got)
	}
	if got := itemLabel(m.items[1]); got != "mismatch" {
		t.Fatalf("b.rs label = %q, want mismatch", got)
	}
	if m.failed != 1 {
		t.Fatalf("failed = %d, want 1", m.failed)
	}
	if got := m.percent(); got != 0.75 {
		t.Fatalf("percent = %v, want 0.75", got)
	}

	view := m.View()
	for _, want := range []string{"roundtrip (1 failed)", "a.rs", "b.rs"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "/abs/") {
		t.Fatalf("view must show display names:\n%s", view)
	}
}

func TestProgressModelQuitsWhenEventsClose(t *testing.T) {
	events := make(chan roundtrip.Event)
	close(events)
	m := NewProgressModel("roundtrip", []string{"a.rs"}, nil, events).(*progressModel)

	msg := m.listenForEvent()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	_, cmd := m.Update(msg)
	if !m.done || cmd == nil {
		t.Fatalf("model must finish on closed channel")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit command")
	}
	if !strings.Contains(m.View(), "done: roundtrip") {
		t.Fatalf("view must mark completion:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("averyverylongname.rs", 10); got != "averyve..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("ab", 10); got != "ab" {
		t.Fatalf("truncate = %q", got)
	}
}
