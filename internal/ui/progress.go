package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rsyn/internal/roundtrip"
)

type progressModel struct {
	title   string
	events  <-chan roundtrip.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	failed  int
	width   int
	done    bool
}

type fileItem struct {
	path    string
	display string
	stage   roundtrip.Stage
	verdict roundtrip.Status
}

type eventMsg roundtrip.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders round trip progress.
// files are runner paths; display, when non-nil, holds the names to show.
func NewProgressModel(title string, files, display []string, events <-chan roundtrip.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		name := file
		if i < len(display) {
			name = display[i]
		}
		items = append(items, fileItem{path: file, display: name, stage: roundtrip.StageQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(roundtrip.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.failed > 0 {
		header = fmt.Sprintf("%s (%d failed)", header, m.failed)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := max(m.width-statusWidth-4, 20)
	for _, item := range m.items {
		status := itemLabel(item)
		b.WriteString("  ")
		b.WriteString(styleStatus(item).Render(fmt.Sprintf("%12s", status)))
		b.WriteString(" ")
		b.WriteString(truncate(item.display, nameWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev roundtrip.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	m.items[idx].stage = ev.Stage
	if ev.Stage == roundtrip.StageDone {
		m.items[idx].verdict = ev.Verdict
		if ev.Verdict.Failed() {
			m.failed++
		}
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		total += progressFromStage(item.stage)
	}
	return total / float64(len(m.items))
}

func progressFromStage(stage roundtrip.Stage) float64 {
	switch stage {
	case roundtrip.StageParse:
		return 0.2
	case roundtrip.StageRender:
		return 0.5
	case roundtrip.StageReparse:
		return 0.7
	case roundtrip.StageDone:
		return 1.0
	default:
		return 0.0
	}
}

func itemLabel(item fileItem) string {
	switch item.stage {
	case roundtrip.StageParse:
		return "parsing"
	case roundtrip.StageRender:
		return "rendering"
	case roundtrip.StageReparse:
		return "reparsing"
	case roundtrip.StageDone:
		return string(item.verdict)
	default:
		return "queued"
	}
}

func styleStatus(item fileItem) lipgloss.Style {
	switch {
	case item.stage == roundtrip.StageDone && item.verdict.Failed():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case item.stage == roundtrip.StageDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case item.stage == roundtrip.StageQueued:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
