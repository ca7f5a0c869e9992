package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rig/internal/driver"
)

// checkModel renders per-file progress of a directory check.
type checkModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	bar      progress.Model
	rows     []row
	byPath   map[string]int
	finished int
	errors   int
	width    int
	done     bool
}

type row struct {
	path   string
	stage  driver.Stage
	status driver.Status
}

type eventMsg driver.Event
type closedMsg struct{}

// NewProgressModel returns a Bubble Tea model fed by events. The model quits
// once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	return newCheckModel(title, files, events)
}

func newCheckModel(title string, files []string, events <-chan driver.Event) *checkModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 60

	m := &checkModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]row, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, f := range files {
		m.rows[i] = row{path: f, stage: driver.StageLoad, status: driver.StatusQueued}
		m.byPath[f] = i
	}
	return m
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case closedMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
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
			m.bar.Width = max(10, msg.Width-20)
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *checkModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	head := lipgloss.NewStyle().Bold(true)
	if m.done {
		b.WriteString(head.Render("✓ " + m.title))
	} else {
		b.WriteString(m.spinner.View() + " " + head.Render(m.title))
	}
	b.WriteString("\n\n")

	nameWidth := max(20, m.width-16)
	for _, r := range m.rows {
		label := rowLabel(r)
		fmt.Fprintf(&b, "  %s %s\n", labelStyle(r.status).Render(fmt.Sprintf("%10s", label)), fit(r.path, nameWidth))
	}
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	fmt.Fprintf(&b, " %d/%d", m.finished, len(m.rows))
	if m.errors > 0 {
		b.WriteString(labelStyle(driver.StatusError).Render(fmt.Sprintf(" (%d failed)", m.errors)))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *checkModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *checkModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	r := &m.rows[i]
	if terminal(r.status) {
		return nil
	}
	r.stage, r.status = ev.Stage, ev.Status
	if terminal(ev.Status) {
		m.finished++
		if ev.Status == driver.StatusError {
			m.errors++
		}
	}

	var total float64
	for _, r := range m.rows {
		total += weight(r)
	}
	return m.bar.SetPercent(total / float64(len(m.rows)))
}

func terminal(s driver.Status) bool {
	return s == driver.StatusDone || s == driver.StatusError
}

// weight оценивает долю пройденного пайплайна для файла.
func weight(r row) float64 {
	if terminal(r.status) {
		return 1
	}
	switch r.stage {
	case driver.StageLex:
		return 0.25
	case driver.StageParse:
		return 0.5
	case driver.StageSema:
		return 0.75
	default:
		return 0
	}
}

func rowLabel(r row) string {
	if r.status != driver.StatusWorking {
		return string(r.status)
	}
	switch r.stage {
	case driver.StageLex:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	case driver.StageSema:
		return "checking"
	default:
		return "loading"
	}
}

func labelStyle(s driver.Status) lipgloss.Style {
	switch s {
	case driver.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case driver.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case driver.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
}

// fit shortens value to width display cells.
func fit(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// Run drives the progress view on out until events is closed or ctx is done.
func Run(ctx context.Context, out io.Writer, title string, files []string, events <-chan driver.Event) error {
	p := tea.NewProgram(newCheckModel(title, files, events),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)
	_, err := p.Run()
	return err
}
