// Package tui implements the "cube solve --watch" live view: a bubbletea
// program that consumes a solve.Facade progress channel and renders each
// update on it.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/GRVigo/speedsolve/internal/solve"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stageLine is one row of the live log: a stage name and the engine state it
// reached, or an error if the stage (or the whole solve) failed.
type stageLine struct {
	name string
	note string
	fail bool
}

type progressMsg solve.Progress
type finishedMsg struct {
	resp solve.Response
	err  error
}

// watchModel drives the tea.Program for the lifetime of one method solve.
type watchModel struct {
	method   solve.Method
	progress <-chan solve.Progress
	wait     func() (solve.Response, error)

	lines    []stageLine
	finished bool
	report   string
	failErr  error
	quitting bool
}

// Run starts a method pipeline solve through f and blocks, rendering a
// bubbletea full-screen view of each progress update. It returns the
// finished Report text (or the error DescribeFailure would render).
func Run(ctx context.Context, f *solve.Facade, req solve.Request) (string, error) {
	progress, wait := f.Solve(ctx, req)
	m := &watchModel{method: req.Method, progress: progress, wait: wait}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	fm := final.(*watchModel)
	if fm.failErr != nil {
		return "", fm.failErr
	}
	return fm.report, nil
}

func (m *watchModel) Init() tea.Cmd {
	return m.waitForNext()
}

// waitForNext returns a tea.Cmd that blocks on the next progress channel
// receive (or the final result once the channel closes), matching the
// source's own channel-draining tea.Cmd pattern.
func (m *watchModel) waitForNext() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.progress
		if ok {
			return progressMsg(p)
		}
		resp, err := m.wait()
		return finishedMsg{resp: resp, err: err}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case progressMsg:
		line := stageLine{name: msg.Stage, note: msg.State.String()}
		if msg.Err != nil {
			line.note = msg.Err.Error()
			line.fail = true
		}
		m.lines = append(m.lines, line)
		return m, m.waitForNext()

	case finishedMsg:
		m.finished = true
		if msg.err != nil {
			m.failErr = msg.err
		} else {
			m.report = msg.resp.Report.String()
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Solving (%s)", m.method)))
	b.WriteString("\n\n")

	for _, l := range m.lines {
		if l.fail {
			b.WriteString(errorStyle.Render(fmt.Sprintf("%-14s %s", l.name, l.note)))
		} else {
			b.WriteString(stageStyle.Render(fmt.Sprintf("%-14s %s", l.name, l.note)))
		}
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString("\n")
		if m.failErr != nil {
			b.WriteString(errorStyle.Render(m.failErr.Error()))
		} else {
			b.WriteString(doneStyle.Render("done"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}
