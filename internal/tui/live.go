// Package tui provides a live terminal viewer that watches a trajectory
// accumulate as the fixed-step loop advances.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/odelab/internal/odes"
	"github.com/san-kum/odelab/internal/rk4"
	"github.com/san-kum/odelab/internal/viz"
)

const stepsPerFrame = 5

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	name string

	scalar  *rk4.Scalar
	coupled *rk4.Coupled

	// carry state between frames; each frame solves a short window that
	// appends onto the accumulated trajectory
	t, y, u, v float64
	tEnd, h    float64

	paused bool
	done   bool
	err    error
}

// NewScalarModel builds a live view over a first-order problem.
func NewScalarModel(p odes.ScalarProblem) tea.Model {
	return model{
		name:   p.Name,
		scalar: rk4.NewScalar(p.F),
		t:      p.T0,
		y:      p.Y0,
		tEnd:   p.TEnd,
		h:      p.H,
	}
}

// NewCoupledModel builds a live view over a second-order problem.
func NewCoupledModel(p odes.CoupledProblem) tea.Model {
	return model{
		name:    p.Name,
		coupled: rk4.NewCoupled(p.F, p.G),
		t:       p.T0,
		u:       p.U0,
		v:       p.V0,
		tEnd:    p.TEnd,
		h:       p.H,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
		return m, nil

	case tickMsg:
		if m.paused || m.done {
			return m, tick()
		}

		windowEnd := m.t + float64(stepsPerFrame)*m.h
		if (m.tEnd-windowEnd)/m.h < 0 {
			windowEnd = m.tEnd
		}

		if m.scalar != nil {
			y, err := m.scalar.Solve(m.t, m.y, windowEnd, m.h)
			m.y, m.err = y, err
		} else {
			u, v, err := m.coupled.Solve(m.t, m.u, m.v, windowEnd, m.h)
			m.u, m.v, m.err = u, v, err
		}
		m.t = windowEnd

		if m.err != nil || (m.tEnd-m.t)/m.h <= 0 {
			m.done = true
		}
		return m, tick()
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	if m.scalar != nil {
		_, ys := m.scalar.Trajectory()
		b.WriteString(renderSeries(m.name+": y(t)", ys))
	} else {
		_, us, vs := m.coupled.Trajectory()
		b.WriteString(renderSeries(m.name+": u(t)", us))
		b.WriteString("\n")
		b.WriteString(renderSeries(m.name+": v(t)", vs))
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(viz.Caption.Render(fmt.Sprintf("failed: %v", m.err)))
	case m.done:
		b.WriteString(viz.Value.Render(fmt.Sprintf("done at t=%.3f", m.t)))
	case m.paused:
		b.WriteString(viz.Caption.Render(fmt.Sprintf("paused at t=%.3f (space resumes)", m.t)))
	default:
		b.WriteString(viz.Caption.Render(fmt.Sprintf("t=%.3f (space pauses, q quits)", m.t)))
	}
	b.WriteString("\n")

	return b.String()
}

func renderSeries(title string, values []float64) string {
	if len(values) < 2 {
		return viz.Panel.Render(title + "\nwaiting for data...")
	}
	graph := asciigraph.Plot(values, asciigraph.Height(8), asciigraph.Width(70))
	return viz.Panel.Render(viz.Title.Render(title) + "\n" + graph)
}

// RunScalar drives the live view for a scalar problem to completion.
func RunScalar(p odes.ScalarProblem) error {
	_, err := tea.NewProgram(NewScalarModel(p)).Run()
	return err
}

// RunCoupled drives the live view for a coupled problem to completion.
func RunCoupled(p odes.CoupledProblem) error {
	_, err := tea.NewProgram(NewCoupledModel(p)).Run()
	return err
}
