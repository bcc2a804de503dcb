// Package tui animates a single orbit of the standard map in the
// terminal: each tick advances the map and drops the new point onto a
// braille canvas, so the invariant curve or chaotic sea builds up live.
package tui

import (
	"fmt"
	"time"

	"github.com/askarov/stdmap/internal/chirikov"
	"github.com/askarov/stdmap/internal/viz"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
	stepsPerTick = 20
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	m        *chirikov.Map
	i, theta float64
	i0, th0  float64
	step     int
	canvas   *viz.Canvas
	running  bool
	rate     int
}

func NewModel(k, i0, theta0 float64, frameRate int) (Model, error) {
	m, err := chirikov.New(k)
	if err != nil {
		return Model{}, err
	}
	if frameRate < 1 {
		frameRate = 30
	}
	return Model{
		m:       m,
		i:       chirikov.Wrap(i0),
		theta:   chirikov.Wrap(theta0),
		i0:      chirikov.Wrap(i0),
		th0:     chirikov.Wrap(theta0),
		canvas:  viz.NewCanvas(canvasWidth, canvasHeight, 0, chirikov.TwoPi, 0, chirikov.TwoPi),
		running: true,
		rate:    frameRate,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.running {
			for n := 0; n < stepsPerTick; n++ {
				m.i, m.theta = m.m.Step(m.i, m.theta)
				m.canvas.Mark(m.theta, m.i)
				m.step++
			}
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.i, m.theta = m.i0, m.th0
			m.step = 0
			m.canvas.Clear()
		case "+", "=":
			m.retune(m.m.K + 0.1)
		case "-":
			m.retune(m.m.K - 0.1)
		}
	}
	return m, nil
}

// retune changes K and restarts the orbit; mixing points from different K
// on one canvas would be misleading.
func (m *Model) retune(k float64) {
	next, err := chirikov.New(k)
	if err != nil {
		return
	}
	m.m = next
	m.i, m.theta = m.i0, m.th0
	m.step = 0
	m.canvas.Clear()
}

func (m Model) View() string {
	status := "running"
	if !m.running {
		status = "paused"
	}
	header := headerStyle.Render("standard map — live orbit")
	stats := fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("K"), valueStyle.Render(fmt.Sprintf("%.3f", m.m.K)),
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d", m.step)),
		labelStyle.Render("(I, θ)"), valueStyle.Render(fmt.Sprintf("(%.3f, %.3f)", m.i, m.theta)),
		labelStyle.Render("status"), valueStyle.Render(status),
	)
	help := helpStyle.Render("space pause · r reset · +/- retune K · q quit")
	return header + "\n" + m.canvas.String() + stats + "\n" + help + "\n"
}
