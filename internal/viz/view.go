package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model displays an already-plotted angle series. It holds the data
// read-only; dismissing the viewer changes nothing on disk.
type Model struct {
	times  []float64
	angles []float64
	width  int
	height int
}

// NewModel wraps the series for terminal display. Non-finite angles are
// stored as NaN, which the graph skips.
func NewModel(times, angles []float64) Model {
	cleaned := make([]float64, len(angles))
	for i, a := range angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			cleaned[i] = math.NaN()
		} else {
			cleaned[i] = a
		}
	}
	return Model{
		times:  times,
		angles: cleaned,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles quit keys and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the series as an ASCII chart with a summary block below.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("DRIVEN DAMPED OSCILLATOR") + "\n")

	graphWidth := m.width - 14
	if graphWidth < 20 {
		graphWidth = 20
	}
	graphHeight := m.height - 12
	if graphHeight < 4 {
		graphHeight = 4
	}

	lo, hi, drawable := bounds(m.angles)
	if !drawable {
		s.WriteString(valueStyle.Render("no finite samples to display") + "\n")
	} else {
		graph := asciigraph.Plot(m.angles,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("Angle (rad)"),
		)
		s.WriteString(graphStyle.Render(graph) + "\n")
	}

	s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(fmt.Sprintf("%d", len(m.angles))) + "\n")
	if len(m.times) > 0 {
		last := len(m.times) - 1
		s.WriteString(labelStyle.Render("Time span") + valueStyle.Render(fmt.Sprintf("%.2fs to %.2fs", m.times[0], m.times[last])) + "\n")
	}
	if drawable {
		s.WriteString(labelStyle.Render("Angle range") + valueStyle.Render(fmt.Sprintf("[%.4f, %.4f] rad", lo, hi)) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nQ:Quit"))
	return s.String()
}

// bounds returns the extrema of the finite values. ok is false when the
// slice holds no finite value at all.
func bounds(vals []float64) (lo, hi float64, ok bool) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok || v < lo {
			lo = v
		}
		if !ok || v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}

// Show blocks until the viewer is dismissed.
func Show(times, angles []float64) error {
	p := tea.NewProgram(NewModel(times, angles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("viz: %w", err)
	}
	return nil
}
