package viz

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	AxisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	WarnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))
)

func header(title string) string {
	return TitleStyle.Render(title) + "\n"
}

func axisLine(x, y string) string {
	return AxisStyle.Render("x "+x+"   y "+y) + "\n"
}
