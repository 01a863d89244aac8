package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Future-Glass Palette
	colorNeonGreen  = lipgloss.Color("#00FF99") // Action / success
	colorNeonPurple = lipgloss.Color("#874BFD") // Header / border
	colorTextMain   = lipgloss.Color("#E2E8F0")
	colorTextSub    = lipgloss.Color("#64748B")
	colorDanger     = lipgloss.Color("#FF0055")
	colorWarning    = lipgloss.Color("#F59E0B")
	colorPanel      = lipgloss.Color("#B2BBCC")

	dimStyle  = lipgloss.NewStyle().Foreground(colorTextSub)
	special   = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	danger    = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	warning   = lipgloss.NewStyle().Foreground(colorWarning)
	textStyle = lipgloss.NewStyle().Foreground(colorTextMain)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorNeonPurple).
			Bold(true).
			Padding(0, 1)

	canvasStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTextSub)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPanel).
			Padding(1, 2).
			Margin(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorTextMain).
			Bold(true).
			MarginBottom(1)

	// Canvas cell styles.
	edgeStyle       = lipgloss.NewStyle().Foreground(colorTextSub)
	nodeStyle       = lipgloss.NewStyle().Foreground(colorTextMain)
	selectedStyle   = lipgloss.NewStyle().Foreground(colorNeonGreen).Bold(true)
	matchStyle      = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	focusStyle      = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("205"))
	connectSrcStyle = lipgloss.NewStyle().Foreground(colorNeonPurple).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(colorTextSub).Render
)
