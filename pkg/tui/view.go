package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DrSkyle/graphpad/pkg/canvas"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := strings.Builder{}
	s.WriteString(titleStyle.Render("GRAPHPAD"))
	s.WriteString(dimStyle.Render(fmt.Sprintf(" [%s]", m.mode)))
	if f := m.filter.String(); f != "" {
		s.WriteString(warning.Render(fmt.Sprintf("  [HIGHLIGHT: %s]", f)))
	}
	s.WriteString("\n")

	body := m.viewCanvas()
	if m.frame.Panel.Visible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.viewPanel())
	}
	s.WriteString(body)
	s.WriteString("\n")
	s.WriteString(m.viewEdges())

	if m.mode == ModeQuery {
		s.WriteString("\n" + m.query.View())
	}
	if m.statusMsg != "" {
		s.WriteString("\n " + special.Render(m.statusMsg))
	}
	s.WriteString("\n" + helpStyle(m.helpLine()))
	return s.String()
}

func (m Model) viewCanvas() string {
	grid := canvas.Draw(m.proj, m.frame)

	lines := make([]string, grid.Height)
	for row := 0; row < grid.Height; row++ {
		var b strings.Builder
		for _, run := range grid.Runs(row) {
			b.WriteString(m.styleRun(run))
		}
		lines[row] = b.String()
	}
	return canvasStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) styleRun(run canvas.Run) string {
	switch run.Kind {
	case canvas.KindEdge:
		return edgeStyle.Render(run.Text)
	case canvas.KindNode, canvas.KindSelected:
		style := nodeStyle
		switch {
		case run.NodeID == m.connectFrom && m.mode == ModeConnect:
			style = connectSrcStyle
		case run.Kind == canvas.KindSelected:
			style = selectedStyle
		case m.matches[run.NodeID]:
			style = matchStyle
		}
		if run.NodeID == m.focusID {
			style = style.Inherit(focusStyle)
		}
		return style.Render(run.Text)
	default:
		return run.Text
	}
}

// viewPanel renders the node editor form for the current selection.
func (m Model) viewPanel() string {
	p := m.frame.Panel

	title := panelTitleStyle.Render("Title : " + p.Title)

	field := m.field.View()
	if m.mode != ModeEditLabel {
		field = textStyle.Render(p.Field)
	}
	fieldBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorTextSub).
		Width(24).
		Render(field)

	actions := lipgloss.JoinHorizontal(lipgloss.Top,
		special.Render("[e]dit  [enter] Update"),
		"  ",
		danger.Render("[d] Delete"),
	)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, fieldBox, actions))
}

func (m Model) viewEdges() string {
	if len(m.frame.Edges) == 0 {
		return dimStyle.Render(" No edges.")
	}

	s := strings.Builder{}
	s.WriteString(dimStyle.Render(fmt.Sprintf(" %-10s | %s", "EDGE", "SOURCE → TARGET")))
	for _, e := range m.frame.Edges {
		src, _ := m.frame.Node(e.Source)
		dst, _ := m.frame.Node(e.Target)
		s.WriteString("\n")
		s.WriteString(fmt.Sprintf(" %-10s | %s → %s", e.ID, src.Label, dst.Label))
	}
	return s.String()
}

func (m Model) helpLine() string {
	switch m.mode {
	case ModeConnect:
		return " tab: pick target • enter: connect • esc: cancel"
	case ModeEditLabel:
		return " enter: update • esc: back"
	case ModeQuery:
		return " enter: apply • esc: cancel"
	}
	help := " tab: focus • enter: select • n: new • c: connect • hjkl: move • x: remove • /: highlight • q: quit"
	if m.frame.Panel.Visible {
		help += " • e: edit label • d: delete"
	}
	return help
}
