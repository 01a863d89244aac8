package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DrSkyle/graphpad/pkg/canvas"
	"github.com/DrSkyle/graphpad/pkg/config"
	"github.com/DrSkyle/graphpad/pkg/editor"
	"github.com/DrSkyle/graphpad/pkg/graph"
	"github.com/DrSkyle/graphpad/pkg/highlight"
)

type Mode int

const (
	ModeNavigate Mode = iota
	ModeConnect
	ModeEditLabel
	ModeQuery
)

func (m Mode) String() string {
	switch m {
	case ModeConnect:
		return "CONNECT"
	case ModeEditLabel:
		return "EDIT"
	case ModeQuery:
		return "QUERY"
	default:
		return "NAVIGATE"
	}
}

// Model is the terminal interaction surface. It turns key presses into
// session gestures and re-reads the session frame after each one.
type Model struct {
	session *editor.Session
	proj    canvas.Projection
	step    float64
	logger  *slog.Logger

	// state
	frame       editor.Frame
	mode        Mode
	focusID     string // keyboard focus ring; not the selection
	connectFrom string
	quitting    bool
	width       int
	height      int

	// panel + query inputs
	field textinput.Model
	query textinput.Model

	filter  *highlight.Filter
	matches map[string]bool

	// feedback
	statusMsg string
}

// NewModel builds the surface for s. A highlight expression from cfg that
// fails to compile is reported in the status line, not returned.
func NewModel(s *editor.Session, cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	field := textinput.New()
	field.Placeholder = "label"
	field.Prompt = ""
	field.CharLimit = 64

	query := textinput.New()
	query.Placeholder = `out_degree > 0 && label.startsWith("a")`
	query.Prompt = "/ "

	m := Model{
		session: s,
		proj: canvas.Projection{
			Width:  cfg.Canvas.Width,
			Height: cfg.Canvas.Height,
			ScaleX: cfg.Canvas.ScaleX,
			ScaleY: cfg.Canvas.ScaleY,
		},
		step:   cfg.DragStep,
		logger: logger,
		field:  field,
		query:  query,
	}

	if cfg.Highlight != "" {
		f, err := highlight.Compile(cfg.Highlight, logger)
		if err != nil {
			logger.Warn("Ignoring highlight expression", "error", err)
			m.statusMsg = err.Error()
		} else {
			m.filter = f
		}
	}

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Frame returns the frame the model last rendered from.
func (m Model) Frame() editor.Frame {
	return m.frame
}

// Mode returns the current input mode.
func (m Model) Mode() Mode {
	return m.mode
}

// FocusID returns the node under the keyboard focus ring.
func (m Model) FocusID() string {
	return m.focusID
}

// refresh re-reads the session and repairs surface state that may point at
// nodes that no longer exist.
func (m *Model) refresh() {
	m.frame = m.session.Frame()
	m.matches = m.filter.Match(m.frame)

	if _, ok := m.frame.Node(m.focusID); !ok {
		m.focusID = ""
		if len(m.frame.Nodes) > 0 {
			m.focusID = m.frame.Nodes[0].ID
		}
	}
	if m.mode == ModeConnect {
		if _, ok := m.frame.Node(m.connectFrom); !ok {
			m.mode = ModeNavigate
			m.connectFrom = ""
		}
	}
	if m.mode == ModeEditLabel && !m.frame.Panel.Visible {
		m.mode = ModeNavigate
		m.field.Blur()
	}
}

// cycleFocus moves the focus ring by delta through the nodes in draw order.
func (m *Model) cycleFocus(delta int) {
	n := len(m.frame.Nodes)
	if n == 0 {
		return
	}
	idx := 0
	for i, node := range m.frame.Nodes {
		if node.ID == m.focusID {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	m.focusID = m.frame.Nodes[idx].ID
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case ModeEditLabel:
			return m.updateEditLabel(msg)
		case ModeQuery:
			return m.updateQuery(msg)
		case ModeConnect:
			return m.updateConnect(msg)
		default:
			return m.updateNavigate(msg)
		}
	}

	if m.mode == ModeEditLabel {
		var cmd tea.Cmd
		m.field, cmd = m.field.Update(msg)
		return m, cmd
	}
	if m.mode == ModeQuery {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)

	case "enter", " ":
		if m.focusID != "" {
			m.session.OnNodeClick(m.focusID)
		}

	case "n":
		n := m.session.CreateNode()
		m.focusID = n.ID
		m.statusMsg = fmt.Sprintf("Created node %s", n.ID)

	case "c":
		if m.focusID != "" {
			m.mode = ModeConnect
			m.connectFrom = m.focusID
			m.statusMsg = fmt.Sprintf("Connecting from %s: pick a target and press enter", m.focusID)
		}

	case "up", "k":
		m.drag(0, -1)
	case "down", "j":
		m.drag(0, 1)
	case "left", "h":
		m.drag(-1, 0)
	case "right", "l":
		m.drag(1, 0)

	case "x", "delete":
		if m.focusID != "" {
			id := m.focusID
			if m.session.OnNodesChange([]graph.NodeChange{{Type: graph.ChangeRemove, ID: id}}) {
				m.statusMsg = fmt.Sprintf("Removed node %s", id)
			}
		}

	case "e":
		if m.frame.Panel.Visible {
			m.mode = ModeEditLabel
			m.field.SetValue(m.frame.Panel.Field)
			m.field.CursorEnd()
			m.refresh()
			cmd := m.field.Focus()
			return m, cmd
		}

	case "d":
		if m.frame.Panel.Visible {
			id := m.frame.SelectedID
			if m.session.DeleteSelected() {
				m.statusMsg = fmt.Sprintf("Deleted node %s", id)
			}
		}

	case "/":
		m.mode = ModeQuery
		m.query.SetValue(m.filter.String())
		m.query.CursorEnd()
		cmd := m.query.Focus()
		return m, cmd
	}

	m.refresh()
	return m, nil
}

// drag moves the focused node one drag step and reports it the way a
// finished mouse drag would be reported.
func (m *Model) drag(dx, dy float64) {
	node, ok := m.frame.Node(m.focusID)
	if !ok {
		return
	}
	pos := graph.Position{
		X: node.Position.X + dx*m.step,
		Y: node.Position.Y + dy*m.step,
	}
	m.session.OnNodesChange([]graph.NodeChange{{
		Type:     graph.ChangePosition,
		ID:       node.ID,
		Position: pos,
	}})
}

func (m Model) updateConnect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.cycleFocus(1)
	case "shift+tab":
		m.cycleFocus(-1)
	case "esc":
		m.mode = ModeNavigate
		m.connectFrom = ""
		m.statusMsg = "Connect cancelled"
	case "enter", " ":
		source, target := m.connectFrom, m.focusID
		m.mode = ModeNavigate
		m.connectFrom = ""
		if e, ok := m.session.OnConnect(source, target); ok {
			m.statusMsg = fmt.Sprintf("Connected %s → %s (%s)", source, target, e.ID)
		} else {
			m.statusMsg = fmt.Sprintf("Connection %s → %s rejected", source, target)
		}
	}
	m.refresh()
	return m, nil
}

func (m Model) updateEditLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.SetField(m.field.Value())
		if m.session.UpdateLabel() {
			m.statusMsg = fmt.Sprintf("Relabelled node %s", m.frame.SelectedID)
		}
		m.mode = ModeNavigate
		m.field.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.mode = ModeNavigate
		m.field.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	m.session.SetField(m.field.Value())
	m.refresh()
	return m, cmd
}

func (m Model) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		f, err := highlight.Compile(m.query.Value(), m.logger)
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		m.filter = f
		m.mode = ModeNavigate
		m.query.Blur()
		m.refresh()
		m.statusMsg = fmt.Sprintf("%d node(s) highlighted", len(m.matches))
		return m, nil
	case "esc":
		m.mode = ModeNavigate
		m.query.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	return m, cmd
}
