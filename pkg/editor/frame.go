package editor

import (
	"slices"

	"github.com/DrSkyle/graphpad/pkg/graph"
)

// Panel is the node editor form shown next to the canvas.
type Panel struct {
	// Visible is true exactly while a node is selected.
	Visible bool
	// Title is the selected node's current label.
	Title string
	// Field is the text field content; seeded with Title on each new selection.
	Field string
}

// Frame is everything a surface needs to draw one state of the session.
// Every Frame handed out by a Session owns its slices; callers may modify
// them without affecting the session.
type Frame struct {
	Seq        uint64
	Nodes      []graph.Node
	Edges      []graph.Edge
	SelectedID string // empty when nothing is selected
	Panel      Panel
}

// HasSelection reports whether a node is selected in this frame.
func (f Frame) HasSelection() bool {
	return f.SelectedID != ""
}

// Node looks up a node by id in the frame.
func (f Frame) Node(id string) (graph.Node, bool) {
	return graph.Snapshot{Nodes: f.Nodes}.Node(id)
}

func (f Frame) clone() Frame {
	f.Nodes = slices.Clone(f.Nodes)
	f.Edges = slices.Clone(f.Edges)
	return f
}
