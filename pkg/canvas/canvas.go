// Package canvas projects an editor frame onto a character grid.
//
// World coordinates map to cells by floor division with the configured
// scale, clamped into the grid. Edges are drawn first as straight lines of
// EdgeRune; nodes are drawn on top in insertion order, so later nodes cover
// earlier ones.
package canvas

import (
	"math"
	"strings"

	"github.com/DrSkyle/graphpad/pkg/editor"
	"github.com/DrSkyle/graphpad/pkg/graph"
)

// EdgeRune marks a cell crossed by an edge.
const EdgeRune = '·'

// Kind classifies what occupies a cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindEdge
	KindNode
	KindSelected
)

// Cell is one grid position.
type Cell struct {
	Ch     rune
	Kind   Kind
	NodeID string
}

// Projection maps world coordinates onto grid cells.
type Projection struct {
	Width  int
	Height int
	ScaleX float64
	ScaleY float64
}

// Cell returns the grid cell containing pos.
func (p Projection) Cell(pos graph.Position) (col, row int) {
	col = clamp(int(math.Floor(pos.X/p.ScaleX)), 0, p.Width-1)
	row = clamp(int(math.Floor(pos.Y/p.ScaleY)), 0, p.Height-1)
	return col, row
}

// Grid is a drawn canvas.
type Grid struct {
	Width   int
	Height  int
	cells   [][]Cell
	anchors map[string][2]int
}

// Draw renders f with p.
func Draw(p Projection, f editor.Frame) *Grid {
	g := &Grid{
		Width:   p.Width,
		Height:  p.Height,
		cells:   make([][]Cell, p.Height),
		anchors: make(map[string][2]int, len(f.Nodes)),
	}
	for r := range g.cells {
		row := make([]Cell, p.Width)
		for c := range row {
			row[c] = Cell{Ch: ' '}
		}
		g.cells[r] = row
	}

	for _, n := range f.Nodes {
		col, row := p.Cell(n.Position)
		g.anchors[n.ID] = [2]int{col, row}
	}

	for _, e := range f.Edges {
		from, ok1 := g.anchors[e.Source]
		to, ok2 := g.anchors[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		g.line(from[0], from[1], to[0], to[1])
	}

	for _, n := range f.Nodes {
		a := g.anchors[n.ID]
		kind := KindNode
		text := "[" + n.Label + "]"
		if n.ID == f.SelectedID {
			kind = KindSelected
			text = "<" + n.Label + ">"
		}
		col := a[0]
		for _, ch := range text {
			if col >= g.Width {
				break
			}
			g.cells[a[1]][col] = Cell{Ch: ch, Kind: kind, NodeID: n.ID}
			col++
		}
	}
	return g
}

// line plots a Bresenham line between two cells.
func (g *Grid) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		g.cells[y0][x0] = Cell{Ch: EdgeRune, Kind: KindEdge}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the cell at col,row.
func (g *Grid) Cell(col, row int) Cell {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return Cell{Ch: ' '}
	}
	return g.cells[row][col]
}

// HitTest returns the node drawn at col,row.
func (g *Grid) HitTest(col, row int) (string, bool) {
	c := g.Cell(col, row)
	if c.NodeID == "" {
		return "", false
	}
	return c.NodeID, true
}

// Anchor returns the cell a node is drawn from.
func (g *Grid) Anchor(id string) (col, row int, ok bool) {
	a, ok := g.anchors[id]
	return a[0], a[1], ok
}

// Run is a maximal stretch of cells on one row sharing kind and node.
type Run struct {
	Text   string
	Kind   Kind
	NodeID string
}

// Runs splits a row into styled runs.
func (g *Grid) Runs(row int) []Run {
	var (
		runs []Run
		b    strings.Builder
		cur  Run
	)
	flush := func() {
		if b.Len() > 0 {
			cur.Text = b.String()
			runs = append(runs, cur)
			b.Reset()
		}
	}
	for i, c := range g.cells[row] {
		if i == 0 || c.Kind != cur.Kind || c.NodeID != cur.NodeID {
			flush()
			cur = Run{Kind: c.Kind, NodeID: c.NodeID}
		}
		b.WriteRune(c.Ch)
	}
	flush()
	return runs
}

// Plain renders the grid without styling, trailing spaces trimmed.
func (g *Grid) Plain() string {
	lines := make([]string, g.Height)
	for r, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.Ch)
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
