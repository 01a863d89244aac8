package canvas

import (
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrSkyle/graphpad/pkg/config"
	"github.com/DrSkyle/graphpad/pkg/editor"
	"github.com/DrSkyle/graphpad/pkg/graph"
)

func defaultProjection() Projection {
	c := config.Default().Canvas
	return Projection{Width: c.Width, Height: c.Height, ScaleX: c.ScaleX, ScaleY: c.ScaleY}
}

// usage: go test ./pkg/canvas/... -update to regenerate testdata/*.golden

func TestDraw_Golden(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *editor.Session)
	}{
		{
			name:  "seed",
			setup: func(s *editor.Session) {},
		},
		{
			name: "selected_and_connected",
			setup: func(s *editor.Session) {
				s.OnNodeClick("1")
				n := s.CreateNode()
				s.OnConnect(n.ID, "1")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := editor.NewSession(context.Background())
			tc.setup(s)

			grid := Draw(defaultProjection(), s.Frame())

			g := goldie.New(t)
			g.Assert(t, tc.name, []byte(grid.Plain()))
		})
	}
}

func TestProjection_CellClamps(t *testing.T) {
	p := defaultProjection()

	col, row := p.Cell(graph.Position{X: -50, Y: -1})
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	col, row = p.Cell(graph.Position{X: 1e6, Y: 1e6})
	assert.Equal(t, p.Width-1, col)
	assert.Equal(t, p.Height-1, row)

	col, row = p.Cell(graph.Position{X: 19.9, Y: 25})
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)
}

func TestGrid_HitTestAndAnchor(t *testing.T) {
	s := editor.NewSession(context.Background())
	grid := Draw(defaultProjection(), s.Frame())

	col, row, ok := grid.Anchor("1")
	require.True(t, ok)
	assert.Equal(t, 25, col)
	assert.Equal(t, 2, row)

	for c := 25; c <= 27; c++ {
		id, hit := grid.HitTest(c, 2)
		assert.True(t, hit)
		assert.Equal(t, "1", id)
	}

	_, hit := grid.HitTest(24, 2)
	assert.False(t, hit, "edge cells are not nodes")
	_, hit = grid.HitTest(-1, 99)
	assert.False(t, hit)
	_, _, ok = grid.Anchor("99")
	assert.False(t, ok)
}

func TestGrid_Runs(t *testing.T) {
	s := editor.NewSession(context.Background())
	s.OnNodeClick("2")
	grid := Draw(defaultProjection(), s.Frame())

	runs := grid.Runs(8)
	require.GreaterOrEqual(t, len(runs), 2)
	assert.Equal(t, Run{Text: "  ", Kind: KindEmpty}, runs[0])
	assert.Equal(t, Run{Text: "<b>", Kind: KindSelected, NodeID: "2"}, runs[1])
}

func TestDraw_LabelTruncatedAtEdge(t *testing.T) {
	store := graph.NewMemoryStore()
	n := store.AddNode()
	store.MoveNode(n.ID, graph.Position{X: 600, Y: 0})
	store.RelabelNode(n.ID, "longer label")
	s := editor.NewSession(context.Background(), editor.WithStore(store))

	grid := Draw(defaultProjection(), s.Frame())

	first := strings.Split(grid.Plain(), "\n")[0]
	assert.Equal(t, strings.Repeat(" ", 60)+"[longer labe", first)
}
