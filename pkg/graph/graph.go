// Package graph holds the authoritative node/edge state of an editing session.
//
// The store enforces three invariants after every operation:
//   - every edge's source and target reference a live node,
//   - node ids are never reused over the lifetime of a store,
//   - edge ids are unique among live edges.
//
// Operations on unknown ids are no-ops and report false; nothing in this
// package returns an error for a rejected mutation.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by Validate.
var (
	// ErrDanglingEdge indicates an edge whose source or target is not a live node.
	ErrDanglingEdge = errors.New("graph: edge references a missing node")

	// ErrDuplicateNodeID indicates two live nodes share an id.
	ErrDuplicateNodeID = errors.New("graph: duplicate node id")

	// ErrDuplicateEdgeID indicates two live edges share an id.
	ErrDuplicateEdgeID = errors.New("graph: duplicate edge id")
)

// DefaultPosition is where AddNode places new nodes.
var DefaultPosition = Position{X: 100, Y: 100}

// Position is a point in canvas world coordinates.
type Position struct {
	X float64
	Y float64
}

// Node is a graph vertex.
type Node struct {
	ID       string
	Position Position
	Label    string
}

// Edge connects two live nodes. Edges are directed, source to target.
type Edge struct {
	ID     string
	Source string
	Target string
}

// EdgeID derives the id used for an edge between source and target.
// Parallel edges collapse onto the same id, so the store keeps at most one
// edge per ordered pair.
func EdgeID(source, target string) string {
	return fmt.Sprintf("e%s-%s", source, target)
}

// Snapshot is a detached copy of the store, safe to hand to renderers.
type Snapshot struct {
	Nodes []Node
	Edges []Edge
}

// Node looks up a node by id in the snapshot.
func (s Snapshot) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
