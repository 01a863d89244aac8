package graph

import (
	"fmt"
	"strconv"
	"sync"
)

// MemoryStore is an in-memory graph storage.
type MemoryStore struct {
	mu sync.RWMutex

	nodes     map[string]*Node
	nodeOrder []string // insertion order, the order nodes are drawn in
	edges     map[string]*Edge
	edgeOrder []string

	// nextNodeID only ever grows, so an id freed by RemoveNode is never
	// handed out again.
	nextNodeID uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
}

// NewSeededStore returns the store every editor session starts from:
// nodes "1" (a) and "2" (b) joined by edge "e1-2".
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	for _, n := range seedNodes {
		s.insertNode(n)
	}
	for _, e := range seedEdges {
		s.insertEdge(e)
	}
	s.nextNodeID = uint64(len(seedNodes))
	return s
}

var (
	seedNodes = []Node{
		{ID: "1", Position: Position{X: 250, Y: 50}, Label: "a"},
		{ID: "2", Position: Position{X: 20, Y: 200}, Label: "b"},
	}
	seedEdges = []Edge{
		{ID: "e1-2", Source: "1", Target: "2"},
	}
)

// AddNode creates a node at DefaultPosition labelled with its own id.
func (s *MemoryStore) AddNode() Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextNodeID++
	id := strconv.FormatUint(s.nextNodeID, 10)
	n := Node{ID: id, Position: DefaultPosition, Label: id}
	s.insertNode(n)
	return n
}

func (s *MemoryStore) insertNode(n Node) {
	node := n
	s.nodes[n.ID] = &node
	s.nodeOrder = append(s.nodeOrder, n.ID)
}

// RemoveNode deletes the node and every edge touching it.
func (s *MemoryStore) RemoveNode(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeNode(id)
}

func (s *MemoryStore) removeNode(id string) bool {
	if _, ok := s.nodes[id]; !ok {
		return false
	}
	s.removeIncident(id)
	delete(s.nodes, id)
	s.nodeOrder = without(s.nodeOrder, id)
	return true
}

func (s *MemoryStore) RelabelNode(id, label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Label = label
	return true
}

func (s *MemoryStore) MoveNode(id string, pos Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moveNode(id, pos)
}

func (s *MemoryStore) moveNode(id string, pos Position) bool {
	n, ok := s.nodes[id]
	if !ok {
		return false
	}
	n.Position = pos
	return true
}

func (s *MemoryStore) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Label returns the node's current label.
func (s *MemoryStore) Label(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return "", false
	}
	return n.Label, true
}

func (s *MemoryStore) HasNode(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// Nodes returns a copy of all nodes in insertion order.
func (s *MemoryStore) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyNodes()
}

func (s *MemoryStore) copyNodes() []Node {
	result := make([]Node, 0, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		result = append(result, *s.nodes[id])
	}
	return result
}

func (s *MemoryStore) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}

// AddEdge connects source to target. It refuses when either endpoint is
// missing or when the pair is already connected.
func (s *MemoryStore) AddEdge(source, target string) (Edge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[source]; !ok {
		return Edge{}, false
	}
	if _, ok := s.nodes[target]; !ok {
		return Edge{}, false
	}

	// Check duplicates.
	id := EdgeID(source, target)
	if _, ok := s.edges[id]; ok {
		return Edge{}, false
	}

	e := Edge{ID: id, Source: source, Target: target}
	s.insertEdge(e)
	return e, true
}

func (s *MemoryStore) insertEdge(e Edge) {
	edge := e
	s.edges[e.ID] = &edge
	s.edgeOrder = append(s.edgeOrder, e.ID)
}

func (s *MemoryStore) RemoveEdge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeEdge(id)
}

func (s *MemoryStore) removeEdge(id string) bool {
	if _, ok := s.edges[id]; !ok {
		return false
	}
	delete(s.edges, id)
	s.edgeOrder = without(s.edgeOrder, id)
	return true
}

// RemoveEdgesIncidentTo drops every edge with id as source or target and
// reports how many went.
func (s *MemoryStore) RemoveEdgesIncidentTo(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeIncident(id)
}

func (s *MemoryStore) removeIncident(id string) int {
	kept := s.edgeOrder[:0]
	removed := 0
	for _, eid := range s.edgeOrder {
		e := s.edges[eid]
		if e.Source == id || e.Target == id {
			delete(s.edges, eid)
			removed++
			continue
		}
		kept = append(kept, eid)
	}
	s.edgeOrder = kept
	return removed
}

func (s *MemoryStore) Edge(id string) (Edge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Edges returns a copy of all edges in insertion order.
func (s *MemoryStore) Edges() []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyEdges()
}

func (s *MemoryStore) copyEdges() []Edge {
	result := make([]Edge, 0, len(s.edgeOrder))
	for _, id := range s.edgeOrder {
		result = append(result, *s.edges[id])
	}
	return result
}

func (s *MemoryStore) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// Snapshot copies nodes and edges under a single read lock.
func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Nodes: s.copyNodes(), Edges: s.copyEdges()}
}

// Validate checks the store invariants. A healthy store always returns nil.
func (s *MemoryStore) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.nodeOrder))
	for _, id := range s.nodeOrder {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateNodeID, id)
		}
		seen[id] = struct{}{}
	}

	seenEdges := make(map[string]struct{}, len(s.edgeOrder))
	for _, id := range s.edgeOrder {
		if _, dup := seenEdges[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEdgeID, id)
		}
		seenEdges[id] = struct{}{}

		e := s.edges[id]
		if _, ok := s.nodes[e.Source]; !ok {
			return fmt.Errorf("%w: %s source %s", ErrDanglingEdge, id, e.Source)
		}
		if _, ok := s.nodes[e.Target]; !ok {
			return fmt.Errorf("%w: %s target %s", ErrDanglingEdge, id, e.Target)
		}
	}
	return nil
}

func without(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
