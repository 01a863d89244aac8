package graph

// ChangeType identifies what a surface-reported delta does.
type ChangeType string

const (
	ChangePosition ChangeType = "position"
	ChangeSelect   ChangeType = "select"
	ChangeRemove   ChangeType = "remove"
)

// NodeChange is one entry of the delta list the interaction surface reports
// while the user drags, selects or deletes nodes on the canvas.
type NodeChange struct {
	Type     ChangeType
	ID       string
	Position Position // ChangePosition only
	Dragging bool     // ChangePosition only; false on drag end
	Selected bool     // ChangeSelect only
}

// EdgeChange is the edge counterpart of NodeChange.
type EdgeChange struct {
	Type     ChangeType
	ID       string
	Selected bool
}

// ApplyNodeChanges folds surface deltas back into the store under one lock
// and returns how many changes altered state. Select changes are surface-local
// highlight state and never touch the store. Changes naming unknown nodes are
// dropped.
func (s *MemoryStore) ApplyNodeChanges(changes []NodeChange) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, c := range changes {
		switch c.Type {
		case ChangePosition:
			if s.moveNode(c.ID, c.Position) {
				applied++
			}
		case ChangeRemove:
			if s.removeNode(c.ID) {
				applied++
			}
		}
	}
	return applied
}

// ApplyEdgeChanges folds edge deltas back into the store.
func (s *MemoryStore) ApplyEdgeChanges(changes []EdgeChange) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, c := range changes {
		if c.Type == ChangeRemove && s.removeEdge(c.ID) {
			applied++
		}
	}
	return applied
}
