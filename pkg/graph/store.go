package graph

// GraphStore defines graph storage interface.
type GraphStore interface {
	// Node operations.
	AddNode() Node
	RemoveNode(id string) bool
	RelabelNode(id, label string) bool
	MoveNode(id string, pos Position) bool
	Node(id string) (Node, bool)
	HasNode(id string) bool
	Label(id string) (string, bool)
	Nodes() []Node
	NodeCount() int

	// Edge operations.
	AddEdge(source, target string) (Edge, bool)
	RemoveEdge(id string) bool
	RemoveEdgesIncidentTo(id string) int
	Edge(id string) (Edge, bool)
	Edges() []Edge
	EdgeCount() int

	// Change folding from the interaction surface.
	ApplyNodeChanges(changes []NodeChange) int
	ApplyEdgeChanges(changes []EdgeChange) int

	Snapshot() Snapshot
	Validate() error
}
