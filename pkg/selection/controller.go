// Package selection tracks the single node an editor session is focused on.
package selection

// State is the selection lifecycle state.
type State int

const (
	Unselected State = iota
	Selected
)

func (s State) String() string {
	if s == Selected {
		return "selected"
	}
	return "unselected"
}

// NodeLookup is the slice of the graph store the controller needs.
type NodeLookup interface {
	HasNode(id string) bool
	Label(id string) (string, bool)
}

// Controller holds at most one selected node id. It is not safe for
// concurrent use; the editor session serialises access.
type Controller struct {
	id  string
	set bool
}

// New returns a controller in the Unselected state.
func New() *Controller {
	return &Controller{}
}

// Select makes id the selection, replacing any previous one.
func (c *Controller) Select(id string) {
	c.id = id
	c.set = true
}

// Clear resets to Unselected.
func (c *Controller) Clear() {
	c.id = ""
	c.set = false
}

// Selected returns the selected node id, if any.
func (c *Controller) Selected() (string, bool) {
	return c.id, c.set
}

// IsSelected reports whether id is the current selection.
func (c *Controller) IsSelected(id string) bool {
	return c.set && c.id == id
}

func (c *Controller) State() State {
	if c.set {
		return Selected
	}
	return Unselected
}

// CurrentLabel returns the selected node's label. The second result is false
// when nothing is selected.
func (c *Controller) CurrentLabel(nodes NodeLookup) (string, bool) {
	if !c.set {
		return "", false
	}
	return nodes.Label(c.id)
}

// Reconcile clears a selection whose node is gone and reports whether it did.
func (c *Controller) Reconcile(nodes NodeLookup) bool {
	if c.set && !nodes.HasNode(c.id) {
		c.Clear()
		return true
	}
	return false
}
