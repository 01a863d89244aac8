package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DrSkyle/graphpad/pkg/graph"
)

func TestController_Lifecycle(t *testing.T) {
	store := graph.NewSeededStore()
	c := New()

	assert.Equal(t, Unselected, c.State())
	_, ok := c.CurrentLabel(store)
	assert.False(t, ok)

	c.Select("1")
	assert.Equal(t, Selected, c.State())
	label, ok := c.CurrentLabel(store)
	assert.True(t, ok)
	assert.Equal(t, "a", label)

	// Reselecting replaces rather than stacking.
	c.Select("2")
	id, _ := c.Selected()
	assert.Equal(t, "2", id)
	assert.False(t, c.IsSelected("1"))
	label, _ = c.CurrentLabel(store)
	assert.Equal(t, "b", label)

	c.Clear()
	assert.Equal(t, Unselected, c.State())
	assert.Equal(t, "unselected", c.State().String())
}

func TestController_CurrentLabelFollowsRelabel(t *testing.T) {
	store := graph.NewSeededStore()
	c := New()
	c.Select("1")

	store.RelabelNode("1", "hello")

	label, ok := c.CurrentLabel(store)
	assert.True(t, ok)
	assert.Equal(t, "hello", label)
}

func TestController_Reconcile(t *testing.T) {
	store := graph.NewSeededStore()
	c := New()

	assert.False(t, c.Reconcile(store), "nothing selected")

	c.Select("1")
	assert.False(t, c.Reconcile(store), "node still present")

	store.RemoveNode("1")
	assert.True(t, c.Reconcile(store))
	assert.Equal(t, Unselected, c.State())
	_, ok := c.CurrentLabel(store)
	assert.False(t, ok)
}
