// Package editor is the single update path of a graph editing session.
//
// Every gesture handler mutates the graph store, reconciles the selection
// and builds the next Frame inside one critical section, then publishes the
// frame to subscribers after the lock is released. A subscriber therefore
// never sees a selection that points at a removed node.
package editor

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/DrSkyle/graphpad/pkg/graph"
	"github.com/DrSkyle/graphpad/pkg/selection"
)

type subscriber struct {
	id int
	fn func(Frame)
}

// Session owns the graph, the selection and the editor panel of one editor.
type Session struct {
	mu sync.Mutex

	id    string
	store graph.GraphStore
	sel   *selection.Controller
	field string

	frame   Frame
	subs    []subscriber
	nextSub int

	ctx      context.Context
	logger   *slog.Logger
	tracer   trace.Tracer
	gestures metric.Int64Counter
}

// Option defines a functional configuration override.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithStore replaces the seeded store. Used by tests that need a specific graph.
func WithStore(store graph.GraphStore) Option {
	return func(s *Session) { s.store = store }
}

// WithTracer sets the tracer gesture spans are recorded on.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) { s.tracer = t }
}

// WithMeter sets the meter the gesture counter is registered on.
func WithMeter(m metric.Meter) Option {
	return func(s *Session) {
		if c, err := m.Int64Counter("graphpad.editor.gestures",
			metric.WithDescription("Gestures handled by the editor session")); err == nil {
			s.gestures = c
		}
	}
}

// NewSession starts a session on the fixed seed graph.
func NewSession(ctx context.Context, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		store:  graph.NewSeededStore(),
		sel:    selection.New(),
		ctx:    ctx,
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		tracer: otel.Tracer("graphpad/editor"),
	}
	WithMeter(otel.Meter("graphpad/editor"))(s)

	// Apply options.
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	s.frame = s.buildFrame()

	s.logger.Info("Session started",
		"nodes", len(s.frame.Nodes),
		"edges", len(s.frame.Edges),
	)
	return s
}

// ID returns the session identifier used in logs and traces.
func (s *Session) ID() string {
	return s.id
}

// Frame returns the latest frame.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame.clone()
}

// Subscribe registers fn to receive every frame published after this call.
// Subscribers run synchronously, in registration order, outside the session
// lock; they may call back into the session.
func (s *Session) Subscribe(fn func(Frame)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// CurrentLabel returns the selected node's label; false means no selection.
func (s *Session) CurrentLabel() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.CurrentLabel(s.store)
}

// CreateNode adds a node at the default position.
func (s *Session) CreateNode() graph.Node {
	var n graph.Node
	s.handle("create_node", func() bool {
		n = s.store.AddNode()
		return true
	}, func() []any { return []any{"node_id", n.ID} })
	return n
}

// OnConnect handles a connect-drag from source to target.
func (s *Session) OnConnect(source, target string) (graph.Edge, bool) {
	var (
		e  graph.Edge
		ok bool
	)
	s.handle("connect", func() bool {
		e, ok = s.store.AddEdge(source, target)
		return ok
	}, func() []any { return []any{"source", source, "target", target} })
	return e, ok
}

// OnNodeClick selects the clicked node. Clicking a different node reseeds
// the panel field; clicking the selected node again keeps the pending edit.
func (s *Session) OnNodeClick(id string) bool {
	return s.handle("node_click", func() bool {
		label, ok := s.store.Label(id)
		if !ok || s.sel.IsSelected(id) {
			return false
		}
		s.sel.Select(id)
		s.field = label
		return true
	}, func() []any { return []any{"node_id", id} })
}

// OnNodesChange folds position, select and remove deltas reported by the
// surface back into the store.
func (s *Session) OnNodesChange(changes []graph.NodeChange) bool {
	return s.handle("nodes_change", func() bool {
		return s.store.ApplyNodeChanges(changes) > 0
	}, func() []any { return []any{"changes", len(changes)} })
}

// OnEdgesChange folds edge deltas back into the store.
func (s *Session) OnEdgesChange(changes []graph.EdgeChange) bool {
	return s.handle("edges_change", func() bool {
		return s.store.ApplyEdgeChanges(changes) > 0
	}, func() []any { return []any{"changes", len(changes)} })
}

// SetField records the panel text field content.
func (s *Session) SetField(value string) bool {
	return s.handle("set_field", func() bool {
		if s.sel.State() == selection.Unselected || value == s.field {
			return false
		}
		s.field = value
		return true
	}, nil)
}

// UpdateLabel relabels the selected node with the panel field content.
func (s *Session) UpdateLabel() bool {
	return s.handle("update_label", func() bool {
		id, ok := s.sel.Selected()
		if !ok {
			return false
		}
		return s.store.RelabelNode(id, s.field)
	}, func() []any { return []any{"label", s.field} })
}

// DeleteSelected removes the selected node, its edges and the selection in
// one step.
func (s *Session) DeleteSelected() bool {
	return s.handle("delete_selected", func() bool {
		id, ok := s.sel.Selected()
		if !ok {
			return false
		}
		s.store.RemoveNode(id)
		s.sel.Clear()
		s.field = ""
		return true
	}, nil)
}

// handle runs mutate inside the session lock, reconciles the selection,
// builds the next frame and publishes it once the lock is dropped. attrs is
// evaluated under the lock after mutate so it can report mutate's results.
func (s *Session) handle(gesture string, mutate func() bool, attrs func() []any) bool {
	_, span := s.tracer.Start(s.ctx, "editor."+gesture)
	defer span.End()

	s.mu.Lock()
	applied := mutate()
	if s.sel.Reconcile(s.store) {
		s.field = ""
		applied = true
	}
	var args []any
	if attrs != nil {
		args = attrs()
	}

	var (
		frame Frame
		subs  []subscriber
	)
	if applied {
		next := s.buildFrame()
		next.Seq = s.frame.Seq + 1
		s.frame = next
		frame = next
		subs = append(subs, s.subs...)
	}
	s.mu.Unlock()

	span.SetAttributes(attribute.Bool("applied", applied))
	if s.gestures != nil {
		s.gestures.Add(s.ctx, 1, metric.WithAttributes(
			attribute.String("gesture", gesture),
			attribute.Bool("applied", applied),
		))
	}
	s.logger.Debug("Gesture handled", append([]any{"gesture", gesture, "applied", applied}, args...)...)

	for _, sub := range subs {
		sub.fn(frame.clone())
	}
	return applied
}

// buildFrame must be called with s.mu held.
func (s *Session) buildFrame() Frame {
	snap := s.store.Snapshot()
	f := Frame{
		Seq:   s.frame.Seq,
		Nodes: snap.Nodes,
		Edges: snap.Edges,
	}
	if id, ok := s.sel.Selected(); ok {
		title, _ := s.store.Label(id)
		f.SelectedID = id
		f.Panel = Panel{Visible: true, Title: title, Field: s.field}
	}
	return f
}
