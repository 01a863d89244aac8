// Package highlight selects canvas nodes with a CEL expression.
//
// Expressions see one node at a time through these variables:
//
//	id, label        string
//	x, y             double
//	in_degree        int
//	out_degree       int
//	selected         bool
//
// e.g. `out_degree == 0 && label.startsWith("b")`. Filters never mutate the
// graph.
package highlight

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/DrSkyle/graphpad/pkg/editor"
)

// Filter is a compiled highlight expression.
type Filter struct {
	expr    string
	program cel.Program
	logger  *slog.Logger
}

var env *cel.Env

func init() {
	var err error
	env, err = cel.NewEnv(
		cel.Variable("id", cel.StringType),
		cel.Variable("label", cel.StringType),
		cel.Variable("x", cel.DoubleType),
		cel.Variable("y", cel.DoubleType),
		cel.Variable("in_degree", cel.IntType),
		cel.Variable("out_degree", cel.IntType),
		cel.Variable("selected", cel.BoolType),
	)
	if err != nil {
		panic(fmt.Sprintf("highlight: failed to create CEL env: %v", err))
	}
}

// Compile parses and type-checks expr. The expression must yield a bool.
// A blank expr compiles to a nil *Filter and no error; a nil Filter is valid
// and means "no highlight" (String returns "" and Match matches nothing).
func Compile(expr string, logger *slog.Logger) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("highlight %q compilation error: %w", expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("highlight %q must be a boolean expression, got %s", expr, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("highlight %q program creation error: %w", expr, err)
	}
	return &Filter{expr: expr, program: prg, logger: logger}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Match returns the ids of nodes in frame the expression holds for. A nil
// filter matches nothing.
func (f *Filter) Match(frame editor.Frame) map[string]bool {
	matches := make(map[string]bool)
	if f == nil {
		return matches
	}

	in := make(map[string]int64, len(frame.Nodes))
	out := make(map[string]int64, len(frame.Nodes))
	for _, e := range frame.Edges {
		out[e.Source]++
		in[e.Target]++
	}

	for _, n := range frame.Nodes {
		val, _, err := f.program.Eval(map[string]any{
			"id":         n.ID,
			"label":      n.Label,
			"x":          n.Position.X,
			"y":          n.Position.Y,
			"in_degree":  in[n.ID],
			"out_degree": out[n.ID],
			"selected":   n.ID == frame.SelectedID,
		})
		if err != nil {
			f.logger.Debug("Highlight evaluation failed", "expr", f.expr, "node_id", n.ID, "error", err)
			continue
		}
		if match, ok := val.Value().(bool); ok && match {
			matches[n.ID] = true
		}
	}
	return matches
}
