package highlight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrSkyle/graphpad/pkg/editor"
)

func TestFilter_Match(t *testing.T) {
	s := editor.NewSession(context.Background())
	s.OnNodeClick("2")
	s.CreateNode()
	frame := s.Frame()

	tests := []struct {
		expr string
		want map[string]bool
	}{
		{expr: `out_degree > 0`, want: map[string]bool{"1": true}},
		{expr: `in_degree == 0 && out_degree == 0`, want: map[string]bool{"3": true}},
		{expr: `label == "b"`, want: map[string]bool{"2": true}},
		{expr: `selected`, want: map[string]bool{"2": true}},
		{expr: `x < 200.0 && y >= 100.0`, want: map[string]bool{"2": true, "3": true}},
		{expr: `id.startsWith("9")`, want: map[string]bool{}},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := Compile(tc.expr, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Match(frame))
			assert.Equal(t, tc.expr, f.String())
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	_, err := Compile(`label +`, nil)
	assert.Error(t, err)

	_, err = Compile(`unknown_var == 1`, nil)
	assert.Error(t, err)

	_, err = Compile(`label`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boolean")
}

func TestCompile_EmptyIsNil(t *testing.T) {
	f, err := Compile("   ", nil)
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Empty(t, f.Match(editor.Frame{}))
	assert.Equal(t, "", f.String())
}
