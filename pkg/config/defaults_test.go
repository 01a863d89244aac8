package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 72 || cfg.Canvas.Height != 16 {
		t.Errorf("Expected 72x16 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.DragStep != 10.0 {
		t.Errorf("Expected DragStep 10.0, got %f", cfg.DragStep)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Default config must validate: %v", err)
	}
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas:
  width: 100
  scale_x: 5
log:
  level: DEBUG
highlight: 'out_degree > 0'
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Canvas.Width)
	assert.Equal(t, 5.0, cfg.Canvas.ScaleX)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "out_degree > 0", cfg.Highlight)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		want  string
	}{
		{name: "canvas too narrow", key: "canvas.width", value: 5, want: "Width"},
		{name: "zero scale", key: "canvas.scale_y", value: 0, want: "ScaleY"},
		{name: "negative drag step", key: "drag_step", value: -1, want: "DragStep"},
		{name: "unknown level", key: "log.level", value: "loud", want: "Level"},
		{name: "bad endpoint", key: "telemetry.endpoint", value: "not a url", want: "Endpoint"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tc.key, tc.value)

			_, err := Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_EndpointEnablesTelemetry(t *testing.T) {
	t.Setenv("GRAPHPAD_TELEMETRY_ENDPOINT", "http://localhost:4318")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4318", cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Telemetry.Enabled)

	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.False(t, cfg.Telemetry.Enabled)
}
