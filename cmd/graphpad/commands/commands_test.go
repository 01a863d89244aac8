package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DrSkyle/graphpad/pkg/config"
	"github.com/DrSkyle/graphpad/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphpad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestConfigCommand_MergesSources(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 100
highlight: label == "a"
`)
	t.Setenv("GRAPHPAD_DRAG_STEP", "5")

	out, err := execute(t, "config", "--config", path, "--log-level", "DEBUG")
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+path)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	want := config.Default()
	want.Canvas.Width = 100
	want.DragStep = 5
	want.Highlight = `label == "a"`
	want.Log.Level = "debug"
	assert.Equal(t, want, got)
}

func TestConfigCommand_Invalid(t *testing.T) {
	path := writeConfig(t, `
canvas:
  width: 5
`)
	_, err := execute(t, "config", "--config", path, "--log-level", "info")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Width")
}

func TestConfigCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestHelpRendering(t *testing.T) {
	var buf bytes.Buffer
	renderHelp(&buf, rootCmd)

	out := buf.String()
	for _, want := range []string{"USAGE", "COMMANDS", "edit", "config", "version", "--highlight"} {
		assert.Contains(t, out, want)
	}
}

// resetViper drops settings read by earlier commands in this process.
func resetViper() {
	v = viper.New()
	bindFlags(v, rootCmd.PersistentFlags())
	cfgFile = ""
}

func TestConfigCommand_DefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetViper()

	// No ~/.graphpad.yaml: defaults apply.
	out, err := execute(t, "config", "--log-level", "info")
	require.NoError(t, err)
	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, config.DefaultCanvasWidth, got.Canvas.Width)

	// A malformed one is reported, not skipped.
	require.NoError(t, os.WriteFile(filepath.Join(home, ".graphpad.yaml"), []byte("canvas: [unclosed"), 0o644))
	cfgFile = ""
	_, err = execute(t, "config", "--log-level", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestConfigCommand_EnvEndpointEnablesTelemetry(t *testing.T) {
	path := writeConfig(t, "drag_step: 10\n")
	t.Setenv("GRAPHPAD_TELEMETRY_ENDPOINT", "http://localhost:4318")

	out, err := execute(t, "config", "--config", path, "--log-level", "info")
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.Telemetry.Enabled)
	assert.Equal(t, "http://localhost:4318", got.Telemetry.Endpoint)
}
