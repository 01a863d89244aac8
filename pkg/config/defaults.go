// Package config defines the editor configuration and its defaults.
package config

// Config holds editor settings.
type Config struct {
	Canvas    CanvasConfig    `mapstructure:"canvas" yaml:"canvas"`
	DragStep  float64         `mapstructure:"drag_step" yaml:"drag_step" validate:"gt=0"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`

	// Highlight is a CEL expression applied to the canvas at startup.
	Highlight string `mapstructure:"highlight" yaml:"highlight"`
}

// CanvasConfig sizes the character grid and maps world units onto it.
type CanvasConfig struct {
	Width  int `mapstructure:"width" yaml:"width" validate:"min=20,max=400"`
	Height int `mapstructure:"height" yaml:"height" validate:"min=6,max=200"`
	// ScaleX is the number of world units per grid column.
	ScaleX float64 `mapstructure:"scale_x" yaml:"scale_x" validate:"gt=0"`
	// ScaleY is the number of world units per grid row.
	ScaleY float64 `mapstructure:"scale_y" yaml:"scale_y" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json" yaml:"json"`
	// File receives log output; the terminal belongs to the editor.
	// Empty means graphpad.log in the OS temp directory.
	File string `mapstructure:"file" yaml:"file"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled" yaml:"enabled"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

// Defaults.
const (
	DefaultCanvasWidth  = 72
	DefaultCanvasHeight = 16
	DefaultScaleX       = 10.0
	DefaultScaleY       = 25.0
	DefaultDragStep     = 10.0
	DefaultLogLevel     = "info"
	LogFileName         = "graphpad.log"
	EnvPrefix           = "GRAPHPAD"
)

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
			ScaleX: DefaultScaleX,
			ScaleY: DefaultScaleY,
		},
		DragStep: DefaultDragStep,
		Log: LogConfig{
			Level: DefaultLogLevel,
			JSON:  true,
		},
	}
}
