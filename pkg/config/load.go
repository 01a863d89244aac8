package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

// SetDefaults registers Default() on v so unset keys fall back to it.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("canvas.width", d.Canvas.Width)
	v.SetDefault("canvas.height", d.Canvas.Height)
	v.SetDefault("canvas.scale_x", d.Canvas.ScaleX)
	v.SetDefault("canvas.scale_y", d.Canvas.ScaleY)
	v.SetDefault("drag_step", d.DragStep)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("telemetry.enabled", d.Telemetry.Enabled)
	v.SetDefault("telemetry.endpoint", d.Telemetry.Endpoint)
	v.SetDefault("highlight", d.Highlight)
}

// Load decodes v into a Config and validates it. v is expected to have its
// config file, env binding and flags already wired.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	// An endpoint from any source turns telemetry on.
	if cfg.Telemetry.Endpoint != "" {
		cfg.Telemetry.Enabled = true
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports every violation at once.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
