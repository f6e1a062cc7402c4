// Package config loads toast defaults from config files and the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/marcus/toast/pkg/toast"
)

const (
	envPrefix  = "TOAST_"
	configDir  = "toast"
	configFile = "config.json"
)

// Config holds the user's toast defaults.
type Config struct {
	HideAfter         time.Duration `koanf:"hide_after" validate:"min=0s,max=1h"`
	DismissOnTap      bool          `koanf:"dismiss_on_tap"`
	Alignment         string        `koanf:"alignment" validate:"required,oneof=top bottom center leading trailing top-leading top-trailing bottom-leading bottom-trailing"`
	Transition        string        `koanf:"transition" validate:"required,oneof=slide scale skew fade"`
	Curve             string        `koanf:"curve" validate:"required,oneof=linear ease-in ease-out ease-in-out"`
	AnimationDuration time.Duration `koanf:"animation" validate:"min=0s,max=5s"`
	Backdrop          bool          `koanf:"backdrop"`
	DragThreshold     int           `koanf:"drag_threshold" validate:"min=1,max=20"`
	Margin            int           `koanf:"margin" validate:"min=0,max=10"`
	Width             int           `koanf:"width" validate:"min=12,max=200"`
	Level             string        `koanf:"level" validate:"omitempty,oneof=info success warning warn error"`
}

// GlobalPath returns the per-user config file path.
func GlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDir, configFile), nil
}

// Load reads configuration from the global file, the optional local file
// and TOAST_* environment variables.
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if globalPath, err := GlobalPath(); err == nil {
		if err := loadFile(k, globalPath); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadFile merges path into k. A missing file is not an error.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return k.Load(file.Provider(path), kjson.Parser())
}

// envTransform converts environment variable names to config keys
// Example: TOAST_HIDE_AFTER -> hide_after
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// Validate checks field ranges and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Options converts the configuration into toast options.
func (c *Config) Options() (toast.Options, error) {
	align, err := toast.ParseAlignment(c.Alignment)
	if err != nil {
		return toast.Options{}, err
	}
	transition, err := toast.ParseTransition(c.Transition)
	if err != nil {
		return toast.Options{}, err
	}
	curve, err := toast.ParseCurve(c.Curve)
	if err != nil {
		return toast.Options{}, err
	}

	opts := toast.NewOptions(
		toast.WithHideAfter(c.HideAfter),
		toast.WithDismissOnTap(c.DismissOnTap),
		toast.WithAlignment(align),
		toast.WithTransition(transition),
		toast.WithAnimation(toast.Animation{Duration: c.AnimationDuration, Curve: curve}),
		toast.WithDragThreshold(c.DragThreshold),
		toast.WithMargin(c.Margin),
	)
	if c.Backdrop {
		opts.Backdrop = &toast.Backdrop{}
	}
	return opts, nil
}

// Save writes cfg to path as JSON, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"hide_after":     cfg.HideAfter.String(),
		"dismiss_on_tap": cfg.DismissOnTap,
		"alignment":      cfg.Alignment,
		"transition":     cfg.Transition,
		"curve":          cfg.Curve,
		"animation":      cfg.AnimationDuration.String(),
		"backdrop":       cfg.Backdrop,
		"drag_threshold": cfg.DragThreshold,
		"margin":         cfg.Margin,
		"width":          cfg.Width,
		"level":          cfg.Level,
	}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
