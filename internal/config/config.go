package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ensigniasec/pythagoras/internal/geometry"
	"github.com/ensigniasec/pythagoras/internal/triangle"
	"github.com/ensigniasec/pythagoras/internal/validate"
)

const (
	// DefaultPath is where the CLI looks for a config file when --config is not given.
	DefaultPath = "~/.config/pythagoras/config.yaml"

	maxConfigSize = 1024 * 1024 // 1MB is far more than any sane config
)

// ErrInvalidConfig wraps validation failures of a loaded config.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the widget ranges, canvas size and export settings.
type Config struct {
	Canvas  Canvas  `yaml:"canvas"`
	Sliders Sliders `yaml:"sliders"`
	Initial Initial `yaml:"initial"`
	Export  Export  `yaml:"export"`
}

// Canvas is the logical drawing-surface size in pixels.
type Canvas struct {
	Width  int `yaml:"width" validate:"gte=1"`
	Height int `yaml:"height" validate:"gte=1"`
}

// Slider is the range configuration of one side's input widget.
type Slider struct {
	Min  float64 `yaml:"min" validate:"side_length"`
	Max  float64 `yaml:"max" validate:"gtfield=Min"`
	Step float64 `yaml:"step" validate:"gt=0"`
}

type Sliders struct {
	A Slider `yaml:"a"`
	B Slider `yaml:"b"`
	C Slider `yaml:"c"`
}

// Initial is the startup triple. A preset key, when set, wins over A/B/C.
type Initial struct {
	A      float64 `yaml:"a" validate:"side_length"`
	B      float64 `yaml:"b" validate:"side_length"`
	C      float64 `yaml:"c" validate:"side_length"`
	Preset string  `yaml:"preset" validate:"omitempty,preset_key"`
}

type Export struct {
	Supersample int `yaml:"supersample" validate:"gte=1,lte=8"`
}

// Default returns the built-in configuration.
func Default() Config {
	slider := Slider{Min: 1, Max: 20, Step: 0.1}
	start := triangle.DefaultState()
	return Config{
		Canvas:  Canvas{Width: geometry.DefaultWidth, Height: geometry.DefaultHeight},
		Sliders: Sliders{A: slider, B: slider, C: slider},
		Initial: Initial{A: start.A, B: start.B, C: start.C},
		Export:  Export{Supersample: 2},
	}
}

// Load reads a YAML config from path. Fields absent from the file keep their
// defaults. A missing file yields Default() without error.
func Load(path string) (Config, error) {
	cfg := Default()

	expandedPath, err := expandTilde(path)
	if err != nil {
		return cfg, err
	}
	logrus.Debug("Loading config file from: ", expandedPath)

	data, err := readFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Debugf("config %s not found; using defaults", expandedPath)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", expandedPath, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", expandedPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// InitialState returns the startup triple.
func (c Config) InitialState() triangle.State {
	if p, ok := triangle.PresetForKey(c.Initial.Preset); ok {
		return p.Apply()
	}
	return triangle.State{A: c.Initial.A, B: c.Initial.B, C: c.Initial.C}
}

// Slider returns the range configuration for side.
func (c Config) Slider(side triangle.Side) Slider {
	switch side {
	case triangle.SideB:
		return c.Sliders.B
	case triangle.SideC:
		return c.Sliders.C
	default:
		return c.Sliders.A
	}
}

// Viewport returns the canvas size as a layout viewport.
func (c Config) Viewport() geometry.Viewport {
	return geometry.Viewport{Width: float64(c.Canvas.Width), Height: float64(c.Canvas.Height)}
}

// readFile reads a file with a size limit.
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	return io.ReadAll(io.LimitReader(file, maxConfigSize))
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
