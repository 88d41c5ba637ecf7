// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. 2048CIV_MAP_ROWS.
const Prefix = "2048civ"

const (
	DefaultMapRows      = 100
	DefaultMapCols      = 100
	DefaultFontPath     = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DefaultFontSize     = 16
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
	DefaultRadius       = 40
	DefaultGenerator    = "gradient"
)

// Count is an integer setting that never fails to load. A value that does
// not parse decodes as 0 and is then replaced by its default like any
// other non-positive override.
type Count int

func (n *Count) Decode(value string) error {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		v = 0
	}
	*n = Count(v)
	return nil
}

type Config struct {
	MapRows      Count  `envconfig:"MAP_ROWS" default:"100"`
	MapCols      Count  `envconfig:"MAP_COLS" default:"100"`
	FontPath     string `envconfig:"FONT" default:"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"`
	FontSize     Count  `envconfig:"FONT_SIZE" default:"16"`
	WindowWidth  Count  `envconfig:"WINDOW_WIDTH" default:"1000"`
	WindowHeight Count  `envconfig:"WINDOW_HEIGHT" default:"700"`
	Radius       Count  `envconfig:"RADIUS" default:"40"`
	Seed         int64  `envconfig:"SEED" default:"0"`
	Generator    string `envconfig:"GENERATOR" default:"gradient"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"INFO"`

	// Warnings lists overrides that were ignored, for the caller to log.
	Warnings []string `ignored:"true"`
}

// Load processes the environment and applies defaults to any
// non-positive or unparseable numeric override. Only a malformed SEED is
// an error.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	positive := func(key string, v *Count, def Count) {
		if *v <= 0 {
			c.Warnings = append(c.Warnings,
				fmt.Sprintf("%s_%s is not a positive integer, using %d", strings.ToUpper(Prefix), key, def))
			*v = def
		}
	}
	positive("MAP_ROWS", &c.MapRows, DefaultMapRows)
	positive("MAP_COLS", &c.MapCols, DefaultMapCols)
	positive("FONT_SIZE", &c.FontSize, DefaultFontSize)
	positive("WINDOW_WIDTH", &c.WindowWidth, DefaultWindowWidth)
	positive("WINDOW_HEIGHT", &c.WindowHeight, DefaultWindowHeight)
	positive("RADIUS", &c.Radius, DefaultRadius)
	if c.FontPath == "" {
		c.FontPath = DefaultFontPath
	}
	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
}
