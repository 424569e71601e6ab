package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/image/colornames"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/render"
	"github.com/dyed-eye/posteuclid/tiling"
)

// Prefix is prepended to every variable name, e.g. HYPERTILE_DEPTH.
const Prefix = "HYPERTILE"

const (
	ModelPoincare    = "poincare"
	ModelWeierstrass = "weierstrass"

	FormatSVG = "svg"
	FormatPNG = "png"
)

type Config struct {
	N            int        `envconfig:"N" default:"4"`
	K            int        `envconfig:"K" default:"6"`
	Depth        int        `envconfig:"DEPTH" default:"3"`
	Tolerance    float64    `envconfig:"TOLERANCE" default:"0"` // 0 derives it from the edge length
	Model        string     `envconfig:"MODEL" default:"poincare"`
	Format       string     `envconfig:"FORMAT" default:"svg"`
	Output       string     `envconfig:"OUTPUT" default:"-"` // "-" is stdout
	Size         int        `envconfig:"SIZE" default:"1024"`
	Stroke       string     `envconfig:"STROKE" default:"black"`
	Background   string     `envconfig:"BACKGROUND" default:"white"`
	LineWidth    float64    `envconfig:"LINE_WIDTH" default:"0.002"`
	ViewX        float64    `envconfig:"VIEW_X" default:"0"`
	ViewY        float64    `envconfig:"VIEW_Y" default:"0"`
	ViewRotation float64    `envconfig:"VIEW_ROTATION" default:"0"`
	Vertices     bool       `envconfig:"VERTICES" default:"false"`
	LogLevel     slog.Level `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Schlafli() tiling.Schlafli {
	return tiling.Schlafli{N: c.N, K: c.K}
}

func (c *Config) Validate() error {
	if !c.Schlafli().Hyperbolic() {
		return fmt.Errorf("%w: %v does not tile the hyperbolic plane", posteuclid.ErrConstruction, c.Schlafli())
	}
	if c.Depth < 0 {
		return fmt.Errorf("%w: negative depth %d", posteuclid.ErrConstruction, c.Depth)
	}
	if !(c.Tolerance >= 0) {
		return fmt.Errorf("%w: negative tolerance %g", posteuclid.ErrConstruction, c.Tolerance)
	}
	switch c.Model {
	case ModelPoincare, ModelWeierstrass:
	default:
		return fmt.Errorf("%w: unknown model %q", posteuclid.ErrConstruction, c.Model)
	}
	switch c.Format {
	case FormatSVG, FormatPNG:
	default:
		return fmt.Errorf("%w: unknown format %q", posteuclid.ErrConstruction, c.Format)
	}
	if c.ViewX*c.ViewX+c.ViewY*c.ViewY >= 1 {
		return fmt.Errorf("%w: view center (%g, %g) is outside the disk", posteuclid.ErrConstruction, c.ViewX, c.ViewY)
	}
	if _, err := c.RenderOptions(); err != nil {
		return err
	}
	return nil
}

// RenderOptions converts the output settings.
func (c *Config) RenderOptions() (render.Options, error) {
	o := render.DefaultOptions()
	o.Size = c.Size
	o.LineWidth = c.LineWidth
	var err error
	if o.Stroke, err = lookupColor(c.Stroke); err != nil {
		return o, err
	}
	if o.Background, err = lookupColor(c.Background); err != nil {
		return o, err
	}
	if o.Size <= 0 {
		return o, fmt.Errorf("%w: size %d must be positive", posteuclid.ErrConstruction, o.Size)
	}
	if o.LineWidth <= 0 {
		return o, fmt.Errorf("%w: line width %g must be positive", posteuclid.ErrConstruction, o.LineWidth)
	}
	return o, nil
}

func lookupColor(name string) (color.Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color %q", posteuclid.ErrConstruction, name)
	}
	return c, nil
}
