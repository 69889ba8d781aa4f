// Package config defines the goban configuration value object and its
// TOML loader.
//
// The render pipeline consumes a Config value and never touches the
// filesystem itself; Load is the glue that reads config.toml from disk.
// A missing file yields the defaults, a present but unparseable file is
// an INVALID_CONFIG error, and a board size outside {9, 13, 19} is an
// INVALID_SIZE error that aborts the run.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/goban-dev/goban/pkg/errors"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/render"
)

// Background rules for export variants.
const (
	// BackgroundTransparent suppresses the background rectangle.
	BackgroundTransparent = "transparent"

	// BackgroundFromConfig uses the global background_color.
	BackgroundFromConfig = "use_config_background"

	// Any other value is taken literally as a CSS color.
)

// Export variant names.
const (
	VariantBoard  = "board"
	VariantStones = "stones"
	VariantBoth   = "both"
)

// Config is the top-level configuration.
type Config struct {
	GridSize        int     `toml:"grid_size"`
	LineThickness   float64 `toml:"line_thickness"`
	StarDiameter    float64 `toml:"star_diameter"`
	GridColor       string  `toml:"grid_color"`
	BackgroundColor string  `toml:"background_color"`
	SGF             SGF     `toml:"sgf"`
	Export          Export  `toml:"export"`
}

// SGF controls the optional game-record overlay.
type SGF struct {
	Enabled bool          `toml:"enabled"`
	Path    string        `toml:"path"`
	Render  RenderOptions `toml:"render"`
}

// RenderOptions controls how the overlay is drawn.
type RenderOptions struct {
	Mode                string  `toml:"mode"`       // "position" | "moves"
	MovesLimit          int     `toml:"moves_limit"` // 0 = all
	Numbering           string  `toml:"numbering"`  // "none" | "moves" | "all"
	NumberColor         string  `toml:"number_color"`
	OutlineColor        string  `toml:"outline_color"`
	StoneRadiusScale    float64 `toml:"stone_radius_scale"`
	MoveNumberFontScale float64 `toml:"move_number_font_scale"`
}

// Export controls which diagram variants are produced and their
// backgrounds.
type Export struct {
	Variants         []string `toml:"variants"` // board | stones | both
	BoardBackground  string   `toml:"board_background"`
	StonesBackground string   `toml:"stones_background"`
	BothBackground   string   `toml:"both_background"`
	NameSuffix       string   `toml:"name_suffix"`
}

// Default returns the stock configuration: a bare 19x19 board exported as
// the "both" variant on the config background.
func Default() Config {
	return Config{
		GridSize:        19,
		LineThickness:   1.0,
		StarDiameter:    2.2,
		GridColor:       "black",
		BackgroundColor: "white",
		SGF: SGF{
			Render: RenderOptions{
				Mode:                string(overlay.ModePosition),
				Numbering:           string(overlay.NumberingNone),
				NumberColor:         "#ffffff",
				OutlineColor:        "#000000",
				StoneRadiusScale:    0.42,
				MoveNumberFontScale: 0.44,
			},
		},
		Export: Export{
			Variants:         []string{VariantBoth},
			BoardBackground:  BackgroundFromConfig,
			StonesBackground: BackgroundTransparent,
			BothBackground:   BackgroundFromConfig,
		},
	}
}

// Load reads a TOML configuration file and validates it. A missing file
// is not an error; it yields Default(). Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "could not read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "could not parse %s", path)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize lowercases the literal-valued fields the way the loader
// accepts them, so "Position" and "position" mean the same thing.
func (c *Config) normalize() {
	c.SGF.Render.Mode = fold(c.SGF.Render.Mode)
	c.SGF.Render.Numbering = fold(c.SGF.Render.Numbering)
	for i, v := range c.Export.Variants {
		c.Export.Variants[i] = fold(v)
	}
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks the fields whose failure must abort the run. Unknown
// export variants are deliberately not checked here; the planner warns
// and skips them.
func (c Config) Validate() error {
	switch c.GridSize {
	case 9, 13, 19:
	default:
		return errors.New(errors.ErrCodeInvalidSize, "grid_size must be 9, 13, or 19 (got %d)", c.GridSize)
	}
	switch overlay.Mode(c.SGF.Render.Mode) {
	case overlay.ModePosition, overlay.ModeMoves:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "sgf.render.mode must be 'position' or 'moves' (got %q)", c.SGF.Render.Mode)
	}
	switch overlay.Numbering(c.SGF.Render.Numbering) {
	case overlay.NumberingNone, overlay.NumberingMoves, overlay.NumberingAll:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "sgf.render.numbering must be 'none', 'moves', or 'all' (got %q)", c.SGF.Render.Numbering)
	}
	return nil
}

// OverlayOptions maps the SGF render block to overlay build options.
func (c Config) OverlayOptions() overlay.Options {
	return overlay.Options{
		Mode:       overlay.Mode(c.SGF.Render.Mode),
		MovesLimit: c.SGF.Render.MovesLimit,
		Numbering:  overlay.Numbering(c.SGF.Render.Numbering),
	}
}

// Style maps the configuration to diagram style parameters. The overlay
// colors and scales are only honored while the overlay is enabled;
// otherwise the stock values apply.
func (c Config) Style() render.Style {
	st := render.DefaultStyle()
	st.LineThickness = c.LineThickness
	st.StarDiameter = c.StarDiameter
	st.GridColor = c.GridColor
	if c.SGF.Enabled {
		st.NumberColor = c.SGF.Render.NumberColor
		st.OutlineColor = c.SGF.Render.OutlineColor
		st.StoneRadiusScale = c.SGF.Render.StoneRadiusScale
		st.NumberFontScale = c.SGF.Render.MoveNumberFontScale
	}
	return st
}
