// Package export plans which diagram variants to render and names their
// output files.
//
// Each configured variant ("board", "stones", "both") is rendered
// independently with its own background rule. Unrecognized variant names
// are skipped, never fatal; Plan reports them back so the caller can warn.
package export

import (
	"fmt"
	"strings"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/config"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/render"
)

// Artifact is one rendered diagram variant.
type Artifact struct {
	Variant string // "board", "stones", or "both"
	Name    string // output file name, e.g. "go_19x19_board.svg"
	Data    []byte // SVG markup
}

// Plan renders every configured variant and returns the artifacts along
// with any unrecognized variant names. Stones and numbers may be nil when
// no overlay is available; the stone variants then simply come out empty.
func Plan(cfg config.Config, spec board.Spec, stones []overlay.Stone, numbers []overlay.Number) ([]Artifact, []string) {
	base := BaseName(spec.Size, cfg.Export.NameSuffix)
	style := cfg.Style()

	var artifacts []Artifact
	var unknown []string
	for _, variant := range cfg.Export.Variants {
		opts, ok := layerOptions(cfg, variant, stones, numbers)
		if !ok {
			unknown = append(unknown, variant)
			continue
		}
		opts = append(opts, render.WithStyle(style))
		artifacts = append(artifacts, Artifact{
			Variant: variant,
			Name:    fmt.Sprintf("%s_%s.svg", base, variant),
			Data:    render.RenderSVG(spec, opts...),
		})
	}
	return artifacts, unknown
}

// layerOptions selects the layers and background for one variant.
func layerOptions(cfg config.Config, variant string, stones []overlay.Stone, numbers []overlay.Number) ([]render.SVGOption, bool) {
	var opts []render.SVGOption
	var rule string

	switch variant {
	case config.VariantBoard:
		rule = cfg.Export.BoardBackground
		opts = append(opts, render.WithGrid())
	case config.VariantStones:
		rule = cfg.Export.StonesBackground
		opts = append(opts, render.WithStones(stones), render.WithNumbers(numbers))
	case config.VariantBoth:
		rule = cfg.Export.BothBackground
		opts = append(opts, render.WithGrid(), render.WithStones(stones), render.WithNumbers(numbers))
	default:
		return nil, false
	}

	if include, color := ChooseBackground(rule, cfg.BackgroundColor); include {
		opts = append(opts, render.WithBackground(color))
	}
	return opts, true
}

// ChooseBackground resolves a variant's background rule against the
// global background color: "transparent" draws no background rectangle,
// "use_config_background" uses the global color, and anything else is
// taken literally as a color.
func ChooseBackground(rule, configBackground string) (bool, string) {
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case config.BackgroundTransparent:
		return false, configBackground
	case config.BackgroundFromConfig:
		return true, configBackground
	default:
		return true, rule
	}
}

// BaseName combines the board size and an optional suffix into the
// output file base name, e.g. "go_19x19" or "go_13x13_joseki".
func BaseName(size int, suffix string) string {
	if suffix != "" {
		return fmt.Sprintf("go_%dx%d_%s", size, size, suffix)
	}
	return fmt.Sprintf("go_%dx%d", size, size)
}
