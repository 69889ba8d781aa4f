package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goban-dev/goban/pkg/config"
	"github.com/goban-dev/goban/pkg/export"
	"github.com/goban-dev/goban/pkg/pipeline"
	"github.com/goban-dev/goban/pkg/render"
)

// Output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"

	// pngScale is the rasterization scale for PNG output (2x resolution).
	pngScale = 2.0
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true}

// renderOpts holds the command-line flags for the render command.
// Flags override the corresponding config.toml fields when set.
type renderOpts struct {
	configPath string   // config file path
	sgfPath    string   // SGF file override (implies overlay enabled)
	outDir     string   // output directory
	size       int      // board size override
	variants   []string // export variant override
	suffix     string   // filename suffix override
	formats    []string // output formats: "svg", "png", "pdf"
}

// renderCommand creates the render command, the main entry point of the
// tool: config + optional SGF in, one file per variant and format out.
func (c *CLI) renderCommand() *cobra.Command {
	var variantsStr, formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render board diagrams to SVG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.variants = parseList(variantsStr)
			opts.formats = parseList(formatsStr)
			if len(opts.formats) == 0 {
				opts.formats = []string{formatSVG}
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.toml", "configuration file")
	cmd.Flags().StringVar(&opts.sgfPath, "sgf", "", "SGF file to overlay (enables the overlay)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&opts.size, "size", 0, "board size override: 9, 13, or 19")
	cmd.Flags().StringVarP(&variantsStr, "variants", "t", "", "export variants: board, stones, both (comma-separated)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", "", "output filename suffix override")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// runRender loads the configuration, reads the record text if the
// overlay is active, runs the pipeline, and writes every artifact once.
func (c *CLI) runRender(opts *renderOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts)

	recordText := readRecord(cfg, c.Logger)

	runner := pipeline.NewRunner(c.Logger)
	result, err := runner.Run(cfg, recordText)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Pipeline done: %d artifacts (parse %s, render %s)",
		len(result.Artifacts), result.Stats.ParseTime, result.Stats.RenderTime)

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return err
	}
	for _, artifact := range result.Artifacts {
		for _, format := range opts.formats {
			if err := c.writeArtifact(artifact, format, opts.outDir); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyOverrides folds command-line flags into the loaded configuration.
func applyOverrides(cfg *config.Config, opts *renderOpts) {
	if opts.size != 0 {
		cfg.GridSize = opts.size
	}
	if len(opts.variants) > 0 {
		cfg.Export.Variants = opts.variants
	}
	if opts.suffix != "" {
		cfg.Export.NameSuffix = opts.suffix
	}
	if opts.sgfPath != "" {
		cfg.SGF.Enabled = true
		cfg.SGF.Path = opts.sgfPath
	}
}

// readRecord plays the external-collaborator role for the record file:
// it distinguishes "overlay disabled", "no path", "file missing", and
// "file unreadable", and on any of them the pipeline simply runs without
// an overlay. Only the pipeline itself decides whether the text parses.
func readRecord(cfg config.Config, logger *log.Logger) string {
	if !cfg.SGF.Enabled {
		return ""
	}
	if cfg.SGF.Path == "" {
		logger.Warn("sgf.enabled is true but no path provided; exporting without stones")
		return ""
	}
	data, err := os.ReadFile(cfg.SGF.Path)
	if os.IsNotExist(err) {
		logger.Warnf("SGF file not found: %s; exporting without stones", cfg.SGF.Path)
		return ""
	}
	if err != nil {
		logger.Warnf("Could not read SGF file %s: %v; exporting without stones", cfg.SGF.Path, err)
		return ""
	}
	return string(data)
}

// writeArtifact persists one artifact in the requested format, converting
// from SVG where needed.
func (c *CLI) writeArtifact(artifact export.Artifact, format, outDir string) error {
	data := artifact.Data
	name := artifact.Name

	var err error
	switch format {
	case formatPNG:
		data, err = render.ToPNG(data, pngScale)
	case formatPDF:
		data, err = render.ToPDF(data)
	}
	if err != nil {
		return fmt.Errorf("%s/%s: %w", artifact.Variant, format, err)
	}
	if format != formatSVG {
		name = strings.TrimSuffix(name, ".svg") + "." + format
	}

	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.Logger.Infof("Wrote %s", path)
	return nil
}
