// Package pipeline provides the core diagram pipeline for goban.
//
// The pipeline runs three stages: parse the optional game record, merge
// setup stones and moves into the overlay, and render one artifact per
// configured export variant. It consumes a configuration value and the
// raw record text and performs no file I/O of its own; reading the config
// and record files and writing the artifacts is the caller's job.
//
// A malformed record is recoverable: the pipeline logs a warning and
// renders without an overlay. An invalid board size is fatal because no
// geometry can be built from it.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Run(cfg, sgfText)
//	if err != nil {
//	    return err
//	}
//	for _, a := range result.Artifacts {
//	    // persist a.Data under a.Name
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/config"
	"github.com/goban-dev/goban/pkg/export"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/sgf"
)

// Runner executes the diagram pipeline.
type Runner struct {
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil logger discards all output.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the board geometry actually rendered; a valid SZ property
	// in the record overrides the configured size.
	Spec board.Spec

	// Stones and Numbers are the overlay, nil when no record was given
	// or the record failed to parse.
	Stones  []overlay.Stone
	Numbers []overlay.Number

	// Artifacts holds one rendered diagram per recognized export variant.
	Artifacts []export.Artifact

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime  time.Duration
	RenderTime time.Duration
}

// Run executes the pipeline. recordText is the raw SGF document, or empty
// when no overlay is wanted.
func (r *Runner) Run(cfg config.Config, recordText string) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	spec, err := board.ComputeSpec(cfg.GridSize)
	if err != nil {
		return Result{}, err
	}

	var result Result
	if recordText != "" {
		start := time.Now()
		rec, parseErr := sgf.Parse(recordText)
		result.Stats.ParseTime = time.Since(start)

		if parseErr != nil {
			r.logger.Warnf("Could not parse game record, rendering without overlay: %v", parseErr)
		} else {
			if override, ok := sizeOverride(rec.Size); ok {
				r.logger.Debugf("Record SZ overrides board size: %d", rec.Size)
				spec = override
			}
			stones, numbers := overlay.Build(rec, cfg.OverlayOptions())
			result.Stones = stones.Stones()
			result.Numbers = numbers
			r.logger.Debugf("Overlay: %d stones, %d numbers", stones.Len(), len(numbers))
		}
	}
	result.Spec = spec

	start := time.Now()
	artifacts, unknown := export.Plan(cfg, spec, result.Stones, result.Numbers)
	result.Stats.RenderTime = time.Since(start)
	for _, v := range unknown {
		r.logger.Warnf("Unknown export variant %q (use board|stones|both)", v)
	}
	result.Artifacts = artifacts

	return result, nil
}

// sizeOverride returns the geometry for a record's SZ value when it names
// a supported size. Unsupported sizes are ignored and the configured
// geometry stands.
func sizeOverride(size int) (board.Spec, bool) {
	switch size {
	case 9, 13, 19:
		spec, err := board.ComputeSpec(size)
		return spec, err == nil
	default:
		return board.Spec{}, false
	}
}
