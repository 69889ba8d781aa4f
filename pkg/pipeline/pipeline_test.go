package pipeline

import (
	"strings"
	"testing"

	"github.com/goban-dev/goban/pkg/config"
	goberrors "github.com/goban-dev/goban/pkg/errors"
)

func TestRunWithoutOverlay(t *testing.T) {
	runner := NewRunner(nil)
	result, err := runner.Run(config.Default(), "")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Spec.Size != 19 {
		t.Errorf("Spec.Size = %d, want 19", result.Spec.Size)
	}
	if result.Stones != nil || result.Numbers != nil {
		t.Error("overlay present without record text")
	}
	if len(result.Artifacts) != 1 {
		t.Fatalf("len(Artifacts) = %d, want 1", len(result.Artifacts))
	}
	if result.Artifacts[0].Name != "go_19x19_both.svg" {
		t.Errorf("artifact name = %q", result.Artifacts[0].Name)
	}
}

func TestRunWithRecord(t *testing.T) {
	cfg := config.Default()
	cfg.SGF.Enabled = true
	cfg.SGF.Render.Numbering = "moves"

	result, err := NewRunner(nil).Run(cfg, "(;SZ[13];B[dd];W[jj])")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// SZ overrides the configured 19.
	if result.Spec.Size != 13 {
		t.Errorf("Spec.Size = %d, want 13 (SZ override)", result.Spec.Size)
	}
	if len(result.Stones) != 2 {
		t.Errorf("len(Stones) = %d, want 2", len(result.Stones))
	}
	if len(result.Numbers) != 2 {
		t.Errorf("len(Numbers) = %d, want 2", len(result.Numbers))
	}
	if !strings.Contains(string(result.Artifacts[0].Data), "<circle") {
		t.Error("rendered markup has no stones")
	}
}

func TestRunUnsupportedSZIgnored(t *testing.T) {
	result, err := NewRunner(nil).Run(config.Default(), "(;SZ[21];B[dd])")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Spec.Size != 19 {
		t.Errorf("Spec.Size = %d, want configured 19 for unsupported SZ", result.Spec.Size)
	}
}

// A record that fails to parse must not sink the run; the diagrams are
// rendered without an overlay.
func TestRunMalformedRecordRecoverable(t *testing.T) {
	result, err := NewRunner(nil).Run(config.Default(), ";AB]dd]")
	if err != nil {
		t.Fatalf("Run() error = %v, want recoverable fallback", err)
	}
	if result.Stones != nil {
		t.Error("stones present after parse failure")
	}
	if len(result.Artifacts) != 1 {
		t.Errorf("len(Artifacts) = %d, want 1", len(result.Artifacts))
	}
}

func TestRunInvalidSizeFatal(t *testing.T) {
	cfg := config.Default()
	cfg.GridSize = 21
	_, err := NewRunner(nil).Run(cfg, "")
	if !goberrors.Is(err, goberrors.ErrCodeInvalidSize) {
		t.Errorf("Run() error = %v, want INVALID_SIZE", err)
	}
}
