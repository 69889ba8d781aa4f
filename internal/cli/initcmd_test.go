package cli

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goban-dev/goban/pkg/config"
)

func TestInitCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)

	t.Run("writes starter config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		cmd := c.initCommand()
		cmd.SetArgs([]string{path})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init error = %v", err)
		}

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("starter config does not load: %v", err)
		}
		// The starter file spells out the defaults; loading it must
		// round-trip to Default().
		if !reflect.DeepEqual(cfg, config.Default()) {
			t.Errorf("loaded starter config = %+v, want defaults", cfg)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("grid_size = 9\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cmd := c.initCommand()
		cmd.SetArgs([]string{path})
		if err := cmd.Execute(); err == nil {
			t.Error("init overwrote an existing file without --force")
		}
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("grid_size = 9\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cmd := c.initCommand()
		cmd.SetArgs([]string{path, "--force"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("init --force error = %v", err)
		}
		cfg, err := config.Load(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.GridSize != 19 {
			t.Errorf("GridSize = %d, want 19 after overwrite", cfg.GridSize)
		}
	})
}
