package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/goban-dev/goban/pkg/config"
	"github.com/goban-dev/goban/pkg/pipeline"
)

// shutdownTimeout bounds graceful server shutdown after interrupt.
const shutdownTimeout = 5 * time.Second

// indexTemplate lists the rendered variants with inline previews.
var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>goban preview</title>
<style>
  body { font-family: sans-serif; margin: 2rem; background: #f4f1ea; }
  h1 { font-size: 1.4rem; }
  figure { display: inline-block; margin: 1rem; text-align: center; }
  img { max-width: 420px; border: 1px solid #ccc; background: #fff; }
  figcaption { margin-top: 0.5rem; color: #555; }
</style>
</head>
<body>
<h1>goban preview</h1>
<p>Edit config.toml or the SGF file and reload.</p>
{{range .}}<figure>
  <a href="/svg/{{.Name}}"><img src="/svg/{{.Name}}" alt="{{.Variant}}"></a>
  <figcaption>{{.Name}}</figcaption>
</figure>
{{end}}
</body>
</html>
`))

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	configPath string
	sgfPath    string
	addr       string
}

// serveCommand creates the serve command: a small preview server that
// re-renders the configured variants on every request, so config or SGF
// edits show up on browser reload.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview rendered diagrams in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.toml", "configuration file")
	cmd.Flags().StringVar(&opts.sgfPath, "sgf", "", "SGF file to overlay (enables the overlay)")
	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8390", "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	// Render once up front so configuration errors surface before the
	// server starts listening.
	if _, err := c.renderPreview(opts); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Get("/", c.handleIndex(opts))
	r.Get("/svg/{name}", c.handleSVG(opts))

	server := &http.Server{Addr: opts.addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	c.Logger.Infof("Preview server listening on http://%s", opts.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// renderPreview runs the pipeline with freshly loaded inputs.
func (c *CLI) renderPreview(opts *serveOpts) (pipeline.Result, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return pipeline.Result{}, err
	}
	if opts.sgfPath != "" {
		cfg.SGF.Enabled = true
		cfg.SGF.Path = opts.sgfPath
	}
	recordText := readRecord(cfg, c.Logger)
	return pipeline.NewRunner(c.Logger).Run(cfg, recordText)
}

func (c *CLI) handleIndex(opts *serveOpts) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		result, err := c.renderPreview(opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTemplate.Execute(w, result.Artifacts); err != nil {
			c.Logger.Warnf("Template render failed: %v", err)
		}
	}
}

func (c *CLI) handleSVG(opts *serveOpts) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		result, err := c.renderPreview(opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		name := chi.URLParam(req, "name")
		for _, artifact := range result.Artifacts {
			if artifact.Name == name {
				w.Header().Set("Content-Type", "image/svg+xml")
				w.Header().Set("Cache-Control", "no-store")
				_, _ = w.Write(artifact.Data)
				return
			}
		}
		http.Error(w, fmt.Sprintf("no such diagram: %s", name), http.StatusNotFound)
	}
}
