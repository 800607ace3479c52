// Command pathedit replays an editing script, prints the resulting path as
// gg code and exports the drawing to PNG, PDF or SVG.
//
// Usage:
//
//	pathedit -script session.yaml -o drawing.png -o drawing.svg
//	pathedit -config pathedit.yaml -script session.yaml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pathedit"
	"github.com/gogpu/pathedit/export"
	_ "github.com/gogpu/pathedit/export/pdf"
	_ "github.com/gogpu/pathedit/export/raster"
	_ "github.com/gogpu/pathedit/export/svg"
	"github.com/gogpu/pathedit/internal/config"
	"github.com/gogpu/pathedit/internal/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "configuration file (.yaml or .toml)")
		scriptPath = flag.String("script", "", "editing script to replay")
		width      = flag.Int("width", 0, "canvas width, overrides the configuration")
		height     = flag.Int("height", 0, "canvas height, overrides the configuration")
		threshold  = flag.Float64("drag-threshold", 0, "click/drag threshold, overrides the configuration")
		showCode   = flag.Bool("show-code", false, "draw the code text into exports")
		quiet      = flag.Bool("q", false, "do not print the code text")
		verbose    = flag.Bool("v", false, "log editing events to stderr")
		watch      = flag.Bool("watch", false, "rebuild whenever the script or configuration changes")
	)
	var outputs []config.Output
	flag.Func("o", "export `target` as path or backend=path, repeatable", func(s string) error {
		out, err := parseOutput(s)
		if err != nil {
			return err
		}
		outputs = append(outputs, out)
		return nil
	})
	flag.Parse()

	if *verbose {
		pathedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	load := func() (config.Config, error) {
		cfg := config.Default()
		if *configPath != "" {
			var err error
			if cfg, err = config.Load(*configPath); err != nil {
				return cfg, err
			}
		}
		if set["width"] {
			cfg.Canvas.Width = *width
		}
		if set["height"] {
			cfg.Canvas.Height = *height
		}
		if set["drag-threshold"] {
			cfg.DragThreshold = *threshold
		}
		if set["show-code"] {
			cfg.Style.ShowCode = *showCode
		}
		cfg.Outputs = append(cfg.Outputs, outputs...)
		return cfg, cfg.Validate()
	}

	stdout := io.Writer(os.Stdout)
	if *quiet {
		stdout = io.Discard
	}
	rebuild := func() error {
		cfg, err := load()
		if err != nil {
			return err
		}
		return build(cfg, *scriptPath, stdout)
	}

	if err := rebuild(); err != nil {
		if !*watch {
			log.Fatal(err)
		}
		log.Print(err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := load()
	if err != nil {
		cfg = config.Default()
	}
	files := []string{*scriptPath, *configPath}
	if err := watchFiles(ctx, files, cfg.Debounce.Duration(), rebuild); err != nil {
		log.Fatal(err)
	}
}

// parseOutput reads an -o value: either a path whose extension names the
// backend, or backend=path.
func parseOutput(s string) (config.Output, error) {
	out := config.Output{Path: s}
	if name, path, ok := strings.Cut(s, "="); ok {
		out = config.Output{Backend: name, Path: path}
	}
	if out.Path == "" {
		return out, fmt.Errorf("empty output path in %q", s)
	}
	if out.BackendName() == "" {
		return out, fmt.Errorf("cannot derive backend from %q, use backend=path", s)
	}
	return out, nil
}

// build replays the script into a fresh editor, writes the code text to w
// and renders every configured output.
func build(cfg config.Config, scriptPath string, w io.Writer) error {
	ed := pathedit.NewEditor(cfg.Options()...)
	if scriptPath != "" {
		s, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		if err := script.Run(ed, s); err != nil {
			return fmt.Errorf("%s: %w", scriptPath, err)
		}
	}

	if _, err := fmt.Fprintln(w, ed.SourceCode()); err != nil {
		return err
	}

	scene := export.SceneOf(ed, cfg.Canvas.Width, cfg.Canvas.Height)
	scene.Style = cfg.ExportStyle()

	var g errgroup.Group
	for _, out := range cfg.Outputs {
		g.Go(func() error {
			return exportTo(scene, out)
		})
	}
	return g.Wait()
}

func exportTo(scene export.Scene, out config.Output) error {
	b, err := export.NewBackend(out.BackendName())
	if err != nil {
		return err
	}
	if err := export.Render(b, scene); err != nil {
		return fmt.Errorf("%s: %w", out.Path, err)
	}

	if fb, ok := b.(export.FileBackend); ok {
		err = fb.SaveToFile(out.Path)
	} else if wb, ok := b.(export.WriterBackend); ok {
		err = writeFile(out.Path, wb)
	} else {
		err = fmt.Errorf("backend %q cannot write output", out.BackendName())
	}
	if err != nil {
		return fmt.Errorf("%s: %w", out.Path, err)
	}
	pathedit.Logger().Info("pathedit: exported", "backend", out.BackendName(), "path", out.Path)
	return nil
}

func writeFile(path string, wb export.WriterBackend) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wb.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
