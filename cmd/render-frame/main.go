package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/render"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

type config struct {
	width, height int
	assetDir      string
	assetTimeout  time.Duration
	seed          int64
	size          int
	steps         int
	out           string
	trace         bool
	copyReport    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 1280, "frame width in pixels")
	flag.IntVar(&cfg.height, "height", 720, "frame height in pixels")
	flag.StringVar(&cfg.assetDir, "assets", "", "asset root directory (empty = colour fallbacks only)")
	flag.DurationVar(&cfg.assetTimeout, "asset-timeout", 10*time.Second, "how long to wait for assets")
	flag.Int64Var(&cfg.seed, "seed", 42, "dungeon RNG seed")
	flag.IntVar(&cfg.size, "size", 48, "dungeon edge length in tiles")
	flag.IntVar(&cfg.steps, "steps", 0, "world steps to simulate before rendering")
	flag.StringVar(&cfg.out, "out", "frame.png", "output PNG path")
	flag.BoolVar(&cfg.trace, "trace", false, "print every canvas operation")
	flag.BoolVar(&cfg.copyReport, "copy", false, "copy the frame report to the clipboard")
	flag.Parse()

	if err := cfg.validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func (c config) validate() error {
	switch {
	case c.width <= 0 || c.height <= 0:
		return errors.New("-width and -height must be > 0")
	case c.size <= 0:
		return errors.New("-size must be > 0")
	case c.steps < 0:
		return errors.New("-steps must be >= 0")
	case c.out == "":
		return errors.New("-out must be set")
	}
	return nil
}

func run(cfg config, stdout io.Writer) error {
	manifest := assets.Manifest{}
	var fetcher assets.Fetcher = assets.DirFetcher{Root: cfg.assetDir}
	if cfg.assetDir != "" {
		manifest = assets.DefaultManifest()
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.assetTimeout)
	defer cancel()
	batch := assets.Load(manifest, fetcher, nil)
	table, err := batch.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for assets: %w", err)
	}
	if failed := len(batch.Failures()); failed > 0 {
		fmt.Fprintf(stdout, "assets: %d/%d failed to load\n", failed, len(manifest))
	}

	world := scene.NewWorld(scene.WithSeed(cfg.seed), scene.WithSize(cfg.size))
	for i := 0; i < cfg.steps; i++ {
		world.Step()
	}
	sc := world.Snapshot()

	vp := render.NewViewport(cfg.width, cfg.height)
	raster := render.NewRasterCanvas(cfg.width, cfg.height)
	var canvas render.Canvas = raster
	var tr *render.Trace
	if cfg.trace {
		tr = render.NewTrace(cfg.width, cfg.height, table).Tee(raster)
		canvas = tr
	}

	frame, ok := render.New().Render(canvas, table, vp, sc)
	if !ok {
		return errors.New("nothing rendered")
	}

	if err := writePNG(cfg.out, raster); err != nil {
		return err
	}

	report := render.Report(frame, vp, sc)
	fmt.Fprint(stdout, report)
	fmt.Fprintf(stdout, "wrote %s\n", cfg.out)

	if tr != nil {
		fmt.Fprintf(stdout, "--- canvas ops (%d) ---\n", len(tr.Ops()))
		for _, op := range tr.Ops() {
			fmt.Fprintln(stdout, op)
		}
	}

	if cfg.copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			// Headless machines often have no clipboard; the report is already printed.
			log.Printf("clipboard: %v", err)
		}
	}
	return nil
}

func writePNG(path string, rc *render.RasterCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, rc.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
