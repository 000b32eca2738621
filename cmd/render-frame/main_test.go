package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testConfig(t *testing.T) config {
	t.Helper()
	return config{
		width:        320,
		height:       240,
		assetTimeout: time.Second,
		seed:         7,
		size:         24,
		steps:        30,
		out:          filepath.Join(t.TempDir(), "frame.png"),
	}
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return img
}

func TestRun_WritesFrameWithoutAssets(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	img := readPNG(t, cfg.out)
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("frame size = %v, want 320x240", b.Size())
	}
	for _, want := range []string{"camera x=", "viewport=320x240 tile=32", "wrote "} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "canvas ops") {
		t.Fatal("trace output without -trace")
	}
}

func TestRun_PartialAssetsAndTrace(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	floor := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(floor.Pix); i += 4 {
		floor.Pix[i], floor.Pix[i+1], floor.Pix[i+2], floor.Pix[i+3] = 40, 40, 40, 255
	}
	f, err := os.Create(filepath.Join(dir, "images", "floor-tile.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, floor); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := testConfig(t)
	cfg.assetDir = dir
	cfg.trace = true
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "assets: 12/13 failed to load") {
		t.Fatalf("expected failure summary:\n%s", s)
	}
	if !strings.Contains(s, "image  floor") {
		t.Fatalf("trace should list floor draws:\n%s", s)
	}
}

func TestConfigValidate(t *testing.T) {
	good := config{width: 10, height: 10, size: 5, out: "x.png"}
	if err := good.validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	bad := []config{
		{width: 0, height: 10, size: 5, out: "x.png"},
		{width: 10, height: 10, size: 0, out: "x.png"},
		{width: 10, height: 10, size: 5, steps: -1, out: "x.png"},
		{width: 10, height: 10, size: 5},
	}
	for i, c := range bad {
		if err := c.validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
