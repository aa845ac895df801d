package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"valnoise/internal/noise"
)

func baseOptions(dir string) options {
	return options{
		view:    "plane",
		width:   32,
		height:  16,
		seed:    42,
		palette: "terrain",
		out:     filepath.Join(dir, "out.png"),
	}
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRunRendersEveryView(t *testing.T) {
	for _, name := range []string{"plane", "clouds", "density"} {
		dir := t.TempDir()
		opts := baseOptions(dir)
		opts.view = name
		opts.steps = 2
		var out bytes.Buffer
		if err := run(opts, &out); err != nil {
			t.Fatalf("%s: run: %v", name, err)
		}
		if w, h := decodeSize(t, opts.out); w != 32 || h != 16 {
			t.Fatalf("%s: image %dx%d, want 32x16", name, w, h)
		}
		if !strings.Contains(out.String(), "seed=42") {
			t.Fatalf("%s: summary missing seed: %q", name, out.String())
		}
	}
}

func TestRunSavedTableReproducesImage(t *testing.T) {
	dir := t.TempDir()
	first := baseOptions(dir)
	first.saveTable = filepath.Join(dir, "seed42.vnt")
	if err := run(first, &bytes.Buffer{}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	second := baseOptions(dir)
	second.seed = 7
	second.table = first.saveTable
	second.out = filepath.Join(dir, "reloaded.png")
	if err := run(second, &bytes.Buffer{}); err != nil {
		t.Fatalf("second run: %v", err)
	}

	a, err := os.ReadFile(first.out)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second.out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("image from loaded table differs from the original")
	}
}

func TestRunRejectsCorruptTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.vnt")
	if err := os.WriteFile(path, []byte("VNT1 too short"), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := baseOptions(dir)
	opts.table = path
	err := run(opts, &bytes.Buffer{})
	if !errors.Is(err, noise.ErrInvalidTable) {
		t.Fatalf("expected ErrInvalidTable, got %v", err)
	}
	if _, statErr := os.Stat(opts.out); !os.IsNotExist(statErr) {
		t.Fatalf("no image should be written for a corrupt table")
	}
}

func TestRunUnknownViewAndPalette(t *testing.T) {
	dir := t.TempDir()
	opts := baseOptions(dir)
	opts.view = "ridges"
	if err := run(opts, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown view")
	}
	opts = baseOptions(dir)
	opts.palette = "neon"
	if err := run(opts, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown palette")
	}
}

func TestViewConfigOmitsZeroFrequency(t *testing.T) {
	cfg := viewConfig(options{width: 10, height: 20})
	if _, ok := cfg["freq"]; ok {
		t.Fatalf("zero frequency should keep the view default")
	}
	cfg = viewConfig(options{width: 10, height: 20, freq: 0.125})
	if cfg["freq"] != "0.125" || cfg["w"] != "10" || cfg["h"] != "20" {
		t.Fatalf("unexpected config %v", cfg)
	}
}
