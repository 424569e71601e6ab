package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dyed-eye/posteuclid/internal/config"
)

func testConfig(t *testing.T, model, format string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		N: 4, K: 6, Depth: 1,
		Model: model, Format: format,
		Output:     filepath.Join(t.TempDir(), "out."+format),
		Size:       128,
		Stroke:     "black",
		Background: "white",
		LineWidth:  0.004,
		ViewX:      0.1,
		ViewY:      -0.2,
		Vertices:   true,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return cfg
}

func TestRunSVG(t *testing.T) {
	for _, model := range []string{config.ModelPoincare, config.ModelWeierstrass} {
		t.Run(model, func(t *testing.T) {
			cfg := testConfig(t, model, config.FormatSVG)
			if err := run(cfg); err != nil {
				t.Fatalf("run: %v", err)
			}
			data, err := os.ReadFile(cfg.Output)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			out := string(data)
			if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
				t.Errorf("output is not an svg document: %.80s", out)
			}
			// 12 vertices, 16 edges and the boundary circle.
			if n := strings.Count(out, "<circle"); n != 13 {
				t.Errorf("%d circles, want 13", n)
			}
		})
	}
}

func TestRunPNG(t *testing.T) {
	cfg := testConfig(t, config.ModelPoincare, config.FormatPNG)
	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if img.Bounds().Dx() != 128 {
		t.Errorf("width %d, want 128", img.Bounds().Dx())
	}
}

func TestRunBadOutput(t *testing.T) {
	cfg := testConfig(t, config.ModelPoincare, config.FormatSVG)
	cfg.Output = filepath.Join(t.TempDir(), "missing", "out.svg")
	if err := run(cfg); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
}
