package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/pathviz/tile"
)

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func TestDefaultMatchesTilePalette(t *testing.T) {
	got := Default().TilePalette()
	want := tile.DefaultPalette

	pairs := []struct {
		name string
		a, b color.Color
	}{
		{"default_outline", got.DefaultOutline, want.DefaultOutline},
		{"default_fill", got.DefaultFill, want.DefaultFill},
		{"obstacle_outline", got.ObstacleOutline, want.ObstacleOutline},
		{"obstacle_fill", got.ObstacleFill, want.ObstacleFill},
		{"selected_outline", got.SelectedOutline, want.SelectedOutline},
		{"selected_fill", got.SelectedFill, want.SelectedFill},
	}
	for _, p := range pairs {
		if !sameColor(p.a, p.b) {
			t.Fatalf("%s: got %v, want %v", p.name, p.a, p.b)
		}
	}

	labels := Default().Labels
	if labels.OffsetX != 20 || labels.FirstLineY != 20 || labels.LineSpacing != 15 {
		t.Fatalf("unexpected default labels %+v", labels)
	}
	if !sameColor(labels.Color.Color, color.White) {
		t.Fatalf("default label color = %v, want white", labels.Color.Color)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
		check   func(t *testing.T, c Config)
	}{
		{
			name: "override_keeps_other_defaults",
			doc:  "palette:\n  obstacle_fill: \"#00000080\"\n",
			check: func(t *testing.T, c Config) {
				if !sameColor(c.Palette.ObstacleFill.Color, color.NRGBA{A: 0x80}) {
					t.Fatalf("obstacle_fill = %v", c.Palette.ObstacleFill.Color)
				}
				if !sameColor(c.Palette.DefaultFill.Color, tile.DefaultPalette.DefaultFill) {
					t.Fatalf("default_fill should keep its default")
				}
			},
		},
		{
			name: "labels",
			doc:  "labels:\n  offset_x: 4\n  line_spacing: 12\n",
			check: func(t *testing.T, c Config) {
				if c.Labels.OffsetX != 4 || c.Labels.LineSpacing != 12 || c.Labels.FirstLineY != 20 {
					t.Fatalf("unexpected labels %+v", c.Labels)
				}
			},
		},
		{
			name:  "empty",
			doc:   "",
			check: func(t *testing.T, c Config) {},
		},
		{
			name:    "bad_color",
			doc:     "palette:\n  default_fill: \"#12\"\n",
			wantErr: "invalid color format",
		},
		{
			name:    "non_hex_color",
			doc:     "palette:\n  default_fill: \"#zzzzzz\"\n",
			wantErr: "invalid color format",
		},
		{
			name:    "color_not_scalar",
			doc:     "palette:\n  default_fill: [1, 2]\n",
			wantErr: "color must be a string",
		},
		{
			name:    "zero_spacing",
			doc:     "labels:\n  line_spacing: 0\n",
			wantErr: "line_spacing must be positive",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Parse([]byte(c.doc))
			if c.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty_path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Labels.LineSpacing != 15 {
			t.Fatalf("expected defaults, got %+v", cfg.Labels)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "palette.yaml")
		if err := os.WriteFile(path, []byte("labels:\n  first_line_y: 30\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.Labels.FirstLineY != 30 {
			t.Fatalf("first_line_y = %v, want 30", cfg.Labels.FirstLineY)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
}

func TestIsConfigFile(t *testing.T) {
	cases := map[string]bool{
		"palette.yaml":     true,
		"dir/PALETTE.YML":  true,
		"palette.yaml.swp": false,
		"notes.txt":        false,
		"":                 false,
	}
	for path, want := range cases {
		if got := isConfigFile(path); got != want {
			t.Fatalf("isConfigFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	quiet := func(what string) {
		t.Helper()
		select {
		case name := <-w.Events:
			t.Fatalf("%s: unexpected event %s", what, name)
		case <-time.After(3 * settleDelay):
		}
	}

	yamlPath := filepath.Join(dir, "palette.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(yamlPath, []byte("labels:\n  offset_x: 4\n"), 0o644); err != nil {
			t.Fatalf("write yaml: %v", err)
		}
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "palette.yaml" {
			t.Fatalf("event for %s, want palette.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for yaml write")
	}
	quiet("burst of yaml writes")

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	quiet("txt write")

	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("events channel not closed after Close")
		}
	}
}
