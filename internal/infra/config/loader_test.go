package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := writeFile(t, "spacegen.yaml", `
default_style: cyberpunk
default_room_count: 6
model_params:
  latent_dim: 128
paths:
  spaces_dir: generated
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DefaultStyle != "cyberpunk" {
		t.Errorf("DefaultStyle = %q", cfg.DefaultStyle)
	}
	if cfg.DefaultRoomCount != 6 {
		t.Errorf("DefaultRoomCount = %d", cfg.DefaultRoomCount)
	}
	if cfg.ModelParams.LatentDim != 128 {
		t.Errorf("LatentDim = %d", cfg.ModelParams.LatentDim)
	}
	if cfg.Paths.SpacesDir != "generated" {
		t.Errorf("SpacesDir = %q", cfg.Paths.SpacesDir)
	}

	// Untouched fields keep their defaults, including siblings of
	// overridden nested fields.
	def := domain.DefaultConfig()
	if cfg.Resolution != def.Resolution {
		t.Errorf("Resolution = %d, want default %d", cfg.Resolution, def.Resolution)
	}
	if cfg.ModelParams.StyleDim != def.ModelParams.StyleDim {
		t.Errorf("StyleDim = %d, want default %d", cfg.ModelParams.StyleDim, def.ModelParams.StyleDim)
	}
	if len(cfg.SupportedStyles) != len(def.SupportedStyles) {
		t.Errorf("SupportedStyles = %v", cfg.SupportedStyles)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"resolution": 512, "use_edge_ai": false}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Resolution != 512 {
		t.Errorf("Resolution = %d", cfg.Resolution)
	}
	if cfg.UseEdgeAI {
		t.Error("UseEdgeAI should be overridden to false")
	}
	if !cfg.SupportsStyle("modern") {
		t.Error("default supported styles lost")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("err = %v, want not_found kind", err)
	}
	def := domain.DefaultConfig()
	if cfg.DefaultStyle != def.DefaultStyle || cfg.Resolution != def.Resolution {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "bad.yaml", "default_style: [unclosed")
	if _, err := Load(path); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("err = %v, want invalid_config kind", err)
	}
}

func TestMapFalseBoolOverrides(t *testing.T) {
	f := false
	cfg := Map(ConfigDTO{UseEdgeAI: &f})
	if cfg.UseEdgeAI {
		t.Error("explicit false did not override the default")
	}
}
