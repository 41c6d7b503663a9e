package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func TestFindRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "spacegen.yaml"), []byte("default_style: modern\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestFindRootFromFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "spacegen.yaml"), []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(root, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestFindRootNotFound(t *testing.T) {
	_, err := NewFinder().FindRoot(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("err = %v, want not_found kind", err)
	}
}

func TestFindRootEmptyStart(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("err = %v, want invalid_config kind", err)
	}
}

func TestLoadConfigAppliesOverrides(t *testing.T) {
	root := t.TempDir()
	content := "default_style: natural\npaths:\n  spaces_dir: out\n"
	if err := os.WriteFile(filepath.Join(root, "spacegen.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultStyle != "natural" {
		t.Errorf("DefaultStyle = %q", cfg.DefaultStyle)
	}
	if cfg.Paths.SpacesDir != "out" {
		t.Errorf("SpacesDir = %q", cfg.Paths.SpacesDir)
	}
	if cfg.DefaultRoomCount != domain.DefaultConfig().DefaultRoomCount {
		t.Errorf("DefaultRoomCount = %d, want default", cfg.DefaultRoomCount)
	}
}
