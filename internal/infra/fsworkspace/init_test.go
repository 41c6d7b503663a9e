package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

func TestInitCreatesLayout(t *testing.T) {
	root := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, p := range []string{
		"spaces",
		filepath.Join(".spacegen", "logs"),
	} {
		info, err := os.Stat(filepath.Join(root, p))
		if err != nil || !info.IsDir() {
			t.Errorf("missing dir %s: %v", p, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(root, "spacegen.yaml"))
	if err != nil {
		t.Fatalf("settings template not written: %v", err)
	}
	if !strings.Contains(string(b), "default_style") {
		t.Errorf("settings template content: %q", b)
	}

	gi, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf(".gitignore not written: %v", err)
	}
	if !strings.Contains(string(gi), "spaces/") || !strings.Contains(string(gi), ".spacegen/") {
		t.Errorf(".gitignore content: %q", gi)
	}
}

func TestInitPreservesExistingSettings(t *testing.T) {
	root := t.TempDir()
	custom := "default_style: cyberpunk\n"
	if err := os.WriteFile(filepath.Join(root, "spacegen.yaml"), []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(root, "spacegen.yaml"))
	if string(b) != custom {
		t.Errorf("existing settings overwritten without force: %q", b)
	}
}

func TestInitForceOverwrites(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "spacegen.yaml"), []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: root}, true); err != nil {
		t.Fatalf("Init: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(root, "spacegen.yaml"))
	if string(b) == "old" {
		t.Error("force init kept the old settings file")
	}
}

func TestEnsureGitignoreAppends(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("node_modules/\nspaces/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ensureGitignore(root); err != nil {
		t.Fatalf("ensureGitignore: %v", err)
	}

	b, _ := os.ReadFile(filepath.Join(root, ".gitignore"))
	s := string(b)
	if !strings.Contains(s, "node_modules/") {
		t.Error("existing entries lost")
	}
	if !strings.Contains(s, ".spacegen/") {
		t.Error("missing entry not appended")
	}
	if strings.Count(s, "spaces/") != 1 {
		t.Errorf("present entry duplicated:\n%s", s)
	}
}
