package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// --- parseSize ---

func TestParseSize(t *testing.T) {
	cases := []struct {
		input   string
		want    domain.Vec3
		wantErr bool
	}{
		{"100x50x100", domain.Vec3{100, 50, 100}, false},
		{"12.5x3x40", domain.Vec3{12.5, 3, 40}, false},
		{"10X4X10", domain.Vec3{10, 4, 10}, false},
		{" 10 x 4 x 10 ", domain.Vec3{10, 4, 10}, false},
		{"", domain.Vec3{}, false},
		{"100x50", domain.Vec3{}, true},
		{"axbxc", domain.Vec3{}, true},
		{"10x-4x10", domain.Vec3{}, true},
	}
	for _, c := range cases {
		got, err := parseSize(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q): expected error", c.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseSize(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- looksLikePath / fileExists ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"20260314T092653Z_loft", false},
		{"loft.json", false},
		{"./loft.json", true},
		{"spaces/loft.json", true},
		{"/abs/path/loft.json", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestFileExists(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "exists.json")
	if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(p) {
		t.Errorf("expected fileExists=true for %s", p)
	}
	if fileExists(filepath.Join(tmp, "not_there.json")) {
		t.Error("expected fileExists=false for non-existent file")
	}
}

// --- resolveSpacePath ---

func testWorkspaceCtx(t *testing.T) *workspaceCtx {
	t.Helper()
	root := t.TempDir()
	cfg := domain.DefaultConfig()
	if err := os.MkdirAll(filepath.Join(root, cfg.Paths.SpacesDir), 0o755); err != nil {
		t.Fatal(err)
	}
	return &workspaceCtx{root: root, cfg: cfg}
}

func TestResolveSpacePath_ByID(t *testing.T) {
	ws := testWorkspaceCtx(t)
	p := filepath.Join(ws.root, ws.cfg.Paths.SpacesDir, "20260101T000000Z_loft.json")
	if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolveSpacePath(ws, "20260101T000000Z_loft")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("got %q, want %q", got, p)
	}
}

func TestResolveSpacePath_ByFilename(t *testing.T) {
	ws := testWorkspaceCtx(t)
	p := filepath.Join(ws.root, ws.cfg.Paths.SpacesDir, "loft.json")
	if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := resolveSpacePath(ws, "loft.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("got %q, want %q", got, p)
	}
}

func TestResolveSpacePath_RelativePath(t *testing.T) {
	ws := testWorkspaceCtx(t)
	got, err := resolveSpacePath(ws, "spaces/any.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(ws.root, "spaces", "any.json")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveSpacePath_NotFound(t *testing.T) {
	ws := testWorkspaceCtx(t)
	if _, err := resolveSpacePath(ws, "missing"); err == nil {
		t.Error("expected error for unknown space id")
	}
}

func TestResolveSpacePath_Empty(t *testing.T) {
	ws := testWorkspaceCtx(t)
	if _, err := resolveSpacePath(ws, "  "); err == nil {
		t.Error("expected error for empty arg")
	}
}

// --- printSpace ---

func sampleSpace() domain.Space {
	return domain.Space{
		Layout: domain.Layout{
			Dimensions: domain.Vec3{20, 3, 20},
			Rooms: []domain.Room{
				{ID: "room_0", Position: domain.Vec3{1, 0, 1}, Size: domain.Vec3{6, 3, 5}, Connections: []string{"room_1"}},
				{ID: "room_1", Position: domain.Vec3{9, 0, 1}, Size: domain.Vec3{5, 3, 5}, Connections: []string{"room_0"}},
			},
			Style:       "modern",
			Environment: "modern_interior",
		},
		Metadata: domain.Metadata{
			ID:          "abc-123",
			Description: "two offices",
			Size:        domain.Vec3{20, 3, 20},
			Style:       "modern",
			RoomCount:   2,
		},
	}
}

func TestPrintSpace_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printSpace(&buf, sampleSpace(), "", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["layout"] == nil || payload["metadata"] == nil {
		t.Errorf("expected layout and metadata keys, got %v", payload)
	}
}

func TestPrintSpace_Pretty_ContainsSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := printSpace(&buf, sampleSpace(), "20260101T000000Z_two-offices", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"abc-123", "modern", "room_0", "room_1", "20260101T000000Z_two-offices"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pretty output, got:\n%s", want, out)
		}
	}
}

func TestPrintSpace_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printSpace(&buf, domain.Space{}, "", ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintSpace_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printSpace(&buf, domain.Space{}, "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"generate", "spaces", "init", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestGenerateCmd_Flags(t *testing.T) {
	cmd := generateCmd()
	if cmd.Use != "generate" {
		t.Errorf("expected Use=generate, got %q", cmd.Use)
	}
	for _, flag := range []string{"description", "size", "style", "rooms", "density", "seed", "out", "no-save", "format", "workspace"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on generate command", flag)
		}
	}
}

func TestSpacesCmd_Subcommands(t *testing.T) {
	cmd := spacesCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	if !names["list"] || !names["inspect"] {
		t.Errorf("expected list and inspect under spaces, got %v", names)
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

func TestResolveWorkspaceRoot_RelativePath(t *testing.T) {
	got, err := resolveWorkspaceRoot(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}
