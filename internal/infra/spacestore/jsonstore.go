// Package spacestore persists generated space records as JSON files under
// the workspace spaces directory.
package spacestore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/ports"
)

const defaultSpacesDir = "spaces"

type JSONStore struct {
	rootDir       string
	spacesDirName string
	writeIndex    bool
	now           func() time.Time
	log           *slog.Logger
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: spaces/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *JSONStore) { s.log = log }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	spacesDir := cfg.Paths.SpacesDir
	if strings.TrimSpace(spacesDir) == "" {
		spacesDir = defaultSpacesDir
	}

	s := &JSONStore{
		rootDir:       root,
		spacesDirName: spacesDir,
		writeIndex:    false,
		now:           time.Now,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SpaceStore = (*JSONStore)(nil)

// Save writes a record to an explicit path. Failures are logged and reported
// through the return flag only.
func (s *JSONStore) Save(space domain.Space, path string) bool {
	if err := writeJSON(path, space); err != nil {
		s.log.Error("save space", "path", path, "error", err)
		return false
	}
	return true
}

// Load reads a record from an explicit path. A missing or malformed file
// yields an empty record.
func (s *JSONStore) Load(path string) domain.Space {
	b, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("load space", "path", path, "error", err)
		return domain.Space{}
	}
	var space domain.Space
	if err := json.Unmarshal(b, &space); err != nil {
		s.log.Error("decode space", "path", path, "error", err)
		return domain.Space{}
	}
	return space
}

// SaveGenerated files the record under the workspace spaces directory,
// naming it after the timestamp and a slug of the description.
func (s *JSONStore) SaveGenerated(space domain.Space) (string, bool) {
	dir := filepath.Join(s.rootDir, s.spacesDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.log.Error("create spaces dir", "path", dir, "error", err)
		return "", false
	}

	ts := s.now().UTC()
	slug := slugify(space.Metadata.Description)
	if slug == "" {
		slug = slugify(space.Metadata.Style)
	}
	if slug == "" {
		slug = "space"
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	if err := writeJSON(path, space); err != nil {
		s.log.Error("save generated space", "path", path, "error", err)
		return "", false
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, space)
	}

	return id, true
}

// List returns the records under the spaces directory, newest last. An
// absent directory is an empty list, not an error.
func (s *JSONStore) List() ([]domain.SpaceRef, error) {
	dir := filepath.Join(s.rootDir, s.spacesDirName)

	refs, err := s.listFromIndex(dir)
	if err == nil {
		return refs, nil
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []domain.SpaceRef{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "spacestore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	refs = make([]domain.SpaceRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		space := s.Load(path)
		refs = append(refs, domain.SpaceRef{
			ID:        strings.TrimSuffix(e.Name(), ".json"),
			Path:      path,
			Style:     space.Layout.Style,
			RoomCount: len(space.Layout.Rooms),
		})
	}
	return refs, nil
}

func (s *JSONStore) listFromIndex(dir string) ([]domain.SpaceRef, error) {
	f, err := os.Open(filepath.Join(dir, "index.jsonl"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	refs := []domain.SpaceRef{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var entry indexEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		refs = append(refs, domain.SpaceRef{
			ID:        entry.ID,
			Path:      filepath.Join(dir, entry.File),
			Style:     entry.Style,
			RoomCount: entry.Rooms,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

type indexEntry struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Style     string    `json:"style"`
	Rooms     int       `json:"rooms"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *JSONStore) appendIndex(dir, id, filename string, space domain.Space) error {
	line, err := json.Marshal(indexEntry{
		ID:        id,
		File:      filename,
		Style:     space.Layout.Style,
		Rooms:     len(space.Layout.Rooms),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

func writeJSON(path string, space domain.Space) error {
	b, err := json.MarshalIndent(space, "", "  ")
	if err != nil {
		return err
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.Trim(b.String(), "-")
	out = strings.ReplaceAll(out, "--", "-")
	return out
}
