package ports

import "github.com/JJshome/VirtualSpaceTokenization/internal/domain"

// SpaceStore persists generated space records.
//
// Save and Load are best-effort: failures are logged by the implementation
// and surfaced as a success flag / empty record instead of an error.
// SaveGenerated files the record under the workspace spaces dir and returns
// its id.
type SpaceStore interface {
	Save(space domain.Space, path string) bool
	Load(path string) domain.Space
	SaveGenerated(space domain.Space) (id string, ok bool)
	List() ([]domain.SpaceRef, error)
}
