package workspacefinder

import (
	"path/filepath"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/config"
)

// LoadConfig loads spacegen.yaml from the workspace root and applies
// defaults for anything the file leaves unset.
func LoadConfig(root string) (domain.Config, error) {
	return config.Load(filepath.Join(root, "spacegen.yaml"))
}
