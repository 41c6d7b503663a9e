// Package config loads generator settings from a workspace settings file and
// overlays them on the built-in defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
)

// Load reads a settings file, JSON or YAML by extension, and returns the
// defaults with the file's fields applied on top. A missing file returns the
// defaults along with a not-found error so callers can decide whether that
// matters.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto ConfigDTO
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(b, &dto)
	default:
		err = yaml.Unmarshal(b, &dto)
	}
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(dto), nil
}
