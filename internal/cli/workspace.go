package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/features"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/spacestore"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/workspacefinder"
	"github.com/JJshome/VirtualSpaceTokenization/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	extractor ports.FeatureExtractor
	store     ports.SpaceStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	extractor, err := features.New(cfg)
	if err != nil {
		return nil, err
	}

	store := spacestore.NewJSONStore(root, cfg, spacestore.WithIndex(true))

	return &workspaceCtx{
		root:      root,
		cfg:       cfg,
		extractor: extractor,
		store:     store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `spacegen init`): %w", wd, err)
	}
	return root, nil
}

// resolveSpacePath accepts a stored space id, a bare filename, or a path.
func resolveSpacePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("space id or path is required")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	spacesDir := filepath.Join(ws.root, ws.cfg.Paths.SpacesDir)

	if strings.HasSuffix(strings.ToLower(in), ".json") {
		p := filepath.Join(spacesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p := filepath.Join(spacesDir, in+".json")
	if fileExists(p) {
		return p, nil
	}

	return "", fmt.Errorf("space %q not found in %q", in, spacesDir)
}

// parseSize reads a WxHxD triple like "100x50x100".
func parseSize(s string) (domain.Vec3, error) {
	in := strings.TrimSpace(strings.ToLower(s))
	if in == "" {
		return domain.Vec3{}, nil
	}

	parts := strings.Split(in, "x")
	if len(parts) != 3 {
		return domain.Vec3{}, fmt.Errorf("invalid size %q (expected WxHxD, e.g. 100x50x100)", s)
	}

	var out domain.Vec3
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			return domain.Vec3{}, fmt.Errorf("invalid size component %q in %q", p, s)
		}
		out[i] = v
	}
	return out, nil
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
