package tui

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/spacestore"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/workspacefinder"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadSpaces(root string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return spacesLoadedMsg{root: root, err: err}
		}

		store := spacestore.NewJSONStore(root, cfg)
		refs, err := store.List()
		return spacesLoadedMsg{root: root, refs: refs, err: err}
	}
}

func cmdLoadSpace(root string, ref domain.SpaceRef) tea.Cmd {
	return func() tea.Msg {
		cfg, err := workspacefinder.LoadConfig(root)
		if err != nil && !domain.IsKind(err, domain.KindNotFound) {
			return spaceLoadedMsg{ref: ref, err: err}
		}

		store := spacestore.NewJSONStore(root, cfg)
		space := store.Load(ref.Path)
		if space.IsZero() {
			return spaceLoadedMsg{ref: ref, err: &domain.OpError{
				Op:   "tui.load_space",
				Kind: domain.KindNotFound,
				Path: ref.Path,
				Err:  domain.ErrNotFound,
			}}
		}
		return spaceLoadedMsg{ref: ref, space: space}
	}
}
