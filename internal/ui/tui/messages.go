package tui

import "github.com/JJshome/VirtualSpaceTokenization/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type spacesLoadedMsg struct {
	root string
	refs []domain.SpaceRef
	err  error
}

type spaceLoadedMsg struct {
	ref   domain.SpaceRef
	space domain.Space
	err   error
}
