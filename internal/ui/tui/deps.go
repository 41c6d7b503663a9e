package tui

import (
	"log/slog"

	"github.com/JJshome/VirtualSpaceTokenization/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Logger *slog.Logger
	Debug  bool
}
