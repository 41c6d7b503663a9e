package ports

import "github.com/JJshome/VirtualSpaceTokenization/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
