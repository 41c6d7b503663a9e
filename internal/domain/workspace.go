package domain

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
