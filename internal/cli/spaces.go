package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JJshome/VirtualSpaceTokenization/internal/usecase/inspect"
)

func spacesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "spaces",
		Short: "Manage generated spaces in a workspace",
	}

	c.AddCommand(spacesListCmd())
	c.AddCommand(spacesInspectCmd())
	return c
}

func spacesListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored spaces",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.store.List()
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no spaces found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  style=%s rooms=%d  (%s)\n", r.ID, r.Style, r.RoomCount, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}

func spacesInspectCmd() *cobra.Command {
	var workspace string
	var query string

	cmd := &cobra.Command{
		Use:   "inspect <id|path>",
		Short: "Print a stored space, optionally filtered by a JSONPath query",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			path, err := resolveSpacePath(ws, args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %q: %w", path, err)
			}

			out, err := inspect.Query(raw, query)
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "JSONPath expression, e.g. $.layout.rooms[*].id")
	return cmd
}
