package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JJshome/VirtualSpaceTokenization/internal/domain"
	"github.com/JJshome/VirtualSpaceTokenization/internal/infra/logger"
	"github.com/JJshome/VirtualSpaceTokenization/internal/usecase"
)

func generateCmd() *cobra.Command {
	var workspace string
	var description string
	var sizeStr string
	var style string
	var rooms int
	var density float64
	var seed int64
	var out string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new interior space",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			size, err := parseSize(sizeStr)
			if err != nil {
				return err
			}

			opts := []usecase.GenerateOption{usecase.WithLogger(logger.L())}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, usecase.WithSeed(seed))
			}

			uc := usecase.NewGenerateSpace(ws.extractor, ws.cfg, opts...)

			space, err := uc.Execute(cmd.Context(), domain.GenerateRequest{
				Description:   description,
				Size:          size,
				Style:         style,
				RoomCount:     rooms,
				ObjectDensity: density,
			})
			if err != nil {
				return err
			}

			var id string
			if !noSave {
				if out != "" {
					if ok := ws.store.Save(space, out); !ok {
						return fmt.Errorf("could not write %q", out)
					}
					id = out
				} else {
					var ok bool
					id, ok = ws.store.SaveGenerated(space)
					if !ok {
						return fmt.Errorf("could not save the generated space")
					}
				}
			}

			return printSpace(os.Stdout, space, id, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&description, "description", "d", "", "Free-text description of the space")
	c.Flags().StringVar(&sizeStr, "size", "", "Footprint as WxHxD in meters (default 100x50x100)")
	c.Flags().StringVarP(&style, "style", "s", "", "Style: modern|futuristic|natural|fantasy|cyberpunk|minimalist")
	c.Flags().IntVarP(&rooms, "rooms", "r", 0, "Room count (0 uses the workspace default)")
	c.Flags().Float64Var(&density, "density", 0.5, "Object density factor")
	c.Flags().Int64Var(&seed, "seed", 0, "Layout seed for reproducible output")
	c.Flags().StringVarP(&out, "out", "o", "", "Write the record to this path instead of the spaces dir")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the generated record")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printSpace(w io.Writer, space domain.Space, savedAs string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(space)
	case "pretty", "":
		printPrettySpace(w, space, savedAs)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettySpace(w io.Writer, space domain.Space, savedAs string) {
	m := space.Metadata
	fmt.Fprintf(w, "Space:       %s\n", m.ID)
	if m.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", m.Description)
	}
	fmt.Fprintf(w, "Style:       %s (%s)\n", space.Layout.Style, space.Layout.Environment)
	fmt.Fprintf(w, "Size:        %.0fx%.0fx%.0f\n", m.Size[0], m.Size[1], m.Size[2])
	if savedAs != "" {
		fmt.Fprintf(w, "Saved as:    %s\n", savedAs)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rooms (%d):\n", len(space.Layout.Rooms))
	for _, r := range space.Layout.Rooms {
		fmt.Fprintf(w, "- %s  %.1fx%.1fx%.1f at (%.1f, %.1f)  %d connection(s)\n",
			r.ID, r.Size[0], r.Size[1], r.Size[2], r.Position[0], r.Position[2], len(r.Connections))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Surfaces: %d   Doorways: %d   Lights: %d   Objects: %d\n",
		len(space.Layout.Surfaces), len(space.Layout.Doorways), len(space.Layout.Lights), len(space.Objects))
}
