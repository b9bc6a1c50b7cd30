package gridtip

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/render"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var outPath string

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Paint the grid into an SVG file",
	RunE: func(_ *cobra.Command, _ []string) error {
		grid, err := buildGrid()
		if err != nil {
			return err
		}

		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output file %s already exists", outPath)
		}

		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", outPath, err)
		}

		bar := progressbar.Default(int64(len(grid.Cells)), "painting cells")

		// WriteSVG closes the file and reports a failed close.
		if err := render.WriteSVG(file, grid, layout.DefaultPalette(), bar); err != nil {
			return fmt.Errorf("could not paint %s: %w", outPath, err)
		}

		slog.Info("Grid painted", "path", outPath)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(
		&outPath,
		"out",
		"o",
		"./grid.svg",
		"Output path for the painted grid")
}
