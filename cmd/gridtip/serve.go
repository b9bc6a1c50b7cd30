package gridtip

import (
	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/web"
	"github.com/spf13/cobra"
)

var (
	port int
	dev  bool
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grid as a web page",
	Long:  `Serve a page that paints the grid on a canvas and shows the label of the cell under the pointer.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		grid, err := buildGrid()
		if err != nil {
			return err
		}

		return web.StartServer(port, grid, layout.DefaultPalette(), dev)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")
}
