package gridtip

import (
	"context"
	"fmt"
	"os"

	"github.com/dasdy/gridtip/pointerlog"
	"github.com/dasdy/gridtip/pointerlog/ports"
	"github.com/dasdy/gridtip/tracker"
	"github.com/spf13/cobra"
)

var (
	replayFile string
	verbose    bool
)

// replayCmd represents the replay command.
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay recorded pointer events against the grid",
	Long: `Read pointer events line by line ("move X Y [OFFSET_X OFFSET_Y TOOLTIP_HEIGHT]" or "leave")
from a file, or stdin when no file is given, and print the resulting tooltip state of each as JSON.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		grid, err := buildGrid()
		if err != nil {
			return err
		}

		reader, closer, err := ports.Open(replayFile)
		if err != nil {
			return err
		}
		defer closer()

		session := tracker.NewSession(tracker.New(grid), pointerlog.JSONSink(os.Stdout))

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if err := pointerlog.Loop(ctx, ports.ReadFile(ctx, reader), session, verbose); err != nil {
			return fmt.Errorf("could not replay events: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringVarP(
		&replayFile,
		"file",
		"f",
		"",
		"File with recorded pointer events (stdin when empty)")

	replayCmd.Flags().BoolVarP(&verbose,
		"verbose",
		"v",
		false,
		"If provided, every event is logged")
}
