package gridtip

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/gridtip/layout"
	"github.com/dasdy/gridtip/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// Grid dimensions shared by all subcommands.
var (
	rows       int
	cols       int
	cellWidth  float64
	cellHeight float64
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gridtip",
	Short: "Paint a grid of colored cells and tell which one is under the pointer",
	Long: `Gridtip lays out a fixed grid of colored, labelled cells.
It can serve the grid as a web page with a tooltip that follows the pointer,
paint it into an SVG file, or replay recorded pointer events against it.`,
	PersistentPreRun: bindFlags,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gridtip.toml)")

	rootCmd.PersistentFlags().IntVar(&rows, "rows", 50, "Number of grid rows")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", 144, "Number of grid columns")
	rootCmd.PersistentFlags().Float64Var(&cellWidth, "cell-width", 20, "Width of a cell in pixels")
	rootCmd.PersistentFlags().Float64Var(&cellHeight, "cell-height", 40, "Height of a cell in pixels")
}

func initConfig() {
	if cfgFile != "" {
		slog.Info("Using config file", "path", cfgFile)
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".gridtip" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".gridtip")
	}

	viper.SetEnvPrefix("gridtip")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			createExampleConfig()
		} else {
			slog.Error("Failed to read config file", "error", err)
			os.Exit(1)
		}
	}
}

func createExampleConfig() {
	exampleConfig := `
rows = 50
cols = 144
cellwidth = 20
cellheight = 40
port = 9000
`
	configPath := "./.gridtip.toml"

	err := os.WriteFile(configPath, []byte(exampleConfig), 0o644)
	if err != nil {
		slog.Error("Failed to create example config file", "error", err)
		os.Exit(1)
	}

	slog.Info("Example config file created", "path", configPath)
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Since viper does case-insensitive comparisons, we only need to remove the hyphens.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				slog.Error("Failed to set flag from config", "flag", f.Name, "error", err)
				panic(err)
			}

			slog.Debug("Flag set to config value", "flag", f.Name, "value", val)
		}
	})
}

// buildGrid turns the configured dimensions into a grid, or a configuration error.
func buildGrid() (*model.Grid, error) {
	grid, err := layout.Build(rows, cols, cellWidth, cellHeight)
	if err != nil {
		return nil, fmt.Errorf("could not build grid: %w", err)
	}

	slog.Info("Built grid",
		"rows", grid.Rows, "cols", grid.Cols,
		"width", grid.TotalWidth(), "height", grid.TotalHeight())

	return grid, nil
}
