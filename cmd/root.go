package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosweep/game"
)

var gameConfig = game.NewGameConfig()

var (
	configPath string
	layoutPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play Minesweeper in the terminal",
	Long: `gosweep is a Minesweeper game played by typing commands.

Run with no arguments for a 30x16 board with 99 mines
	gosweep

Pick the board size and mine count
	gosweep -w 9 -h 9 -m 10

Replay a board from a layout file printed by a previous game
	gosweep --layout board.yaml
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		logger := logrus.New()
		logger.SetLevel(logrus.WarnLevel)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
		config.Logger = logger

		g, err := game.NewGame(config)
		if err != nil {
			return err
		}

		return newSession(g, cmd.InOrStdin(), cmd.OutOrStdout()).run()
	},
}

// resolveConfig merges the config file, the layout file and any flags
// explicitly set on the command line, in that order
func resolveConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := gameConfig

	if configPath != "" {
		fileConfig, err := game.LoadConfig(configPath)
		if err != nil {
			return config, err
		}

		flags := cmd.Flags()
		if flags.Changed("width") {
			fileConfig.Width = config.Width
		}
		if flags.Changed("height") {
			fileConfig.Height = config.Height
		}
		if flags.Changed("mines") {
			fileConfig.NumMines = config.NumMines
		}
		if flags.Changed("seed") {
			fileConfig.Seed = config.Seed
		}
		config = fileConfig
	}

	if layoutPath != "" {
		data, err := os.ReadFile(layoutPath)
		if err != nil {
			return config, errors.Wrap(err, "reading layout")
		}
		layout, err := game.LoadLayout(string(data))
		if err != nil {
			return config, errors.Wrapf(err, "loading layout %s", layoutPath)
		}
		config.Layout = layout
	}

	return config, config.Validate()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&gameConfig.Width, "width", "w", game.DefaultWidth, "Width of game board, in tiles")
	rootCmd.Flags().IntVarP(&gameConfig.Height, "height", "h", game.DefaultHeight, "Height of game board, in tiles")
	rootCmd.Flags().IntVarP(&gameConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&gameConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with width, height, mines, seed and layout")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "YAML layout file fixing where the mines are")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log game events to stderr")
}
