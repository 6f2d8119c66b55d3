package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"truncate-engine/internal/game"
	"truncate-engine/pkg/boards"
	"truncate-engine/pkg/dict"
)

// fs is swappable so command tests can run against an in-memory
// filesystem.
var fs afero.Fs = afero.NewOsFs()

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var (
	boardPath string
	dictPath  string
	seed      uint64
	legacy    bool
)

var rootCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Truncate rules engine tooling",
	Long: `Tooling around the Truncate rules engine.

Available commands:
  replay    Replay a move log against a board and print the events
  verify    Replay a move log and assert the expected winner
  bag       Print the letters a seeded bag will draw

Use "truncate [command] --help" for more information about a command.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&boardPath, "board", "", "path to a board text file")
	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", "", "path to a dictionary file (word score freq)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "tile bag seed")
	rootCmd.PersistentFlags().BoolVar(&legacy, "legacy-rules", false, "use the pre-2023 ruleset")
}

// loadGame builds a game from the shared flags.
func loadGame() (*game.GameState, error) {
	if boardPath == "" || dictPath == "" {
		return nil, fmt.Errorf("--board and --dict are required")
	}

	boardText, err := afero.ReadFile(fs, boardPath)
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	board, err := boards.Parse(string(boardText))
	if err != nil {
		return nil, err
	}

	dictFile, err := fs.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	defer dictFile.Close()
	judge, err := dict.Load(dictFile)
	if err != nil {
		return nil, err
	}
	logger.Info("dictionary loaded", "words", judge.Len())

	rules := game.DefaultRules()
	if legacy {
		rules = game.LegacyRules()
	}
	return game.NewGame(seed, board, rules, judge, nil)
}
