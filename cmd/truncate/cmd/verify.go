package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"truncate-engine/pkg/replay"
)

var expectWinner int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay a move log and assert the expected winner",
	Long: `Replay a move log and check that the game ends with the expected
winner. Exits non-zero if the log fails to replay, the game does not
end, or a different player wins. Useful for pre-verifying puzzle
solutions before publishing them.

Example:
  truncate verify --board puzzle.txt --dict words.txt --seed 42 --moves solution.log --winner 0`,
	RunE: verifyHandler,
}

func verifyHandler(cmd *cobra.Command, args []string) error {
	g, entries, err := loadReplay()
	if err != nil {
		return err
	}

	events, err := replay.Run(g, entries)
	if err != nil {
		return err
	}
	if g.Winner == nil {
		return fmt.Errorf("game did not end after %d moves", len(events))
	}
	if int(*g.Winner) != expectWinner {
		return fmt.Errorf("expected player %d to win, got player %d", expectWinner, *g.Winner)
	}
	logger.Info("verified", "game", g.ID, "winner", *g.Winner, "moves", len(events))
	fmt.Printf("ok: player %d wins in %d moves\n", *g.Winner, len(events))
	return nil
}

func init() {
	verifyCmd.Flags().StringVar(&movesPath, "moves", "", "path to a move log file")
	verifyCmd.Flags().IntVar(&expectWinner, "winner", 0, "player expected to win (0 or 1)")
	rootCmd.AddCommand(verifyCmd)
}
