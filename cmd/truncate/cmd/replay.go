package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"truncate-engine/internal/game"
	"truncate-engine/pkg/replay"
)

var movesPath string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a move log against a board",
	Long: `Replay a move log against a board and dictionary, printing each
resulting event. Moves alternate between the players starting with
player 0.

Example:
  truncate replay --board puzzle.txt --dict words.txt --seed 42 --moves game.log`,
	RunE: replayHandler,
}

func replayHandler(cmd *cobra.Command, args []string) error {
	g, entries, err := loadReplay()
	if err != nil {
		return err
	}

	events, err := replay.Run(g, entries)
	for _, ev := range events {
		printEvent(ev)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(g.Board.String())
	if g.Winner != nil {
		fmt.Printf("winner: player %d\n", *g.Winner)
	} else {
		fmt.Printf("no winner after %d moves\n", len(events))
	}
	fmt.Printf("state: %s\n", g.Fingerprint())
	return nil
}

func loadReplay() (*game.GameState, []replay.Entry, error) {
	g, err := loadGame()
	if err != nil {
		return nil, nil, err
	}
	if movesPath == "" {
		return nil, nil, fmt.Errorf("--moves is required")
	}
	movesFile, err := fs.Open(movesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading move log: %w", err)
	}
	defer movesFile.Close()
	entries, err := replay.ParseLog(movesFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("replaying", "game", g.ID, "moves", len(entries))
	return g, entries, nil
}

func printEvent(ev game.Event) {
	fmt.Printf("turn %d: player %d %s", ev.TurnNumber, ev.Player, replay.FormatMove(ev.Move))
	if ev.DrawnLetter != 0 {
		fmt.Printf(" (drew %c)", ev.DrawnLetter)
	}
	fmt.Println()
	for _, battle := range ev.Battles {
		outcome := "defender holds"
		if battle.AttackerWon {
			outcome = "attacker wins"
		}
		fmt.Printf("  battle: %s", outcome)
		for _, w := range battle.AttackerWords {
			fmt.Printf(" atk:%s(%v)", w.Text, w.Valid)
		}
		for _, w := range battle.DefenderWords {
			fmt.Printf(" def:%s(%v)", w.Text, w.Valid)
		}
		fmt.Printf(" doomed:%v\n", battle.Doomed)
	}
	if len(ev.Truncations) > 0 {
		fmt.Printf("  truncated: %v\n", ev.Truncations)
	}
	if ev.Winner != nil {
		fmt.Printf("  winner: player %d\n", *ev.Winner)
	}
}

func init() {
	replayCmd.Flags().StringVar(&movesPath, "moves", "", "path to a move log file")
	rootCmd.AddCommand(replayCmd)
}
