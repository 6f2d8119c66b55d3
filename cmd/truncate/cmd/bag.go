package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"truncate-engine/internal/game"
)

var bagCount int

var bagCmd = &cobra.Command{
	Use:   "bag",
	Short: "Print the letters a seeded bag will draw",
	Long: `Print the first letters a tile bag seeded with --seed will draw.
The bag is a deterministic weighted stream, so the same seed always
prints the same letters.

Example:
  truncate bag --seed 42 --count 20`,
	RunE: bagHandler,
}

func bagHandler(cmd *cobra.Command, args []string) error {
	if bagCount <= 0 {
		return fmt.Errorf("--count must be positive")
	}
	bag := game.NewBag(seed)
	letters := bag.Peek(bagCount)
	fmt.Printf("seed %d: %s\n", seed, string(letters))
	return nil
}

func init() {
	bagCmd.Flags().IntVar(&bagCount, "count", 14, "number of letters to print")
	rootCmd.AddCommand(bagCmd)
}
