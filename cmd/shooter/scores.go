package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagLimit       int
	flagScoresTUI   bool
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the best runs from the run history database.

Examples:
  shooter scores
  shooter scores --limit 25
  shooter scores --tui
  shooter scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the recorded run history")
}

func runScores(cmd *cobra.Command, args []string) {
	title, ok := registry.Title(shooter.GameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", shooter.GameID)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearRuns(shooter.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, shooter.GameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagLimit <= 0 {
		flagLimit = 10
	}
	runs, err := store.TopRuns(shooter.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-3s  %s\n", "Rank", "Score", "Level", "Kills", "Gun", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-3s  %s\n", "----", "-----", "-----", "-----", "---", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-3d  %s\n",
			i+1, r.Score, r.Level, r.Kills, r.WeaponTier, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(shooter.GameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Avg: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
}
