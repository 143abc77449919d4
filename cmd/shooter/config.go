package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var flagConfigCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration as YAML, or validate a custom file.

Examples:
  shooter config > ~/.arcade/configs/shooter.yaml
  shooter config --check ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigCheck, "check", "", "Validate a config file and exit")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagConfigCheck != "" {
		cfg, err := config.LoadShooter(flagConfigCheck)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok (%dx%d world, %d max health)\n",
			flagConfigCheck, int(cfg.World.Width), int(cfg.World.Height), cfg.Player.MaxHealth)
		return
	}
	os.Stdout.Write(config.GetDefaultYAML(shooter.GameID))
}
