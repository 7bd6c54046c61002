package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles/engine"
)

var (
	flagLevelsCount    int
	flagLevelsDefaults bool
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the derived parameters of each level",
	Long: `Print the spiral shape, palette size, chain speed and queue length
for the first levels, using the same config and difficulty resolution as
play.

Examples:
  marbles levels
  marbles levels --count 20 --difficulty hard
  marbles levels --defaults > ~/.marbles/configs/marbles.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().IntVar(&flagLevelsCount, "count", 10, "Number of levels to show")
	levelsCmd.Flags().BoolVar(&flagLevelsDefaults, "defaults", false, "Print the built-in config YAML instead")
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if flagLevelsDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(marbles.GameID))
		return err
	}
	if err := applyGameFlags(); err != nil {
		return err
	}
	cfg := marbles.LoadConfig()

	fmt.Printf("Levels - difficulty %s\n\n", orDefault(cfg.Difficulty.Preset, "normal"))
	fmt.Printf("  %-5s  %-12s  %-7s  %-8s  %-6s  %-6s\n", "Level", "Shape", "Colors", "Speed", "Queue", "Max t")
	fmt.Printf("  %-5s  %-12s  %-7s  %-8s  %-6s  %-6s\n", "-----", "-----", "------", "-----", "-----", "-----")

	for lvl := 1; lvl <= flagLevelsCount; lvl++ {
		p := engine.NewLevelParams(cfg, lvl)
		fmt.Printf("  %-5d  %-12s  %-7d  %-8.4f  %-6d  %-6.2f\n",
			p.Level, p.Shape, p.PaletteSize, p.Speed, p.QueueLen, p.MaxT)
	}
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
