package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-marbles/internal/audio"
	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles"
	"github.com/vovakirdan/tui-marbles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick difficulty and start level, then play",
	Long: `Start in interactive menu mode.

Use arrow keys to move, Left/Right to change the difficulty or the start
level, Enter to play and Tab for the scoreboard. After a game you return
to the menu.

Examples:
  marbles menu
  marbles menu --fps 30
  marbles menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	marbles.SetLogger(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	stopAudio := startAudio(audio.NewPlayer(logger))
	defer stopAudio()

	cfg := runtimeConfig()
	sel := tui.MenuSelection{Difficulty: config.DifficultyNormal, Level: 1}
	if flagDifficulty != "" {
		sel.Difficulty = config.DifficultyPreset(flagDifficulty)
	}

	for {
		result, err := tui.RunMenu(marbles.GameID, "Marbles", store, cfg, sel)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config
		sel = result.Selection

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(marbles.GameID, "Marbles", store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}
			continue
		}

		settings := marbles.DefaultSettings()
		settings.Difficulty = sel.Difficulty
		settings.StartLevel = sel.Level
		logger.Info("game started", "difficulty", sel.Difficulty, "level", sel.Level)

		if err := tui.Run(marbles.NewWithSettings(settings), store, logger, cfg); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
	}
}
