package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-marbles/internal/audio"
	"github.com/vovakirdan/tui-marbles/internal/config"
	"github.com/vovakirdan/tui-marbles/internal/games/marbles"
	"github.com/vovakirdan/tui-marbles/internal/platform/tui"
	"github.com/vovakirdan/tui-marbles/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagMute       bool
	flagNoAudio    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play marbles",
	Long: `Start playing.

Controls:
  Mouse            - Aim (click to fire)
  Left/Right, A/D  - Rotate aim
  Space            - Fire
  Enter            - Start
  R                - Retry the level (after game over)
  M                - Sound on/off
  P                - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower chain, new colors arrive slowly
  normal - Default tuning
  hard   - Faster chain, a new color every level
  fixed  - Chain speed never increases

Examples:
  marbles play
  marbles play --difficulty easy
  marbles play --level 5 --mute
  marbles play --config ./my-marbles.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start from")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

// addGameFlags registers the flags shared by play and menu.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Do not open the audio device")
}

// applyGameFlags validates the shared flags and hands them to the game.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadMarbles(flagConfig); err != nil {
			return err
		}
	}
	if flagLevel < 1 {
		return fmt.Errorf("invalid --level %d: levels start at 1", flagLevel)
	}

	marbles.SetConfigPath(flagConfig)
	marbles.SetDifficultyPreset(flagDifficulty)
	marbles.SetStartLevel(flagLevel)
	marbles.SetMuted(flagMute)
	return nil
}

// startAudio opens the speaker unless disabled. The returned func releases it.
func startAudio(player *audio.Player) func() {
	if flagNoAudio {
		return func() {}
	}
	player.Init()
	marbles.SetEventSink(player)
	return player.Close
}

func runPlay(_ *cobra.Command, _ []string) error {
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

	game, err := registry.Create(marbles.GameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
