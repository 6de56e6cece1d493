package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Pick a difficulty with Left/Right, then Play or look at High Scores.
After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty preset")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Fail fast on a broken config
	if _, err := config.LoadRunner(flagConfig); err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalRuntime()

	for {
		result, err := tui.RunMenu(runner.GameID, store, cfg, preset)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue

		case tui.MenuChoicePlay:
			preset = result.Difficulty
			game, err := registry.Create(runner.GameID, registry.Options{
				ConfigPath: flagConfig,
				Difficulty: string(preset),
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			// Fresh seed per run unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			logger.Info("run started", "difficulty", preset, "seed", cfg.Seed)
			if err := tui.Run(game, tui.ModelOptions{Store: store, Runtime: cfg, Logger: logger}); err != nil {
				return fmt.Errorf("running game: %w", err)
			}

		default:
			return nil
		}
	}
}
