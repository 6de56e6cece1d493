package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Start a run",
	Long: `Start a run of the specified game (default: runner).

Controls:
  Space/Up/W  - Jump (hold for a higher jump)
  Down/S      - Crouch
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Pause, or leave after game over
  ?           - Toggle full help
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, ramps up to max speed
  normal - Configured speed, ramps up to max speed
  hard   - Faster start at level 4
  fixed  - No progression, speed stays constant

Config is loaded from --config, then ~/.runner/configs/runner.{yaml,toml},
then ./configs/runner.{yaml,toml}, then built-in defaults. An invalid
config is reported before the run starts.

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml --watch
  runner play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the run when the config file changes")
}

// terminalRuntime builds the runtime config from the terminal size and global flags.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Runs still work without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'runner list' to see available games", gameID)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
	create := func() (registry.Game, error) {
		return registry.Create(gameID, opts)
	}

	// Fail fast on a broken config
	game, err := create()
	if err != nil {
		return err
	}

	modelOpts := tui.ModelOptions{
		Runtime: terminalRuntime(),
		Logger:  logger,
	}

	if flagWatch {
		path := config.ResolvePath(flagConfig)
		if path == "" {
			return errors.New("--watch needs a config file: pass --config or create ~/.runner/configs/runner.yaml")
		}
		watcher, err := config.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("cannot watch %s: %w", path, err)
		}
		defer watcher.Close()
		logger.Info("watching config", "path", watcher.Path())

		modelOpts.Watcher = watcher
		modelOpts.Reload = create
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	modelOpts.Store = store

	logger.Info("run started", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, modelOpts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
