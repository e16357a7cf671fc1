package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Default controls:
  Left/A, Right/D  - Move
  Up/X, Z          - Rotate clockwise, counter-clockwise
  Down/S           - Soft drop (hold)
  Space            - Hard drop
  P/Esc            - Pause
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  normal - Start at level 0
  hard   - Start at level 2
  expert - Start at level 4

Examples:
  blockfall play
  blockfall play --difficulty expert
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	bindings, err := cfg.Input.Bindings()
	if err != nil {
		return err
	}

	rt, err := runtimeConfig(logger)
	if err != nil {
		return err
	}
	game, err := blockfall.New(gameOptions(cfg, rt, logger)...)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if rt.ScreenW < tui.MinWidth || rt.ScreenH < tui.MinHeight+1 {
		logger.Warn("terminal smaller than the play field", "width", rt.ScreenW, "height", rt.ScreenH,
			"need_width", tui.MinWidth, "need_height", tui.MinHeight+1)
	}

	return tui.Run(game, tui.Options{
		Runtime:     rt,
		Keys:        tui.NewKeyMap(bindings),
		HoldTimeout: time.Duration(cfg.Input.HoldTimeout * float64(time.Second)),
		Logger:      logger,
	})
}
