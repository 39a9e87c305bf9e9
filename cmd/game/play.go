package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/dungeon-chase/internal/config"
	"github.com/Garsondee/dungeon-chase/internal/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Opens the game window on the title screen. Paths in the configuration
are relative to the working directory; run from the repository root to use
the bundled maps/ and the placeholder assets/tileset0.png, or point
assets.tileset (or DUNGEON_TILESET) at your own 32px tile sheet.

Controls:
  Arrows/WASD  - Move (hold two for diagonals)
  Left stick   - Move
  P/Esc/Start  - Pause and resume
  F9           - Copy a debug report to the clipboard
  Mouse        - Pick menu entries`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		if errors.Is(err, config.ErrInvalid) {
			logger.Error("configuration rejected", "error", err)
		}
		return err
	}

	env := game.NewEnv(cfg, logger)
	g, err := game.New(env)
	if err != nil {
		logger.Error("could not start", "error", err)
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game aborted", "error", err)
		return err
	}
	return nil
}
