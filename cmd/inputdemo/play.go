package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/nowsprinting/test-helper.input/internal/sample"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open a window and play on live input",
		Long: `Open a window running the sample controller on the production wrapper.

Controls:
  W/A/S/D  - Move
  Mouse    - Turn
  Enter    - Reset to the origin
  Esc      - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.cfg.NewEngine(a.logger)
			if err != nil {
				return err
			}
			engine.SetDefault(e)

			g := sample.NewGame(a.logger, e, a.cfg.TPS)
			ebiten.SetTPS(a.cfg.TPS)
			ebiten.SetWindowSize(640, 480)
			ebiten.SetWindowTitle("inputdemo")
			a.logger.Infof("[MAIN] play: %d axes at %d TPS", len(e.AxisNames()), a.cfg.TPS)
			return ebiten.RunGame(g)
		},
	}
}
