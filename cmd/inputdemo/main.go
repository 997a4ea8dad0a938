// inputdemo drives the sample controller through the input seam.
//
// Usage:
//
//	inputdemo play                                  - Open a window on live input
//	inputdemo simulate --keys W,D --axis "Mouse X=2" - Run headless on stubbed input
//
// Global flags:
//
//	--config <path>     - Input config YAML (default: ./configs/input.yaml, then built-in)
//	--log-level <level> - debug, info, error or none
//	--tps <rate>        - Tick rate (default: from config, 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nowsprinting/test-helper.input/internal/config"
	game_log "github.com/nowsprinting/test-helper.input/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what the root command resolves before any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	tps        int

	cfg    config.Config
	logger *game_log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "inputdemo",
		Short: "Drive a sample controller through the input seam",
		Long: `inputdemo runs a small WASD controller that reads every key and axis
through the input interface.

Available commands:
  play      - Open a window and play on real keyboard and mouse
  simulate  - Run headless with stubbed keys and axes

Examples:
  inputdemo play --tps 120
  inputdemo simulate --keys W --duration 0.5s
  inputdemo simulate --axis "Mouse X=2" --realtime`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to input config YAML")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, error, none")
	root.PersistentFlags().IntVar(&a.tps, "tps", 0, "Tick rate (ticks per second)")

	root.AddCommand(newPlayCmd(a))
	root.AddCommand(newSimulateCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.tps > 0 {
		cfg.TPS = a.tps
	}
	a.cfg = cfg
	a.logger = game_log.New(cmd.ErrOrStderr(), cfg.Level())
	a.logger.Debugf("[MAIN] config loaded: tps=%d axes=%d level=%s", cfg.TPS, len(cfg.Axes), cfg.Level())
	return nil
}
