package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/nowsprinting/test-helper.input/core/input/inputtest"
	"github.com/nowsprinting/test-helper.input/internal/sample"
	"github.com/nowsprinting/test-helper.input/internal/sim"
)

// scripted holds keys from a StubKeys and reads axes from a StubAxes.
type scripted struct {
	*inputtest.StubKeys
	axes *inputtest.StubAxes
}

func (s scripted) Axis(name string) float64    { return s.axes.Axis(name) }
func (s scripted) AxisRaw(name string) float64 { return s.axes.AxisRaw(name) }

func newSimulateCmd(a *app) *cobra.Command {
	var (
		keys     []string
		axes     []string
		duration time.Duration
		realtime bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the controller headless on stubbed input",
		Long: `Hold the given keys and axis values for a while, then print where the
controller ended up.

Examples:
  inputdemo simulate --keys W --duration 0.5s
  inputdemo simulate --keys W,D --axis "Mouse X=2"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pushed, err := parseKeys(keys)
			if err != nil {
				return err
			}
			simulated, err := parseAxes(axes)
			if err != nil {
				return err
			}
			e, err := a.cfg.NewEngine(a.logger)
			if err != nil {
				return err
			}
			prev := engine.SetDefault(e)
			defer engine.SetDefault(prev)

			c := sample.NewController()
			c.Input = scripted{
				StubKeys: inputtest.NewStubKeys(pushed...),
				axes:     inputtest.NewStubAxes(simulated...),
			}
			r := sim.NewRunner(a.cfg.TPS, sim.SystemFunc(e.Update), c)

			a.logger.Infof("[SIM] keys=%v axes=%v duration=%v realtime=%t", pushed, simulated, duration, realtime)
			if realtime {
				if err := r.Run(cmd.Context(), duration); err != nil {
					return err
				}
			} else {
				r.RunFor(duration)
			}

			p := c.Position
			fmt.Fprintf(cmd.OutOrStdout(), "ticks: %d (%v)\n", r.Frame(), r.Elapsed())
			fmt.Fprintf(cmd.OutOrStdout(), "position: %.3f %.3f %.3f\n", p.X(), p.Y(), p.Z())
			fmt.Fprintf(cmd.OutOrStdout(), "yaw: %.3f\n", c.Yaw())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&keys, "keys", nil, "Keys to hold, e.g. W,D")
	cmd.Flags().StringArrayVar(&axes, "axis", nil, `Axis value to simulate, e.g. "Mouse X=2" (repeatable)`)
	cmd.Flags().DurationVar(&duration, "duration", 500*time.Millisecond, "Simulated time to run")
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Pace ticks at wall-clock speed")
	return cmd
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	var keys []ebiten.Key
	for _, n := range names {
		c, ok := engine.ParseControl(n)
		if !ok || c.Kind != engine.ControlKey {
			return nil, fmt.Errorf("unknown key %q", n)
		}
		keys = append(keys, c.Key)
	}
	return keys, nil
}

func parseAxes(pairs []string) ([]inputtest.SimulateAxis, error) {
	var out []inputtest.SimulateAxis
	for _, s := range pairs {
		name, val, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("axis %q: want Name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("axis %q: %w", s, err)
		}
		out = append(out, inputtest.SimulateAxis{Name: strings.TrimSpace(name), Value: v})
	}
	return out, nil
}
