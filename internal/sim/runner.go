// Package sim steps game systems on a fixed simulated clock, so tests can
// say "hold W for half a second" without waiting half a second.
package sim

import (
	"context"
	"math"
	"time"
)

const DefaultTPS = 60

type System interface {
	Update(dt float64)
}

type SystemFunc func(dt float64)

func (f SystemFunc) Update(dt float64) { f(dt) }

// Runner advances its systems in order, one fixed tick at a time.
type Runner struct {
	TPS     int
	Systems []System

	frame int64
}

func NewRunner(tps int, systems ...System) *Runner {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Runner{TPS: tps, Systems: systems}
}

// Dt is the length of one tick in seconds.
func (r *Runner) Dt() float64 { return 1 / float64(r.TPS) }

// Step runs every system once.
func (r *Runner) Step() {
	dt := r.Dt()
	for _, s := range r.Systems {
		s.Update(dt)
	}
	r.frame++
}

// Ticks is the number of ticks that make up d.
func (r *Runner) Ticks(d time.Duration) int {
	return int(math.Round(d.Seconds() * float64(r.TPS)))
}

// RunFor steps as fast as possible through d of simulated time and returns
// the number of ticks run.
func (r *Runner) RunFor(d time.Duration) int {
	n := r.Ticks(d)
	for i := 0; i < n; i++ {
		r.Step()
	}
	return n
}

// Run steps through d of simulated time paced at wall-clock speed. It stops
// early when ctx is done and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, d time.Duration) error {
	n := r.Ticks(d)
	ticker := time.NewTicker(time.Second / time.Duration(r.TPS))
	defer ticker.Stop()
	for i := 0; i < n; i++ {
		select {
		case <-ticker.C:
			r.Step()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Frame is the number of ticks run so far.
func (r *Runner) Frame() int64 { return r.frame }

// Elapsed is the simulated time run so far.
func (r *Runner) Elapsed() time.Duration {
	return time.Duration(float64(r.frame) / float64(r.TPS) * float64(time.Second))
}
