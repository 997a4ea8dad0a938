// Package inputtest provides input.Input test doubles. Each embeds
// *input.Wrapper, so any query a double does not fake still reaches the
// real engine.
package inputtest

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/input"
)

// StubKeys reports PushedKeys as held. Assign an empty slice to release.
type StubKeys struct {
	*input.Wrapper
	PushedKeys []ebiten.Key
}

var _ input.Input = (*StubKeys)(nil)

func NewStubKeys(keys ...ebiten.Key) *StubKeys {
	return &StubKeys{Wrapper: input.NewWrapper(), PushedKeys: keys}
}

func (s *StubKeys) Key(key ebiten.Key) bool {
	return slices.Contains(s.PushedKeys, key)
}

// SimulateAxis is one named axis held at Value.
type SimulateAxis struct {
	Name  string
	Value float64
}

// StubAxes reports the first matching entry of Axes for Axis and AxisRaw,
// and 0 for names it does not list.
type StubAxes struct {
	*input.Wrapper
	Axes []SimulateAxis
}

var _ input.Input = (*StubAxes)(nil)

func NewStubAxes(axes ...SimulateAxis) *StubAxes {
	return &StubAxes{Wrapper: input.NewWrapper(), Axes: axes}
}

func (s *StubAxes) Axis(name string) float64 {
	for _, a := range s.Axes {
		if a.Name == name {
			return a.Value
		}
	}
	return 0
}

func (s *StubAxes) AxisRaw(name string) float64 { return s.Axis(name) }
