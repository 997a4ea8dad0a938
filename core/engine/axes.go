package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

type AxisType string

const (
	AxisKey      AxisType = "key"      // keys, mouse buttons or gamepad buttons
	AxisMouse    AxisType = "mouse"    // cursor movement or wheel
	AxisJoystick AxisType = "joystick" // standard gamepad stick
)

// AxisBinding declares one named virtual axis. Several bindings may share a
// name; queries then report the value with the largest magnitude.
type AxisBinding struct {
	Name        string   `yaml:"name"`
	Type        AxisType `yaml:"type"`
	Positive    string   `yaml:"positive,omitempty"`
	Negative    string   `yaml:"negative,omitempty"`
	AltPositive string   `yaml:"alt_positive,omitempty"`
	AltNegative string   `yaml:"alt_negative,omitempty"`
	Gravity     float64  `yaml:"gravity,omitempty"`
	Sensitivity float64  `yaml:"sensitivity,omitempty"`
	Dead        float64  `yaml:"dead,omitempty"`
	Snap        bool     `yaml:"snap,omitempty"`
	Invert      bool     `yaml:"invert,omitempty"`
	MouseAxis   string   `yaml:"mouse_axis,omitempty"` // x, y or wheel
	JoyAxis     int      `yaml:"joystick_axis,omitempty"`
}

//go:embed default_axes.yaml
var defaultAxesYAML []byte

// DefaultBindings returns the stock axis set: Horizontal, Vertical, Fire1-3,
// Jump, Mouse X/Y, Mouse ScrollWheel, Submit and Cancel.
func DefaultBindings() []AxisBinding {
	var doc struct {
		Axes []AxisBinding `yaml:"axes"`
	}
	if err := yaml.Unmarshal(defaultAxesYAML, &doc); err != nil {
		panic(fmt.Sprintf("engine: embedded default axes: %v", err))
	}
	return doc.Axes
}

type axisState struct {
	AxisBinding
	positive []Control
	negative []Control
	value    float64
	raw      float64
}

func compileAxis(b AxisBinding) (*axisState, error) {
	if b.Name == "" {
		return nil, errors.New("axis binding without a name")
	}
	if b.Type == "" {
		b.Type = AxisKey
	}
	a := &axisState{AxisBinding: b}
	switch b.Type {
	case AxisKey:
		var err error
		if a.positive, err = parseControls(b.Name, b.Positive, b.AltPositive); err != nil {
			return nil, err
		}
		if a.negative, err = parseControls(b.Name, b.Negative, b.AltNegative); err != nil {
			return nil, err
		}
	case AxisMouse:
		switch b.MouseAxis {
		case "x", "y", "wheel":
		default:
			return nil, fmt.Errorf("axis %q: unknown mouse axis %q", b.Name, b.MouseAxis)
		}
	case AxisJoystick:
		if b.JoyAxis < 0 || b.JoyAxis > int(ebiten.StandardGamepadAxisMax) {
			return nil, fmt.Errorf("axis %q: joystick axis %d out of range", b.Name, b.JoyAxis)
		}
	default:
		return nil, fmt.Errorf("axis %q: unknown type %q", b.Name, b.Type)
	}
	return a, nil
}

func parseControls(axis string, names ...string) ([]Control, error) {
	var out []Control
	for _, n := range names {
		if n == "" {
			continue
		}
		c, ok := ParseControl(n)
		if !ok {
			return nil, fmt.Errorf("axis %q: unknown control %q", axis, n)
		}
		out = append(out, c)
	}
	return out, nil
}

func anyPressed(cs []Control) bool {
	for _, c := range cs {
		if c.Pressed() {
			return true
		}
	}
	return false
}

// update advances the axis by one tick of dt seconds. dx, dy are the cursor
// movement since the previous tick in pixels, wheel the vertical wheel delta.
func (a *axisState) update(dt, dx, dy, wheel float64) {
	sign := 1.0
	if a.Invert {
		sign = -1
	}
	switch a.Type {
	case AxisKey:
		target := 0.0
		if anyPressed(a.positive) {
			target++
		}
		if anyPressed(a.negative) {
			target--
		}
		target *= sign
		a.raw = target
		if a.Snap && target != 0 && a.value*target < 0 {
			a.value = 0
		}
		if target != 0 {
			a.value = moveToward(a.value, target, a.Sensitivity*dt)
		} else {
			a.value = moveToward(a.value, 0, a.Gravity*dt)
		}
	case AxisMouse:
		var d float64
		switch a.MouseAxis {
		case "x":
			d = dx
		case "y":
			d = -dy // screen y grows downward; the axis is positive upward
		case "wheel":
			d = wheel
		}
		a.raw = d * a.sensitivity() * sign
		a.value = a.raw
	case AxisJoystick:
		v := 0.0
		for _, id := range Hardware.GamepadIDs(nil) {
			if Hardware.IsStandardGamepadLayoutAvailable(id) {
				v = Hardware.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(a.JoyAxis))
				break
			}
		}
		if math.Abs(v) < a.Dead {
			v = 0
		}
		a.raw = v * a.sensitivity() * sign
		a.value = a.raw
	}
}

func (a *axisState) sensitivity() float64 {
	if a.Sensitivity == 0 {
		return 1
	}
	return a.Sensitivity
}

// smoothed returns the value with the dead zone applied.
func (a *axisState) smoothed() float64 {
	if math.Abs(a.value) < a.Dead {
		return 0
	}
	return a.value
}

func (a *axisState) reset() {
	a.value = 0
	a.raw = 0
}

// moveToward steps v toward target by at most step. A non-positive step
// jumps straight to the target.
func moveToward(v, target, step float64) float64 {
	if step <= 0 {
		return target
	}
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
