// Package engine is the input-manager layer on top of Ebiten: named virtual
// axes and buttons, session settings, sensors and the IME session. It is
// advanced once per tick with Update.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/nowsprinting/test-helper.input/core/device"
	game_log "github.com/nowsprinting/test-helper.input/internal/log"
)

// Settings are the read-write session flags of the input system.
type Settings struct {
	SimulateMouseWithTouches    bool
	MultiTouchEnabled           bool
	CompensateSensors           bool
	BackButtonLeavesApp         bool
	EatKeyPressOnTextFieldFocus bool
	IMECompositionMode          device.IMECompositionMode
	CompositionCursorPos        mgl64.Vec2
}

func DefaultSettings() Settings {
	return Settings{
		SimulateMouseWithTouches:    true,
		MultiTouchEnabled:           true,
		CompensateSensors:           true,
		EatKeyPressOnTextFieldFocus: true,
		IMECompositionMode:          device.IMEAuto,
	}
}

// Sensors is the motion and location state reported to callers. Ebiten has
// no sensor API, so platforms that have one write into this struct.
type Sensors struct {
	Acceleration       mgl64.Vec3
	AccelerationEvents []device.AccelerationEvent
	Orientation        device.DeviceOrientation
	GyroAvailable      bool
	Gyro               *device.Gyroscope
	Compass            *device.Compass
	Location           *device.LocationService
}

// DesktopSensors is the sensor state of a machine without motion hardware.
func DesktopSensors() Sensors {
	return Sensors{
		Orientation: device.OrientationUnknown,
		Gyro:        &device.Gyroscope{Attitude: mgl64.QuatIdent()},
		Compass:     &device.Compass{},
		Location:    &device.LocationService{},
	}
}

// Engine holds the cross-tick input state that Ebiten itself does not keep.
type Engine struct {
	Settings Settings
	Sensors  Sensors

	logger *game_log.Logger
	axes   []*axisState
	byName map[string][]*axisState
	warned map[string]bool

	cursorX, cursorY int
	haveCursor       bool
	frame            int64
	resetFrame       int64 // buttons read as released during this frame

	ime imeSession
}

// New compiles the bindings into an engine. A nil logger discards output.
func New(logger *game_log.Logger, bindings []AxisBinding) (*Engine, error) {
	if logger == nil {
		logger = game_log.Discard()
	}
	e := &Engine{
		Settings: DefaultSettings(),
		Sensors:  DesktopSensors(),
		logger:   logger,
		byName:   make(map[string][]*axisState),
		warned:   make(map[string]bool),

		resetFrame: -1,
	}
	for _, b := range bindings {
		a, err := compileAxis(b)
		if err != nil {
			return nil, err
		}
		e.axes = append(e.axes, a)
		e.byName[a.Name] = append(e.byName[a.Name], a)
	}
	logger.Debugf("[ENGINE] New: %d axis bindings, %d names", len(e.axes), len(e.byName))
	return e, nil
}

var defaultEngine *Engine

// Default returns the process-wide engine, built from DefaultBindings on
// first use.
func Default() *Engine {
	if defaultEngine == nil {
		e, err := New(nil, DefaultBindings())
		if err != nil {
			panic("engine: default bindings: " + err.Error())
		}
		defaultEngine = e
	}
	return defaultEngine
}

// SetDefault replaces the process-wide engine and returns the previous one.
func SetDefault(e *Engine) *Engine {
	old := defaultEngine
	defaultEngine = e
	return old
}

// Update advances the engine by one tick of dt seconds. Call it once per
// ebiten.Game Update, before gameplay code reads input.
func (e *Engine) Update(dt float64) {
	x, y := Hardware.CursorPosition()
	var dx, dy float64
	if e.haveCursor {
		dx, dy = float64(x-e.cursorX), float64(y-e.cursorY)
	}
	e.cursorX, e.cursorY, e.haveCursor = x, y, true
	_, wheel := Hardware.Wheel()

	for _, a := range e.axes {
		a.update(dt, dx, dy, wheel)
	}
	e.pumpIME()
	e.frame++
}

// Frame is the number of ticks Update has run.
func (e *Engine) Frame() int64 { return e.frame }

func (e *Engine) lookup(name string) ([]*axisState, bool) {
	as, ok := e.byName[name]
	if !ok && !e.warned[name] {
		e.warned[name] = true
		e.logger.Warnf("[ENGINE] input axis %q is not set up", name)
	}
	return as, ok
}

// Control resolves a control name like ParseControl, logging one warning per
// name that does not resolve.
func (e *Engine) Control(name string) (Control, bool) {
	c, ok := ParseControl(name)
	if !ok && !e.warned["control:"+name] {
		e.warned["control:"+name] = true
		e.logger.Warnf("[ENGINE] input control %q is unknown", name)
	}
	return c, ok
}

// Axis returns the smoothed value of the named axis. Unknown names give 0.
func (e *Engine) Axis(name string) float64 {
	as, _ := e.lookup(name)
	best := 0.0
	for _, a := range as {
		if v := a.smoothed(); abs(v) > abs(best) {
			best = v
		}
	}
	return best
}

// AxisRaw returns the unsmoothed value of the named axis.
func (e *Engine) AxisRaw(name string) float64 {
	as, _ := e.lookup(name)
	best := 0.0
	for _, a := range as {
		if abs(a.raw) > abs(best) {
			best = a.raw
		}
	}
	return best
}

// Button reports whether any positive control of the named axis is held.
func (e *Engine) Button(name string) bool {
	return e.anyPositive(name, Control.Pressed)
}

// ButtonDown reports whether a positive control of the named axis went down
// this tick.
func (e *Engine) ButtonDown(name string) bool {
	return e.anyPositive(name, Control.JustPressed)
}

// ButtonUp reports whether a positive control of the named axis went up this
// tick.
func (e *Engine) ButtonUp(name string) bool {
	return e.anyPositive(name, Control.JustReleased)
}

func (e *Engine) anyPositive(name string, f func(Control) bool) bool {
	as, _ := e.lookup(name)
	if e.frame == e.resetFrame {
		return false
	}
	for _, a := range as {
		for _, c := range a.positive {
			if f(c) {
				return true
			}
		}
	}
	return false
}

// ResetAxes zeroes every axis and releases every button for the rest of the
// current tick. It also forgets the cursor baseline, so the next tick reports
// no mouse movement.
func (e *Engine) ResetAxes() {
	for _, a := range e.axes {
		a.reset()
	}
	e.resetFrame = e.frame
	e.haveCursor = false
	e.logger.Debugf("[ENGINE] ResetAxes at frame %d", e.frame)
}

// AxisNames lists the configured axis names in declaration order.
func (e *Engine) AxisNames() []string {
	seen := make(map[string]bool, len(e.byName))
	var names []string
	for _, a := range e.axes {
		if !seen[a.Name] {
			seen[a.Name] = true
			names = append(names, a.Name)
		}
	}
	return names
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
