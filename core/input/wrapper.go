package input

import (
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/device"
	"github.com/nowsprinting/test-helper.input/core/engine"
)

// Wrapper answers every query from the running engine: raw device state from
// engine.Hardware (the Ebiten globals) and axes, buttons, settings, sensors
// and IME state from an engine.Engine. Nothing is cached or filtered.
//
// The zero value uses engine.Default(). Embed *Wrapper in a test double and
// shadow individual methods; the rest keep forwarding here.
type Wrapper struct {
	engine *engine.Engine
}

var _ Input = (*Wrapper)(nil)

func NewWrapper() *Wrapper { return &Wrapper{} }

// NewWrapperFor forwards axis, button, settings and sensor queries to e
// instead of the process-wide engine.
func NewWrapperFor(e *engine.Engine) *Wrapper { return &Wrapper{engine: e} }

func (w *Wrapper) eng() *engine.Engine {
	if w.engine != nil {
		return w.engine
	}
	return engine.Default()
}

func (w *Wrapper) String() string { return "wrapping ebiten input" }

/* ───────────── axes & buttons ───────────── */

func (w *Wrapper) Axis(name string) float64    { return w.eng().Axis(name) }
func (w *Wrapper) AxisRaw(name string) float64 { return w.eng().AxisRaw(name) }
func (w *Wrapper) ResetInputAxes()             { w.eng().ResetAxes() }
func (w *Wrapper) Button(name string) bool     { return w.eng().Button(name) }
func (w *Wrapper) ButtonDown(name string) bool { return w.eng().ButtonDown(name) }
func (w *Wrapper) ButtonUp(name string) bool   { return w.eng().ButtonUp(name) }

/* ───────────── keyboard ───────────── */

func (w *Wrapper) Key(key ebiten.Key) bool     { return engine.Hardware.IsKeyPressed(key) }
func (w *Wrapper) KeyDown(key ebiten.Key) bool { return engine.Hardware.IsKeyJustPressed(key) }
func (w *Wrapper) KeyUp(key ebiten.Key) bool   { return engine.Hardware.IsKeyJustReleased(key) }

// KeyNamed accepts the names engine.ParseControl does, mouse and gamepad
// buttons included. Unknown names report false.
func (w *Wrapper) KeyNamed(name string) bool {
	c, ok := w.eng().Control(name)
	return ok && c.Pressed()
}

func (w *Wrapper) KeyDownNamed(name string) bool {
	c, ok := w.eng().Control(name)
	return ok && c.JustPressed()
}

func (w *Wrapper) KeyUpNamed(name string) bool {
	c, ok := w.eng().Control(name)
	return ok && c.JustReleased()
}

// AnyKey reports whether any key or mouse button is held.
func (w *Wrapper) AnyKey() bool {
	if len(engine.Hardware.PressedKeys(nil)) > 0 {
		return true
	}
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if engine.Hardware.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}

// AnyKeyDown reports whether any key or mouse button went down this tick.
func (w *Wrapper) AnyKeyDown() bool {
	if len(engine.Hardware.JustPressedKeys(nil)) > 0 {
		return true
	}
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if engine.Hardware.IsMouseButtonJustPressed(b) {
			return true
		}
	}
	return false
}

func (w *Wrapper) InputString() string { return string(engine.Hardware.InputChars(nil)) }

/* ───────────── mouse ───────────── */

// MouseButton uses Ebiten's numbering: 0 left, 1 middle, 2 right. Indices
// outside 0..ebiten.MouseButtonMax report false.
func (w *Wrapper) MouseButton(button int) bool {
	return validMouseButton(button) && engine.Hardware.IsMouseButtonPressed(ebiten.MouseButton(button))
}

func (w *Wrapper) MouseButtonDown(button int) bool {
	return validMouseButton(button) && engine.Hardware.IsMouseButtonJustPressed(ebiten.MouseButton(button))
}

func (w *Wrapper) MouseButtonUp(button int) bool {
	return validMouseButton(button) && engine.Hardware.IsMouseButtonJustReleased(ebiten.MouseButton(button))
}

func validMouseButton(b int) bool { return b >= 0 && b <= int(ebiten.MouseButtonMax) }

func (w *Wrapper) MousePresent() bool { return !mobile() }

// MousePosition is the cursor in screen pixels, origin top left, z = 0.
func (w *Wrapper) MousePosition() mgl64.Vec3 {
	x, y := engine.Hardware.CursorPosition()
	return mgl64.Vec3{float64(x), float64(y), 0}
}

func (w *Wrapper) MouseScrollDelta() mgl64.Vec2 {
	x, y := engine.Hardware.Wheel()
	return mgl64.Vec2{x, y}
}

func (w *Wrapper) SimulateMouseWithTouches() bool { return w.eng().Settings.SimulateMouseWithTouches }
func (w *Wrapper) SetSimulateMouseWithTouches(enabled bool) {
	w.eng().Settings.SimulateMouseWithTouches = enabled
}

/* ───────────── touch ───────────── */

// Touches lists the touches held this tick, then the ones released this tick.
func (w *Wrapper) Touches() []device.Touch {
	h := engine.Hardware
	held := h.TouchIDs(nil)
	released := h.JustReleasedTouchIDs(nil)
	if len(held)+len(released) == 0 {
		return nil
	}
	dt := 1 / float64(h.TPS())
	out := make([]device.Touch, 0, len(held)+len(released))
	for _, id := range held {
		out = append(out, touch(id, false, dt))
	}
	for _, id := range released {
		out = append(out, touch(id, true, dt))
	}
	return out
}

func touch(id ebiten.TouchID, released bool, dt float64) device.Touch {
	h := engine.Hardware
	px, py := h.TouchPositionInPreviousTick(id)
	x, y := px, py
	if !released {
		x, y = h.TouchPosition(id)
	}
	t := device.Touch{
		FingerID:                int(id),
		Position:                mgl64.Vec2{float64(x), float64(y)},
		RawPosition:             mgl64.Vec2{float64(x), float64(y)},
		DeltaTime:               dt,
		TapCount:                1,
		Type:                    device.TouchDirect,
		Pressure:                1,
		MaximumPossiblePressure: 1,
	}
	switch {
	case released:
		t.Phase = device.TouchEnded
	case h.TouchPressDuration(id) <= 1:
		t.Phase = device.TouchBegan
	case x != px || y != py:
		t.Phase = device.TouchMoved
		t.DeltaPosition = mgl64.Vec2{float64(x - px), float64(y - py)}
	default:
		t.Phase = device.TouchStationary
	}
	return t
}

func (w *Wrapper) Touch(index int) (device.Touch, error) {
	ts := w.Touches()
	if index < 0 || index >= len(ts) {
		return device.Touch{}, fmt.Errorf("touch %d of %d: %w", index, len(ts), ErrIndexOutOfRange)
	}
	return ts[index], nil
}

func (w *Wrapper) TouchCount() int {
	return len(engine.Hardware.TouchIDs(nil)) + len(engine.Hardware.JustReleasedTouchIDs(nil))
}

func (w *Wrapper) TouchSupported() bool { return mobile() }

// TouchPressureSupported is false: Ebiten reports no pressure, so every
// touch carries 1.0.
func (w *Wrapper) TouchPressureSupported() bool { return false }
func (w *Wrapper) StylusTouchSupported() bool   { return false }

func (w *Wrapper) MultiTouchEnabled() bool { return w.eng().Settings.MultiTouchEnabled }
func (w *Wrapper) SetMultiTouchEnabled(enabled bool) {
	w.eng().Settings.MultiTouchEnabled = enabled
}

func mobile() bool { return runtime.GOOS == "android" || runtime.GOOS == "ios" }

/* ───────────── joysticks ───────────── */

func (w *Wrapper) JoystickNames() []string {
	ids := engine.Hardware.GamepadIDs(nil)
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, engine.Hardware.GamepadName(id))
	}
	return names
}

/* ───────────── sensors ───────────── */

func (w *Wrapper) Acceleration() mgl64.Vec3 { return w.eng().Sensors.Acceleration }

func (w *Wrapper) AccelerationEvent(index int) (device.AccelerationEvent, error) {
	evs := w.eng().Sensors.AccelerationEvents
	if index < 0 || index >= len(evs) {
		return device.AccelerationEvent{}, fmt.Errorf("acceleration event %d of %d: %w", index, len(evs), ErrIndexOutOfRange)
	}
	return evs[index], nil
}

func (w *Wrapper) AccelerationEventCount() int { return len(w.eng().Sensors.AccelerationEvents) }

func (w *Wrapper) AccelerationEvents() []device.AccelerationEvent {
	return w.eng().Sensors.AccelerationEvents
}

func (w *Wrapper) DeviceOrientation() device.DeviceOrientation { return w.eng().Sensors.Orientation }

func (w *Wrapper) CompensateSensors() bool { return w.eng().Settings.CompensateSensors }
func (w *Wrapper) SetCompensateSensors(enabled bool) {
	w.eng().Settings.CompensateSensors = enabled
}

// Deprecated: check Gyro().Enabled instead.
func (w *Wrapper) IsGyroAvailable() bool { return w.eng().Sensors.GyroAvailable }

func (w *Wrapper) Gyro() *device.Gyroscope           { return w.eng().Sensors.Gyro }
func (w *Wrapper) Compass() *device.Compass          { return w.eng().Sensors.Compass }
func (w *Wrapper) Location() *device.LocationService { return w.eng().Sensors.Location }

/* ───────────── IME ───────────── */

func (w *Wrapper) IMECompositionMode() device.IMECompositionMode {
	return w.eng().Settings.IMECompositionMode
}

func (w *Wrapper) SetIMECompositionMode(mode device.IMECompositionMode) {
	w.eng().Settings.IMECompositionMode = mode
}

func (w *Wrapper) CompositionString() string { return w.eng().CompositionString() }
func (w *Wrapper) IMEIsSelected() bool       { return w.eng().IMEIsSelected() }

func (w *Wrapper) CompositionCursorPos() mgl64.Vec2 { return w.eng().Settings.CompositionCursorPos }
func (w *Wrapper) SetCompositionCursorPos(pos mgl64.Vec2) {
	w.eng().Settings.CompositionCursorPos = pos
}

// Deprecated: kept for legacy text fields only.
func (w *Wrapper) EatKeyPressOnTextFieldFocus() bool {
	return w.eng().Settings.EatKeyPressOnTextFieldFocus
}

// Deprecated: kept for legacy text fields only.
func (w *Wrapper) SetEatKeyPressOnTextFieldFocus(enabled bool) {
	w.eng().Settings.EatKeyPressOnTextFieldFocus = enabled
}

/* ───────────── session ───────────── */

func (w *Wrapper) BackButtonLeavesApp() bool { return w.eng().Settings.BackButtonLeavesApp }
func (w *Wrapper) SetBackButtonLeavesApp(enabled bool) {
	w.eng().Settings.BackButtonLeavesApp = enabled
}
