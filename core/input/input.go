// Package input restates Ebiten's global input polling functions as an
// interface, so gameplay code can take "something that answers input
// queries" instead of calling the globals directly.
//
// Production code uses Wrapper. Tests embed *Wrapper in a double, shadow the
// methods they want to fake and inherit the rest; see package inputtest.
package input

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/device"
)

// ErrIndexOutOfRange is returned by indexed queries such as Touch and
// AccelerationEvent when the index is not valid for the current tick.
var ErrIndexOutOfRange = errors.New("index out of range")

// Axes are the named virtual axes.
type Axes interface {
	// Axis returns the smoothed value of the named axis, in [-1, 1] for
	// key and joystick axes.
	Axis(name string) float64
	// AxisRaw returns the value without smoothing.
	AxisRaw(name string) float64
	// ResetInputAxes zeroes every axis and releases every named button for
	// the rest of the tick.
	ResetInputAxes()
}

// Buttons are the named virtual buttons.
type Buttons interface {
	Button(name string) bool
	ButtonDown(name string) bool
	ButtonUp(name string) bool
}

// Keyboard answers key state by code and by name.
type Keyboard interface {
	// Key reports whether the key is held.
	Key(key ebiten.Key) bool
	// KeyDown reports whether the key went down this tick.
	KeyDown(key ebiten.Key) bool
	// KeyUp reports whether the key went up this tick.
	KeyUp(key ebiten.Key) bool
	KeyNamed(name string) bool
	KeyDownNamed(name string) bool
	KeyUpNamed(name string) bool
	AnyKey() bool
	AnyKeyDown() bool
	// InputString is the text typed this tick.
	InputString() string
}

// Mouse is button, cursor and wheel state.
type Mouse interface {
	MouseButton(button int) bool
	MouseButtonDown(button int) bool
	MouseButtonUp(button int) bool
	MousePresent() bool
	MousePosition() mgl64.Vec3
	MouseScrollDelta() mgl64.Vec2
	SimulateMouseWithTouches() bool
	SetSimulateMouseWithTouches(enabled bool)
}

// Touchscreen lists the touches of the current tick.
type Touchscreen interface {
	Touch(index int) (device.Touch, error)
	TouchCount() int
	Touches() []device.Touch
	TouchSupported() bool
	TouchPressureSupported() bool
	StylusTouchSupported() bool
	MultiTouchEnabled() bool
	SetMultiTouchEnabled(enabled bool)
}

// Joysticks describes the connected gamepads.
type Joysticks interface {
	JoystickNames() []string
	IsJoystickPreconfigured(joystickName string) bool
}

// Sensors is motion, orientation and location data.
type Sensors interface {
	Acceleration() mgl64.Vec3
	AccelerationEvent(index int) (device.AccelerationEvent, error)
	AccelerationEventCount() int
	AccelerationEvents() []device.AccelerationEvent
	DeviceOrientation() device.DeviceOrientation
	CompensateSensors() bool
	SetCompensateSensors(enabled bool)
	// Deprecated: check Gyro().Enabled instead.
	IsGyroAvailable() bool
	Gyro() *device.Gyroscope
	Compass() *device.Compass
	Location() *device.LocationService
}

// IME controls text composition through the input method editor.
type IME interface {
	IMECompositionMode() device.IMECompositionMode
	SetIMECompositionMode(mode device.IMECompositionMode)
	CompositionString() string
	IMEIsSelected() bool
	CompositionCursorPos() mgl64.Vec2
	SetCompositionCursorPos(pos mgl64.Vec2)
	// Deprecated: kept for legacy text fields only.
	EatKeyPressOnTextFieldFocus() bool
	// Deprecated: kept for legacy text fields only.
	SetEatKeyPressOnTextFieldFocus(enabled bool)
}

// Input is every query the engine's input system answers.
type Input interface {
	Axes
	Buttons
	Keyboard
	Mouse
	Touchscreen
	Joysticks
	Sensors
	IME

	BackButtonLeavesApp() bool
	SetBackButtonLeavesApp(enabled bool)
}
