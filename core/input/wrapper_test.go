package input

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/device"
	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWrapper(t *testing.T) (*Wrapper, *engine.Engine) {
	t.Helper()
	e, err := engine.New(nil, engine.DefaultBindings())
	require.NoError(t, err)
	return NewWrapperFor(e), e
}

func TestStringIdentifiesWrapper(t *testing.T) {
	assert.Equal(t, "wrapping ebiten input", NewWrapper().String())
}

func TestKeysForwardToHardware(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		IsKeyPressed:      func(k ebiten.Key) bool { return k == ebiten.KeyW },
		IsKeyJustPressed:  func(k ebiten.Key) bool { return k == ebiten.KeyQ },
		IsKeyJustReleased: func(k ebiten.Key) bool { return k == ebiten.KeyE },
		PressedKeys:       func(ks []ebiten.Key) []ebiten.Key { return append(ks, ebiten.KeyW) },
		InputChars:        func(r []rune) []rune { return append(r, []rune("hi")...) },
	})
	defer restore()
	w, _ := newTestWrapper(t)

	assert.True(t, w.Key(ebiten.KeyW))
	assert.False(t, w.Key(ebiten.KeyA))
	assert.True(t, w.KeyDown(ebiten.KeyQ))
	assert.True(t, w.KeyUp(ebiten.KeyE))
	assert.True(t, w.KeyNamed("w"))
	assert.True(t, w.KeyDownNamed("Q"))
	assert.True(t, w.KeyUpNamed("e"))
	assert.False(t, w.KeyNamed("not a key"))
	assert.True(t, w.AnyKey())
	assert.False(t, w.AnyKeyDown())
	assert.Equal(t, "hi", w.InputString())
}

func TestMouseForwardsToHardware(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		CursorPosition:           func() (int, int) { return 320, 240 },
		Wheel:                    func() (float64, float64) { return 0, -1.5 },
		IsMouseButtonPressed:     func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonRight },
		IsMouseButtonJustPressed: func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonRight },
	})
	defer restore()
	w, _ := newTestWrapper(t)

	assert.Equal(t, mgl64.Vec3{320, 240, 0}, w.MousePosition())
	assert.Equal(t, mgl64.Vec2{0, -1.5}, w.MouseScrollDelta())
	assert.True(t, w.MouseButton(int(ebiten.MouseButtonRight)))
	assert.True(t, w.MouseButtonDown(int(ebiten.MouseButtonRight)))
	assert.False(t, w.MouseButtonUp(int(ebiten.MouseButtonRight)))
	assert.False(t, w.MouseButton(-1))
	assert.False(t, w.MouseButton(99))
	assert.True(t, w.KeyNamed("mouse right"))
	assert.True(t, w.AnyKey(), "mouse buttons count as keys")
	assert.True(t, w.AnyKeyDown())
}

func TestTouchPhases(t *testing.T) {
	pos := map[ebiten.TouchID][2]int{1: {10, 10}, 2: {50, 60}, 3: {7, 7}}
	prev := map[ebiten.TouchID][2]int{1: {10, 10}, 2: {40, 60}, 3: {7, 7}, 9: {90, 90}}
	dur := map[ebiten.TouchID]int{1: 1, 2: 5, 3: 8}
	restore := engine.SetHardwareForTest(engine.Devices{
		TouchIDs:             func(ids []ebiten.TouchID) []ebiten.TouchID { return append(ids, 1, 2, 3) },
		JustReleasedTouchIDs: func(ids []ebiten.TouchID) []ebiten.TouchID { return append(ids, 9) },
		TouchPosition: func(id ebiten.TouchID) (int, int) {
			p := pos[id]
			return p[0], p[1]
		},
		TouchPositionInPreviousTick: func(id ebiten.TouchID) (int, int) {
			p := prev[id]
			return p[0], p[1]
		},
		TouchPressDuration: func(id ebiten.TouchID) int { return dur[id] },
		TPS:                func() int { return 30 },
	})
	defer restore()
	w, _ := newTestWrapper(t)

	require.Equal(t, 4, w.TouchCount())
	ts := w.Touches()
	require.Len(t, ts, 4)

	assert.Equal(t, device.TouchBegan, ts[0].Phase)
	assert.Equal(t, device.TouchMoved, ts[1].Phase)
	assert.Equal(t, mgl64.Vec2{10, 0}, ts[1].DeltaPosition)
	assert.Equal(t, device.TouchStationary, ts[2].Phase)
	assert.Equal(t, device.TouchEnded, ts[3].Phase)
	assert.Equal(t, mgl64.Vec2{90, 90}, ts[3].Position, "released touches keep their last position")
	assert.Equal(t, 1.0, ts[0].Pressure)
	assert.InDelta(t, 1.0/30, ts[0].DeltaTime, 1e-12, "tick length comes from the device table")

	got, err := w.Touch(1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FingerID)

	_, err = w.Touch(4)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = w.Touch(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestNoTouches(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{})
	defer restore()
	w, _ := newTestWrapper(t)

	assert.Zero(t, w.TouchCount())
	assert.Empty(t, w.Touches())
	_, err := w.Touch(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAxesAndButtonsForwardToEngine(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		IsKeyPressed: func(k ebiten.Key) bool { return k == ebiten.KeyW || k == ebiten.KeySpace },
	})
	defer restore()
	w, e := newTestWrapper(t)

	e.Update(0.1)
	assert.InDelta(t, 0.3, w.Axis("Vertical"), 1e-9)
	assert.Equal(t, 1.0, w.AxisRaw("Vertical"))
	assert.True(t, w.Button("Jump"))
	assert.False(t, w.ButtonDown("Jump"))
	assert.False(t, w.ButtonUp("Jump"))

	w.ResetInputAxes()
	assert.Equal(t, 0.0, w.Axis("Vertical"))
	assert.Equal(t, 0.0, w.Axis("No Such Axis"))
}

func TestSettingsRoundTripThroughEngine(t *testing.T) {
	w, e := newTestWrapper(t)

	w.SetSimulateMouseWithTouches(false)
	w.SetMultiTouchEnabled(false)
	w.SetCompensateSensors(false)
	w.SetBackButtonLeavesApp(true)
	w.SetIMECompositionMode(device.IMEOff)
	w.SetCompositionCursorPos(mgl64.Vec2{3, 4})
	w.SetEatKeyPressOnTextFieldFocus(false)

	assert.False(t, e.Settings.SimulateMouseWithTouches)
	assert.False(t, w.SimulateMouseWithTouches())
	assert.False(t, w.MultiTouchEnabled())
	assert.False(t, w.CompensateSensors())
	assert.True(t, w.BackButtonLeavesApp())
	assert.Equal(t, device.IMEOff, w.IMECompositionMode())
	assert.Equal(t, mgl64.Vec2{3, 4}, w.CompositionCursorPos())
	assert.False(t, w.EatKeyPressOnTextFieldFocus())
	assert.Equal(t, "", w.CompositionString())
	assert.False(t, w.IMEIsSelected())
}

func TestSensorsForwardToEngine(t *testing.T) {
	w, e := newTestWrapper(t)

	assert.Equal(t, mgl64.Vec3{}, w.Acceleration())
	assert.Zero(t, w.AccelerationEventCount())
	assert.Equal(t, device.OrientationUnknown, w.DeviceOrientation())
	assert.False(t, w.IsGyroAvailable())
	assert.Same(t, e.Sensors.Gyro, w.Gyro())
	assert.Same(t, e.Sensors.Compass, w.Compass())
	assert.Same(t, e.Sensors.Location, w.Location())

	e.Sensors.Acceleration = mgl64.Vec3{0, -1, 0}
	e.Sensors.AccelerationEvents = []device.AccelerationEvent{{Acceleration: mgl64.Vec3{0, -1, 0}, DeltaTime: 0.02}}
	e.Sensors.Orientation = device.OrientationPortrait

	assert.Equal(t, mgl64.Vec3{0, -1, 0}, w.Acceleration())
	assert.Equal(t, 1, w.AccelerationEventCount())
	ev, err := w.AccelerationEvent(0)
	require.NoError(t, err)
	assert.Equal(t, 0.02, ev.DeltaTime)
	_, err = w.AccelerationEvent(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, device.OrientationPortrait, w.DeviceOrientation())

	w.Location().Start(10, 10)
	assert.Equal(t, device.LocationFailed, w.Location().Status, "location needs user permission")
}

func TestJoystickNames(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		GamepadIDs: func(ids []ebiten.GamepadID) []ebiten.GamepadID { return append(ids, 0, 1) },
		GamepadName: func(id ebiten.GamepadID) string {
			return []string{"Xbox Controller", "Generic USB"}[id]
		},
	})
	defer restore()
	w, _ := newTestWrapper(t)

	assert.Equal(t, []string{"Xbox Controller", "Generic USB"}, w.JoystickNames())
}
