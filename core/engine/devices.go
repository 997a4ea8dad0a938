package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Devices is the table of raw device queries the engine polls. Every field is
// an Ebiten global in production.
type Devices struct {
	CursorPosition func() (int, int)
	Wheel          func() (float64, float64)
	InputChars     func([]rune) []rune
	TPS            func() int

	IsKeyPressed      func(ebiten.Key) bool
	IsKeyJustPressed  func(ebiten.Key) bool
	IsKeyJustReleased func(ebiten.Key) bool
	PressedKeys       func([]ebiten.Key) []ebiten.Key
	JustPressedKeys   func([]ebiten.Key) []ebiten.Key

	IsMouseButtonPressed      func(ebiten.MouseButton) bool
	IsMouseButtonJustPressed  func(ebiten.MouseButton) bool
	IsMouseButtonJustReleased func(ebiten.MouseButton) bool

	TouchIDs                    func([]ebiten.TouchID) []ebiten.TouchID
	JustReleasedTouchIDs        func([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition               func(ebiten.TouchID) (int, int)
	TouchPositionInPreviousTick func(ebiten.TouchID) (int, int)
	TouchPressDuration          func(ebiten.TouchID) int

	GamepadIDs                          func([]ebiten.GamepadID) []ebiten.GamepadID
	GamepadName                         func(ebiten.GamepadID) string
	IsStandardGamepadLayoutAvailable    func(ebiten.GamepadID) bool
	StandardGamepadAxisValue            func(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64
	IsStandardGamepadButtonPressed      func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool
	IsStandardGamepadButtonJustPressed  func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool
	IsStandardGamepadButtonJustReleased func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool
}

// Hardware is what the engine and the production input wrapper read from.
var Hardware = ebitenDevices()

func ebitenDevices() Devices {
	return Devices{
		CursorPosition: ebiten.CursorPosition,
		Wheel:          ebiten.Wheel,
		InputChars:     ebiten.AppendInputChars,
		TPS:            ebiten.TPS,

		IsKeyPressed:      ebiten.IsKeyPressed,
		IsKeyJustPressed:  inpututil.IsKeyJustPressed,
		IsKeyJustReleased: inpututil.IsKeyJustReleased,
		PressedKeys:       inpututil.AppendPressedKeys,
		JustPressedKeys:   inpututil.AppendJustPressedKeys,

		IsMouseButtonPressed:      ebiten.IsMouseButtonPressed,
		IsMouseButtonJustPressed:  inpututil.IsMouseButtonJustPressed,
		IsMouseButtonJustReleased: inpututil.IsMouseButtonJustReleased,

		TouchIDs:                    ebiten.AppendTouchIDs,
		JustReleasedTouchIDs:        inpututil.AppendJustReleasedTouchIDs,
		TouchPosition:               ebiten.TouchPosition,
		TouchPositionInPreviousTick: inpututil.TouchPositionInPreviousTick,
		TouchPressDuration:          inpututil.TouchPressDuration,

		GamepadIDs:                          ebiten.AppendGamepadIDs,
		GamepadName:                         ebiten.GamepadName,
		IsStandardGamepadLayoutAvailable:    ebiten.IsStandardGamepadLayoutAvailable,
		StandardGamepadAxisValue:            ebiten.StandardGamepadAxisValue,
		IsStandardGamepadButtonPressed:      ebiten.IsStandardGamepadButtonPressed,
		IsStandardGamepadButtonJustPressed:  inpututil.IsStandardGamepadButtonJustPressed,
		IsStandardGamepadButtonJustReleased: inpututil.IsStandardGamepadButtonJustReleased,
	}
}

// SetHardwareForTest replaces the device table and returns a function that
// restores the previous one. Nil fields in d behave as idle hardware: nothing
// pressed, cursor at the origin, no touches or gamepads, default TPS.
func SetHardwareForTest(d Devices) func() {
	old := Hardware
	Hardware = withIdleDefaults(d)
	return func() { Hardware = old }
}

func withIdleDefaults(d Devices) Devices {
	noKey := func(ebiten.Key) bool { return false }
	noButton := func(ebiten.MouseButton) bool { return false }
	noPad := func(ebiten.GamepadID, ebiten.StandardGamepadButton) bool { return false }
	noTouchPos := func(ebiten.TouchID) (int, int) { return 0, 0 }

	if d.CursorPosition == nil {
		d.CursorPosition = func() (int, int) { return 0, 0 }
	}
	if d.Wheel == nil {
		d.Wheel = func() (float64, float64) { return 0, 0 }
	}
	if d.InputChars == nil {
		d.InputChars = func(r []rune) []rune { return r }
	}
	if d.TPS == nil {
		d.TPS = func() int { return ebiten.DefaultTPS }
	}
	if d.IsKeyPressed == nil {
		d.IsKeyPressed = noKey
	}
	if d.IsKeyJustPressed == nil {
		d.IsKeyJustPressed = noKey
	}
	if d.IsKeyJustReleased == nil {
		d.IsKeyJustReleased = noKey
	}
	if d.PressedKeys == nil {
		d.PressedKeys = func(k []ebiten.Key) []ebiten.Key { return k }
	}
	if d.JustPressedKeys == nil {
		d.JustPressedKeys = func(k []ebiten.Key) []ebiten.Key { return k }
	}
	if d.IsMouseButtonPressed == nil {
		d.IsMouseButtonPressed = noButton
	}
	if d.IsMouseButtonJustPressed == nil {
		d.IsMouseButtonJustPressed = noButton
	}
	if d.IsMouseButtonJustReleased == nil {
		d.IsMouseButtonJustReleased = noButton
	}
	if d.TouchIDs == nil {
		d.TouchIDs = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	}
	if d.JustReleasedTouchIDs == nil {
		d.JustReleasedTouchIDs = func(ids []ebiten.TouchID) []ebiten.TouchID { return ids }
	}
	if d.TouchPosition == nil {
		d.TouchPosition = noTouchPos
	}
	if d.TouchPositionInPreviousTick == nil {
		d.TouchPositionInPreviousTick = noTouchPos
	}
	if d.TouchPressDuration == nil {
		d.TouchPressDuration = func(ebiten.TouchID) int { return 0 }
	}
	if d.GamepadIDs == nil {
		d.GamepadIDs = func(ids []ebiten.GamepadID) []ebiten.GamepadID { return ids }
	}
	if d.GamepadName == nil {
		d.GamepadName = func(ebiten.GamepadID) string { return "" }
	}
	if d.IsStandardGamepadLayoutAvailable == nil {
		d.IsStandardGamepadLayoutAvailable = func(ebiten.GamepadID) bool { return false }
	}
	if d.StandardGamepadAxisValue == nil {
		d.StandardGamepadAxisValue = func(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64 { return 0 }
	}
	if d.IsStandardGamepadButtonPressed == nil {
		d.IsStandardGamepadButtonPressed = noPad
	}
	if d.IsStandardGamepadButtonJustPressed == nil {
		d.IsStandardGamepadButtonJustPressed = noPad
	}
	if d.IsStandardGamepadButtonJustReleased == nil {
		d.IsStandardGamepadButtonJustReleased = noPad
	}
	return d
}
