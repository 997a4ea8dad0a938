package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

type ControlKind int

const (
	ControlKey ControlKind = iota
	ControlMouseButton
	ControlGamepadButton
)

// Control is a single physical input addressed by name: a key, a mouse
// button, or a standard-layout gamepad button on any connected gamepad.
type Control struct {
	Kind   ControlKind
	Key    ebiten.Key
	Mouse  ebiten.MouseButton
	Button ebiten.StandardGamepadButton
}

func (c Control) String() string {
	switch c.Kind {
	case ControlMouseButton:
		return fmt.Sprintf("mouse %d", int(c.Mouse))
	case ControlGamepadButton:
		return fmt.Sprintf("joystick button %d", int(c.Button))
	default:
		return strings.ToLower(c.Key.String())
	}
}

// Pressed reports whether the control is held this tick.
func (c Control) Pressed() bool {
	switch c.Kind {
	case ControlMouseButton:
		return Hardware.IsMouseButtonPressed(c.Mouse)
	case ControlGamepadButton:
		return anyGamepad(func(id ebiten.GamepadID) bool {
			return Hardware.IsStandardGamepadButtonPressed(id, c.Button)
		})
	default:
		return Hardware.IsKeyPressed(c.Key)
	}
}

// JustPressed reports whether the control went down this tick.
func (c Control) JustPressed() bool {
	switch c.Kind {
	case ControlMouseButton:
		return Hardware.IsMouseButtonJustPressed(c.Mouse)
	case ControlGamepadButton:
		return anyGamepad(func(id ebiten.GamepadID) bool {
			return Hardware.IsStandardGamepadButtonJustPressed(id, c.Button)
		})
	default:
		return Hardware.IsKeyJustPressed(c.Key)
	}
}

// JustReleased reports whether the control went up this tick.
func (c Control) JustReleased() bool {
	switch c.Kind {
	case ControlMouseButton:
		return Hardware.IsMouseButtonJustReleased(c.Mouse)
	case ControlGamepadButton:
		return anyGamepad(func(id ebiten.GamepadID) bool {
			return Hardware.IsStandardGamepadButtonJustReleased(id, c.Button)
		})
	default:
		return Hardware.IsKeyJustReleased(c.Key)
	}
}

func anyGamepad(f func(ebiten.GamepadID) bool) bool {
	for _, id := range Hardware.GamepadIDs(nil) {
		if Hardware.IsStandardGamepadLayoutAvailable(id) && f(id) {
			return true
		}
	}
	return false
}

var keyNames = buildKeyNames()

// aliases use the conventional names found in input-manager configs.
var keyAliases = map[string]ebiten.Key{
	"left shift":  ebiten.KeyShiftLeft,
	"right shift": ebiten.KeyShiftRight,
	"left ctrl":   ebiten.KeyControlLeft,
	"right ctrl":  ebiten.KeyControlRight,
	"left alt":    ebiten.KeyAltLeft,
	"right alt":   ebiten.KeyAltRight,
	"left cmd":    ebiten.KeyMetaLeft,
	"right cmd":   ebiten.KeyMetaRight,
	"left super":  ebiten.KeyMetaLeft,
	"right super": ebiten.KeyMetaRight,
	"up":          ebiten.KeyArrowUp,
	"down":        ebiten.KeyArrowDown,
	"left":        ebiten.KeyArrowLeft,
	"right":       ebiten.KeyArrowRight,
	"return":      ebiten.KeyEnter,
	"enter":       ebiten.KeyEnter,
	"escape":      ebiten.KeyEscape,
	"space":       ebiten.KeySpace,
	"backspace":   ebiten.KeyBackspace,
	"tab":         ebiten.KeyTab,
	"delete":      ebiten.KeyDelete,
	"insert":      ebiten.KeyInsert,
	"home":        ebiten.KeyHome,
	"end":         ebiten.KeyEnd,
	"page up":     ebiten.KeyPageUp,
	"page down":   ebiten.KeyPageDown,
	"caps lock":   ebiten.KeyCapsLock,
	"[+]":         ebiten.KeyNumpadAdd,
	"[-]":         ebiten.KeyNumpadSubtract,
	"[*]":         ebiten.KeyNumpadMultiply,
	"[/]":         ebiten.KeyNumpadDivide,
	"[.]":         ebiten.KeyNumpadDecimal,
	"[enter]":     ebiten.KeyNumpadEnter,
	"-":           ebiten.KeyMinus,
	"=":           ebiten.KeyEqual,
	"[":           ebiten.KeyBracketLeft,
	"]":           ebiten.KeyBracketRight,
	";":           ebiten.KeySemicolon,
	"'":           ebiten.KeyQuote,
	",":           ebiten.KeyComma,
	".":           ebiten.KeyPeriod,
	"/":           ebiten.KeySlash,
	"\\":          ebiten.KeyBackslash,
	"`":           ebiten.KeyBackquote,
}

var mouseAliases = map[string]ebiten.MouseButton{
	"mouse left":   ebiten.MouseButtonLeft,
	"mouse right":  ebiten.MouseButtonRight,
	"mouse middle": ebiten.MouseButtonMiddle,
}

func buildKeyNames() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+len(keyAliases)+20)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		s := strings.ToLower(k.String())
		if s == "" {
			continue
		}
		m[s] = k
		m[strings.TrimPrefix(s, "key")] = k
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	pad := []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	for i := range digits {
		m[strconv.Itoa(i)] = digits[i]
		m["["+strconv.Itoa(i)+"]"] = pad[i]
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}

// ParseControl resolves a control name, case-insensitively. It accepts key
// names ("w", "space", "left shift", "ArrowUp"), mouse buttons ("mouse 0"
// to "mouse 4", "mouse left") and gamepad buttons ("joystick button 0").
func ParseControl(name string) (Control, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Control{}, false
	}
	if k, ok := keyNames[n]; ok {
		return Control{Kind: ControlKey, Key: k}, true
	}
	if b, ok := mouseAliases[n]; ok {
		return Control{Kind: ControlMouseButton, Mouse: b}, true
	}
	if rest, ok := strings.CutPrefix(n, "mouse "); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 || i > int(ebiten.MouseButtonMax) {
			return Control{}, false
		}
		return Control{Kind: ControlMouseButton, Mouse: ebiten.MouseButton(i)}, true
	}
	if rest, ok := strings.CutPrefix(n, "joystick button "); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 || i > int(ebiten.StandardGamepadButtonMax) {
			return Control{}, false
		}
		return Control{Kind: ControlGamepadButton, Button: ebiten.StandardGamepadButton(i)}, true
	}
	return Control{}, false
}
