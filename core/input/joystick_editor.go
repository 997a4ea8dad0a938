//go:build editor

package input

import "github.com/nowsprinting/test-helper.input/core/engine"

// IsJoystickPreconfigured reports whether a connected gamepad with this name
// has a standard layout mapping.
func (w *Wrapper) IsJoystickPreconfigured(joystickName string) bool {
	for _, id := range engine.Hardware.GamepadIDs(nil) {
		if engine.Hardware.GamepadName(id) == joystickName {
			return engine.Hardware.IsStandardGamepadLayoutAvailable(id)
		}
	}
	return false
}
