//go:build !editor

package input

// IsJoystickPreconfigured is only answered in editor builds (-tags editor).
// Player builds always report false.
func (w *Wrapper) IsJoystickPreconfigured(joystickName string) bool { return false }
