//go:build editor

package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/stretchr/testify/assert"
)

func TestIsJoystickPreconfiguredInEditor(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		GamepadIDs: func(ids []ebiten.GamepadID) []ebiten.GamepadID { return append(ids, 0, 1) },
		GamepadName: func(id ebiten.GamepadID) string {
			return []string{"Xbox Controller", "Generic USB"}[id]
		},
		IsStandardGamepadLayoutAvailable: func(id ebiten.GamepadID) bool { return id == 0 },
	})
	defer restore()
	w := NewWrapper()

	assert.True(t, w.IsJoystickPreconfigured("Xbox Controller"))
	assert.False(t, w.IsJoystickPreconfigured("Generic USB"))
	assert.False(t, w.IsJoystickPreconfigured("Not Connected"))
}
