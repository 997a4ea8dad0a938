package sample

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	e, err := engine.New(nil, engine.DefaultBindings())
	require.NoError(t, err)
	return NewGame(nil, e, 60)
}

func TestGameMovesControllerFromHardware(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		IsKeyPressed: func(k ebiten.Key) bool { return k == ebiten.KeyD },
	})
	defer restore()
	g := newTestGame(t)

	for i := 0; i < 60; i++ {
		require.NoError(t, g.Update())
	}
	assert.InDelta(t, MoveSpeed, g.Controller().Position.X(), 1e-9)
	assert.Equal(t, int64(60), g.frame)
}

func TestGameCancelTerminates(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		IsKeyJustPressed: func(k ebiten.Key) bool { return k == ebiten.KeyEscape },
	})
	defer restore()
	g := newTestGame(t)

	err := g.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
}

func TestGameSubmitResets(t *testing.T) {
	submit := false
	restore := engine.SetHardwareForTest(engine.Devices{
		IsKeyJustPressed: func(k ebiten.Key) bool { return submit && k == ebiten.KeyEnter },
	})
	defer restore()
	g := newTestGame(t)
	g.Controller().Position = mgl64.Vec3{3, 0, 4}
	g.Controller().Rotation = mgl64.QuatRotate(1, up)

	submit = true
	require.NoError(t, g.Update())
	assert.Equal(t, mgl64.Vec3{}, g.Controller().Position)
	assert.InDelta(t, 0.0, g.Controller().Yaw(), 1e-9)
}

func TestGameDrawOverlay(t *testing.T) {
	restore := engine.SetHardwareForTest(engine.Devices{
		CursorPosition: func() (int, int) { return 12, 34 },
	})
	defer restore()

	var printed string
	var drawn *Controller
	oldScene, oldPrint := drawScene, debugPrint
	drawScene = func(_ *ebiten.Image, w, h int, c *Controller) {
		assert.Equal(t, 640, w)
		assert.Equal(t, 480, h)
		drawn = c
	}
	debugPrint = func(_ *ebiten.Image, s string) { printed = s }
	defer func() { drawScene, debugPrint = oldScene, oldPrint }()

	g := newTestGame(t)
	w, h := g.Layout(640, 480)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
	g.Draw(nil)

	assert.Same(t, g.Controller(), drawn)
	assert.Contains(t, printed, "tps 60")
	assert.Contains(t, printed, "mouse (12, 34)")
	assert.Contains(t, printed, "Esc quit")
}
