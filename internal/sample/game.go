package sample

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nowsprinting/test-helper.input/core/engine"
	"github.com/nowsprinting/test-helper.input/core/input"
	game_log "github.com/nowsprinting/test-helper.input/internal/log"
)

var (
	colBG     = color.RGBA{20, 20, 30, 255}
	colGrid   = color.RGBA{60, 60, 60, 255}
	colBody   = color.RGBA{0, 200, 255, 255}
	colHeader = color.RGBA{255, 255, 0, 255}
)

// pixelsPerUnit maps world X/Z onto the screen.
const pixelsPerUnit = 20

// drawScene and debugPrint are variables so tests can capture draw calls.
var drawScene = func(dst *ebiten.Image, w, h int, c *Controller) {
	dst.Fill(colBG)
	cx, cy := float32(w)/2, float32(h)/2
	vector.StrokeLine(dst, 0, cy, float32(w), cy, 1, colGrid, false)
	vector.StrokeLine(dst, cx, 0, cx, float32(h), 1, colGrid, false)

	x := cx + float32(c.Position.X()*pixelsPerUnit)
	y := cy - float32(c.Position.Z()*pixelsPerUnit)
	vector.DrawFilledCircle(dst, x, y, 8, colBody, true)
	yaw := c.Yaw() * math.Pi / 180
	vector.StrokeLine(dst, x, y, x+float32(16*math.Sin(yaw)), y-float32(16*math.Cos(yaw)), 2, colHeader, true)
}

var debugPrint = ebitenutil.DebugPrint

// Game runs a Controller on live input inside an Ebiten window.
type Game struct {
	logger *game_log.Logger
	engine *engine.Engine
	ctrl   *Controller
	tps    int

	winW, winH int
	frame      int64
}

// NewGame wires a controller to the production wrapper over e.
func NewGame(logger *game_log.Logger, e *engine.Engine, tps int) *Game {
	if logger == nil {
		logger = game_log.Discard()
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	c := NewController()
	c.Input = input.NewWrapperFor(e)
	return &Game{logger: logger, engine: e, ctrl: c, tps: tps}
}

func (g *Game) Controller() *Controller { return g.ctrl }

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.logger.Infof("[GAME] Layout: winW: %d, winH: %d", w, h)
	}
	g.winW, g.winH = w, h
	return w, h
}

// Update advances the engine, then the controller. Cancel quits and Submit
// puts the controller back at the origin.
func (g *Game) Update() error {
	dt := 1 / float64(g.tps)
	g.engine.Update(dt)

	in := g.ctrl.Input
	if in.ButtonDown("Cancel") {
		g.logger.Infof("[GAME] Update: cancel pressed at frame %d, quitting", g.frame)
		return ebiten.Termination
	}
	if in.ButtonDown("Submit") {
		g.logger.Debugf("[GAME] Update: reset controller at frame %d", g.frame)
		g.ctrl.Position = mgl64.Vec3{}
		g.ctrl.Rotation = mgl64.QuatIdent()
		in.ResetInputAxes()
	}
	g.ctrl.Update(dt)
	g.frame++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.winW, g.winH, g.ctrl)
	debugPrint(screen, g.overlay())
}

func (g *Game) overlay() string {
	in := g.ctrl.Input
	var b strings.Builder
	fmt.Fprintf(&b, "frame %d  tps %d\n", g.frame, g.tps)
	fmt.Fprintf(&b, "pos (%.2f, %.2f, %.2f)  yaw %.1f\n",
		g.ctrl.Position.X(), g.ctrl.Position.Y(), g.ctrl.Position.Z(), g.ctrl.Yaw())
	fmt.Fprintf(&b, "Horizontal %.2f  Vertical %.2f  Mouse X %.2f\n",
		in.Axis("Horizontal"), in.Axis("Vertical"), in.Axis("Mouse X"))
	m := in.MousePosition()
	fmt.Fprintf(&b, "mouse (%.0f, %.0f)  touches %d\n", m.X(), m.Y(), in.TouchCount())
	if js := in.JoystickNames(); len(js) > 0 {
		fmt.Fprintf(&b, "joysticks %s\n", strings.Join(js, ", "))
	}
	b.WriteString("WASD move, mouse turn, Enter reset, Esc quit")
	return b.String()
}
