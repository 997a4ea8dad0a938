// Package sample is a small gameplay object that reads all of its input
// through input.Input, so tests can drive it with stubs.
package sample

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/input"
)

// MoveSpeed is in world units per second.
const MoveSpeed = 7.0

var (
	forward = mgl64.Vec3{0, 0, 1}
	back    = mgl64.Vec3{0, 0, -1}
	left    = mgl64.Vec3{-1, 0, 0}
	right   = mgl64.Vec3{1, 0, 0}
	up      = mgl64.Vec3{0, 1, 0}
)

// Controller walks on WASD and turns with the "Mouse X" axis.
type Controller struct {
	Input    input.Input
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func NewController() *Controller {
	return &Controller{Input: input.NewWrapper(), Rotation: mgl64.QuatIdent()}
}

// Update advances the controller by dt seconds.
func (c *Controller) Update(dt float64) {
	c.move(dt)
	c.rotate(dt)
}

func (c *Controller) move(dt float64) {
	step := MoveSpeed * dt
	if c.Input.Key(ebiten.KeyW) {
		c.Position = c.Position.Add(forward.Mul(step))
	}
	if c.Input.Key(ebiten.KeyA) {
		c.Position = c.Position.Add(left.Mul(step))
	}
	if c.Input.Key(ebiten.KeyS) {
		c.Position = c.Position.Add(back.Mul(step))
	}
	if c.Input.Key(ebiten.KeyD) {
		c.Position = c.Position.Add(right.Mul(step))
	}
}

// rotate turns about the local up axis by Axis("Mouse X") degrees per second.
func (c *Controller) rotate(dt float64) {
	deg := c.Input.Axis("Mouse X") * dt
	if deg == 0 {
		return
	}
	c.Rotation = c.Rotation.Mul(mgl64.QuatRotate(mgl64.DegToRad(deg), up)).Normalize()
}

// Yaw is the heading in degrees, positive turning from +Z toward +X.
func (c *Controller) Yaw() float64 {
	f := c.Rotation.Rotate(forward)
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}
