package inputtest

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nowsprinting/test-helper.input/core/input"
	"github.com/stretchr/testify/mock"
)

// Mock is a testify mock for the key, axis, button and mouse queries.
// Every call to one of those must be set up with On; the remaining queries
// go to the embedded wrapper.
type Mock struct {
	mock.Mock
	*input.Wrapper
}

var _ input.Input = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{Wrapper: input.NewWrapper()}
}

func (m *Mock) Key(key ebiten.Key) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *Mock) KeyDown(key ebiten.Key) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *Mock) KeyUp(key ebiten.Key) bool {
	args := m.Called(key)
	return args.Bool(0)
}

func (m *Mock) Axis(name string) float64 {
	args := m.Called(name)
	return args.Get(0).(float64)
}

func (m *Mock) AxisRaw(name string) float64 {
	args := m.Called(name)
	return args.Get(0).(float64)
}

func (m *Mock) ResetInputAxes() {
	m.Called()
}

func (m *Mock) Button(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *Mock) ButtonDown(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *Mock) ButtonUp(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *Mock) MouseButton(button int) bool {
	args := m.Called(button)
	return args.Bool(0)
}

func (m *Mock) MousePosition() mgl64.Vec3 {
	args := m.Called()
	return args.Get(0).(mgl64.Vec3)
}
