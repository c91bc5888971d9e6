package panel

import "github.com/hajimehoshi/ebiten/v2"

// MouseInput is the pointer state the panel reads each tick. Tests swap in a
// fake.
type MouseInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	Wheel() (float64, float64)
}

type ebitenMouseInput struct{}

func (ebitenMouseInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenMouseInput) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenMouseInput) Wheel() (float64, float64) { return ebiten.Wheel() }

// EbitenMouse reads the real cursor.
var EbitenMouse MouseInput = ebitenMouseInput{}
