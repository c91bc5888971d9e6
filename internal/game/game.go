// Package game wires the card engine, settings panel and drawing surface into
// an ebiten.Game.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/magic-card/internal/engine"
	"github.com/iburimskiy/magic-card/internal/panel"
	"github.com/iburimskiy/magic-card/internal/render"
)

// Input is the keyboard and mouse state read once per tick.
type Input interface {
	panel.MouseInput
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenInput struct {
	panel.MouseInput
}

func (ebitenInput) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// EbitenInput reads the real keyboard and mouse.
var EbitenInput Input = ebitenInput{panel.EbitenMouse}

// Game turns raw input into engine commands and composes each frame.
type Game struct {
	animator *engine.Animator
	panel    *panel.Panel
	screen   *render.Screen
	input    Input

	prevKey  map[ebiten.Key]bool
	wasDown  bool
	hovering bool
	w, h     int

	log zerolog.Logger
}

// New builds a game over an animator and panel. screen is only used by Draw.
func New(animator *engine.Animator, p *panel.Panel, screen *render.Screen, input Input) *Game {
	return &Game{
		animator: animator,
		panel:    p,
		screen:   screen,
		input:    input,
		prevKey:  map[ebiten.Key]bool{},
		log:      log.With().Str("module", "game").Logger(),
	}
}

func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		g.log.Info().Msg("Quit requested")
		return ebiten.Termination
	}

	captured := g.panel.Update(g.w, g.h)

	cx, cy := g.input.CursorPosition()
	down := g.input.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := down && !g.wasDown
	g.wasDown = down

	inside := cx >= 0 && cy >= 0 && cx < g.w && cy < g.h
	if captured || !inside {
		if g.hovering {
			g.animator.Post(engine.PointerLeave{})
			g.hovering = false
		}
	} else {
		x, y := float64(cx), float64(cy)
		g.animator.Post(engine.PointerMove{X: x, Y: y})
		g.hovering = true
		if clicked {
			g.animator.Post(engine.Click{X: x, Y: y})
		}
	}

	g.animator.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Bind(screen)
	g.animator.Draw(g.screen)
	g.panel.Draw(g.screen)
}

// Layout keeps the canvas the same size as the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.animator.Resize(g.w, g.h)
		g.log.Debug().Int("width", g.w).Int("height", g.h).Msg("Viewport resized")
	}
	return outsideWidth, outsideHeight
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := g.input.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}
