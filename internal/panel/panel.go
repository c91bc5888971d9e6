// Package panel is the on-screen settings panel: a toggle button plus a
// scrolling column of sliders and buttons bound to a settings.Store.
package panel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/magic-card/internal/config"
	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

// Level reports recent output loudness in [0, 1].
type Level interface {
	Level() float64
}

type itemKind int

const (
	itemHeader itemKind = iota
	itemSlider
	itemButton
)

type action int

const (
	actionNone action = iota
	actionRandomize
	actionPreset
)

// item is one row of the panel, positioned in content space.
type item struct {
	kind    itemKind
	label   string
	control settings.Control
	action  action
	y, h    float64
}

// Panel lets the user edit settings while the card runs. Everything except
// the preset dialog runs on the game loop goroutine.
type Panel struct {
	store *settings.Store
	mouse MouseInput
	pick  Picker
	level Level

	items   []item
	content float64

	visible  bool
	scroll   float64
	dragging int
	wasDown  bool
	captured bool
	cursor   render.Point
	w, h     float64

	loading bool
	status  string
	results chan presetResult

	log zerolog.Logger
}

// Option customises a Panel.
type Option func(*Panel)

// WithMouse replaces the ebiten cursor.
func WithMouse(m MouseInput) Option { return func(p *Panel) { p.mouse = m } }

// WithPicker replaces the native file chooser.
func WithPicker(pick Picker) Option { return func(p *Panel) { p.pick = pick } }

// WithLevel shows a loudness bar next to the sound section.
func WithLevel(l Level) Option { return func(p *Panel) { p.level = l } }

// New builds a hidden panel over store's controls.
func New(store *settings.Store, opts ...Option) *Panel {
	p := &Panel{
		store:    store,
		mouse:    EbitenMouse,
		pick:     ZenityPicker,
		dragging: -1,
		results:  make(chan presetResult, 1),
		log:      log.With().Str("module", "panel").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items, p.content = layout(store.Controls())
	return p
}

func layout(controls []settings.Control) ([]item, float64) {
	var items []item
	y := 0.0
	section := ""
	for _, c := range controls {
		if c.Section != section {
			section = c.Section
			items = append(items, item{kind: itemHeader, label: section, y: y, h: config.PanelHeaderHeight})
			y += config.PanelHeaderHeight
		}
		items = append(items, item{kind: itemSlider, label: c.Label, control: c, y: y, h: config.PanelRowHeight})
		y += config.PanelRowHeight
	}

	y += config.PanelGap
	for _, b := range []item{
		{kind: itemButton, label: "Randomize All", action: actionRandomize},
		{kind: itemButton, label: "Load Preset", action: actionPreset},
	} {
		b.y, b.h = y, config.ButtonHeight
		items = append(items, b)
		y += config.ButtonHeight + config.PanelGap
	}

	// status line
	y += config.PanelHeaderHeight
	return items, y
}

// Visible reports whether the body is shown.
func (p *Panel) Visible() bool { return p.visible }

// SetVisible shows or hides the body. The toggle stays on screen either way.
func (p *Panel) SetVisible(v bool) {
	p.visible = v
	p.dragging = -1
}

// Status is the last preset or randomize message.
func (p *Panel) Status() string { return p.status }

// Contains reports whether (x, y) is on the toggle or the visible body.
func (p *Panel) Contains(x, y float64) bool {
	if p.toggleRect().Contains(x, y) {
		return true
	}
	return p.visible && p.bodyRect().Contains(x, y)
}

// Update reads the mouse for one tick in a w×h viewport and applies any
// finished preset load. It reports whether the pointer belongs to the panel,
// in which case the card must not react to it.
func (p *Panel) Update(w, h int) bool {
	p.w, p.h = float64(w), float64(h)
	p.collectPreset()
	p.clampScroll()

	cx, cy := p.mouse.CursorPosition()
	x, y := float64(cx), float64(cy)
	p.cursor = render.Point{X: x, Y: y}

	down := p.mouse.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	pressed := down && !p.wasDown
	p.wasDown = down

	over := p.Contains(x, y)
	if pressed {
		p.captured = over
		if over {
			p.press(x, y)
		}
	}
	if !down {
		p.captured = false
		p.dragging = -1
	}
	if p.dragging >= 0 {
		p.drag(x)
	}

	if over && p.visible {
		if _, wy := p.mouse.Wheel(); wy != 0 {
			p.scroll -= wy * config.PanelScrollStep
			p.clampScroll()
		}
	}
	return over || p.captured
}

func (p *Panel) press(x, y float64) {
	if p.toggleRect().Contains(x, y) {
		p.SetVisible(!p.visible)
		return
	}

	body := p.bodyRect()
	for i, it := range p.items {
		if !p.itemRect(body, it).Contains(x, y) {
			continue
		}
		switch it.kind {
		case itemSlider:
			p.dragging = i
		case itemButton:
			p.activate(it.action)
		}
		return
	}
}

// drag moves the held slider to x, snapped to the control's step.
func (p *Panel) drag(x float64) {
	it := p.items[p.dragging]
	r := p.itemRect(p.bodyRect(), it)
	if r.W <= 0 {
		return
	}
	c := it.control
	frac := render.Clamp01((x - r.X) / r.W)
	p.store.Set(c.ID, c.Min+math.Round(frac*100)*c.Step())
}

func (p *Panel) activate(a action) {
	switch a {
	case actionRandomize:
		p.store.Randomize()
		p.status = "Randomized"
	case actionPreset:
		p.loadPreset()
	}
}

func (p *Panel) toggleRect() render.Rect {
	return render.Rect{
		X: p.w - config.ToggleWidth - config.PanelMargin,
		Y: config.PanelMargin,
		W: config.ToggleWidth,
		H: config.ToggleHeight,
	}
}

// bodyRect sits under the toggle and shrinks to the content when it fits.
func (p *Panel) bodyRect() render.Rect {
	top := float64(config.PanelMargin + config.ToggleHeight + config.PanelGap)
	h := math.Min(p.content+2*config.PanelPadding, p.h-top-config.PanelMargin)
	return render.Rect{
		X: p.w - config.PanelWidth - config.PanelMargin,
		Y: top,
		W: config.PanelWidth,
		H: math.Max(0, h),
	}
}

func (p *Panel) itemRect(body render.Rect, it item) render.Rect {
	return render.Rect{
		X: body.X + config.PanelPadding,
		Y: body.Y + config.PanelPadding + it.y - p.scroll,
		W: body.W - 2*config.PanelPadding,
		H: it.h,
	}
}

func (p *Panel) clampScroll() {
	limit := math.Max(0, p.content+2*config.PanelPadding-p.bodyRect().H)
	p.scroll = math.Max(0, math.Min(limit, p.scroll))
}
