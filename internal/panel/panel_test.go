package panel

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/magic-card/internal/render"
	"github.com/iburimskiy/magic-card/internal/settings"
)

type fakeMouse struct {
	x, y  int
	down  bool
	wheel float64
}

func (m *fakeMouse) CursorPosition() (int, int) { return m.x, m.y }

func (m *fakeMouse) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return b == ebiten.MouseButtonLeft && m.down
}

func (m *fakeMouse) Wheel() (float64, float64) {
	w := m.wheel
	m.wheel = 0
	return 0, w
}

type fixedLevel float64

func (l fixedLevel) Level() float64 { return float64(l) }

type harness struct {
	p     *Panel
	m     *fakeMouse
	store *settings.Store
	w, h  int
}

func newHarness(t *testing.T, h int, opts ...Option) *harness {
	t.Helper()
	m := &fakeMouse{}
	store := settings.NewStore(settings.Default(), rand.New(rand.NewSource(1)))
	hs := &harness{
		p:     New(store, append([]Option{WithMouse(m)}, opts...)...),
		m:     m,
		store: store,
		w:     1280,
		h:     h,
	}
	hs.tick()
	return hs
}

func (hs *harness) tick() bool { return hs.p.Update(hs.w, hs.h) }

func (hs *harness) moveTo(x, y float64) { hs.m.x, hs.m.y = int(x), int(y) }

// click presses and releases at (x, y) and reports whether the press was
// captured.
func (hs *harness) click(x, y float64) bool {
	hs.moveTo(x, y)
	hs.m.down = true
	got := hs.tick()
	hs.m.down = false
	hs.tick()
	return got
}

func (hs *harness) rect(t *testing.T, key string) render.Rect {
	t.Helper()
	for _, it := range hs.p.items {
		if it.control.ID == key || (it.kind != itemSlider && it.label == key) {
			return hs.p.itemRect(hs.p.bodyRect(), it)
		}
	}
	t.Fatalf("no panel item %q", key)
	return render.Rect{}
}

func (hs *harness) showPanel(t *testing.T) {
	t.Helper()
	c := hs.p.toggleRect().Center()
	hs.click(c.X, c.Y)
	if !hs.p.Visible() {
		t.Fatal("toggle did not show the panel")
	}
}

func TestPanelStartsHidden(t *testing.T) {
	hs := newHarness(t, 1200)
	if hs.p.Visible() {
		t.Error("panel visible at start")
	}

	body := hs.p.bodyRect().Center()
	hs.moveTo(body.X, body.Y)
	if hs.tick() {
		t.Error("hidden body captured the pointer")
	}
}

func TestToggleShowsAndHides(t *testing.T) {
	hs := newHarness(t, 1200)
	c := hs.p.toggleRect().Center()

	if !hs.click(c.X, c.Y) {
		t.Error("toggle press not captured")
	}
	if !hs.p.Visible() {
		t.Fatal("panel still hidden after toggle")
	}

	hs.click(c.X, c.Y)
	if hs.p.Visible() {
		t.Error("panel still visible after second toggle")
	}
}

func TestClickOutsideIsNotCaptured(t *testing.T) {
	hs := newHarness(t, 1200)
	hs.showPanel(t)

	if hs.click(400, 400) {
		t.Error("click on the card area captured by the panel")
	}
	if !hs.p.Contains(hs.p.bodyRect().X+1, hs.p.bodyRect().Y+1) {
		t.Error("visible body does not contain its own corner")
	}
}

func TestSliderSnapsAndWrites(t *testing.T) {
	hs := newHarness(t, 1200)
	hs.showPanel(t)
	r := hs.rect(t, "glow-intensity")

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", r.X, 0},
		{"middle", r.X + r.W/2, 15},
		{"right edge", r.X + r.W, 30},
		{"past right", r.X + r.W + 50, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs.moveTo(r.X+1, r.Y+r.H/2)
			hs.m.down = true
			hs.tick()
			hs.moveTo(tt.x, r.Y+r.H/2)
			if !hs.tick() {
				t.Error("drag not captured")
			}
			hs.m.down = false
			hs.tick()

			got := hs.store.Current().Card.GlowIntensity
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GlowIntensity: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDragKeepsCaptureOffPanel(t *testing.T) {
	hs := newHarness(t, 1200)
	hs.showPanel(t)
	r := hs.rect(t, "particle-count")

	hs.moveTo(r.X+r.W/2, r.Y+r.H/2)
	hs.m.down = true
	hs.tick()

	hs.moveTo(100, r.Y+r.H/2)
	if !hs.tick() {
		t.Error("held drag released its capture when leaving the panel")
	}
	if got := hs.store.Current().Particles.Count; got != 0 {
		t.Errorf("Particles.Count: got %d, want 0", got)
	}

	hs.m.down = false
	if hs.tick() {
		t.Error("capture kept after release off the panel")
	}
}

func TestRandomizeButton(t *testing.T) {
	hs := newHarness(t, 1200)
	hs.showPanel(t)

	var changes []settings.Change
	hs.store.OnChange(func(c settings.Change) { changes = append(changes, c) })

	r := hs.rect(t, "Randomize All")
	c := r.Center()
	if !hs.click(c.X, c.Y) {
		t.Error("button press not captured")
	}
	if len(changes) != 1 || !changes[0].Has(settings.ChangeParticles) {
		t.Errorf("changes: got %v", changes)
	}
	if hs.p.Status() != "Randomized" {
		t.Errorf("Status: got %q", hs.p.Status())
	}
}

func TestScrollClampsToContent(t *testing.T) {
	hs := newHarness(t, 400)
	hs.showPanel(t)
	body := hs.p.bodyRect()
	hs.moveTo(body.X+10, body.Y+10)

	hs.m.wheel = -1000
	hs.tick()
	limit := hs.p.content + 28 - body.H
	if math.Abs(hs.p.scroll-limit) > 1e-9 {
		t.Errorf("scroll: got %v, want limit %v", hs.p.scroll, limit)
	}

	last := hs.rect(t, "Load Preset")
	if last.Y+last.H > body.Y+body.H {
		t.Errorf("last button at %v still below body bottom %v", last.Y+last.H, body.Y+body.H)
	}

	hs.m.wheel = 1000
	hs.tick()
	if hs.p.scroll != 0 {
		t.Errorf("scroll: got %v, want 0", hs.p.scroll)
	}
}

func waitForPreset(t *testing.T, hs *harness) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hs.p.loading {
		if time.Now().After(deadline) {
			t.Fatal("preset load never finished")
		}
		time.Sleep(5 * time.Millisecond)
		hs.tick()
	}
}

func TestLoadPresetApplies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calm.yaml")
	if err := os.WriteFile(path, []byte("particles:\n  count: 12\nlines:\n  waveHeight: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	hs := newHarness(t, 1200, WithPicker(func() (string, error) { return path, nil }))
	hs.showPanel(t)

	c := hs.rect(t, "Load Preset").Center()
	hs.click(c.X, c.Y)
	waitForPreset(t, hs)

	s := hs.store.Current()
	if s.Particles.Count != 12 || s.Lines.WaveHeight != 3 {
		t.Errorf("preset not applied: particles %d wave %v", s.Particles.Count, s.Lines.WaveHeight)
	}
	if hs.p.Status() != "Loaded calm.yaml" {
		t.Errorf("Status: got %q", hs.p.Status())
	}
}

func TestLoadPresetFailures(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("lines:\n  numPoints: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		pick   Picker
		status string
	}{
		{"canceled", func() (string, error) { return "", zenity.ErrCanceled }, ""},
		{"dialog error", func() (string, error) { return "", errors.New("no display") }, "Preset rejected"},
		{"invalid file", func() (string, error) { return bad, nil }, "Preset rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newHarness(t, 1200, WithPicker(tt.pick))
			hs.showPanel(t)
			before := hs.store.Current()

			c := hs.rect(t, "Load Preset").Center()
			hs.click(c.X, c.Y)
			waitForPreset(t, hs)

			if hs.store.Current() != before {
				t.Error("settings changed by a failed load")
			}
			if hs.p.Status() != tt.status {
				t.Errorf("Status: got %q, want %q", hs.p.Status(), tt.status)
			}
		})
	}
}

type textRecorder struct {
	texts []string
	rects int
}

func (r *textRecorder) Size() (int, int) { return 1280, 1200 }
func (r *textRecorder) Clear() {}
func (r *textRecorder) Save() {}
func (r *textRecorder) Restore() {}
func (r *textRecorder) Translate(float64, float64) {}
func (r *textRecorder) Rotate(float64) {}
func (r *textRecorder) FillCircle(float64, float64, float64, color.Color) {}
func (r *textRecorder) StrokeCircle(_, _, _, _ float64, _ color.Color) {}
func (r *textRecorder) StrokeLine(_, _, _, _, _ float64, _ color.Color) {}
func (r *textRecorder) StrokePolyline([]render.Point, float64, color.Color) {}
func (r *textRecorder) StrokePolygon([]render.Point, float64, color.Color) {}
func (r *textRecorder) FillRect(render.Rect, color.Color) { r.rects++ }
func (r *textRecorder) StrokeRect(render.Rect, float64, color.Color) {}
func (r *textRecorder) StrokeRoundedRect(render.Rect, float64, float64, color.Color) {}
func (r *textRecorder) Glow(render.Rect, float64, float64, color.Color) {}
func (r *textRecorder) BeginClip(render.Rect, float64) {}
func (r *textRecorder) EndClip() {}

func (r *textRecorder) FillRoundedRectGradient(render.Rect, float64, color.Color, color.Color) {}

func (r *textRecorder) Text(s string, _, _ float64, _ render.Font, _ render.Align, _ color.Color) {
	r.texts = append(r.texts, s)
}

func TestDrawHiddenShowsOnlyToggle(t *testing.T) {
	hs := newHarness(t, 1200)
	rec := &textRecorder{}
	hs.p.Draw(rec)

	if len(rec.texts) != 1 || rec.texts[0] != "Show Controls" {
		t.Errorf("texts: got %v", rec.texts)
	}
}

func TestDrawVisibleListsEveryControl(t *testing.T) {
	hs := newHarness(t, 1200, WithLevel(fixedLevel(0.5)))
	hs.showPanel(t)
	rec := &textRecorder{}
	hs.p.Draw(rec)

	controls := len(hs.store.Controls())
	// toggle + 5 headers + label and value per slider + 2 buttons
	want := 1 + 5 + 2*controls + 2
	if len(rec.texts) != want {
		t.Errorf("text calls: got %d, want %d", len(rec.texts), want)
	}
	if rec.texts[0] != "Hide Controls" {
		t.Errorf("toggle label: got %q", rec.texts[0])
	}
	if rec.rects != 2 {
		t.Errorf("level bar rects: got %d, want 2", rec.rects)
	}

	found := false
	for _, s := range rec.texts {
		if s == "15.00" {
			found = true
		}
	}
	if !found {
		t.Error("glow intensity value not shown with two decimals")
	}
}
