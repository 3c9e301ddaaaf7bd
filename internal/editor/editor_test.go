package editor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/triedit/internal/config"
	"github.com/Faultbox/triedit/internal/editor/scene"
	"github.com/Faultbox/triedit/internal/engine/camera"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/picking"
	"github.com/Faultbox/triedit/pkg/math"
)

const tol = 1e-4

var (
	triA = math.V2(-0.5, -0.5)
	triB = math.V2(0.5, -0.5)
	triC = math.V2(0, 0.5)
)

func newTestEditor(t *testing.T, mutate ...func(*config.EditorConfig)) *Editor {
	t.Helper()
	cfg := config.Default().Editor
	for _, m := range mutate {
		m(&cfg)
	}
	e := New(cfg, zaptest.NewLogger(t))
	e.SetViewport(camera.Viewport{WindowW: 200, WindowH: 200, DrawableW: 200, DrawableH: 200})
	return e
}

// window returns the window coordinates of a normalized screen point.
func window(p math.Vec2) (float32, float32) {
	return (p.X + 1) * 100, 199 - (p.Y+1)*100
}

func keyDown(k input.Key) input.Event { return input.Event{Type: input.EventKeyDown, Key: k} }
func keyUp(k input.Key) input.Event   { return input.Event{Type: input.EventKeyUp, Key: k} }

func mouse(typ input.EventType, p math.Vec2) input.Event {
	x, y := window(p)
	return input.Event{Type: typ, Button: input.ButtonLeft, X: x, Y: y}
}

func tap(e *Editor, k input.Key) {
	e.HandleEvent(keyDown(k))
	e.HandleEvent(keyUp(k))
}

func moveTo(e *Editor, p math.Vec2) { e.HandleEvent(mouse(input.EventMouseMove, p)) }

func click(e *Editor, p math.Vec2) {
	moveTo(e, p)
	e.HandleEvent(mouse(input.EventMouseDown, p))
	e.HandleEvent(mouse(input.EventMouseUp, p))
}

func drag(e *Editor, from, to math.Vec2) {
	moveTo(e, from)
	e.HandleEvent(mouse(input.EventMouseDown, from))
	moveTo(e, from.Add(to.Sub(from).Scale(0.5)))
	moveTo(e, to)
	e.HandleEvent(mouse(input.EventMouseUp, to))
}

func addTriangle(t *testing.T, e *Editor, a, b, c math.Vec2) {
	t.Helper()
	s := e.Scene()
	require.NoError(t, s.BeginTriangle(a))
	require.NoError(t, s.AddSecondVertex(b))
	_, err := s.CommitThirdVertex(c)
	require.NoError(t, err)
}

func assertPositions(t *testing.T, want [3]math.Vec2, tri scene.Triangle) {
	t.Helper()
	for i, p := range tri.Positions() {
		assert.Truef(t, p.ApproxEqual(want[i], tol), "vertex %d: got %v, want %v", i, p, want[i])
	}
}

func TestInsertTriangle(t *testing.T) {
	e := newTestEditor(t)

	tap(e, input.KeyI)
	require.Equal(t, ModeInserting, e.Mode())

	click(e, triA)
	assert.Equal(t, 1, e.Scene().Pending())

	moveTo(e, triB)
	list := e.DrawList()
	assert.Equal(t, 1, list.PartialVertices)
	assert.True(t, list.Partial[2].Pos.ApproxEqual(triB, tol), "rubber band follows the cursor")

	click(e, triB)
	assert.Equal(t, 2, e.Scene().Pending())
	click(e, triC)

	require.Equal(t, 1, e.Scene().Len())
	assert.Equal(t, 0, e.Scene().Pending())
	tri, _ := e.Scene().Triangle(0)
	assertPositions(t, [3]math.Vec2{triA, triB, triC}, tri)
	assert.Equal(t, 3, e.Scene().VertexCount())
}

func TestLeavingInsertDiscardsPartial(t *testing.T) {
	e := newTestEditor(t)
	tap(e, input.KeyI)
	click(e, triA)
	click(e, triB)

	tap(e, input.KeyI)
	assert.Equal(t, ModeIdle, e.Mode())
	assert.Equal(t, 0, e.Scene().Pending())
	assert.Equal(t, 0, e.Scene().Len())
}

func TestInsertRespectsCapacity(t *testing.T) {
	e := newTestEditor(t, func(c *config.EditorConfig) { c.Capacity = 1 })
	tap(e, input.KeyI)
	for i := 0; i < 2; i++ {
		click(e, triA)
		click(e, triB)
		click(e, triC)
	}
	assert.Equal(t, 1, e.Scene().Len())
	assert.Equal(t, 0, e.Scene().Pending())
}

func TestModeTogglesOnRelease(t *testing.T) {
	e := newTestEditor(t)

	e.HandleEvent(keyDown(input.KeyI))
	assert.Equal(t, ModeIdle, e.Mode(), "press must not toggle")

	held := keyDown(input.KeyI)
	held.Repeat = true
	e.HandleEvent(held)
	e.HandleEvent(held)
	e.HandleEvent(keyUp(input.KeyI))
	assert.Equal(t, ModeInserting, e.Mode())

	tap(e, input.KeyI)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestRepeatDoesNotRepeatActions(t *testing.T) {
	e := newTestEditor(t)
	addTriangle(t, e, triA, triB, triC)
	before, _ := e.Scene().Triangle(0)

	held := keyDown(input.KeyH)
	held.Repeat = true
	e.HandleEvent(held)

	after, _ := e.Scene().Triangle(0)
	assert.Equal(t, before, after)
}

func TestSelectAndDrag(t *testing.T) {
	e := newTestEditor(t)
	addTriangle(t, e, triA, triB, triC)
	center := scene.Centroid(scene.Triangle{{Pos: triA}, {Pos: triB}, {Pos: triC}})

	moveTo(e, center)
	tap(e, input.KeyO)
	require.Equal(t, ModeSelecting, e.Mode())
	assert.Equal(t, 0, e.Selection().Triangle)

	list := e.DrawList()
	for _, v := range list.Triangles[0] {
		assert.Equal(t, scene.HighlightColor, v.Color)
	}
	stored, _ := e.Scene().Triangle(0)
	assert.Equal(t, scene.DefaultColor, stored[0].Color, "highlight is not written to the store")

	delta := math.V2(0.2, 0.1)
	drag(e, center, center.Add(delta))

	tri, _ := e.Scene().Triangle(0)
	assertPositions(t, [3]math.Vec2{triA.Add(delta), triB.Add(delta), triC.Add(delta)}, tri)
	assert.False(t, e.Selection().Valid(), "mouse up clears the selection")
}

func TestSelectNothing(t *testing.T) {
	e := newTestEditor(t)
	addTriangle(t, e, triA, triB, triC)

	moveTo(e, math.V2(0.9, 0.9))
	tap(e, input.KeyO)
	assert.Equal(t, ModeSelecting, e.Mode())
	assert.Equal(t, picking.NoHit, e.Selection().Triangle)

	drag(e, math.V2(0.9, 0.9), math.V2(0.8, 0.8))
	tri, _ := e.Scene().Triangle(0)
	assertPositions(t, [3]math.Vec2{triA, triB, triC}, tri)
}

func TestDeleteUnderCursor(t *testing.T) {
	e := newTestEditor(t)
	left := math.V2(-0.6, 0)
	addTriangle(t, e, left, left.Add(math.V2(0.3, 0)), left.Add(math.V2(0, 0.3)))
	addTriangle(t, e, triA, triB, triC)
	tap(e, input.KeyI)

	moveTo(e, math.V2(-0.55, 0.05))
	e.HandleEvent(keyDown(input.KeyP))

	require.Equal(t, 1, e.Scene().Len())
	tri, _ := e.Scene().Triangle(0)
	assertPositions(t, [3]math.Vec2{triA, triB, triC}, tri)
	assert.Equal(t, ModeInserting, e.Mode(), "delete returns to the previous mode")

	moveTo(e, math.V2(0.9, 0.9))
	e.HandleEvent(keyDown(input.KeyP))
	assert.Equal(t, 1, e.Scene().Len())
}

func TestRotateAndScale(t *testing.T) {
	e := newTestEditor(t)
	addTriangle(t, e, triA, triB, triC)

	e.HandleEvent(keyDown(input.KeyH))
	rotated, _ := e.Scene().Triangle(0)
	assert.False(t, rotated[0].Pos.ApproxEqual(triA, tol))

	e.HandleEvent(keyDown(input.KeyJ))
	tri, _ := e.Scene().Triangle(0)
	assertPositions(t, [3]math.Vec2{triA, triB, triC}, tri)

	c := scene.Centroid(tri)
	before := tri[0].Pos.Distance(c)
	e.HandleEvent(keyDown(input.KeyK))
	tri, _ = e.Scene().Triangle(0)
	assert.InDelta(t, before*1.25, tri[0].Pos.Distance(c), tol)

	e.HandleEvent(keyDown(input.KeyL))
	tri, _ = e.Scene().Triangle(0)
	assert.InDelta(t, before*1.25*0.75, tri[0].Pos.Distance(c), tol)
}

func TestColorPicking(t *testing.T) {
	e := newTestEditor(t)
	addTriangle(t, e, triA, triB, triC)

	assert.False(t, e.HandleEvent(keyUp(input.Key2)), "digits are inert outside color mode")

	tap(e, input.KeyC)
	require.Equal(t, ModeColorPicking, e.Mode())
	green, _ := PaletteColor(1)
	assert.Equal(t, green, e.Color())

	tap(e, input.Key2)
	yellow, _ := PaletteColor(2)
	require.Equal(t, yellow, e.Color())

	click(e, math.V2(0.3, -0.4))
	tri, _ := e.Scene().Triangle(0)
	assert.Equal(t, scene.DefaultColor, tri[0].Color)
	assert.Equal(t, yellow, tri[1].Color)
	assert.Equal(t, scene.DefaultColor, tri[2].Color)
	assert.False(t, e.Selection().Valid())

	tap(e, input.Key9)
	shift := mouse(input.EventMouseUp, math.V2(0, 0))
	shift.Mods = input.ModShift
	moveTo(e, math.V2(0, 0))
	e.HandleEvent(shift)
	gray, _ := PaletteColor(9)
	tri, _ = e.Scene().Triangle(0)
	for _, v := range tri {
		assert.Equal(t, gray, v.Color)
	}

	tap(e, input.KeyC)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestReenteringColorModeArmsFirstColor(t *testing.T) {
	e := newTestEditor(t)
	tap(e, input.KeyC)
	tap(e, input.Key6)
	tap(e, input.KeyC)
	tap(e, input.KeyC)

	green, _ := PaletteColor(1)
	assert.Equal(t, green, e.Color())
}

func TestViewKeysAffectCursor(t *testing.T) {
	e := newTestEditor(t)

	e.HandleEvent(keyDown(input.KeyZoomIn))
	moveTo(e, math.V2(0.55, 0))
	assert.True(t, e.Cursor().ApproxEqual(math.V2(0.5, 0), tol), "cursor %v", e.Cursor())

	e.HandleEvent(keyDown(input.KeyZoomOut))
	e.HandleEvent(keyDown(input.KeyD))
	moveTo(e, math.V2(0.1, 0))
	assert.True(t, e.Cursor().ApproxEqual(math.V2(0, 0), 1e-3), "cursor %v", e.Cursor())

	tap(e, input.KeyT)
	assert.True(t, e.View().Stretched())
	assert.Equal(t, e.View().Transform(), e.Transform())
}

func TestSingularViewKeepsCursor(t *testing.T) {
	e := newTestEditor(t)
	moveTo(e, math.V2(0.25, 0.25))
	want := e.Cursor()

	e.View().SetMatrix(math.Mat3{})
	moveTo(e, math.V2(-0.5, 0.5))
	assert.Equal(t, want, e.Cursor())
}

func TestEscape(t *testing.T) {
	e := newTestEditor(t)
	assert.False(t, e.HandleEvent(keyDown(input.KeyEscape)), "nothing to cancel")

	tap(e, input.KeyI)
	click(e, triA)
	assert.True(t, e.HandleEvent(keyDown(input.KeyEscape)))
	assert.Equal(t, 0, e.Scene().Pending())
	assert.Equal(t, ModeInserting, e.Mode())
}

func TestUnhandledEvents(t *testing.T) {
	e := newTestEditor(t)
	assert.False(t, e.HandleEvent(keyDown(input.KeyF12)))
	assert.False(t, e.HandleEvent(input.Event{Type: input.EventWindowResize, Width: 10, Height: 10}))
	assert.False(t, e.HandleEvent(input.Event{Type: input.EventQuit}))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "color-picking", ModeColorPicking.String())
	assert.Equal(t, "Mode(42)", Mode(42).String())
}

func TestPaletteColor(t *testing.T) {
	_, ok := PaletteColor(0)
	assert.False(t, ok)
	_, ok = PaletteColor(10)
	assert.False(t, ok)
	c, ok := PaletteColor(6)
	require.True(t, ok)
	assert.Equal(t, scene.Color{R: 1, G: 0.5, B: 0}, c)
}

// fakeClock records sleeps without waiting.
type fakeClock struct{ sleeps int }

func (c *fakeClock) Sleep(ctx context.Context, _ time.Duration) error {
	c.sleeps++
	return ctx.Err()
}

func TestStatus(t *testing.T) {
	e := newTestEditor(t)
	assert.Equal(t, "idle", e.Status())

	addTriangle(t, e, triA, triB, triC)
	record(t, e, math.V2(0, 0), math.V2(0.1, 0))
	assert.Equal(t, "selecting, 2 keyframes", e.Status())

	e.HandleEvent(keyDown(input.KeyN))
	assert.Equal(t, "playing", e.Status())
}
