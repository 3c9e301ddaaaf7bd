// Package editor implements the triangle editor: input modes, selection,
// transforms, and keyframe recording and playback, all owned by one Editor.
package editor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/config"
	"github.com/Faultbox/triedit/internal/editor/animation"
	"github.com/Faultbox/triedit/internal/editor/scene"
	"github.com/Faultbox/triedit/internal/engine/camera"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/picking"
	"github.com/Faultbox/triedit/pkg/math"
)

// Selection addresses a triangle and, optionally, one of its vertices.
// picking.NoHit means nothing is selected.
type Selection struct {
	Triangle int
	Vertex   int
}

// Valid reports whether a triangle is selected.
func (s Selection) Valid() bool {
	return s.Triangle != picking.NoHit
}

var noSelection = Selection{Triangle: picking.NoHit, Vertex: picking.NoHit}

// Editor is the complete editing state. It is driven by input events and
// Update, and read by the renderer through DrawList and Transform.
type Editor struct {
	cfg config.EditorConfig
	log *zap.Logger

	scene    *scene.Store
	view     *camera.View
	viewport camera.Viewport
	bindings map[chord]binding
	mouse    map[Mode]mouseHandlers

	mode      Mode
	selection Selection
	dragging  bool
	cursor    math.Vec2 // world space
	lastDrag  math.Vec2
	// beginClick is set while the press that started a triangle is held,
	// so its release does not place the second vertex.
	beginClick bool
	color      scene.Color

	timeline  *animation.Timeline
	animating bool
	player    *animation.Player
	clock     animation.Clock

	redraw func()
}

// New creates an editor with an empty scene and an identity view.
func New(cfg config.EditorConfig, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Editor{
		cfg:       cfg,
		log:       log,
		scene:     scene.NewStore(cfg.Capacity),
		view:      camera.NewView(cfg.ZoomStep, cfg.PanStep),
		bindings:  defaultBindings(),
		mode:      ModeIdle,
		selection: noSelection,
		color:     palette[0],
		timeline:  animation.NewTimeline(),
		player:    animation.NewPlayer(cfg.Playback.Interval),
		clock:     animation.SystemClock{},
	}
	e.mouse = e.mouseHandlers()
	return e
}

// SetViewport updates the window and drawable sizes used for cursor mapping.
func (e *Editor) SetViewport(vp camera.Viewport) {
	e.viewport = vp
}

// SetRedraw installs the hook blocking playback calls after every step.
func (e *Editor) SetRedraw(fn func()) {
	e.redraw = fn
}

// SetClock replaces the clock used by blocking playback.
func (e *Editor) SetClock(c animation.Clock) {
	e.clock = c
}

// Scene returns the triangle store.
func (e *Editor) Scene() *scene.Store { return e.scene }

// View returns the view camera.
func (e *Editor) View() *camera.View { return e.view }

// Timeline returns the keyframe timeline.
func (e *Editor) Timeline() *animation.Timeline { return e.timeline }

// Mode returns the current input mode.
func (e *Editor) Mode() Mode { return e.mode }

// Animating reports whether keyframe recording is active.
func (e *Editor) Animating() bool { return e.animating }

// Playing reports whether timer-driven playback is in progress.
func (e *Editor) Playing() bool { return e.player.Playing() }

// Selection returns the current selection.
func (e *Editor) Selection() Selection { return e.selection }

// Cursor returns the last cursor position in world space.
func (e *Editor) Cursor() math.Vec2 { return e.cursor }

// Color returns the colour applied by the next recolour click.
func (e *Editor) Color() scene.Color { return e.color }

// Status summarizes the editor state for display, e.g. "selecting, 3 keyframes".
func (e *Editor) Status() string {
	switch {
	case e.player.Playing():
		return "playing"
	case e.animating:
		return fmt.Sprintf("%s, %d keyframes", e.mode, e.timeline.Len())
	default:
		return e.mode.String()
	}
}

// Transform returns the world-to-screen matrix for rendering.
func (e *Editor) Transform() math.Mat3 { return e.view.Transform() }

// DrawList returns the scene for rendering, with the selected triangle
// highlighted.
func (e *Editor) DrawList() scene.DrawList {
	list := e.scene.DrawList()
	if e.mode == ModeSelecting && e.selection.Valid() && e.selection.Triangle < len(list.Triangles) {
		i := e.selection.Triangle
		list.Triangles[i] = list.Triangles[i].WithColor(scene.HighlightColor)
	}
	return list
}

// HandleEvent applies one input event. It returns false for events the
// editor does not consume; an unconsumed Escape press means quit.
func (e *Editor) HandleEvent(ev input.Event) bool {
	switch ev.Type {
	case input.EventKeyDown:
		return e.handleKey(ev, Press)
	case input.EventKeyUp:
		return e.handleKey(ev, Release)
	case input.EventMouseMove, input.EventMouseDown, input.EventMouseUp:
		return e.handleMouse(ev)
	case input.EventWindowResize:
		return false
	}
	return false
}

func (e *Editor) handleKey(ev input.Event, action Action) bool {
	if ev.Repeat {
		return true
	}
	b, ok := e.lookup(ev.Key, action)
	if !ok {
		return false
	}
	if b.mutates && e.player.Playing() {
		e.log.Debug("input ignored during playback", zap.Stringer("key", ev.Key))
		return true
	}
	return b.run(e, ev)
}

func (e *Editor) lookup(key input.Key, action Action) (binding, bool) {
	if b, ok := e.bindings[chord{key, action, e.mode}]; ok {
		return b, true
	}
	b, ok := e.bindings[chord{key, action, modeAny}]
	return b, ok
}

func (e *Editor) handleMouse(ev input.Event) bool {
	e.updateCursor(ev.X, ev.Y)

	if e.player.Playing() {
		return ev.Type == input.EventMouseMove
	}
	h, ok := e.mouse[e.mode]
	if !ok {
		return ev.Type == input.EventMouseMove
	}

	var fn func(input.Event)
	switch ev.Type {
	case input.EventMouseDown:
		fn = h.down
	case input.EventMouseUp:
		fn = h.up
	case input.EventMouseMove:
		fn = h.move
	}
	if fn != nil {
		fn(ev)
	}
	return true
}

// updateCursor maps window coordinates to world space. A singular view
// keeps the previous position.
func (e *Editor) updateCursor(x, y float32) {
	ndc := e.viewport.ToNDC(x, y)
	world, err := e.view.ScreenToWorld(ndc)
	if err != nil {
		e.log.Warn("cursor mapping failed", zap.Error(err))
		return
	}
	e.cursor = world
}

func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	e.log.Debug("mode changed", zap.Stringer("from", e.mode), zap.Stringer("to", m))
	if e.mode == ModeInserting && e.scene.CancelTriangle() {
		e.log.Debug("partial triangle discarded")
	}
	e.mode = m
	e.dragging = false
	e.beginClick = false
	if m != ModeSelecting {
		e.animating = false
		e.selection = noSelection
	}
}

// hit returns the topmost triangle under the cursor.
func (e *Editor) hit() int {
	return picking.FindTriangle(e.cursor, e.scene.Triangles())
}

// deleteTriangle removes triangle i and keeps selection and timeline
// indices pointing at the same triangles.
func (e *Editor) deleteTriangle(i int) error {
	if err := e.scene.Delete(i); err != nil {
		return err
	}
	switch {
	case e.selection.Triangle == i:
		e.selection = noSelection
		e.dragging = false
	case e.selection.Valid() && e.selection.Triangle > i:
		e.selection.Triangle--
	}
	if e.timeline.TriangleDeleted(i) {
		e.animating = false
		e.player.Stop()
		e.log.Info("animated triangle deleted, timeline cleared", zap.Int("triangle", i))
	}
	return nil
}

// logNoTarget reports an operation that found nothing to act on.
func (e *Editor) logNoTarget(op string, err error) {
	if errors.Is(err, scene.ErrNoTriangle) {
		e.log.Debug(op+": no triangle", zap.Error(err))
		return
	}
	e.log.Warn(op+" failed", zap.Error(err))
}
