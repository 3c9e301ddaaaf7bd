package editor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/editor/animation"
	"github.com/Faultbox/triedit/internal/editor/scene"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/picking"
)

type mouseHandlers struct {
	down, up, move func(input.Event)
}

func (e *Editor) mouseHandlers() map[Mode]mouseHandlers {
	return map[Mode]mouseHandlers{
		ModeInserting: {
			down: e.insertDown,
			up:   e.insertUp,
			move: e.insertMove,
		},
		ModeSelecting: {
			down: e.selectDown,
			up:   e.selectUp,
			move: e.dragMove,
		},
		ModeColorPicking: {
			up: e.recolorUp,
		},
	}
}

func (e *Editor) insertDown(ev input.Event) {
	if ev.Button != input.ButtonLeft || e.scene.Pending() != 0 {
		return
	}
	if err := e.scene.BeginTriangle(e.cursor); err != nil {
		if errors.Is(err, scene.ErrFull) {
			e.log.Warn("scene is full", zap.Int("capacity", e.scene.Capacity()))
			return
		}
		e.log.Warn("begin triangle failed", zap.Error(err))
		return
	}
	e.beginClick = true
}

func (e *Editor) insertUp(ev input.Event) {
	if ev.Button != input.ButtonLeft {
		return
	}
	if e.beginClick {
		e.beginClick = false
		return
	}
	switch e.scene.Pending() {
	case 1:
		if err := e.scene.AddSecondVertex(e.cursor); err != nil {
			e.log.Warn("second vertex failed", zap.Error(err))
		}
	case 2:
		i, err := e.scene.CommitThirdVertex(e.cursor)
		if err != nil {
			e.log.Warn("third vertex failed", zap.Error(err))
			return
		}
		e.log.Debug("triangle created", zap.Int("triangle", i), zap.Int("count", e.scene.Len()))
	}
}

func (e *Editor) insertMove(input.Event) {
	e.scene.PreviewVertex(e.cursor)
}

func (e *Editor) selectDown(ev input.Event) {
	if ev.Button != input.ButtonLeft {
		return
	}
	if e.animating {
		e.selection = Selection{Triangle: e.timeline.Target(), Vertex: picking.NoHit}
		k, err := e.keyframe()
		if err != nil {
			e.logNoTarget("record keyframe", err)
			return
		}
		e.timeline.BeginSegment(k)
	} else if i := e.hit(); i != picking.NoHit {
		e.selection = Selection{Triangle: i, Vertex: picking.NoHit}
	}

	if e.selection.Valid() {
		e.dragging = true
		e.lastDrag = e.cursor
	}
}

func (e *Editor) selectUp(ev input.Event) {
	if ev.Button != input.ButtonLeft {
		return
	}
	e.dragging = false
	if !e.animating {
		e.selection = noSelection
		return
	}
	k, err := e.keyframe()
	if err != nil {
		e.logNoTarget("record keyframe", err)
		return
	}
	e.timeline.EndSegment(k)
	e.log.Debug("keyframe recorded", zap.Int("frames", e.timeline.Len()))
}

// dragMove translates the selected triangle by the cursor delta since the
// previous move.
func (e *Editor) dragMove(input.Event) {
	if !e.dragging {
		return
	}
	delta := e.cursor.Sub(e.lastDrag)
	e.lastDrag = e.cursor
	if err := e.scene.Translate(e.selection.Triangle, delta); err != nil {
		e.dragging = false
		e.logNoTarget("drag", err)
	}
}

func (e *Editor) recolorUp(ev input.Event) {
	if ev.Button != input.ButtonLeft {
		return
	}
	i := e.hit()
	if i == picking.NoHit {
		e.log.Debug("recolor: nothing under cursor")
		return
	}
	tri, _ := e.scene.Triangle(i)

	var err error
	if ev.Mods.Has(input.ModShift) {
		e.selection = Selection{Triangle: i, Vertex: picking.NoHit}
		err = e.scene.SetTriangleColor(i, e.color)
	} else {
		e.selection = Selection{Triangle: i, Vertex: picking.NearestVertex(e.cursor, tri)}
		err = e.scene.SetVertexColor(i, e.selection.Vertex, e.color)
	}
	if err != nil {
		e.logNoTarget("recolor", err)
	} else {
		e.log.Debug("recolored", zap.Int("triangle", i), zap.Int("vertex", e.selection.Vertex))
	}
	e.selection = noSelection
}

// keyframe snapshots the bound triangle.
func (e *Editor) keyframe() (animation.Keyframe, error) {
	tri, ok := e.scene.Triangle(e.timeline.Target())
	if !ok {
		return animation.Keyframe{}, scene.ErrNoTriangle
	}
	return animation.Keyframe(tri.Positions()), nil
}
