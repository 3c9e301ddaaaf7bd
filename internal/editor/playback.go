package editor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/editor/animation"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/picking"
	"github.com/Faultbox/triedit/pkg/math"
)

// keyframeUnderCursor binds the timeline to the triangle under the cursor
// and starts recording. A timeline already bound to another triangle is
// left alone.
func (e *Editor) keyframeUnderCursor(input.Event) bool {
	i := e.hit()
	if i == picking.NoHit {
		e.log.Debug("keyframe: nothing under cursor")
		return true
	}
	if e.timeline.Bound() && e.timeline.Target() != i {
		e.log.Debug("keyframe: timeline bound to another triangle",
			zap.Int("bound", e.timeline.Target()), zap.Int("hit", i))
		return true
	}

	e.setMode(ModeSelecting)
	e.timeline.Bind(i)
	e.selection = Selection{Triangle: i, Vertex: picking.NoHit}
	e.animating = true
	e.log.Debug("keyframe mode", zap.Int("triangle", i), zap.Int("frames", e.timeline.Len()))
	return true
}

func (e *Editor) playLinear(input.Event) bool {
	e.play(animation.Linear)
	return true
}

func (e *Editor) playBezier(input.Event) bool {
	e.play(animation.Bezier)
	return true
}

func (e *Editor) play(kind animation.Interpolation) {
	opts := animation.Options{
		Steps: e.cfg.Playback.Steps,
		Pivot: math.V2(e.cfg.Playback.PivotX, e.cfg.Playback.PivotY),
	}
	samples, err := animation.Samples(e.timeline.Frames(), kind, opts)
	if err != nil {
		e.log.Warn("playback skipped", zap.Error(err))
		return
	}
	e.dragging = false
	e.log.Info("playback started",
		zap.Stringer("interpolation", kind),
		zap.Int("frames", e.timeline.Len()),
		zap.Int("steps", len(samples)))

	if !e.cfg.Playback.Blocking {
		e.player.Start(samples)
		return
	}

	err = animation.Run(context.Background(), e.clock, samples, e.player.Interval(), func(s animation.Sample) {
		if e.applySample(s) && e.redraw != nil {
			e.redraw()
		}
	})
	if err != nil {
		e.log.Warn("playback interrupted", zap.Error(err))
	}
}

// Update advances timer-driven playback by dt.
func (e *Editor) Update(dt time.Duration) {
	for _, s := range e.player.Update(dt) {
		if !e.applySample(s) {
			e.player.Stop()
			return
		}
	}
}

func (e *Editor) applySample(s animation.Sample) bool {
	if err := e.scene.SetPositions(e.timeline.Target(), s.Frame); err != nil {
		e.logNoTarget("playback", err)
		return false
	}
	return true
}

// resetTimeline snaps the bound triangle back to its first keyframe and
// releases the binding.
func (e *Editor) resetTimeline(input.Event) bool {
	if !e.timeline.Bound() {
		e.log.Debug("reset: no animated triangle")
		return true
	}
	e.player.Stop()
	if first, ok := e.timeline.First(); ok {
		if err := e.scene.SetPositions(e.timeline.Target(), first); err != nil {
			e.logNoTarget("reset", err)
		}
	}
	e.log.Debug("timeline reset", zap.Int("triangle", e.timeline.Target()))
	e.timeline.Reset()
	e.animating = false
	e.dragging = false
	if e.mode == ModeSelecting {
		e.selection = noSelection
	}
	return true
}
