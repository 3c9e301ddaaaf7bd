package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/engine/camera"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/picking"
)

// Action distinguishes key press from key release.
type Action int

const (
	Press Action = iota
	Release
)

type chord struct {
	key    input.Key
	action Action
	mode   Mode
}

type binding struct {
	run func(*Editor, input.Event) bool
	// mutates marks bindings ignored while playback runs.
	mutates bool
}

func defaultBindings() map[chord]binding {
	b := map[chord]binding{
		{input.KeyI, Release, modeAny}: {(*Editor).toggleInsert, true},
		{input.KeyO, Press, modeAny}:   {(*Editor).selectUnderCursor, true},
		{input.KeyP, Press, modeAny}:   {(*Editor).deleteUnderCursor, true},
		{input.KeyC, Release, modeAny}: {(*Editor).toggleColorPicking, true},

		{input.KeyH, Press, modeAny}: {rotate(+1), true},
		{input.KeyJ, Press, modeAny}: {rotate(-1), true},
		{input.KeyK, Press, modeAny}: {scale(+1), true},
		{input.KeyL, Press, modeAny}: {scale(-1), true},

		{input.KeyF, Press, modeAny}: {(*Editor).keyframeUnderCursor, true},
		{input.KeyN, Press, modeAny}: {(*Editor).playLinear, true},
		{input.KeyB, Press, modeAny}: {(*Editor).playBezier, true},
		{input.KeyR, Press, modeAny}: {(*Editor).resetTimeline, true},

		{input.KeyZoomIn, Press, modeAny}:  {(*Editor).zoomIn, false},
		{input.KeyZoomOut, Press, modeAny}: {(*Editor).zoomOut, false},
		{input.KeyW, Press, modeAny}:       {pan(camera.PanUp), false},
		{input.KeyA, Press, modeAny}:       {pan(camera.PanLeft), false},
		{input.KeyS, Press, modeAny}:       {pan(camera.PanDown), false},
		{input.KeyD, Press, modeAny}:       {pan(camera.PanRight), false},
		{input.KeyT, Release, modeAny}:     {(*Editor).toggleStretch, false},

		{input.KeyEscape, Press, modeAny}: {(*Editor).escape, false},
	}
	for d := 1; d <= 9; d++ {
		b[chord{input.DigitKey(d), Release, ModeColorPicking}] = binding{pickColor(d), true}
	}
	return b
}

func (e *Editor) toggleInsert(input.Event) bool {
	if e.mode == ModeInserting {
		e.setMode(ModeIdle)
	} else {
		e.setMode(ModeInserting)
	}
	return true
}

func (e *Editor) toggleColorPicking(input.Event) bool {
	if e.mode == ModeColorPicking {
		e.setMode(ModeIdle)
		return true
	}
	e.setMode(ModeColorPicking)
	e.color = palette[0]
	return true
}

func pickColor(n int) func(*Editor, input.Event) bool {
	return func(e *Editor, _ input.Event) bool {
		c, ok := PaletteColor(n)
		if !ok {
			return false
		}
		e.color = c
		e.log.Debug("color picked", zap.Int("palette", n))
		return true
	}
}

func (e *Editor) selectUnderCursor(input.Event) bool {
	e.setMode(ModeSelecting)
	e.animating = false
	e.dragging = false

	i := e.hit()
	e.selection = Selection{Triangle: i, Vertex: picking.NoHit}
	if i == picking.NoHit {
		e.log.Debug("select: nothing under cursor")
	} else {
		e.log.Debug("triangle selected", zap.Int("triangle", i))
	}
	return true
}

func (e *Editor) deleteUnderCursor(input.Event) bool {
	prev := e.mode
	e.mode = ModeDeleting
	defer func() { e.mode = prev }()

	i := e.hit()
	if err := e.deleteTriangle(i); err != nil {
		e.logNoTarget("delete", err)
		return true
	}
	e.log.Debug("triangle deleted", zap.Int("triangle", i), zap.Int("remaining", e.scene.Len()))
	return true
}

func rotate(sign float32) func(*Editor, input.Event) bool {
	return func(e *Editor, _ input.Event) bool {
		e.scene.RotateAll(sign * e.cfg.RotateDegrees)
		return true
	}
}

func scale(sign float32) func(*Editor, input.Event) bool {
	return func(e *Editor, _ input.Event) bool {
		e.scene.ScaleAll(sign * e.cfg.ScaleFactor)
		return true
	}
}

func (e *Editor) zoomIn(input.Event) bool {
	e.view.ZoomIn()
	return true
}

func (e *Editor) zoomOut(input.Event) bool {
	e.view.ZoomOut()
	return true
}

func pan(dir camera.Direction) func(*Editor, input.Event) bool {
	return func(e *Editor, _ input.Event) bool {
		e.view.Pan(dir)
		return true
	}
}

func (e *Editor) toggleStretch(input.Event) bool {
	e.view.ToggleStretch()
	e.log.Debug("stretch toggled", zap.Bool("on", e.view.Stretched()))
	return true
}

// escape stops playback, else cancels the partial triangle. Otherwise the
// key is left to the caller.
func (e *Editor) escape(input.Event) bool {
	if e.player.Stop() {
		e.log.Info("playback stopped")
		return true
	}
	if e.scene.CancelTriangle() {
		e.beginClick = false
		e.log.Debug("partial triangle discarded")
		return true
	}
	return false
}
