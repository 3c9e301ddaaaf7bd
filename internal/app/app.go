// Package app runs the editor: window, input polling, update and render.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/config"
	"github.com/Faultbox/triedit/internal/editor"
	"github.com/Faultbox/triedit/internal/engine/camera"
	"github.com/Faultbox/triedit/internal/engine/debug"
	"github.com/Faultbox/triedit/internal/engine/input"
	"github.com/Faultbox/triedit/internal/engine/input/sdlsource"
	"github.com/Faultbox/triedit/internal/engine/renderer"
	"github.com/Faultbox/triedit/internal/engine/window"
	"github.com/Faultbox/triedit/internal/logger"
)

// Title is the window title.
const Title = "triedit"

// App is the running editor instance.
type App struct {
	config     *config.Config
	log        *zap.Logger
	running    bool
	window     *window.Window
	renderer   *renderer.Renderer
	source     *sdlsource.Source
	editor     *editor.Editor
	screenshot *debug.ScreenshotCapture
	status     string
}

// New creates the window, renderer and editor.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing editor",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("capacity", cfg.Editor.Capacity),
	)

	var err error
	a.screenshot, err = debug.NewScreenshotCapture(cfg.Screenshot.Dir, "triedit", cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.Samples,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:   dw,
		Height:  dh,
		Samples: cfg.Graphics.Samples,
	}, logger.Named("renderer"))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.source = sdlsource.New()
	a.editor = editor.New(cfg.Editor, logger.Named("editor"))
	a.editor.SetRedraw(a.present)
	a.syncViewport()

	a.log.Info("editor initialized")
	return a, nil
}

// Editor returns the editor driven by the loop.
func (a *App) Editor() *editor.Editor {
	return a.editor
}

// Run starts the main loop. It returns when the window is closed or Escape
// is pressed with nothing left to cancel.
func (a *App) Run() error {
	a.running = true

	var frameBudget time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		events := a.source.Poll()
		if events.Quit() {
			a.running = false
			break
		}
		for _, ev := range events {
			a.handleEvent(ev)
		}
		if !a.running {
			break
		}

		// 2. Advance playback
		a.editor.Update(dt)
		a.updateTitle()

		// 3. Render, capture before the swap, present
		a.render()
		if events.KeyPressed(input.KeyF12) {
			a.takeScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				sdl.Delay(uint32((frameBudget - spent) / time.Millisecond))
			}
		}
	}

	return nil
}

// Close cleans up resources.
func (a *App) Close() {
	a.log.Info("closing editor")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(ev input.Event) {
	if ev.Type == input.EventWindowResize {
		a.syncViewport()
		return
	}
	if a.editor.HandleEvent(ev) {
		return
	}
	if ev.IsKey(input.EventKeyDown, input.KeyEscape) {
		a.log.Info("escape pressed, quitting")
		a.running = false
	}
}

func (a *App) render() {
	a.renderer.Begin()
	a.renderer.Draw(a.editor.Transform(), a.editor.DrawList())
}

// present draws and shows one frame. Blocking playback calls it per step.
func (a *App) present() {
	a.render()
	a.window.SwapBuffers()
}

// updateTitle shows the editor mode in the title bar when it changes.
func (a *App) updateTitle() {
	status := a.editor.Status()
	if status == a.status {
		return
	}
	a.status = status
	a.window.SetTitle(Title + " - " + status)
}

func (a *App) syncViewport() {
	ww, wh := a.window.GetSize()
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(dw, dh)
	a.editor.SetViewport(camera.Viewport{WindowW: ww, WindowH: wh, DrawableW: dw, DrawableH: dh})
}

func (a *App) takeScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}
