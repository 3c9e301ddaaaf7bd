// Package renderer draws the editor's triangles with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/editor/scene"
	"github.com/Faultbox/triedit/internal/engine/renderer/shaders"
	"github.com/Faultbox/triedit/internal/engine/shader"
	"github.com/Faultbox/triedit/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width   int // drawable size in pixels
	Height  int
	Samples int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	vbo     uint32

	// vboFloats is the allocated size of vbo.
	vboFloats int
	buf       []float32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    log,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shaders.TriangleVertexShader, shaders.TriangleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.createBuffers()
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles drawable resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw uploads the draw list and renders it through transform.
func (r *Renderer) Draw(transform math.Mat3, list scene.DrawList) {
	batch := Pack(list, r.buf)
	r.buf = batch.Vertices
	if len(batch.Vertices) == 0 {
		return
	}
	r.upload(batch.Vertices)

	r.program.Use()
	r.program.SetMat3("uTransform", transform)

	gl.BindVertexArray(r.vao)
	committed := int32(batch.Committed * 3)
	if committed > 0 {
		gl.DrawArrays(gl.TRIANGLES, 0, committed)
	}
	if batch.PreviewCount > 0 {
		gl.DrawArrays(batch.PreviewMode, committed, batch.PreviewCount)
	}
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// upload copies vertices into the VBO, growing it when needed.
func (r *Renderer) upload(vertices []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) > r.vboFloats {
		r.vboFloats = cap(vertices)
		gl.BufferData(gl.ARRAY_BUFFER, r.vboFloats*4, nil, gl.DYNAMIC_DRAW)
		r.log.Debug("vertex buffer grown", zap.Int("floats", r.vboFloats))
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)

	// Position attribute (location = 0): x, y, w
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}
