// Package camera provides the editor view transform and cursor mapping.
package camera

import (
	"errors"

	"github.com/Faultbox/triedit/pkg/math"
)

// ErrSingular is returned when the view transform cannot be inverted.
var ErrSingular = errors.New("geometry: singular view matrix")

// Direction is a pan direction.
type Direction int

const (
	PanUp Direction = iota
	PanDown
	PanLeft
	PanRight
)

// View is the editor's 2D view transform: a 3x3 matrix whose columns are
// the right, up and forward basis vectors. The forward column carries the
// translation applied by panning.
type View struct {
	matrix math.Mat3

	// Stretch doubles the horizontal axis before the view is applied.
	stretch bool

	// ZoomStep is the fraction by which each zoom scales the up basis.
	ZoomStep float32
	// PanStep is the translation added per pan.
	PanStep float32
}

// NewView creates a view with the identity transform.
func NewView(zoomStep, panStep float32) *View {
	return &View{
		matrix:   math.Identity3(),
		ZoomStep: zoomStep,
		PanStep:  panStep,
	}
}

// Matrix returns the current view matrix.
func (v *View) Matrix() math.Mat3 {
	return v.matrix
}

// SetMatrix replaces the view matrix.
func (v *View) SetMatrix(m math.Mat3) {
	v.matrix = m
}

// Reset restores the identity view.
func (v *View) Reset() {
	v.matrix = math.Identity3()
	v.stretch = false
}

// Model returns the per-vertex model transform (stretch preview).
func (v *View) Model() math.Mat3 {
	if v.stretch {
		return math.Scale3(2, 1)
	}
	return math.Identity3()
}

// Stretched reports whether the stretch preview is on.
func (v *View) Stretched() bool {
	return v.stretch
}

// ToggleStretch flips the stretch preview.
func (v *View) ToggleStretch() {
	v.stretch = !v.stretch
}

// Transform returns view * model, the full world-to-screen transform.
func (v *View) Transform() math.Mat3 {
	return v.matrix.Mul(v.Model())
}

// ZoomIn magnifies the view by 1+ZoomStep. Zooms compound.
func (v *View) ZoomIn() {
	v.zoom(1 + v.ZoomStep)
}

// ZoomOut shrinks the view by 1-ZoomStep.
func (v *View) ZoomOut() {
	v.zoom(1 - v.ZoomStep)
}

// zoom rebuilds an orthogonal basis around a scaled up vector and
// right-multiplies it into the view.
func (v *View) zoom(factor float32) {
	forward := math.Vec3{X: 0, Y: 0, Z: 1}
	up := math.Vec3{X: 0, Y: factor, Z: 0}
	right := up.Cross(forward)
	camUp := forward.Cross(right)

	basis := math.FromColumns(right, camUp, forward)
	v.matrix = v.matrix.Mul(basis)
}

// Pan shifts the translation column by PanStep in the given direction.
func (v *View) Pan(dir Direction) {
	var delta math.Vec3
	switch dir {
	case PanUp:
		delta.Y = v.PanStep
	case PanDown:
		delta.Y = -v.PanStep
	case PanLeft:
		delta.X = -v.PanStep
	case PanRight:
		delta.X = v.PanStep
	}

	var offset math.Mat3
	offset.SetCol(2, delta)
	v.matrix = v.matrix.Add(offset)
}

// WorldToScreen maps a world position to normalized screen coordinates.
func (v *View) WorldToScreen(p math.Vec2) math.Vec2 {
	return v.Transform().TransformPoint(p)
}

// ScreenToWorld maps normalized screen coordinates back to world space.
func (v *View) ScreenToWorld(p math.Vec2) (math.Vec2, error) {
	inv, ok := v.Transform().Inverse()
	if !ok {
		return math.Vec2{}, ErrSingular
	}
	w := inv.TransformPoint(p)
	if !w.IsFinite() {
		return math.Vec2{}, ErrSingular
	}
	return w, nil
}
