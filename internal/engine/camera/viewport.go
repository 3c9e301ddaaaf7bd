package camera

import "github.com/Faultbox/triedit/pkg/math"

// Viewport describes the window in points and the drawable in pixels.
// They differ on HiDPI displays.
type Viewport struct {
	WindowW, WindowH     int
	DrawableW, DrawableH int
}

// Scale returns the drawable-to-window ratio (1 on regular displays).
func (vp Viewport) Scale() float32 {
	if vp.WindowW <= 0 || vp.DrawableW <= 0 {
		return 1
	}
	return float32(vp.DrawableW) / float32(vp.WindowW)
}

// Valid reports whether the drawable has a usable size.
func (vp Viewport) Valid() bool {
	return vp.DrawableW > 0 && vp.DrawableH > 0
}

// ToNDC converts a cursor position in window points to normalized
// device coordinates (-1 to 1, Y up).
func (vp Viewport) ToNDC(x, y float32) math.Vec2 {
	if !vp.Valid() {
		return math.Vec2{}
	}
	scale := vp.Scale()
	px := x * scale
	py := y * scale

	w := float32(vp.DrawableW)
	h := float32(vp.DrawableH)
	return math.Vec2{
		X: (px/w)*2 - 1,
		Y: ((h-1-py)/h)*2 - 1, // window Y grows downward
	}
}
