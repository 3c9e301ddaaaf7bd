package camera

import (
	"testing"

	"github.com/Faultbox/triedit/pkg/math"
)

func TestViewportToNDC(t *testing.T) {
	vp := Viewport{WindowW: 640, WindowH: 480, DrawableW: 640, DrawableH: 480}

	tests := []struct {
		name string
		x, y float32
		want math.Vec2
	}{
		{"top left", 0, 0, math.Vec2{X: -1, Y: 1 - 2.0/480}},
		{"center", 320, 239, math.Vec2{X: 0, Y: 0}},
		{"bottom right", 640, 479, math.Vec2{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		got := vp.ToNDC(tt.x, tt.y)
		if !got.ApproxEqual(tt.want, 1e-5) {
			t.Errorf("%s: ToNDC(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestViewportHiDPI(t *testing.T) {
	regular := Viewport{WindowW: 640, WindowH: 480, DrawableW: 640, DrawableH: 480}
	retina := Viewport{WindowW: 640, WindowH: 480, DrawableW: 1280, DrawableH: 960}

	if retina.Scale() != 2 {
		t.Errorf("Scale() = %f, want 2", retina.Scale())
	}

	// The same point in window coordinates lands on the same NDC x.
	a := regular.ToNDC(160, 100)
	b := retina.ToNDC(160, 100)
	if !a.ApproxEqual(math.Vec2{X: b.X, Y: a.Y}, 1e-6) {
		t.Errorf("HiDPI x mismatch: %v vs %v", a, b)
	}
}

func TestViewportInvalid(t *testing.T) {
	var vp Viewport
	if vp.Valid() {
		t.Error("zero viewport should be invalid")
	}
	if got := vp.ToNDC(10, 10); got != (math.Vec2{}) {
		t.Errorf("invalid viewport ToNDC = %v, want origin", got)
	}
	if vp.Scale() != 1 {
		t.Errorf("invalid viewport Scale = %f, want 1", vp.Scale())
	}
}
