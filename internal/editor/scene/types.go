// Package scene holds the editor's triangle store and the transforms applied to it.
//
// Triangles are identified by their slot index only. Deleting a triangle shifts
// every later triangle down by one slot, so indices are not stable across a delete.
package scene

import "github.com/Faultbox/triedit/pkg/math"

// Color is an RGB color with float components (0.0 to 1.0).
type Color struct {
	R, G, B float32
}

// Colors used by the editor when drawing.
var (
	ColorRed       = Color{1, 0, 0}
	ColorBlue      = Color{0, 0, 1}
	DefaultColor   = ColorRed
	HighlightColor = ColorBlue
)

// Vertex is a 2D position with a color. Positions carry an implicit
// homogeneous z of 1.
type Vertex struct {
	Pos   math.Vec2
	Color Color
}

// Homogeneous returns (x, y, 1).
func (v Vertex) Homogeneous() math.Vec3 {
	return v.Pos.Homogeneous()
}

// Triangle is three vertices stored contiguously in one slot.
type Triangle [3]Vertex

// Positions returns the three vertex positions.
func (t Triangle) Positions() [3]math.Vec2 {
	return [3]math.Vec2{t[0].Pos, t[1].Pos, t[2].Pos}
}

// WithColor returns a copy of t with every vertex set to c.
func (t Triangle) WithColor(c Color) Triangle {
	for i := range t {
		t[i].Color = c
	}
	return t
}

// DrawList is what the renderer consumes each frame.
type DrawList struct {
	Triangles []Triangle

	// Partial is the triangle under construction. PartialVertices is how many
	// of its vertices have been placed (0 when there is none).
	Partial         Triangle
	PartialVertices int
}
