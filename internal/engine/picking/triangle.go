// Package picking resolves which triangle and vertex a cursor position targets.
package picking

import (
	"github.com/Faultbox/triedit/internal/editor/scene"
	"github.com/Faultbox/triedit/pkg/math"
)

// NoHit is returned when no triangle contains the point.
const NoHit = -1

// Barycentric returns the coefficients (u, v) of p relative to triangle (a, b, c),
// using the edges c-a and b-a. ok is false for degenerate (zero area) triangles.
func Barycentric(p, a, b, c math.Vec2) (u, v float32, ok bool) {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		// colinear or collapsed triangle
		return 0, 0, false
	}

	invDenom := 1 / denom
	u = (dot11*dot02 - dot01*dot12) * invDenom
	v = (dot00*dot12 - dot01*dot02) * invDenom
	return u, v, true
}

// PointInTriangle reports whether p lies inside triangle (a, b, c).
// Points on the edge where u+v == 1 (between b and c) are not inside.
func PointInTriangle(p, a, b, c math.Vec2) bool {
	u, v, ok := Barycentric(p, a, b, c)
	if !ok {
		return false
	}
	return u >= 0 && v >= 0 && u+v < 1
}

// Contains reports whether p lies inside t.
func Contains(p math.Vec2, t scene.Triangle) bool {
	return PointInTriangle(p, t[0].Pos, t[1].Pos, t[2].Pos)
}

// FindTriangle returns the index of the last triangle containing p, or NoHit.
// Later triangles win on overlap; there is no depth ordering.
func FindTriangle(p math.Vec2, tris []scene.Triangle) int {
	hit := NoHit
	for i := range tris {
		if Contains(p, tris[i]) {
			hit = i
		}
	}
	return hit
}

// NearestVertex returns the index (0-2) of the vertex of t closest to p.
// Ties go to the lowest index.
func NearestVertex(p math.Vec2, t scene.Triangle) int {
	best := 0
	bestDist := p.Distance(t[0].Pos)
	for i := 1; i < 3; i++ {
		if d := p.Distance(t[i].Pos); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
