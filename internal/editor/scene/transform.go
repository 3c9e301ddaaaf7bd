package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/triedit/pkg/math"
)

// Centroid returns the average of the three vertex positions.
func Centroid(t Triangle) math.Vec2 {
	sum := t[0].Pos.Add(t[1].Pos).Add(t[2].Pos)
	return sum.Scale(1.0 / 3.0)
}

// RotateAboutCentroid rotates t counter-clockwise by radians around its own centroid.
func RotateAboutCentroid(t Triangle, radians float32) Triangle {
	c := Centroid(t)
	for i := range t {
		t[i].Pos = c.Add(t[i].Pos.Sub(c).Rotate(radians))
	}
	return t
}

// ScaleAboutCentroid moves every vertex by factor times its offset from the centroid.
// A factor of 0.25 grows the triangle by 25%, -0.25 shrinks it.
func ScaleAboutCentroid(t Triangle, factor float32) Triangle {
	c := Centroid(t)
	for i := range t {
		offset := t[i].Pos.Sub(c)
		t[i].Pos = t[i].Pos.Add(offset.Scale(factor))
	}
	return t
}

// Radians converts degrees to radians.
func Radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}

// RotateAll rotates every committed triangle by degrees about its own centroid.
func (s *Store) RotateAll(degrees float32) {
	if s.count == 0 {
		return
	}
	rad := Radians(degrees)
	for i := 0; i < s.count; i++ {
		s.slots[i] = RotateAboutCentroid(s.slots[i], rad)
	}
	s.touch()
}

// ScaleAll scales every committed triangle by factor about its own centroid.
func (s *Store) ScaleAll(factor float32) {
	if s.count == 0 {
		return
	}
	for i := 0; i < s.count; i++ {
		s.slots[i] = ScaleAboutCentroid(s.slots[i], factor)
	}
	s.touch()
}
