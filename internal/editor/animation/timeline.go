// Package animation records keyframes for a single triangle and plays them
// back with linear or quadratic Bézier interpolation.
package animation

import "github.com/Faultbox/triedit/pkg/math"

// Unbound is the target of a timeline not attached to any triangle.
const Unbound = -1

// Keyframe is a snapshot of a triangle's three vertex positions.
type Keyframe [3]math.Vec2

// Timeline is an ordered list of keyframes bound to one triangle index.
//
// Frames are recorded in segments: a mouse press begins a segment and the
// matching release ends it. The end of one segment is the start of the next.
type Timeline struct {
	target int
	frames []Keyframe
}

// NewTimeline creates an empty, unbound timeline.
func NewTimeline() *Timeline {
	return &Timeline{target: Unbound}
}

// Bind attaches the timeline to a triangle index.
func (tl *Timeline) Bind(target int) {
	tl.target = target
}

// Target returns the bound triangle index, or Unbound.
func (tl *Timeline) Target() int {
	return tl.target
}

// Bound reports whether a triangle is attached.
func (tl *Timeline) Bound() bool {
	return tl.target != Unbound
}

// BeginSegment records the start frame of a segment. On an empty timeline
// it appends; otherwise it overwrites the last frame.
func (tl *Timeline) BeginSegment(k Keyframe) {
	if len(tl.frames) == 0 {
		tl.frames = append(tl.frames, k)
		return
	}
	tl.frames[len(tl.frames)-1] = k
}

// EndSegment appends the end frame of a segment.
func (tl *Timeline) EndSegment(k Keyframe) {
	tl.frames = append(tl.frames, k)
}

// Len returns the number of recorded frames.
func (tl *Timeline) Len() int {
	return len(tl.frames)
}

// First returns the first recorded frame.
func (tl *Timeline) First() (Keyframe, bool) {
	if len(tl.frames) == 0 {
		return Keyframe{}, false
	}
	return tl.frames[0], true
}

// Frames returns a copy of the recorded frames.
func (tl *Timeline) Frames() []Keyframe {
	out := make([]Keyframe, len(tl.frames))
	copy(out, tl.frames)
	return out
}

// Reset clears all frames and unbinds the timeline.
func (tl *Timeline) Reset() {
	tl.frames = tl.frames[:0]
	tl.target = Unbound
}

// TriangleDeleted keeps the binding in step with store compaction. Deleting
// the bound triangle resets the timeline and returns true; deleting an
// earlier triangle shifts the target down by one.
func (tl *Timeline) TriangleDeleted(index int) bool {
	switch {
	case !tl.Bound():
		return false
	case index == tl.target:
		tl.Reset()
		return true
	case index < tl.target:
		tl.target--
	}
	return false
}
