package animation

import (
	"errors"
	"fmt"

	"github.com/Faultbox/triedit/pkg/math"
)

// ErrInsufficientKeyframes is returned when fewer than two frames are recorded.
var ErrInsufficientKeyframes = errors.New("animation: need at least two keyframes")

// DefaultSteps is the number of samples per segment, endpoints included.
const DefaultSteps = 11

// Interpolation selects how intermediate frames are computed.
type Interpolation int

const (
	Linear Interpolation = iota
	Bezier
)

func (i Interpolation) String() string {
	switch i {
	case Linear:
		return "linear"
	case Bezier:
		return "bezier"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// Options controls sampling.
type Options struct {
	// Steps per segment. Values below 2 fall back to DefaultSteps.
	Steps int
	// Pivot is the Bézier control point shared by every vertex.
	Pivot math.Vec2
}

// DefaultOptions returns 11 steps and a pivot at (0.5, 0.5).
func DefaultOptions() Options {
	return Options{Steps: DefaultSteps, Pivot: math.V2(0.5, 0.5)}
}

// Sample is one interpolated frame.
type Sample struct {
	Segment int
	Step    int
	T       float32
	Frame   Keyframe
}

// Lerp returns (1-t)*a + t*b.
func Lerp(a, b math.Vec2, t float32) math.Vec2 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// QuadBezier evaluates a quadratic Bézier curve from a to b with one
// control point.
func QuadBezier(a, pivot, b math.Vec2, t float32) math.Vec2 {
	return Lerp(Lerp(a, pivot, t), Lerp(pivot, b, t), t)
}

// Interpolate blends every vertex of two keyframes.
func Interpolate(kind Interpolation, a, b Keyframe, pivot math.Vec2, t float32) Keyframe {
	var out Keyframe
	for i := range out {
		if kind == Bezier {
			out[i] = QuadBezier(a[i], pivot, b[i], t)
		} else {
			out[i] = Lerp(a[i], b[i], t)
		}
	}
	return out
}

// Samples expands consecutive keyframe pairs into evenly spaced frames with
// t = step / (Steps - 1), so each segment starts and ends exactly on its
// keyframes.
func Samples(frames []Keyframe, kind Interpolation, opts Options) ([]Sample, error) {
	if len(frames) < 2 {
		return nil, fmt.Errorf("%s playback with %d frames: %w", kind, len(frames), ErrInsufficientKeyframes)
	}
	steps := opts.Steps
	if steps < 2 {
		steps = DefaultSteps
	}

	out := make([]Sample, 0, (len(frames)-1)*steps)
	for seg := 0; seg < len(frames)-1; seg++ {
		for step := 0; step < steps; step++ {
			t := float32(step) / float32(steps-1)
			out = append(out, Sample{
				Segment: seg,
				Step:    step,
				T:       t,
				Frame:   Interpolate(kind, frames[seg], frames[seg+1], opts.Pivot, t),
			})
		}
	}
	return out, nil
}
