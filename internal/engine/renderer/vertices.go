package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/triedit/internal/editor/scene"
)

// floatsPerVertex is x, y, w followed by r, g, b.
const floatsPerVertex = 6

// Batch is a draw list packed into one vertex buffer: committed triangles
// first, then the partial triangle's preview primitive.
type Batch struct {
	Vertices []float32

	// Committed is the number of committed triangles.
	Committed int
	// PreviewMode is gl.LINES or gl.TRIANGLES; PreviewCount is 0 when
	// nothing is under construction.
	PreviewMode  uint32
	PreviewCount int32
}

// Pack builds a batch from a draw list, reusing buf. One placed vertex
// previews as a line to the cursor, two as a triangle.
func Pack(list scene.DrawList, buf []float32) Batch {
	b := Batch{Vertices: buf[:0], Committed: len(list.Triangles)}
	for _, tri := range list.Triangles {
		for _, v := range tri {
			b.Vertices = appendVertex(b.Vertices, v)
		}
	}

	switch list.PartialVertices {
	case 1:
		b.PreviewMode = gl.LINES
		b.PreviewCount = 2
	case 2:
		b.PreviewMode = gl.TRIANGLES
		b.PreviewCount = 3
	}
	for i := int32(0); i < b.PreviewCount; i++ {
		b.Vertices = appendVertex(b.Vertices, list.Partial[i])
	}
	return b
}

func appendVertex(dst []float32, v scene.Vertex) []float32 {
	h := v.Homogeneous()
	return append(dst, h.X, h.Y, h.Z, v.Color.R, v.Color.G, v.Color.B)
}
