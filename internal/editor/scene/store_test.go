package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/triedit/pkg/math"
)

// buildTriangle inserts a committed triangle through the three construction steps.
func buildTriangle(t *testing.T, s *Store, a, b, c math.Vec2) int {
	t.Helper()
	if err := s.BeginTriangle(a); err != nil {
		t.Fatalf("BeginTriangle: %v", err)
	}
	if err := s.AddSecondVertex(b); err != nil {
		t.Fatalf("AddSecondVertex: %v", err)
	}
	idx, err := s.CommitThirdVertex(c)
	if err != nil {
		t.Fatalf("CommitThirdVertex: %v", err)
	}
	return idx
}

// offsetTriangle returns a small triangle whose first vertex sits at (x, 0).
func offsetTriangle(x float32) (math.Vec2, math.Vec2, math.Vec2) {
	return math.Vec2{X: x, Y: 0}, math.Vec2{X: x + 0.1, Y: 0}, math.Vec2{X: x, Y: 0.1}
}

// addTriangleAt commits a small triangle anchored at (x, 0).
func addTriangleAt(t *testing.T, s *Store, x float32) int {
	t.Helper()
	a, b, c := offsetTriangle(x)
	return buildTriangle(t, s, a, b, c)
}

func TestStore_Construction(t *testing.T) {
	s := NewStore(10)
	a, b, c := math.Vec2{X: -0.5, Y: -0.5}, math.Vec2{X: 0.5, Y: -0.5}, math.Vec2{X: 0, Y: 0.5}

	if err := s.BeginTriangle(a); err != nil {
		t.Fatalf("BeginTriangle: %v", err)
	}
	if s.Len() != 0 || s.Pending() != 1 || s.VertexCount() != 1 {
		t.Errorf("after begin: len=%d pending=%d vertices=%d", s.Len(), s.Pending(), s.VertexCount())
	}

	if err := s.AddSecondVertex(b); err != nil {
		t.Fatalf("AddSecondVertex: %v", err)
	}
	if s.Len() != 0 || s.Pending() != 2 || s.VertexCount() != 2 {
		t.Errorf("after second: len=%d pending=%d vertices=%d", s.Len(), s.Pending(), s.VertexCount())
	}

	idx, err := s.CommitThirdVertex(c)
	if err != nil {
		t.Fatalf("CommitThirdVertex: %v", err)
	}
	if idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
	if s.Len() != 1 || s.Pending() != 0 || s.VertexCount() != 3 {
		t.Errorf("after commit: len=%d pending=%d vertices=%d", s.Len(), s.Pending(), s.VertexCount())
	}

	tri, ok := s.Triangle(0)
	if !ok {
		t.Fatal("triangle 0 missing")
	}
	if tri.Positions() != [3]math.Vec2{a, b, c} {
		t.Errorf("positions = %v, want %v", tri.Positions(), [3]math.Vec2{a, b, c})
	}
	for i, v := range tri {
		if v.Color != DefaultColor {
			t.Errorf("vertex %d color = %v, want default", i, v.Color)
		}
	}
}

func TestStore_ConstructionOrder(t *testing.T) {
	s := NewStore(0)
	if err := s.AddSecondVertex(math.Vec2{}); !errors.Is(err, ErrConstruction) {
		t.Errorf("second vertex before begin: got %v, want ErrConstruction", err)
	}
	if _, err := s.CommitThirdVertex(math.Vec2{}); !errors.Is(err, ErrConstruction) {
		t.Errorf("commit before begin: got %v, want ErrConstruction", err)
	}
	if err := s.BeginTriangle(math.Vec2{}); err != nil {
		t.Fatalf("BeginTriangle: %v", err)
	}
	if err := s.BeginTriangle(math.Vec2{}); !errors.Is(err, ErrConstruction) {
		t.Errorf("second begin: got %v, want ErrConstruction", err)
	}
}

func TestStore_PreviewVertex(t *testing.T) {
	s := NewStore(0)
	s.PreviewVertex(math.Vec2{X: 1, Y: 1}) // no partial: ignored
	if s.VertexCount() != 0 {
		t.Fatalf("preview without partial changed the store")
	}

	_ = s.BeginTriangle(math.Vec2{X: 0, Y: 0})
	s.PreviewVertex(math.Vec2{X: 0.3, Y: 0.3})
	tri, n, ok := s.Partial()
	if !ok || n != 1 {
		t.Fatalf("expected partial with 1 vertex, got ok=%v n=%d", ok, n)
	}
	if tri[0].Pos != (math.Vec2{}) {
		t.Errorf("placed vertex moved: %v", tri[0].Pos)
	}
	if tri[1].Pos != (math.Vec2{X: 0.3, Y: 0.3}) || tri[2].Pos != (math.Vec2{X: 0.3, Y: 0.3}) {
		t.Errorf("rubber band vertices = %v %v", tri[1].Pos, tri[2].Pos)
	}

	_ = s.AddSecondVertex(math.Vec2{X: 0.5, Y: 0})
	s.PreviewVertex(math.Vec2{X: 0.2, Y: 0.6})
	tri, _, _ = s.Partial()
	if tri[1].Pos != (math.Vec2{X: 0.5, Y: 0}) {
		t.Errorf("second vertex moved: %v", tri[1].Pos)
	}
	if tri[2].Pos != (math.Vec2{X: 0.2, Y: 0.6}) {
		t.Errorf("third vertex = %v", tri[2].Pos)
	}
}

func TestStore_CancelTriangle(t *testing.T) {
	s := NewStore(0)
	addTriangleAt(t, s, 0)
	if s.CancelTriangle() {
		t.Error("cancel without partial should report false")
	}
	_ = s.BeginTriangle(math.Vec2{X: 1})
	if !s.CancelTriangle() {
		t.Error("cancel with partial should report true")
	}
	if s.Len() != 1 || s.Pending() != 0 {
		t.Errorf("after cancel: len=%d pending=%d", s.Len(), s.Pending())
	}
	addTriangleAt(t, s, 2)
	if s.Len() != 2 {
		t.Errorf("expected 2 triangles after rebuilding, got %d", s.Len())
	}
}

func TestStore_Capacity(t *testing.T) {
	s := NewStore(2)
	addTriangleAt(t, s, 0)
	addTriangleAt(t, s, 1)
	if err := s.BeginTriangle(math.Vec2{}); !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}

	unbounded := NewStore(0)
	for i := 0; i < 50; i++ {
		addTriangleAt(t, unbounded, float32(i))
	}
	if unbounded.Len() != 50 {
		t.Errorf("unbounded store len = %d, want 50", unbounded.Len())
	}
}

func TestStore_Delete(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for k := 0; k < n; k++ {
			s := NewStore(0)
			for i := 0; i < n; i++ {
				addTriangleAt(t, s, float32(i))
			}
			before := s.Triangles()

			if err := s.Delete(k); err != nil {
				t.Fatalf("n=%d Delete(%d): %v", n, k, err)
			}
			if s.Len() != n-1 {
				t.Errorf("n=%d k=%d: len = %d, want %d", n, k, s.Len(), n-1)
			}
			after := s.Triangles()
			for i := 0; i < k; i++ {
				if after[i] != before[i] {
					t.Errorf("n=%d k=%d: triangle %d changed", n, k, i)
				}
			}
			for i := k; i < n-1; i++ {
				if after[i] != before[i+1] {
					t.Errorf("n=%d k=%d: slot %d should hold former %d", n, k, i, i+1)
				}
			}
		}
	}
}

func TestStore_DeleteShiftsPartial(t *testing.T) {
	s := NewStore(0)
	addTriangleAt(t, s, 0)
	addTriangleAt(t, s, 1)
	_ = s.BeginTriangle(math.Vec2{X: 9, Y: 9})

	if err := s.Delete(0); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	tri, n, ok := s.Partial()
	if !ok || n != 1 || tri[0].Pos != (math.Vec2{X: 9, Y: 9}) {
		t.Errorf("partial lost after delete: ok=%v n=%d tri=%v", ok, n, tri)
	}
	if s.VertexCount() != 4 {
		t.Errorf("vertex count = %d, want 4", s.VertexCount())
	}
}

func TestStore_InvalidIndex(t *testing.T) {
	s := NewStore(0)
	addTriangleAt(t, s, 0)

	for _, idx := range []int{-1, 1, 7} {
		if err := s.Delete(idx); !errors.Is(err, ErrNoTriangle) {
			t.Errorf("Delete(%d) = %v, want ErrNoTriangle", idx, err)
		}
		if err := s.Translate(idx, math.Vec2{X: 1}); !errors.Is(err, ErrNoTriangle) {
			t.Errorf("Translate(%d) = %v, want ErrNoTriangle", idx, err)
		}
		if err := s.SetTriangleColor(idx, ColorBlue); !errors.Is(err, ErrNoTriangle) {
			t.Errorf("SetTriangleColor(%d) = %v, want ErrNoTriangle", idx, err)
		}
	}
	if err := s.SetVertexColor(0, 3, ColorBlue); !errors.Is(err, ErrNoTriangle) {
		t.Errorf("SetVertexColor(vertex 3) = %v, want ErrNoTriangle", err)
	}
	if s.Len() != 1 {
		t.Errorf("invalid operations changed the store")
	}
}

func TestStore_TranslateAndColor(t *testing.T) {
	s := NewStore(0)
	addTriangleAt(t, s, 0)
	v0 := s.Version()

	if err := s.Translate(0, math.Vec2{X: 0.5, Y: -0.25}); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	tri, _ := s.Triangle(0)
	want := [3]math.Vec2{{X: 0.5, Y: -0.25}, {X: 0.6, Y: -0.25}, {X: 0.5, Y: -0.15}}
	for i := range want {
		if !tri[i].Pos.ApproxEqual(want[i], 1e-6) {
			t.Errorf("vertex %d = %v, want %v", i, tri[i].Pos, want[i])
		}
	}

	green := Color{0, 1, 0}
	_ = s.SetVertexColor(0, 1, green)
	tri, _ = s.Triangle(0)
	if tri[1].Color != green || tri[0].Color != DefaultColor {
		t.Errorf("vertex colors = %v", tri)
	}

	_ = s.SetTriangleColor(0, ColorBlue)
	tri, _ = s.Triangle(0)
	for i := range tri {
		if tri[i].Color != ColorBlue {
			t.Errorf("vertex %d color = %v, want blue", i, tri[i].Color)
		}
	}

	if s.Version() <= v0 {
		t.Error("version should increase after mutations")
	}
}

func TestStore_DrawList(t *testing.T) {
	s := NewStore(0)
	addTriangleAt(t, s, 0)
	_ = s.BeginTriangle(math.Vec2{X: 3})

	list := s.DrawList()
	if len(list.Triangles) != 1 {
		t.Errorf("draw list triangles = %d, want 1", len(list.Triangles))
	}
	if list.PartialVertices != 1 || list.Partial[0].Pos != (math.Vec2{X: 3}) {
		t.Errorf("draw list partial = %v (%d)", list.Partial, list.PartialVertices)
	}

	// The draw list is a snapshot.
	list.Triangles[0][0].Pos = math.Vec2{X: 100}
	tri, _ := s.Triangle(0)
	if tri[0].Pos.X == 100 {
		t.Error("draw list aliases store memory")
	}
}
