package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/triedit/pkg/math"
)

// Store errors.
var (
	ErrNoTriangle   = errors.New("scene: no such triangle")
	ErrFull         = errors.New("scene: capacity reached")
	ErrConstruction = errors.New("scene: invalid construction step")
)

// Store is the ordered collection of triangle slots.
//
// Invariant: VertexCount() == 3*Len() + Pending(), with Pending() in {0, 1, 2}.
// The triangle under construction occupies the slot after the last committed one.
type Store struct {
	slots    []Triangle
	count    int // committed triangles
	pending  int // placed vertices of the triangle under construction
	capacity int // maximum committed+partial triangles; 0 = unbounded
	version  uint64
}

// NewStore creates a store holding at most capacity triangles.
// A capacity of 0 lets the store grow without bound.
func NewStore(capacity int) *Store {
	if capacity < 0 {
		capacity = 0
	}
	return &Store{
		slots:    make([]Triangle, 0, max(capacity, 8)),
		capacity: capacity,
	}
}

// Len returns the number of committed triangles.
func (s *Store) Len() int {
	return s.count
}

// Pending returns how many vertices of the triangle under construction are placed.
func (s *Store) Pending() int {
	return s.pending
}

// VertexCount returns committed vertices plus placed partial vertices.
func (s *Store) VertexCount() int {
	return 3*s.count + s.pending
}

// Capacity returns the configured capacity (0 = unbounded).
func (s *Store) Capacity() int {
	return s.capacity
}

// Version increases on every mutation.
func (s *Store) Version() uint64 {
	return s.version
}

// Triangle returns the committed triangle at index i.
func (s *Store) Triangle(i int) (Triangle, bool) {
	if i < 0 || i >= s.count {
		return Triangle{}, false
	}
	return s.slots[i], true
}

// Triangles returns a copy of the committed triangles in slot order.
func (s *Store) Triangles() []Triangle {
	out := make([]Triangle, s.count)
	copy(out, s.slots[:s.count])
	return out
}

// Partial returns the triangle under construction, if any.
func (s *Store) Partial() (Triangle, int, bool) {
	if s.pending == 0 {
		return Triangle{}, 0, false
	}
	return s.slots[s.count], s.pending, true
}

// DrawList snapshots the store for rendering.
func (s *Store) DrawList() DrawList {
	list := DrawList{Triangles: s.Triangles()}
	if tri, n, ok := s.Partial(); ok {
		list.Partial = tri
		list.PartialVertices = n
	}
	return list
}

// BeginTriangle places the first vertex of a new triangle. All three vertices
// start at p so the partial triangle can be previewed immediately.
func (s *Store) BeginTriangle(p math.Vec2) error {
	if s.pending != 0 {
		return fmt.Errorf("begin triangle with %d vertices pending: %w", s.pending, ErrConstruction)
	}
	if s.capacity > 0 && s.count >= s.capacity {
		return fmt.Errorf("begin triangle %d: %w", s.count, ErrFull)
	}

	v := Vertex{Pos: p, Color: DefaultColor}
	tri := Triangle{v, v, v}
	if s.count < len(s.slots) {
		s.slots[s.count] = tri
	} else {
		s.slots = append(s.slots, tri)
	}
	s.pending = 1
	s.touch()
	return nil
}

// PreviewVertex moves every vertex that has not been placed yet to p.
func (s *Store) PreviewVertex(p math.Vec2) {
	if s.pending == 0 {
		return
	}
	tri := &s.slots[s.count]
	for i := s.pending; i < 3; i++ {
		tri[i].Pos = p
	}
	s.touch()
}

// AddSecondVertex places the second vertex. The third follows it until committed.
func (s *Store) AddSecondVertex(p math.Vec2) error {
	if s.pending != 1 {
		return fmt.Errorf("second vertex with %d vertices pending: %w", s.pending, ErrConstruction)
	}
	tri := &s.slots[s.count]
	tri[1].Pos = p
	tri[2].Pos = p
	s.pending = 2
	s.touch()
	return nil
}

// CommitThirdVertex places the last vertex and commits the triangle.
// It returns the index of the new triangle.
func (s *Store) CommitThirdVertex(p math.Vec2) (int, error) {
	if s.pending != 2 {
		return -1, fmt.Errorf("third vertex with %d vertices pending: %w", s.pending, ErrConstruction)
	}
	s.slots[s.count][2].Pos = p
	idx := s.count
	s.count++
	s.pending = 0
	s.touch()
	return idx, nil
}

// CancelTriangle discards the triangle under construction.
func (s *Store) CancelTriangle() bool {
	if s.pending == 0 {
		return false
	}
	s.pending = 0
	s.slots = s.slots[:s.count]
	s.touch()
	return true
}

// Delete removes triangle i and shifts every later slot down by one,
// including the triangle under construction.
func (s *Store) Delete(i int) error {
	if err := s.check(i); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	s.slots = append(s.slots[:i], s.slots[i+1:]...)
	s.count--
	s.touch()
	return nil
}

// Translate moves all three vertices of triangle i by d.
func (s *Store) Translate(i int, d math.Vec2) error {
	if err := s.check(i); err != nil {
		return fmt.Errorf("translate: %w", err)
	}
	tri := &s.slots[i]
	for v := range tri {
		tri[v].Pos = tri[v].Pos.Add(d)
	}
	s.touch()
	return nil
}

// SetPositions replaces the vertex positions of triangle i, keeping colors.
func (s *Store) SetPositions(i int, pos [3]math.Vec2) error {
	if err := s.check(i); err != nil {
		return fmt.Errorf("set positions: %w", err)
	}
	tri := &s.slots[i]
	for v := range tri {
		tri[v].Pos = pos[v]
	}
	s.touch()
	return nil
}

// SetVertexColor recolors one vertex of triangle i.
func (s *Store) SetVertexColor(i, vertex int, c Color) error {
	if err := s.check(i); err != nil {
		return fmt.Errorf("set vertex color: %w", err)
	}
	if vertex < 0 || vertex > 2 {
		return fmt.Errorf("set vertex color: vertex %d: %w", vertex, ErrNoTriangle)
	}
	s.slots[i][vertex].Color = c
	s.touch()
	return nil
}

// SetTriangleColor recolors every vertex of triangle i.
func (s *Store) SetTriangleColor(i int, c Color) error {
	if err := s.check(i); err != nil {
		return fmt.Errorf("set triangle color: %w", err)
	}
	s.slots[i] = s.slots[i].WithColor(c)
	s.touch()
	return nil
}

func (s *Store) check(i int) error {
	if i < 0 || i >= s.count {
		return fmt.Errorf("index %d of %d: %w", i, s.count, ErrNoTriangle)
	}
	return nil
}

func (s *Store) touch() {
	s.version++
}
