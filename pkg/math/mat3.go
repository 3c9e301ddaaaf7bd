package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float32

// singularEpsilon is the determinant magnitude below which a matrix is treated as singular.
const singularEpsilon = 1e-12

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromColumns builds a matrix from three column vectors.
func FromColumns(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Translate3 returns a 2D homogeneous translation matrix.
func Translate3(x, y float32) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Scale3 returns a 2D homogeneous scale matrix.
func Scale3(x, y float32) Mat3 {
	return Mat3{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// SetCol replaces column i.
func (m *Mat3) SetCol(i int, c Vec3) {
	m[i*3] = c.X
	m[i*3+1] = c.Y
	m[i*3+2] = c.Z
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[k*3+row] * other[col*3+k]
			}
			result[col*3+row] = sum
		}
	}
	return result
}

// Add returns m + other, element-wise.
func (m Mat3) Add(other Mat3) Mat3 {
	var result Mat3
	for i := range m {
		result[i] = m[i] + other[i]
	}
	return result
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// TransformPoint applies m to the homogeneous point (p.x, p.y, 1).
// The result is divided by w unless w is zero.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	r := m.MulVec3(p.Homogeneous())
	if r.Z != 0 && r.Z != 1 {
		return Vec2{r.X / r.Z, r.Y / r.Z}
	}
	return Vec2{r.X, r.Y}
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of m. ok is false when m is singular,
// in which case the identity is returned.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	det := m.Determinant()
	if math32.Abs(det) < singularEpsilon || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return Identity3(), false
	}
	invDet := 1 / det

	inv[0] = (m[4]*m[8] - m[7]*m[5]) * invDet
	inv[1] = (m[7]*m[2] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[4]*m[2]) * invDet
	inv[3] = (m[6]*m[5] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[6]*m[2]) * invDet
	inv[5] = (m[3]*m[2] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[6]*m[4]) * invDet
	inv[7] = (m[6]*m[1] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[3]*m[1]) * invDet
	return inv, true
}
