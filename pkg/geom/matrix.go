package geom

import "fmt"

// Matrix4 is a 4x4 affine transform in row-major order: m[row][col].
// The last row is (0 0 0 1) for the transforms this package produces,
// but the determinant and application methods do not rely on it.
type Matrix4 [4][4]float64

// Identity returns the identity transform.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a transform that moves points by (x, y, z).
func Translation(x, y, z float64) Matrix4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scale returns a transform that scales each axis independently.
// Negative factors produce a reflection.
func Scale(x, y, z float64) Matrix4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// UniformScale returns a transform that scales all axes by s.
func UniformScale(s float64) Matrix4 {
	return Scale(s, s, s)
}

// FromSlice builds a Matrix4 from 16 row-major values.
func FromSlice(vals []float64) (Matrix4, error) {
	var m Matrix4
	if len(vals) != 16 {
		return m, fmt.Errorf("matrix needs 16 values, got %d", len(vals))
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = vals[i*4+j]
		}
	}
	return m, nil
}

// Mul returns the product m * o, the transform that applies o first
// and then m.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// MulVector3Position applies m to v as a position, including translation.
func (m Matrix4) MulVector3Position(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// Determinant returns the determinant of m.
func (m Matrix4) Determinant() float64 {
	return m[0][3]*m[1][2]*m[2][1]*m[3][0] - m[0][2]*m[1][3]*m[2][1]*m[3][0] -
		m[0][3]*m[1][1]*m[2][2]*m[3][0] + m[0][1]*m[1][3]*m[2][2]*m[3][0] +
		m[0][2]*m[1][1]*m[2][3]*m[3][0] - m[0][1]*m[1][2]*m[2][3]*m[3][0] -
		m[0][3]*m[1][2]*m[2][0]*m[3][1] + m[0][2]*m[1][3]*m[2][0]*m[3][1] +
		m[0][3]*m[1][0]*m[2][2]*m[3][1] - m[0][0]*m[1][3]*m[2][2]*m[3][1] -
		m[0][2]*m[1][0]*m[2][3]*m[3][1] + m[0][0]*m[1][2]*m[2][3]*m[3][1] +
		m[0][3]*m[1][1]*m[2][0]*m[3][2] - m[0][1]*m[1][3]*m[2][0]*m[3][2] -
		m[0][3]*m[1][0]*m[2][1]*m[3][2] + m[0][0]*m[1][3]*m[2][1]*m[3][2] +
		m[0][1]*m[1][0]*m[2][3]*m[3][2] - m[0][0]*m[1][1]*m[2][3]*m[3][2] -
		m[0][2]*m[1][1]*m[2][0]*m[3][3] + m[0][1]*m[1][2]*m[2][0]*m[3][3] +
		m[0][2]*m[1][0]*m[2][1]*m[3][3] - m[0][0]*m[1][2]*m[2][1]*m[3][3] -
		m[0][1]*m[1][0]*m[2][2]*m[3][3] + m[0][0]*m[1][1]*m[2][2]*m[3][3]
}

// IsReflective reports whether m reverses orientation (negative
// determinant). Faces transformed by a reflective matrix need their
// winding flipped to preserve the outward sense.
func (m Matrix4) IsReflective() bool {
	return m.Determinant() < 0
}
