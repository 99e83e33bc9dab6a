package highlight

import "math"

// Matrix is an axis-aligned affine transformation:
//
//	x' = SX*x + TX
//	y' = SY*y + TY
//
// Chart transforms never rotate or shear, so the off-diagonal terms of a
// general 2x3 matrix are always zero and are not stored.
type Matrix struct {
	SX, TX float64
	SY, TY float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{SX: 1, SY: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{SX: 1, TX: x, SY: 1, TY: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{SX: x, SY: y}
}

// Multiply multiplies two matrices (m * other): other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		SX: m.SX * other.SX,
		TX: m.SX*other.TX + m.TX,
		SY: m.SY * other.SY,
		TY: m.SY*other.TY + m.TY,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.SX*p.X + m.TX,
		Y: m.SY*p.Y + m.TY,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	if math.Abs(m.SX) < 1e-12 || math.Abs(m.SY) < 1e-12 {
		return Identity()
	}
	return Matrix{
		SX: 1 / m.SX,
		TX: -m.TX / m.SX,
		SY: 1 / m.SY,
		TY: -m.TY / m.SY,
	}
}

// IsInvertible reports whether both scale factors are non-zero.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.SX) >= 1e-12 && math.Abs(m.SY) >= 1e-12
}
