package easel

import "math"

// Mat2 represents a 2x2 transformation matrix in row-major order:
//
//	| A  B |
//	| C  D |
//
// This represents the transformation:
//
//	x' = A*x + B*y
//	y' = C*x + D*y
//
// Mat2 covers the linear transforms the rasterizer needs (rotation of
// rectangle corners, perpendicular offsets); there is no translation
// component.
type Mat2 struct {
	A, B float64
	C, D float64
}

// IdentityMat2 returns the identity matrix.
func IdentityMat2() Mat2 {
	return Mat2{A: 1, B: 0, C: 0, D: 1}
}

// Rotation returns the counter-clockwise rotation matrix for angle radians:
//
//	| cos -sin |
//	| sin  cos |
func Rotation(angle float64) Mat2 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Mat2{A: cos, B: -sin, C: sin, D: cos}
}

// Apply applies the transformation to a vector.
func (m Mat2) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.C*p.X + m.D*p.Y,
	}
}

// Mul multiplies two matrices (m * other).
func (m Mat2) Mul(other Mat2) Mat2 {
	return Mat2{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
	}
}

// Det returns the determinant of the matrix.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}
