package weld2d

import "math"

// Vec2 is a 2D column vector.
type Vec2 struct {
	X, Y float64
}

func MakeVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v.X + u.X, v.Y + u.Y}
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

func (v Vec2) Mult(s float64) Vec2 {
	return Vec2{s * v.X, s * v.Y}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(u Vec2) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Cross is the 2D cross product; it produces a scalar.
func (v Vec2) Cross(u Vec2) float64 {
	return v.X*u.Y - v.Y*u.X
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Skew is the vector such that skew(v).Dot(u) == v.Cross(u).
func (v Vec2) Skew() Vec2 {
	return Vec2{-v.Y, v.X}
}

// CrossSV is the cross product of a scalar and a vector; it produces a vector.
// w k % (rx i + ry j) = w * (-ry i + rx j)
func CrossSV(s float64, v Vec2) Vec2 {
	return Vec2{-s * v.Y, s * v.X}
}

// Vec3 is a column vector with 3 elements.
type Vec3 struct {
	X, Y, Z float64
}

func MakeVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v *Vec3) SetZero() {
	v.X = 0.0
	v.Y = 0.0
	v.Z = 0.0
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Mult(s float64) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Rot is a rotation stored as sine and cosine.
type Rot struct {
	S, C float64
}

func MakeRot(anglerad float64) Rot {
	return Rot{S: math.Sin(anglerad), C: math.Cos(anglerad)}
}

func (r Rot) Angle() float64 {
	return math.Atan2(r.S, r.C)
}

// Rotate a vector.
func (r Rot) Rotate(v Vec2) Vec2 {
	return Vec2{
		r.C*v.X - r.S*v.Y,
		r.S*v.X + r.C*v.Y,
	}
}

// Inverse rotate a vector.
func (r Rot) InvRotate(v Vec2) Vec2 {
	return Vec2{
		r.C*v.X + r.S*v.Y,
		-r.S*v.X + r.C*v.Y,
	}
}

// Mat22 is a 2-by-2 matrix stored in column-major order.
type Mat22 struct {
	Ex, Ey Vec2
}

// Solve A * x = b, where b is a column vector. This is more efficient
// than computing the inverse in one-shot cases. Returns zero if the
// matrix is singular.
func (m Mat22) Solve(b Vec2) Vec2 {
	a11 := m.Ex.X
	a12 := m.Ey.X
	a21 := m.Ex.Y
	a22 := m.Ey.Y

	det := a11*a22 - a12*a21
	if det != 0.0 {
		det = 1.0 / det
	}

	return Vec2{
		det * (a22*b.X - a12*b.Y),
		det * (a11*b.Y - a21*b.X),
	}
}

// Mat33 is a 3-by-3 matrix stored in column-major order.
type Mat33 struct {
	Ex, Ey, Ez Vec3
}

// MulV3 multiplies the matrix times a vector.
func (m Mat33) MulV3(v Vec3) Vec3 {
	return m.Ex.Mult(v.X).Add(m.Ey.Mult(v.Y)).Add(m.Ez.Mult(v.Z))
}

// Mul22 multiplies the top-left 2x2 block times a vector.
func (m Mat33) Mul22(v Vec2) Vec2 {
	return Vec2{
		m.Ex.X*v.X + m.Ey.X*v.Y,
		m.Ex.Y*v.X + m.Ey.Y*v.Y,
	}
}

// Solve33 solves A * x = b, where b is a column vector. Returns zero if
// the matrix is singular.
func (m Mat33) Solve33(b Vec3) Vec3 {
	det := m.Ex.Dot(m.Ey.Cross(m.Ez))
	if det != 0.0 {
		det = 1.0 / det
	}

	return Vec3{
		det * b.Dot(m.Ey.Cross(m.Ez)),
		det * m.Ex.Dot(b.Cross(m.Ez)),
		det * m.Ex.Dot(m.Ey.Cross(b)),
	}
}

// Solve22 solves A * x = b for the top-left 2x2 block. Returns zero if
// the block is singular.
func (m Mat33) Solve22(b Vec2) Vec2 {
	a11 := m.Ex.X
	a12 := m.Ey.X
	a21 := m.Ex.Y
	a22 := m.Ey.Y

	det := a11*a22 - a12*a21
	if det != 0.0 {
		det = 1.0 / det
	}

	return Vec2{
		det * (a22*b.X - a12*b.Y),
		det * (a11*b.Y - a21*b.X),
	}
}

// Inverse22 inverts the top-left 2x2 block, zeroing the rest.
func (m Mat33) Inverse22() Mat33 {
	a := m.Ex.X
	b := m.Ey.X
	c := m.Ex.Y
	d := m.Ey.Y

	det := a*d - b*c
	if det != 0.0 {
		det = 1.0 / det
	}

	var out Mat33
	out.Ex.X = det * d
	out.Ey.X = -det * b
	out.Ex.Y = -det * c
	out.Ey.Y = det * a
	return out
}

// SymInverse inverts the matrix treating it as symmetric. Returns the
// zero matrix if singular.
func (m Mat33) SymInverse() Mat33 {
	det := m.Ex.Dot(m.Ey.Cross(m.Ez))
	if det != 0.0 {
		det = 1.0 / det
	}

	a11 := m.Ex.X
	a12 := m.Ey.X
	a13 := m.Ez.X
	a22 := m.Ey.Y
	a23 := m.Ez.Y
	a33 := m.Ez.Z

	var out Mat33
	out.Ex.X = det * (a22*a33 - a23*a23)
	out.Ex.Y = det * (a13*a23 - a12*a33)
	out.Ex.Z = det * (a12*a23 - a13*a22)

	out.Ey.X = out.Ex.Y
	out.Ey.Y = det * (a11*a33 - a13*a13)
	out.Ey.Z = det * (a13*a12 - a11*a23)

	out.Ez.X = out.Ex.Z
	out.Ez.Y = out.Ey.Z
	out.Ez.Z = det * (a11*a22 - a12*a12)
	return out
}

// Transform carries the translation and rotation of a rigid frame.
type Transform struct {
	P Vec2
	Q Rot
}

func MakeTransform(position Vec2, anglerad float64) Transform {
	return Transform{P: position, Q: MakeRot(anglerad)}
}

// Apply maps a local point to world space.
func (t Transform) Apply(v Vec2) Vec2 {
	return Vec2{
		t.Q.C*v.X - t.Q.S*v.Y + t.P.X,
		t.Q.S*v.X + t.Q.C*v.Y + t.P.Y,
	}
}

// ApplyInverse maps a world point to local space.
func (t Transform) ApplyInverse(v Vec2) Vec2 {
	px := v.X - t.P.X
	py := v.Y - t.P.Y
	return Vec2{
		t.Q.C*px + t.Q.S*py,
		-t.Q.S*px + t.Q.C*py,
	}
}
