package breach

import (
	"github.com/chewxy/math32"
)

// Vec4 is a 4-component column vector. The fourth component is 1 for points
// and 0 for directions, matching the homogeneous convention used by Mat4.
type Vec4 [4]float32

// Vec returns a point vector (w = 1).
func Vec(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// Dir returns a direction vector (w = 0).
func Dir(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 0}
}

// Add returns v + o component-wise over x, y, z. The w component of v is kept.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3]}
}

// Sub returns v - o component-wise over x, y, z. The w component of v is kept.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3]}
}

// Scale returns v with x, y, z multiplied by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3]}
}

// Dot returns the 3D dot product, ignoring w.
func (v Vec4) Dot(o Vec4) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Cross returns the 3D cross product v x o, ignoring w. The result is a
// direction (w = 0).
func (v Vec4) Cross(o Vec4) Vec4 {
	return Vec4{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
		0,
	}
}

// Norm returns the L2 norm of the x, y, z components. The w component is
// deliberately ignored so that point vectors (w = 1) measure correctly.
func (v Vec4) Norm() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalized returns v scaled to unit length. A zero vector is returned
// unchanged.
func (v Vec4) Normalized() Vec4 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// Mat4 is a 4x4 matrix in column-major order, the same layout OpenGL uses:
// element (row, col) lives at index col*4+row.
type Mat4 [16]float32

// Mat4Identity returns the identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Mat4Identity()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scaling returns a scaling matrix.
func Scaling(x, y, z float32) Mat4 {
	var m Mat4
	m[0] = x
	m[5] = y
	m[10] = z
	m[15] = 1
	return m
}

// Rotation returns a rotation matrix of angle radians about the given axis.
// The axis is normalized before use; its w component is ignored.
func Rotation(angle float32, axis Vec4) Mat4 {
	a := axis.Normalized()
	x, y, z := a[0], a[1], a[2]
	s, c := math32.Sincos(angle)
	ic := 1 - c
	return Mat4{
		x*x*ic + c, x*y*ic + z*s, x*z*ic - y*s, 0,
		x*y*ic - z*s, y*y*ic + c, y*z*ic + x*s, 0,
		x*z*ic + y*s, y*z*ic - x*s, z*z*ic + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec returns m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	var r Vec4
	for row := 0; row < 4; row++ {
		r[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return r
}

// BasisTransform returns the matrix mapping the standard orthonormal frame
// onto the frame with the given origin and X/Y axes. The Z axis is derived as
// the normalized cross product of X and Y, which keeps a unit-length
// orthogonal Z regardless of the axis lengths. This makes the transform
// suitable for placing 2D geometry on an arbitrary plane in 3D.
func BasisTransform(offset, axisX, axisY Vec4) Mat4 {
	axisZ := axisX.Cross(axisY).Normalized()
	return Mat4{
		axisX[0], axisX[1], axisX[2], 0,
		axisY[0], axisY[1], axisY[2], 0,
		axisZ[0], axisZ[1], axisZ[2], 0,
		offset[0], offset[1], offset[2], 1,
	}
}

// LookAt returns a view matrix for an eye at the given position looking at
// center, with the given up direction.
func LookAt(eye, center, up Vec4) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)
	rot := Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		0, 0, 0, 1,
	}
	return rot.Mul(Translation(-eye[0], -eye[1], -eye[2]))
}

// Perspective returns a perspective projection matrix. fovY is the vertical
// field of view in radians; near and far are the positive clip distances.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}
