package common

import (
	"math"
	"unsafe"
)

// Lerp linearly interpolates between v and o.
//
// Parameters:
//   - o: the target vector
//   - t: interpolation factor (0 = v, 1 = o)
//
// Returns:
//   - Vector2: the interpolated vector
func (v Vector2) Lerp(o Vector2, t float32) Vector2 {
	return Vector2{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
	}
}

// Lerp linearly interpolates between v and o.
//
// Parameters:
//   - o: the target vector
//   - t: interpolation factor (0 = v, 1 = o)
//
// Returns:
//   - Vector3: the interpolated vector
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return Vector3{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

// Dot returns the quaternion dot product of q and o.
//
// Parameters:
//   - o: the other quaternion
//
// Returns:
//   - float32: the dot product
func (q Quaternion) Dot(o Quaternion) float32 {
	return q[0]*o[0] + q[1]*o[1] + q[2]*o[2] + q[3]*o[3]
}

// Normalize returns q scaled to unit length. A zero quaternion normalizes
// to the identity rotation.
//
// Returns:
//   - Quaternion: the normalized quaternion
func (q Quaternion) Normalize() Quaternion {
	lenSq := q.Dot(q)
	if lenSq == 0 {
		return QuaternionIdentity()
	}
	inv := 1.0 / float32(math.Sqrt(float64(lenSq)))
	return Quaternion{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// Slerp spherically interpolates between q and o along the shortest arc.
// Near-parallel quaternions fall back to normalized linear interpolation
// to avoid division by a vanishing sine.
//
// Parameters:
//   - o: the target rotation
//   - t: interpolation factor (0 = q, 1 = o)
//
// Returns:
//   - Quaternion: the interpolated rotation
func (q Quaternion) Slerp(o Quaternion, t float32) Quaternion {
	dot := q.Dot(o)

	// Take the shortest arc.
	if dot < 0 {
		o = Quaternion{-o[0], -o[1], -o[2], -o[3]}
		dot = -dot
	}

	if dot > 0.9995 {
		return Quaternion{
			q[0] + (o[0]-q[0])*t,
			q[1] + (o[1]-q[1])*t,
			q[2] + (o[2]-q[2])*t,
			q[3] + (o[3]-q[3])*t,
		}.Normalize()
	}

	theta := math.Acos(float64(dot))
	sinTheta := math.Sin(theta)
	wa := float32(math.Sin((1-float64(t))*theta) / sinTheta)
	wb := float32(math.Sin(float64(t)*theta) / sinTheta)

	return Quaternion{
		q[0]*wa + o[0]*wb,
		q[1]*wa + o[1]*wb,
		q[2]*wa + o[2]*wb,
		q[3]*wa + o[3]*wb,
	}
}

// Mul multiplies two matrices: out = m * n. With the row-vector convention
// this applies m first, then n.
//
// Parameters:
//   - n: the right-hand matrix
//
// Returns:
//   - Matrix: the product m * n
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

// Lerp component-wise interpolates between m and o. This is the blend used
// for combined transformation channels; it is not a proper decomposed blend
// and is only meaningful for small differences between the operands.
//
// Parameters:
//   - o: the target matrix
//   - t: interpolation factor (0 = m, 1 = o)
//
// Returns:
//   - Matrix: the interpolated matrix
func (m Matrix) Lerp(o Matrix, t float32) Matrix {
	var out Matrix
	for i := range m {
		out[i] = m[i] + (o[i]-m[i])*t
	}
	return out
}

// RotationMatrix converts q into a 4x4 rotation matrix (row-vector
// convention).
//
// Returns:
//   - Matrix: the rotation matrix
func (q Quaternion) RotationMatrix() Matrix {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Matrix{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0,
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0,
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0,
		0, 0, 0, 1,
	}
}

// ComposeTransform builds a transform matrix from decomposed scale,
// rotation, and translation, composed as Scale * Rotation * Translation
// (scale applies first under the row-vector convention).
//
// Parameters:
//   - scale: per-axis scale factors
//   - rotation: the rotation quaternion
//   - translation: the position offset
//
// Returns:
//   - Matrix: the composed transform
func ComposeTransform(scale Vector3, rotation Quaternion, translation Vector3) Matrix {
	m := rotation.RotationMatrix()
	for c := 0; c < 3; c++ {
		m[0*4+c] *= scale[0]
		m[1*4+c] *= scale[1]
		m[2*4+c] *= scale[2]
	}
	m[12] = translation[0]
	m[13] = translation[1]
	m[14] = translation[2]
	return m
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
