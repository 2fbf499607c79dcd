// package common contains common types that are used throughout this toolkit. They are not interface-wrapped structs, just plain value
// types that express commonly used data.
package common

// Vector2 is a 2-component float vector (x, y).
type Vector2 [2]float32

// Vector3 is a 3-component float vector (x, y, z).
type Vector3 [3]float32

// Quaternion is a rotation quaternion stored as (x, y, z, w).
type Quaternion [4]float32

// Matrix is a 4x4 transform matrix stored row-major using the row-vector
// convention: a point is transformed as v' = v * M, and transforms chain
// left to right (childRelative * parentAbsolute). Translation lives in the
// last row (indices 12, 13, 14).
type Matrix [16]float32

// QuaternionIdentity returns the identity rotation (0, 0, 0, 1).
//
// Returns:
//   - Quaternion: the identity quaternion
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// MatrixIdentity returns the 4x4 identity matrix.
//
// Returns:
//   - Matrix: the identity matrix
func MatrixIdentity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
