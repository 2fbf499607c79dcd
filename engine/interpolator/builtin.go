package interpolator

import (
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
)

// scalar covers the built-in fixed-width numeric value types.
type scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// catmull evaluates the uniform cubic used for scalar and vector channels:
//
//	interim = after - y - before + x
//	result  = interim*t³ + (before - x - interim)*t² + (y - before)*t + x
func catmull(before, x, y, after, t float64) float64 {
	interim := after - y - before + x
	return interim*t*t*t + (before-x-interim)*t*t + (y-before)*t + x
}

// scalarStrategy interpolates fixed-width numeric values. Integer types
// interpolate through a float64 intermediate and cast back, which truncates
// the fractional part and can lose precision at extreme 64-bit magnitudes.
// This matches the channel semantics and is accepted behavior.
type scalarStrategy[T scalar] struct{}

func (scalarStrategy[T]) Default() T {
	var zero T
	return zero
}

func (scalarStrategy[T]) Linear(x, y T, ratio float32) T {
	fx, fy := float64(x), float64(y)
	return T(fx + (fy-fx)*float64(ratio))
}

func (scalarStrategy[T]) Cubic(before, x, y, after T, ratio float32) T {
	return T(catmull(float64(before), float64(x), float64(y), float64(after), float64(ratio)))
}

// boolStrategy switches from x to y at the midpoint of the interval.
// There is no meaningful continuous interpolation for bool channels.
type boolStrategy struct{}

func (boolStrategy) Default() bool { return false }

func (boolStrategy) Linear(x, y bool, ratio float32) bool {
	if ratio < 0.5 {
		return x
	}
	return y
}

func (b boolStrategy) Cubic(before, x, y, after bool, ratio float32) bool {
	return b.Linear(x, y, ratio)
}

// vector2Strategy interpolates Vector2 channels component-wise.
type vector2Strategy struct{}

func (vector2Strategy) Default() common.Vector2 { return common.Vector2{} }

func (vector2Strategy) Linear(x, y common.Vector2, ratio float32) common.Vector2 {
	return x.Lerp(y, ratio)
}

func (vector2Strategy) Cubic(before, x, y, after common.Vector2, ratio float32) common.Vector2 {
	var out common.Vector2
	for i := range out {
		out[i] = float32(catmull(float64(before[i]), float64(x[i]), float64(y[i]), float64(after[i]), float64(ratio)))
	}
	return out
}

// vector3Strategy interpolates Vector3 channels component-wise.
type vector3Strategy struct{}

func (vector3Strategy) Default() common.Vector3 { return common.Vector3{} }

func (vector3Strategy) Linear(x, y common.Vector3, ratio float32) common.Vector3 {
	return x.Lerp(y, ratio)
}

func (vector3Strategy) Cubic(before, x, y, after common.Vector3, ratio float32) common.Vector3 {
	var out common.Vector3
	for i := range out {
		out[i] = float32(catmull(float64(before[i]), float64(x[i]), float64(y[i]), float64(after[i]), float64(ratio)))
	}
	return out
}

// quaternionStrategy interpolates rotation channels by spherical linear
// interpolation. Cubic sampling intentionally degrades to slerp between x
// and y; the before/after control points are accepted but unused. This is
// a simplification, not a full quaternion spline; downstream consumers
// depend on the slerp behavior.
type quaternionStrategy struct{}

func (quaternionStrategy) Default() common.Quaternion { return common.QuaternionIdentity() }

func (quaternionStrategy) Linear(x, y common.Quaternion, ratio float32) common.Quaternion {
	return x.Slerp(y, ratio)
}

func (quaternionStrategy) Cubic(before, x, y, after common.Quaternion, ratio float32) common.Quaternion {
	return x.Slerp(y, ratio)
}

// matrixStrategy interpolates 4x4 transform channels component-wise.
type matrixStrategy struct{}

func (matrixStrategy) Default() common.Matrix { return common.MatrixIdentity() }

func (matrixStrategy) Linear(x, y common.Matrix, ratio float32) common.Matrix {
	return x.Lerp(y, ratio)
}

func (matrixStrategy) Cubic(before, x, y, after common.Matrix, ratio float32) common.Matrix {
	var out common.Matrix
	for i := range out {
		out[i] = float32(catmull(float64(before[i]), float64(x[i]), float64(y[i]), float64(after[i]), float64(ratio)))
	}
	return out
}

func init() {
	Register[int8](scalarStrategy[int8]{})
	Register[int16](scalarStrategy[int16]{})
	Register[int32](scalarStrategy[int32]{})
	Register[int64](scalarStrategy[int64]{})
	Register[uint8](scalarStrategy[uint8]{})
	Register[uint16](scalarStrategy[uint16]{})
	Register[uint32](scalarStrategy[uint32]{})
	Register[uint64](scalarStrategy[uint64]{})
	Register[float32](scalarStrategy[float32]{})
	Register[float64](scalarStrategy[float64]{})
	Register[bool](boolStrategy{})
	// time.Duration is a fixed-width integer count of nanoseconds, so the
	// scalar strategy applies directly.
	Register[time.Duration](scalarStrategy[time.Duration]{})
	Register[common.Vector2](vector2Strategy{})
	Register[common.Vector3](vector3Strategy{})
	Register[common.Quaternion](quaternionStrategy{})
	Register[common.Matrix](matrixStrategy{})
}
