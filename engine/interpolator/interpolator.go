// package interpolator provides per-type interpolation strategies for
// animation channels. A Strategy knows how to produce a neutral default
// value and how to interpolate linearly or cubically between keyframe
// values of its type.
//
// Strategies for the built-in value types (sized integers, floats, bool,
// time.Duration, and the common vector/quaternion/matrix types) are
// registered by this package at init time. Custom value types opt in by
// calling Register before any channel of that type is sampled; resolving
// a type with no registered strategy is a configuration error, not a
// runtime-recoverable condition.
package interpolator

import (
	"fmt"
	"reflect"
)

// ErrNoStrategy is returned when a value type has no registered
// interpolation strategy. Wrapped errors carry the offending type.
var ErrNoStrategy = fmt.Errorf("no interpolation strategy registered")

// Strategy defines interpolation over values of type T.
type Strategy[T any] interface {
	// Default returns the neutral value used when a channel has no
	// keyframe at or around the sample position.
	//
	// Returns:
	//   - T: the neutral/zero value for the type
	Default() T

	// Linear interpolates between x and y.
	//
	// Parameters:
	//   - x: the value at ratio 0
	//   - y: the value at ratio 1
	//   - ratio: interpolation factor in [0, 1]
	//
	// Returns:
	//   - T: the interpolated value
	Linear(x, y T, ratio float32) T

	// Cubic interpolates between x and y using the surrounding keyframe
	// values before and after as additional control points.
	//
	// Parameters:
	//   - before: the value preceding x
	//   - x: the value at ratio 0
	//   - y: the value at ratio 1
	//   - after: the value following y
	//   - ratio: interpolation factor in [0, 1]
	//
	// Returns:
	//   - T: the interpolated value
	Cubic(before, x, y, after T, ratio float32) T
}

// strategies is the static registration table mapping a value type to its
// Strategy. Built-ins are installed at init; custom types are added via
// Register. The table is expected to be fully populated during program
// startup and is not guarded for concurrent mutation afterwards.
var strategies = map[reflect.Type]any{}

// Register installs the interpolation strategy for value type T,
// replacing any previously registered strategy for the same type.
// Call this during startup, before any channel of type T is sampled.
//
// Parameters:
//   - s: the strategy implementation for T
func Register[T any](s Strategy[T]) {
	strategies[reflect.TypeFor[T]()] = s
}

// For resolves the interpolation strategy for value type T.
//
// Returns:
//   - Strategy[T]: the registered strategy
//   - error: ErrNoStrategy if no strategy is registered for T
func For[T any]() (Strategy[T], error) {
	t := reflect.TypeFor[T]()
	s, ok := strategies[t]
	if !ok {
		return nil, fmt.Errorf("%w for type %v", ErrNoStrategy, t)
	}
	typed, ok := s.(Strategy[T])
	if !ok {
		return nil, fmt.Errorf("%w: entry for type %v has mismatched strategy type %T", ErrNoStrategy, t, s)
	}
	return typed, nil
}
