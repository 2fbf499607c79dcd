package timeline

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
)

// Codec serializes values of type T into a fixed-size little-endian byte
// layout. Every supported keyframe value type has exactly one codec; the
// encoded size is constant per type so keyframe records stay fixed-width.
type Codec[T any] interface {
	// Size returns the constant encoded size of T in bytes.
	//
	// Returns:
	//   - int: the encoded size in bytes
	Size() int

	// Encode writes v into dst, which must be at least Size() bytes.
	//
	// Parameters:
	//   - dst: the destination buffer
	//   - v: the value to encode
	Encode(dst []byte, v T)

	// Decode reads a value from src, which must be at least Size() bytes.
	//
	// Parameters:
	//   - src: the source buffer
	//
	// Returns:
	//   - T: the decoded value
	Decode(src []byte) T
}

// codecs is the static registration table mapping a value type to its
// Codec. Built-ins are installed at init; custom value types add theirs
// via RegisterCodec during startup.
var codecs = map[reflect.Type]any{}

// RegisterCodec installs the binary codec for value type T, replacing any
// previously registered codec for the same type.
//
// Parameters:
//   - c: the codec implementation for T
func RegisterCodec[T any](c Codec[T]) {
	codecs[reflect.TypeFor[T]()] = c
}

// CodecFor resolves the binary codec for value type T.
//
// Returns:
//   - Codec[T]: the registered codec
//   - error: ErrNoCodec if no codec is registered for T
func CodecFor[T any]() (Codec[T], error) {
	t := reflect.TypeFor[T]()
	c, ok := codecs[t]
	if !ok {
		return nil, fmt.Errorf("%w for type %v", ErrNoCodec, t)
	}
	typed, ok := c.(Codec[T])
	if !ok {
		return nil, fmt.Errorf("%w: entry for type %v has mismatched codec type %T", ErrNoCodec, t, c)
	}
	return typed, nil
}

// --- Built-in codecs ---
//
// Each codec is hand-written rather than reflected: the byte layout is
// part of the serialization contract and must not drift with Go's in-memory
// struct layout.

type uintCodec[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64] struct {
	size int
}

func (c uintCodec[T]) Size() int { return c.size }

func (c uintCodec[T]) Encode(dst []byte, v T) {
	switch c.size {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	default:
		binary.LittleEndian.PutUint64(dst, uint64(v))
	}
}

func (c uintCodec[T]) Decode(src []byte) T {
	switch c.size {
	case 1:
		return T(src[0])
	case 2:
		return T(binary.LittleEndian.Uint16(src))
	case 4:
		return T(binary.LittleEndian.Uint32(src))
	default:
		return T(binary.LittleEndian.Uint64(src))
	}
}

type float32Codec struct{}

func (float32Codec) Size() int { return 4 }

func (float32Codec) Encode(dst []byte, v float32) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
}

func (float32Codec) Decode(src []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(src))
}

type float64Codec struct{}

func (float64Codec) Size() int { return 8 }

func (float64Codec) Encode(dst []byte, v float64) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}

func (float64Codec) Decode(src []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src))
}

type boolCodec struct{}

func (boolCodec) Size() int { return 1 }

func (boolCodec) Encode(dst []byte, v bool) {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
}

func (boolCodec) Decode(src []byte) bool { return src[0] != 0 }

// The float32 array value types (Vector2, Vector3, Quaternion, Matrix)
// encode as consecutive little-endian float32 components. Each gets its
// own codec; putFloats and getFloats carry the shared component loop.

func putFloats(dst []byte, v []float32) {
	for i, f := range v {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
}

func getFloats(src []byte, out []float32) {
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
}

type vector2Codec struct{}

func (vector2Codec) Size() int { return 8 }

func (vector2Codec) Encode(dst []byte, v common.Vector2) { putFloats(dst, v[:]) }

func (vector2Codec) Decode(src []byte) common.Vector2 {
	var out common.Vector2
	getFloats(src, out[:])
	return out
}

type vector3Codec struct{}

func (vector3Codec) Size() int { return 12 }

func (vector3Codec) Encode(dst []byte, v common.Vector3) { putFloats(dst, v[:]) }

func (vector3Codec) Decode(src []byte) common.Vector3 {
	var out common.Vector3
	getFloats(src, out[:])
	return out
}

type quaternionCodec struct{}

func (quaternionCodec) Size() int { return 16 }

func (quaternionCodec) Encode(dst []byte, v common.Quaternion) { putFloats(dst, v[:]) }

func (quaternionCodec) Decode(src []byte) common.Quaternion {
	var out common.Quaternion
	getFloats(src, out[:])
	return out
}

type matrixCodec struct{}

func (matrixCodec) Size() int { return 64 }

func (matrixCodec) Encode(dst []byte, v common.Matrix) { putFloats(dst, v[:]) }

func (matrixCodec) Decode(src []byte) common.Matrix {
	var out common.Matrix
	getFloats(src, out[:])
	return out
}

func init() {
	RegisterCodec[int8](uintCodec[int8]{size: 1})
	RegisterCodec[int16](uintCodec[int16]{size: 2})
	RegisterCodec[int32](uintCodec[int32]{size: 4})
	RegisterCodec[int64](uintCodec[int64]{size: 8})
	RegisterCodec[uint8](uintCodec[uint8]{size: 1})
	RegisterCodec[uint16](uintCodec[uint16]{size: 2})
	RegisterCodec[uint32](uintCodec[uint32]{size: 4})
	RegisterCodec[uint64](uintCodec[uint64]{size: 8})
	RegisterCodec[float32](float32Codec{})
	RegisterCodec[float64](float64Codec{})
	RegisterCodec[bool](boolCodec{})
	RegisterCodec[time.Duration](uintCodec[time.Duration]{size: 8})
	RegisterCodec[common.Vector2](vector2Codec{})
	RegisterCodec[common.Vector3](vector3Codec{})
	RegisterCodec[common.Quaternion](quaternionCodec{})
	RegisterCodec[common.Matrix](matrixCodec{})
}
