// package timeline contains the immutable animation source data model:
// keyframes, markers, parameters (one typed channel each), layers, and the
// Timeline aggregate. A Timeline is constructed once and then shared
// read-only by any number of playback instances; nothing in this package
// mutates after construction.
package timeline

import (
	"encoding/binary"
	"fmt"
	"time"
)

// positionHeaderSize is the fixed size of the serialized position prefix:
// a little-endian signed 64-bit nanosecond count.
const positionHeaderSize = 8

// Keyframe is an immutable (position, value) pair on a single channel.
type Keyframe[T any] struct {
	// Position is the keyframe's timestamp on the channel.
	Position time.Duration

	// Value is the channel value at Position.
	Value T
}

// NewKeyframe creates a keyframe at the given position.
//
// Parameters:
//   - position: the keyframe timestamp
//   - value: the channel value at that timestamp
//
// Returns:
//   - Keyframe[T]: the keyframe
func NewKeyframe[T any](position time.Duration, value T) Keyframe[T] {
	return Keyframe[T]{Position: position, Value: value}
}

// CalculateRatioTo computes where the query position falls between this
// keyframe and other, as a factor in [0, 1] (0 at this keyframe's
// position, 1 at other's). A query outside the closed interval spanned by
// the two keyframes is a range error. Two keyframes at the same position
// yield ratio 0.
//
// Parameters:
//   - other: the second keyframe bounding the interval
//   - at: the query position
//
// Returns:
//   - float32: the interpolation ratio in [0, 1]
//   - error: range error if at falls outside the keyframe interval
func (k Keyframe[T]) CalculateRatioTo(other Keyframe[T], at time.Duration) (float32, error) {
	lo, hi := k.Position, other.Position
	if hi < lo {
		lo, hi = hi, lo
	}
	if at < lo || at > hi {
		return 0, fmt.Errorf("position %v outside keyframe interval [%v, %v]", at, lo, hi)
	}
	if k.Position == other.Position {
		return 0, nil
	}
	return float32(float64(at-k.Position) / float64(other.Position-k.Position)), nil
}

// ToBytes serializes the keyframe as an 8-byte little-endian nanosecond
// position followed by the value's fixed-width encoding. The total record
// size is constant per value type.
//
// Returns:
//   - []byte: the serialized keyframe
//   - error: ErrNoCodec if T has no registered binary codec
func (k Keyframe[T]) ToBytes() ([]byte, error) {
	codec, err := CodecFor[T]()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, positionHeaderSize+codec.Size())
	binary.LittleEndian.PutUint64(buf, uint64(k.Position.Nanoseconds()))
	codec.Encode(buf[positionHeaderSize:], k.Value)
	return buf, nil
}

// KeyframeFromBytes deserializes a keyframe produced by ToBytes.
//
// Parameters:
//   - data: the serialized keyframe record
//
// Returns:
//   - Keyframe[T]: the decoded keyframe
//   - error: ErrNoCodec if T has no codec, ErrFormat if data is undersized
func KeyframeFromBytes[T any](data []byte) (Keyframe[T], error) {
	codec, err := CodecFor[T]()
	if err != nil {
		return Keyframe[T]{}, err
	}
	want := positionHeaderSize + codec.Size()
	if len(data) < want {
		return Keyframe[T]{}, fmt.Errorf("%w: keyframe record needs %d bytes, have %d", ErrFormat, want, len(data))
	}
	position := time.Duration(int64(binary.LittleEndian.Uint64(data)))
	return Keyframe[T]{
		Position: position,
		Value:    codec.Decode(data[positionHeaderSize:]),
	}, nil
}
