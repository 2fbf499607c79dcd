package timeline

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// InterpolationMethod selects how a channel's value is computed between
// keyframes.
type InterpolationMethod uint8

const (
	// InterpolationNone holds the latest keyframe value at or before the
	// sample position (stepwise playback).
	InterpolationNone InterpolationMethod = iota

	// InterpolationLinear blends linearly between the surrounding pair of
	// keyframes.
	InterpolationLinear

	// InterpolationCubic blends through a four-keyframe window using the
	// channel type's cubic strategy.
	InterpolationCubic
)

// String returns the method name for logging.
func (m InterpolationMethod) String() string {
	switch m {
	case InterpolationNone:
		return "None"
	case InterpolationLinear:
		return "Linear"
	case InterpolationCubic:
		return "Cubic"
	default:
		return fmt.Sprintf("InterpolationMethod(%d)", uint8(m))
	}
}

// Parameter is the type-erased view of a timeline channel, used by layers
// and playback code that does not need the concrete value type. The only
// implementation is TimelineParameter[T]; recover the typed form with
// ParameterOf.
type Parameter interface {
	// Name returns the channel's identifier within its layer.
	Name() string

	// Method returns the channel's interpolation method.
	Method() InterpolationMethod

	// ValueType returns the channel's value type, used as the key into the
	// interpolation-strategy and channel-factory registration tables.
	ValueType() reflect.Type

	// KeyframeCount returns the number of keyframes on the channel.
	KeyframeCount() int

	// HasKeyframes reports whether the channel holds at least one keyframe.
	HasKeyframes() bool

	// Start returns the position of the first keyframe, or 0 for an empty
	// channel.
	Start() time.Duration

	// End returns the position of the last keyframe, or 0 for an empty
	// channel.
	End() time.Duration
}

// TimelineParameter is an ordered, position-sorted collection of keyframes
// for one named, typed channel. Keyframe positions are strictly distinct;
// lookups run in O(log n) via binary search. Immutable after construction.
type TimelineParameter[T any] struct {
	name      string
	method    InterpolationMethod
	keyframes []Keyframe[T]
}

var _ Parameter = &TimelineParameter[float32]{}

// NewTimelineParameter creates a channel from the given keyframes. The
// keyframes are copied and sorted by position; two keyframes sharing a
// position are rejected so sampling stays deterministic.
//
// Parameters:
//   - name: the channel identifier (non-empty)
//   - method: the interpolation method for sampling
//   - keyframes: the channel's keyframes, in any order
//
// Returns:
//   - *TimelineParameter[T]: the channel
//   - error: argument error on empty name or duplicate keyframe positions
func NewTimelineParameter[T any](name string, method InterpolationMethod, keyframes ...Keyframe[T]) (*TimelineParameter[T], error) {
	if name == "" {
		return nil, fmt.Errorf("parameter name must not be empty")
	}

	kfs := make([]Keyframe[T], len(keyframes))
	copy(kfs, keyframes)
	sort.Slice(kfs, func(i, j int) bool { return kfs[i].Position < kfs[j].Position })

	for i := 1; i < len(kfs); i++ {
		if kfs[i].Position == kfs[i-1].Position {
			return nil, fmt.Errorf("parameter %q has duplicate keyframe position %v", name, kfs[i].Position)
		}
	}

	return &TimelineParameter[T]{
		name:      name,
		method:    method,
		keyframes: kfs,
	}, nil
}

func (p *TimelineParameter[T]) Name() string { return p.name }

func (p *TimelineParameter[T]) Method() InterpolationMethod { return p.method }

func (p *TimelineParameter[T]) ValueType() reflect.Type { return reflect.TypeFor[T]() }

func (p *TimelineParameter[T]) KeyframeCount() int { return len(p.keyframes) }

func (p *TimelineParameter[T]) HasKeyframes() bool { return len(p.keyframes) > 0 }

func (p *TimelineParameter[T]) Start() time.Duration {
	if len(p.keyframes) == 0 {
		return 0
	}
	return p.keyframes[0].Position
}

func (p *TimelineParameter[T]) End() time.Duration {
	if len(p.keyframes) == 0 {
		return 0
	}
	return p.keyframes[len(p.keyframes)-1].Position
}

// Keyframes returns the channel's keyframes sorted by position.
// The returned slice is the channel's backing storage - do not modify.
//
// Returns:
//   - []Keyframe[T]: the sorted keyframes
func (p *TimelineParameter[T]) Keyframes() []Keyframe[T] { return p.keyframes }

// TryFindKeyframeBefore locates the latest keyframe at or before the query
// position, then steps back offset additional keyframes. A negative offset
// steps forward instead, which callers use to reach the far side of an
// interpolation window from a single anchor.
//
// Parameters:
//   - at: the query position
//   - offset: extra keyframes to step back (negative steps forward)
//
// Returns:
//   - Keyframe[T]: the located keyframe (zero value when not found)
//   - bool: false if no keyframe exists at the stepped index
func (p *TimelineParameter[T]) TryFindKeyframeBefore(at time.Duration, offset int) (Keyframe[T], bool) {
	n := len(p.keyframes)
	// First index strictly after the query; the anchor is one before it.
	i := sort.Search(n, func(j int) bool { return p.keyframes[j].Position > at })
	i = i - 1 - offset
	if i < 0 || i >= n {
		return Keyframe[T]{}, false
	}
	return p.keyframes[i], true
}

// TryFindKeyframeAfter locates the earliest keyframe at or after the query
// position, then steps forward offset additional keyframes. A negative
// offset steps back instead.
//
// Parameters:
//   - at: the query position
//   - offset: extra keyframes to step forward (negative steps back)
//
// Returns:
//   - Keyframe[T]: the located keyframe (zero value when not found)
//   - bool: false if no keyframe exists at the stepped index
func (p *TimelineParameter[T]) TryFindKeyframeAfter(at time.Duration, offset int) (Keyframe[T], bool) {
	n := len(p.keyframes)
	i := sort.Search(n, func(j int) bool { return p.keyframes[j].Position >= at })
	i = i + offset
	if i < 0 || i >= n {
		return Keyframe[T]{}, false
	}
	return p.keyframes[i], true
}
