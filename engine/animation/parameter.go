package animation

import (
	"time"

	"github.com/Carmen-Shannon/medley-go/engine/interpolator"
	"github.com/Carmen-Shannon/medley-go/engine/timeline"
)

// UpdateThreshold is the staleness window for cached channel values: a
// sampler only recomputes once the playback position has moved more than
// this far (in either direction) from the cached sample time. This is a
// recompute-avoidance optimization for many channels sharing one slowly
// advancing position, not a correctness relaxation - the value is always
// consistent with the position to within the window.
const UpdateThreshold = 10 * time.Millisecond

// Parameter lazily samples one timeline channel at its owning Animation's
// current position. It borrows the owner and the source channel; it owns
// nothing.
type Parameter[T any] struct {
	owner    *Animation
	source   *timeline.TimelineParameter[T]
	strategy interpolator.Strategy[T]

	lastValue     T
	lastValueTime time.Duration
	sampled       bool
}

// newParameter wires a sampler to its owner and source channel.
func newParameter[T any](owner *Animation, source *timeline.TimelineParameter[T], strategy interpolator.Strategy[T]) *Parameter[T] {
	return &Parameter[T]{
		owner:    owner,
		source:   source,
		strategy: strategy,
	}
}

// Name returns the channel's identifier.
func (p *Parameter[T]) Name() string { return p.source.Name() }

// CurrentValue returns the channel value at the owning Animation's current
// position, recomputing lazily when the position has moved beyond
// UpdateThreshold since the last sample.
//
// Returns:
//   - T: the sampled channel value
func (p *Parameter[T]) CurrentValue() T {
	position := p.owner.Position()
	if p.sampled {
		elapsed := position - p.lastValueTime
		if elapsed < 0 {
			elapsed = -elapsed
		}
		if elapsed <= UpdateThreshold {
			return p.lastValue
		}
	}

	p.lastValue = p.sample(position)
	p.lastValueTime = position
	p.sampled = true
	return p.lastValue
}

// sample computes the interpolated channel value at the given position.
// Missing boundary keyframes are synthesized at the sample position with
// the strategy's default value; cubic windows fall back to the inner pair
// at sequence boundaries.
func (p *Parameter[T]) sample(position time.Duration) T {
	x, ok := p.source.TryFindKeyframeBefore(position, 0)
	if !ok {
		x = timeline.NewKeyframe(position, p.strategy.Default())
	}

	method := p.source.Method()
	if method == timeline.InterpolationNone {
		return x.Value
	}

	y, ok := p.source.TryFindKeyframeAfter(position, 0)
	if !ok {
		y = timeline.NewKeyframe(position, p.strategy.Default())
	}

	var ratio float32
	if x.Position != y.Position {
		// The window brackets the position by construction, so the ratio
		// computation cannot range-error here.
		ratio, _ = x.CalculateRatioTo(y, position)
	}

	if method == timeline.InterpolationLinear {
		return p.strategy.Linear(x.Value, y.Value, ratio)
	}

	before, ok := p.source.TryFindKeyframeBefore(position, 1)
	if !ok {
		before = x
	}
	after, ok := p.source.TryFindKeyframeAfter(position, 1)
	if !ok {
		after = y
	}
	return p.strategy.Cubic(before.Value, x.Value, y.Value, after.Value, ratio)
}
