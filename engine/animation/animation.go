// package animation implements mutable playback over shared timeline data:
// the Animation state machine, per-channel lazy samplers, and the
// DeformerAnimation resolver that turns per-bone relative channels into an
// absolute skeletal deformation matrix array.
//
// Everything here is single-threaded by contract. Update calls must be
// serialized by the caller (one per frame); a Timeline is shared read-only
// and must outlive every Animation sampling it.
package animation

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/medley-go/engine/timeline"
)

// PlaybackMargin keeps playback positions away from clip boundaries where
// interpolation windows are undefined.
const PlaybackMargin = 40 * time.Millisecond

// Animation is the mutable playback cursor over one shared Timeline. It
// owns one Layer per timeline layer; each layer's parameters sample the
// timeline at the animation's current position.
type Animation struct {
	timeline *timeline.Timeline
	layers   map[string]*Layer

	position time.Duration
	playing  bool
	loop     bool

	playbackStart  time.Duration
	playbackLength time.Duration
}

// NewAnimation creates a playback instance over the given timeline. The
// playback range initially spans the whole timeline.
//
// Parameters:
//   - tl: the source timeline (shared, not owned; must not be nil)
//
// Returns:
//   - *Animation: the playback instance
//   - error: argument error on nil timeline, configuration error if a
//     channel's value type has no registered channel factory or strategy
func NewAnimation(tl *timeline.Timeline) (*Animation, error) {
	if tl == nil {
		return nil, fmt.Errorf("animation requires a non-nil timeline")
	}

	a := &Animation{
		timeline:       tl,
		layers:         make(map[string]*Layer),
		playbackLength: tl.Length(),
	}

	for _, src := range tl.Layers() {
		l, err := newLayer(a, src)
		if err != nil {
			return nil, err
		}
		a.layers[l.Name()] = l
	}

	return a, nil
}

// Timeline returns the shared source timeline.
func (a *Animation) Timeline() *timeline.Timeline { return a.timeline }

// Position returns the current playback position.
func (a *Animation) Position() time.Duration { return a.position }

// SetPosition seeks to an absolute playback position.
//
// Parameters:
//   - position: the target position (must not be negative)
//
// Returns:
//   - error: argument error on negative position
func (a *Animation) SetPosition(position time.Duration) error {
	if position < 0 {
		return fmt.Errorf("position must not be negative, got %v", position)
	}
	a.position = position
	return nil
}

// IsPlaying reports whether playback is advancing.
func (a *Animation) IsPlaying() bool { return a.playing }

// LoopPlayback reports whether playback wraps at the playback end.
func (a *Animation) LoopPlayback() bool { return a.loop }

// SetLoopPlayback enables or disables loop playback.
//
// Parameters:
//   - loop: true to wrap at the playback end instead of stopping
func (a *Animation) SetLoopPlayback(loop bool) { a.loop = loop }

// PlaybackStart returns the start of the playback range.
func (a *Animation) PlaybackStart() time.Duration { return a.playbackStart }

// PlaybackLength returns the length of the playback range.
func (a *Animation) PlaybackLength() time.Duration { return a.playbackLength }

// Play starts or resumes playback from the current position. Callers that
// want a restart must seek to PlaybackStart explicitly first.
func (a *Animation) Play() { a.playing = true }

// Pause halts playback, retaining the current position.
func (a *Animation) Pause() { a.playing = false }

// Stop halts playback and rewinds to the start of the playback range.
func (a *Animation) Stop() {
	a.position = a.playbackStart
	a.playing = false
}

// playbackEnd returns the effective end of the playback range, clamped so
// sampling never reaches the timeline boundary. The end never falls below
// the playback start, so a timeline shorter than the margin degrades to a
// zero-length range instead of a negative position.
func (a *Animation) playbackEnd() time.Duration {
	end := a.playbackStart + a.playbackLength
	if limit := a.timeline.Length() - PlaybackMargin; end > limit {
		end = limit
	}
	if end < a.playbackStart {
		end = a.playbackStart
	}
	return end
}

// Update advances playback by the elapsed delta. When the new position
// passes the playback end, looping playback wraps by modulo arithmetic
// into the playback range; otherwise the position clamps to the end and
// playback stops. A paused or stopped animation is unaffected.
//
// Parameters:
//   - delta: elapsed time since the previous update (must not be negative)
//
// Returns:
//   - error: argument error on negative delta
func (a *Animation) Update(delta time.Duration) error {
	if delta < 0 {
		return fmt.Errorf("update delta must not be negative, got %v", delta)
	}
	if !a.playing {
		return nil
	}

	end := a.playbackEnd()
	newPosition := a.position + delta
	if newPosition > end {
		if a.loop && a.playbackLength > 0 {
			a.position = a.playbackStart + (newPosition-end)%a.playbackLength
		} else {
			a.position = end
			a.playing = false
		}
		return nil
	}

	a.position = newPosition
	return nil
}

// SetPlaybackRange restricts playback to the clip delimited by a marker.
// The range starts at the marker and runs either to the next marker or to
// the timeline end, shortened by PlaybackMargin; the position resets to
// just inside the new range. A marker that does not exist leaves the
// animation unchanged.
//
// Parameters:
//   - markerID: the identifier of the clip's start marker
//   - untilNextMarker: end at the next marker if one follows, otherwise at
//     the timeline end
//
// Returns:
//   - bool: false if no marker has the given identifier
func (a *Animation) SetPlaybackRange(markerID string, untilNextMarker bool) bool {
	m, ok := a.timeline.TryMarker(markerID)
	if !ok {
		return false
	}

	a.playbackStart = m.Position
	if next, found := a.timeline.TryNextMarkerAfter(m.Position); untilNextMarker && found {
		a.playbackLength = next.Position - m.Position - PlaybackMargin
	} else {
		a.playbackLength = a.timeline.End() - m.Position - PlaybackMargin
	}
	a.position = a.playbackStart + PlaybackMargin
	return true
}

// TryLayer looks up an animation layer by name without failing.
//
// Parameters:
//   - name: the layer identifier
//
// Returns:
//   - *Layer: the layer, or nil
//   - bool: false if no layer has that name
func (a *Animation) TryLayer(name string) (*Layer, bool) {
	l, ok := a.layers[name]
	return l, ok
}

// Layer looks up an animation layer by name.
//
// Parameters:
//   - name: the layer identifier
//
// Returns:
//   - *Layer: the layer
//   - error: timeline.ErrNotFound if no layer has that name
func (a *Animation) Layer(name string) (*Layer, error) {
	l, ok := a.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: animation layer %q", timeline.ErrNotFound, name)
	}
	return l, nil
}
