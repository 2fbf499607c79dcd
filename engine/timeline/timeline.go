package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Timeline is the full set of layers plus clip markers. It is immutable
// after construction and shared read-only across any number of playback
// instances; playback code must never mutate it.
type Timeline struct {
	layers  map[string]*TimelineLayer
	markers []Marker

	start, end time.Duration
}

// NewTimeline creates a timeline from the given layers and markers,
// rejecting duplicate layer names and duplicate marker identifiers.
// Markers are copied and kept sorted by position. Start and End aggregate
// across the contained layers.
//
// Parameters:
//   - layers: the timeline's layers
//   - markers: named clip boundaries, in any order
//
// Returns:
//   - *Timeline: the timeline
//   - error: argument error on nil layers, duplicate layer names, invalid
//     markers, or duplicate marker identifiers
func NewTimeline(layers []*TimelineLayer, markers []Marker) (*Timeline, error) {
	t := &Timeline{
		layers:  make(map[string]*TimelineLayer, len(layers)),
		markers: make([]Marker, 0, len(markers)),
	}

	first := true
	for _, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("timeline given a nil layer")
		}
		if _, exists := t.layers[l.Name()]; exists {
			return nil, fmt.Errorf("timeline has duplicate layer name %q", l.Name())
		}
		t.layers[l.Name()] = l

		if !l.HasKeyframes() {
			continue
		}
		if first || l.Start() < t.start {
			t.start = l.Start()
		}
		if first || l.End() > t.end {
			t.end = l.End()
		}
		first = false
	}

	seen := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		if _, err := NewMarker(m.Position, m.Identifier); err != nil {
			return nil, err
		}
		if _, exists := seen[m.Identifier]; exists {
			return nil, fmt.Errorf("timeline has duplicate marker identifier %q", m.Identifier)
		}
		seen[m.Identifier] = struct{}{}
		t.markers = append(t.markers, m)
	}
	sort.Slice(t.markers, func(i, j int) bool { return t.markers[i].Position < t.markers[j].Position })

	return t, nil
}

// Start returns the earliest keyframe position across all layers.
func (t *Timeline) Start() time.Duration { return t.start }

// End returns the latest keyframe position across all layers.
func (t *Timeline) End() time.Duration { return t.end }

// Length returns the timeline's playable span, measured from time zero to
// End. Playback positions are absolute timeline positions, so the span is
// compared directly against them.
func (t *Timeline) Length() time.Duration { return t.end }

// TryLayer looks up a layer by name without failing.
//
// Parameters:
//   - name: the layer identifier
//
// Returns:
//   - *TimelineLayer: the layer, or nil
//   - bool: false if no layer has that name
func (t *Timeline) TryLayer(name string) (*TimelineLayer, bool) {
	l, ok := t.layers[name]
	return l, ok
}

// Layer looks up a layer by name.
//
// Parameters:
//   - name: the layer identifier
//
// Returns:
//   - *TimelineLayer: the layer
//   - error: ErrNotFound if no layer has that name
func (t *Timeline) Layer(name string) (*TimelineLayer, error) {
	l, ok := t.layers[name]
	if !ok {
		return nil, fmt.Errorf("%w: layer %q", ErrNotFound, name)
	}
	return l, nil
}

// Layers returns the timeline's layers in map order.
//
// Returns:
//   - []*TimelineLayer: the layers
func (t *Timeline) Layers() []*TimelineLayer {
	out := make([]*TimelineLayer, 0, len(t.layers))
	for _, l := range t.layers {
		out = append(out, l)
	}
	return out
}

// TryMarker looks up a marker by identifier without failing.
//
// Parameters:
//   - identifier: the marker name
//
// Returns:
//   - Marker: the marker (zero value when not found)
//   - bool: false if no marker has that identifier
func (t *Timeline) TryMarker(identifier string) (Marker, bool) {
	for _, m := range t.markers {
		if m.Identifier == identifier {
			return m, true
		}
	}
	return Marker{}, false
}

// Marker looks up a marker by identifier.
//
// Parameters:
//   - identifier: the marker name
//
// Returns:
//   - Marker: the marker
//   - error: ErrNotFound if no marker has that identifier
func (t *Timeline) Marker(identifier string) (Marker, error) {
	m, ok := t.TryMarker(identifier)
	if !ok {
		return Marker{}, fmt.Errorf("%w: marker %q", ErrNotFound, identifier)
	}
	return m, nil
}

// Markers returns the timeline's markers sorted by position.
// The returned slice is the timeline's backing storage - do not modify.
//
// Returns:
//   - []Marker: the sorted markers
func (t *Timeline) Markers() []Marker { return t.markers }

// TryNextMarkerAfter finds the first marker positioned strictly after the
// given position, used to derive a clip's end from its start marker.
//
// Parameters:
//   - position: the query position
//
// Returns:
//   - Marker: the next marker (zero value when none follows)
//   - bool: false if no marker lies after position
func (t *Timeline) TryNextMarkerAfter(position time.Duration) (Marker, bool) {
	i := sort.Search(len(t.markers), func(j int) bool { return t.markers[j].Position > position })
	if i >= len(t.markers) {
		return Marker{}, false
	}
	return t.markers[i], true
}
