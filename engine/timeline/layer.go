package timeline

import (
	"fmt"
	"time"
)

// TimelineLayer is a named group of parameters, typically one layer per
// skeleton bone or scene object. Parameter names are unique within a
// layer. Immutable after construction.
type TimelineLayer struct {
	name       string
	parameters map[string]Parameter

	start, end   time.Duration
	hasKeyframes bool
}

// NewTimelineLayer creates a layer from the given parameters, rejecting
// duplicate parameter names. Start and End aggregate across the contained
// parameters; an empty layer (or one whose parameters are all empty) has
// Start = End = 0.
//
// Parameters:
//   - name: the layer identifier (non-empty)
//   - parameters: the layer's channels
//
// Returns:
//   - *TimelineLayer: the layer
//   - error: argument error on empty name, nil parameter, or duplicate
//     parameter names
func NewTimelineLayer(name string, parameters ...Parameter) (*TimelineLayer, error) {
	if name == "" {
		return nil, fmt.Errorf("layer name must not be empty")
	}

	l := &TimelineLayer{
		name:       name,
		parameters: make(map[string]Parameter, len(parameters)),
	}

	for _, p := range parameters {
		if p == nil {
			return nil, fmt.Errorf("layer %q given a nil parameter", name)
		}
		if _, exists := l.parameters[p.Name()]; exists {
			return nil, fmt.Errorf("layer %q has duplicate parameter name %q", name, p.Name())
		}
		l.parameters[p.Name()] = p

		if !p.HasKeyframes() {
			continue
		}
		if !l.hasKeyframes || p.Start() < l.start {
			l.start = p.Start()
		}
		if !l.hasKeyframes || p.End() > l.end {
			l.end = p.End()
		}
		l.hasKeyframes = true
	}

	return l, nil
}

// Name returns the layer's identifier.
func (l *TimelineLayer) Name() string { return l.name }

// Start returns the earliest keyframe position across the layer's
// parameters, or 0 if none hold keyframes.
func (l *TimelineLayer) Start() time.Duration { return l.start }

// End returns the latest keyframe position across the layer's parameters,
// or 0 if none hold keyframes.
func (l *TimelineLayer) End() time.Duration { return l.end }

// Length returns End - Start.
func (l *TimelineLayer) Length() time.Duration { return l.end - l.start }

// HasKeyframes reports whether any parameter in the layer is non-empty.
func (l *TimelineLayer) HasKeyframes() bool { return l.hasKeyframes }

// TryParameter looks up a parameter by name without failing.
//
// Parameters:
//   - name: the parameter identifier
//
// Returns:
//   - Parameter: the parameter, or nil
//   - bool: false if no parameter has that name
func (l *TimelineLayer) TryParameter(name string) (Parameter, bool) {
	p, ok := l.parameters[name]
	return p, ok
}

// Parameter looks up a parameter by name.
//
// Parameters:
//   - name: the parameter identifier
//
// Returns:
//   - Parameter: the parameter
//   - error: ErrNotFound if no parameter has that name
func (l *TimelineLayer) Parameter(name string) (Parameter, error) {
	p, ok := l.parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in layer %q", ErrNotFound, name, l.name)
	}
	return p, nil
}

// Parameters returns the layer's parameters in map order.
//
// Returns:
//   - []Parameter: the layer's channels
func (l *TimelineLayer) Parameters() []Parameter {
	out := make([]Parameter, 0, len(l.parameters))
	for _, p := range l.parameters {
		out = append(out, p)
	}
	return out
}

// ParameterOf looks up a parameter by name and recovers its typed form.
//
// Parameters:
//   - l: the layer to search
//   - name: the parameter identifier
//
// Returns:
//   - *TimelineParameter[T]: the typed channel
//   - error: ErrNotFound if absent, ErrTypeMismatch if the channel holds a
//     different value type
func ParameterOf[T any](l *TimelineLayer, name string) (*TimelineParameter[T], error) {
	p, ok := l.parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in layer %q", ErrNotFound, name, l.name)
	}
	typed, ok := p.(*TimelineParameter[T])
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in layer %q holds %v", ErrTypeMismatch, name, l.name, p.ValueType())
	}
	return typed, nil
}

// TryParameterOf is the non-failing form of ParameterOf, used on sampling
// paths that substitute defaults instead of failing the frame.
//
// Parameters:
//   - l: the layer to search
//   - name: the parameter identifier
//
// Returns:
//   - *TimelineParameter[T]: the typed channel, or nil
//   - bool: false if absent or of a different value type
func TryParameterOf[T any](l *TimelineLayer, name string) (*TimelineParameter[T], bool) {
	p, ok := l.parameters[name]
	if !ok {
		return nil, false
	}
	typed, ok := p.(*TimelineParameter[T])
	return typed, ok
}
