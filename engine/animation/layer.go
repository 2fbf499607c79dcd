package animation

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
	"github.com/Carmen-Shannon/medley-go/engine/interpolator"
	"github.com/Carmen-Shannon/medley-go/engine/timeline"
)

// ErrUnregisteredType is returned when an animation is built over a
// timeline channel whose value type has no registered channel factory.
// Custom value types must call RegisterChannelType (alongside
// interpolator.Register) during startup.
var ErrUnregisteredType = errors.New("no channel factory registered")

// channel is the type-erased face of Parameter[T] stored in a Layer.
// Typed access goes through ParameterOf.
type channel interface {
	Name() string
}

// channelFactory builds the typed sampler for one timeline channel.
type channelFactory func(owner *Animation, source timeline.Parameter) (channel, error)

// channelFactories is the static registration table mapping a channel
// value type to its sampler constructor. Built-ins are installed at init;
// custom value types are added via RegisterChannelType during startup.
var channelFactories = map[reflect.Type]channelFactory{}

// RegisterChannelType installs the sampler constructor for channels of
// value type T. The type must also have an interpolation strategy
// registered; resolution happens when an Animation is constructed.
func RegisterChannelType[T any]() {
	channelFactories[reflect.TypeFor[T]()] = func(owner *Animation, source timeline.Parameter) (channel, error) {
		typed, ok := source.(*timeline.TimelineParameter[T])
		if !ok {
			return nil, fmt.Errorf("%w: channel %q registered as %v but holds %v",
				timeline.ErrTypeMismatch, source.Name(), reflect.TypeFor[T](), source.ValueType())
		}
		strategy, err := interpolator.For[T]()
		if err != nil {
			return nil, fmt.Errorf("channel %q: %w", source.Name(), err)
		}
		return newParameter(owner, typed, strategy), nil
	}
}

func init() {
	RegisterChannelType[int8]()
	RegisterChannelType[int16]()
	RegisterChannelType[int32]()
	RegisterChannelType[int64]()
	RegisterChannelType[uint8]()
	RegisterChannelType[uint16]()
	RegisterChannelType[uint32]()
	RegisterChannelType[uint64]()
	RegisterChannelType[float32]()
	RegisterChannelType[float64]()
	RegisterChannelType[bool]()
	RegisterChannelType[time.Duration]()
	RegisterChannelType[common.Vector2]()
	RegisterChannelType[common.Vector3]()
	RegisterChannelType[common.Quaternion]()
	RegisterChannelType[common.Matrix]()
}

// Layer mirrors one TimelineLayer for a single Animation: one sampler per
// timeline parameter, built once at construction and never mutated
// structurally afterwards - only sampled.
type Layer struct {
	name     string
	channels map[string]channel
}

// newLayer builds the sampler set for one timeline layer.
func newLayer(owner *Animation, src *timeline.TimelineLayer) (*Layer, error) {
	l := &Layer{
		name:     src.Name(),
		channels: make(map[string]channel),
	}

	for _, p := range src.Parameters() {
		factory, ok := channelFactories[p.ValueType()]
		if !ok {
			return nil, fmt.Errorf("%w for value type %v (channel %q in layer %q)",
				ErrUnregisteredType, p.ValueType(), p.Name(), src.Name())
		}
		ch, err := factory(owner, p)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", src.Name(), err)
		}
		l.channels[ch.Name()] = ch
	}

	return l, nil
}

// Name returns the layer's identifier.
func (l *Layer) Name() string { return l.name }

// ParameterOf looks up a sampler by name and recovers its typed form.
//
// Parameters:
//   - l: the layer to search
//   - name: the parameter identifier
//
// Returns:
//   - *Parameter[T]: the typed sampler
//   - error: timeline.ErrNotFound if absent, timeline.ErrTypeMismatch if
//     the channel holds a different value type
func ParameterOf[T any](l *Layer, name string) (*Parameter[T], error) {
	ch, ok := l.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in animation layer %q", timeline.ErrNotFound, name, l.name)
	}
	typed, ok := ch.(*Parameter[T])
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q in animation layer %q is not a %v channel",
			timeline.ErrTypeMismatch, name, l.name, reflect.TypeFor[T]())
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
//   - *Parameter[T]: the typed sampler, or nil
//   - bool: false if absent or of a different value type
func TryParameterOf[T any](l *Layer, name string) (*Parameter[T], bool) {
	ch, ok := l.channels[name]
	if !ok {
		return nil, false
	}
	typed, ok := ch.(*Parameter[T])
	return typed, ok
}
