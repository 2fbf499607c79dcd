package engine

import (
	"time"

	"github.com/Carmen-Shannon/medley-go/engine/animation"
	"github.com/Carmen-Shannon/medley-go/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables tick-rate and memory telemetry
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in ticks per second.
// Registered animations are advanced and the tick callback fired at this rate.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - tps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(tps float64) EngineBuilderOption {
	return func(e *engine) {
		if tps <= 0 {
			tps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(tps)
	}
}

// WithWindow sets a custom configured window for the engine to use. Without
// a window the engine runs headless and Run blocks until Quit is called.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithAnimation registers a skeletal animation under the given name during
// engine construction. Registered animations are advanced every tick.
//
// Parameters:
//   - name: the registry key
//   - da: the animation to advance each tick
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAnimation(name string, da *animation.DeformerAnimation) EngineBuilderOption {
	return func(e *engine) {
		e.animations[name] = da
	}
}

// WithTickWorkers overrides the number of pool workers advancing animations
// each tick. Defaults to NumCPU - 1, minimum 1.
//
// Parameters:
//   - workers: the worker count (values < 1 are clamped to 1)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickWorkers(workers int) EngineBuilderOption {
	return func(e *engine) {
		if workers < 1 {
			workers = 1
		}
		e.tickWorkers = workers
	}
}
