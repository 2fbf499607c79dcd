// package engine is the toolkit's entry point: it owns the window, a
// registry of skeletal animations, and the fixed-rate tick loop that
// advances them.
package engine

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/medley-go/engine/animation"
	"github.com/Carmen-Shannon/medley-go/engine/profiler"
	"github.com/Carmen-Shannon/medley-go/engine/window"
)

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	mu         sync.RWMutex
	animations map[string]*animation.DeformerAnimation

	// tickPool runs the per-animation Update calls. Each DeformerAnimation
	// is advanced by exactly one worker per tick, preserving the core's
	// caller-serialized Update contract while independent animations
	// proceed in parallel.
	tickPool    worker.DynamicWorkerPool
	tickWorkers int
}

// Engine is the main entry point for the toolkit. It orchestrates the
// tick loop and window management, and advances every registered
// DeformerAnimation once per tick.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// AddAnimation registers a skeletal animation under a name, replacing
	// any previous animation with the same name. Registered animations are
	// advanced every engine tick.
	//
	// Parameters:
	//   - name: the registry key
	//   - da: the animation to advance each tick
	AddAnimation(name string, da *animation.DeformerAnimation)

	// RemoveAnimation unregisters the animation with the given name.
	//
	// Parameters:
	//   - name: the registry key
	RemoveAnimation(name string)

	// Animation retrieves a registered animation by name.
	//
	// Parameters:
	//   - name: the registry key
	//
	// Returns:
	//   - *animation.DeformerAnimation: the animation, or nil if not found
	Animation(name string) *animation.DeformerAnimation

	// EnableProfiler enables tick-rate and memory telemetry to the log.
	EnableProfiler()

	// DisableProfiler disables telemetry output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second. If the
	// engine is running the change takes effect immediately.
	//
	// Parameters:
	//   - tps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(tps float64)

	// SetTickCallback registers the function called each engine tick,
	// after all registered animations have been advanced. Use this for
	// input handling and for staging deformer output to the renderer.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run starts the tick loop and blocks in the window message loop until
	// the window closes. With no window, Run blocks until Quit.
	Run()

	// Quit signals the engine loop to stop. Safe to call multiple times.
	Quit()
}

// NewEngine creates an Engine with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		animations:      make(map[string]*animation.DeformerAnimation),
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
		tickWorkers:     max(runtime.NumCPU()-1, 1),
	}

	for _, opt := range options {
		opt(e)
	}

	// Queue size of 64 accommodates typical animation counts with headroom.
	e.tickPool = worker.NewDynamicWorkerPool(e.tickWorkers, 64, 1*time.Second)

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) AddAnimation(name string, da *animation.DeformerAnimation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.animations[name] = da
}

func (e *engine) RemoveAnimation(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.animations, name)
}

func (e *engine) Animation(name string) *animation.DeformerAnimation {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.animations[name]
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(tps float64) {
	if tps <= 0 {
		tps = 60
	}
	newRate := time.Second / time.Duration(tps)

	if e.running {
		// Non-blocking send; replace any pending update.
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Run() {
	e.running = true
	e.wg.Add(2)
	go e.handleTicks()
	go e.handleQuit()

	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel exactly once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handleTicks runs the fixed-rate tick loop in its own goroutine. Each
// tick advances every registered animation through the worker pool, then
// fires the tick callback. Listens for dynamic rate changes and exits when
// the quit channel closes.
func (e *engine) handleTicks() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			delta := now.Sub(lastTick)
			lastTick = now

			e.advanceAnimations(delta)

			if e.tickCallback != nil {
				e.tickCallback(float32(delta.Seconds()))
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// advanceAnimations submits one Update task per registered animation and
// waits for all of them. A WaitGroup provides the per-tick barrier; the
// pool's workers persist across ticks.
func (e *engine) advanceAnimations(delta time.Duration) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var wg sync.WaitGroup
	taskID := 0
	for name, da := range e.animations {
		wg.Add(1)
		daCap := da
		nameCap := name
		e.tickPool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				if err := daCap.Update(delta); err != nil {
					log.Printf("animation %q update failed: %v", nameCap, err)
				}
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
}

// handleQuit blocks until the quit channel is closed.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}
