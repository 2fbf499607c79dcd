// package window provides the toolkit's platform windowing and input
// abstraction. It wraps a GLFW window behind a common interface and
// bridges to the graphics device layer through a wgpu surface descriptor.
package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides platform windowing and input event handling.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll delta (positive = up)
	SetScrollCallback(callback func(delta float32))

	// SetMouseMoveCallback sets the callback for mouse movement.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position
	SetMouseMoveCallback(callback func(x, y int32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for
	// creating a WebGPU surface for this window. The descriptor is
	// platform-appropriate (Windows HWND, X11, Wayland, macOS Metal).
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the descriptor, or nil if the window is
	//     not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if running, false once closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the window message loop, calling the update
	// callback each iteration. Blocks until the window is closed.
	ProcessMessages()

	// Width returns the current client area width in pixels.
	Width() int

	// Height returns the current client area height in pixels.
	Height() int
}

// toolkitWindow is the implementation of the Window interface.
type toolkitWindow struct {
	title  string
	width  int
	height int

	platform *glfwState

	onUpdate    func()
	onResize    func(width, height int)
	onKeyDown   func(keyCode uint32)
	onKeyUp     func(keyCode uint32)
	onScroll    func(delta float32)
	onMouseMove func(x, y int32)
}

var _ Window = &toolkitWindow{}

// WindowBuilderOption is a functional option for configuring a window.
type WindowBuilderOption func(w *toolkitWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *toolkitWindow) {
		w.title = title
	}
}

// WithSize sets the initial window client area size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *toolkitWindow) {
		w.width = width
		w.height = height
	}
}

// NewWindow creates a window with the specified options. Defaults are
// applied first, then each option in order. Panics if the platform window
// cannot be created; a toolkit application cannot run without one.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &toolkitWindow{
		title:  "medley",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *toolkitWindow) SetUpdateCallback(callback func()) { w.onUpdate = callback }

func (w *toolkitWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }

func (w *toolkitWindow) SetKeyDownCallback(callback func(keyCode uint32)) { w.onKeyDown = callback }

func (w *toolkitWindow) SetKeyUpCallback(callback func(keyCode uint32)) { w.onKeyUp = callback }

func (w *toolkitWindow) SetScrollCallback(callback func(delta float32)) { w.onScroll = callback }

func (w *toolkitWindow) SetMouseMoveCallback(callback func(x, y int32)) { w.onMouseMove = callback }

func (w *toolkitWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformSurfaceDescriptor(w)
}

func (w *toolkitWindow) IsRunning() bool {
	return platformIsRunning(w)
}

func (w *toolkitWindow) Close() error {
	return platformClose(w)
}

func (w *toolkitWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformPollEvents(w) {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *toolkitWindow) Width() int { return w.width }

func (w *toolkitWindow) Height() int { return w.height }
