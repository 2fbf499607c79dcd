package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87 // W key (ASCII)
	KeyA     = 65 // A key (ASCII)
	KeyS     = 83 // S key (ASCII)
	KeyD     = 68 // D key (ASCII)
	KeyB     = 66 // B key (ASCII)
	KeyL     = 76 // L key (ASCII)
	KeyP     = 80 // P key (ASCII)
	KeyR     = 82 // R key (ASCII)
	KeySpace = 32 // Spacebar

	KeyLeft  = 263 // Left arrow
	KeyRight = 262 // Right arrow
	KeyUp    = 265 // Up arrow
	KeyDown  = 264 // Down arrow
)
