//go:build !windows
// +build !windows

package colors

// EnableColor turns on colorization. Non-windows terminals are assumed to support ANSI escape codes.
func EnableColor() {
	enabled = true
}
