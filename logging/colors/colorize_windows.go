//go:build windows
// +build windows

package colors

import (
	"golang.org/x/sys/windows"
)

// EnableColor asks the console to process ANSI escape codes on stdout. Colorization stays off if it cannot.
func EnableColor() {
	var mode uint32
	stdout := windows.Handle(windows.Stdout)
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		enabled = false
		return
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0 {
		if err := windows.SetConsoleMode(stdout, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			enabled = false
			return
		}
	}
	enabled = true
}
