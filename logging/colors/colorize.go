package colors

import "fmt"

// enabled reports whether Colorize emits ANSI escape codes.
var enabled = true

// DisableColor turns off colorization, e.g. when the user passes --no-color or output is not a terminal.
func DisableColor() {
	enabled = false
}

// Colorize returns the string s wrapped in ANSI code c, or s unchanged when colors are disabled or unsupported.
func Colorize(s any, c Color) string {
	if !enabled {
		return fmt.Sprintf("%v", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}
