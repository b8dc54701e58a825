package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestColorize checks escape codes are applied only while colors are enabled.
func TestColorize(t *testing.T) {
	defer func(previous bool) { enabled = previous }(enabled)

	enabled = true
	assert.EqualValues(t, "\x1b[31mfoo\x1b[0m", Red("foo"))
	assert.EqualValues(t, "\x1b[1m\x1b[32mfoo\x1b[0m\x1b[0m", GreenBold("foo"))

	DisableColor()
	assert.EqualValues(t, "foo", Red("foo"))
	assert.EqualValues(t, "7", Bold(7))
}
