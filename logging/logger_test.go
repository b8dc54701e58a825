package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddAndRemoveWriter will test the Logger.AddWriter and Logger.RemoveWriter functions to ensure that they work as
// expected.
func TestAddAndRemoveWriter(t *testing.T) {
	// Create a base logger
	logger := NewLogger(zerolog.InfoLevel)

	// Add three types of writers
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// We should expect the underlying data structures are correctly updated
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Try to add duplicate writers
	logger.AddWriter(os.Stdout, UNSTRUCTURED, true)
	logger.AddWriter(os.Stderr, UNSTRUCTURED, false)
	logger.AddWriter(os.Stdin, STRUCTURED, false)

	// Ensure that the lengths of the lists have not changed
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))
	assert.Equal(t, 1, len(logger.unstructuredWriters))
	assert.Equal(t, 1, len(logger.structuredWriters))

	// Remove each writer
	logger.RemoveWriter(os.Stdout, UNSTRUCTURED, true)
	logger.RemoveWriter(os.Stderr, UNSTRUCTURED, false)
	logger.RemoveWriter(os.Stdin, STRUCTURED, false)

	assert.Equal(t, 0, len(logger.unstructuredColorWriters))
	assert.Equal(t, 0, len(logger.unstructuredWriters))
	assert.Equal(t, 0, len(logger.structuredWriters))
}

// TestStructuredOutput ensures structured writers receive JSON events carrying sub-logger context and errors.
func TestStructuredOutput(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, STRUCTURED, false)

	subLogger := logger.NewSubLogger("module", GENERATOR_SERVICE)
	subLogger.Warn("could not ", colors.Bold, "emit", errors.New("boom"))
	subLogger.Debug("filtered out")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.EqualValues(t, "warn", event["level"])
	assert.EqualValues(t, "could not emit", event["message"])
	assert.EqualValues(t, GENERATOR_SERVICE, event["module"])
	assert.EqualValues(t, "boom", event["error"])
}

// TestDisabledColors verifies the behavior of the unstructured colored logger when colors are disabled, ensuring
// that it does not output colors when the color feature is turned off.
func TestDisabledColors(t *testing.T) {
	defer colors.EnableColor()

	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, true)
	assert.Equal(t, 1, len(logger.unstructuredColorWriters))

	// Disable colors and log msg
	colors.DisableColor()
	logger.Info("foo")

	// Ensure that msg doesn't include colors afterwards
	assert.Contains(t, buf.String(), colors.LEFT_ARROW+" foo")
	assert.NotContains(t, buf.String(), "\x1b[")
}

// TestLogBuffer ensures a buffer is flattened into the message it is logged with.
func TestLogBuffer(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, false)

	logBuffer := NewLogBuffer()
	logBuffer.Append("wrote ", 2, " modules")
	assert.EqualValues(t, "wrote 2 modules", logBuffer.String())

	logger.Info(logBuffer)
	assert.Contains(t, buf.String(), "wrote 2 modules")
}

// TestSetLevel ensures a level change applies to existing writers.
func TestSetLevel(t *testing.T) {
	logger := NewLogger(zerolog.InfoLevel)
	var buf bytes.Buffer
	logger.AddWriter(&buf, UNSTRUCTURED, false)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(zerolog.DebugLevel)
	assert.Equal(t, zerolog.DebugLevel, logger.Level())
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
