package utils

import (
	"bytes"
	"io"
	"os/exec"
	"sync"
)

// RunCommandWithOutputAndError runs a given exec.Cmd and returns the stdout, stderr, and
// combined output as bytes, or an error if one occurred.
func RunCommandWithOutputAndError(command *exec.Cmd) ([]byte, []byte, []byte, error) {
	// Create our buffers to capture output and errors.
	var bStdout, bStderr, bCombined bytes.Buffer

	// Create a synchronized writer over bCombined to avoid data race.
	var combinedWriter io.Writer = &synchronizedWriter{writer: &bCombined}

	// Create multi writers to capture output into individual and combined buffers
	command.Stdout = io.MultiWriter(&bStdout, combinedWriter)
	command.Stderr = io.MultiWriter(&bStderr, combinedWriter)

	// Execute the command
	err := command.Run()
	return bStdout.Bytes(), bStderr.Bytes(), bCombined.Bytes(), err
}

// synchronizedWriter wraps an io.Writer to avoid a data race when writing.
type synchronizedWriter struct {
	writer io.Writer
	mutex  sync.Mutex
}

func (s *synchronizedWriter) Write(p []byte) (n int, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writer.Write(p)
}
