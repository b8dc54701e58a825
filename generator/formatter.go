package generator

import (
	"context"
	"os/exec"

	"github.com/HampterPW/Crypted/utils"
	"github.com/pkg/errors"
)

// ErrFormatterFailed indicates the formatter exited with an error.
var ErrFormatterFailed = errors.New("formatter failed")

// Formatter describes a source formatting pass run over the output directory once all modules were written.
type Formatter interface {
	// Format formats every generated module under the provided directory, in place.
	Format(ctx context.Context, directory string) error
}

// CommandFormatter is a Formatter which runs an external command, e.g. "gofmt -w", with the directory appended as its
// last argument.
type CommandFormatter struct {
	// Command describes the executable and its leading arguments.
	Command []string
}

// NewCommandFormatter returns a CommandFormatter running the provided command.
func NewCommandFormatter(command []string) *CommandFormatter {
	return &CommandFormatter{Command: command}
}

// Format runs the formatter command over the provided directory.
func (f *CommandFormatter) Format(ctx context.Context, directory string) error {
	if len(f.Command) == 0 {
		return errors.Wrapf(ErrFormatterFailed, "no formatter command was provided")
	}

	args := append(append([]string{}, f.Command[1:]...), directory)
	cmd := exec.CommandContext(ctx, f.Command[0], args...)
	_, _, combined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return errors.Wrapf(ErrFormatterFailed, "error while executing %s on %s: %v\n\nCommand Output:\n%s", f.Command[0], directory, err, string(combined))
	}
	return nil
}
