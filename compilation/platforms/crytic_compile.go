package platforms

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/HampterPW/Crypted/compilation/types"
	"github.com/HampterPW/Crypted/utils"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// CryticCompileCompilationConfig describes the configuration of the crytic-compile compilation platform. crytic-compile
// is asked to export solc's combined JSON format, which is then parsed like the solc platform's output.
type CryticCompileCompilationConfig struct {
	// Args describes additional arguments passed to crytic-compile.
	Args []string `json:"args,omitempty"`
}

// NewCryticCompileCompilationConfig returns a CryticCompileCompilationConfig with default values.
func NewCryticCompileCompilationConfig() *CryticCompileCompilationConfig {
	return &CryticCompileCompilationConfig{
		Args: []string{},
	}
}

// Platform returns the identifier of the crytic-compile compilation platform.
func (c *CryticCompileCompilationConfig) Platform() string {
	return "crytic-compile"
}

// Compile compiles the target with crytic-compile, selecting the compiler version with solc-select.
func (c *CryticCompileCompilationConfig) Compile(ctx context.Context, target string, version *semver.Version) (*types.Compilation, error) {
	// Export into a scratch directory so nothing is left behind in the source directory
	exportDirectory, err := os.MkdirTemp("", "contractgen-crytic-export")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer os.RemoveAll(exportDirectory)

	// Create our command
	args := []string{target, "--export-format", "solc", "--export-dir", exportDirectory, "--solc-solcs-select", version.String()}
	args = append(args, c.Args...)
	cmd := exec.CommandContext(ctx, "crytic-compile", args...)
	cmd.Env = append(os.Environ(), SolcVersionEnvironmentVariable+"="+version.String())

	_, _, cmdCombined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return nil, errors.Wrapf(ErrCompilationFailed, "error while executing crytic-compile on %s: %v\n\nCommand Output:\n%s", target, err, string(cmdCombined))
	}

	// crytic-compile writes one combined JSON file per compilation unit, we compile a single file so expect one
	matches, err := filepath.Glob(filepath.Join(exportDirectory, "*.json"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(matches) != 1 {
		return nil, errors.Wrapf(ErrCompilationFailed, "expected one crytic-compile export for %s, found %d", target, len(matches))
	}

	b, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return types.NewCompilationFromCombinedJSON(target, version.String(), b)
}
