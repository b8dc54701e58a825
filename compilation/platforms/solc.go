package platforms

import (
	"context"
	"os"
	"os/exec"
	"regexp"

	"github.com/HampterPW/Crypted/compilation/types"
	"github.com/HampterPW/Crypted/utils"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// SolcOutputOptions are the combined-json outputs requested from solc: interface descriptor, deployment bytecode and
// runtime bytecode.
const SolcOutputOptions = "abi,bin,bin-runtime"

// SolcVersionEnvironmentVariable is read by the solc-select shim to pick the solc version for a single invocation.
const SolcVersionEnvironmentVariable = "SOLC_VERSION"

// solcVersionExp matches the version number in "solc --version" output.
var solcVersionExp = regexp.MustCompile(`\d+\.\d+\.\d+`)

// SolcCompilationConfig describes the configuration of the solc compilation platform.
type SolcCompilationConfig struct {
	// SolcPath describes the solc executable to invoke. If empty, "solc" is resolved from PATH.
	SolcPath string `json:"solcPath"`

	// Args describes additional arguments passed to solc, e.g. remappings or optimizer settings.
	Args []string `json:"args,omitempty"`
}

// NewSolcCompilationConfig returns a SolcCompilationConfig with default values.
func NewSolcCompilationConfig() *SolcCompilationConfig {
	return &SolcCompilationConfig{
		SolcPath: "",
		Args:     []string{},
	}
}

// Platform returns the identifier of the solc compilation platform.
func (s *SolcCompilationConfig) Platform() string {
	return "solc"
}

// executable returns the solc executable to invoke.
func (s *SolcCompilationConfig) executable() string {
	if s.SolcPath != "" {
		return s.SolcPath
	}
	return "solc"
}

// Compile compiles the target with solc's combined JSON output. The compiler version is pinned through the
// SOLC_VERSION environment variable, which the solc-select shim honors.
func (s *SolcCompilationConfig) Compile(ctx context.Context, target string, version *semver.Version) (*types.Compilation, error) {
	// Create our command
	args := append([]string{"--combined-json", SolcOutputOptions}, s.Args...)
	args = append(args, target)
	cmd := exec.CommandContext(ctx, s.executable(), args...)
	cmd.Env = append(os.Environ(), SolcVersionEnvironmentVariable+"="+version.String())

	// Execute it, any failure aborts
	cmdStdout, _, cmdCombined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return nil, errors.Wrapf(ErrCompilationFailed, "error while executing solc on %s: %v\n\nCommand Output:\n%s", target, err, string(cmdCombined))
	}

	// Our compilation succeeded, load the JSON
	return types.NewCompilationFromCombinedJSON(target, version.String(), cmdStdout)
}

// PinnedVersion returns the version of the configured solc binary. Returns nil if no binary was configured, in which
// case the solc resolved from PATH picks the version for every invocation.
func (s *SolcCompilationConfig) PinnedVersion(ctx context.Context) (*semver.Version, error) {
	if s.SolcPath == "" {
		return nil, nil
	}
	return GetSolcVersion(ctx, s.SolcPath)
}

// GetSolcVersion runs "<executable> --version" and parses the version of the solc binary.
func GetSolcVersion(ctx context.Context, executable string) (*semver.Version, error) {
	out, err := exec.CommandContext(ctx, executable, "--version").CombinedOutput()
	if err != nil {
		return nil, errors.Wrapf(ErrToolchainFailed, "error while executing %s:\nOUTPUT:\n%s\nERROR: %v", executable, string(out), err)
	}

	// Parse the compiler version out of the output
	versionStr := solcVersionExp.FindString(string(out))
	if versionStr == "" {
		return nil, errors.Errorf("could not parse solc version using '%s --version'", executable)
	}
	return semver.NewVersion(versionStr)
}
