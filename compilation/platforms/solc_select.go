package platforms

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"regexp"

	"github.com/HampterPW/Crypted/utils"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// solcSelectVersionExp matches a bare version line in solc-select's output.
var solcSelectVersionExp = regexp.MustCompile(`^\s*(\d+\.\d+\.\d+)\s*(\(current.*\))?\s*$`)

// SolcSelect is a VersionManager backed by the solc-select tool.
type SolcSelect struct {
	// Path describes the solc-select executable to invoke. If empty, "solc-select" is resolved from PATH.
	Path string
}

// NewSolcSelect returns a SolcSelect which resolves solc-select from PATH.
func NewSolcSelect() *SolcSelect {
	return &SolcSelect{}
}

// executable returns the solc-select executable to invoke.
func (s *SolcSelect) executable() string {
	if s.Path != "" {
		return s.Path
	}
	return "solc-select"
}

// AvailableVersions runs "solc-select install" without a version, which lists every installable solc version.
func (s *SolcSelect) AvailableVersions(ctx context.Context) ([]*semver.Version, error) {
	cmd := exec.CommandContext(ctx, s.executable(), "install")
	stdout, _, combined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return nil, errors.Wrapf(ErrToolchainFailed, "error while listing solc versions: %v\n\nCommand Output:\n%s", err, string(combined))
	}
	return ParseSolcSelectVersions(stdout)
}

// Install runs "solc-select install <version>".
func (s *SolcSelect) Install(ctx context.Context, version *semver.Version) error {
	cmd := exec.CommandContext(ctx, s.executable(), "install", version.String())
	_, _, combined, err := utils.RunCommandWithOutputAndError(cmd)
	if err != nil {
		return errors.Wrapf(ErrToolchainFailed, "error while installing solc %s: %v\n\nCommand Output:\n%s", version, err, string(combined))
	}
	return nil
}

// ParseSolcSelectVersions parses the versions listed one per line in solc-select output. Lines which are not a version
// (headers, notices) are skipped.
func ParseSolcSelectVersions(output []byte) ([]*semver.Version, error) {
	versions := make([]*semver.Version, 0)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		match := solcSelectVersionExp.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		version, err := semver.NewVersion(match[1])
		if err != nil {
			return nil, errors.WithStack(err)
		}
		versions = append(versions, version)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return versions, nil
}
