package compilation

import (
	"context"
	"sort"

	"github.com/HampterPW/Crypted/compilation/platforms"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
)

// ErrNoCompilerVersions indicates the toolchain reported no installable compiler versions.
var ErrNoCompilerVersions = errors.New("no compiler versions are available")

// ResolveCompilerVersion selects the compiler version used for an entire generation run and installs it. The requested
// version is used if one is provided, otherwise the most recent version the toolchain reports as available is used.
func ResolveCompilerVersion(ctx context.Context, manager platforms.VersionManager, requested string) (*semver.Version, error) {
	var version *semver.Version
	if requested != "" {
		// Use the version we were asked for
		parsed, err := semver.NewVersion(requested)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid compiler version '%s'", requested)
		}
		version = parsed
	} else {
		// Otherwise pick the latest available version
		available, err := manager.AvailableVersions(ctx)
		if err != nil {
			return nil, err
		}
		if len(available) == 0 {
			return nil, errors.WithStack(ErrNoCompilerVersions)
		}
		sort.Sort(semver.Collection(available))
		version = available[len(available)-1]
	}

	// Make sure the version is installed before anything is compiled with it
	if err := manager.Install(ctx, version); err != nil {
		return nil, err
	}
	return version, nil
}
