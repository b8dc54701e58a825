package platforms

import (
	"context"

	"github.com/HampterPW/Crypted/compilation/types"
	"github.com/Masterminds/semver"
)

// PlatformConfig describes the interface all compilation platform configs must implement.
type PlatformConfig interface {
	// Platform returns the identifier of the compilation platform.
	Platform() string

	// Compile compiles the source file at the provided target path using exactly the provided compiler version,
	// requesting the interface descriptor, deployment bytecode and runtime bytecode outputs.
	Compile(ctx context.Context, target string, version *semver.Version) (*types.Compilation, error)
}

// VersionManager describes a toolchain component which can report and install compiler versions.
type VersionManager interface {
	// AvailableVersions returns every compiler version which can be installed, in no particular order.
	AvailableVersions(ctx context.Context) ([]*semver.Version, error)

	// Install installs the provided compiler version, doing nothing if it is already installed.
	Install(ctx context.Context, version *semver.Version) error
}

// PinnedVersionPlatform is implemented by platforms which can be configured with a fixed compiler binary, whose version
// may differ from the one selected for a run.
type PinnedVersionPlatform interface {
	// PinnedVersion returns the version of the fixed compiler binary, or nil if none is configured.
	PinnedVersion(ctx context.Context) (*semver.Version, error)
}
