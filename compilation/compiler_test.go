package compilation

import (
	"context"
	"testing"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVersionManager is a platforms.VersionManager which records installs instead of running solc-select.
type fakeVersionManager struct {
	available []string
	installed []string
	listErr   error
}

func (f *fakeVersionManager) AvailableVersions(ctx context.Context) ([]*semver.Version, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	versions := make([]*semver.Version, 0, len(f.available))
	for _, v := range f.available {
		version, err := semver.NewVersion(v)
		if err != nil {
			return nil, err
		}
		versions = append(versions, version)
	}
	return versions, nil
}

func (f *fakeVersionManager) Install(ctx context.Context, version *semver.Version) error {
	f.installed = append(f.installed, version.String())
	return nil
}

// TestResolveCompilerVersionLatest ensures the newest available version is picked when none is requested, comparing
// versions semantically rather than lexically.
func TestResolveCompilerVersionLatest(t *testing.T) {
	manager := &fakeVersionManager{available: []string{"0.8.9", "0.4.26", "0.8.17", "0.8.10"}}

	version, err := ResolveCompilerVersion(context.Background(), manager, "")
	require.NoError(t, err)
	assert.EqualValues(t, "0.8.17", version.String())
	assert.EqualValues(t, []string{"0.8.17"}, manager.installed)
}

// TestResolveCompilerVersionRequested ensures a requested version wins over the available list.
func TestResolveCompilerVersionRequested(t *testing.T) {
	manager := &fakeVersionManager{available: []string{"0.8.20"}}

	version, err := ResolveCompilerVersion(context.Background(), manager, "0.8.17")
	require.NoError(t, err)
	assert.EqualValues(t, "0.8.17", version.String())
	assert.EqualValues(t, []string{"0.8.17"}, manager.installed)
}

// TestResolveCompilerVersionErrors covers invalid requests and toolchain failures.
func TestResolveCompilerVersionErrors(t *testing.T) {
	// Invalid requested version
	_, err := ResolveCompilerVersion(context.Background(), &fakeVersionManager{}, "latest-please")
	assert.Error(t, err)

	// No versions available
	_, err = ResolveCompilerVersion(context.Background(), &fakeVersionManager{}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCompilerVersions))

	// Listing fails
	listErr := errors.New("solc-select exploded")
	_, err = ResolveCompilerVersion(context.Background(), &fakeVersionManager{listErr: listErr}, "")
	assert.True(t, errors.Is(err, listErr))
}
