package compilation

import (
	"fmt"

	"github.com/HampterPW/Crypted/compilation/platforms"
	"golang.org/x/exp/slices"
)

// defaultPlatformConfigGenerator is a mapping of platform identifier to generator functions which can be used to create
// a default configuration for the given platform. Each platform which provides a generator in this mapping will be
// considered a supported compilation platform for a CompilationConfig. Items are populated in the init method.
var defaultPlatformConfigGenerator map[string]func() platforms.PlatformConfig

// init is called once per inclusion of a package. This method is used on startup to populate
// defaultPlatformConfigGenerator and add supported platforms.
func init() {
	// Define a list of default platform config generators
	generators := []func() platforms.PlatformConfig{
		func() platforms.PlatformConfig { return platforms.NewSolcCompilationConfig() },
		func() platforms.PlatformConfig { return platforms.NewCryticCompileCompilationConfig() },
	}

	defaultPlatformConfigGenerator = make(map[string]func() platforms.PlatformConfig)
	for _, generator := range generators {
		platformId := generator().Platform()

		// Each platform should have a unique identifier.
		if _, platformIdExists := defaultPlatformConfigGenerator[platformId]; platformIdExists {
			panic(fmt.Errorf("the compilation platform '%s' is registered with more than one provider", platformId))
		}
		defaultPlatformConfigGenerator[platformId] = generator
	}
}

// GetSupportedCompilationPlatforms obtains a sorted list of the platform identifiers supported by this package.
func GetSupportedCompilationPlatforms() []string {
	platformIds := make([]string, 0, len(defaultPlatformConfigGenerator))
	for k := range defaultPlatformConfigGenerator {
		platformIds = append(platformIds, k)
	}
	slices.Sort(platformIds)
	return platformIds
}

// IsSupportedCompilationPlatform returns a boolean status indicating if a platform identifier is supported within this
// package.
func IsSupportedCompilationPlatform(platform string) bool {
	_, ok := defaultPlatformConfigGenerator[platform]
	return ok
}

// GetDefaultPlatformConfig obtains a PlatformConfig from the default generator for the provided platform.
func GetDefaultPlatformConfig(platform string) platforms.PlatformConfig {
	return defaultPlatformConfigGenerator[platform]()
}
