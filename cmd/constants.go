package cmd

import "github.com/HampterPW/Crypted/config"

// DefaultProjectConfigFilename describes the default config filename for a given project folder.
const DefaultProjectConfigFilename = config.DefaultProjectConfigFilename

// DefaultCompilationPlatform describes the default compilation platform to use if one is not provided
const DefaultCompilationPlatform = config.DefaultCompilationPlatform
