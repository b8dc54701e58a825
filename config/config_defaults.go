package config

import (
	"github.com/HampterPW/Crypted/compilation"
	"github.com/rs/zerolog"
)

// DefaultCompilationPlatform describes the compilation platform used when none is configured.
const DefaultCompilationPlatform = "solc"

// GetDefaultProjectConfig obtains a default configuration for a project: every source file in the working directory
// is compiled with solc and the generated modules are written to ./contract_data, then formatted with gofmt.
func GetDefaultProjectConfig() (*ProjectConfig, error) {
	compilationConfig, err := compilation.NewCompilationConfig(DefaultCompilationPlatform)
	if err != nil {
		return nil, err
	}

	projectConfig := &ProjectConfig{
		SolcVersion:     "",
		Filename:        "",
		SourceDirectory: ".",
		SourceExtension: ".sol",
		Output: OutputConfig{
			Directory:    "contract_data",
			PackageName:  "contractdata",
			SourcePrefix: "contract_sources",
		},
		Compilation: compilationConfig,
		Formatter: FormatterConfig{
			Enabled: true,
			Command: []string{"gofmt", "-w"},
		},
		Logging: LoggingConfig{
			Level:        zerolog.InfoLevel,
			NoColor:      false,
			LogDirectory: "",
		},
	}

	return projectConfig, nil
}
