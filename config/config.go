package config

import (
	"encoding/json"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/HampterPW/Crypted/compilation"
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultProjectConfigFilename describes the default config filename for a given project folder.
const DefaultProjectConfigFilename = "contractgen.json"

// ProjectConfig describes the configuration used to generate contract-data modules for a project.
type ProjectConfig struct {
	// SolcVersion describes the compiler version to compile with. If empty, the latest version the version manager
	// offers is used.
	SolcVersion string `json:"solcVersion"`

	// Filename describes a single source file within SourceDirectory to process. If empty, every source file in
	// SourceDirectory is processed.
	Filename string `json:"filename"`

	// SourceDirectory describes the directory holding the source files.
	SourceDirectory string `json:"sourceDirectory"`

	// SourceExtension describes the file extension that identifies source files, including the leading dot.
	SourceExtension string `json:"sourceExtension"`

	// Output describes where and how generated modules are written.
	Output OutputConfig `json:"output"`

	// Compilation describes the configuration used to compile each source file.
	Compilation *compilation.CompilationConfig `json:"compilation"`

	// Formatter describes the formatter run over the output directory after generation.
	Formatter FormatterConfig `json:"formatter"`

	// Logging describes the configuration used for logging.
	Logging LoggingConfig `json:"logging"`
}

// OutputConfig describes the configuration options for generated modules.
type OutputConfig struct {
	// Directory describes the directory generated modules are written to.
	Directory string `json:"directory"`

	// PackageName describes the Go package name of generated modules.
	PackageName string `json:"packageName"`

	// SourcePrefix describes the directory prepended to source file names in the source attribution comments of
	// generated modules.
	SourcePrefix string `json:"sourcePrefix"`
}

// FormatterConfig describes the configuration options for the formatter.
type FormatterConfig struct {
	// Enabled describes whether the formatter runs after generation.
	Enabled bool `json:"enabled"`

	// Command describes the formatter executable and its arguments. The output directory is appended as the last
	// argument.
	Command []string `json:"command"`
}

// LoggingConfig describes the configuration options used for logging
type LoggingConfig struct {
	// Level describes whether logs of certain severity levels (eg info, warning, etc.) will be emitted or discarded.
	// Increasing level values represent more severe logs
	Level zerolog.Level `json:"level"`

	// NoColor describes whether console output should be left uncolored.
	NoColor bool `json:"noColor"`

	// LogDirectory describes the directory where structured log _files_ will be outputted. If the string is empty, then
	// no log files are kept
	LogDirectory string `json:"logDirectory"`
}

// ReadProjectConfigFromFile reads a JSON-serialized ProjectConfig from a provided file path. Fields missing from the
// file keep their default values.
// Returns the ProjectConfig if it succeeds, or an error if one occurs.
func ReadProjectConfigFromFile(path string) (*ProjectConfig, error) {
	// Read our project configuration file data
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Parse the project configuration over the defaults
	projectConfig, err := GetDefaultProjectConfig()
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(b, projectConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return projectConfig, nil
}

// WriteToFile writes the ProjectConfig to a provided file path in a JSON-serialized format.
// Returns an error if one occurs.
func (p *ProjectConfig) WriteToFile(path string) error {
	// Serialize the configuration
	b, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}

	// Save it to the provided output path and return the result
	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// RequestedSolcVersion parses SolcVersion. Returns nil if no version was requested.
func (p *ProjectConfig) RequestedSolcVersion() (*semver.Version, error) {
	if p.SolcVersion == "" {
		return nil, nil
	}
	version, err := semver.NewVersion(p.SolcVersion)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid solc version '%s'", p.SolcVersion)
	}
	return version, nil
}

// Validate validates that the ProjectConfig meets certain requirements.
// Returns an error if one occurs.
func (p *ProjectConfig) Validate() error {
	// Verify the requested compiler version parses
	if _, err := p.RequestedSolcVersion(); err != nil {
		return err
	}

	// Verify source file selection
	if p.SourceDirectory == "" {
		return errors.Errorf("source directory must be provided")
	}
	if !strings.HasPrefix(p.SourceExtension, ".") || len(p.SourceExtension) < 2 {
		return errors.Errorf("source extension '%s' must start with a dot", p.SourceExtension)
	}
	if p.Filename != "" && filepath.Base(p.Filename) != p.Filename {
		return errors.Errorf("filename '%s' must name a file within the source directory, not a path", p.Filename)
	}

	// Verify the output settings produce valid Go
	if p.Output.Directory == "" {
		return errors.Errorf("output directory must be provided")
	}
	if !token.IsIdentifier(p.Output.PackageName) || token.Lookup(p.Output.PackageName).IsKeyword() {
		return errors.Errorf("output package name '%s' is not a valid Go package name", p.Output.PackageName)
	}

	// Verify the compilation platform
	if p.Compilation == nil {
		return errors.Errorf("compilation config must be provided")
	}
	if _, err := p.Compilation.GetPlatformConfig(); err != nil {
		return err
	}

	// Verify the formatter can be invoked
	if p.Formatter.Enabled && len(p.Formatter.Command) == 0 {
		return errors.Errorf("formatter command must be provided while the formatter is enabled")
	}
	return nil
}
