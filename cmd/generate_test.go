package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/HampterPW/Crypted/config"
	"github.com/HampterPW/Crypted/generator"
	"github.com/HampterPW/Crypted/logging"
	"github.com/HampterPW/Crypted/utils/testutils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGenerateCmd returns a fresh command carrying the generate flags, parsed from the provided arguments.
func newTestGenerateCmd(t *testing.T, args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "generate"}
	require.NoError(t, addGenerateFlags(cmd))
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

// TestUpdateProjectConfigWithGenerateFlags ensures flags override the configuration.
func TestUpdateProjectConfigWithGenerateFlags(t *testing.T) {
	projectConfig, err := config.GetDefaultProjectConfig()
	require.NoError(t, err)

	cmd := newTestGenerateCmd(t, "-v", "0.8.17", "-f", "OffchainLookup.sol", "--out-dir", "generated", "--no-format", "--no-color", "--debug")
	require.NoError(t, updateProjectConfigWithGenerateFlags(cmd, projectConfig))

	assert.EqualValues(t, "0.8.17", projectConfig.SolcVersion)
	assert.EqualValues(t, "OffchainLookup.sol", projectConfig.Filename)
	assert.EqualValues(t, "generated", projectConfig.Output.Directory)
	assert.False(t, projectConfig.Formatter.Enabled)
	assert.True(t, projectConfig.Logging.NoColor)
	assert.Equal(t, zerolog.DebugLevel, projectConfig.Logging.Level)
}

// TestUpdateProjectConfigWithoutGenerateFlags ensures unused flags leave the configuration untouched.
func TestUpdateProjectConfigWithoutGenerateFlags(t *testing.T) {
	projectConfig, err := config.GetDefaultProjectConfig()
	require.NoError(t, err)
	projectConfig.SolcVersion = "0.8.10"

	require.NoError(t, updateProjectConfigWithGenerateFlags(newTestGenerateCmd(t), projectConfig))

	defaultConfig, err := config.GetDefaultProjectConfig()
	require.NoError(t, err)
	assert.EqualValues(t, "0.8.10", projectConfig.SolcVersion)
	assert.EqualValues(t, defaultConfig.Output, projectConfig.Output)
	assert.EqualValues(t, defaultConfig.Formatter, projectConfig.Formatter)
	assert.EqualValues(t, defaultConfig.Logging, projectConfig.Logging)
}

// TestLoadProjectConfig covers reading the default file, falling back to defaults, and a missing --config file.
func TestLoadProjectConfig(t *testing.T) {
	directory := t.TempDir()

	testutils.ExecuteInDirectory(t, directory, func() {
		// Without a config file, the defaults are used
		projectConfig, configPath, err := loadProjectConfig(newTestGenerateCmd(t))
		require.NoError(t, err)
		assert.Empty(t, configPath)
		assert.EqualValues(t, "contract_data", projectConfig.Output.Directory)

		// A config file in the working directory is picked up
		written, err := config.GetDefaultProjectConfig()
		require.NoError(t, err)
		written.SolcVersion = "0.8.17"
		require.NoError(t, written.WriteToFile(DefaultProjectConfigFilename))

		projectConfig, configPath, err = loadProjectConfig(newTestGenerateCmd(t))
		require.NoError(t, err)
		assert.EqualValues(t, DefaultProjectConfigFilename, filepath.Base(configPath))
		assert.EqualValues(t, "0.8.17", projectConfig.SolcVersion)
	})

	// A config file named explicitly must exist
	_, _, err := loadProjectConfig(newTestGenerateCmd(t, "--config", filepath.Join(directory, "missing.json")))
	assert.Error(t, err)
}

// TestNewInitProjectConfig ensures the init command writes a valid configuration for the chosen platform.
func TestNewInitProjectConfig(t *testing.T) {
	cmd := &cobra.Command{Use: "init"}
	require.NoError(t, addInitFlags(cmd))
	require.NoError(t, cmd.Flags().Parse([]string{"--solc-version", "0.8.17", "--source-dir", "contracts"}))

	projectConfig, err := newInitProjectConfig(cmd, []string{"crytic-compile"})
	require.NoError(t, err)
	assert.EqualValues(t, "crytic-compile", projectConfig.Compilation.Platform)
	assert.EqualValues(t, "0.8.17", projectConfig.SolcVersion)
	assert.EqualValues(t, "contracts", projectConfig.SourceDirectory)

	// An invalid version is never written
	cmd = &cobra.Command{Use: "init"}
	require.NoError(t, addInitFlags(cmd))
	require.NoError(t, cmd.Flags().Parse([]string{"--solc-version", "latest"}))
	_, err = newInitProjectConfig(cmd, nil)
	assert.Error(t, err)
}

// TestSetupGlobalLoggerWithLogDirectory ensures a structured log file is created in the log directory.
func TestSetupGlobalLoggerWithLogDirectory(t *testing.T) {
	logDirectory := filepath.Join(t.TempDir(), "logs")
	closeLogFile, err := setupGlobalLogger(config.LoggingConfig{Level: zerolog.InfoLevel, NoColor: true, LogDirectory: logDirectory})
	require.NoError(t, err)
	defer closeLogFile()

	entries, err := os.ReadDir(logDirectory)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^log-\d+\.log$`, entries[0].Name())
}

// TestSetupGlobalLoggerLevel ensures the configured level applies to the command logger too.
func TestSetupGlobalLoggerLevel(t *testing.T) {
	defer cmdLogger.SetLevel(zerolog.InfoLevel)

	closeLogFile, err := setupGlobalLogger(config.LoggingConfig{Level: zerolog.DebugLevel, NoColor: true})
	require.NoError(t, err)
	defer closeLogFile()

	assert.Equal(t, zerolog.DebugLevel, cmdLogger.Level())
	assert.Equal(t, zerolog.DebugLevel, logging.GlobalLogger.Level())
}

// TestGenerateProgress ensures generator events are reported as numbered progress lines.
func TestGenerateProgress(t *testing.T) {
	var buf bytes.Buffer
	cmdLogger.AddWriter(&buf, logging.STRUCTURED, false)
	defer cmdLogger.RemoveWriter(&buf, logging.STRUCTURED, false)

	projectConfig, err := config.GetDefaultProjectConfig()
	require.NoError(t, err)
	gen, err := generator.NewGenerator(projectConfig)
	require.NoError(t, err)

	progress := &generateProgress{}
	progress.subscribe(gen)

	require.NoError(t, gen.Events.RunStarting.Publish(generator.RunStartingEvent{Generator: gen, SourcePaths: []string{"A.sol", "B.sol"}}))
	require.NoError(t, gen.Events.ModuleGenerated.Publish(generator.ModuleGeneratedEvent{
		Generator: gen,
		Module:    generator.GeneratedModule{SourcePath: "A.sol", OutputPath: "contract_data/a.gen.go", Contracts: []string{"A", "AHelper"}},
	}))

	assert.Contains(t, buf.String(), "Generating 2 module(s) into contract_data")
	assert.Contains(t, buf.String(), "[1/2] A.sol -> contract_data/a.gen.go (2 contract(s))")
	assert.EqualValues(t, 1, progress.generated)
}
