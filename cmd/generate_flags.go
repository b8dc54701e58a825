package cmd

import (
	"fmt"

	"github.com/HampterPW/Crypted/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// addGenerateFlags adds the various flags for the generate command
func addGenerateFlags(cmd *cobra.Command) error {
	// Get the default project config and throw an error if we cant
	defaultConfig, err := config.GetDefaultProjectConfig()
	if err != nil {
		return err
	}

	// Prevent alphabetical sorting of usage message
	cmd.Flags().SortFlags = false

	// Config file
	cmd.Flags().String("config", "", "path to config file")

	// Compiler version
	cmd.Flags().StringP("version", "v", "",
		"solc version to compile with (unless a config file is provided, default is the latest version solc-select offers)")

	// Single file
	cmd.Flags().StringP("filename", "f", "",
		fmt.Sprintf("single source file to generate contract data for (unless a config file is provided, default is every %s file in %q)",
			defaultConfig.SourceExtension, defaultConfig.SourceDirectory))

	// Output directory
	cmd.Flags().String("out-dir", "",
		fmt.Sprintf("directory generated modules are written to (unless a config file is provided, default is %q)", defaultConfig.Output.Directory))

	// Formatter
	cmd.Flags().Bool("no-format", false, "do not run the formatter over the output directory")

	// Logging
	cmd.Flags().Bool("no-color", false, "disable colored terminal output")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return nil
}

// updateProjectConfigWithGenerateFlags will update the given projectConfig with any CLI arguments that were provided
// to the generate command
func updateProjectConfigWithGenerateFlags(cmd *cobra.Command, projectConfig *config.ProjectConfig) error {
	var err error

	// Update the compiler version
	if cmd.Flags().Changed("version") {
		projectConfig.SolcVersion, err = cmd.Flags().GetString("version")
		if err != nil {
			return err
		}
	}

	// Update the single file
	if cmd.Flags().Changed("filename") {
		projectConfig.Filename, err = cmd.Flags().GetString("filename")
		if err != nil {
			return err
		}
	}

	// Update the output directory
	if cmd.Flags().Changed("out-dir") {
		projectConfig.Output.Directory, err = cmd.Flags().GetString("out-dir")
		if err != nil {
			return err
		}
	}

	// Disable the formatter
	if cmd.Flags().Changed("no-format") {
		noFormat, err := cmd.Flags().GetBool("no-format")
		if err != nil {
			return err
		}
		projectConfig.Formatter.Enabled = !noFormat
	}

	// Update logging
	if cmd.Flags().Changed("no-color") {
		projectConfig.Logging.NoColor, err = cmd.Flags().GetBool("no-color")
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("debug") {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			projectConfig.Logging.Level = zerolog.DebugLevel
		}
	}
	return nil
}
