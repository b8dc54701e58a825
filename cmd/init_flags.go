package cmd

import (
	"github.com/HampterPW/Crypted/config"
	"github.com/spf13/cobra"
)

// addInitFlags adds the various flags for the init command
func addInitFlags(cmd *cobra.Command) error {
	// Output path for configuration
	cmd.Flags().String("out", "", "output path for the new project configuration file")

	// Compiler version
	cmd.Flags().String("solc-version", "", "solc version to pin in the new project configuration")

	// Source directory
	cmd.Flags().String("source-dir", "", "directory holding the Solidity source files")
	return nil
}

// updateProjectConfigWithInitFlags will update the given projectConfig with any CLI arguments that were provided to the init command
func updateProjectConfigWithInitFlags(cmd *cobra.Command, projectConfig *config.ProjectConfig) error {
	var err error

	// Update the compiler version
	if cmd.Flags().Changed("solc-version") {
		projectConfig.SolcVersion, err = cmd.Flags().GetString("solc-version")
		if err != nil {
			return err
		}
	}

	// Update the source directory
	if cmd.Flags().Changed("source-dir") {
		projectConfig.SourceDirectory, err = cmd.Flags().GetString("source-dir")
		if err != nil {
			return err
		}
	}

	// Make sure we never write a config we could not run with
	return projectConfig.Validate()
}
