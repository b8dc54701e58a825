package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HampterPW/Crypted/compilation"
	"github.com/HampterPW/Crypted/config"
	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Get supported platforms for customized static completions of "init" flag `$ contractgen init <tab> <tab>`
// and to cache supported platforms for CLI arguments validation
var supportedPlatforms = compilation.GetSupportedCompilationPlatforms()

// initCmd represents the command provider for init
var initCmd = &cobra.Command{
	Use:               "init [platform]",
	Short:             "Initializes a project configuration",
	Long:              `Initializes a project configuration`,
	Args:              cmdValidateInitArgs,
	ValidArgsFunction: cmdValidInitArgs,
	RunE:              cmdRunInit,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add flags to init command
	err := addInitFlags(initCmd)
	if err != nil {
		cmdLogger.Panic("Failed to initialize the init command", err)
	}

	// Add the init command and its associated flags to the root command
	rootCmd.AddCommand(initCmd)
}

// cmdValidInitArgs will return which flags and sub-commands are valid for dynamic completion for the init command
func cmdValidInitArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string
	flagUsed := false
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		} else {
			flagUsed = true
		}
	})

	// If no flag was used yet, a platform may still be provided
	if len(args) == 0 && !flagUsed {
		unusedFlags = append(unusedFlags, supportedPlatforms...)
	}
	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}

// cmdValidateInitArgs validates CLI arguments
func cmdValidateInitArgs(cmd *cobra.Command, args []string) error {
	// Make sure we have no more than 1 arg
	if err := cobra.RangeArgs(0, 1)(cmd, args); err != nil {
		err = fmt.Errorf("init accepts at most 1 platform argument (options: %s). "+
			"default platform is %v", strings.Join(supportedPlatforms, ", "), DefaultCompilationPlatform)
		cmdLogger.Error("Failed to validate args to the init command", err)
		return err
	}

	// Ensure the optional provided argument refers to a supported platform
	if len(args) == 1 && !compilation.IsSupportedCompilationPlatform(args[0]) {
		err := fmt.Errorf("init was provided invalid platform argument '%s' (options: %s)", args[0], strings.Join(supportedPlatforms, ", "))
		cmdLogger.Error("Failed to validate args to the init command", err)
		return err
	}

	return nil
}

// cmdRunInit executes the init CLI command and updates the project configuration with any flags
func cmdRunInit(cmd *cobra.Command, args []string) error {
	// Check to see if --out flag was used and store the value of --out flag
	outputFlagUsed := cmd.Flags().Changed("out")
	outputPath, err := cmd.Flags().GetString("out")
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}
	// If we weren't provided an output path (flag was not used), we use our working directory
	if !outputFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			cmdLogger.Error("Failed to run the init command", err)
			return err
		}
		outputPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	projectConfig, err := newInitProjectConfig(cmd, args)
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}

	if _, err = os.Stat(outputPath); err == nil {
		// Prompt user for overwrite confirmation
		fmt.Print("The file already exists. Overwrite? (y/n): ")
		var response string
		if _, err := fmt.Scan(&response); err != nil {
			cmdLogger.Error("Failed to scan input", err)
			return err
		}

		if response != "y" && response != "Y" {
			fmt.Println("Operation canceled.")
			return nil
		}
	}

	// Write our project configuration
	err = projectConfig.WriteToFile(outputPath)
	if err != nil {
		cmdLogger.Error("Failed to run the init command", err)
		return err
	}

	// Print a success message
	if absoluteOutputPath, err := filepath.Abs(outputPath); err == nil {
		outputPath = absoluteOutputPath
	}
	cmdLogger.Info("Project configuration successfully output to: ", colors.Bold, outputPath, colors.Reset)
	return nil
}

// newInitProjectConfig creates the project configuration written by the init command: the default configuration for
// the provided platform (or the default platform), updated with the init flags.
func newInitProjectConfig(cmd *cobra.Command, args []string) (*config.ProjectConfig, error) {
	projectConfig, err := config.GetDefaultProjectConfig()
	if err != nil {
		return nil, err
	}

	// If a platform is provided (and it is not the default), use its default platform config
	if len(args) == 1 && args[0] != DefaultCompilationPlatform {
		projectConfig.Compilation, err = compilation.NewCompilationConfig(args[0])
		if err != nil {
			return nil, err
		}
	}

	// Update the project configuration given whatever flags were set using the CLI
	err = updateProjectConfigWithInitFlags(cmd, projectConfig)
	if err != nil {
		return nil, err
	}
	return projectConfig, nil
}
