package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/HampterPW/Crypted/cmd/exitcodes"
	"github.com/HampterPW/Crypted/config"
	"github.com/HampterPW/Crypted/generator"
	"github.com/HampterPW/Crypted/logging/colors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCmd represents the command provider for generation
var generateCmd = &cobra.Command{
	Use:               "generate",
	Short:             "Generates contract data modules",
	Long:              `Compiles every Solidity source file and writes the contract data of each one into a generated Go module`,
	Args:              cmdValidateGenerateArgs,
	ValidArgsFunction: cmdValidGenerateArgs,
	RunE:              cmdRunGenerate,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func init() {
	// Add all the flags allowed for the generate command
	err := addGenerateFlags(generateCmd)
	if err != nil {
		cmdLogger.Panic("Failed to initialize the generate command", err)
	}

	// Add the generate command and its associated flags to the root command
	rootCmd.AddCommand(generateCmd)
}

// cmdValidGenerateArgs will return which flags are valid for dynamic completion for the generate command
func cmdValidGenerateArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Gather a list of flags that are available to be used in the current command but have not been used yet
	var unusedFlags []string
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if !flag.Changed {
			unusedFlags = append(unusedFlags, "--"+flag.Name)
		}
	})
	return unusedFlags, cobra.ShellCompDirectiveNoFileComp
}

// cmdValidateGenerateArgs makes sure that there are no positional arguments provided to the generate command
func cmdValidateGenerateArgs(cmd *cobra.Command, args []string) error {
	// Make sure we have no positional args
	if err := cobra.NoArgs(cmd, args); err != nil {
		err = fmt.Errorf("generate does not accept any positional arguments, only flags and their associated values")
		cmdLogger.Error("Failed to validate args to the generate command", err)
		return err
	}
	return nil
}

// cmdRunGenerate executes the CLI generate command and navigates through the following possibilities:
// #1: We will search for either a custom config file (via --config) or the default (contractgen.json).
// If we find it, read it. If we can't read it, throw an error.
// #2: If a custom file was provided (--config was used), and we can't find the file, throw an error.
// #3: If contractgen.json can't be found, use the default project configuration.
func cmdRunGenerate(cmd *cobra.Command, args []string) error {
	projectConfig, configPath, err := loadProjectConfig(cmd)
	if err != nil {
		cmdLogger.Error("Failed to run the generate command", err)
		return err
	}

	// Update the project configuration given whatever flags were set using the CLI
	err = updateProjectConfigWithGenerateFlags(cmd, projectConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the generate command", err)
		return err
	}

	// Change our working directory to the parent directory of the project configuration file, as the paths within it
	// are relative to it.
	if configPath != "" {
		err = os.Chdir(filepath.Dir(configPath))
		if err != nil {
			cmdLogger.Error("Failed to run the generate command", err)
			return err
		}
	}

	// Set up the global logger for the run
	closeLogFile, err := setupGlobalLogger(projectConfig.Logging)
	if err != nil {
		cmdLogger.Error("Failed to run the generate command", err)
		return err
	}
	defer closeLogFile()

	// Create our generator
	gen, err := generator.NewGenerator(projectConfig)
	if err != nil {
		cmdLogger.Error("Failed to run the generate command", err)
		return err
	}

	// Report progress as modules are written
	progress := &generateProgress{}
	progress.subscribe(gen)

	// Stop any running compiler on keyboard interrupts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Generate, logging the error here so main does not print it again
	_, err = gen.Run(ctx)
	if err != nil {
		cmdLogger.Error(colors.Red, "Failed to generate contract data", err)
		return exitcodes.NewErrorWithExitCode(err, exitcodes.ExitCodeGenerationError)
	}
	return nil
}

// loadProjectConfig reads the project configuration for the command. Returns the configuration along with the path
// of the file it was read from, which is empty if the default configuration is used.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, string, error) {
	// Check to see if --config flag was used and store the value of --config flag
	configFlagUsed := cmd.Flags().Changed("config")
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}

	// If --config was not used, look for `contractgen.json` in the current work directory
	if !configFlagUsed {
		workingDirectory, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		configPath = filepath.Join(workingDirectory, DefaultProjectConfigFilename)
	}

	// Check to see if the file exists at configPath
	_, existenceError := os.Stat(configPath)

	// Possibility #1: File was found
	if existenceError == nil {
		cmdLogger.Info("Reading the configuration file at: ", colors.Bold, configPath, colors.Reset)
		projectConfig, err := config.ReadProjectConfigFromFile(configPath)
		if err != nil {
			return nil, "", err
		}
		return projectConfig, configPath, nil
	}

	// Possibility #2: If the --config flag was used, and we couldn't find the file, we'll throw an error
	if configFlagUsed {
		return nil, "", existenceError
	}

	// Possibility #3: --config flag was not used and contractgen.json was not found, so use the default project config
	cmdLogger.Warn(fmt.Sprintf("Unable to find the config file at %v, will use the default project configuration instead", configPath))
	projectConfig, err := config.GetDefaultProjectConfig()
	if err != nil {
		return nil, "", err
	}
	return projectConfig, "", nil
}
