package cmd

import (
	"os"

	"github.com/HampterPW/Crypted/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "contractgen",
	Short: "Compiles Solidity contracts into importable Go contract data",
	Long: "contractgen compiles every Solidity source file of a project and writes the bytecode, runtime bytecode and " +
		"ABI of each contract into generated Go modules, so tests can use contract data without invoking solc.",
}

// cmdLogger is the logger that will be used for the cmd package
var cmdLogger = logging.NewLogger(zerolog.InfoLevel).NewSubLogger("module", logging.CLI_SERVICE)

// Execute provides an exportable function to invoke the CLI. Returns an error if one was encountered.
func Execute() error {
	// Add stdout as an unstructured, colorized output stream for the command logger
	cmdLogger.AddWriter(os.Stdout, logging.UNSTRUCTURED, true)

	return rootCmd.Execute()
}
