package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:       "completion bash",
	Short:     "Generate shell completion code for bash",
	ValidArgs: []string{"bash"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Long: `To load completions:

Bash:

  $ source <(contractgen completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ contractgen completion bash > /etc/bash_completion.d/contractgen
  # macOS:
  $ contractgen completion bash > $(brew --prefix)/etc/bash_completion.d/contractgen`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cmd.Root().GenBashCompletion(os.Stdout); err != nil {
			return fmt.Errorf("unable to generate a bash completion: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
