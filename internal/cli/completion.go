package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for uuidgen.

To load completions for your shell:

Bash:
  # To load completions for each session, execute once:
  # Linux:
  uuidgen completion bash > /etc/bash_completion.d/uuidgen
  # macOS:
  uuidgen completion bash > /usr/local/etc/bash_completion.d/uuidgen

  # Or add to your ~/.bashrc or ~/.bash_profile:
  source <(uuidgen completion bash)

Zsh:
  # To load completions for each session, execute once:
  uuidgen completion zsh > "${fpath[1]}/_uuidgen"

  # Or add to your ~/.zshrc:
  source <(uuidgen completion zsh)

  # You may need to force rebuild the completion cache:
  rm -f ~/.zcompdump
  compinit

Fish:
  # To load completions for each session, execute once:
  uuidgen completion fish > ~/.config/fish/completions/uuidgen.fish

  # Or add to your ~/.config/fish/config.fish:
  uuidgen completion fish | source

PowerShell:
  # To load completions for each session, run:
  uuidgen completion powershell | Out-String | Invoke-Expression

  # Or add to your PowerShell profile:
  # (Microsoft.PowerShell_profile.ps1 or profile.ps1)
  uuidgen completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch shell := args[0]; shell {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			return fmt.Errorf("unsupported shell type: %s", shell)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
