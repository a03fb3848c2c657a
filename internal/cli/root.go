package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "admitctl",
	Short:         "Author tooling for admitkit admission policies",
	Long:          "Builds and inspects the verdict payloads an admitkit guest policy returns to its host. Useful for pinning host-side expectations and debugging policy output without a sandbox runtime.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
