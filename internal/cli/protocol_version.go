package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/admitkit"
)

func init() {
	rootCmd.AddCommand(protocolVersionCmd)
}

var protocolVersionCmd = &cobra.Command{
	Use:   "protocol-version",
	Short: "Print the protocol version the SDK reports to hosts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := admitkit.ProtocolVersionGuest(nil)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
