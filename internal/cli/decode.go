package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/admitkit/protocol"
)

func init() {
	verdictCmd.AddCommand(verdictDecodeCmd)
}

var verdictDecodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a verdict payload and check its invariants",
	Long:  "Decodes a ValidationResponse payload from a file (or stdin when omitted or \"-\"), verifies the accept/reject invariants, and pretty-prints the record. Exits non-zero on malformed or invariant-breaking payloads.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerdictDecode,
}

func runVerdictDecode(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("cannot read payload: %w", err)
	}

	var resp protocol.ValidationResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("cannot decode payload %s: %w", data, err)
	}
	if err := resp.Check(); err != nil {
		return fmt.Errorf("invalid verdict: %w", err)
	}

	out, err := json.MarshalIndent(&resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
