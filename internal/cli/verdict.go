package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/admitkit"
)

var (
	rejectMessage     string
	rejectCode        uint16
	rejectAnnotations []string
	rejectWarnings    []string
)

func init() {
	rootCmd.AddCommand(verdictCmd)
	verdictCmd.AddCommand(verdictAcceptCmd)
	verdictCmd.AddCommand(verdictRejectCmd)
	verdictCmd.AddCommand(verdictMutateCmd)
	verdictRejectCmd.Flags().StringVar(&rejectMessage, "message", "", "Message shown to the user")
	verdictRejectCmd.Flags().Uint16Var(&rejectCode, "code", 0, "Status code reported with the rejection")
	verdictRejectCmd.Flags().StringArrayVar(&rejectAnnotations, "annotation", nil, "Audit annotation as key=value (repeatable)")
	verdictRejectCmd.Flags().StringArrayVar(&rejectWarnings, "warning", nil, "Warning returned to the API client (repeatable)")
}

var verdictCmd = &cobra.Command{
	Use:   "verdict",
	Short: "Build and inspect verdict payloads",
	Long:  "Commands for producing the exact byte payloads a guest policy would return to its host, so host-side fixtures and expectations can be pinned without running a policy.",
}

var verdictAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Print an acceptance payload",
	Args:  cobra.NoArgs,
	RunE:  runVerdictAccept,
}

var verdictRejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Print a rejection payload",
	Long:  "Prints a rejection payload. Every flag is optional: a flagless invocation produces a bare rejection, which hosts accept.",
	Args:  cobra.NoArgs,
	RunE:  runVerdictReject,
}

var verdictMutateCmd = &cobra.Command{
	Use:   "mutate <file>",
	Short: "Print a mutation payload built from a JSON or YAML document",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerdictMutate,
}

func runVerdictAccept(cmd *cobra.Command, args []string) error {
	out, err := admitkit.AcceptRequest()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runVerdictReject(cmd *cobra.Command, args []string) error {
	var opts []admitkit.RejectOption
	if cmd.Flags().Changed("message") {
		opts = append(opts, admitkit.WithMessage(rejectMessage))
	}
	if cmd.Flags().Changed("code") {
		opts = append(opts, admitkit.WithCode(rejectCode))
	}
	if len(rejectAnnotations) > 0 {
		annotations := make(map[string]string, len(rejectAnnotations))
		for _, kv := range rejectAnnotations {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid annotation %q: want key=value", kv)
			}
			annotations[k] = v
		}
		opts = append(opts, admitkit.WithAuditAnnotations(annotations))
	}
	if len(rejectWarnings) > 0 {
		opts = append(opts, admitkit.WithWarnings(rejectWarnings...))
	}

	out, err := admitkit.RejectRequest(opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runVerdictMutate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read document: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot parse document %s: %w", args[0], err)
	}

	out, err := admitkit.MutateRequest(doc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
