package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptoprobe/internal/domain"
)

func policyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policy [algorithm]",
		Short: "Print the maximum allowed key length for an algorithm (default AES)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg := domain.ReferenceAlgorithm
			if len(args) == 1 {
				alg = domain.Algorithm(args[0])
			}
			bits, err := appCtx.Policy.MaxAllowedKeyLength(alg)
			if err != nil {
				return err
			}
			if bits == domain.UnlimitedKeyLength {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d (unlimited)\n", alg, bits)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", alg, bits)
			return nil
		},
	}
}
