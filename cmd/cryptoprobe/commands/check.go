package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptoprobe/internal/domain"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "check provider|strength",
		Short:     "Evaluate a single capability check and print true or false",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"provider", "strength"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				ok    bool
				check string
			)
			switch args[0] {
			case "provider":
				ok, check = appCtx.Verifier.IsProviderInstalled(), domain.CheckProviderInstalled
			case "strength":
				ok, check = appCtx.Verifier.IsUnlimitedStrength(), domain.CheckUnlimitedStrength
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return &domain.AssertionError{Check: check}
			}
			return nil
		},
	}
}
