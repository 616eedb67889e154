package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cryptoprobe/internal/domain"
)

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest [provider]",
		Short: "Instantiate providers and run their self-tests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []domain.ProviderName
			if len(args) == 1 {
				names = append(names, domain.ProviderName(args[0]))
			} else {
				for _, p := range appCtx.Registry.List() {
					names = append(names, p.Name)
				}
			}

			var errs []error
			for _, name := range names {
				p, err := appCtx.Registry.Build(name, appCtx.Logger)
				if err == nil {
					err = p.SelfTest()
				}
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: FAIL (%s)\n", name, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			return errors.Join(errs...)
		},
	}
}
