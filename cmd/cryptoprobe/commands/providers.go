package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func providersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List registered providers and the algorithms they advertise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := appCtx.Registry.List()
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No providers registered.")
				return nil
			}
			for _, p := range list {
				algs := make([]string, len(p.Algorithms))
				for i, a := range p.Algorithms {
					algs[i] = a.String()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.Name, strings.Join(algs, ", "))
			}
			return nil
		},
	}
}
