package commands

import (
	"github.com/spf13/cobra"

	"cryptoprobe/internal/app"
	"cryptoprobe/internal/config"
	"cryptoprobe/internal/domain"
)

var (
	configFile string
	logLevel   string
	without    []string
	appCtx     *app.Wire
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cryptoprobe",
		Short:        "Verify the host is cryptographically capable of running the service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadConfig(configFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				settings.Logging.Level = config.LogLevel(logLevel)
			}

			excluded := make([]domain.ProviderName, 0, len(without))
			for _, name := range without {
				excluded = append(excluded, domain.ProviderName(name))
			}

			w, err := app.NewWire(app.Config{Settings: *settings, Without: excluded})
			if err != nil {
				return err
			}
			if settings.Logging.Level != config.None {
				w.Logger.Logger.SetOutput(cmd.ErrOrStderr())
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $CRYPTOPROBE_CONFIG_FILE or /etc/cryptoprobe/config.yml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error or none")
	root.PersistentFlags().StringSliceVar(&without, "without-provider", nil, "leave a provider unregistered (repeatable)")

	root.AddCommand(verifyCmd(), checkCmd(), providersCmd(), policyCmd(), selftestCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
