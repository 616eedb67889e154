package app

import (
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/domain"
	"cryptoprobe/internal/helpers"
	"cryptoprobe/internal/policy"
	"cryptoprobe/internal/provider"
	"cryptoprobe/internal/provider/stdlib"
	"cryptoprobe/internal/provider/xcrypto"
	"cryptoprobe/internal/relay"
	"cryptoprobe/internal/services/verifier"
	"cryptoprobe/internal/store"
)

const serviceID = "cryptoprobe"

// Wire bundles all collaborators for the CLI.
type Wire struct {
	Registry *provider.Registry
	Policy   *policy.Platform
	Verifier domain.VerifierService
	Reports  *store.ReportFileStore
	Relay    domain.ReportPublisher // nil when no collector is configured
	Logger   *logrus.Entry
}

var registrars = map[domain.ProviderName]func(*provider.Registry){
	domain.DefaultProvider:   stdlib.Register,
	domain.AlternateProvider: xcrypto.Register,
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = helpers.SetupLogger(cfg.Settings.Logging.Level, serviceID, "verifier")
	}

	// Providers compiled into this binary, minus the ones the caller opted out of.
	registry := provider.NewRegistry()
	for name, register := range registrars {
		if slices.Contains(cfg.Without, name) {
			logger.Debugf("provider %s left unregistered", name)
			continue
		}
		register(registry)
	}

	platform, err := policy.New(cfg.Settings.Policy.Limits)
	if err != nil {
		return nil, fmt.Errorf("invalid key-length policy: %w", err)
	}

	w := &Wire{
		Registry: registry,
		Policy:   platform,
		Verifier: verifier.New(registry, platform, logger),
		Reports:  store.NewReportFileStore(cfg.Settings.Report.Dir),
		Logger:   logger,
	}
	if cfg.Settings.Report.Collector != "" {
		httpClient := cfg.HTTP
		if httpClient == nil {
			httpClient = &http.Client{Timeout: 10 * time.Second}
		}
		w.Relay = relay.NewHTTP(cfg.Settings.Report.Collector, httpClient)
	}
	return w, nil
}
