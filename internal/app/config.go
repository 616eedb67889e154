package app

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"cryptoprobe/internal/config"
	"cryptoprobe/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config         // loaded configuration file
	Without  []domain.ProviderName // providers to leave unregistered
	Logger   *logrus.Entry         // optional; defaults to one built from Settings.Logging
	HTTP     *http.Client          // optional; used for the report collector
}
