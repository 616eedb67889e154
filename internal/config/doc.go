// Package config loads cryptoprobe's YAML configuration with viper.
//
// Every key can be overridden from the environment with the CRYPTOPROBE_
// prefix, e.g. CRYPTOPROBE_LOGGING_LEVEL=debug.
package config
