package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ConfigFileEnvVar = "CRYPTOPROBE_CONFIG_FILE"
	StandardPath     = "/etc/cryptoprobe/config.yml"
	envPrefix        = "CRYPTOPROBE"
)

func readConfig(configFilePath string, defaults Config) (*Config, error) {
	vp := viper.New()
	vp.SetEnvPrefix(envPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	defaultsMap, err := EncodeStruct(defaults)
	if err != nil {
		return nil, err
	}
	setDefaults(vp, "", defaultsMap)

	if configFilePath != "" {
		vp.SetConfigFile(configFilePath)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error while processing config file: %w", err)
		}
	}

	var config Config
	if err := vp.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	return &config, nil
}

// EncodeStruct converts source into a nested map keyed by mapstructure tags.
func EncodeStruct[E any](source E) (map[string]interface{}, error) {
	var target map[string]interface{}
	if err := mapstructure.Decode(source, &target); err != nil {
		return nil, fmt.Errorf("could not decode struct: %w", err)
	}
	return target, nil
}

// DecodeStruct is the inverse of EncodeStruct.
func DecodeStruct[E any](source interface{}) (E, error) {
	var target E
	if err := mapstructure.Decode(source, &target); err != nil {
		var zero E
		return zero, fmt.Errorf("could not decode struct: %w", err)
	}
	return target, nil
}

// setDefaults registers every leaf of m as a viper default. Empty strings are
// registered too: AutomaticEnv only overrides keys viper already knows.
func setDefaults(vp *viper.Viper, prefix string, m map[string]interface{}) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			setDefaults(vp, key, v)
		case map[string]int:
			if len(v) > 0 {
				vp.SetDefault(key, v)
			}
		case LogLevel:
			vp.SetDefault(key, string(v))
		case string:
			vp.SetDefault(key, v)
		case nil:
		default:
			vp.SetDefault(key, v)
		}
	}
}

// LoadConfig reads path, or the file named by CRYPTOPROBE_CONFIG_FILE, or the
// standard path. Only the standard path may be absent, in which case the
// defaults apply.
func LoadConfig(path string) (*Config, error) {
	defaults := Defaults()

	if path != "" {
		return readConfig(path, defaults)
	}

	if env := os.Getenv(ConfigFileEnvVar); env != "" {
		log.Debugf("loading config file from %s", env)
		return readConfig(env, defaults)
	}

	if _, err := os.Stat(StandardPath); errors.Is(err, os.ErrNotExist) {
		log.Debugf("no config file at %s, using defaults", StandardPath)
		return readConfig("", defaults)
	}
	return readConfig(StandardPath, defaults)
}
