package config

// LogLevel is a logrus level name or "none".
type LogLevel string

const (
	Info  LogLevel = "info"
	Debug LogLevel = "debug"
	Trace LogLevel = "trace"
	Error LogLevel = "error"
	None  LogLevel = "none"
)

type Logging struct {
	Level LogLevel `mapstructure:"level"`
}

// Policy configures the host's cipher key-length caps, in bits, keyed by
// algorithm name. Algorithms without a cap are unlimited.
type Policy struct {
	Limits map[string]int `mapstructure:"limits"`
}

// Report controls where verification reports go. Collector is the base URL
// of a report collector; empty disables publishing.
type Report struct {
	Dir       string `mapstructure:"dir"`
	Collector string `mapstructure:"collector"`
}

// Config is the cryptoprobe configuration file.
type Config struct {
	Logging Logging `mapstructure:"logging"`
	Policy  Policy  `mapstructure:"policy"`
	Report  Report  `mapstructure:"report"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Logging: Logging{Level: Info},
		Report:  Report{Dir: "."},
	}
}
