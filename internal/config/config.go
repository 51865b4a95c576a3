// Package config defines the CLI process configuration and its loading
// chain: defaults, an optional YAML file, then environment variables.
package config

// Config contains process configuration for the rank CLI. The scoring
// engine itself is configuration-free; these knobs cover the process
// around it.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the Prometheus scrape listener, e.g.
	// ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// BatchLimit bounds concurrent evaluations in batch mode. Zero
	// means unbounded.
	BatchLimit int `koanf:"batch_limit"`

	// IndentOutput pretty-prints the result JSON.
	IndentOutput bool `koanf:"indent_output"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		BatchLimit: 4,
	}
}
