package app

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL      string        `yaml:"api_url"`      // courses server root; empty installs the in-process mock
	SeedFile    string        `yaml:"seed_file"`    // YAML/JSON seed for the in-process mock
	Delay       time.Duration `yaml:"delay"`        // simulated latency of the in-process mock
	Timeout     time.Duration `yaml:"timeout"`      // per-request client timeout; zero means none
	ErrorPolicy string        `yaml:"error_policy"` // "swallow" or "return"
	LogLevel    string        `yaml:"log_level"`
	LogFormat   string        `yaml:"log_format"` // "text" or "json"

	LogOutput io.Writer    `yaml:"-"` // defaults to os.Stderr
	HTTP      *http.Client `yaml:"-"` // optional; only used with APIURL
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		ErrorPolicy: "swallow",
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
