package engine

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nereid-ml/nereid/pkg/errors"
)

// Config holds the connection settings for a Nereid engine.
type Config struct {
	// URL is the base URL of the engine's REST API.
	URL string
	// APIKey is sent as the api-key header when non-empty.
	APIKey string
	// Timeout bounds each HTTP round trip.
	Timeout time.Duration
}

const (
	defaultURL     = "http://localhost:54321"
	defaultTimeout = 30 * time.Second
)

type configFile struct {
	Engine struct {
		URL     string `yaml:"url"`
		APIKey  string `yaml:"apiKey"`
		Timeout string `yaml:"timeout"`
	} `yaml:"engine"`
}

// LoadConfig reads connection settings from an optional YAML file, then
// applies environment overrides (NEREID_URL, NEREID_API_KEY, NEREID_TIMEOUT).
// A .env file in the working directory is loaded first when present.
// Missing settings fall back to defaults; path may be empty to skip the file.
func LoadConfig(path string) (Config, error) {
	// Best effort; absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg := Config{URL: defaultURL, Timeout: defaultTimeout}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
		var f configFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Config{}, errors.Wrapf(err, "parsing config %s", path)
		}
		if f.Engine.URL != "" {
			cfg.URL = f.Engine.URL
		}
		if f.Engine.APIKey != "" {
			cfg.APIKey = f.Engine.APIKey
		}
		if f.Engine.Timeout != "" {
			d, err := time.ParseDuration(f.Engine.Timeout)
			if err != nil {
				return Config{}, errors.Wrapf(err, "parsing engine.timeout %q", f.Engine.Timeout)
			}
			cfg.Timeout = d
		}
	}

	if v := os.Getenv("NEREID_URL"); v != "" {
		cfg.URL = v
	}
	if v := os.Getenv("NEREID_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("NEREID_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "parsing NEREID_TIMEOUT %q", v)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}
