// Package config loads credentials from the environment (.env supported)
// and optional tool settings from a yaml file. Credentials never live in
// yaml.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/futbot/gofut/fapi/client"
	"github.com/futbot/gofut/pkg/logger"
)

// Config is everything the CLI needs to construct a client and set up
// logging. Zero values are filled by Validate.
type Config struct {
	BaseURL            string        `yaml:"baseURL"`
	TimeoutSeconds     int           `yaml:"timeoutSeconds"`
	SyncTimeoutSeconds int           `yaml:"syncTimeoutSeconds"`
	Log                logger.Config `yaml:"log"`

	APIKey    string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// Load reads the optional yaml file at path (silently skipped when absent),
// then pulls credentials from the environment, honoring a .env file in the
// working directory. A missing key or secret fails here, before any network
// call.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parsing config file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	// .env is a convenience for local use; absence is fine.
	_ = godotenv.Load()

	cfg.APIKey = firstEnv("API_KEY", "API_Key")
	cfg.SecretKey = firstEnv("SECRET_KEY", "Secret_Key")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies defaults and rejects missing credentials.
func (c *Config) Validate() error {
	if c.APIKey == "" || c.SecretKey == "" {
		return errors.New("API_KEY and SECRET_KEY must be set in the environment or .env file")
	}
	if c.BaseURL == "" {
		c.BaseURL = client.DefaultBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.SyncTimeoutSeconds <= 0 {
		c.SyncTimeoutSeconds = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.OutputFile == "" {
		c.Log.OutputFile = "logs/gofut.log"
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = 10
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 5
	}
	if c.Log.MaxAge <= 0 {
		c.Log.MaxAge = 14
	}
	return nil
}

// ClientOptions maps the config onto client construction options.
func (c *Config) ClientOptions() client.Options {
	return client.Options{
		BaseURL:     c.BaseURL,
		Timeout:     time.Duration(c.TimeoutSeconds) * time.Second,
		SyncTimeout: time.Duration(c.SyncTimeoutSeconds) * time.Second,
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
