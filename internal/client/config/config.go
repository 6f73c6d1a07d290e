// Package config loads the staff dashboard configuration from a YAML file.
//
// A missing file is not an error: the defaults point at a food-service API on
// localhost. Environment variables override the file so credentials can stay out of it.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "dashboard.yaml"
	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 15 * time.Second
	DefaultLogFile = "dashboard.log"
)

const (
	EnvBaseURL  = "HOSPITALFOOD_API_URL"
	EnvEmail    = "HOSPITALFOOD_EMAIL"
	EnvPassword = "HOSPITALFOOD_PASSWORD"
	EnvMode     = "HOSPITALFOOD_MODE"
)

// Example is written by the dashboard's -init flag.
const Example = `# staff dashboard configuration
api:
  base_url: http://localhost:8080
  timeout: 15s

# pantry, delivery or manager; empty picks the mode from the signed-in role
mode: ""

# credentials may also come from HOSPITALFOOD_EMAIL and HOSPITALFOOD_PASSWORD
email: ""
password: ""

log_file: dashboard.log
log_level: info
`

type API struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type Config struct {
	API      API    `yaml:"api"`
	Mode     string `yaml:"mode"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		API: API{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		LogFile:  DefaultLogFile,
		LogLevel: "info",
	}
}

// Load reads path over the defaults, applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err = decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnv(os.Getenv)

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvBaseURL); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv(EnvEmail); v != "" {
		c.Email = v
	}
	if v := getenv(EnvPassword); v != "" {
		c.Password = v
	}
	if v := getenv(EnvMode); v != "" {
		c.Mode = v
	}
}

func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout))
	}
	switch c.Mode {
	case "", "pantry", "delivery", "manager":
	default:
		errs = append(errs, fmt.Errorf("mode must be pantry, delivery or manager, got %q", c.Mode))
	}

	return errors.Join(errs...)
}

// HasCredentials reports whether both email and password are set.
func (c Config) HasCredentials() bool {
	return c.Email != "" && c.Password != ""
}
