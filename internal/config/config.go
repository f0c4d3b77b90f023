package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the deployment knobs for the dashboard. Everything has a
// default; the YAML file and environment variables only override.
type Config struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	DataDir string `yaml:"data_dir"`

	Title string `yaml:"title"`
	Intro string `yaml:"intro"`

	// Requests per second and burst for the global limiter.
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`

	// bcrypt hash; empty disables basic auth.
	AuthHash string `yaml:"auth_hash"`
}

// DefaultConfigFile is read when DASHBOARD_CONFIG is unset. The file is
// optional.
const DefaultConfigFile = "dashboard.yaml"

func defaults() Config {
	return Config{
		Host:      "0.0.0.0",
		Port:      8050,
		DataDir:   "data",
		Title:     "Polio: Vaccination Coverage and Case Counts",
		Intro:     "Estimated paralytic polio cases and Pol3 vaccination coverage across countries, 1980-2016.",
		RateLimit: 50,
		RateBurst: 100,
	}
}

// Load builds the configuration from defaults, then the YAML file (if
// present), then environment variables.
//
// Environment variables:
//   - PORT: listening port (default 8050)
//   - DASHBOARD_CONFIG: path to the YAML file (default dashboard.yaml)
//   - DASHBOARD_DATA_DIR: data directory override
//   - DASHBOARD_AUTH_HASH: bcrypt hash enabling basic auth
func Load() (Config, error) {
	cfg := defaults()

	path := strings.TrimSpace(os.Getenv("DASHBOARD_CONFIG"))
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q", port)
		}
		cfg.Port = p
	}
	if dir := strings.TrimSpace(os.Getenv("DASHBOARD_DATA_DIR")); dir != "" {
		cfg.DataDir = dir
	}
	if hash := strings.TrimSpace(os.Getenv("DASHBOARD_AUTH_HASH")); hash != "" {
		cfg.AuthHash = hash
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	return nil
}

// Addr is the host:port the server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
