package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// SchemaConfig configures the remote query service used by schema sync.
type SchemaConfig struct {
	Endpoint string        `yaml:"endpoint" env:"ENDPOINT"`
	APIKey   string        `yaml:"api_key" env:"API_KEY"`
	Owner    string        `yaml:"owner" env:"OWNER"`
	Timeout  time.Duration `yaml:"timeout" env:"TIMEOUT"`
	Throttle time.Duration `yaml:"throttle" env:"THROTTLE"`
	Retries  int           `yaml:"retries" env:"RETRIES"`
}

// ReportsConfig configures the RDF scanner.
type ReportsConfig struct {
	// Source overrides raw/reports_rdf, for binaries kept outside the root.
	Source string `yaml:"source" env:"RDF_SOURCE"`
}

type ProjectConfig struct {
	Schema  SchemaConfig  `yaml:"schema"`
	Reports ReportsConfig `yaml:"reports"`
}

const (
	ConfigFileName = "erpbrain.yaml"
	EnvFileName    = ".env"
	EnvPrefix      = "ERPBRAIN_"
)

// Load reads erpbrain.yaml from root.
func Load(root string) (*ProjectConfig, error) {
	configPath := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", erpbrain.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration for root: defaults, then
// erpbrain.yaml, then ERPBRAIN_* variables (including those from
// root/.env, which never override the real environment).
func Resolve(root string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(root, EnvFileName))

	cfg, err := Load(root)
	if errors.Is(err, ErrConfigNotFound) {
		cfg, err = &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ApplyEnv overrides cfg with the ERPBRAIN_* variables that are set.
func ApplyEnv(cfg *ProjectConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("%w: %v", erpbrain.ErrInvalidConfig, err)
	}
	return nil
}

func (c *ProjectConfig) applyDefaults() {
	if c.Schema.Owner == "" {
		c.Schema.Owner = erpbrain.DefaultSchemaOwner
	}
	if c.Schema.Timeout <= 0 {
		c.Schema.Timeout = erpbrain.DefaultQueryTimeout
	}
	if c.Schema.Throttle <= 0 {
		c.Schema.Throttle = erpbrain.DefaultTableThrottle
	}
	if c.Schema.Retries < 0 {
		c.Schema.Retries = 0
	}
}
