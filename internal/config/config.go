package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file.
const FileName = "walletkeep.yaml"

// EnvLedgerFile overrides the configured ledger path. It is read from
// the process environment, optionally seeded from a .env file.
const EnvLedgerFile = "WALLETKEEP_FILE"

// Config represents the top-level walletkeep.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	History HistoryConfig `yaml:"history"`
	Git     GitConfig     `yaml:"git"`
}

// LedgerConfig locates the ledger file.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// HistoryConfig controls the mutation audit trail.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file,omitempty"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a walletkeep.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new wallet.
func Default(ledgerFile string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: ledgerFile,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Walletkeep",
			AuthorEmail: "ledger@walletkeep.dev",
		},
	}
}

// LedgerFile returns the ledger path, honoring the WALLETKEEP_FILE
// environment override.
func (c *Config) LedgerFile() string {
	if v := os.Getenv(EnvLedgerFile); v != "" {
		return v
	}
	return c.Ledger.File
}
