package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the application configuration loaded from app.yaml.
type Config struct {
	App       AppConfig                   `yaml:"app"`
	Mcp       McpConfig                   `yaml:"mcp"`
	Languages map[string]LanguagePatterns `yaml:"languages"`
}

type AppConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

type McpConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LanguagePatterns carries operator-configured pattern overrides for one
// language. Any category left empty in the file keeps the built-in patterns.
type LanguagePatterns struct {
	FunctionPatterns    []string `yaml:"function_patterns"`
	ControlFlowPatterns []string `yaml:"control_flow_patterns"`
	OperatorPatterns    []string `yaml:"operator_patterns"`
	OpeningDelimiters   []string `yaml:"opening_delimiters"`
	ClosingDelimiters   []string `yaml:"closing_delimiters"`
	CommentPatterns     []string `yaml:"comment_patterns"`
}

// LoadConfig reads and parses the YAML config file at path, applying
// defaults for anything unset.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with no overrides and default ports,
// used when no config file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Mcp.Path == "" {
		c.Mcp.Path = "/mcp"
	}
}

// GetLanguagePatterns returns the configured overrides for a language key,
// if any.
func (c *Config) GetLanguagePatterns(language string) (LanguagePatterns, bool) {
	lp, ok := c.Languages[language]
	return lp, ok
}
