package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
app:
  port: 9090
  log_level: debug
languages:
  python:
    function_patterns:
      - "def "
      - "lambda "
    comment_patterns:
      - "#"
`
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.App.Port != 9090 {
		t.Fatalf("Expected port 9090, got %d", cfg.App.Port)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("Expected log level 'debug', got '%s'", cfg.App.LogLevel)
	}

	lp, ok := cfg.GetLanguagePatterns("python")
	if !ok {
		t.Fatal("Expected python language patterns to be configured")
	}
	if len(lp.FunctionPatterns) != 2 || lp.FunctionPatterns[1] != "lambda " {
		t.Fatalf("Unexpected function patterns: %v", lp.FunctionPatterns)
	}
	if len(lp.OpeningDelimiters) != 0 {
		t.Fatalf("Expected no opening delimiters configured, got %v", lp.OpeningDelimiters)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	if err := os.WriteFile(path, []byte("app: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.App.Port != 8080 {
		t.Fatalf("Expected default port 8080, got %d", cfg.App.Port)
	}
	if cfg.Mcp.Path != "/mcp" {
		t.Fatalf("Expected default MCP path '/mcp', got '%s'", cfg.Mcp.Path)
	}
	if _, ok := cfg.GetLanguagePatterns("python"); ok {
		t.Fatal("Expected no language patterns by default")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
