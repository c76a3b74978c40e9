package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ghscout/ghscout/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Model != "gpt-4o" {
		t.Errorf("model default: got %q", s.Model)
	}
	if s.HTTPTimeout != 30*time.Second {
		t.Errorf("timeout default: got %v", s.HTTPTimeout)
	}
	if s.Log.Level != "info" || s.Log.Format != "text" {
		t.Errorf("log defaults: got %+v", s.Log)
	}
	if s.FreshContextPerPrompt {
		t.Error("fresh context should default off")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GHS_OPENAI_API_KEY", "sk-test")
	t.Setenv("GHS_GITHUB_TOKEN", "ghp-test")
	t.Setenv("GHS_MODEL", "gpt-4o-mini")
	t.Setenv("GHS_FRESH_CONTEXT_PER_PROMPT", "true")
	t.Setenv("GHS_LOG_LEVEL", "debug")

	s, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.OpenAIAPIKey != "sk-test" || s.GitHubToken != "ghp-test" {
		t.Errorf("credentials not read from env: %+v", s)
	}
	if s.Model != "gpt-4o-mini" {
		t.Errorf("model: got %q", s.Model)
	}
	if !s.FreshContextPerPrompt {
		t.Error("fresh context flag not read from env")
	}
	if s.Log.Level != "debug" {
		t.Errorf("log level: got %q", s.Log.Level)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "model: from-file\nsystem_prompt: file prompt\nhttp_timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GHS_MODEL", "from-env")

	s, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Model != "from-env" {
		t.Errorf("env should beat file: got %q", s.Model)
	}
	if s.SystemPrompt != "file prompt" {
		t.Errorf("system prompt from file: got %q", s.SystemPrompt)
	}
	if s.HTTPTimeout != 5*time.Second {
		t.Errorf("timeout from file: got %v", s.HTTPTimeout)
	}
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
