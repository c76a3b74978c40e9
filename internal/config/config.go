// Package config loads run settings from the environment (GHS_ prefix) and
// an optional YAML file. Values are read once at startup.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds everything a run needs: the two credentials, endpoint
// overrides, model selection, and orchestrator behaviour switches.
type Settings struct {
	OpenAIAPIKey          string        `mapstructure:"openai_api_key"`
	GitHubToken           string        `mapstructure:"github_token"`
	OpenAIBaseURL         string        `mapstructure:"openai_base_url"`
	GitHubBaseURL         string        `mapstructure:"github_base_url"`
	Model                 string        `mapstructure:"model"`
	SystemPrompt          string        `mapstructure:"system_prompt"`
	HTTPTimeout           time.Duration `mapstructure:"http_timeout"`
	FreshContextPerPrompt bool          `mapstructure:"fresh_context_per_prompt"`
	TranscriptPath        string        `mapstructure:"transcript_path"`
	Log                   LogSettings   `mapstructure:"log"`
}

// LogSettings selects logger verbosity and output encoding.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// keys lists every config key so AutomaticEnv can resolve them during
// Unmarshal even when no file is present.
var keys = []string{
	"openai_api_key",
	"github_token",
	"openai_base_url",
	"github_base_url",
	"model",
	"system_prompt",
	"http_timeout",
	"fresh_context_per_prompt",
	"transcript_path",
	"log.level",
	"log.format",
}

// Load reads settings from env and, when path is non-empty, a config file.
// File values lose to explicit environment variables.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("GHS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("model", "gpt-4o")
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &s, nil
}
