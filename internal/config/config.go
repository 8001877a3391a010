// Package config loads the process configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/transedge/internal/languages"
	"github.com/valpere/transedge/internal/translator"
)

const EnvPrefix = "TRANSEDGE"

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type ProviderConfig struct {
	translator.ServiceConfig `mapstructure:",squash"`
	MaxNewTokens             int    `mapstructure:"max_new_tokens"`
	SourceLang               string `mapstructure:"source_lang"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	Server    ServerConfig      `mapstructure:"server"`
	Provider  ProviderConfig    `mapstructure:"provider"`
	Log       LogConfig         `mapstructure:"log"`
	Languages []languages.Entry `mapstructure:"languages"`
}

// New returns a viper instance with defaults and environment bindings.
// The provider token is also read from HF_TOKEN.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_body_bytes", 64<<10)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)

	v.SetDefault("provider.base_url", translator.DefaultHuggingFaceBaseURL)
	v.SetDefault("provider.token", "")
	v.SetDefault("provider.timeout", translator.DefaultTimeout)
	v.SetDefault("provider.max_new_tokens", 150)
	v.SetDefault("provider.source_lang", languages.SourceTag)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("provider.token", EnvPrefix+"_PROVIDER_TOKEN", "HF_TOKEN")

	return v
}

// ReadFile loads path, or searches the default locations when path is
// empty. A missing file in the default locations is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		return nil
	}

	v.SetConfigName("transedge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/transedge")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// Load unmarshals v into a Config. It does not validate.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings needed to reach the provider.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Provider.APIKey) == "" {
		return fmt.Errorf("provider token is required (set HF_TOKEN or %s_PROVIDER_TOKEN)", EnvPrefix)
	}
	u, err := url.Parse(c.Provider.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("provider base_url must be an http(s) URL, got %q", c.Provider.BaseURL)
	}
	if c.Provider.MaxNewTokens <= 0 {
		return fmt.Errorf("provider max_new_tokens must be positive, got %d", c.Provider.MaxNewTokens)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max_body_bytes must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

// LanguageTable builds the configured table, falling back to the
// built-in one when no languages are configured.
func (c Config) LanguageTable() (*languages.Table, error) {
	if len(c.Languages) == 0 {
		return languages.Default(), nil
	}
	t, err := languages.NewTable(c.Languages...)
	if err != nil {
		return nil, fmt.Errorf("invalid languages: %w", err)
	}
	return t, nil
}

// Redacted returns a copy safe to print.
func (c Config) Redacted() Config {
	if c.Provider.APIKey != "" {
		c.Provider.APIKey = "REDACTED"
	}
	c.Languages = append([]languages.Entry(nil), c.Languages...)
	return c
}
