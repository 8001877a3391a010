/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/transedge/internal/config"
	"github.com/valpere/transedge/internal/logging"
	"github.com/valpere/transedge/internal/service"
	"github.com/valpere/transedge/internal/translator"
)

// flagKeys maps config keys to the flag names that override them.
var flagKeys = map[string]string{
	"log.level":               "log-level",
	"log.format":              "log-format",
	"provider.base_url":       "provider-url",
	"server.addr":             "addr",
	"server.max_body_bytes":   "max-body-bytes",
	"provider.max_new_tokens": "max-new-tokens",
}

// loadConfig merges defaults, the config file, the environment and the
// flags set on cmd into one Config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := config.New()
	if err := config.ReadFile(v, cfgFile); err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// bindFlags binds only flags the user changed, so that unset flags do not
// shadow the config file or the environment with their defaults.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for key, name := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// buildService constructs the logger and translation service from cfg.
func buildService(cfg config.Config) (*service.TranslationService, *zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	table, err := cfg.LanguageTable()
	if err != nil {
		return nil, nil, err
	}

	provider := translator.NewHuggingFaceService(cfg.Provider.ServiceConfig)
	svc, err := service.NewTranslationService(table, provider, service.Options{
		SourceLang:   cfg.Provider.SourceLang,
		MaxNewTokens: cfg.Provider.MaxNewTokens,
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("configuration loaded",
		zap.String("provider", provider.Name()),
		zap.String("base_url", cfg.Provider.BaseURL),
		zap.Strings("languages", table.Codes()),
	)
	return svc, logger, nil
}
