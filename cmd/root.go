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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	providerURL string
)

var rootCmd = &cobra.Command{
	Use:   "transedge",
	Short: "Edge translation proxy for hosted machine-translation models",
	Long: `An HTTP edge service that validates translation requests from a chat UI,
maps the target language to a hosted translation model and forwards the
text to the inference provider.

Supported languages come from a fixed table (built-in, or the "languages"
list of the config file).

Use "transedge serve --help" for server options.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./transedge.yaml or $HOME/.config/transedge/transedge.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "json", "Log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&providerURL, "provider-url", "", "Inference provider base URL")
}
