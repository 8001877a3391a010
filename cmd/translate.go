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
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valpere/transedge/internal"
)

var (
	targetLang string
	inputFile  string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text once through the provider",
	Long: `Translate English text into a supported language using the same
validation and model mapping as the server, and print the result.

The text is taken from the arguments, or from --input ("-" for stdin).`,
	Example: `  transedge translate --target es "Hello, how are you?"
  echo "Good morning" | transedge translate -t ja_XX -i -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		svc, logger, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		tr, err := svc.Translate(context.Background(), internal.TranslationRequest{
			Input:    text,
			Language: targetLang,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), tr.Text)
		return nil
	},
}

func readInput(stdin io.Reader, args []string) (string, error) {
	switch {
	case inputFile == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	case inputFile != "":
		b, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(b), nil
	default:
		return strings.Join(args, " "), nil
	}
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate, or - for stdin")
	translateCmd.Flags().IntVar(&maxNewTokens, "max-new-tokens", 150, "Token cap passed to the model")

	translateCmd.MarkFlagRequired("target")
}
