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
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/transedge/internal/server"
)

var (
	serveAddr    string
	maxBodyBytes int64
	maxNewTokens int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the translation edge server",
	Long: `Serve the translation endpoint over HTTP.

Routes:
  POST    /           translate {"input": "...", "language": "es"}
  OPTIONS /           CORS pre-flight
  GET     /languages  supported language codes and names
  GET     /healthz    liveness probe

The provider token is read from HF_TOKEN, TRANSEDGE_PROVIDER_TOKEN or the
config file. It is never logged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		svc, logger, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		handler := server.NewRouter(svc, server.Options{
			MaxBodyBytes: cfg.Server.MaxBodyBytes,
			Version:      version,
			Logger:       logger,
		})
		srv := server.New(cfg.Server, handler, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8080", "Listen address")
	serveCmd.Flags().Int64Var(&maxBodyBytes, "max-body-bytes", 64<<10, "Maximum request body size in bytes")
	serveCmd.Flags().IntVar(&maxNewTokens, "max-new-tokens", 150, "Token cap passed to the model on every request")
}
