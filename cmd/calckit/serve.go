// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/calckit/internal/prefs"
	"github.com/pdiddy/calckit/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a local JSON API",
	Long: `Serve starts an HTTP server exposing the converters, calculators, subnet
and text tools, and the theme flag under /api. It listens on server.addr
(default 127.0.0.1:8080) until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := prefs.Open(cfg.Theme.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("prefs", cfg.Theme.DBPath),
		zap.Bool("allow_all_origins", cfg.Server.AllowAllOrigins))
	return server.New(cfg, store, logger).Start(ctx)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().Bool("allow-all-origins", false, "accept cross-origin requests from any origin")
	serveCmd.Flags().String("db", "", "prefs database path (overrides theme.db_path)")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.allow_all_origins", serveCmd.Flags().Lookup("allow-all-origins"))

	rootCmd.AddCommand(serveCmd)
}
