/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: serve.go
Description: CLI command that serves the JSON API until interrupted.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/mechid/pkg/core"
	"github.com/kleascm/mechid/pkg/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunServe starts the HTTP server
func RunServe(cmd *cobra.Command, args []string) error {
	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	metrics := viper.GetBool("metrics.enabled")
	var reporters []core.Reporter
	if metrics {
		reporters = append(reporters, core.DefaultPrometheusReporter())
	}

	engine, err := BuildEngine(logger, reporters...)
	if err != nil {
		return err
	}
	cat, err := LoadCatalog(logger, engine.Base())
	if err != nil {
		return err
	}

	opts := []server.Option{
		server.WithCatalog(cat),
		server.WithLogger(logger.GetLogger()),
	}
	if metrics {
		opts = append(opts, server.WithMetrics(prometheus.DefaultGatherer))
	}
	srv := server.New(engine, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := viper.GetString("server.addr")
	fmt.Fprintf(cmd.OutOrStdout(), "🚀 MechID API listening on %s (%d organisms, %s)\n", addr, engine.Base().Len(), engine.Mode())
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		logger.Error("Server stopped with error", map[string]interface{}{"addr": addr, "error": err.Error()})
		return err
	}
	return nil
}
