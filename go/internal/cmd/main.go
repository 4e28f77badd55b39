package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "devprix",
		Short:         "Dev Prix scoreboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", getEnv("CONFIG_PATH", defaultConfigPath), "path to the YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Poll the results sheet and serve the scoreboard",
		RunE:  runServe,
	})
	root.AddCommand(newSnapshotCmd())

	return root
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func loadValidConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Log.Level)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig(cmd)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	services, err := setupServices(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to set up services")
		return err
	}
	defer services.Close()

	server := setupServer(cfg, services)

	log.Info().
		Str("sheet_range", cfg.Sheet.Range).
		Dur("poll_interval", cfg.Poll.Interval).
		Str("addr", server.Addr).
		Msg("starting scoreboard")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gatewayDone := make(chan struct{})
	go func() {
		defer close(gatewayDone)
		if err := services.Gateway.Start(ctx); err != nil {
			log.Error().Err(err).Msg("gateway service failed")
		}
	}()

	pollerDone := make(chan struct{})
	go func() {
		defer close(pollerDone)
		if err := services.Poller.Run(ctx); err != nil {
			log.Error().Err(err).Msg("results poller failed")
		}
	}()

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("received shutdown signal")
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("HTTP server failed")
			runErr = err
		}
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	cancel()
	<-gatewayDone
	<-pollerDone

	log.Info().Msg("scoreboard shutdown complete")
	return runErr
}
