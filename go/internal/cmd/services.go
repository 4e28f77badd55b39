package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/devprix/go/clients/sheets_client"
	"github.com/mcdev12/devprix/go/internal/results"
	"github.com/mcdev12/devprix/go/internal/scoreboard/gateway"
	"github.com/mcdev12/devprix/go/internal/scoreboard/rpc"
	"github.com/mcdev12/devprix/go/internal/scoreboard/web"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Results   *results.App
	Poller    *results.Poller
	Gateway   *gateway.Service
	RPC       *rpc.Service
	Web       *web.Config
	Publisher *results.NATSPublisher
}

func newResultsApp(cfg *Config, clock clockwork.Clock) *results.App {
	client := sheets_client.NewSheetsClientWithBaseURL(cfg.Sheet.BaseURL, cfg.Sheet.APIKey, cfg.Sheet.ID)
	client.SetTimeout(cfg.Sheet.Timeout)
	source := results.NewSheetsSource(client, cfg.Sheet.Range)
	return results.NewApp(source, clock)
}

func setupServices(cfg *Config) (*Services, error) {
	// Wire up dependency injection chain
	// Sheets client → Source → App → Poller / Gateway / RPC / Web
	clock := clockwork.NewRealClock()

	resultsApp := newResultsApp(cfg, clock)
	poller := results.NewPoller(resultsApp, clock, cfg.Poll.Interval)

	gatewayService := gateway.NewService(gateway.DefaultConfig(), resultsApp)
	resultsApp.OnUpdate(gatewayService.BroadcastBoard)

	services := &Services{
		Results: resultsApp,
		Poller:  poller,
		Gateway: gatewayService,
		RPC:     rpc.NewService(resultsApp),
		Web: &web.Config{
			Title:        cfg.Display.Title,
			QRCaption:    cfg.Display.QRCaption,
			ScoringNote:  cfg.Display.ScoringNote,
			LogoURL:      cfg.Display.LogoURL,
			QRCodeURL:    cfg.Display.QRCodeURL,
			TimeFormat:   cfg.Display.TimeFormat,
			Location:     cfg.location(),
			PollInterval: cfg.Poll.Interval,
		},
	}

	if cfg.NATS.URL != "" {
		natsConfig := results.DefaultNATSConfig()
		natsConfig.URL = cfg.NATS.URL
		natsConfig.Subject = cfg.NATS.Subject

		publisher, err := results.NewNATSPublisher(natsConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
		}
		resultsApp.OnUpdate(results.PublishListener(publisher))
		services.Publisher = publisher

		log.Info().Str("nats_url", cfg.NATS.URL).Str("subject", natsConfig.Subject).Msg("publishing board updates to NATS")
	}

	return services, nil
}

func (s *Services) Close() {
	if s.Publisher != nil {
		if err := s.Publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close NATS publisher")
		}
	}
}
