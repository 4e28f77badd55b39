package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/grpcreflect"
	"github.com/mcdev12/devprix/go/internal/genproto/scoreboard/v1/scoreboardv1connect"
	"github.com/mcdev12/devprix/go/internal/scoreboard/web"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

const serviceVersion = "1.0.0"

func setupServer(cfg *Config, services *Services) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           newHandler(services),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func newHandler(services *Services) http.Handler {
	mux := http.NewServeMux()

	// Setup CORS middleware; every route is read-only
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	// WebSocket push
	services.Gateway.RegisterRoutes(mux)

	// Connect RPC
	registerServices(mux, services)

	// Setup reflection for grpcui/grpcurl
	setupReflection(mux)

	setupHealthCheck(mux)
	setupInfo(mux, services)

	// Page, JSON API and static assets
	mux.Handle("/", web.NewRouter(services.Results, services.Web))

	return h2c.NewHandler(c.Handler(mux), &http2.Server{})
}

func registerServices(mux *http.ServeMux, services *Services) {
	scoreboardServicePath, scoreboardServiceHandler := scoreboardv1connect.NewScoreboardServiceHandler(services.RPC)
	mux.Handle(scoreboardServicePath, scoreboardServiceHandler)
}

func setupReflection(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(
		scoreboardv1connect.ScoreboardServiceName,
	)
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}

func setupInfo(mux *http.ServeMux, services *Services) {
	mux.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		info := map[string]interface{}{
			"service": "devprix-scoreboard",
			"version": serviceVersion,
			"results": len(services.Results.Results()),
			"refresh": services.Results.Status(),
			"gateway": services.Gateway.GetStats(),
		}
		if services.Publisher != nil {
			info["nats_connected"] = services.Publisher.IsConnected()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			log.Error().Err(err).Msg("failed to encode info response")
		}
	})
}
