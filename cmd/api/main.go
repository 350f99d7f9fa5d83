package main

import (
	"context"

	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/api"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/internal/usecases/authenticating"
	"github.com/vfg2006/social-auth-broker/internal/usecases/linking"
	"github.com/vfg2006/social-auth-broker/internal/usecases/messaging"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.Env, cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpClient := metaclient.NewHTTPClient(cfg.HTTPClient.Timeout)
	graphClient := metaclient.NewGraphClient(cfg, httpClient)
	instagramClient := metaclient.NewInstagramClient(cfg, httpClient)

	linker := linking.NewService(graphClient, cfg)
	tokenService := tokens.NewService(graphClient, instagramClient)
	messagingService := messaging.NewService(graphClient, instagramClient)

	states, err := authenticating.NewStateManager(cfg)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao configurar o gerador de state")
	}

	authenticator := authenticating.NewService(
		graphClient,
		instagramClient,
		linker,
		metaclient.NewAuthorizeURLs(cfg),
		states,
	)

	server, err := api.New(cfg, authenticator, messagingService, tokenService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}
