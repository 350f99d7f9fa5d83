package main

import (
	"os"

	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/cli"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

func main() {
	factory := func() (tokens.Lifecycle, error) {
		cfg, err := config.NewConfig()
		if err != nil {
			return nil, err
		}

		log.Configure(cfg.App.Env, cfg.App.LogLevel)

		httpClient := metaclient.NewHTTPClient(cfg.HTTPClient.Timeout)
		return tokens.NewService(
			metaclient.NewGraphClient(cfg, httpClient),
			metaclient.NewInstagramClient(cfg, httpClient),
		), nil
	}

	if err := cli.Execute(factory); err != nil {
		os.Exit(1)
	}
}
