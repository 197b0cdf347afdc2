// Package main starts the banking mock API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/finmock/finmock/internal/bankingserver"
	"github.com/finmock/finmock/internal/middleware"
	"github.com/finmock/finmock/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs/banking")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := bankingserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().
		Str("port", config.Port).
		Str("environment", config.Environment).
		Msg("BANKING MOCK API SERVER HAS STARTED")

	if err := server.Engine.Run(":" + config.Port); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
