// Package main starts the brokerage mock API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/finmock/finmock/internal/brokerageserver"
	"github.com/finmock/finmock/internal/middleware"
	"github.com/finmock/finmock/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs/brokerage")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := brokerageserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().
		Str("port", config.Port).
		Str("environment", config.Environment).
		Msg("BROKERAGE MOCK API SERVER HAS STARTED")

	if err := server.Engine.Run(":" + config.Port); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
