//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/minthura/astrologic/internal/bootstrap"
	"github.com/minthura/astrologic/internal/domain/reading"
	"github.com/minthura/astrologic/internal/domain/synthesis"
	"github.com/minthura/astrologic/internal/infra/config"
	httpiface "github.com/minthura/astrologic/internal/interface/http"
	"github.com/minthura/astrologic/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSynthesisConfig,
		provideReadingConfig,
		provideProviderChain,
		provideGeocoder,
		provideGeoStore,
		provideReadingRepository,
		reading.NewService,
		synthesis.NewService,
		wire.Bind(new(synthesis.ReadingGenerator), new(reading.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
