package fx

import (
	"renova-club/internal/api"
	"renova-club/internal/config"
	"renova-club/internal/database"
	"renova-club/internal/logger"
	"renova-club/internal/repository"
	"renova-club/internal/server"
	"renova-club/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewAthleteRepository),
	fx.Provide(repository.NewCompetitionRepository),
	// api client
	fx.Provide(api.NewCEPClient),
	// svc
	fx.Provide(service.NewAthleteService),
	fx.Provide(service.NewCompetitionService),
	fx.Provide(service.NewDashboardService),
	// server
	fx.Provide(server.NewServer),
)
