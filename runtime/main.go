package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/lac-hong-legacy/guestbook_api/services"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file found, using system environment variables")
	}

	ctx, err := context.NewCtx(buildServices()...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service context stopped")
		return
	}
}

// buildServices registers services in start order. HttpService blocks in
// Start, so it goes last.
func buildServices() []context.Service {
	svcs := []context.Service{
		&services.MonitoringService{},
	}

	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		svcs = append(svcs, &services.PostgresService{})
	default:
		svcs = append(svcs, &services.SqliteService{})
	}

	switch os.Getenv("RATE_LIMIT_BACKEND") {
	case "redis":
		svcs = append(svcs, &services.RedisService{}, &services.RedisRateLimitService{})
	default:
		svcs = append(svcs, &services.RateLimitService{})
	}

	log.Info().
		Str("db_driver", os.Getenv("DB_DRIVER")).
		Str("rate_limit_backend", os.Getenv("RATE_LIMIT_BACKEND")).
		Msg("Starting guestbook API")

	return append(svcs,
		&services.GuestbookService{},
		&services.HttpService{},
	)
}
