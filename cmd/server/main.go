package main

import (
	"context"
	"fmt"

	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/handler"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/notify"
	"github.com/memento-project/memento/internal/server"
	"github.com/memento-project/memento/internal/service"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("memento-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := connectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	gateway := notify.NewWebhookGateway(cfg.Notify, log)
	services := service.NewServices(storages, gateway, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	sweepers := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, sweepers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// connectDB opens the backend selected by the driver setting: "pgx" for
// PostgreSQL, "sqlite3" for a local single-node deployment.
func connectDB(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*store.DB, error) {
	if cfg.Driver == "sqlite3" {
		return store.NewConnectSQLite(ctx, cfg, log)
	}
	return store.NewConnectPostgres(ctx, cfg, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
