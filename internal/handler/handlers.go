// Package handler aggregates the transport handlers of the engine.
package handler

import (
	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/handler/http"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}, nil
}
