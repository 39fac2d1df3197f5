package http

import (
	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/service"
)

// Handler carries the services and the token settings every endpoint
// needs.
type Handler struct {
	services *service.Services
	app      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
	}
}
