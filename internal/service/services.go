package service

import (
	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/notify"
	"github.com/memento-project/memento/internal/store"
)

// Services bundles every service behind one value for wiring into
// handlers and workers.
type Services struct {
	CaseService         CaseService
	VerificationService VerificationService
	CapsuleService      CapsuleService
	ContactService      ContactService
}

// NewServices constructs every service on top of the shared storages and
// notification gateway.
func NewServices(storages *store.Storages, gateway notify.Gateway, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		CaseService:         NewCaseService(storages, gateway, cfg.Workers, logger),
		VerificationService: NewVerificationService(storages, cfg.Workers, logger),
		CapsuleService:      NewCapsuleService(storages.CapsuleRepository, gateway, logger),
		ContactService:      NewContactService(storages.ContactRepository, logger),
	}
}
