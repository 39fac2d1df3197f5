package notify

import (
	"context"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

// nopGateway logs every notice instead of delivering it. Used when no
// provider is configured. Tokens are never written to the log.
type nopGateway struct {
	logger *logger.Logger
}

// NewNopGateway constructs a log-only [Gateway].
func NewNopGateway(log *logger.Logger) Gateway {
	return &nopGateway{logger: log}
}

// SendVerificationLink implements [Gateway].
func (g *nopGateway) SendVerificationLink(_ context.Context, contact models.Contact, c models.Case, _ string) error {
	g.logger.Info().
		Str("func", "nopGateway.SendVerificationLink").
		Int64("case_id", c.CaseID).
		Int64("contact_id", contact.ContactID).
		Msg("notification provider not configured, verification link dropped")
	return nil
}

// SendReleaseNotice implements [Gateway].
func (g *nopGateway) SendReleaseNotice(_ context.Context, capsule models.Capsule) error {
	g.logger.Info().
		Str("func", "nopGateway.SendReleaseNotice").
		Int64("capsule_id", capsule.CapsuleID).
		Msg("notification provider not configured, release notice dropped")
	return nil
}

// SendWillLocationNotice implements [Gateway].
func (g *nopGateway) SendWillLocationNotice(_ context.Context, will models.WillDocument) error {
	g.logger.Info().
		Str("func", "nopGateway.SendWillLocationNotice").
		Int64("account_id", will.AccountID).
		Msg("notification provider not configured, will location notice dropped")
	return nil
}
