package notify

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/memento-project/memento/internal/config"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/utils"
	"github.com/memento-project/memento/models"
)

// webhookGateway posts JSON notices to the notification provider's
// webhook endpoints. The provider owns templating and the actual email
// or SMS delivery; the engine only hands over the facts.
type webhookGateway struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewWebhookGateway constructs a [Gateway] that posts to cfg.BaseURL.
// When cfg.BaseURL is empty, a log-only gateway is returned instead so
// development deployments work without a provider.
func NewWebhookGateway(cfg config.Notify, log *logger.Logger) Gateway {
	if cfg.BaseURL == "" {
		return NewNopGateway(log)
	}

	cli := utils.NewHTTPClient()
	cli.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &webhookGateway{client: cli, logger: log}
}

type verificationLinkPayload struct {
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	CaseID       int64  `json:"case_id"`
	ReporterName string `json:"reporter_name"`
	Relation     string `json:"relation,omitempty"`
	Message      string `json:"message,omitempty"`
	Token        string `json:"token"`
}

type releaseNoticePayload struct {
	CapsuleID        int64  `json:"capsule_id"`
	Title            string `json:"title"`
	RecipientName    string `json:"recipient_name,omitempty"`
	RecipientContact string `json:"recipient_contact"`
}

type willLocationPayload struct {
	BeneficiaryEmail string `json:"beneficiary_email"`
	StorageLocation  string `json:"storage_location"`
	FileURL          string `json:"file_url,omitempty"`
}

// SendVerificationLink implements [Gateway].
func (g *webhookGateway) SendVerificationLink(ctx context.Context, contact models.Contact, c models.Case, token string) error {
	payload := verificationLinkPayload{
		ContactName:  contact.Name,
		ContactEmail: contact.Email,
		CaseID:       c.CaseID,
		ReporterName: c.ReporterName,
		Relation:     c.Relation,
		Message:      c.Message,
		Token:        token,
	}

	return g.post(ctx, "/notify/verification", payload)
}

// SendReleaseNotice implements [Gateway].
func (g *webhookGateway) SendReleaseNotice(ctx context.Context, capsule models.Capsule) error {
	payload := releaseNoticePayload{
		CapsuleID:        capsule.CapsuleID,
		Title:            capsule.Title,
		RecipientName:    capsule.RecipientName,
		RecipientContact: capsule.RecipientContact,
	}

	return g.post(ctx, "/notify/release", payload)
}

// SendWillLocationNotice implements [Gateway].
func (g *webhookGateway) SendWillLocationNotice(ctx context.Context, will models.WillDocument) error {
	payload := willLocationPayload{
		BeneficiaryEmail: will.BeneficiaryEmail,
		StorageLocation:  will.StorageLocation,
		FileURL:          will.FileURL,
	}

	return g.post(ctx, "/notify/will-location", payload)
}

func (g *webhookGateway) post(ctx context.Context, path string, payload any) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return fmt.Errorf("notify request %s: %w", path, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notify request %s: provider returned %d", path, resp.StatusCode())
	}

	return nil
}
