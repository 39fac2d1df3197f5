package notify

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_gateway_mock.go -package=mock

import (
	"context"

	"github.com/memento-project/memento/models"
)

// Gateway delivers outbound notices to the notification provider. The
// engine treats delivery as best effort: callers dispatch in the
// background and log failures, and no lifecycle transition ever waits on
// or rolls back over a delivery error.
type Gateway interface {
	// SendVerificationLink delivers a single-use confirmation link to a
	// trusted contact invited into a case.
	SendVerificationLink(ctx context.Context, contact models.Contact, c models.Case, token string) error

	// SendReleaseNotice tells a capsule's recipient that the capsule has
	// been released. Callers skip capsules without a recipient contact.
	SendReleaseNotice(ctx context.Context, capsule models.Capsule) error

	// SendWillLocationNotice tells the will beneficiary where the stored
	// will is kept, once the owning account's case is FINAL.
	SendWillLocationNotice(ctx context.Context, will models.WillDocument) error
}
