package notify

import (
	"context"
	"time"

	"github.com/memento-project/memento/internal/logger"
)

// dispatchTimeout bounds one background delivery attempt.
const dispatchTimeout = 30 * time.Second

// Dispatch runs a delivery attempt in the background. The attempt gets a
// fresh detached context so it survives the request that triggered it,
// and a failure is logged and forgotten. State transitions must already
// be durable before Dispatch is called.
func Dispatch(log *logger.Logger, name string, send func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := send(ctx); err != nil {
			log.Err(err).
				Str("notification", name).
				Msg("notification delivery failed")
		}
	}()
}
