package config

import "time"

// Production defaults for every tunable the engine carries. They mirror
// the operational policy of the original service: two attestors, a 72
// hour waiting period, 7 day token validity, and ten minute sweeps.
const (
	DefaultHTTPAddress    = "0.0.0.0:8080"
	DefaultRequestTimeout = 30 * time.Second

	DefaultDBDriver = "pgx"

	DefaultTokenIssuer   = "memento-engine"
	DefaultTokenDuration = time.Hour

	DefaultQuorum             = 2
	DefaultWaitingPeriod      = 72 * time.Hour
	DefaultVerificationTTL    = 7 * 24 * time.Hour
	DefaultEscalationInterval = 10 * time.Minute
	DefaultReleaseInterval    = 10 * time.Minute

	DefaultNotifyTimeout = 15 * time.Second
)

// defaults returns a config holding only the built-in default values.
// Merged last by the builder, it fills whatever the explicit sources
// left empty.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			DB: DBConfig{
				Driver: DefaultDBDriver,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			Quorum:             DefaultQuorum,
			WaitingPeriod:      DefaultWaitingPeriod,
			VerificationTTL:    DefaultVerificationTTL,
			EscalationInterval: DefaultEscalationInterval,
			ReleaseInterval:    DefaultReleaseInterval,
		},
		Notify: Notify{
			Timeout: DefaultNotifyTimeout,
		},
	}
}
