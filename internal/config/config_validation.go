package config

// validate checks that the final merged [StructuredConfig] satisfies
// the invariants the engine depends on at startup. Defaults are merged
// before validation, so a failure here means an operator explicitly
// supplied a broken value or omitted a required one.
//
// Returns nil if the configuration is valid, or a sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.Quorum < 1 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.WaitingPeriod <= 0 || cfg.Workers.VerificationTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.EscalationInterval <= 0 || cfg.Workers.ReleaseInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
