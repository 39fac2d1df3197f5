package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.Storage.DB.DSN = "postgres://localhost/memento"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

func TestValidate_ValidConfig(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.Driver = "oracle"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingTokenSignKey(t *testing.T) {
	cfg := validConfig()
	cfg.App.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_ZeroQuorum(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.Quorum = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestValidate_ZeroIntervals(t *testing.T) {
	cfg := validConfig()
	cfg.Workers.EscalationInterval = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}

func TestDefaults_Policy(t *testing.T) {
	cfg := defaults()

	assert.Equal(t, DefaultQuorum, cfg.Workers.Quorum)
	assert.Equal(t, DefaultWaitingPeriod, cfg.Workers.WaitingPeriod)
	assert.Equal(t, DefaultVerificationTTL, cfg.Workers.VerificationTTL)
	assert.Equal(t, DefaultEscalationInterval, cfg.Workers.EscalationInterval)
	assert.Equal(t, DefaultReleaseInterval, cfg.Workers.ReleaseInterval)
}
