package service

import (
	"context"
	"testing"
	"time"

	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/internal/store"
	"github.com/memento-project/memento/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCapsuleService(capsules *mockCapsuleRepository, gateway *mockGateway) *capsuleService {
	if capsules == nil {
		capsules = &mockCapsuleRepository{}
	}
	if gateway == nil {
		gateway = &mockGateway{}
	}

	return &capsuleService{
		capsuleRepository: capsules,
		gateway:           gateway,
		logger:            logger.Nop(),
	}
}

func TestCapsuleService_CreateCapsule_Success(t *testing.T) {
	svc := newTestCapsuleService(&mockCapsuleRepository{
		createCapsuleFn: func(_ context.Context, c models.Capsule) (models.Capsule, error) {
			assert.Equal(t, int64(42), c.AccountID)
			assert.Equal(t, models.ReleaseOnDeath, c.ReleasePolicy)
			assert.False(t, c.Released)
			c.CapsuleID = 100
			return c, nil
		},
	}, nil)

	capsule, err := svc.CreateCapsule(context.Background(), 42, models.CapsuleCreateRequest{
		Title:            "for my daughter",
		Message:          "open this when I am gone",
		ReleasePolicy:    models.ReleaseOnDeath,
		RecipientName:    "Ada",
		RecipientContact: "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), capsule.CapsuleID)
}

func TestCapsuleService_CreateCapsule_Invalid(t *testing.T) {
	svc := newTestCapsuleService(nil, nil)
	releaseAt := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name string
		req  models.CapsuleCreateRequest
	}{
		{name: "empty title", req: models.CapsuleCreateRequest{ReleasePolicy: models.ReleaseImmediate}},
		{name: "unknown policy", req: models.CapsuleCreateRequest{Title: "x", ReleasePolicy: "WHENEVER"}},
		{name: "on-date without date", req: models.CapsuleCreateRequest{Title: "x", ReleasePolicy: models.ReleaseOnDate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCapsule(context.Background(), 42, tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}

	// Control: the same payload with a date is accepted.
	_, err := svc.CreateCapsule(context.Background(), 42, models.CapsuleCreateRequest{
		Title:         "x",
		ReleasePolicy: models.ReleaseOnDate,
		ReleaseAt:     &releaseAt,
	})
	assert.NoError(t, err)
}

func TestCapsuleService_UpdateCapsule_Success(t *testing.T) {
	newTitle := "updated title"
	gets := 0

	svc := newTestCapsuleService(&mockCapsuleRepository{
		getCapsuleFn: func(_ context.Context, capsuleID, accountID int64) (models.Capsule, error) {
			gets++
			c := models.Capsule{
				CapsuleID:     capsuleID,
				AccountID:     accountID,
				Title:         "original title",
				ReleasePolicy: models.ReleaseImmediate,
			}
			if gets > 1 {
				c.Title = newTitle
			}
			return c, nil
		},
		updateCapsuleFn: func(_ context.Context, capsuleID, accountID int64, upd models.CapsuleUpdateRequest, _ time.Time) error {
			assert.Equal(t, int64(100), capsuleID)
			assert.Equal(t, int64(42), accountID)
			require.NotNil(t, upd.Title)
			assert.Equal(t, newTitle, *upd.Title)
			return nil
		},
	}, nil)

	updated, err := svc.UpdateCapsule(context.Background(), 42, 100, models.CapsuleUpdateRequest{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, 2, gets, "update re-reads the capsule")
}

func TestCapsuleService_UpdateCapsule_PolicySwitchNeedsDate(t *testing.T) {
	onDate := models.ReleaseOnDate

	svc := newTestCapsuleService(&mockCapsuleRepository{
		getCapsuleFn: func(_ context.Context, capsuleID, accountID int64) (models.Capsule, error) {
			return models.Capsule{CapsuleID: capsuleID, AccountID: accountID, Title: "x", ReleasePolicy: models.ReleaseImmediate}, nil
		},
	}, nil)

	_, err := svc.UpdateCapsule(context.Background(), 42, 100, models.CapsuleUpdateRequest{ReleasePolicy: &onDate})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCapsuleService_UpdateCapsule_ReleasedCapsule(t *testing.T) {
	newTitle := "too late"

	svc := newTestCapsuleService(&mockCapsuleRepository{
		getCapsuleFn: func(_ context.Context, capsuleID, accountID int64) (models.Capsule, error) {
			return models.Capsule{CapsuleID: capsuleID, AccountID: accountID, Title: "x", ReleasePolicy: models.ReleaseImmediate, Released: true}, nil
		},
		updateCapsuleFn: func(_ context.Context, _, _ int64, _ models.CapsuleUpdateRequest, _ time.Time) error {
			return store.ErrCapsuleReleased
		},
	}, nil)

	_, err := svc.UpdateCapsule(context.Background(), 42, 100, models.CapsuleUpdateRequest{Title: &newTitle})
	assert.ErrorIs(t, err, store.ErrCapsuleReleased)
}

func TestCapsuleService_DeleteCapsule_NotFound(t *testing.T) {
	svc := newTestCapsuleService(&mockCapsuleRepository{
		deleteCapsuleFn: func(_ context.Context, _, _ int64) error {
			return store.ErrCapsuleNotFound
		},
	}, nil)

	err := svc.DeleteCapsule(context.Background(), 42, 100)
	assert.ErrorIs(t, err, store.ErrCapsuleNotFound)
}

func TestCapsuleService_ReleaseEligibleCapsules(t *testing.T) {
	now := time.Now()
	sent := make(chan string, 2)

	svc := newTestCapsuleService(&mockCapsuleRepository{
		listDueCapsulesFn: func(_ context.Context, got time.Time) ([]models.Capsule, error) {
			assert.Equal(t, now, got)
			return []models.Capsule{
				{CapsuleID: 1, ReleasePolicy: models.ReleaseImmediate, RecipientContact: "a@example.com"},
				{CapsuleID: 2, ReleasePolicy: models.ReleaseOnDate},
			}, nil
		},
		listDeathReleasableCapsulesFn: func(_ context.Context) ([]models.Capsule, error) {
			return []models.Capsule{
				{CapsuleID: 3, ReleasePolicy: models.ReleaseOnDeath, RecipientContact: "b@example.com"},
			}, nil
		},
		releaseCapsuleFn: func(_ context.Context, capsuleID int64, _ time.Time) (bool, error) {
			// Capsule 2 was released by a concurrent sweep.
			return capsuleID != 2, nil
		},
	}, &mockGateway{
		sendReleaseNoticeFn: func(_ context.Context, capsule models.Capsule) error {
			sent <- capsule.RecipientContact
			return nil
		},
	})

	released, err := svc.ReleaseEligibleCapsules(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 2, released)

	notices := waitForSends(t, sent, 2)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, notices)
}

func TestCapsuleService_ReleaseEligibleCapsules_ListError(t *testing.T) {
	svc := newTestCapsuleService(&mockCapsuleRepository{
		listDueCapsulesFn: func(_ context.Context, _ time.Time) ([]models.Capsule, error) {
			return nil, errStorage
		},
	}, nil)

	_, err := svc.ReleaseEligibleCapsules(context.Background(), time.Now())
	assert.ErrorIs(t, err, errStorage)
}
