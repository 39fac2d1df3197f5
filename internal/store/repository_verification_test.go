package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/memento-project/memento/internal/logger"
	"github.com/memento-project/memento/models"
)

func newTestVerificationRepo(t *testing.T) (*verificationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &verificationRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetVerificationByToken_NotFound(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM case_verifications").
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetVerificationByToken(context.Background(), "unknown")
	if !errors.Is(err, ErrVerificationNotFound) {
		t.Fatalf("expected ErrVerificationNotFound, got %v", err)
	}
}

func TestDecideVerification_SingleUse(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	now := time.Now()

	mock.ExpectExec("UPDATE case_verifications").
		WithArgs(models.VerificationConfirmed, now, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	won, err := repo.DecideVerification(context.Background(), 100, models.VerificationConfirmed, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !won {
		t.Error("expected first decision to win")
	}

	// Second redemption of the same token affects zero rows.
	mock.ExpectExec("UPDATE case_verifications").
		WithArgs(models.VerificationRejected, now, int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	won, err = repo.DecideVerification(context.Background(), 100, models.VerificationRejected, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if won {
		t.Error("expected repeated decision to lose the guard")
	}
}

func TestTallyVerifications(t *testing.T) {
	repo, mock, db := newTestVerificationRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM case_verifications").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "decided"}).AddRow(5, 2, 3))

	tally, err := repo.TallyVerifications(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tally.Total != 5 || tally.Confirmed != 2 || tally.Decided != 3 {
		t.Errorf("unexpected tally: %+v", tally)
	}
}
