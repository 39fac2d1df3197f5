package store

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/memento-project/memento/models"
)

const (
	findAccountByUsername = `SELECT id, username, name, is_admin, created_at
    FROM accounts
    WHERE username = $1;`

	getAccountByID = `SELECT id, username, name, is_admin, created_at
    FROM accounts
    WHERE id = $1;`

	createCase = `INSERT INTO death_cases (account_id, reporter_name, reporter_contact, relation, message, status, opened_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id;`

	getCaseByID = `SELECT id, account_id, reporter_name, reporter_contact, relation, message, status, admin_note, opened_at, resolved_at, finalized_at
		FROM death_cases
		WHERE id = $1;`

	countActiveCasesForAccount = `SELECT COUNT(*)
		FROM death_cases
		WHERE account_id = $1 AND status IN ('OPEN', 'CONFIRMED');`

	// Guarded transition out of OPEN. The WHERE clause is the
	// compare-and-swap: zero affected rows means another writer
	// resolved the case first.
	resolveOpenCase = `UPDATE death_cases
		SET status = $1, resolved_at = $2
		WHERE id = $3 AND status = 'OPEN';`

	// Guarded escalation CONFIRMED -> FINAL.
	finalizeConfirmedCase = `UPDATE death_cases
		SET status = 'FINAL', finalized_at = $1, admin_note = COALESCE(admin_note, '') || $2
		WHERE id = $3 AND status = 'CONFIRMED';`

	cancelActiveCasesByOwner = `UPDATE death_cases
		SET status = 'CANCELED_BY_OWNER', resolved_at = COALESCE(resolved_at, $1), admin_note = COALESCE(admin_note, '') || $2
		WHERE account_id = $3 AND status IN ('OPEN', 'CONFIRMED');`

	// resolved_at stays untouched when the forced status is OPEN and is
	// never moved once set. FINAL rows are excluded by the guard.
	adminUpdateCase = `UPDATE death_cases
		SET status = $1,
			resolved_at = CASE WHEN $2 = 'OPEN' THEN resolved_at ELSE COALESCE(resolved_at, $3) END,
			admin_note = COALESCE(admin_note, '') || $4
		WHERE id = $5 AND status <> 'FINAL';`

	listEscalatableCases = `SELECT id, account_id, reporter_name, reporter_contact, relation, message, status, admin_note, opened_at, resolved_at, finalized_at
		FROM death_cases
		WHERE status = 'CONFIRMED' AND resolved_at <= $1;`

	createVerification = `INSERT INTO case_verifications (case_id, contact_id, token, status, issued_at)
    VALUES ($1, $2, $3, 'PENDING', $4)
    RETURNING id;`

	getVerificationByToken = `SELECT id, case_id, contact_id, token, status, issued_at, decided_at
		FROM case_verifications
		WHERE token = $1;`

	// Guarded single-use redemption PENDING -> decided.
	decideVerification = `UPDATE case_verifications
		SET status = $1, decided_at = $2
		WHERE id = $3 AND status = 'PENDING';`

	tallyVerifications = `SELECT COUNT(*),
			COUNT(CASE WHEN status = 'CONFIRMED' THEN 1 END),
			COUNT(CASE WHEN status <> 'PENDING' THEN 1 END)
		FROM case_verifications
		WHERE case_id = $1;`

	createCapsule = `INSERT INTO time_capsules (account_id, title, message, media_url, release_policy, release_at, recipient_name, recipient_contact, released, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
    RETURNING id;`

	getCapsuleByID = `SELECT id, account_id, title, message, media_url, release_policy, release_at, recipient_name, recipient_contact, released, created_at, updated_at, released_at
		FROM time_capsules
		WHERE id = $1 AND account_id = $2;`

	listCapsulesByAccount = `SELECT id, account_id, title, message, media_url, release_policy, release_at, recipient_name, recipient_contact, released, created_at, updated_at, released_at
		FROM time_capsules
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC;`

	deleteCapsule = `DELETE FROM time_capsules
		WHERE id = $1 AND account_id = $2 AND released = FALSE;`

	// Guarded monotonic release flip.
	releaseCapsule = `UPDATE time_capsules
		SET released = TRUE, released_at = $1
		WHERE id = $2 AND released = FALSE;`

	listDeathReleasableCapsules = `SELECT c.id, c.account_id, c.title, c.message, c.media_url, c.release_policy, c.release_at, c.recipient_name, c.recipient_contact, c.released, c.created_at, c.updated_at, c.released_at
		FROM time_capsules AS c
		WHERE c.release_policy = 'ON_DEATH' AND c.released = FALSE
			AND EXISTS (SELECT 1 FROM death_cases AS d WHERE d.account_id = c.account_id AND d.status = 'FINAL');`

	listOnDeathCapsulesByAccount = `SELECT id, account_id, title, message, media_url, release_policy, release_at, recipient_name, recipient_contact, released, created_at, updated_at, released_at
		FROM time_capsules
		WHERE account_id = $1 AND release_policy = 'ON_DEATH' AND released = FALSE;`

	createContact = `INSERT INTO trusted_contacts (account_id, name, relation, email, phone, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id;`

	listContactsByAccount = `SELECT id, account_id, name, relation, email, phone, created_at
		FROM trusted_contacts
		WHERE account_id = $1
		ORDER BY id;`

	countContactsByAccount = `SELECT COUNT(*)
		FROM trusted_contacts
		WHERE account_id = $1;`

	deleteContact = `DELETE FROM trusted_contacts
		WHERE id = $1 AND account_id = $2;`

	getWillByAccount = `SELECT account_id, storage_location, file_url, beneficiary_email
		FROM will_documents
		WHERE account_id = $1;`
)

// psql builds the dynamic queries with $N placeholders, which both
// supported drivers accept.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var caseColumns = []string{
	"id", "account_id", "reporter_name", "reporter_contact", "relation",
	"message", "status", "admin_note", "opened_at", "resolved_at", "finalized_at",
}

var capsuleColumns = []string{
	"id", "account_id", "title", "message", "media_url", "release_policy",
	"release_at", "recipient_name", "recipient_contact", "released",
	"created_at", "updated_at", "released_at",
}

// buildListCasesQuery assembles the admin case listing with optional
// status and account filters.
func buildListCasesQuery(filter models.CaseFilter) (string, []any, error) {
	qb := psql.Select(caseColumns...).From(models.Case{}.TableName())

	if filter.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.AccountID != 0 {
		qb = qb.Where(squirrel.Eq{"account_id": filter.AccountID})
	}

	return qb.OrderBy("opened_at DESC", "id DESC").ToSql()
}

// buildUpdateCapsuleQuery assembles a partial update touching only the
// fields present in upd. The released guard keeps released capsules
// immutable at the statement level.
func buildUpdateCapsuleQuery(capsuleID int64, accountID int64, upd models.CapsuleUpdateRequest, now time.Time) (string, []any, error) {
	qb := psql.Update(models.Capsule{}.TableName()).Set("updated_at", now)

	if upd.Title != nil {
		qb = qb.Set("title", *upd.Title)
	}
	if upd.Message != nil {
		qb = qb.Set("message", *upd.Message)
	}
	if upd.MediaURL != nil {
		qb = qb.Set("media_url", *upd.MediaURL)
	}
	if upd.ReleasePolicy != nil {
		qb = qb.Set("release_policy", *upd.ReleasePolicy)
	}
	if upd.ReleaseAt != nil {
		qb = qb.Set("release_at", *upd.ReleaseAt)
	}
	if upd.RecipientName != nil {
		qb = qb.Set("recipient_name", *upd.RecipientName)
	}
	if upd.RecipientContact != nil {
		qb = qb.Set("recipient_contact", *upd.RecipientContact)
	}

	qb = qb.Where(squirrel.Eq{
		"id":         capsuleID,
		"account_id": accountID,
		"released":   false,
	})

	return qb.ToSql()
}

// buildDueCapsulesQuery selects unreleased capsules whose policy makes
// them eligible at the given instant: every IMMEDIATE capsule and every
// ON_DATE capsule whose release moment has passed. ON_DEATH eligibility
// needs the case table and has its own query.
func buildDueCapsulesQuery(now time.Time) (string, []any, error) {
	return psql.Select(capsuleColumns...).From(models.Capsule{}.TableName()).
		Where(squirrel.Eq{"released": false}).
		Where(squirrel.Or{
			squirrel.Eq{"release_policy": models.ReleaseImmediate},
			squirrel.And{
				squirrel.Eq{"release_policy": models.ReleaseOnDate},
				squirrel.LtOrEq{"release_at": now},
			},
		}).
		OrderBy("id").
		ToSql()
}
