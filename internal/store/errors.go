package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountNotFound is returned when a lookup by username or id matches
	// no account record.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrCaseNotFound is returned when a query or update targets a
	// death-suspicion case that does not exist in the database.
	ErrCaseNotFound = errors.New("case was not found")

	// ErrActiveCaseExists is returned when creating a case collides with
	// the one-active-case-per-account constraint in the database.
	ErrActiveCaseExists = errors.New("account already has an active case")

	// ErrCaseFinalized is returned when an administrative update targets a
	// case that has already reached the FINAL state. FINAL cases are
	// immutable except for note appends.
	ErrCaseFinalized = errors.New("case is finalized and cannot be changed")

	// ErrVerificationNotFound is returned when a redemption token matches
	// no issued verification.
	ErrVerificationNotFound = errors.New("verification was not found")

	// ErrCapsuleNotFound is returned when a query or update targets a
	// capsule that does not exist or is not owned by the caller.
	ErrCapsuleNotFound = errors.New("capsule was not found")

	// ErrCapsuleReleased is returned when a mutation targets a capsule
	// whose released flag is already set. Released capsules are immutable.
	ErrCapsuleReleased = errors.New("capsule was already released")

	// ErrContactAlreadyExists is returned when registering a trusted
	// contact violates the per-account email uniqueness constraint.
	ErrContactAlreadyExists = errors.New("trusted contact already exists")

	// ErrContactNotFound is returned when a delete targets a contact that
	// does not exist or is not owned by the caller.
	ErrContactNotFound = errors.New("trusted contact was not found")

	// ErrWillNotFound is returned when an account has no stored-will record.
	ErrWillNotFound = errors.New("will document was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when copying column values from a single
	// result row into Go variables fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when an error is reported during result
	// set iteration after the rows have been consumed.
	ErrScanningRows = errors.New("error during rows iteration")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
