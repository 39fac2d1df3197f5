package store

import "github.com/memento-project/memento/internal/logger"

// Storages bundles every repository behind one value for wiring into the
// service layer.
type Storages struct {
	AccountRepository      AccountRepository
	CaseRepository         CaseRepository
	VerificationRepository VerificationRepository
	CapsuleRepository      CapsuleRepository
	ContactRepository      ContactRepository
	WillRepository         WillRepository
}

// NewStorages constructs every repository on top of the shared database
// handle.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:      NewAccountRepository(db, log),
		CaseRepository:         NewCaseRepository(db, log),
		VerificationRepository: NewVerificationRepository(db, log),
		CapsuleRepository:      NewCapsuleRepository(db, log),
		ContactRepository:      NewContactRepository(db, log),
		WillRepository:         NewWillRepository(db, log),
	}
}
