package models

// WillDocument is the stored-will pointer for an account: where the will
// is kept and who should be told once a case is finalized. The engine
// only ever reads this record; the surrounding product maintains it.
type WillDocument struct {
	// AccountID identifies the owning account.
	AccountID int64 `json:"account_id"`

	// StorageLocation is the human-readable location of the stored will
	// (e.g. a notary office or deposit box description).
	StorageLocation string `json:"storage_location"`

	// FileURL optionally points at an uploaded copy.
	FileURL string `json:"file_url,omitempty"`

	// BeneficiaryEmail receives the will-location notice after a case
	// becomes FINAL. Empty means no notice is sent.
	BeneficiaryEmail string `json:"beneficiary_email,omitempty"`
}

// TableName returns the name of the database table
// associated with the WillDocument model.
func (w WillDocument) TableName() string {
	return "will_documents"
}
