package store

import "github.com/memento-project/memento/migrations"

// Migrate applies the embedded goose migrations using the dialect of the
// connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
