package pkg

import "gorm.io/gorm"

// WithTx executes fn within a database transaction, committing on success
// and rolling back on error or panic. Multi-row writes that must be
// all-or-nothing, like batch ingest, go through here.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
