package dao

import "gorm.io/gorm"

// InitTables migrates the relational schema. MongoDB needs no migration,
// only MongoChatDAO.EnsureIndexes.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Chat{},
	)
}
