package scope

import "gorm.io/gorm"

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByPosition keeps sections and topics in the order the source document listed them.
func OrderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
