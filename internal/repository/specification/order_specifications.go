package specification

import "gorm.io/gorm"

// OrderNumberPrefix matches orders whose number starts with the given
// prefix (e.g. "ORD-20250917-" for one calendar day).
type OrderNumberPrefix struct {
	Prefix string
}

func (s OrderNumberPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_number LIKE ?", s.Prefix+"%")
}

// IsDefaultOnly keeps only default-flagged addresses.
type IsDefaultOnly struct{}

func (s IsDefaultOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_default = ?", true)
}
