package dao

import "gorm.io/gorm"

func active(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", true)
}

func byCategory(categoryID int32) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", categoryID)
	}
}

func orderBy(columns string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(columns)
	}
}
