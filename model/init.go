package model

import "gorm.io/gorm"

func InstallDB(db *gorm.DB) {
	if err := db.AutoMigrate(
		&User{},
		&Chat{}); err != nil {
		panic(err)
	}
}
