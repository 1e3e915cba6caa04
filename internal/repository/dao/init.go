package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&Account{},
		&Member{},
		&Friday{},
		&HedgeSet{},
		&LineupEntry{},
		&SingleBet{},
		&HedgeSetLineupEntry{},
	)
	if err != nil {
		return err
	}

	return seedAccounts(db)
}

func seedAccounts(db *gorm.DB) error {
	accounts := []Account{
		{ID: 1, Title: "Account 1"},
		{ID: 2, Title: "Account 2"},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&accounts).Error
}
