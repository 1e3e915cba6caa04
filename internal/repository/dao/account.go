package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

type Account struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:100;not null"`

	Fridays []Friday `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

type AccountDAO struct {
	db *gorm.DB
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{
		db: db,
	}
}

func (d *AccountDAO) FindAll(ctx context.Context) ([]Account, error) {
	var accounts []Account

	result := d.db.WithContext(ctx).Order("id").Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return accounts, nil
}

func (d *AccountDAO) FindByID(ctx context.Context, id uint) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}
