package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrHedgeSetNotFound = errors.New("hedge set not found")

type HedgeSet struct {
	ID uint `gorm:"primaryKey"`

	FridayID uint `gorm:"not null;index"`
	Friday   Friday

	Title  string  `gorm:"size:200;not null"`
	Budget float64 `gorm:"not null"`

	SingleBets    []SingleBet           `gorm:"foreignKey:HedgeSetID;constraint:OnDelete:NO ACTION"`
	LineupEntries []HedgeSetLineupEntry `gorm:"foreignKey:HedgeSetID;constraint:OnDelete:CASCADE"`
}

type HedgeSetLineupEntry struct {
	ID uint `gorm:"primaryKey"`

	HedgeSetID uint `gorm:"not null;index"`
	MemberID   uint `gorm:"not null;index"`
	Member     Member

	Amount float64 `gorm:"not null"`
}

type HedgeSetDAO struct {
	db *gorm.DB
}

func NewHedgeSetDAO(db *gorm.DB) *HedgeSetDAO {
	return &HedgeSetDAO{
		db: db,
	}
}

func (d *HedgeSetDAO) FindAll(ctx context.Context) ([]HedgeSet, error) {
	var hedgeSets []HedgeSet

	result := d.withContext(ctx).
		Joins("JOIN fridays ON fridays.id = hedge_sets.friday_id").
		Order("fridays.bet_date_time DESC").
		Find(&hedgeSets)
	if result.Error != nil {
		return nil, result.Error
	}

	return hedgeSets, nil
}

func (d *HedgeSetDAO) FindByID(ctx context.Context, id uint) (HedgeSet, error) {
	var hedgeSet HedgeSet

	result := d.withContext(ctx).First(&hedgeSet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return HedgeSet{}, ErrHedgeSetNotFound
		}

		return HedgeSet{}, result.Error
	}

	return hedgeSet, nil
}

func (d *HedgeSetDAO) withContext(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Friday.Account").
		Preload("Friday.LineupEntries.Member").
		Preload("SingleBets").
		Preload("LineupEntries.Member")
}
