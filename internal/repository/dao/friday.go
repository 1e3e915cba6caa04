package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrFridayNotFound = errors.New("friday not found")

type Friday struct {
	ID uint `gorm:"primaryKey"`

	AccountID uint `gorm:"not null;index"`
	Account   Account

	BetDateTime            time.Time `gorm:"not null;index"`
	TotalOddsHongKong      float64   `gorm:"not null"`
	TotalOddsInternational float64   `gorm:"not null"`
	TotalDeposit           float64   `gorm:"not null;check:chk_fridays_total_deposit,total_deposit > 0 AND total_deposit < 8100000"`
	Status                 string    `gorm:"size:20;not null"`
	Dog                    *string   `gorm:"size:100"`

	LineupEntries []LineupEntry `gorm:"foreignKey:FridayID;constraint:OnDelete:CASCADE"`
	SingleBets    []SingleBet   `gorm:"foreignKey:FridayID;constraint:OnDelete:CASCADE"`
	HedgeSets     []HedgeSet    `gorm:"foreignKey:FridayID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type LineupEntry struct {
	ID uint `gorm:"primaryKey"`

	FridayID uint `gorm:"not null;index"`
	MemberID uint `gorm:"not null;index"`
	Member   Member

	Amount float64 `gorm:"not null"`
}

type SingleBet struct {
	ID uint `gorm:"primaryKey"`

	Title             string    `gorm:"size:250;not null"`
	MatchStartTime    time.Time `gorm:"not null"`
	MatchEndTime      time.Time `gorm:"not null"`
	OddsHongKong      float64   `gorm:"not null"`
	OddsInternational float64   `gorm:"not null"`
	Status            string    `gorm:"size:20;not null"`

	// A single bet belongs to either a Friday directly or a hedge set,
	// never both. The hedge-set reference must not cascade, otherwise two
	// cascade paths would reach single_bets through fridays.
	FridayID   *uint `gorm:"index"`
	HedgeSetID *uint `gorm:"index"`
}

type FridayDAO struct {
	db *gorm.DB
}

func NewFridayDAO(db *gorm.DB) *FridayDAO {
	return &FridayDAO{
		db: db,
	}
}

// Insert persists the Friday together with every nested child it carries
// (lineup entries, direct single bets, hedge sets with their bets and lineup)
// in a single transaction.
func (d *FridayDAO) Insert(ctx context.Context, friday Friday) (Friday, error) {
	result := d.db.WithContext(ctx).Create(&friday)
	if result.Error != nil {
		return Friday{}, result.Error
	}

	return friday, nil
}

func (d *FridayDAO) FindAll(ctx context.Context) ([]Friday, error) {
	var fridays []Friday

	result := d.withAggregate(ctx).
		Order("bet_date_time DESC").
		Find(&fridays)
	if result.Error != nil {
		return nil, result.Error
	}

	return fridays, nil
}

func (d *FridayDAO) FindByID(ctx context.Context, id uint) (Friday, error) {
	var friday Friday

	result := d.withAggregate(ctx).First(&friday, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Friday{}, ErrFridayNotFound
		}

		return Friday{}, result.Error
	}

	return friday, nil
}

func (d *FridayDAO) withAggregate(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx).
		Preload("Account").
		Preload("LineupEntries.Member").
		Preload("SingleBets").
		Preload("HedgeSets.SingleBets").
		Preload("HedgeSets.LineupEntries.Member")
}

// Update writes the Friday's own columns. Children are replaced through the
// dedicated Replace methods.
func (d *FridayDAO) Update(ctx context.Context, friday Friday) error {
	result := d.db.WithContext(ctx).
		Model(&Friday{}).
		Where("id = ?", friday.ID).
		Select("account_id", "bet_date_time", "total_odds_hong_kong",
			"total_odds_international", "total_deposit", "status", "dog").
		Updates(friday)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFridayNotFound
	}

	return nil
}

func (d *FridayDAO) ReplaceLineup(ctx context.Context, fridayID uint, entries []LineupEntry) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("friday_id = ?", fridayID).Delete(&LineupEntry{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].FridayID = fridayID
		}

		return tx.Create(&entries).Error
	})
}

// ReplaceSingleBets swaps the bets owned directly by the Friday. Bets owned
// by a hedge set are untouched.
func (d *FridayDAO) ReplaceSingleBets(ctx context.Context, fridayID uint, bets []SingleBet) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("friday_id = ?", fridayID).Delete(&SingleBet{}).Error; err != nil {
			return err
		}

		for i := range bets {
			id := fridayID
			bets[i].FridayID = &id
			bets[i].HedgeSetID = nil
		}

		return tx.Create(&bets).Error
	})
}

// ReplaceHedgeSet removes the Friday's existing hedge sets (their bets
// first, as that reference does not cascade) and creates the given one.
func (d *FridayDAO) ReplaceHedgeSet(ctx context.Context, fridayID uint, hedgeSet HedgeSet) (HedgeSet, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteHedgeSetsOfFriday(tx, fridayID); err != nil {
			return err
		}

		hedgeSet.FridayID = fridayID

		return tx.Create(&hedgeSet).Error
	})
	if err != nil {
		return HedgeSet{}, err
	}

	return hedgeSet, nil
}

func (d *FridayDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hedge-owned single bets do not cascade; remove them before the
		// Friday so the hedge-set cascade can proceed.
		hedgeSetIDs := tx.Model(&HedgeSet{}).Select("id").Where("friday_id = ?", id)
		if err := tx.Where("hedge_set_id IN (?)", hedgeSetIDs).Delete(&SingleBet{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Friday{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrFridayNotFound
		}

		return nil
	})
}

func deleteHedgeSetsOfFriday(tx *gorm.DB, fridayID uint) error {
	hedgeSetIDs := tx.Model(&HedgeSet{}).Select("id").Where("friday_id = ?", fridayID)
	if err := tx.Where("hedge_set_id IN (?)", hedgeSetIDs).Delete(&SingleBet{}).Error; err != nil {
		return err
	}

	return tx.Where("friday_id = ?", fridayID).Delete(&HedgeSet{}).Error
}
