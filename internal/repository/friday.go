package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository/dao"
)

var ErrFridayNotFound = dao.ErrFridayNotFound

type FridayDAO interface {
	Insert(ctx context.Context, friday dao.Friday) (dao.Friday, error)
	FindAll(ctx context.Context) ([]dao.Friday, error)
	FindByID(ctx context.Context, id uint) (dao.Friday, error)
	Update(ctx context.Context, friday dao.Friday) error
	ReplaceLineup(ctx context.Context, fridayID uint, entries []dao.LineupEntry) error
	ReplaceSingleBets(ctx context.Context, fridayID uint, bets []dao.SingleBet) error
	ReplaceHedgeSet(ctx context.Context, fridayID uint, hedgeSet dao.HedgeSet) (dao.HedgeSet, error)
	Delete(ctx context.Context, id uint) error
}

type FridayRepository struct {
	dao FridayDAO
}

func NewFridayRepository(dao FridayDAO) *FridayRepository {
	return &FridayRepository{
		dao: dao,
	}
}

// Create persists the Friday and every nested child it carries atomically.
func (r *FridayRepository) Create(ctx context.Context, friday domain.Friday) (domain.Friday, error) {
	created, err := r.dao.Insert(ctx, fridayToDAO(friday))
	if err != nil {
		return domain.Friday{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return fridayToDomain(created), nil
}

func (r *FridayRepository) FindAll(ctx context.Context) ([]domain.Friday, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	fridays := make([]domain.Friday, 0, len(found))
	for _, f := range found {
		fridays = append(fridays, fridayToDomain(f))
	}

	return fridays, nil
}

func (r *FridayRepository) FindByID(ctx context.Context, id uint) (domain.Friday, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Friday{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return fridayToDomain(found), nil
}

func (r *FridayRepository) Update(ctx context.Context, friday domain.Friday) error {
	if err := r.dao.Update(ctx, fridayToDAO(friday)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *FridayRepository) ReplaceLineup(ctx context.Context, fridayID uint, entries []domain.LineupEntry) error {
	daoEntries := make([]dao.LineupEntry, 0, len(entries))
	for _, e := range entries {
		daoEntries = append(daoEntries, dao.LineupEntry{
			MemberID: e.MemberID,
			Amount:   e.Amount,
		})
	}

	if err := r.dao.ReplaceLineup(ctx, fridayID, daoEntries); err != nil {
		return fmt.Errorf("r.dao.ReplaceLineup -> %w", err)
	}

	return nil
}

func (r *FridayRepository) ReplaceSingleBets(ctx context.Context, fridayID uint, bets []domain.SingleBet) error {
	daoBets := make([]dao.SingleBet, 0, len(bets))
	for _, b := range bets {
		daoBets = append(daoBets, singleBetToDAO(b))
	}

	if err := r.dao.ReplaceSingleBets(ctx, fridayID, daoBets); err != nil {
		return fmt.Errorf("r.dao.ReplaceSingleBets -> %w", err)
	}

	return nil
}

func (r *FridayRepository) ReplaceHedgeSet(ctx context.Context, fridayID uint, hedgeSet domain.HedgeSet) (domain.HedgeSet, error) {
	replaced, err := r.dao.ReplaceHedgeSet(ctx, fridayID, hedgeSetToDAO(hedgeSet))
	if err != nil {
		return domain.HedgeSet{}, fmt.Errorf("r.dao.ReplaceHedgeSet -> %w", err)
	}

	return hedgeSetToDomain(replaced), nil
}

func (r *FridayRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func fridayToDAO(f domain.Friday) dao.Friday {
	daoFriday := dao.Friday{
		ID:                     f.ID,
		AccountID:              f.AccountID,
		BetDateTime:            f.BetDateTime,
		TotalOddsHongKong:      f.TotalOddsHongKong,
		TotalOddsInternational: f.TotalOddsInternational,
		TotalDeposit:           f.TotalDeposit,
		Status:                 string(f.Status),
		Dog:                    f.Dog,
	}

	for _, e := range f.LineupEntries {
		daoFriday.LineupEntries = append(daoFriday.LineupEntries, dao.LineupEntry{
			MemberID: e.MemberID,
			Amount:   e.Amount,
		})
	}

	for _, b := range f.SingleBets {
		daoFriday.SingleBets = append(daoFriday.SingleBets, singleBetToDAO(b))
	}

	for _, hs := range f.HedgeSets {
		daoFriday.HedgeSets = append(daoFriday.HedgeSets, hedgeSetToDAO(hs))
	}

	return daoFriday
}

func fridayToDomain(f dao.Friday) domain.Friday {
	friday := domain.Friday{
		ID:                     f.ID,
		AccountID:              f.AccountID,
		AccountTitle:           f.Account.Title,
		BetDateTime:            f.BetDateTime,
		TotalOddsHongKong:      f.TotalOddsHongKong,
		TotalOddsInternational: f.TotalOddsInternational,
		TotalDeposit:           f.TotalDeposit,
		Status:                 domain.BetStatus(f.Status),
		Dog:                    f.Dog,
	}

	for _, e := range f.LineupEntries {
		friday.LineupEntries = append(friday.LineupEntries, lineupEntryToDomain(e))
	}

	for _, b := range f.SingleBets {
		friday.SingleBets = append(friday.SingleBets, singleBetToDomain(b))
	}

	for _, hs := range f.HedgeSets {
		friday.HedgeSets = append(friday.HedgeSets, hedgeSetToDomain(hs))
	}

	return friday
}

func lineupEntryToDomain(e dao.LineupEntry) domain.LineupEntry {
	return domain.LineupEntry{
		ID:         e.ID,
		FridayID:   e.FridayID,
		MemberID:   e.MemberID,
		MemberName: e.Member.Name,
		Amount:     e.Amount,
	}
}

func singleBetToDAO(b domain.SingleBet) dao.SingleBet {
	daoBet := dao.SingleBet{
		ID:                b.ID,
		Title:             b.Title,
		MatchStartTime:    b.MatchStartTime,
		MatchEndTime:      b.MatchEndTime,
		OddsHongKong:      b.OddsHongKong,
		OddsInternational: b.OddsInternational,
		Status:            string(b.Status),
	}

	if fridayID, ok := b.Owner.FridayID(); ok {
		daoBet.FridayID = &fridayID
	}
	if hedgeSetID, ok := b.Owner.HedgeSetID(); ok {
		daoBet.HedgeSetID = &hedgeSetID
	}

	return daoBet
}

func singleBetToDomain(b dao.SingleBet) domain.SingleBet {
	bet := domain.SingleBet{
		ID:                b.ID,
		Title:             b.Title,
		MatchStartTime:    b.MatchStartTime,
		MatchEndTime:      b.MatchEndTime,
		OddsHongKong:      b.OddsHongKong,
		OddsInternational: b.OddsInternational,
		Status:            domain.BetStatus(b.Status),
	}

	switch {
	case b.FridayID != nil:
		bet.Owner = domain.FridayOwner(*b.FridayID)
	case b.HedgeSetID != nil:
		bet.Owner = domain.HedgeSetOwner(*b.HedgeSetID)
	}

	return bet
}

func hedgeSetToDAO(hs domain.HedgeSet) dao.HedgeSet {
	daoHedgeSet := dao.HedgeSet{
		ID:       hs.ID,
		FridayID: hs.FridayID,
		Title:    hs.Title,
		Budget:   hs.Budget,
	}

	for _, b := range hs.SingleBets {
		daoHedgeSet.SingleBets = append(daoHedgeSet.SingleBets, singleBetToDAO(b))
	}

	for _, e := range hs.LineupEntries {
		daoHedgeSet.LineupEntries = append(daoHedgeSet.LineupEntries, dao.HedgeSetLineupEntry{
			MemberID: e.MemberID,
			Amount:   e.Amount,
		})
	}

	return daoHedgeSet
}

func hedgeSetToDomain(hs dao.HedgeSet) domain.HedgeSet {
	hedgeSet := domain.HedgeSet{
		ID:       hs.ID,
		FridayID: hs.FridayID,
		Title:    hs.Title,
		Budget:   hs.Budget,
	}

	for _, b := range hs.SingleBets {
		hedgeSet.SingleBets = append(hedgeSet.SingleBets, singleBetToDomain(b))
	}

	for _, e := range hs.LineupEntries {
		hedgeSet.LineupEntries = append(hedgeSet.LineupEntries, hedgeSetLineupEntryToDomain(e))
	}

	return hedgeSet
}

func hedgeSetLineupEntryToDomain(e dao.HedgeSetLineupEntry) domain.HedgeSetLineupEntry {
	return domain.HedgeSetLineupEntry{
		ID:         e.ID,
		HedgeSetID: e.HedgeSetID,
		MemberID:   e.MemberID,
		MemberName: e.Member.Name,
		Amount:     e.Amount,
	}
}
