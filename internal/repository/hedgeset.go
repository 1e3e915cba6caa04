package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository/dao"
)

var ErrHedgeSetNotFound = dao.ErrHedgeSetNotFound

type HedgeSetDAO interface {
	FindAll(ctx context.Context) ([]dao.HedgeSet, error)
	FindByID(ctx context.Context, id uint) (dao.HedgeSet, error)
}

type HedgeSetRepository struct {
	dao HedgeSetDAO
}

func NewHedgeSetRepository(dao HedgeSetDAO) *HedgeSetRepository {
	return &HedgeSetRepository{
		dao: dao,
	}
}

func (r *HedgeSetRepository) FindAll(ctx context.Context) ([]domain.HedgeSet, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	hedgeSets := make([]domain.HedgeSet, 0, len(found))
	for _, hs := range found {
		hedgeSets = append(hedgeSets, r.daoToDomainWithFriday(hs))
	}

	return hedgeSets, nil
}

func (r *HedgeSetRepository) FindByID(ctx context.Context, id uint) (domain.HedgeSet, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.HedgeSet{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomainWithFriday(found), nil
}

func (r *HedgeSetRepository) daoToDomainWithFriday(hs dao.HedgeSet) domain.HedgeSet {
	hedgeSet := hedgeSetToDomain(hs)
	hedgeSet.FridayDate = hs.Friday.BetDateTime
	hedgeSet.FridayAccountTitle = hs.Friday.Account.Title

	for _, e := range hs.Friday.LineupEntries {
		hedgeSet.FridayLineupEntries = append(hedgeSet.FridayLineupEntries, lineupEntryToDomain(e))
	}

	return hedgeSet
}
