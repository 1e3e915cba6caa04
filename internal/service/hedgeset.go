package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository"
)

var ErrHedgeSetNotFound = repository.ErrHedgeSetNotFound

type HedgeSetRepository interface {
	FindAll(ctx context.Context) ([]domain.HedgeSet, error)
	FindByID(ctx context.Context, id uint) (domain.HedgeSet, error)
}

type HedgeSetService struct {
	repo HedgeSetRepository
}

func NewHedgeSetService(repo HedgeSetRepository) *HedgeSetService {
	return &HedgeSetService{
		repo: repo,
	}
}

func (s *HedgeSetService) ListHedgeSets(ctx context.Context) ([]domain.HedgeSet, error) {
	hedgeSets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return hedgeSets, nil
}

func (s *HedgeSetService) GetHedgeSet(ctx context.Context, id uint) (domain.HedgeSet, error) {
	hedgeSet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.HedgeSet{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return hedgeSet, nil
}
