package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository/dao"
)

var ErrAccountNotFound = dao.ErrAccountNotFound

type AccountDAO interface {
	FindAll(ctx context.Context) ([]dao.Account, error)
	FindByID(ctx context.Context, id uint) (dao.Account, error)
}

type AccountRepository struct {
	dao AccountDAO
}

func NewAccountRepository(dao AccountDAO) *AccountRepository {
	return &AccountRepository{
		dao: dao,
	}
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	accounts := make([]domain.Account, 0, len(found))
	for _, a := range found {
		accounts = append(accounts, r.daoToDomain(a))
	}

	return accounts, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (domain.Account, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) daoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:    a.ID,
		Title: a.Title,
	}
}
