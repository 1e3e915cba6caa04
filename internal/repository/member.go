package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository/dao"
)

var (
	ErrMemberNotFound = dao.ErrMemberNotFound
	ErrMemberInUse    = dao.ErrMemberInUse
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindAll(ctx context.Context) ([]dao.Member, error)
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	FindByIDs(ctx context.Context, ids []uint) ([]dao.Member, error)
	Update(ctx context.Context, member dao.Member) (dao.Member, error)
	Delete(ctx context.Context, id uint) error
	CountLineupEntries(ctx context.Context, memberID uint) (int64, error)
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, dao.Member{Name: member.Name})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindAll(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	members := make([]domain.Member, 0, len(found))
	for _, m := range found {
		members = append(members, r.daoToDomain(m))
	}

	return members, nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Member, error) {
	found, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByIDs -> %w", err)
	}

	members := make([]domain.Member, 0, len(found))
	for _, m := range found {
		members = append(members, r.daoToDomain(m))
	}

	return members, nil
}

func (r *MemberRepository) Update(ctx context.Context, member domain.Member) (domain.Member, error) {
	updated, err := r.dao.Update(ctx, dao.Member{ID: member.ID, Name: member.Name})
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MemberRepository) HasLineupEntries(ctx context.Context, memberID uint) (bool, error) {
	count, err := r.dao.CountLineupEntries(ctx, memberID)
	if err != nil {
		return false, fmt.Errorf("r.dao.CountLineupEntries -> %w", err)
	}

	return count > 0, nil
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:   m.ID,
		Name: m.Name,
	}
}
