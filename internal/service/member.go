package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository"
)

var (
	ErrMemberNotFound = repository.ErrMemberNotFound
	ErrMemberInUse    = repository.ErrMemberInUse
)

const maxMemberNameLength = 100

type MemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindAll(ctx context.Context) ([]domain.Member, error)
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	Update(ctx context.Context, member domain.Member) (domain.Member, error)
	Delete(ctx context.Context, id uint) error
	HasLineupEntries(ctx context.Context, memberID uint) (bool, error)
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return members, nil
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

func (s *MemberService) CreateMember(ctx context.Context, name string) (domain.Member, error) {
	name, err := normalizeMemberName(name)
	if err != nil {
		return domain.Member{}, err
	}

	created, err := s.repo.Create(ctx, domain.Member{Name: name})
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, id uint, name string) (domain.Member, error) {
	name, err := normalizeMemberName(name)
	if err != nil {
		return domain.Member{}, err
	}

	if _, err = s.repo.FindByID(ctx, id); err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, domain.Member{ID: id, Name: name})
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteMember refuses to remove a member that is still referenced by any
// lineup entry.
func (s *MemberService) DeleteMember(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	inUse, err := s.repo.HasLineupEntries(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.HasLineupEntries -> %w", err)
	}
	if inUse {
		return ErrMemberInUse
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func normalizeMemberName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", newValidationError("Name is required")
	}
	// The cap counts characters, not bytes, so multi-byte names get the
	// full 100.
	if utf8.RuneCountInString(trimmed) > maxMemberNameLength {
		return "", newValidationError("Name must not exceed %d characters", maxMemberNameLength)
	}

	return trimmed, nil
}
