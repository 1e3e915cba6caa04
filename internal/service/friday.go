package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository"
)

var (
	ErrFridayNotFound  = repository.ErrFridayNotFound
	ErrAccountNotFound = repository.ErrAccountNotFound
)

const (
	minTotalDeposit = 0.01
	maxTotalDeposit = 8_100_000.00

	fridaySingleBetCount   = 3
	hedgeSetSingleBetCount = 2

	// Lineup amounts must add up to the total deposit within this tolerance.
	lineupSumTolerance = 0.01
)

type FridayRepository interface {
	Create(ctx context.Context, friday domain.Friday) (domain.Friday, error)
	FindAll(ctx context.Context) ([]domain.Friday, error)
	FindByID(ctx context.Context, id uint) (domain.Friday, error)
	Update(ctx context.Context, friday domain.Friday) error
	ReplaceLineup(ctx context.Context, fridayID uint, entries []domain.LineupEntry) error
	ReplaceSingleBets(ctx context.Context, fridayID uint, bets []domain.SingleBet) error
	ReplaceHedgeSet(ctx context.Context, fridayID uint, hedgeSet domain.HedgeSet) (domain.HedgeSet, error)
	Delete(ctx context.Context, id uint) error
}

type AccountRepository interface {
	FindAll(ctx context.Context) ([]domain.Account, error)
	FindByID(ctx context.Context, id uint) (domain.Account, error)
}

type FridayMemberRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]domain.Member, error)
}

type FridayService struct {
	repo        FridayRepository
	accountRepo AccountRepository
	memberRepo  FridayMemberRepository
	now         func() time.Time
}

func NewFridayService(repo FridayRepository, accountRepo AccountRepository, memberRepo FridayMemberRepository, now func() time.Time) *FridayService {
	if now == nil {
		now = time.Now
	}

	return &FridayService{
		repo:        repo,
		accountRepo: accountRepo,
		memberRepo:  memberRepo,
		now:         now,
	}
}

// Now is the clock the service was built with. Response shaping uses it to
// derive the current-Friday flag instead of reading the system time.
func (s *FridayService) Now() time.Time {
	return s.now()
}

// FridayUpdate carries the optional fields of a partial update. A nil field
// leaves the corresponding value unchanged.
type FridayUpdate struct {
	AccountID              *uint
	BetDateTime            *time.Time
	TotalOddsHongKong      *float64
	TotalOddsInternational *float64
	TotalDeposit           *float64
	Status                 *domain.BetStatus
	Dog                    *string
	LineupEntries          *[]domain.LineupEntry
	SingleBets             *[]domain.SingleBet
	HedgeSet               *domain.HedgeSet
}

func (s *FridayService) ListFridays(ctx context.Context) ([]domain.Friday, error) {
	fridays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return fridays, nil
}

func (s *FridayService) GetFriday(ctx context.Context, id uint) (domain.Friday, error) {
	friday, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Friday{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return friday, nil
}

func (s *FridayService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.accountRepo.FindAll -> %w", err)
	}

	return accounts, nil
}

// CreateFriday validates the aggregate and persists it atomically. The rules
// run in a fixed order and the first failing one wins.
func (s *FridayService) CreateFriday(ctx context.Context, friday domain.Friday, hedgeSet *domain.HedgeSet, createHedgeSet bool) (domain.Friday, error) {
	if err := s.checkAccountExists(ctx, friday.AccountID); err != nil {
		return domain.Friday{}, err
	}

	if err := validateTotalDeposit(friday.TotalDeposit); err != nil {
		return domain.Friday{}, err
	}

	if len(friday.LineupEntries) == 0 {
		return domain.Friday{}, newValidationError("Lineup is required. At least one member must be added.")
	}

	if err := validateLineupSum(friday.LineupEntries, friday.TotalDeposit); err != nil {
		return domain.Friday{}, err
	}

	if err := s.checkLineupMembersExist(ctx, friday.LineupEntries); err != nil {
		return domain.Friday{}, err
	}

	if len(friday.SingleBets) > 0 && len(friday.SingleBets) != fridaySingleBetCount {
		return domain.Friday{}, newValidationError("Friday must have exactly %d SingleBets", fridaySingleBetCount)
	}

	if hedgeSet != nil {
		if len(hedgeSet.SingleBets) != hedgeSetSingleBetCount {
			return domain.Friday{}, newValidationError("HedgeSet must have exactly %d SingleBets", hedgeSetSingleBetCount)
		}
		if err := s.checkHedgeLineupMembersExist(ctx, hedgeSet.LineupEntries); err != nil {
			return domain.Friday{}, err
		}
	}

	if friday.BetDateTime.IsZero() {
		friday.BetDateTime = domain.NowUTC7(s.now())
	}
	if friday.Status == "" {
		friday.Status = domain.BetStatusRunning
	}
	friday.Dog = normalizeDog(friday.Dog)

	switch {
	case hedgeSet != nil:
		friday.HedgeSets = []domain.HedgeSet{*hedgeSet}
	case createHedgeSet:
		// Legacy flag: an empty withdrawal hedge set funded with twice the
		// total deposit.
		friday.HedgeSets = []domain.HedgeSet{{
			Title:  fmt.Sprintf("Withdrawal bets for %s", friday.BetDateTime.Format("2006-01-02")),
			Budget: friday.TotalDeposit * 2,
		}}
	}

	created, err := s.repo.Create(ctx, friday)
	if err != nil {
		return domain.Friday{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	// Reload the full aggregate so the response carries resolved member
	// names and generated child ids.
	reloaded, err := s.repo.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Friday{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reloaded, nil
}

// UpdateFriday applies a partial update. Every supplied field is validated
// before any write happens.
func (s *FridayService) UpdateFriday(ctx context.Context, id uint, update FridayUpdate) error {
	friday, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.AccountID != nil && *update.AccountID != friday.AccountID {
		if err = s.checkAccountExists(ctx, *update.AccountID); err != nil {
			return err
		}
		friday.AccountID = *update.AccountID
	}

	if update.BetDateTime != nil {
		friday.BetDateTime = *update.BetDateTime
	}
	if update.TotalOddsHongKong != nil {
		friday.TotalOddsHongKong = *update.TotalOddsHongKong
	}
	if update.TotalOddsInternational != nil {
		friday.TotalOddsInternational = *update.TotalOddsInternational
	}

	if update.TotalDeposit != nil {
		if err = validateTotalDeposit(*update.TotalDeposit); err != nil {
			return err
		}
		friday.TotalDeposit = *update.TotalDeposit
	}

	if update.Status != nil {
		friday.Status = *update.Status
	}

	if update.Dog != nil {
		friday.Dog = normalizeDog(update.Dog)
	}

	if update.LineupEntries != nil {
		entries := *update.LineupEntries
		if len(entries) == 0 {
			return newValidationError("Lineup is required. At least one member must be added.")
		}
		// The resupplied lineup is checked against the deposit as it stands
		// after this update.
		if err = validateLineupSum(entries, friday.TotalDeposit); err != nil {
			return err
		}
		if err = s.checkLineupMembersExist(ctx, entries); err != nil {
			return err
		}
	}

	if update.SingleBets != nil && len(*update.SingleBets) != fridaySingleBetCount {
		return newValidationError("Friday must have exactly %d SingleBets", fridaySingleBetCount)
	}

	if update.HedgeSet != nil {
		if len(update.HedgeSet.SingleBets) != hedgeSetSingleBetCount {
			return newValidationError("HedgeSet must have exactly %d SingleBets", hedgeSetSingleBetCount)
		}
		if err = s.checkHedgeLineupMembersExist(ctx, update.HedgeSet.LineupEntries); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, friday); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	if update.LineupEntries != nil {
		if err = s.repo.ReplaceLineup(ctx, id, *update.LineupEntries); err != nil {
			return fmt.Errorf("s.repo.ReplaceLineup -> %w", err)
		}
	}

	if update.SingleBets != nil {
		if err = s.repo.ReplaceSingleBets(ctx, id, *update.SingleBets); err != nil {
			return fmt.Errorf("s.repo.ReplaceSingleBets -> %w", err)
		}
	}

	if update.HedgeSet != nil {
		if _, err = s.repo.ReplaceHedgeSet(ctx, id, *update.HedgeSet); err != nil {
			return fmt.Errorf("s.repo.ReplaceHedgeSet -> %w", err)
		}
	}

	return nil
}

func (s *FridayService) DeleteFriday(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *FridayService) checkAccountExists(ctx context.Context, accountID uint) error {
	if _, err := s.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return newValidationError("Account not found")
		}

		return fmt.Errorf("s.accountRepo.FindByID -> %w", err)
	}

	return nil
}

func (s *FridayService) checkLineupMembersExist(ctx context.Context, entries []domain.LineupEntry) error {
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MemberID)
	}

	return s.checkMembersExist(ctx, ids)
}

func (s *FridayService) checkHedgeLineupMembersExist(ctx context.Context, entries []domain.HedgeSetLineupEntry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MemberID)
	}

	return s.checkMembersExist(ctx, ids)
}

func (s *FridayService) checkMembersExist(ctx context.Context, ids []uint) error {
	distinct := distinctIDs(ids)

	members, err := s.memberRepo.FindByIDs(ctx, distinct)
	if err != nil {
		return fmt.Errorf("s.memberRepo.FindByIDs -> %w", err)
	}

	if len(members) != len(distinct) {
		return newValidationError("One or more members not found")
	}

	return nil
}

func validateTotalDeposit(deposit float64) error {
	if deposit < minTotalDeposit || deposit >= maxTotalDeposit {
		return newValidationError("TotalDeposit must be between 0.01 and 8,099,999.99")
	}

	return nil
}

// amountPrinter renders money with two decimals and thousands separators,
// matching the ledger's historical message format.
var amountPrinter = message.NewPrinter(language.English)

func validateLineupSum(entries []domain.LineupEntry, totalDeposit float64) error {
	var sum float64
	for _, e := range entries {
		sum += e.Amount
	}

	if math.Abs(sum-totalDeposit) >= lineupSumTolerance {
		return newValidationError("Lineup total (%s) must equal Total Deposit (%s)",
			amountPrinter.Sprintf("%.2f", sum), amountPrinter.Sprintf("%.2f", totalDeposit))
	}

	return nil
}

func normalizeDog(dog *string) *string {
	if dog == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*dog)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	distinct := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	return distinct
}
