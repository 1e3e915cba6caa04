package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/lucky-friday-api/internal/domain"
	"github.com/vietanh2810/lucky-friday-api/internal/repository"
)

type fakeFridayRepo struct {
	fridays map[uint]domain.Friday
	nextID  uint

	replacedLineup   [][]domain.LineupEntry
	replacedBets     [][]domain.SingleBet
	replacedHedgeSet []domain.HedgeSet
}

func newFakeFridayRepo() *fakeFridayRepo {
	return &fakeFridayRepo{
		fridays: make(map[uint]domain.Friday),
		nextID:  1,
	}
}

func (r *fakeFridayRepo) Create(_ context.Context, friday domain.Friday) (domain.Friday, error) {
	friday.ID = r.nextID
	r.nextID++
	r.fridays[friday.ID] = friday

	return friday, nil
}

func (r *fakeFridayRepo) FindAll(_ context.Context) ([]domain.Friday, error) {
	all := make([]domain.Friday, 0, len(r.fridays))
	for _, f := range r.fridays {
		all = append(all, f)
	}

	return all, nil
}

func (r *fakeFridayRepo) FindByID(_ context.Context, id uint) (domain.Friday, error) {
	f, ok := r.fridays[id]
	if !ok {
		return domain.Friday{}, repository.ErrFridayNotFound
	}

	return f, nil
}

func (r *fakeFridayRepo) Update(_ context.Context, friday domain.Friday) error {
	if _, ok := r.fridays[friday.ID]; !ok {
		return repository.ErrFridayNotFound
	}
	r.fridays[friday.ID] = friday

	return nil
}

func (r *fakeFridayRepo) ReplaceLineup(_ context.Context, fridayID uint, entries []domain.LineupEntry) error {
	f := r.fridays[fridayID]
	f.LineupEntries = entries
	r.fridays[fridayID] = f
	r.replacedLineup = append(r.replacedLineup, entries)

	return nil
}

func (r *fakeFridayRepo) ReplaceSingleBets(_ context.Context, fridayID uint, bets []domain.SingleBet) error {
	f := r.fridays[fridayID]
	f.SingleBets = bets
	r.fridays[fridayID] = f
	r.replacedBets = append(r.replacedBets, bets)

	return nil
}

func (r *fakeFridayRepo) ReplaceHedgeSet(_ context.Context, fridayID uint, hedgeSet domain.HedgeSet) (domain.HedgeSet, error) {
	f := r.fridays[fridayID]
	hedgeSet.FridayID = fridayID
	f.HedgeSets = []domain.HedgeSet{hedgeSet}
	r.fridays[fridayID] = f
	r.replacedHedgeSet = append(r.replacedHedgeSet, hedgeSet)

	return hedgeSet, nil
}

func (r *fakeFridayRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.fridays[id]; !ok {
		return repository.ErrFridayNotFound
	}
	delete(r.fridays, id)

	return nil
}

type fakeAccountRepo struct {
	accounts map[uint]domain.Account
}

func newFakeAccountRepo(ids ...uint) *fakeAccountRepo {
	accounts := make(map[uint]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{ID: id, Title: "Account"}
	}

	return &fakeAccountRepo{accounts: accounts}
}

func (r *fakeAccountRepo) FindAll(_ context.Context) ([]domain.Account, error) {
	all := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		all = append(all, a)
	}

	return all, nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uint) (domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, repository.ErrAccountNotFound
	}

	return a, nil
}

type fakeFridayMemberRepo struct {
	members map[uint]domain.Member
}

func newFakeFridayMemberRepo(ids ...uint) *fakeFridayMemberRepo {
	members := make(map[uint]domain.Member, len(ids))
	for _, id := range ids {
		members[id] = domain.Member{ID: id, Name: "Member"}
	}

	return &fakeFridayMemberRepo{members: members}
}

func (r *fakeFridayMemberRepo) FindByIDs(_ context.Context, ids []uint) ([]domain.Member, error) {
	found := make([]domain.Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := r.members[id]; ok {
			found = append(found, m)
		}
	}

	return found, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func validFriday() domain.Friday {
	return domain.Friday{
		AccountID:    1,
		TotalDeposit: 100.00,
		LineupEntries: []domain.LineupEntry{
			{MemberID: 1, Amount: 60.00},
			{MemberID: 2, Amount: 40.00},
		},
	}
}

func newTestFridayService(repo *fakeFridayRepo) *FridayService {
	return NewFridayService(
		repo,
		newFakeAccountRepo(1, 2),
		newFakeFridayMemberRepo(1, 2, 3),
		fixedClock(time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)),
	)
}

func TestFridayService_CreateFriday(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		created, err := svc.CreateFriday(ctx, validFriday(), nil, false)

		require.NoError(t, err)
		assert.Equal(t, domain.BetStatusRunning, created.Status)
		assert.False(t, created.BetDateTime.IsZero())
		assert.Equal(t, 8, created.BetDateTime.Day())
		assert.Nil(t, created.FirstHedgeSet())
	})

	t.Run("unknown account fails first", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.AccountID = 99
		friday.TotalDeposit = 0 // Would fail too, but the account check runs first.

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Account not found", validationErr.Error())
	})

	t.Run("deposit bounds", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.TotalDeposit = 0
		_, err := svc.CreateFriday(ctx, friday, nil, false)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "TotalDeposit must be between 0.01 and 8,099,999.99", validationErr.Error())

		friday.TotalDeposit = 8_100_000.00
		_, err = svc.CreateFriday(ctx, friday, nil, false)
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "TotalDeposit must be between 0.01 and 8,099,999.99", validationErr.Error())

		friday.TotalDeposit = 8_099_999.99
		friday.LineupEntries = []domain.LineupEntry{{MemberID: 1, Amount: 8_099_999.99}}
		_, err = svc.CreateFriday(ctx, friday, nil, false)
		require.NoError(t, err)
	})

	t.Run("empty lineup rejected", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.LineupEntries = nil

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Lineup is required. At least one member must be added.", validationErr.Error())
	})

	t.Run("lineup sum mismatch names both amounts", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.LineupEntries = []domain.LineupEntry{
			{MemberID: 1, Amount: 59.99},
			{MemberID: 2, Amount: 39.99},
		}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Lineup total (99.98) must equal Total Deposit (100.00)", validationErr.Error())
	})

	t.Run("mismatch message groups thousands", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.TotalDeposit = 1500.00
		friday.LineupEntries = []domain.LineupEntry{
			{MemberID: 1, Amount: 1400.00},
		}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Lineup total (1,400.00) must equal Total Deposit (1,500.00)", validationErr.Error())
	})

	t.Run("lineup sum within tolerance passes", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.LineupEntries = []domain.LineupEntry{
			{MemberID: 1, Amount: 60.00},
			{MemberID: 2, Amount: 40.005},
		}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		require.NoError(t, err)
	})

	t.Run("unknown lineup member rejected", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.LineupEntries = []domain.LineupEntry{
			{MemberID: 1, Amount: 50.00},
			{MemberID: 99, Amount: 50.00},
		}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "One or more members not found", validationErr.Error())
	})

	t.Run("duplicate lineup members are deduplicated before lookup", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.LineupEntries = []domain.LineupEntry{
			{MemberID: 1, Amount: 50.00},
			{MemberID: 1, Amount: 50.00},
		}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		require.NoError(t, err)
	})

	t.Run("single bet count must be exactly three when present", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.SingleBets = []domain.SingleBet{{Title: "a"}, {Title: "b"}}

		_, err := svc.CreateFriday(ctx, friday, nil, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Friday must have exactly 3 SingleBets", validationErr.Error())

		friday.SingleBets = []domain.SingleBet{{Title: "a"}, {Title: "b"}, {Title: "c"}}
		_, err = svc.CreateFriday(ctx, friday, nil, false)
		require.NoError(t, err)
	})

	t.Run("hedge set must have exactly two bets", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		hedgeSet := &domain.HedgeSet{
			Title:      "hedge",
			Budget:     200,
			SingleBets: []domain.SingleBet{{Title: "a"}},
		}

		_, err := svc.CreateFriday(ctx, validFriday(), hedgeSet, false)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "HedgeSet must have exactly 2 SingleBets", validationErr.Error())
	})

	t.Run("explicit hedge set is attached", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		hedgeSet := &domain.HedgeSet{
			Title:      "hedge",
			Budget:     200,
			SingleBets: []domain.SingleBet{{Title: "a"}, {Title: "b"}},
		}

		created, err := svc.CreateFriday(ctx, validFriday(), hedgeSet, false)

		require.NoError(t, err)
		require.NotNil(t, created.FirstHedgeSet())
		assert.Equal(t, "hedge", created.FirstHedgeSet().Title)
	})

	t.Run("legacy flag builds a withdrawal hedge set", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		friday := validFriday()
		friday.BetDateTime = time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC)

		created, err := svc.CreateFriday(ctx, friday, nil, true)

		require.NoError(t, err)
		require.NotNil(t, created.FirstHedgeSet())
		assert.Equal(t, "Withdrawal bets for 2024-03-08", created.FirstHedgeSet().Title)
		assert.Equal(t, 200.00, created.FirstHedgeSet().Budget)
		assert.Empty(t, created.FirstHedgeSet().SingleBets)
	})

	t.Run("dog is trimmed and blanks become nil", func(t *testing.T) {
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)

		dog := "  Rex  "
		friday := validFriday()
		friday.Dog = &dog

		created, err := svc.CreateFriday(ctx, friday, nil, false)

		require.NoError(t, err)
		require.NotNil(t, created.Dog)
		assert.Equal(t, "Rex", *created.Dog)

		blank := "   "
		friday = validFriday()
		friday.Dog = &blank

		created, err = svc.CreateFriday(ctx, friday, nil, false)

		require.NoError(t, err)
		assert.Nil(t, created.Dog)
	})
}

func TestFridayService_UpdateFriday(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeFridayRepo, *FridayService, uint) {
		t.Helper()
		repo := newFakeFridayRepo()
		svc := newTestFridayService(repo)
		created, err := svc.CreateFriday(ctx, validFriday(), nil, false)
		require.NoError(t, err)

		return repo, svc, created.ID
	}

	t.Run("missing friday", func(t *testing.T) {
		_, svc, _ := seed(t)

		err := svc.UpdateFriday(ctx, 999, FridayUpdate{})

		assert.ErrorIs(t, err, ErrFridayNotFound)
	})

	t.Run("partial update leaves omitted fields untouched", func(t *testing.T) {
		repo, svc, id := seed(t)

		status := domain.BetStatusWon
		err := svc.UpdateFriday(ctx, id, FridayUpdate{Status: &status})

		require.NoError(t, err)
		updated := repo.fridays[id]
		assert.Equal(t, domain.BetStatusWon, updated.Status)
		assert.Equal(t, 100.00, updated.TotalDeposit)
		assert.Len(t, updated.LineupEntries, 2)
	})

	t.Run("deposit change is validated", func(t *testing.T) {
		_, svc, id := seed(t)

		bad := 0.0
		err := svc.UpdateFriday(ctx, id, FridayUpdate{TotalDeposit: &bad})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "TotalDeposit must be between 0.01 and 8,099,999.99", validationErr.Error())
	})

	t.Run("resupplied lineup checked against updated deposit", func(t *testing.T) {
		_, svc, id := seed(t)

		deposit := 50.00
		lineup := []domain.LineupEntry{{MemberID: 1, Amount: 100.00}}
		err := svc.UpdateFriday(ctx, id, FridayUpdate{
			TotalDeposit:  &deposit,
			LineupEntries: &lineup,
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Lineup total (100.00) must equal Total Deposit (50.00)", validationErr.Error())
	})

	t.Run("empty resupplied lineup rejected", func(t *testing.T) {
		_, svc, id := seed(t)

		lineup := []domain.LineupEntry{}
		err := svc.UpdateFriday(ctx, id, FridayUpdate{LineupEntries: &lineup})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Lineup is required. At least one member must be added.", validationErr.Error())
	})

	t.Run("validation failure prevents every write", func(t *testing.T) {
		repo, svc, id := seed(t)

		lineup := []domain.LineupEntry{{MemberID: 1, Amount: 100.00}}
		bets := []domain.SingleBet{{Title: "only one"}}
		err := svc.UpdateFriday(ctx, id, FridayUpdate{
			LineupEntries: &lineup,
			SingleBets:    &bets,
		})

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Empty(t, repo.replacedLineup)
		assert.Empty(t, repo.replacedBets)
	})

	t.Run("children replaced when supplied", func(t *testing.T) {
		repo, svc, id := seed(t)

		lineup := []domain.LineupEntry{{MemberID: 3, Amount: 100.00}}
		bets := []domain.SingleBet{{Title: "a"}, {Title: "b"}, {Title: "c"}}
		hedgeSet := domain.HedgeSet{
			Title:      "late hedge",
			Budget:     50,
			SingleBets: []domain.SingleBet{{Title: "x"}, {Title: "y"}},
		}
		err := svc.UpdateFriday(ctx, id, FridayUpdate{
			LineupEntries: &lineup,
			SingleBets:    &bets,
			HedgeSet:      &hedgeSet,
		})

		require.NoError(t, err)
		require.Len(t, repo.replacedLineup, 1)
		require.Len(t, repo.replacedBets, 1)
		require.Len(t, repo.replacedHedgeSet, 1)
		assert.Equal(t, "late hedge", repo.replacedHedgeSet[0].Title)
	})
}

func TestFridayService_DeleteFriday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeFridayRepo()
	svc := newTestFridayService(repo)

	created, err := svc.CreateFriday(ctx, validFriday(), nil, false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFriday(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteFriday(ctx, created.ID), ErrFridayNotFound)
}
