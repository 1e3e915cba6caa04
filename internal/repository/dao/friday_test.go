package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFriday(accountID uint, members []Member) Friday {
	return Friday{
		AccountID:              accountID,
		BetDateTime:            time.Date(2024, 3, 8, 19, 0, 0, 0, time.UTC),
		TotalOddsHongKong:      1.85,
		TotalOddsInternational: 2.85,
		TotalDeposit:           100.00,
		Status:                 "Running",
		LineupEntries: []LineupEntry{
			{MemberID: members[0].ID, Amount: 60.00},
			{MemberID: members[1].ID, Amount: 40.00},
		},
	}
}

func TestInitTables_SeedsAccounts(t *testing.T) {
	db := newTestDB(t)

	var accounts []Account
	require.NoError(t, db.Order("id").Find(&accounts).Error)

	require.Len(t, accounts, 2)
	assert.Equal(t, "Account 1", accounts[0].Title)
	assert.Equal(t, "Account 2", accounts[1].Title)

	// Re-running the migration must not duplicate the seed rows.
	require.NoError(t, InitTables(db))

	var count int64
	require.NoError(t, db.Model(&Account{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestFridayDAO_Insert_NestedAggregate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	friday := testFriday(1, members)
	friday.SingleBets = []SingleBet{
		{Title: "Match A", Status: "Running"},
		{Title: "Match B", Status: "Running"},
		{Title: "Match C", Status: "Running"},
	}
	friday.HedgeSets = []HedgeSet{
		{
			Title:  "Hedge",
			Budget: 200.00,
			SingleBets: []SingleBet{
				{Title: "Hedge A", Status: "Running"},
				{Title: "Hedge B", Status: "Running"},
			},
			LineupEntries: []HedgeSetLineupEntry{
				{MemberID: members[0].ID, Amount: 120.00},
			},
		},
	}

	created, err := d.Insert(ctx, friday)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Account 1", found.Account.Title)
	require.Len(t, found.LineupEntries, 2)
	assert.Equal(t, "Alice", found.LineupEntries[0].Member.Name)
	require.Len(t, found.SingleBets, 3)
	require.Len(t, found.HedgeSets, 1)
	require.Len(t, found.HedgeSets[0].SingleBets, 2)
	require.Len(t, found.HedgeSets[0].LineupEntries, 1)
	assert.Equal(t, "Alice", found.HedgeSets[0].LineupEntries[0].Member.Name)

	// Direct bets carry the Friday reference, hedge bets the hedge set one.
	for _, b := range found.SingleBets {
		require.NotNil(t, b.FridayID)
		assert.Nil(t, b.HedgeSetID)
	}
	for _, b := range found.HedgeSets[0].SingleBets {
		require.NotNil(t, b.HedgeSetID)
		assert.Nil(t, b.FridayID)
	}
}

func TestFridayDAO_FindAll_OrderedByBetDateDesc(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	older := testFriday(1, members)
	older.BetDateTime = time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
	newer := testFriday(2, members)
	newer.BetDateTime = time.Date(2024, 3, 8, 19, 0, 0, 0, time.UTC)

	_, err := d.Insert(ctx, older)
	require.NoError(t, err)
	_, err = d.Insert(ctx, newer)
	require.NoError(t, err)

	fridays, err := d.FindAll(ctx)
	require.NoError(t, err)

	require.Len(t, fridays, 2)
	assert.True(t, fridays[0].BetDateTime.After(fridays[1].BetDateTime))
}

func TestFridayDAO_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	d := NewFridayDAO(db)

	_, err := d.FindByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrFridayNotFound)
}

func TestFridayDAO_Update(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	created, err := d.Insert(ctx, testFriday(1, members))
	require.NoError(t, err)

	created.Status = "Won"
	created.TotalDeposit = 150.00
	require.NoError(t, d.Update(ctx, created))

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Won", found.Status)
	assert.Equal(t, 150.00, found.TotalDeposit)
	// Children are untouched by a scalar update.
	assert.Len(t, found.LineupEntries, 2)

	assert.ErrorIs(t, d.Update(ctx, Friday{ID: 999}), ErrFridayNotFound)
}

func TestFridayDAO_ReplaceLineup(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob", "Carol")

	created, err := d.Insert(ctx, testFriday(1, members))
	require.NoError(t, err)

	err = d.ReplaceLineup(ctx, created.ID, []LineupEntry{
		{MemberID: members[2].ID, Amount: 100.00},
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.LineupEntries, 1)
	assert.Equal(t, "Carol", found.LineupEntries[0].Member.Name)

	var total int64
	require.NoError(t, db.Model(&LineupEntry{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestFridayDAO_ReplaceSingleBets_KeepsHedgeBets(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	friday := testFriday(1, members)
	friday.SingleBets = []SingleBet{
		{Title: "Old A", Status: "Running"},
		{Title: "Old B", Status: "Running"},
		{Title: "Old C", Status: "Running"},
	}
	friday.HedgeSets = []HedgeSet{{
		Title:  "Hedge",
		Budget: 200.00,
		SingleBets: []SingleBet{
			{Title: "Hedge A", Status: "Running"},
			{Title: "Hedge B", Status: "Running"},
		},
	}}

	created, err := d.Insert(ctx, friday)
	require.NoError(t, err)

	err = d.ReplaceSingleBets(ctx, created.ID, []SingleBet{
		{Title: "New A", Status: "Running"},
		{Title: "New B", Status: "Running"},
		{Title: "New C", Status: "Running"},
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.SingleBets, 3)
	assert.Equal(t, "New A", found.SingleBets[0].Title)
	require.Len(t, found.HedgeSets, 1)
	assert.Len(t, found.HedgeSets[0].SingleBets, 2)
}

func TestFridayDAO_ReplaceHedgeSet(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	friday := testFriday(1, members)
	friday.HedgeSets = []HedgeSet{{
		Title:  "Old hedge",
		Budget: 200.00,
		SingleBets: []SingleBet{
			{Title: "Old A", Status: "Running"},
			{Title: "Old B", Status: "Running"},
		},
	}}

	created, err := d.Insert(ctx, friday)
	require.NoError(t, err)

	replaced, err := d.ReplaceHedgeSet(ctx, created.ID, HedgeSet{
		Title:  "New hedge",
		Budget: 300.00,
		SingleBets: []SingleBet{
			{Title: "New A", Status: "Running"},
			{Title: "New B", Status: "Running"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.FridayID)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.HedgeSets, 1)
	assert.Equal(t, "New hedge", found.HedgeSets[0].Title)

	// The old hedge set's bets must not linger as orphans.
	var betCount int64
	require.NoError(t, db.Model(&SingleBet{}).Count(&betCount).Error)
	assert.EqualValues(t, 2, betCount)
}

func TestFridayDAO_Delete_CascadesChildren(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	friday := testFriday(1, members)
	friday.SingleBets = []SingleBet{
		{Title: "A", Status: "Running"},
		{Title: "B", Status: "Running"},
		{Title: "C", Status: "Running"},
	}
	friday.HedgeSets = []HedgeSet{{
		Title:  "Hedge",
		Budget: 200.00,
		SingleBets: []SingleBet{
			{Title: "Hedge A", Status: "Running"},
			{Title: "Hedge B", Status: "Running"},
		},
		LineupEntries: []HedgeSetLineupEntry{
			{MemberID: members[0].ID, Amount: 100.00},
		},
	}}

	created, err := d.Insert(ctx, friday)
	require.NoError(t, err)

	require.NoError(t, d.Delete(ctx, created.ID))

	for _, model := range []any{&Friday{}, &LineupEntry{}, &SingleBet{}, &HedgeSet{}, &HedgeSetLineupEntry{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zerof(t, count, "expected no rows left in %T", model)
	}

	// Members survive the cascade.
	var memberCount int64
	require.NoError(t, db.Model(&Member{}).Count(&memberCount).Error)
	assert.EqualValues(t, 2, memberCount)

	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrFridayNotFound)
}

func TestFridayDAO_Insert_RejectsOutOfRangeDeposit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	d := NewFridayDAO(db)
	members := seedMembers(t, db, "Alice", "Bob")

	friday := testFriday(1, members)
	friday.TotalDeposit = 9_000_000.00

	_, err := d.Insert(ctx, friday)

	require.Error(t, err)

	// The failed insert must not leave partial children behind.
	var count int64
	require.NoError(t, db.Model(&LineupEntry{}).Count(&count).Error)
	assert.Zero(t, count)

	require.NoError(t, db.Model(&Friday{}).Count(&count).Error)
	assert.Zero(t, count)
}
