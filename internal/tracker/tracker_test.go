package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
	"github.com/nhle/contract-tracker/internal/tracker"
	"github.com/nhle/contract-tracker/tests/testutil"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSubmit_CreatingInserts(t *testing.T) {
	s := testutil.NewTestStore(t)
	tr := tracker.New(s)
	ctx := context.Background()

	out, err := tr.Submit(ctx, tracker.Creating(), model.Draft{
		Name:        "Acme Lease",
		Description: "Office lease",
		EndDate:     testutil.Date(2024, time.January, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, tracker.NoticeAdded, out.Notice)
	assert.Equal(t, int64(1), out.Contract.ID)
	assert.False(t, out.Next.IsEditing())

	contracts, err := tr.Contracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, "Acme Lease", contracts[0].Name)
}

func TestSubmit_EditingUpdatesAndReturnsToCreating(t *testing.T) {
	s := testutil.NewTestStore(t)
	tr := tracker.New(s)
	ctx := context.Background()

	first, err := tr.Submit(ctx, tracker.Creating(), model.Draft{
		Name:        "Acme Lease",
		Description: "Office lease",
		EndDate:     testutil.Date(2024, time.January, 1),
	})
	require.NoError(t, err)

	mode := tracker.Editing(first.Contract.ID)
	out, err := tr.Submit(ctx, mode, model.Draft{
		Name:        "Acme Lease v2",
		Description: "Office lease",
		EndDate:     testutil.Date(2024, time.January, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, tracker.NoticeUpdated, out.Notice)
	assert.Equal(t, tracker.Creating(), out.Next)

	contracts, err := tr.Contracts(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, int64(1), contracts[0].ID)
	assert.Equal(t, "Acme Lease v2", contracts[0].Name)
	assert.Equal(t, "Office lease", contracts[0].Description)
	assert.Equal(t, "2024-01-01", contracts[0].EndDateString())
}

func TestSubmit_ValidationFailureKeepsMode(t *testing.T) {
	s := testutil.NewTestStore(t)
	tr := tracker.New(s)

	mode := tracker.Editing(3)
	out, err := tr.Submit(context.Background(), mode, model.Draft{
		EndDate: testutil.Date(2024, time.January, 1),
	})
	require.Error(t, err)
	assert.True(t, store.IsValidation(err))
	assert.Equal(t, mode, out.Next)
}

func TestDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	tr := tracker.New(s)
	ctx := context.Background()

	out, err := tr.Submit(ctx, tracker.Creating(), model.Draft{
		Name:    "Short term",
		EndDate: testutil.Date(2024, time.January, 1),
	})
	require.NoError(t, err)

	notice, err := tr.Delete(ctx, out.Contract.ID)
	require.NoError(t, err)
	assert.Equal(t, tracker.NoticeDeleted, notice)

	contracts, err := tr.Contracts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contracts)
}

func TestCheckReminders_UsesClockAtInvocation(t *testing.T) {
	s := testutil.NewTestStore(t)
	now := time.Date(2023, time.December, 31, 18, 0, 0, 0, time.UTC)
	tr := tracker.New(s, tracker.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	_, err := tr.Submit(ctx, tracker.Creating(), model.Draft{
		Name:    "Acme Lease",
		EndDate: testutil.Date(2024, time.January, 1),
	})
	require.NoError(t, err)

	r, err := tr.CheckReminders(ctx)
	require.NoError(t, err)
	assert.False(t, r.Any())
	assert.Equal(t, "2023-12-31", model.FormatDate(r.AsOf))

	now = now.Add(12 * time.Hour)

	r, err = tr.CheckReminders(ctx)
	require.NoError(t, err)
	require.True(t, r.Any())
	assert.Equal(t, "2024-01-01", model.FormatDate(r.AsOf))
	assert.Equal(t, "Acme Lease", r.Due[0].Name)
}

func TestCheckReminders_DueToday(t *testing.T) {
	s := testutil.NewTestStore(t)
	tr := tracker.New(s, tracker.WithClock(fixedClock(testutil.Date(2024, time.June, 1))))
	ctx := context.Background()

	for _, d := range []model.Draft{
		{Name: "Past", EndDate: testutil.Date(2024, time.January, 1)},
		{Name: "Today", EndDate: testutil.Date(2024, time.June, 1)},
		{Name: "Future", EndDate: testutil.Date(2024, time.June, 2)},
	} {
		_, err := tr.Submit(ctx, tracker.Creating(), d)
		require.NoError(t, err)
	}

	r, err := tr.CheckReminders(ctx)
	require.NoError(t, err)
	assert.Equal(t,
		"Contract: Past, End Date: 2024-01-01\nContract: Today, End Date: 2024-06-01",
		r.Message())
}

type failingStore struct {
	store.Store
	err error
}

func (f failingStore) ListContracts(context.Context) ([]model.Contract, error) {
	return nil, f.err
}

func (f failingStore) FindDue(context.Context, time.Time) ([]model.DueContract, error) {
	return nil, f.err
}

func (f failingStore) DeleteContract(context.Context, int64) error {
	return f.err
}

func TestTracker_PropagatesStorageErrors(t *testing.T) {
	backend := &store.StorageError{Op: "listing contracts", Err: errors.New("disk I/O error")}
	tr := tracker.New(failingStore{err: backend})
	ctx := context.Background()

	_, err := tr.Contracts(ctx)
	var serr *store.StorageError
	require.ErrorAs(t, err, &serr)

	_, err = tr.CheckReminders(ctx)
	require.ErrorAs(t, err, &serr)

	notice, err := tr.Delete(ctx, 1)
	require.ErrorAs(t, err, &serr)
	assert.Empty(t, notice)
}
