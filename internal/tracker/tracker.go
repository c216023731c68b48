package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhle/contract-tracker/internal/model"
	"github.com/nhle/contract-tracker/internal/store"
)

// Confirmation notices shown after a successful mutation.
const (
	NoticeAdded   = "Contract added successfully!"
	NoticeUpdated = "Contract updated successfully!"
	NoticeDeleted = "Contract deleted successfully!"
)

// Outcome describes a completed submit.
type Outcome struct {
	Notice   string
	Contract model.Contract
	// Next is the mode the form returns to.
	Next Mode
}

// Tracker carries out contract operations on behalf of the UI. It holds no
// per-session state, so its methods are safe to call from tea.Cmd closures.
type Tracker struct {
	store store.Store
	now   func() time.Time
	log   zerolog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the source of "today" for reminder checks.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger used for operation events.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Tracker) { t.log = l }
}

// New creates a Tracker on top of s.
func New(s store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: s,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(t)
	}
	t.log = t.log.With().Str("component", "tracker").Logger()
	return t
}

// Today returns the current calendar date according to the tracker clock.
func (t *Tracker) Today() time.Time {
	return model.Today(t.now())
}

// Submit persists d according to mode: a new contract when creating, an
// overwrite of the edited contract otherwise. On success the next mode is
// always Creating; on failure the mode is left unchanged.
func (t *Tracker) Submit(ctx context.Context, mode Mode, d model.Draft) (Outcome, error) {
	if !mode.IsEditing() {
		c, err := t.store.CreateContract(ctx, d)
		if err != nil {
			t.log.Warn().Err(err).Str("mode", mode.String()).Msg("submit failed")
			return Outcome{Next: mode}, fmt.Errorf("adding contract: %w", err)
		}
		return Outcome{Notice: NoticeAdded, Contract: c, Next: Creating()}, nil
	}

	c := model.Contract{
		ID:          mode.ContractID(),
		Name:        d.Name,
		Description: d.Description,
		EndDate:     d.EndDate,
	}
	if err := t.store.UpdateContract(ctx, c); err != nil {
		t.log.Warn().Err(err).Str("mode", mode.String()).Msg("submit failed")
		return Outcome{Next: mode}, fmt.Errorf("updating contract %d: %w", c.ID, err)
	}
	return Outcome{Notice: NoticeUpdated, Contract: c, Next: Creating()}, nil
}

// Delete removes the contract with id without asking for confirmation.
func (t *Tracker) Delete(ctx context.Context, id int64) (string, error) {
	if err := t.store.DeleteContract(ctx, id); err != nil {
		return "", fmt.Errorf("deleting contract %d: %w", id, err)
	}
	return NoticeDeleted, nil
}

// Contracts returns every stored contract.
func (t *Tracker) Contracts(ctx context.Context) ([]model.Contract, error) {
	contracts, err := t.store.ListContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading contracts: %w", err)
	}
	return contracts, nil
}

// Contract returns the contract with id.
func (t *Tracker) Contract(ctx context.Context, id int64) (*model.Contract, error) {
	c, err := t.store.GetContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading contract %d: %w", id, err)
	}
	return c, nil
}

// CheckReminders finds the contracts due as of today, evaluated when the
// method is called.
func (t *Tracker) CheckReminders(ctx context.Context) (Reminders, error) {
	today := t.Today()
	due, err := t.store.FindDue(ctx, today)
	if err != nil {
		return Reminders{AsOf: today}, fmt.Errorf("checking reminders: %w", err)
	}
	t.log.Info().Str("as_of", model.FormatDate(today)).Int("due", len(due)).Msg("reminder check")
	return Reminders{AsOf: today, Due: due}, nil
}
