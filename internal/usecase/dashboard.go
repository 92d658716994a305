package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/avydrenko/shortdash/internal/entity"
	"github.com/avydrenko/shortdash/internal/store"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Dashboard orchestrates the record synchronization paths: fetch on mount,
// create, the edit state machine, delete behind a confirmation gate, logout.
type Dashboard struct {
	records  recordsClient
	session  sessionClient
	store    *store.RecordStore
	guard    *SessionGuard
	nav      Navigator
	confirm  Confirmer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewDashboard(
	records recordsClient,
	session sessionClient,
	st *store.RecordStore,
	guard *SessionGuard,
	nav Navigator,
	confirm Confirmer,
	logger *zap.Logger,
) *Dashboard {
	return &Dashboard{
		records:  records,
		session:  session,
		store:    st,
		guard:    guard,
		nav:      nav,
		confirm:  confirm,
		validate: newValidate(),
		logger:   logger,
	}
}

// Store exposes the record store for presentation.
func (d *Dashboard) Store() *store.RecordStore {
	return d.store
}

// checkURL enforces the prefix rule before any request fires.
func (d *Dashboard) checkURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: %w", entity.ErrValidation, entity.ErrEmptyDraft)
	}
	if err := d.validate.Var(rawURL, shortURLTag); err != nil {
		return fmt.Errorf("%w: %w", entity.ErrValidation, entity.ErrInvalidURL)
	}
	return nil
}

// Refresh replaces the whole collection with the server's. On an auth
// failure the session guard clears local state and signals navigation.
func (d *Dashboard) Refresh(ctx context.Context) error {
	const op = "usecase.Dashboard.Refresh"

	records, err := d.records.GetAll(ctx)
	if err != nil {
		d.guard.Intercept(err)
		return fmt.Errorf("%s: failed to fetch records: %w", op, err)
	}

	d.store.ApplyFetch(records)
	return nil
}

// Add validates rawURL locally, asks the server to shorten it and prepends
// the created record. On failure nothing is mutated, so the caller can keep
// the input for correction.
func (d *Dashboard) Add(ctx context.Context, rawURL string) (*entity.Record, error) {
	const op = "usecase.Dashboard.Add"

	if err := d.checkURL(rawURL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	record, err := d.records.Create(ctx, rawURL)
	if err != nil {
		d.guard.Intercept(err)
		return nil, fmt.Errorf("%s: failed to create record: %w", op, err)
	}

	d.store.ApplyCreate(*record)
	return record, nil
}

// BeginEdit moves the record into editing state, seeding the draft from its
// current URL. A record already mid-edit is abandoned.
func (d *Dashboard) BeginEdit(id string) (store.Editing, error) {
	const op = "usecase.Dashboard.BeginEdit"

	ed, err := d.store.BeginEdit(id)
	if err != nil {
		return store.Editing{}, fmt.Errorf("%s: %w", op, err)
	}
	return ed, nil
}

// SetDraft replaces the draft URL of the record being edited.
func (d *Dashboard) SetDraft(draft string) error {
	const op = "usecase.Dashboard.SetDraft"

	if err := d.store.SetDraft(draft); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SaveEdit commits the draft. An invalid draft refuses the transition with
// no request sent and the record stays in editing state. After a server
// failure the record returns to viewing with the edit discarded, not retried.
func (d *Dashboard) SaveEdit(ctx context.Context) (*entity.Record, error) {
	const op = "usecase.Dashboard.SaveEdit"

	ed, ok := d.store.EditingState()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrNotEditing)
	}

	if err := d.checkURL(ed.Draft); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := d.store.BeginMutation(ed.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	record, err := d.records.Update(ctx, ed.ID, ed.Draft)
	d.store.EndMutation(ed.ID)
	if err != nil {
		d.store.CancelEdit()
		d.guard.Intercept(err)
		return nil, fmt.Errorf("%s: failed to save edit: %w", op, err)
	}

	d.store.ApplyUpdate(*record)
	d.store.CancelEdit()
	return record, nil
}

// CancelEdit returns the edited record to viewing state, discarding the draft.
func (d *Dashboard) CancelEdit() {
	d.store.CancelEdit()
}

// Remove deletes the record behind a blocking yes/no gate. It reports
// whether a delete was actually performed.
func (d *Dashboard) Remove(ctx context.Context, id string) (bool, error) {
	const op = "usecase.Dashboard.Remove"

	if !d.confirm.Confirm("Are you sure you want to delete this record?") {
		return false, nil
	}

	if err := d.store.BeginMutation(id); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	record, err := d.records.Delete(ctx, id)
	d.store.EndMutation(id)
	if err != nil {
		d.guard.Intercept(err)
		return false, fmt.Errorf("%s: failed to delete record: %w", op, err)
	}

	d.store.ApplyDelete(record.ID)
	return true, nil
}

// Logout leaves the authenticated area behind a confirmation gate. A failed
// logout request is logged and tolerated; local state is cleared and
// navigation signalled either way. It reports whether the user confirmed.
func (d *Dashboard) Logout(ctx context.Context) bool {
	if !d.confirm.Confirm("Are you sure you want to logout?") {
		return false
	}

	if err := d.session.Logout(ctx); err != nil {
		d.logger.Warn("logout request failed", zap.Error(err))
	}

	d.store.Clear()
	d.nav.ToLogin()
	return true
}
