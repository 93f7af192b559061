package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
)

// fakeRecord is a minimal Record for exercising the generic service.
type fakeRecord struct {
	id      id.ID
	name    string
	invalid bool
}

func (r *fakeRecord) RecordID() id.ID { return r.id }

func (r *fakeRecord) Validate(ctx context.Context) error {
	if r.invalid {
		return apperror.NewValidation("record is invalid")
	}
	return nil
}

// fakeRepo is an in-memory Repository used to observe service behavior.
type fakeRepo struct {
	items map[id.ID]*fakeRecord
	order []id.ID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[id.ID]*fakeRecord{}}
}

func (r *fakeRepo) Add(ctx context.Context, record *fakeRecord) error {
	if _, ok := r.items[record.id]; !ok {
		r.order = append(r.order, record.id)
	}
	r.items[record.id] = record
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, recordID id.ID) (*fakeRecord, error) {
	record, ok := r.items[recordID]
	if !ok {
		return nil, apperror.NewNotFound("record", recordID.String())
	}
	return record, nil
}

func (r *fakeRepo) Update(ctx context.Context, record *fakeRecord) error {
	if _, ok := r.items[record.id]; !ok {
		return apperror.NewNotFound("record", record.id.String())
	}
	r.items[record.id] = record
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, recordID id.ID) error {
	if _, ok := r.items[recordID]; !ok {
		return apperror.NewNotFound("record", recordID.String())
	}
	delete(r.items, recordID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context) ([]*fakeRecord, error) {
	records := make([]*fakeRecord, 0, len(r.order))
	for _, recordID := range r.order {
		if record, ok := r.items[recordID]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *fakeRepo) Exists(ctx context.Context, recordID id.ID) (bool, error) {
	_, ok := r.items[recordID]
	return ok, nil
}

func newFakeService(repo *fakeRepo) *RecordService[*fakeRecord] {
	return NewRecordService(RecordServiceConfig[*fakeRecord]{
		Repo:       repo,
		EntityName: "widget",
	})
}

func TestRecordService_CreateRunsHooksInOrder(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newFakeService(repo)

	var events []string
	svc.Hooks().OnBeforeCreate(func(ctx context.Context, r *fakeRecord) error {
		events = append(events, "before")
		return nil
	})
	svc.Hooks().On(AfterCreate, func(ctx context.Context, r *fakeRecord) error {
		events = append(events, "after")
		return nil
	})

	require.NoError(t, svc.Create(ctx, &fakeRecord{id: id.New(), name: "a"}))
	assert.Equal(t, []string{"before", "after"}, events)
}

func TestRecordService_CreateStopsOnHookError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newFakeService(repo)

	svc.Hooks().OnBeforeCreate(func(ctx context.Context, r *fakeRecord) error {
		return apperror.NewBusinessRule("creation blocked")
	})

	err := svc.Create(ctx, &fakeRecord{id: id.New()})
	require.Error(t, err)

	records, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, records, "record must not reach the repository when a before-hook fails")
}

func TestRecordService_CreateRejectsInvalidRecord(t *testing.T) {
	svc := newFakeService(newFakeRepo())

	err := svc.Create(context.Background(), &fakeRecord{id: id.New(), invalid: true})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRecordService_NotFoundCarriesEntityName(t *testing.T) {
	ctx := context.Background()
	svc := newFakeService(newFakeRepo())

	_, err := svc.Get(ctx, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "widget not found")

	err = svc.Delete(ctx, id.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widget not found")
}

func TestRecordService_DeleteRunsBeforeDeleteHook(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newFakeService(repo)

	record := &fakeRecord{id: id.New(), name: "doomed"}
	require.NoError(t, svc.Create(ctx, record))

	var seen string
	svc.Hooks().OnBeforeDelete(func(ctx context.Context, r *fakeRecord) error {
		seen = r.name
		return nil
	})

	require.NoError(t, svc.Delete(ctx, record.id))
	assert.Equal(t, "doomed", seen)
}
