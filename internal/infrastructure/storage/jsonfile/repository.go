package jsonfile

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
	"aktiva/internal/domain"
)

// Repository is a generic record collection backed by a single Store document.
//
// It hydrates the collection once at construction and is the sole writer to
// its backing document for the lifetime of the process: every mutation runs
// under the write lock as load-free mutate-then-save, re-persisting the whole
// collection. A failed save rolls the in-memory change back, so memory and
// disk never diverge.
type Repository[T domain.Record] struct {
	store   *Store
	factory func() T

	mu    sync.RWMutex
	items map[id.ID]T
	order []id.ID
}

// NewRepository creates a repository and hydrates it from the backing store.
// Records that fail to deserialize or violate their invariants abort the
// hydration with a validation error.
func NewRepository[T domain.Record](ctx context.Context, store *Store, factory func() T) (*Repository[T], error) {
	docs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	r := &Repository[T]{
		store:   store,
		factory: factory,
		items:   make(map[id.ID]T, len(docs)),
		order:   make([]id.ID, 0, len(docs)),
	}

	// Map iteration order is not stable in Go; sort document keys so a
	// reloaded collection always hydrates in the same order.
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		recordID, err := id.Parse(key)
		if err != nil {
			return nil, apperror.NewValidation("document key is not a valid record id").
				WithDetail("key", key).
				WithDetail("path", store.Path()).
				WithCause(err)
		}

		record, err := r.decode(ctx, docs[key])
		if err != nil {
			return nil, err
		}
		if record.RecordID() != recordID {
			return nil, apperror.NewValidation("document key does not match record id").
				WithDetail("key", key).
				WithDetail("record_id", record.RecordID().String()).
				WithDetail("path", store.Path())
		}

		r.items[recordID] = record
		r.order = append(r.order, recordID)
	}

	return r, nil
}

func (r *Repository[T]) decode(ctx context.Context, raw json.RawMessage) (T, error) {
	record := r.factory()
	if err := json.Unmarshal(raw, record); err != nil {
		var zero T
		if apperror.IsAppError(err) {
			return zero, err
		}
		return zero, apperror.NewValidation("record does not match its expected form").
			WithDetail("path", r.store.Path()).
			WithCause(err)
	}
	if err := record.Validate(ctx); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Add inserts a record keyed by its identifier, silently overwriting an
// existing record with the same identifier.
func (r *Repository[T]) Add(ctx context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recordID := record.RecordID()
	prev, existed := r.items[recordID]
	r.items[recordID] = record
	if !existed {
		r.order = append(r.order, recordID)
	}

	if err := r.persistLocked(ctx); err != nil {
		// Roll back so memory matches disk.
		if existed {
			r.items[recordID] = prev
		} else {
			delete(r.items, recordID)
			r.order = r.order[:len(r.order)-1]
		}
		return err
	}
	return nil
}

// Get retrieves a record by ID.
func (r *Repository[T]) Get(ctx context.Context, recordID id.ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[recordID]
	if !ok {
		var zero T
		return zero, apperror.NewNotFound("record", recordID.String())
	}
	return record, nil
}

// Update replaces an existing record wholesale.
func (r *Repository[T]) Update(ctx context.Context, record T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recordID := record.RecordID()
	prev, ok := r.items[recordID]
	if !ok {
		return apperror.NewNotFound("record", recordID.String())
	}
	r.items[recordID] = record

	if err := r.persistLocked(ctx); err != nil {
		r.items[recordID] = prev
		return err
	}
	return nil
}

// Delete removes a record by ID.
func (r *Repository[T]) Delete(ctx context.Context, recordID id.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.items[recordID]
	if !ok {
		return apperror.NewNotFound("record", recordID.String())
	}

	pos := -1
	for i, existing := range r.order {
		if existing == recordID {
			pos = i
			break
		}
	}
	delete(r.items, recordID)
	if pos >= 0 {
		r.order = append(r.order[:pos], r.order[pos+1:]...)
	}

	if err := r.persistLocked(ctx); err != nil {
		r.items[recordID] = prev
		if pos >= 0 {
			r.order = append(r.order[:pos], append([]id.ID{recordID}, r.order[pos:]...)...)
		}
		return err
	}
	return nil
}

// List returns all records in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]T, 0, len(r.order))
	for _, recordID := range r.order {
		records = append(records, r.items[recordID])
	}
	return records, nil
}

// Exists checks if a record with the given ID exists.
func (r *Repository[T]) Exists(ctx context.Context, recordID id.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[recordID]
	return ok, nil
}

// UpdateAll applies fn to every record in the collection under the write
// lock, then persists the whole collection once. If fn fails or the save
// fails, every record is restored from a pre-mutation snapshot.
func (r *Repository[T]) UpdateAll(ctx context.Context, fn func(T) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, err := r.encodeLocked()
	if err != nil {
		return err
	}

	for _, recordID := range r.order {
		if err := fn(r.items[recordID]); err != nil {
			r.restoreLocked(ctx, snapshot)
			return err
		}
	}

	if err := r.persistLocked(ctx); err != nil {
		r.restoreLocked(ctx, snapshot)
		return err
	}
	return nil
}

// encodeLocked serializes the collection. Caller must hold at least the read lock.
func (r *Repository[T]) encodeLocked() (map[string]json.RawMessage, error) {
	docs := make(map[string]json.RawMessage, len(r.items))
	for recordID, record := range r.items {
		raw, err := json.Marshal(record)
		if err != nil {
			return nil, apperror.NewStorage("failed to serialize record", err).
				WithDetail("id", recordID.String())
		}
		docs[recordID.String()] = raw
	}
	return docs, nil
}

// restoreLocked rehydrates the collection from an encoded snapshot.
// Caller must hold the write lock.
func (r *Repository[T]) restoreLocked(ctx context.Context, snapshot map[string]json.RawMessage) {
	for key, raw := range snapshot {
		recordID, err := id.Parse(key)
		if err != nil {
			continue
		}
		if record, err := r.decode(ctx, raw); err == nil {
			r.items[recordID] = record
		}
	}
}

// persistLocked rewrites the whole backing document. Caller must hold the write lock.
func (r *Repository[T]) persistLocked(ctx context.Context) error {
	docs, err := r.encodeLocked()
	if err != nil {
		return err
	}
	return r.store.Save(ctx, docs)
}
