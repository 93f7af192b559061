// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"aktiva/internal/core/id"
)

// Record is implemented by all persisted domain records.
type Record interface {
	// RecordID returns the unique identifier of the record.
	RecordID() id.ID

	// Validate checks record invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Repository defines CRUD operations over a keyed collection of records.
// Implementations hold the authoritative in-memory collection for the
// lifetime of the process and re-persist the entire collection on every
// mutation.
type Repository[T Record] interface {
	// Add inserts a record keyed by its identifier.
	// An existing record with the same identifier is overwritten silently.
	Add(ctx context.Context, record T) error

	// Get retrieves a record by ID.
	Get(ctx context.Context, id id.ID) (T, error)

	// Update replaces an existing record wholesale.
	// Fails with not-found if no record with that identifier exists.
	Update(ctx context.Context, record T) error

	// Delete removes a record. Fails with not-found if absent.
	Delete(ctx context.Context, id id.ID) error

	// List returns all records in insertion order of the in-memory collection.
	List(ctx context.Context) ([]T, error)

	// Exists checks if a record with the given ID exists.
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, record T) error

// HookRegistry stores lifecycle hooks for a record type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, record T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

// OnBeforeCreate registers a hook to run before create.
func (r *HookRegistry[T]) OnBeforeCreate(hook Hook[T]) {
	r.On(BeforeCreate, hook)
}

// OnBeforeUpdate registers a hook to run before update.
func (r *HookRegistry[T]) OnBeforeUpdate(hook Hook[T]) {
	r.On(BeforeUpdate, hook)
}

// OnBeforeDelete registers a hook to run before delete.
func (r *HookRegistry[T]) OnBeforeDelete(hook Hook[T]) {
	r.On(BeforeDelete, hook)
}
