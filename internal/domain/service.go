// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"aktiva/internal/core/apperror"
	"aktiva/internal/core/id"
)

// RecordService provides business logic shared by all record collections:
// validation, lifecycle hooks and delegation to the repository.
// Entity-specific services embed it and add their own operations.
type RecordService[T Record] struct {
	repo  Repository[T]
	hooks *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// RecordServiceConfig configures the record service.
type RecordServiceConfig[T Record] struct {
	Repo       Repository[T]
	EntityName string
}

// NewRecordService creates a new record service.
func NewRecordService[T Record](cfg RecordServiceConfig[T]) *RecordService[T] {
	return &RecordService[T]{
		repo:       cfg.Repo,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *RecordService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

func (s *RecordService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	// If record already returns structured AppError, keep it.
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *RecordService[T]) normalizeGetErr(err error, recordID any) error {
	if err == nil {
		return nil
	}
	// Preserve existing AppError, but ensure not-found is mapped to the correct entity name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, recordID)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", recordID)
}

// Create validates and inserts a new record.
func (s *RecordService[T]) Create(ctx context.Context, record T) error {
	if err := record.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeCreate, record); err != nil {
		return err
	}

	if err := s.repo.Add(ctx, record); err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterCreate, record); err != nil {
		// Record is already persisted; after-hooks are best-effort.
		return nil
	}

	return nil
}

// Get retrieves a record by ID.
func (s *RecordService[T]) Get(ctx context.Context, recordID id.ID) (T, error) {
	record, err := s.repo.Get(ctx, recordID)
	if err != nil {
		return record, s.normalizeGetErr(err, recordID.String())
	}
	return record, nil
}

// Update validates and replaces an existing record wholesale.
func (s *RecordService[T]) Update(ctx context.Context, record T) error {
	if err := record.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, record); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return s.normalizeGetErr(err, record.RecordID().String())
	}

	_ = s.hooks.Run(ctx, AfterUpdate, record)
	return nil
}

// Delete removes a record by ID.
func (s *RecordService[T]) Delete(ctx context.Context, recordID id.ID) error {
	// Get record first (for hooks)
	record, err := s.repo.Get(ctx, recordID)
	if err != nil {
		return s.normalizeGetErr(err, recordID.String())
	}

	if err := s.hooks.Run(ctx, BeforeDelete, record); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, recordID); err != nil {
		return s.normalizeGetErr(err, recordID.String())
	}

	_ = s.hooks.Run(ctx, AfterDelete, record)
	return nil
}

// List retrieves all records.
func (s *RecordService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Exists checks if a record exists.
func (s *RecordService[T]) Exists(ctx context.Context, recordID id.ID) (bool, error) {
	return s.repo.Exists(ctx, recordID)
}
