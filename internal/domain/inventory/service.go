package inventory

import (
	"context"

	"aktiva/internal/core/id"
	"aktiva/internal/domain"
)

// Service provides business logic for the inventory collection.
// Uses composition with domain.RecordService for common CRUD operations.
type Service struct {
	*domain.RecordService[*Item] // Embedded for delegation
	repo                         Repository
}

// NewService creates a new inventory Service.
func NewService(repo Repository) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Item]{
		Repo:       repo,
		EntityName: "inventory item",
	})

	svc := &Service{
		RecordService: base,
		repo:          repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate assigns an identifier when the caller did not.
func (s *Service) prepareForCreate(ctx context.Context, item *Item) error {
	if id.IsNil(item.ID) {
		item.ID = id.New()
	}
	return nil
}
