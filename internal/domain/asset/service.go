package asset

import (
	"context"

	"aktiva/internal/core/id"
	"aktiva/internal/core/types"
	"aktiva/internal/domain"
	"aktiva/pkg/logger"
)

// Service provides business logic for the Asset collection.
// Uses composition with domain.RecordService for common CRUD operations.
type Service struct {
	*domain.RecordService[*Asset] // Embedded for delegation
	repo                          Repository
}

// NewService creates a new Asset service.
func NewService(repo Repository) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Asset]{
		Repo:       repo,
		EntityName: "asset",
	})

	svc := &Service{
		RecordService: base,
		repo:          repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate assigns an identifier and the initial current value.
func (s *Service) prepareForCreate(ctx context.Context, a *Asset) error {
	if id.IsNil(a.ID) {
		a.ID = id.New()
	}
	// Current value starts equal to purchase price unless supplied.
	if a.CurrentValue.IsZero() && !a.PurchasePrice.IsZero() {
		a.CurrentValue = a.PurchasePrice
	}
	return nil
}

// RevalueAll applies the depreciation engine to every asset in place and
// persists the collection once for the whole batch. Assets outside Active
// status pass through unchanged.
func (s *Service) RevalueAll(ctx context.Context, asOf types.Date) error {
	count := 0
	err := s.repo.UpdateAll(ctx, func(a *Asset) error {
		a.Revalue(asOf)
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info(ctx, "assets revalued", "as_of", asOf.String(), "count", count)
	return nil
}
