package maintenance

import (
	"context"

	"aktiva/internal/core/id"
	"aktiva/internal/domain"
)

// Service provides business logic for the Maintenance collection.
// Uses composition with domain.RecordService for common CRUD operations.
type Service struct {
	*domain.RecordService[*Maintenance] // Embedded for delegation
	repo                                Repository
}

// NewService creates a new Maintenance service.
func NewService(repo Repository) *Service {
	base := domain.NewRecordService(domain.RecordServiceConfig[*Maintenance]{
		Repo:       repo,
		EntityName: "maintenance",
	})

	svc := &Service{
		RecordService: base,
		repo:          repo,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)

	return svc
}

// prepareForCreate assigns an identifier when the caller did not.
func (s *Service) prepareForCreate(ctx context.Context, m *Maintenance) error {
	if id.IsNil(m.ID) {
		m.ID = id.New()
	}
	return nil
}

// ListForAsset returns all maintenance records for the given asset.
// Linear scan over the collection; there is no per-asset index, which is
// fine at the scale this service targets.
func (s *Service) ListForAsset(ctx context.Context, assetID id.ID) ([]*Maintenance, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*Maintenance, 0)
	for _, m := range all {
		if m.AssetID == assetID {
			records = append(records, m)
		}
	}
	return records, nil
}
