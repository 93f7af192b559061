package asset

import (
	"context"

	"aktiva/internal/domain"
)

// Repository defines the interface for Asset persistence.
type Repository interface {
	domain.Repository[*Asset]

	// UpdateAll applies fn to every asset in the collection under the
	// single-writer lock, then persists the whole collection once.
	UpdateAll(ctx context.Context, fn func(*Asset) error) error
}
