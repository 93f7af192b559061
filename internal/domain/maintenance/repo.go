package maintenance

import (
	"aktiva/internal/domain"
)

// Repository defines the interface for Maintenance persistence.
type Repository interface {
	domain.Repository[*Maintenance]
}
