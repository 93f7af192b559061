package inventory

import (
	"aktiva/internal/domain"
)

// Repository defines the interface for inventory Item persistence.
type Repository interface {
	domain.Repository[*Item]
}
