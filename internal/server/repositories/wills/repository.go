package wills

import (
	"context"

	"github.com/lasttx/willkeeper/internal/server/models"
)

// Repository is the durable Will Store. It is the engine's sole
// synchronization point: all racing mutations are arbitrated by
// UpdateIfStatus.
type Repository interface {
	// Create persists a new will record.
	Create(ctx context.Context, will *models.Will) error

	// Get returns the will or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Will, error)

	// ListByOwner returns every will belonging to owner, newest first.
	ListByOwner(ctx context.Context, owner string) ([]*models.Will, error)

	// ListByStatus returns every will in the given status.
	ListByStatus(ctx context.Context, status models.WillStatus) ([]*models.Will, error)

	// UpdateIfStatus writes the will's mutable fields only if the stored
	// record is still in the expected status (compare-and-set). Returns
	// common.ErrStatusConflict when the record exists in a different status
	// and common.ErrNotFound when it does not exist.
	UpdateIfStatus(ctx context.Context, expected models.WillStatus, will *models.Will) error

	// HardDelete physically removes the record. Used only to compensate a
	// create whose timer registration failed.
	HardDelete(ctx context.Context, id string) error
}
