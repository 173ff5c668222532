package repository

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device does not exist, is soft-deleted,
// or belongs to another user.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines device persistence. Every method is scoped to an owner
// and never sees soft-deleted rows.
type DeviceRepository interface {
	// List returns one page of the owner's devices matching the query.
	List(ctx context.Context, ownerID uuid.UUID, query entity.DeviceQuery) (*entity.DevicePage, error)

	// Create persists a new device. ID and timestamps are filled in place.
	Create(ctx context.Context, device *entity.Device) error

	// FindByID retrieves one of the owner's devices.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Device, error)

	// Update applies the non-nil patch fields and returns the stored row.
	Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.DevicePatch) (*entity.Device, error)

	// ToggleInUse negates the stored in_use flag and returns the stored row.
	ToggleInUse(ctx context.Context, ownerID, id uuid.UUID) (*entity.Device, error)

	// SoftDelete hides the device from every later operation.
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error
}
