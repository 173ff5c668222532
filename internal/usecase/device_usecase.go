package usecase

import (
	"context"

	"inventory/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeviceInput holds a new device. InUse defaults to false.
type CreateDeviceInput struct {
	Name         string
	Location     string
	PurchaseDate entity.Date
	InUse        bool
}

// UpdateDeviceInput holds a partial update. Nil fields are left unchanged.
type UpdateDeviceInput struct {
	Name         *string
	Location     *string
	PurchaseDate *entity.Date
	InUse        *bool
}

// DeviceUsecase defines ownership-scoped device management. A device that is
// missing, deleted, or owned by someone else is reported as ErrDeviceNotFound.
type DeviceUsecase interface {
	List(ctx context.Context, principal entity.Principal, query entity.DeviceQuery) (*entity.DevicePage, error)
	Create(ctx context.Context, principal entity.Principal, input CreateDeviceInput) (*entity.Device, error)
	Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input UpdateDeviceInput) (*entity.Device, error)
	ToggleUse(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Device, error)
	Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error
}
