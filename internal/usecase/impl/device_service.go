package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const messageFuturePurchaseDate = "The purchase date field must be a date before or equal to today."

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// today is the current UTC calendar date.
func (srv *deviceService) today() entity.Date {
	return entity.NewDate(srv.now().UTC())
}

func (srv *deviceService) checkPurchaseDate(date entity.Date) error {
	if date.After(srv.today()) {
		return domainerrors.NewFieldError("purchase_date", messageFuturePurchaseDate)
	}

	return nil
}

func (srv *deviceService) List(ctx context.Context, principal entity.Principal, query entity.DeviceQuery) (*entity.DevicePage, error) {
	if principal.User == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	page, err := srv.deviceRepo.List(ctx, principal.UserID(), query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return page, nil
}

func (srv *deviceService) Create(ctx context.Context, principal entity.Principal, input usecase.CreateDeviceInput) (*entity.Device, error) {
	if principal.User == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err := srv.checkPurchaseDate(input.PurchaseDate); err != nil {
		return nil, err
	}

	device := &entity.Device{
		UserID:       principal.UserID(),
		Name:         input.Name,
		Location:     input.Location,
		PurchaseDate: input.PurchaseDate,
		InUse:        input.InUse,
	}
	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		srv.log(ctx).Error("Failed to create device", slog.Any("userID", principal.UserID()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.log(ctx).Debug("Device created", slog.Any("deviceID", device.ID))

	return device, nil
}

func (srv *deviceService) Update(ctx context.Context, principal entity.Principal, id uuid.UUID, input usecase.UpdateDeviceInput) (*entity.Device, error) {
	if principal.User == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input.PurchaseDate != nil {
		if err := srv.checkPurchaseDate(*input.PurchaseDate); err != nil {
			return nil, err
		}
	}

	device, err := srv.deviceRepo.Update(ctx, principal.UserID(), id, entity.DevicePatch{
		Name:         input.Name,
		Location:     input.Location,
		PurchaseDate: input.PurchaseDate,
		InUse:        input.InUse,
	})
	if err != nil {
		return nil, srv.translate(ctx, err, "failed to update device", id)
	}

	return device, nil
}

func (srv *deviceService) ToggleUse(ctx context.Context, principal entity.Principal, id uuid.UUID) (*entity.Device, error) {
	if principal.User == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	device, err := srv.deviceRepo.ToggleInUse(ctx, principal.UserID(), id)
	if err != nil {
		return nil, srv.translate(ctx, err, "failed to toggle device", id)
	}

	return device, nil
}

func (srv *deviceService) Delete(ctx context.Context, principal entity.Principal, id uuid.UUID) error {
	if principal.User == nil {
		return domainerrors.ErrUnauthenticated
	}

	if err := srv.deviceRepo.SoftDelete(ctx, principal.UserID(), id); err != nil {
		return srv.translate(ctx, err, "failed to delete device", id)
	}

	return nil
}

// translate hides whether a device is missing or owned by someone else.
func (srv *deviceService) translate(ctx context.Context, err error, msg string, id uuid.UUID) error {
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}
	srv.log(ctx).Error(msg, slog.Any("deviceID", id), slog.Any("error", err))

	return errors.Wrap(err, msg)
}
