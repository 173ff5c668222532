package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// CreateDeviceRequest is the body of POST /devices.
type CreateDeviceRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Location     string `json:"location" validate:"required,max=255"`
	PurchaseDate string `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	InUse        *bool  `json:"in_use"`
}

// UpdateDeviceRequest is the body of PUT /devices/:id. Absent or null fields are kept.
type UpdateDeviceRequest struct {
	Name         *string `json:"name" validate:"omitnil,filled,max=255"`
	Location     *string `json:"location" validate:"omitnil,filled,max=255"`
	PurchaseDate *string `json:"purchase_date" validate:"omitnil,filled,datetime=2006-01-02"`
	InUse        *bool   `json:"in_use"`
}

// List handles GET /devices.
func (h *DeviceHandler) List(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	query, err := parseDeviceQuery(c.QueryParams())
	if err != nil {
		return err
	}

	page, err := h.deviceUC.List(c.Request().Context(), principal, query)
	if err != nil {
		return err
	}

	return response.DevicePage(c, page)
}

// Create handles POST /devices.
func (h *DeviceHandler) Create(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	var req CreateDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	purchaseDate, err := parseDate("purchase_date", req.PurchaseDate)
	if err != nil {
		return err
	}

	input := usecase.CreateDeviceInput{
		Name:         req.Name,
		Location:     req.Location,
		PurchaseDate: purchaseDate,
	}
	if req.InUse != nil {
		input.InUse = *req.InUse
	}

	device, err := h.deviceUC.Create(c.Request().Context(), principal, input)
	if err != nil {
		return err
	}

	return response.Device(c, http.StatusCreated, "Device created successfully", device)
}

// Update handles PUT /devices/:id.
func (h *DeviceHandler) Update(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := deviceID(c)
	if err != nil {
		return err
	}

	var req UpdateDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpdateDeviceInput{
		Name:     req.Name,
		Location: req.Location,
		InUse:    req.InUse,
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := parseDate("purchase_date", *req.PurchaseDate)
		if err != nil {
			return err
		}
		input.PurchaseDate = &purchaseDate
	}

	device, err := h.deviceUC.Update(c.Request().Context(), principal, id, input)
	if err != nil {
		return err
	}

	return response.Device(c, http.StatusOK, "Device updated successfully", device)
}

// Delete handles DELETE /devices/:id.
func (h *DeviceHandler) Delete(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := deviceID(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Device deleted successfully")
}

// ToggleUse handles PATCH /devices/:id/use.
func (h *DeviceHandler) ToggleUse(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	id, err := deviceID(c)
	if err != nil {
		return err
	}

	device, err := h.deviceUC.ToggleUse(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}

	return response.Device(c, http.StatusOK, "Status updated successfully", device)
}
