// Package response renders the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	"inventory/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of operations that return only a message.
type MessageResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"` // Diagnostic detail, omitted in production.
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *entity.PublicUser `json:"user"`
	Token   string             `json:"token"`
}

// UserResponse is returned by the current-user endpoint.
type UserResponse struct {
	Success bool               `json:"success"`
	User    *entity.PublicUser `json:"user"`
}

// DeviceResponse wraps a single device with a message.
type DeviceResponse struct {
	Message string         `json:"message"`
	Data    *entity.Device `json:"data"`
}

// DeviceListResponse is one page of devices.
type DeviceListResponse struct {
	Data []*entity.Device `json:"data"`
	Meta entity.PageMeta  `json:"meta"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// Auth returns the user and the plaintext token issued for them.
func Auth(c echo.Context, statusCode int, message string, user *entity.User, token string) error {
	return c.JSON(statusCode, AuthResponse{
		Success: true,
		Message: message,
		User:    user.Public(),
		Token:   token,
	})
}

// User returns the public view of the current user.
func User(c echo.Context, user *entity.User) error {
	return c.JSON(http.StatusOK, UserResponse{Success: true, User: user.Public()})
}

// Message returns a bare message body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// SuccessMessage returns a message body flagged as successful.
func SuccessMessage(c echo.Context, statusCode int, message string) error {
	success := true

	return c.JSON(statusCode, MessageResponse{Success: &success, Message: message})
}

// Device returns one device with a message.
func Device(c echo.Context, statusCode int, message string, device *entity.Device) error {
	return c.JSON(statusCode, DeviceResponse{Message: message, Data: device})
}

// DevicePage returns a page of devices. An empty page renders data as [].
func DevicePage(c echo.Context, page *entity.DevicePage) error {
	items := page.Items
	if items == nil {
		items = []*entity.Device{}
	}

	return c.JSON(http.StatusOK, DeviceListResponse{Data: items, Meta: page.Meta})
}

// Error returns an error body. Field errors and detail are optional.
func Error(c echo.Context, statusCode int, message string, fields map[string][]string, detail string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Errors:  fields,
		Error:   detail,
	})
}

// Health reports the service as up.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
