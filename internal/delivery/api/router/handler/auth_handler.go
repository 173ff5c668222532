package handler

import (
	"log/slog"
	"net/http"

	"inventory/internal/delivery/api/response"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login, logout and the current user.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return h.withEmailAvailability(c, req.Email, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Auth(c, http.StatusCreated, "User registered successfully", out.User, out.Token)
}

// withEmailAvailability adds the taken-email message to a failed validation
// so a duplicate address is reported together with the other field errors.
func (h *AuthHandler) withEmailAvailability(c echo.Context, email string, err error) error {
	var validationErr *domainerrors.ValidationError
	if email == "" || !errors.As(err, &validationErr) {
		return err
	}

	taken, lookupErr := h.authUC.EmailTaken(c.Request().Context(), email)
	if lookupErr != nil {
		return lookupErr
	}
	if taken {
		validationErr.Add("email", domainerrors.MessageEmailTaken)
	}

	return validationErr
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Auth(c, http.StatusOK, "Login successful", out.User, out.Token)
}

// Logout handles POST /logout. Only the token of this request is revoked.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), principal); err != nil {
		return err
	}

	return response.SuccessMessage(c, http.StatusOK, "Logout successful")
}

// Me handles GET /me.
func (h *AuthHandler) Me(c echo.Context) error {
	principal, err := principalOf(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.CurrentUser(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return response.User(c, user)
}
