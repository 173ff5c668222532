// Package handler contains the echo handlers of the JSON API.
package handler

import (
	"encoding/json"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"inventory/internal/delivery/api/validator"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var bodyBinder = &echo.DefaultBinder{}

// bindAndValidate decodes the JSON body into req and validates it. Type
// mismatches are reported against the offending field.
func bindAndValidate(c echo.Context, req any) error {
	if err := bodyBinder.BindBody(c, req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domainerrors.NewFieldError(typeErr.Field, typeMessage(typeErr))
		}
		if errors.Is(err, echo.ErrUnsupportedMediaType) {
			return err
		}

		return domainerrors.ErrMalformedRequest.WithDetails(err.Error())
	}

	return c.Validate(req)
}

func typeMessage(typeErr *json.UnmarshalTypeError) string {
	attr := validator.Attribute(typeErr.Field)

	switch typeErr.Type.Kind() {
	case reflect.Bool:
		return "The " + attr + " field must be true or false."
	case reflect.String:
		return "The " + attr + " field must be a string."
	default:
		return "The " + attr + " field is invalid."
	}
}

// principalOf returns the caller set by the auth middleware.
func principalOf(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

// deviceID parses the :id path parameter. An id that cannot exist is a missing device.
func deviceID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrDeviceNotFound
	}

	return id, nil
}

// parseDeviceQuery reads the listing filters, sort and page from the query string.
func parseDeviceQuery(params url.Values) (entity.DeviceQuery, error) {
	query := entity.DeviceQuery{
		Page: parsePage(params.Get("page")),
		Sort: entity.NewDeviceSort(params.Get("sort_by"), params.Get("sort_order")),
	}

	if params.Has("in_use") {
		inUse := parseBool(params.Get("in_use"))
		query.Filter.InUse = &inUse
	}
	if params.Has("location") {
		location := params.Get("location")
		query.Filter.Location = &location
	}

	invalid := domainerrors.NewValidationError()
	query.Filter.PurchaseDateStart = parseOptionalDate(params, "purchase_date_start", invalid)
	query.Filter.PurchaseDateEnd = parseOptionalDate(params, "purchase_date_end", invalid)
	if invalid.HasErrors() {
		return entity.DeviceQuery{}, invalid
	}

	return query, nil
}

func parseOptionalDate(params url.Values, key string, invalid *domainerrors.ValidationError) *entity.Date {
	if !params.Has(key) {
		return nil
	}

	date, err := entity.ParseDate(params.Get(key))
	if err != nil {
		invalid.Add(key, "The "+validator.Attribute(key)+" field must be a valid date.")

		return nil
	}

	return &date
}

// parsePage treats anything that is not a positive integer as the first page.
func parsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// parseBool accepts 1, true, on and yes (any case) as true; anything else is false.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// parseDate converts a validated YYYY-MM-DD body field.
func parseDate(field, raw string) (entity.Date, error) {
	date, err := entity.ParseDate(raw)
	if err != nil {
		return entity.Date{}, domainerrors.NewFieldError(field, "The "+validator.Attribute(field)+" field must be a valid date.")
	}

	return date, nil
}
