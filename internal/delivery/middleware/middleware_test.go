package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	domainerrors "inventory/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		err := mw.Process(func(c echo.Context) error {
			assert.Equal(t, "abc-123", deliverycontext.GetRequestID(c))
			assert.Equal(t, "abc-123", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			deliverycontext.GetLogger(c.Request().Context()).Info("inside")

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
	})

	t.Run("mints an id when missing or oversized", func(t *testing.T) {
		for _, incoming := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, incoming)
			rec := httptest.NewRecorder()

			require.NoError(t, mw.Process(func(echo.Context) error { return nil })(echo.New().NewContext(req, rec)))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Len(t, got, 36)
		}
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

		req := httptest.NewRequest(http.MethodGet, "/devices", nil)
		require.NoError(t, mw.Handle(func(echo.Context) error { return nil })(echo.New().NewContext(req, httptest.NewRecorder())))

		assert.Empty(t, buf.String())
	})

	t.Run("logs status from the returned error", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

		req := httptest.NewRequest(http.MethodGet, "/devices?page=2", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer inv_secret")
		err := mw.Handle(func(echo.Context) error { return domainerrors.ErrDeviceNotFound })(echo.New().NewContext(req, httptest.NewRecorder()))
		require.Error(t, err)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "WARN", line["level"])
		assert.Equal(t, float64(http.StatusNotFound), line["status"])
		assert.Equal(t, "page=2", line["query"])
		assert.NotContains(t, buf.String(), "inv_secret")
	})
}
