package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory/config"
	apimiddleware "inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/domain/service"
	"inventory/internal/infra/auth"
	"inventory/internal/infra/persistence/gormdb"
	"inventory/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "secret123"

type testAPI struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	return newTestAPIWithIssuer(t, auth.NewOpaqueTokenIssuer("inv_", 0))
}

// newTestAPIWithIssuer wires the real stack against a private in-memory SQLite database.
func newTestAPIWithIssuer(t *testing.T, issuer service.TokenIssuer) *testAPI {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = "testing"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = ":memory:"
	logger := slog.New(slog.DiscardHandler)

	db, err := gormdb.Open(cfg, logger)
	require.NoError(t, err)
	require.NoError(t, gormdb.Migrate(t.Context(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	hasher, err := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager: gormdb.NewTransactionManager(db),
		UserRepo:  gormdb.NewUserRepository(db),
		TokenRepo: gormdb.NewAccessTokenRepository(db),
		Hasher:    hasher,
		Issuer:    issuer,
		Logger:    logger,
	})
	deviceUC := impl.NewDeviceService(impl.DeviceServiceParams{
		DeviceRepo: gormdb.NewDeviceRepository(db),
		Logger:     logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
		DeviceHandler:  handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: deviceUC, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: authUC, Logger: logger}),
	})

	return &testAPI{t: t, echo: e}
}

type result struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

func (a *testAPI) do(method, path, token string, body any) result {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	out := result{Code: rec.Code, Header: rec.Header()}
	if rec.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out.Body), rec.Body.String())
	}

	return out
}

func (a *testAPI) register(email string) (token string, user map[string]any) {
	a.t.Helper()

	res := a.do(http.MethodPost, "/register", "", map[string]any{
		"name":                  "Tester",
		"email":                 email,
		"password":              testPassword,
		"password_confirmation": testPassword,
	})
	require.Equal(a.t, http.StatusCreated, res.Code, res.Body)

	return res.Body["token"].(string), res.Body["user"].(map[string]any)
}

func (a *testAPI) createDevice(token string, body map[string]any) map[string]any {
	a.t.Helper()

	res := a.do(http.MethodPost, "/devices", token, body)
	require.Equal(a.t, http.StatusCreated, res.Code, res.Body)

	return res.Body["data"].(map[string]any)
}

func device(name, location, date string) map[string]any {
	return map[string]any{"name": name, "location": location, "purchase_date": date}
}

func errorsOf(t *testing.T, res result) map[string]any {
	t.Helper()

	require.Equal(t, http.StatusUnprocessableEntity, res.Code, res.Body)
	fields, ok := res.Body["errors"].(map[string]any)
	require.True(t, ok, res.Body)

	return fields
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "ok", res.Body["status"])
	assert.NotEmpty(t, res.Header.Get(echo.HeaderXRequestID))
}

func TestRegisterAndLogin(t *testing.T) {
	api := newTestAPI(t)

	token, user := api.register("ada@example.com")

	assert.NotEmpty(t, token)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	res := api.do(http.MethodPost, "/login", "", map[string]any{"email": "ada@example.com", "password": testPassword})
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, true, res.Body["success"])
	assert.NotEqual(t, token, res.Body["token"])

	me := api.do(http.MethodGet, "/me", res.Body["token"].(string), nil)
	require.Equal(t, http.StatusOK, me.Code)
	meUser := me.Body["user"].(map[string]any)
	assert.Equal(t, user["id"], meUser["id"])
	assert.Contains(t, meUser, "created_at")
	assert.NotContains(t, meUser, "password_hash")
}

func TestRegister_Validation(t *testing.T) {
	api := newTestAPI(t)

	fields := errorsOf(t, api.do(http.MethodPost, "/register", "", map[string]any{
		"name":                  "",
		"email":                 "nope",
		"password":              "short",
		"password_confirmation": "short",
	}))

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Equal(t, []any{"The password field must be at least 8 characters."}, fields["password"])

	fields = errorsOf(t, api.do(http.MethodPost, "/register", "", map[string]any{
		"name":                  "Ada",
		"email":                 "ada@example.com",
		"password":              testPassword,
		"password_confirmation": "different",
	}))
	assert.Equal(t, []any{"The password field confirmation does not match."}, fields["password"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.register("ada@example.com")

	res := api.do(http.MethodPost, "/register", "", map[string]any{
		"name":                  "Someone Else",
		"email":                 "ada@example.com",
		"password":              "another-password",
		"password_confirmation": "another-password",
	})

	fields := errorsOf(t, res)
	assert.Equal(t, []any{"The email has already been taken."}, fields["email"])
	assert.Equal(t, "The email has already been taken.", res.Body["message"])
}

func TestRegister_DuplicateEmailReportedWithOtherErrors(t *testing.T) {
	api := newTestAPI(t)
	api.register("ada@example.com")

	fields := errorsOf(t, api.do(http.MethodPost, "/register", "", map[string]any{
		"name":                  "Someone Else",
		"email":                 "ada@example.com",
		"password":              "short",
		"password_confirmation": "short",
	}))

	assert.Equal(t, []any{"The email has already been taken."}, fields["email"])
	assert.Equal(t, []any{"The password field must be at least 8 characters."}, fields["password"])
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	api := newTestAPI(t)
	api.register("ada@example.com")

	wrongPassword := api.do(http.MethodPost, "/login", "", map[string]any{"email": "ada@example.com", "password": "wrong-password"})
	unknownEmail := api.do(http.MethodPost, "/login", "", map[string]any{"email": "ghost@example.com", "password": testPassword})

	assert.Equal(t, http.StatusUnprocessableEntity, wrongPassword.Code)
	assert.Equal(t, wrongPassword.Code, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body, unknownEmail.Body)
	assert.Equal(t, []any{"The provided credentials are incorrect."}, errorsOf(t, wrongPassword)["email"])
}

func TestLogout_RevokesOnlyPresentedToken(t *testing.T) {
	api := newTestAPI(t)
	tokenA, _ := api.register("ada@example.com")
	login := api.do(http.MethodPost, "/login", "", map[string]any{"email": "ada@example.com", "password": testPassword})
	tokenB := login.Body["token"].(string)

	res := api.do(http.MethodPost, "/logout", tokenA, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, true, res.Body["success"])

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/me", tokenA, nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/me", tokenB, nil).Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)
	id := "0190a2b4-0000-7000-8000-000000000001"

	routes := []struct{ method, path string }{
		{http.MethodGet, "/me"},
		{http.MethodPost, "/logout"},
		{http.MethodGet, "/devices"},
		{http.MethodPost, "/devices"},
		{http.MethodPut, "/devices/" + id},
		{http.MethodDelete, "/devices/" + id},
		{http.MethodPatch, "/devices/" + id + "/use"},
		{http.MethodGet, "/api/devices"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			for _, token := range []string{"", "inv_bogus", "not-even-close"} {
				res := api.do(route.method, route.path, token, nil)

				assert.Equal(t, http.StatusUnauthorized, res.Code)
				assert.Equal(t, "Unauthenticated.", res.Body["message"])
			}
		})
	}
}

func TestDevice_RoundTrip(t *testing.T) {
	api := newTestAPI(t)
	token, user := api.register("ada@example.com")

	created := api.createDevice(token, map[string]any{
		"name":          "iPhone 13",
		"location":      "Escritório",
		"purchase_date": "2023-05-15",
		"in_use":        true,
	})

	assert.Equal(t, user["id"], created["user_id"])

	res := api.do(http.MethodGet, "/devices", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	items := res.Body["data"].([]any)
	require.Len(t, items, 1)

	got := items[0].(map[string]any)
	assert.Equal(t, "iPhone 13", got["name"])
	assert.Equal(t, "Escritório", got["location"])
	assert.Equal(t, "2023-05-15", got["purchase_date"])
	assert.Equal(t, true, got["in_use"])
}

func TestDevice_InUseDefaultsToFalse(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")

	created := api.createDevice(token, device("Laptop", "Home", "2023-01-01"))

	assert.Equal(t, false, created["in_use"])
}

func TestDevice_PurchaseDateBoundary(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

	fields := errorsOf(t, api.do(http.MethodPost, "/devices", token, device("Laptop", "Home", tomorrow)))
	assert.Contains(t, fields, "purchase_date")

	api.createDevice(token, device("Laptop", "Home", today()))

	fields = errorsOf(t, api.do(http.MethodPost, "/devices", token, device("Laptop", "Home", "15/05/2023")))
	assert.Equal(t, []any{"The purchase date field must be a valid date."}, fields["purchase_date"])
}

func TestDevice_CreateValidation(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")

	fields := errorsOf(t, api.do(http.MethodPost, "/devices", token, map[string]any{}))
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "location")
	assert.Contains(t, fields, "purchase_date")

	body := device("Laptop", "Home", "2023-01-01")
	body["in_use"] = "maybe"
	fields = errorsOf(t, api.do(http.MethodPost, "/devices", token, body))
	assert.Equal(t, []any{"The in use field must be true or false."}, fields["in_use"])
}

func TestDevice_ToggleTwiceRestores(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	id := api.createDevice(token, device("Laptop", "Home", "2023-01-01"))["id"].(string)

	first := api.do(http.MethodPatch, "/devices/"+id+"/use", token, nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, true, first.Body["data"].(map[string]any)["in_use"])

	second := api.do(http.MethodPatch, "/devices/"+id+"/use", token, nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, false, second.Body["data"].(map[string]any)["in_use"])
}

func TestDevice_PartialUpdate(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	id := api.createDevice(token, device("Laptop", "Home", "2023-01-01"))["id"].(string)

	res := api.do(http.MethodPut, "/devices/"+id, token, map[string]any{"location": "Office", "name": nil})
	require.Equal(t, http.StatusOK, res.Code, res.Body)

	data := res.Body["data"].(map[string]any)
	assert.Equal(t, "Laptop", data["name"])
	assert.Equal(t, "Office", data["location"])
	assert.Equal(t, "2023-01-01", data["purchase_date"])

	fields := errorsOf(t, api.do(http.MethodPut, "/devices/"+id, token, map[string]any{"name": ""}))
	assert.Equal(t, []any{"The name field is required."}, fields["name"])
}

func TestDevice_OtherOwnerGets404(t *testing.T) {
	api := newTestAPI(t)
	ownerToken, _ := api.register("owner@example.com")
	otherToken, _ := api.register("other@example.com")
	id := api.createDevice(ownerToken, device("Laptop", "Home", "2023-01-01"))["id"].(string)

	requests := []struct{ method, path string }{
		{http.MethodPut, "/devices/" + id},
		{http.MethodDelete, "/devices/" + id},
		{http.MethodPatch, "/devices/" + id + "/use"},
		{http.MethodPut, "/devices/not-a-uuid"},
	}
	for _, r := range requests {
		res := api.do(r.method, r.path, otherToken, map[string]any{"name": "Stolen"})

		assert.Equal(t, http.StatusNotFound, res.Code, r.method+" "+r.path)
		assert.Equal(t, "Device not found.", res.Body["message"])
	}

	list := api.do(http.MethodGet, "/devices", otherToken, nil)
	assert.Empty(t, list.Body["data"])
	assert.Equal(t, "Laptop", api.do(http.MethodGet, "/devices", ownerToken, nil).Body["data"].([]any)[0].(map[string]any)["name"])
}

func TestDevice_SoftDeleteHides(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	id := api.createDevice(token, device("Laptop", "Home", "2023-01-01"))["id"].(string)
	api.createDevice(token, device("Phone", "Home", "2023-01-01"))

	res := api.do(http.MethodDelete, "/devices/"+id, token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Body["message"])

	list := api.do(http.MethodGet, "/devices", token, nil)
	items := list.Body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Phone", items[0].(map[string]any)["name"])
	assert.Equal(t, float64(1), list.Body["meta"].(map[string]any)["total"])

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/devices/"+id, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPatch, "/devices/"+id+"/use", token, nil).Code)
}

func TestDevice_Pagination(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	for i := range 15 {
		api.createDevice(token, device(fmt.Sprintf("Device %02d", i), "Home", "2023-01-01"))
	}

	page1 := api.do(http.MethodGet, "/devices?page=1", token, nil)
	require.Equal(t, http.StatusOK, page1.Code)
	assert.Len(t, page1.Body["data"], 10)
	assert.Equal(t, map[string]any{
		"current_page": float64(1),
		"per_page":     float64(10),
		"total":        float64(15),
		"last_page":    float64(2),
	}, page1.Body["meta"])

	page2 := api.do(http.MethodGet, "/devices?page=2", token, nil)
	assert.Len(t, page2.Body["data"], 5)

	garbage := api.do(http.MethodGet, "/devices?page=abc", token, nil)
	assert.Equal(t, float64(1), garbage.Body["meta"].(map[string]any)["current_page"])

	far := api.do(http.MethodGet, "/devices?page=9223372036854775807", token, nil)
	require.Equal(t, http.StatusOK, far.Code)
	assert.Empty(t, far.Body["data"])
	assert.Equal(t, float64(15), far.Body["meta"].(map[string]any)["total"])
}

func TestDevice_Filters(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.register("ada@example.com")
	api.createDevice(token, map[string]any{"name": "iPhone", "location": "Escritório", "purchase_date": "2023-05-15", "in_use": true})
	api.createDevice(token, device("Laptop", "Casa", "2022-01-10"))
	api.createDevice(token, device("Monitor", "Escritório 2", "2021-07-01"))

	names := func(res result) []string {
		require.Equal(t, http.StatusOK, res.Code, res.Body)
		var out []string
		for _, item := range res.Body["data"].([]any) {
			out = append(out, item.(map[string]any)["name"].(string))
		}

		return out
	}

	assert.ElementsMatch(t, []string{"iPhone", "Monitor"}, names(api.do(http.MethodGet, "/devices?location=Escrit%C3%B3rio", token, nil)))
	assert.ElementsMatch(t, []string{"iPhone"}, names(api.do(http.MethodGet, "/devices?in_use=yes", token, nil)))
	assert.ElementsMatch(t, []string{"Laptop", "Monitor"}, names(api.do(http.MethodGet, "/devices?in_use=0", token, nil)))
	assert.ElementsMatch(t, []string{"Laptop"}, names(api.do(http.MethodGet, "/devices?purchase_date_start=2022-01-10&purchase_date_end=2022-12-31", token, nil)))
	assert.Equal(t, []string{"Monitor", "Laptop", "iPhone"}, names(api.do(http.MethodGet, "/devices?sort_by=purchase_date&sort_order=ASC", token, nil)))
	assert.Len(t, names(api.do(http.MethodGet, "/devices?sort_by=password", token, nil)), 3)

	fields := errorsOf(t, api.do(http.MethodGet, "/devices?purchase_date_start=yesterday", token, nil))
	assert.Contains(t, fields, "purchase_date_start")
}

func TestAPIPrefixMountsSameRoutes(t *testing.T) {
	api := newTestAPI(t)

	res := api.do(http.MethodPost, "/api/register", "", map[string]any{
		"name":                  "Ada",
		"email":                 "ada@example.com",
		"password":              testPassword,
		"password_confirmation": testPassword,
	})
	require.Equal(t, http.StatusCreated, res.Code)

	me := api.do(http.MethodGet, "/api/me", res.Body["token"].(string), nil)
	assert.Equal(t, http.StatusOK, me.Code)

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/nowhere", "", nil).Code)
}

func TestJWTTokensAreRevocable(t *testing.T) {
	issuer, err := auth.NewJWTTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	api := newTestAPIWithIssuer(t, issuer)

	token, _ := api.register("ada@example.com")
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/me", token, nil).Code)

	require.Equal(t, http.StatusOK, api.do(http.MethodPost, "/logout", token, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/me", token, nil).Code)
}
