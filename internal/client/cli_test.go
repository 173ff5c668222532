package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "inv_session"

// fakeServer answers the handful of calls the client makes.
type fakeServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []*http.Request
	bodies   []map[string]any
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fake := &fakeServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		body := fake.body(r)
		if body["password"] != "correct-horse" {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "The provided credentials are incorrect.",
				"errors":  map[string][]string{"email": {"The provided credentials are incorrect."}},
			})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"user":    map[string]any{"name": "Ada", "email": body["email"]},
			"token":   testToken,
		})
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		body := fake.body(r)
		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"message": "User registered successfully",
			"user":    map[string]any{"name": body["name"], "email": body["email"]},
			"token":   testToken,
		})
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		fake.record(r)
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Logout successful"})
	})
	mux.HandleFunc("GET /devices", func(w http.ResponseWriter, r *http.Request) {
		fake.record(r)
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Unauthenticated."})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []any{map[string]any{
				"id":            "6f1c1c9e-8a55-4d7e-9f0b-1a2b3c4d5e6f",
				"name":          "Laptop",
				"location":      "Lab",
				"purchase_date": "2024-01-15",
				"in_use":        true,
			}},
			"meta": map[string]any{"current_page": 1, "per_page": 10, "total": 1, "last_page": 1},
		})
	})
	mux.HandleFunc("POST /devices", func(w http.ResponseWriter, r *http.Request) {
		body := fake.body(r)
		if body["name"] == nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"message": "The name field is required.",
				"errors":  map[string][]string{"name": {"The name field is required."}},
			})

			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"message": "Device created successfully",
			"data":    body,
		})
	})
	mux.HandleFunc("PUT /devices/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := fake.body(r)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Device updated successfully", "data": body})
	})
	mux.HandleFunc("DELETE /devices/{id}", func(w http.ResponseWriter, r *http.Request) {
		fake.record(r)
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Device not found."})
	})
	mux.HandleFunc("PATCH /devices/{id}/use", func(w http.ResponseWriter, r *http.Request) {
		fake.record(r)
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Status updated successfully",
			"data":    map[string]any{"name": "Laptop", "purchase_date": "2024-01-15", "in_use": false},
		})
	})

	fake.Server = httptest.NewServer(mux)
	t.Cleanup(fake.Close)

	return fake
}

func authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+testToken
}

func (f *fakeServer) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r)
}

func (f *fakeServer) body(r *http.Request) map[string]any {
	f.record(r)
	body := map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()

	return body
}

func (f *fakeServer) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

type testApp struct {
	*App
	store  *Store
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestApp(t *testing.T, serverURL, stdin string, passwords ...string) *testApp {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "state.json"))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	app := NewApp(serverURL, store,
		WithIO(strings.NewReader(stdin), out, errOut),
		WithPasswordReader(func(int) ([]byte, error) {
			require.NotEmpty(t, passwords, "unexpected password prompt")
			pw := passwords[0]
			passwords = passwords[1:]

			return []byte(pw), nil
		}),
	)

	return &testApp{App: app, store: store, out: out, errOut: errOut}
}

func (a *testApp) state(t *testing.T) *State {
	t.Helper()
	state, err := a.store.Load()
	require.NoError(t, err)

	return state
}

func TestApp_LoginPromptsAndStoresToken(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "ada@example.com\n", "correct-horse")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))

	assert.Equal(t, testToken, app.state(t).Token)
	assert.Contains(t, app.out.String(), "Login successful")
	assert.Contains(t, app.out.String(), "Logged in as Ada <ada@example.com>")
	assert.Contains(t, app.errOut.String(), "Password: ")
	assert.NotContains(t, app.out.String()+app.errOut.String(), "correct-horse")
}

func TestApp_LoginFailureShowsServerMessage(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")

	err := app.Run(context.Background(), []string{"login", "-email", "ada@example.com", "-password", "wrong"})
	require.Error(t, err)
	assert.Empty(t, app.state(t).Token)

	app.Report(err)
	assert.Contains(t, app.errOut.String(), "Error: The provided credentials are incorrect.")
	assert.Contains(t, app.errOut.String(), "  - email: The provided credentials are incorrect.")
}

func TestApp_RegisterAsksForConfirmation(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "", "pw-one-two", "pw-one-three")

	require.NoError(t, app.Run(context.Background(), []string{"register", "-name", "Ada", "-email", "ada@example.com"}))

	require.Len(t, srv.bodies, 1)
	assert.Equal(t, "pw-one-two", srv.bodies[0]["password"])
	assert.Equal(t, "pw-one-three", srv.bodies[0]["password_confirmation"])
	assert.Equal(t, testToken, app.state(t).Token)
}

func TestApp_CommandsRequireLogin(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")

	for _, cmd := range []string{"me", "list", "add", "edit", "rm", "toggle"} {
		assert.ErrorIs(t, app.Run(context.Background(), []string{cmd}), errNotLoggedIn, cmd)
	}
	assert.Empty(t, srv.requests)
}

func TestApp_ListSavesAndReusesFilters(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken}))

	require.NoError(t, app.Run(context.Background(), []string{"list", "-location", "Lab", "-in-use", "true", "-sort", "name"}))
	assert.Equal(t, "in_use=true&location=Lab&sort_by=name", srv.last().URL.RawQuery)

	saved := app.state(t).Filters
	require.NotNil(t, saved)
	assert.Equal(t, "Lab", saved.Location)

	require.NoError(t, app.Run(context.Background(), []string{"list", "-page", "2"}))
	assert.Equal(t, "in_use=true&location=Lab&page=2&sort_by=name", srv.last().URL.RawQuery)

	assert.Contains(t, app.out.String(), "Laptop")
	assert.Contains(t, app.out.String(), "2024-01-15")
	assert.Contains(t, app.out.String(), "Page 1 of 1, 1 devices")

	require.NoError(t, app.Run(context.Background(), []string{"filters", "clear"}))
	assert.Nil(t, app.state(t).Filters)
	assert.Equal(t, testToken, app.state(t).Token)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Empty(t, srv.last().URL.RawQuery)
}

func TestApp_ListRejectsBadBoolean(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken}))

	assert.Error(t, app.Run(context.Background(), []string{"list", "-in-use", "maybe"}))
	assert.Empty(t, srv.requests)
}

func TestApp_RejectedTokenIsDropped(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: "inv_revoked"}))

	err := app.Run(context.Background(), []string{"list"})
	assert.True(t, IsUnauthenticated(err))
	assert.Empty(t, app.state(t).Token)
}

func TestApp_LogoutClearsEverything(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken, Filters: &Filters{Location: "Lab"}}))

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))

	assert.Equal(t, &State{}, app.state(t))
	assert.Contains(t, app.out.String(), "Logout successful")
}

func TestApp_LogoutWithStaleTokenStillClears(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: "inv_stale", Filters: &Filters{Location: "Lab"}}))

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Equal(t, &State{}, app.state(t))
}

func TestApp_AddSendsOnlyGivenFlags(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken}))

	err := app.Run(context.Background(), []string{"add", "-location", "Lab"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]any{"location": "Lab"}, srv.bodies[0])

	require.NoError(t, app.Run(context.Background(), []string{
		"add", "-name", "Laptop", "-location", "Lab", "-date", "2024-01-15", "-in-use",
	}))
	assert.Equal(t, map[string]any{
		"name": "Laptop", "location": "Lab", "purchase_date": "2024-01-15", "in_use": true,
	}, srv.bodies[1])
	assert.Contains(t, app.out.String(), "Device created successfully")
}

func TestApp_EditAndToggle(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken}))

	assert.ErrorIs(t, app.Run(context.Background(), []string{"edit", "abc"}), errNoChanges)
	assert.ErrorIs(t, app.Run(context.Background(), []string{"toggle"}), errMissingID)

	require.NoError(t, app.Run(context.Background(), []string{"edit", "abc", "-in-use", "false", "-name", "Renamed"}))
	assert.Equal(t, "/devices/abc", srv.last().URL.Path)
	assert.Equal(t, map[string]any{"name": "Renamed", "in_use": false}, srv.bodies[0])

	require.NoError(t, app.Run(context.Background(), []string{"toggle", "abc"}))
	assert.Equal(t, "/devices/abc/use", srv.last().URL.Path)
	assert.Contains(t, app.out.String(), "Status updated successfully")
	assert.Contains(t, app.out.String(), "In use:")
}

func TestApp_RemoveReportsNotFound(t *testing.T) {
	srv := newFakeServer(t)
	app := newTestApp(t, srv.URL, "")
	require.NoError(t, app.store.Save(&State{Token: testToken}))

	err := app.Run(context.Background(), []string{"rm", "abc"})
	require.Error(t, err)

	app.Report(err)
	assert.Equal(t, "Error: Device not found.\n", app.errOut.String())
	assert.Equal(t, testToken, app.state(t).Token)
}

func TestApp_UnknownCommand(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1", "")

	assert.Error(t, app.Run(context.Background(), []string{"frobnicate"}))
	assert.Contains(t, app.errOut.String(), "Usage: inventoryctl")
}
