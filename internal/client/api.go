// Package client is a terminal client for the inventory HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"inventory/internal/delivery/api/response"
	"inventory/internal/domain/entity"

	"github.com/pkg/errors"
)

const defaultHTTPTimeout = 15 * time.Second

// APIError is a non-2xx response, carrying the message the server sent.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.StatusCode)
	}

	return e.Message
}

// FieldLines renders the field errors one per line, sorted by field.
func (e *APIError) FieldLines() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var lines []string
	for _, field := range fields {
		for _, msg := range e.Fields[field] {
			lines = append(lines, field+": "+msg)
		}
	}

	return lines
}

// IsUnauthenticated reports whether err is a 401 from the server.
func IsUnauthenticated(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// RegisterParams is the body of a registration.
type RegisterParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// DeviceParams is the body of a device create or update. Nil fields are not sent.
type DeviceParams struct {
	Name         *string `json:"name,omitempty"`
	Location     *string `json:"location,omitempty"`
	PurchaseDate *string `json:"purchase_date,omitempty"`
	InUse        *bool   `json:"in_use,omitempty"`
}

// APIClient talks to the inventory server.
type APIClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
}

// NewAPIClient creates a client for the server at baseURL. A nil httpClient
// gets a default with a request timeout.
func NewAPIClient(baseURL string, httpClient *http.Client) (*APIClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse server url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("server url %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &APIClient{baseURL: u, httpClient: httpClient}, nil
}

// SetToken sets the bearer token sent with every request.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

func (c *APIClient) Register(ctx context.Context, params RegisterParams) (*response.AuthResponse, error) {
	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, params, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*response.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var out response.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout revokes the current token and returns the server message.
func (c *APIClient) Logout(ctx context.Context) (string, error) {
	var out response.MessageResponse
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

func (c *APIClient) Me(ctx context.Context) (*entity.PublicUser, error) {
	var out response.UserResponse
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.User, nil
}

// ListDevices fetches one page of devices matching the filters.
func (c *APIClient) ListDevices(ctx context.Context, filters Filters, page int) (*response.DeviceListResponse, error) {
	query := filters.Values()
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}

	var out response.DeviceListResponse
	if err := c.do(ctx, http.MethodGet, "/devices", query, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) CreateDevice(ctx context.Context, params DeviceParams) (*entity.Device, error) {
	var out response.DeviceResponse
	if err := c.do(ctx, http.MethodPost, "/devices", nil, params, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

func (c *APIClient) UpdateDevice(ctx context.Context, id string, params DeviceParams) (*entity.Device, error) {
	var out response.DeviceResponse
	if err := c.do(ctx, http.MethodPut, "/devices/"+url.PathEscape(id), nil, params, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

func (c *APIClient) DeleteDevice(ctx context.Context, id string) (string, error) {
	var out response.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/devices/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return "", err
	}

	return out.Message, nil
}

func (c *APIClient) ToggleDevice(ctx context.Context, id string) (*entity.Device, error) {
	var out response.DeviceResponse
	if err := c.do(ctx, http.MethodPatch, "/devices/"+url.PathEscape(id)+"/use", nil, nil, &out); err != nil {
		return nil, err
	}

	return out.Data, nil
}

// do sends one request. It never retries.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body response.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return apiErr
}
