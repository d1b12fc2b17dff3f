package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/lexsearch/internal/client/models"
	"github.com/dmitrijs2005/lexsearch/internal/logging"
)

// DefaultBaseURL is the production backend, used when no base URL is
// configured.
const DefaultBaseURL = "https://lexsearch-backend.up.railway.app"

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// HTTPClient is the production Client implementation. It holds no session
// state: tokens are passed in per call and results are returned fresh.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. An empty baseURL
// selects DefaultBaseURL. timeout bounds each round trip via the underlying
// http.Client; zero means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.TokenResponse, error) {
	body, err := json.Marshal(registerRequest{Email: email, Password: password, FullName: fullName})
	if err != nil {
		return nil, fmt.Errorf("encoding register request: %w", err)
	}

	var tr models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", contentTypeJSON, bytes.NewReader(body), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	// OAuth2 password-grant form. The field order is kept stable so the
	// body reads username=...&password=... like every other client of this
	// backend.
	form := "username=" + url.QueryEscape(email) + "&password=" + url.QueryEscape(password)

	var tr models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", contentTypeForm, strings.NewReader(form), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, "", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) CheckSearchLimit(ctx context.Context, token string) (*models.SearchLimitResponse, error) {
	var lr models.SearchLimitResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/search/check-limit", token, "", nil, &lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

func (c *HTTPClient) TrackSearch(ctx context.Context, token string, req models.TrackSearchRequest) (*models.TrackSearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding track request: %w", err)
	}

	var tr models.TrackSearchResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/search/track", token, contentTypeJSON, bytes.NewReader(body), &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Health(ctx context.Context) error {
	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/health", "", "", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return ErrUnavailable
	}
	return nil
}

func (c *HTTPClient) UpgradeUser(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := "/api/auth/admin/upgrade-user?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodPost, path, "", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	var stats models.PlatformStats
	if err := c.do(ctx, http.MethodGet, "/api/auth/admin/stats", "", "", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// do performs one round trip: build the request, send it, read the body and
// either decode out on success or normalize the failure. Every operation
// goes through here so the error model stays uniform.
func (c *HTTPClient) do(ctx context.Context, method, path, token, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	req.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug(ctx, "request completed", "method", method, "path", path, "status", resp.StatusCode, "request_id", reqID)

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
