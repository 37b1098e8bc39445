// Package client is the HTTP client side of VaultBoard: it talks to the
// server API, keeps the session token on disk and exposes typed calls for
// every operation the CLI needs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/app/client/config"
	"github.com/thihaaungym/vaultboard/internal/domain/record"
)

// ErrUnauthorized is returned when the server rejects the session token.
var ErrUnauthorized = errors.New("not authenticated, run login first")

const sessionCookieName = "sess"

// CreatePayload is the body of a create call.
type CreatePayload struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Unlimited bool   `json:"unlimited,omitempty"`
	Note      string `json:"note,omitempty"`
}

// UpdatePayload is a partial update: nil fields are omitted from the body
// and keep their stored values.
type UpdatePayload struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Unlimited *bool   `json:"unlimited,omitempty"`
	Note      *string `json:"note,omitempty"`
}

type App struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &App{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "VaultBoard-Client/1.0",
	}, nil
}

// Login authenticates with the admin password and stores the session token
// issued through the Set-Cookie header.
func (a *App) Login(ctx context.Context, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}

	resp, err := a.doRequest(ctx, http.MethodPost, "/api/login", body)
	if err != nil {
		return err
	}

	token := ""
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			token = c.Value
		}
	}

	if err := a.parseResponse(resp, nil); err != nil {
		return err
	}
	if token == "" {
		return errors.New("server did not issue a session cookie")
	}

	return a.saveToken(token)
}

// Logout revokes the session on the server and drops the local token.
// The local token is removed even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	resp, reqErr := a.doRequest(ctx, http.MethodPost, "/api/logout", nil)

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}

	if reqErr != nil {
		return reqErr
	}
	return a.parseResponse(resp, nil)
}

// List fetches records matching the filter, with stats computed server-side.
func (a *App) List(ctx context.Context, q string, status record.Status, sort record.Sort) (*record.ListResponse, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if status != "" {
		params.Set("status", string(status))
	}
	if sort != "" {
		params.Set("sort", string(sort))
	}
	path := "/api/records"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := a.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out record.ListResponse
	if err := a.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a record and returns it as stored.
func (a *App) Create(ctx context.Context, payload CreatePayload) (*record.Record, error) {
	resp, err := a.doRequest(ctx, http.MethodPost, "/api/records", payload)
	if err != nil {
		return nil, err
	}
	return a.parseRecord(resp)
}

// Update applies a partial update and returns the merged record.
func (a *App) Update(ctx context.Context, id string, payload UpdatePayload) (*record.Record, error) {
	resp, err := a.doRequest(ctx, http.MethodPut, "/api/records/"+id, payload)
	if err != nil {
		return nil, err
	}
	return a.parseRecord(resp)
}

// Delete removes a record. Deleting an unknown id succeeds.
func (a *App) Delete(ctx context.Context, id string) error {
	resp, err := a.doRequest(ctx, http.MethodDelete, "/api/records/"+id, nil)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, nil)
}

// HealthCheck verifies the server is reachable.
func (a *App) HealthCheck(ctx context.Context) error {
	resp, err := a.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return err
	}
	return a.parseResponse(resp, nil)
}

func (a *App) saveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

func (a *App) token() string {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (a *App) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", a.userAgent)
	if token := a.token(); token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}

	a.log.Debug("sending request",
		slog.String("method", method),
		slog.String("url", req.URL.String()),
	)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}

	return resp, nil
}

func (a *App) parseRecord(resp *http.Response) (*record.Record, error) {
	var out struct {
		Record *record.Record `json:"record"`
	}
	if err := a.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return out.Record, nil
}

func (a *App) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	a.log.Debug("received response", slog.Int("status", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		// The gate writes {"error":...}, huma handlers write {"detail":...}.
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
