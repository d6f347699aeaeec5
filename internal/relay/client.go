// Package relay forwards health profile submissions to the profile backend.
// It never returns an error to the caller: every failure is folded into a
// Result with Success=false and a user-facing message.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/blaisecz/gym-dashboard/internal/domain"
)

const (
	// SubmitPath is the backend endpoint that stores health profiles.
	SubmitPath = "/profile/healthprofileform"

	// DefaultTimeout bounds one submission attempt.
	DefaultTimeout = 10 * time.Second

	// GenericError is shown to the user for any transport or HTTP failure.
	GenericError = "Failed to submit health profile"

	// DisabledError is returned when no backend URL is configured.
	DisabledError = "health profile backend is not configured"

	maxErrorBody = 4096
)

// Result mirrors the backend's {success, data, error} response.
type Result struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client is the interface for relaying profile submissions.
type Client interface {
	// IsEnabled returns true if a backend URL is configured.
	IsEnabled() bool
	// SubmitHealthProfile POSTs the payload once. token is sent as a bearer
	// token when non-empty.
	SubmitHealthProfile(ctx context.Context, token string, payload domain.HealthProfileSubmission) Result
}

// Config holds relay client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
}

// NewClient creates a relay client. An empty BaseURL yields a disabled
// client whose submissions always fail with DisabledError.
func NewClient(cfg Config) Client {
	enabled := cfg.BaseURL != ""
	if !enabled {
		log.Println("[relay] disabled: BACKEND_BASE_URL is empty")
	} else {
		log.Printf("[relay] enabled: base_url=%s", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) SubmitHealthProfile(ctx context.Context, token string, payload domain.HealthProfileSubmission) Result {
	if !c.enabled {
		return Result{Success: false, Error: DisabledError}
	}

	result, err := c.post(ctx, token, payload)
	if err != nil {
		log.Printf("[relay] submit failed: %v", err)
		return Result{Success: false, Error: GenericError}
	}
	if !result.Success && result.Error == "" {
		result.Error = GenericError
	}
	return result
}

func (c *client) post(ctx context.Context, token string, payload domain.HealthProfileSubmission) (Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Result{}, fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	// A 2xx without a {success,...} body, such as 204, is not an acceptance.
	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}
