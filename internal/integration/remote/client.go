// Package remote implements the data source ports against the expense REST service.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domainerror "github.com/expense-tracker/gateway/internal/domain/error"
)

const maxErrorBodySize = 4096

// Config configures the remote client.
type Config struct {
	// BaseURL is the root of the remote REST API, without trailing slash.
	BaseURL string

	// Timeout bounds every request. Defaults to 15 seconds.
	Timeout time.Duration

	// HTTPClient is an optional custom HTTP client (for testing).
	HTTPClient *http.Client
}

// Client is a JSON client for the remote expense service.
// It forwards the caller's bearer token and never stores it.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new remote client.
func NewClient(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
	}
}

// Ping checks that the remote service answers at all.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return c.parseError(resp)
	}
	return nil
}

// errorResponse covers the error shapes the remote service is known to send.
type errorResponse struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// doJSON sends body as JSON and decodes the response into T.
func doJSON[T any](ctx context.Context, c *Client, method, path, accessToken string, body any) (*T, error) {
	resp, err := c.do(ctx, method, path, accessToken, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result T
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, domainerror.NewRemoteError(
			domainerror.ErrCodeMalformedPayload,
			resp.StatusCode,
			fmt.Sprintf("failed to decode %s %s response", method, path),
			fmt.Errorf("%w: %w", domainerror.ErrMalformedPayload, err),
		)
	}

	return &result, nil
}

// doNoContent sends the request and discards any response body.
func doNoContent(ctx context.Context, c *Client, method, path, accessToken string) error {
	resp, err := c.do(ctx, method, path, accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, c.parseError(resp)
	}

	return resp, nil
}

// parseError maps a non-2xx response to a RemoteError.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	message := remoteMessage(body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domainerror.NewRemoteError(domainerror.ErrCodeRemoteUnauthorized, resp.StatusCode, message, domainerror.ErrRemoteUnauthorized)
	case resp.StatusCode == http.StatusNotFound:
		return domainerror.NewRemoteError(domainerror.ErrCodeRemoteNotFound, resp.StatusCode, message, domainerror.ErrRemoteNotFound)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return domainerror.NewRemoteError(domainerror.ErrCodeRemoteRejected, resp.StatusCode, message, domainerror.ErrRemoteRejected)
	default:
		return domainerror.NewRemoteError(domainerror.ErrCodeRemoteUnavailable, resp.StatusCode, message, domainerror.ErrRemoteUnavailable)
	}
}

// remoteMessage extracts a human-readable message. NestJS-style services send
// either a string or a list of validation messages.
func remoteMessage(body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		var text string
		if json.Unmarshal(errResp.Message, &text) == nil && text != "" {
			return text
		}
		var list []string
		if json.Unmarshal(errResp.Message, &list) == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "remote service error"
	}
	return text
}

func unavailable(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return domainerror.NewRemoteError(
		domainerror.ErrCodeRemoteUnavailable,
		0,
		"remote service unreachable",
		fmt.Errorf("%w: %w", domainerror.ErrRemoteUnavailable, err),
	)
}
