package gripper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/RBEGamer/OnRobot3FG15/internal/logging"
)

const (
	// DefaultPort is the default HTTP port of the control service
	DefaultPort = 8080

	// DefaultTimeout is the transport timeout of the underlying HTTP client.
	// The API layer itself imposes no additional deadline.
	DefaultTimeout = 10 * time.Second
)

// Client is the HTTP client for the gripper control service.
//
// All API traffic goes through Call, which normalizes the service's
// success/error signaling into a parsed JSON object or an *APIError.
type Client struct {
	// BaseURL is the base URL of the control service (e.g. "http://192.168.1.40:8080")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a client for the control service at host:port
func NewClient(host string, port int) *Client {
	return NewClientWithURL(fmt.Sprintf("http://%s:%d", host, port))
}

// NewClientWithURL creates a client with a full base URL
func NewClientWithURL(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout sets the HTTP transport timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Call issues one API request and normalizes the response.
//
// A non-nil body is serialized as JSON with Content-Type application/json.
// The response body is parsed as JSON; a body that fails to parse degrades
// to an empty object rather than raising a parse error, so the HTTP status
// alone decides the outcome for malformed responses.
//
// The call fails when the HTTP status is outside the 2xx range, or when the
// parsed body does not carry "ok": true. The failure message is the body's
// "error" field when present, else the HTTP status line.
func (c *Client) Call(ctx context.Context, method, path string, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, NewNetworkError("failed to encode request body", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logging.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			// Malformed body degrades to an empty object
			payload = map[string]any{}
		}
	}

	logging.Debug("api response",
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.Int("body_bytes", len(raw)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, failureMessage(payload, resp.StatusCode))
	}
	if ok, _ := payload["ok"].(bool); !ok {
		return nil, NewProtocolError(failureMessage(payload, resp.StatusCode))
	}

	return payload, nil
}

// failureMessage extracts the display text for a failed call: the body's
// "error" field when present, otherwise the HTTP status line
func failureMessage(payload map[string]any, statusCode int) string {
	if msg, ok := payload["error"].(string); ok && msg != "" {
		return msg
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}

// FetchStatus retrieves the current device snapshot via GET /api/status
func (c *Client) FetchStatus(ctx context.Context) (*Status, error) {
	payload, err := c.Call(ctx, http.MethodGet, "/api/status", nil)
	if err != nil {
		return nil, err
	}

	raw, ok := payload["status"]
	if !ok {
		return nil, NewProtocolError("status missing from response")
	}

	// Round-trip through JSON to map the loose object onto the typed snapshot
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, NewProtocolError("malformed status object in response")
	}
	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, NewProtocolError("malformed status object in response")
	}

	return &status, nil
}

// Open commands the gripper to open fully
func (c *Client) Open(ctx context.Context) error {
	return c.actuate(ctx, "/api/open")
}

// Close commands the gripper to close fully
func (c *Client) Close(ctx context.Context) error {
	return c.actuate(ctx, "/api/close")
}

// Move commands a move to the configured target diameter
func (c *Client) Move(ctx context.Context) error {
	return c.actuate(ctx, "/api/move")
}

// Flex commands a flexible (force-limited) grip
func (c *Client) Flex(ctx context.Context) error {
	return c.actuate(ctx, "/api/flex")
}

// Stop aborts the current motion
func (c *Client) Stop(ctx context.Context) error {
	return c.actuate(ctx, "/api/stop")
}

// SetForce sets the target grip force (0-1000 = 0-100%)
func (c *Client) SetForce(ctx context.Context, value int) error {
	return c.setParameter(ctx, "/api/set_force", value)
}

// SetDiameter sets the target diameter in 0.1 mm units
func (c *Client) SetDiameter(ctx context.Context, value int) error {
	return c.setParameter(ctx, "/api/set_diameter", value)
}

// SetGripType sets the grip type (0=external, 1=internal)
func (c *Client) SetGripType(ctx context.Context, value int) error {
	return c.setParameter(ctx, "/api/set_griptype", value)
}

// actuate issues a no-payload actuation command
func (c *Client) actuate(ctx context.Context, path string) error {
	_, err := c.Call(ctx, http.MethodPost, path, nil)
	return err
}

// setParameter issues a parameter write with a {"value": n} body
func (c *Client) setParameter(ctx context.Context, path string, value int) error {
	_, err := c.Call(ctx, http.MethodPost, path, map[string]int{"value": value})
	return err
}
