package pos

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/restopay/payroll-backend-go/internal/config"
)

const (
	loginEndpoint  = "/resto/api/auth"
	logoutEndpoint = "/resto/api/logout"
)

// Client talks to the POS server's XML-over-HTTP API. Every public call runs
// its own auth session: token login, the request, token release. The server
// holds a small license-bound pool of tokens, so a token is never kept
// between calls.
type Client struct {
	baseURL  string
	login    string
	passHash string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(cfg config.POSConfig, log *slog.Logger) *Client {
	sum := sha1.Sum([]byte(cfg.Password))
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		login:    cfg.Login,
		passHash: hex.EncodeToString(sum[:]),
		http:     &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:      log,
	}
}

// APIError is a non-2xx reply from the POS server.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("pos API error [%d] %s: %s", e.StatusCode, e.Endpoint, e.Body)
}

// IsNotFound reports whether err is a POS 404 reply.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("login", c.login)
	params.Set("pass", c.passHash)

	body, err := c.get(ctx, loginEndpoint, params)
	if err != nil {
		return "", fmt.Errorf("pos auth: %w", err)
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", fmt.Errorf("pos auth: empty token")
	}
	return token, nil
}

func (c *Client) release(ctx context.Context, token string) {
	params := url.Values{}
	params.Set("key", token)
	if _, err := c.get(ctx, logoutEndpoint, params); err != nil {
		c.log.Warn("pos token release failed", "error", err)
	}
}

// getXML runs one authenticated GET and decodes the XML reply into out.
func (c *Client) getXML(ctx context.Context, endpoint string, params url.Values, out any) error {
	token, err := c.authenticate(ctx)
	if err != nil {
		return err
	}
	defer c.release(ctx, token)

	if params == nil {
		params = url.Values{}
	}
	params.Set("key", token)

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return err
	}

	if err := xml.Unmarshal(body, out); err != nil {
		return fmt.Errorf("pos decode %s: %w", endpoint, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pos request %s: %w", endpoint, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pos request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pos read %s: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: strings.TrimSpace(string(body))}
	}

	c.log.Debug("pos request", "endpoint", endpoint, "status", resp.StatusCode)
	return body, nil
}

// parseTime accepts the zone-less timestamp formats the POS emits.
func parseTime(value string) (time.Time, error) {
	layouts := []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("pos timestamp %q: unrecognized format", value)
}
