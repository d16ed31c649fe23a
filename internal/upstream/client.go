// Package upstream is the typed client for the career-fair REST backend. It
// isolates the rest of the gateway from transport details: every operation
// either returns a typed payload or an error carrying the upstream message
// and HTTP status. Nothing in this package retries implicitly.
package upstream

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

	"github.com/rs/zerolog"

	"github.com/mkaraca/careergate/internal/pkg/apperrors"
)

// Config holds the upstream connection settings, injected once from the
// application configuration instead of per call site.
type Config struct {
	BaseURL string
	// Timeout bounds each request; zero means no timeout.
	Timeout time.Duration
}

// Client is the shared HTTP core all resource clients are built on.
type Client struct {
	base   *url.URL
	client *http.Client
	logger zerolog.Logger
}

// NewClient creates the shared upstream client core.
func NewClient(cfg Config, httpClient *http.Client, logger zerolog.Logger) (*Client, error) {
	base, err := url.ParseRequestURI(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		base:   base,
		client: httpClient,
		logger: logger,
	}, nil
}

// Clients bundles the per-resource clients over one shared core.
type Clients struct {
	Auth       *AuthClient
	Student    *StudentClient
	Company    *CompanyClient
	Faculty    *FacultyClient
	Admin      *AdminClient
	CareerFair *CareerFairClient
	Position   *PositionClient
}

// NewClients creates all resource clients over the given core.
func NewClients(core *Client) *Clients {
	return &Clients{
		Auth:       &AuthClient{core},
		Student:    &StudentClient{core},
		Company:    &CompanyClient{core},
		Faculty:    &FacultyClient{core},
		Admin:      &AdminClient{core},
		CareerFair: &CareerFairClient{core},
		Position:   &PositionClient{core},
	}
}

func (c *Client) endpoint(path string) string {
	ref := &url.URL{Path: strings.TrimLeft(path, "/")}
	return c.base.ResolveReference(ref).String()
}

// newRequest builds a request against the upstream base URL.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
}

// do sends a JSON request and decodes a 2xx JSON response into out. Non-2xx
// responses become *apperrors.APIError; transport failures wrap
// apperrors.ErrUpstreamUnreachable.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes the request and applies the uniform error contract.
func (c *Client) send(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("Upstream request failed")
		return fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("Upstream call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewAPIError(resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode upstream response: %w", err)
	}
	return nil
}

// readErrorMessage extracts a user-presentable message from an upstream
// error body, tolerating the few shapes the backend emits.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "request failed"
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.Error != "":
			return body.Error
		case body.Detail != "":
			return body.Detail
		}
	}
	return "request failed"
}
