package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrDisabled is returned when no content API base URL is configured.
// Callers treat it as "remote content disabled" and render from defaults.
var ErrDisabled = errors.New("content api not configured")

// APIError is a non-2xx answer from the content API. Body holds the parsed
// error payload when the API returned one.
type APIError struct {
	Status int
	Body   any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content api: unexpected status %d", e.Status)
}

// FetchOptions carries per-request extras for Fetch.
type FetchOptions struct {
	// Headers are added to the outbound request verbatim.
	Headers map[string]string
	// MaxStale, when set, is sent upstream as a Cache-Control max-age hint.
	MaxStale time.Duration
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *log.Logger
}

func NewClient(baseURL, token string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    httpClient,
		logger:  logger,
	}
}

// Enabled reports whether a base URL is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Fetch issues a GET against path (relative to the configured base) and
// returns the decoded JSON body. Non-2xx answers become an *APIError.
// Transport failures are retried once; a well-formed error answer is not.
func (c *Client) Fetch(ctx context.Context, path string, opts FetchOptions) (any, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	target := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	resp, err := c.do(ctx, target, opts)
	if err != nil {
		c.logger.Printf("cms: retrying %s after transport error: %v", path, err)
		resp, err = c.do(ctx, target, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("cms: fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cms: read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		// Best effort: keep the parsed error body when there is one.
		var parsed any
		if json.Unmarshal(body, &parsed) == nil {
			apiErr.Body = parsed
		}
		return nil, apiErr
	}

	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("cms: decode %s: %w", path, err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, target string, opts FetchOptions) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if opts.MaxStale > 0 {
		req.Header.Set("Cache-Control", fmt.Sprintf("max-age=%d", int(opts.MaxStale.Seconds())))
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	return c.http.Do(req)
}
