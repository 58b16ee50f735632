// Package fetch downloads source books and memoizes them for the length of a run.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/samuel7776/monkeytype/internal/validation"
)

const (
	// DefaultBaseURL is the raw-file root of the KJV book repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/aruljohn/Bible-kjv/master"

	// DefaultUserAgent identifies the generator to the remote host.
	DefaultUserAgent = "monkeytype-quote-gen/1.0"

	// DefaultTimeout bounds each book download.
	DefaultTimeout = 30 * time.Second
)

// Client provides HTTP download functionality for book files.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientConfig configures a Client. Zero fields take the package defaults.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the underlying client. Its Timeout is replaced by Timeout.
	HTTPClient *http.Client
}

// HTTPError represents an HTTP error response.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %s", e.Status)
}

// NewClient creates a new book download client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		httpClient = &c
	}
	httpClient.Timeout = cfg.Timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

// BaseURL returns the root URL book filenames are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FileURL returns the full URL of a book file.
func (c *Client) FileURL(filename string) string {
	return c.baseURL + "/" + strings.TrimPrefix(filename, "/")
}

// Download fetches a URL and returns its content as bytes.
func (c *Client) Download(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL")
	}

	// Validate URL scheme - only support HTTP/HTTPS
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("unsupported URL scheme: %s", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, validation.MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if len(data) > validation.MaxDocumentSize {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, validation.MaxDocumentSize)
	}

	return data, nil
}
