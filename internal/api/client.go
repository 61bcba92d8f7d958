// Package api is the HTTP client for the FNET document API.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"fnetgrip/internal/domain"
	"fnetgrip/internal/logging"
)

const (
	DefaultSearchPath    = "/documents/{ticker}"
	DefaultPageSizeParam = "max"
	DefaultHealthPath    = "/health"
)

// Client talks to the document API rooted at a base URL
type Client struct {
	baseURL       string
	searchPath    string
	pageSizeParam string
	healthPath    string
	timeout       time.Duration
	httpClient    *http.Client
	limiter       *rate.Limiter
	logger        zerolog.Logger
}

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithBaseURL sets the API base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithSearchPath sets the search route; {ticker} is replaced by the ticker
func WithSearchPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.searchPath = path
		}
	}
}

// WithPageSizeParam sets the query parameter carrying the page size
func WithPageSizeParam(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.pageSizeParam = name
		}
	}
}

// WithHealthPath sets the health probe route
func WithHealthPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.healthPath = path
		}
	}
}

// WithTimeout bounds every request; zero leaves requests unbounded
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRateLimit allows at most rps requests per second; zero disables limiting
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			c.limiter = nil
		}
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client. The base URL has no default and must be supplied.
func New(opts ...Option) *Client {
	c := &Client{
		searchPath:    DefaultSearchPath,
		pageSizeParam: DefaultPageSizeParam,
		healthPath:    DefaultHealthPath,
		httpClient:    http.DefaultClient,
		logger:        logging.Component("api"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchURL builds the search URL for a ticker and page size
func (c *Client) SearchURL(ticker string, pageSize int) string {
	path := strings.ReplaceAll(c.searchPath, "{ticker}", url.PathEscape(ticker))
	q := url.Values{}
	q.Set(c.pageSizeParam, strconv.Itoa(pageSize))
	return c.baseURL + path + "?" + q.Encode()
}

// ResolveURL joins a server-supplied path such as a download path to the base URL
func (c *Client) ResolveURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Search lists documents for ticker. The ticker is expected to be normalised.
func (c *Client) Search(ctx context.Context, ticker string, pageSize int) (*domain.SearchResult, error) {
	resp, err := c.do(ctx, c.SearchURL(ticker, pageSize), "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result domain.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Warn().Err(err).Str("ticker", ticker).Msg("undecodable search response")
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if !result.Consistent() {
		c.logger.Warn().
			Str("ticker", ticker).
			Int("listed", result.ListedCount).
			Int("documents", len(result.Documents)).
			Int("total", result.TotalAvailable).
			Msg("search result counts disagree")
	}
	return &result, nil
}

// Download fetches a document body. The caller must close the returned reader.
func (c *Client) Download(ctx context.Context, doc domain.Document) (io.ReadCloser, error) {
	resp, err := c.do(ctx, c.ResolveURL(doc.DownloadPath), "application/pdf")
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Health reports whether the API answers its health route with success
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, c.ResolveURL(c.healthPath), "application/json")
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// do performs a GET and returns the response only for 2xx statuses.
// With a timeout configured the context is released when the body is closed.
func (c *Client) do(ctx context.Context, target, accept string) (*http.Response, error) {
	start := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		c.logger.Debug().
			Str("url", target).
			Err(err).
			Dur("duration", time.Since(start)).
			Msg("HTTP request failed")
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp)
		resp.Body.Close()
		cancel()
		c.logger.Debug().
			Str("url", target).
			Int("status", resp.StatusCode).
			Dur("duration", time.Since(start)).
			Msg("HTTP request returned error")
		return nil, apiErr
	}

	c.logger.Debug().
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("HTTP request completed")

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
