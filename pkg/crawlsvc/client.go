// Package crawlsvc provides a client for the remote crawl service.
package crawlsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/zorah/internal/model"
)

// DefaultBaseURL is where the crawl service listens when run locally.
const DefaultBaseURL = "http://127.0.0.1:8080"

// CrawlPath is the crawl endpoint relative to the base URL.
const CrawlPath = "/crawl"

// maxErrorBody bounds how much of a failure response is read.
const maxErrorBody = 1 << 20

// Client defines the crawl service operations.
type Client interface {
	// Crawl submits a start URL and returns the crawled resources in the
	// order the service reported them.
	Crawl(ctx context.Context, req model.CrawlRequest) ([]model.CrawlResultItem, error)
}

// Option configures the httpClient.
type Option func(*httpClient)

// WithBaseURL overrides the default base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithTimeout bounds a whole crawl request. Zero leaves requests unbounded,
// which is the default: a crawl can legitimately take minutes.
func WithTimeout(d time.Duration) Option {
	return func(c *httpClient) {
		c.http.Timeout = d
	}
}

// httpClient implements Client using net/http.
type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new crawl service client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: DefaultBaseURL,
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *httpClient) Crawl(ctx context.Context, cr model.CrawlRequest) ([]model.CrawlResultItem, error) {
	buf, err := json.Marshal(cr)
	if err != nil {
		return nil, &TransportError{Err: eris.Wrap(err, "crawlsvc: marshal request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CrawlPath, bytes.NewReader(buf))
	if err != nil {
		return nil, &TransportError{Err: eris.Wrap(err, "crawlsvc: create request")}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: eris.Wrap(err, "crawlsvc: execute request")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newServiceError(resp.StatusCode, data)
	}

	items, err := model.DecodeResults(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return items, nil
}
