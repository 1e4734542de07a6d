package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/zorah/internal/config"
)

func testConfig(baseURL string) *config.Config {
	c := &config.Config{}
	c.Crawl.BaseURL = baseURL
	c.Output.Format = "text"
	c.Output.Color = false
	return c
}

func newCrawlService(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/crawl", r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

const twoResults = `[
	{"url":"https://example.com","status":200,"title":"Home","note":"OK","type":"Page","services":{"cdn":"Cloudflare"}},
	{"url":"https://example.com/a.zip","status":200,"title":"[File] a.zip","type":"File"}
]`

func TestRunCrawl_Text(t *testing.T) {
	srv, calls := newCrawlService(t, http.StatusOK, twoResults)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com", crawlOptions{}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, stderr.String(), "Crawling in progress...")
	assert.Contains(t, stderr.String(), "Crawl finished. Processed 2 URLs.")
	assert.Contains(t, stdout.String(), "[200 OK] Home")
	assert.Contains(t, stdout.String(), "CDN: Cloudflare")
	assert.Contains(t, stdout.String(), "[200 FILE] [File] a.zip")
	assert.NotContains(t, stdout.String(), "\x1b[")
}

func TestRunCrawl_JSONFormatFlag(t *testing.T) {
	srv, _ := newCrawlService(t, http.StatusOK, twoResults)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com",
		crawlOptions{format: "json"}, &stdout, &stderr)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Page", got[0]["type"])
	assert.Equal(t, "File", got[1]["type"])
}

func TestRunCrawl_OutputFile(t *testing.T) {
	srv, _ := newCrawlService(t, http.StatusOK, twoResults)
	path := filepath.Join(t.TempDir(), "report.md")

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com",
		crawlOptions{format: "markdown", output: path}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Crawl Results")
	assert.Contains(t, string(data), "[200 OK] Home")
}

func TestRunCrawl_EmptyInput(t *testing.T) {
	srv, calls := newCrawlService(t, http.StatusOK, `[]`)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "", crawlOptions{}, &stdout, &stderr)
	require.Error(t, err)

	assert.Equal(t, int32(0), calls.Load())
	assert.Contains(t, err.Error(), "Please enter a valid URL.")
	assert.Contains(t, stderr.String(), "Please enter a valid URL.")
}

func TestRunCrawl_ServiceError(t *testing.T) {
	srv, _ := newCrawlService(t, http.StatusBadRequest, `{"error":"Could not parse a valid domain from the URL"}`)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "nonsense", crawlOptions{}, &stdout, &stderr)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "Could not parse a valid domain from the URL")
	assert.Empty(t, stdout.String())
}

func TestRunCrawl_EmptyResultsIsNotAnError(t *testing.T) {
	srv, _ := newCrawlService(t, http.StatusOK, `[]`)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com", crawlOptions{}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "No pages found or all pages failed to load.")
	assert.Empty(t, stdout.String())
}

func TestRunCrawl_InvalidFormat(t *testing.T) {
	srv, calls := newCrawlService(t, http.StatusOK, `[]`)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com",
		crawlOptions{format: "pdf"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
	assert.Equal(t, int32(0), calls.Load())
}

func TestRunCrawl_EmptyResultsStillEmitDocument(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", "[]\n"},
		{"yaml", "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			srv, _ := newCrawlService(t, http.StatusOK, `[]`)

			var stdout, stderr bytes.Buffer
			err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com",
				crawlOptions{format: tt.format}, &stdout, &stderr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunCrawl_EmptyResultsMarkdownReport(t *testing.T) {
	srv, _ := newCrawlService(t, http.StatusOK, `[]`)

	var stdout, stderr bytes.Buffer
	err := runCrawl(context.Background(), testConfig(srv.URL), "https://example.com",
		crawlOptions{format: "markdown"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "# Crawl Results")
	assert.Contains(t, stdout.String(), "No pages found or all pages failed to load.")
}
