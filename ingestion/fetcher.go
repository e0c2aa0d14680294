package ingestion

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Fetcher retrieves the raw binary payload for a source URL. The payload is
// fully materialized in memory before upload; there is no streaming from the
// network into the blob store.
type Fetcher interface {
	// Fetch downloads the payload at sourceURL and returns its bytes along
	// with a filename derived from the URL.
	Fetch(ctx context.Context, sourceURL string) (data []byte, filename string, err error)
}

// defaultFetchTimeout bounds a payload download. Media files are large, so
// the bound is looser than the analysis/embedding timeouts.
const defaultFetchTimeout = 5 * time.Minute

// HTTPFetcher fetches payloads over HTTP(S).
type HTTPFetcher struct {
	client *http.Client
	logger *slog.Logger
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher creates a payload fetcher with a bounded timeout.
// A non-positive timeout uses the default.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		logger: slog.Default().With("component", "http-fetcher"),
	}
}

// Fetch downloads the payload at sourceURL.
func (f *HTTPFetcher) Fetch(ctx context.Context, sourceURL string) ([]byte, string, error) {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid source url %q: %w", sourceURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return nil, "", err
	}

	f.logger.Debug("fetching payload", "url", sourceURL)
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("payload source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" {
		filename = parsed.Host
	}

	f.logger.Debug("fetched payload", "url", sourceURL, "bytes", len(data), "filename", filename)
	return data, filename, nil
}
