package changelog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultRemoteTimeout is the default timeout for remote changelog fetches.
const DefaultRemoteTimeout = 5 * time.Second

// IsRemote reports whether source is an http(s) URL rather than a file path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// FetchRemote fetches and parses the changelog at url.
// The context can be used to control timeout and cancellation.
func FetchRemote(ctx context.Context, url string) (*Changelog, error) {
	c, err := fetchFromURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching remote changelog: %w", err)
	}
	return c, nil
}

// LoadSource loads a changelog from a file path or, for http(s) sources, from
// the network with the given timeout.
func LoadSource(ctx context.Context, source string, timeout time.Duration) (*Changelog, error) {
	if !IsRemote(source) {
		return Load(source)
	}
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return FetchRemote(ctx, source)
}

// fetchFromURL fetches and parses a changelog from a URL.
func fetchFromURL(ctx context.Context, url string) (*Changelog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return LoadFromReader(bytes.NewReader(body))
}
