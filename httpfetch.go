package mdp

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchRequest configures Fetch.
type FetchRequest struct {
	URL    string
	Client *http.Client
}

// Fetch downloads a Markdown document over HTTP(S).
func Fetch(ctx context.Context, req FetchRequest) ([]byte, error) {
	if req.URL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", httpReq.URL.Scheme)
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch: status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch: read body: %w", err)
	}
	return body, nil
}
