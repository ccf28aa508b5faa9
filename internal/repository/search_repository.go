package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jarias/webtools/internal/config"
)

// SearchRepository fetches the raw HTML results page for a query.
type SearchRepository interface {
	FetchResultsPage(ctx context.Context, query string) (string, error)
}

type searchRepository struct {
	httpClient *http.Client
}

// NewSearchRepository creates a search repository. An *http.Client may be
// injected for tests; otherwise a client with the configured timeout is used.
func NewSearchRepository(httpClient ...*http.Client) SearchRepository {
	client := &http.Client{Timeout: config.GetHTTPTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &searchRepository{httpClient: client}
}

func (r *searchRepository) FetchResultsPage(ctx context.Context, query string) (string, error) {
	reqURL := fmt.Sprintf("%s?q=%s", config.GetSearchURL(), url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	// The endpoint blocks or degrades generic clients.
	req.Header.Set("User-Agent", config.GetSearchUserAgent())

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read results page: %w", err)
	}
	return string(body), nil
}
