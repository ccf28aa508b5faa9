package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jarias/webtools/internal/config"
	"github.com/jarias/webtools/internal/model"
)

// GeocodingRepository resolves a place name to coordinate candidates.
type GeocodingRepository interface {
	Search(ctx context.Context, location string, count int) ([]model.GeocodeCandidate, error)
}

type geocodingRepository struct {
	httpClient *http.Client
}

// NewGeocodingRepository creates a geocoding repository. An *http.Client may
// be injected for tests.
func NewGeocodingRepository(httpClient ...*http.Client) GeocodingRepository {
	client := &http.Client{Timeout: config.GetHTTPTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &geocodingRepository{httpClient: client}
}

func (r *geocodingRepository) Search(ctx context.Context, location string, count int) ([]model.GeocodeCandidate, error) {
	params := url.Values{}
	params.Set("name", location)
	params.Set("count", strconv.Itoa(count))
	params.Set("language", "es")
	params.Set("format", "json")
	reqURL := config.GetGeocodingURL() + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read geocoding response: %w", err)
	}

	var decoded model.GeocodingResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &MalformedResponseError{URL: reqURL, Body: string(body)}
	}
	if len(decoded.Results) == 0 {
		return nil, &NoCandidatesError{Location: location, Body: string(body)}
	}
	return decoded.Results, nil
}
