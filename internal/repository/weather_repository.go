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

// currentFields is the fixed set of current-condition fields requested from
// the weather API.
const currentFields = "temperature_2m,apparent_temperature,relative_humidity_2m,wind_speed_10m,weather_code"

// FormatCoordinate renders a coordinate with exactly 4 decimals and a dot
// separator regardless of host locale; the upstream API rejects
// locale-specific separators.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WeatherRepository fetches current conditions for a coordinate pair.
type WeatherRepository interface {
	CurrentWeather(ctx context.Context, lat, lon float64) (*model.WeatherReading, error)
}

type weatherRepository struct {
	httpClient *http.Client
}

// NewWeatherRepository creates a weather repository. An *http.Client may be
// injected for tests.
func NewWeatherRepository(httpClient ...*http.Client) WeatherRepository {
	client := &http.Client{Timeout: config.GetHTTPTimeout()}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{httpClient: client}
}

func (r *weatherRepository) CurrentWeather(ctx context.Context, lat, lon float64) (*model.WeatherReading, error) {
	params := url.Values{}
	params.Set("latitude", FormatCoordinate(lat))
	params.Set("longitude", FormatCoordinate(lon))
	params.Set("current", currentFields)
	params.Set("timezone", "auto")
	reqURL := config.GetWeatherURL() + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read weather response: %w", err)
	}

	var decoded model.ForecastResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &MalformedResponseError{URL: reqURL, Body: string(body)}
	}
	// A reading is only valid if the response actually carried a "current"
	// object; zeroed values are never fabricated.
	if decoded.Current == nil {
		return nil, &MalformedResponseError{URL: reqURL, Body: string(body)}
	}

	return &model.WeatherReading{
		TemperatureC: decoded.Current.Temperature,
		FeelsLikeC:   decoded.Current.ApparentTemperature,
		HumidityPct:  decoded.Current.RelativeHumidity,
		WindSpeedKmh: decoded.Current.WindSpeed,
		WeatherCode:  decoded.Current.WeatherCode,
	}, nil
}
