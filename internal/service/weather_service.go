package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jarias/webtools/internal/config"
	"github.com/jarias/webtools/internal/model"
	"github.com/jarias/webtools/internal/repository"
	"github.com/jarias/webtools/internal/weathercode"
)

// WeatherService resolves place names and renders current conditions. As
// with search, every operation returns a text block under every failure
// mode.
type WeatherService interface {
	// ResolveCoordinates lists up to 3 candidates for an ambiguous name.
	ResolveCoordinates(ctx context.Context, location string) string
	// CurrentWeather renders conditions at a coordinate pair. displayName
	// labels the output; when empty the coordinates themselves are used.
	CurrentWeather(ctx context.Context, lat, lon float64, displayName string) string
	// LookupByName geocodes the top candidate and fetches its weather, in
	// two sequential round-trips.
	LookupByName(ctx context.Context, location string) string
}

type weatherService struct {
	geoRepo     repository.GeocodingRepository
	weatherRepo repository.WeatherRepository
	log         *zap.SugaredLogger
}

// NewWeatherService creates the weather pipeline. Pass nil for either
// dependency to use the default implementation.
func NewWeatherService(geoRepo repository.GeocodingRepository, weatherRepo repository.WeatherRepository) WeatherService {
	if geoRepo == nil {
		geoRepo = repository.NewGeocodingRepository()
	}
	if weatherRepo == nil {
		weatherRepo = repository.NewWeatherRepository()
	}
	return &weatherService{
		geoRepo:     geoRepo,
		weatherRepo: weatherRepo,
		log:         config.GetLogger(),
	}
}

func (s *weatherService) ResolveCoordinates(ctx context.Context, location string) string {
	candidates, err := s.geoRepo.Search(ctx, location, 5)
	if err != nil {
		var noMatch *repository.NoCandidatesError
		if errors.As(err, &noMatch) {
			return fmt.Sprintf("No se encontró la ubicación %q. Respuesta del servicio: %s", location, noMatch.Body)
		}
		return s.geocodeFailure(location, err)
	}

	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Coordenadas para %q:\n\n", location)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s (%s, %s)\n", i+1, displayLabel(c),
			repository.FormatCoordinate(c.Latitude), repository.FormatCoordinate(c.Longitude))
	}
	return b.String()
}

func (s *weatherService) CurrentWeather(ctx context.Context, lat, lon float64, displayName string) string {
	reading, err := s.weatherRepo.CurrentWeather(ctx, lat, lon)
	if err != nil {
		s.log.Warnw("weather lookup failed", "lat", lat, "lon", lon, "error", err)
		var statusErr *repository.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("La consulta del clima devolvió el estado HTTP %d (%s).", statusErr.StatusCode, statusErr.URL)
		}
		var malformed *repository.MalformedResponseError
		if errors.As(err, &malformed) {
			return fmt.Sprintf("La respuesta del clima no incluye las condiciones actuales. Respuesta: %s", malformed.Body)
		}
		return fmt.Sprintf("No se pudo consultar el clima: %v", err)
	}

	coords := repository.FormatCoordinate(lat) + ", " + repository.FormatCoordinate(lon)
	label := displayName
	if label == "" {
		label = coords
	}
	cond := weathercode.Lookup(reading.WeatherCode)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", cond.Icon, label)
	fmt.Fprintf(&b, "Temperatura: %s°C (sensación térmica: %s°C)\n",
		formatDegrees(reading.TemperatureC), formatDegrees(reading.FeelsLikeC))
	fmt.Fprintf(&b, "Condición: %s\n", cond.Description)
	fmt.Fprintf(&b, "Humedad: %d%%\n", reading.HumidityPct)
	fmt.Fprintf(&b, "Viento: %s km/h\n", strconv.FormatFloat(reading.WindSpeedKmh, 'f', 1, 64))
	fmt.Fprintf(&b, "Coordenadas: %s\n", coords)
	return b.String()
}

func (s *weatherService) LookupByName(ctx context.Context, location string) string {
	// The weather fetch depends on the geocoding result, so the two
	// round-trips are strictly sequential.
	candidates, err := s.geoRepo.Search(ctx, location, 1)
	if err != nil {
		var noMatch *repository.NoCandidatesError
		if errors.As(err, &noMatch) {
			return fmt.Sprintf("No se encontró %q. Prueba añadiendo más contexto, por ejemplo el país (\"%s, España\").", location, location)
		}
		return s.geocodeFailure(location, err)
	}

	top := candidates[0]
	return s.CurrentWeather(ctx, top.Latitude, top.Longitude, displayLabel(top))
}

func (s *weatherService) geocodeFailure(location string, err error) string {
	s.log.Warnw("geocoding failed", "location", location, "error", err)
	var statusErr *repository.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("La geocodificación de %q devolvió el estado HTTP %d (%s).", location, statusErr.StatusCode, statusErr.URL)
	}
	var malformed *repository.MalformedResponseError
	if errors.As(err, &malformed) {
		return fmt.Sprintf("No se pudo interpretar la respuesta de geocodificación para %q. Respuesta: %s", location, malformed.Body)
	}
	return fmt.Sprintf("No se pudo geocodificar %q: %v", location, err)
}

func displayLabel(c model.GeocodeCandidate) string {
	if c.Country != "" {
		return c.Name + ", " + c.Country
	}
	return c.Name
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
