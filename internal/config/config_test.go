package config

import (
	"os"
	"testing"
	"time"
)

func TestGetSearchURL(t *testing.T) {
	want := "https://html.duckduckgo.com/html/"
	got := GetSearchURL()
	if got != want {
		t.Errorf("Expected search URL %s, got %s", want, got)
	}
}

func TestGetSearchUserAgent(t *testing.T) {
	// Test with the environment variable set
	expected := "test-agent/1.0"
	os.Setenv("WEBTOOLS_USER_AGENT", expected)
	defer os.Unsetenv("WEBTOOLS_USER_AGENT")

	result := GetSearchUserAgent()
	if result != expected {
		t.Errorf("Expected user agent %s, got %s", expected, result)
	}

	// Test with environment variable not set (should return the configured
	// browser-like default)
	os.Unsetenv("WEBTOOLS_USER_AGENT")
	result = GetSearchUserAgent()
	if result == "" {
		t.Error("Expected a default user agent, got empty string")
	}
}

func TestGetSearchMaxResults(t *testing.T) {
	if got := GetSearchMaxResults(); got != 10 {
		t.Errorf("Expected default max results 10, got %d", got)
	}
}

func TestGetGeocodingURL(t *testing.T) {
	want := "https://geocoding-api.open-meteo.com/v1/search"
	if got := GetGeocodingURL(); got != want {
		t.Errorf("Expected geocoding URL %s, got %s", want, got)
	}
}

func TestGetWeatherURL(t *testing.T) {
	want := "https://api.open-meteo.com/v1/forecast"
	if got := GetWeatherURL(); got != want {
		t.Errorf("Expected weather URL %s, got %s", want, got)
	}
}

func TestGetHTTPTimeout(t *testing.T) {
	// config_test.yaml shortens the timeout for test runs.
	want := 2 * time.Second
	if got := GetHTTPTimeout(); got != want {
		t.Errorf("Expected timeout %v, got %v", want, got)
	}
}
