package integrationtest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
)

const resultsPage = `<html><body><div id="links">
<div class="result results_links results_links_deep web-result">
  <div class="links_main links_deep result__body">
    <h2 class="result__title"><a class="result__a" href="https://example.org/1">Primer resultado sobre %s</a></h2>
    <a class="result__snippet">Un resumen con <b>énfasis</b> parcial.</a>
    <div class="result__extras"><a class="result__url">example.org/1</a></div>
  </div>
</div>
<div class="result results_links results_links_deep web-result">
  <div class="links_main links_deep result__body">
    <h2 class="result__title"><a class="result__a" href="https://example.org/2">Segundo resultado</a></h2>
  </div>
</div>
</div></body></html>`

const madridGeocodeBody = `{"results":[{"name":"Madrid","country":"España","latitude":40.4165,"longitude":-3.7026,"timezone":"Europe/Madrid","population":3255944}]}`

const emptyGeocodeBody = `{"generationtime_ms":0.4}`

const madridWeatherBody = `{"latitude":40.4165,"longitude":-3.7026,"current":{"time":"2024-05-12T16:00","temperature_2m":18.3,"apparent_temperature":17.1,"relative_humidity_2m":62,"wind_speed_10m":9.4,"weather_code":3}}`

const noCurrentBody = `{"latitude":0.0,"longitude":0.0,"timezone":"GMT"}`

// newSearchServer fakes the HTML search endpoint.
func newSearchServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch q := r.URL.Query().Get("q"); q {
		case "sin resultados":
			fmt.Fprint(w, "<html><body></body></html>")
		case "bloqueado":
			http.Error(w, "blocked", http.StatusForbidden)
		default:
			fmt.Fprintf(w, resultsPage, q)
		}
	}))
}

// newGeocodingServer fakes the geocoding endpoint; only Madrid resolves.
func newGeocodingServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("name") == "Madrid" {
			fmt.Fprint(w, madridGeocodeBody)
			return
		}
		fmt.Fprint(w, emptyGeocodeBody)
	}))
}

// newWeatherServer fakes the forecast endpoint; the 0,0 pair yields a
// response without a "current" object.
func newWeatherServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("latitude") == "0.0000" {
			fmt.Fprint(w, noCurrentBody)
			return
		}
		fmt.Fprint(w, madridWeatherBody)
	}))
}
