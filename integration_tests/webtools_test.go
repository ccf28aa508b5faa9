package integrationtest

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/jarias/webtools/internal/config"
	"github.com/jarias/webtools/internal/service"
)

type WebToolsTestSuite struct {
	suite.Suite
	searchServer  *httptest.Server
	geoServer     *httptest.Server
	weatherServer *httptest.Server
	search        service.SearchService
	weather       service.WeatherService
}

func (suite *WebToolsTestSuite) SetupSuite() {
	suite.searchServer = newSearchServer()
	suite.geoServer = newGeocodingServer()
	suite.weatherServer = newWeatherServer()

	viper.Set("search.url", suite.searchServer.URL)
	viper.Set("geocoding.url", suite.geoServer.URL)
	viper.Set("weather.url", suite.weatherServer.URL)
	config.ReloadConfigForTest()

	suite.search = service.NewSearchService(nil, nil)
	suite.weather = service.NewWeatherService(nil, nil)
}

func (suite *WebToolsTestSuite) TearDownSuite() {
	if suite.searchServer != nil {
		suite.searchServer.Close()
	}
	if suite.geoServer != nil {
		suite.geoServer.Close()
	}
	if suite.weatherServer != nil {
		suite.weatherServer.Close()
	}
}

func TestWebToolsTestSuite(t *testing.T) {
	suite.Run(t, new(WebToolsTestSuite))
}

func (suite *WebToolsTestSuite) TestSearchPipeline() {
	out := suite.search.Search(context.Background(), "golang")

	assert.Contains(suite.T(), out, `Resultados para "golang":`)
	assert.Contains(suite.T(), out, "1. Primer resultado sobre golang")
	assert.Contains(suite.T(), out, "Un resumen con énfasis parcial.")
	assert.Contains(suite.T(), out, "example.org/1")
	assert.Contains(suite.T(), out, "2. Segundo resultado")
}

func (suite *WebToolsTestSuite) TestSearchNoResults() {
	out := suite.search.Search(context.Background(), "sin resultados")
	assert.Equal(suite.T(), "No se encontraron resultados. Prueba con otras palabras clave.", out)
}

func (suite *WebToolsTestSuite) TestSearchUpstreamFailure() {
	out := suite.search.Search(context.Background(), "bloqueado")
	assert.Contains(suite.T(), out, "403")
	assert.Contains(suite.T(), out, suite.searchServer.URL)
}

func (suite *WebToolsTestSuite) TestMadridLookup() {
	out := suite.weather.LookupByName(context.Background(), "Madrid")

	assert.Contains(suite.T(), out, "⛅ Madrid, España")
	assert.Contains(suite.T(), out, "Condición: Nublado")
	assert.Contains(suite.T(), out, "Temperatura: 18.3°C (sensación térmica: 17.1°C)")
	assert.Contains(suite.T(), out, "Humedad: 62%")
	assert.Contains(suite.T(), out, "Coordenadas: 40.4165, -3.7026")
}

func (suite *WebToolsTestSuite) TestLookupUnknownPlace() {
	out := suite.weather.LookupByName(context.Background(), "Xyzzy")
	assert.Contains(suite.T(), out, "Xyzzy")
	assert.Contains(suite.T(), out, "país")
}

func (suite *WebToolsTestSuite) TestResolveCoordinates() {
	out := suite.weather.ResolveCoordinates(context.Background(), "Madrid")
	assert.Contains(suite.T(), out, "1. Madrid, España (40.4165, -3.7026)")
}

func (suite *WebToolsTestSuite) TestResolveCoordinatesNotFound() {
	out := suite.weather.ResolveCoordinates(context.Background(), "Xyzzy")
	assert.Contains(suite.T(), out, "Xyzzy")
	assert.Contains(suite.T(), out, emptyGeocodeBody)
}

func (suite *WebToolsTestSuite) TestWeatherWithoutCurrentBlock() {
	out := suite.weather.CurrentWeather(context.Background(), 0, 0, "")
	assert.Contains(suite.T(), out, noCurrentBody)
}
