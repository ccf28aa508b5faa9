package model

// WeatherReading holds the current conditions at one coordinate pair.
// Icon and description are derived from WeatherCode on render, never stored.
type WeatherReading struct {
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	HumidityPct  int     `json:"humidity_pct"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	WeatherCode  int     `json:"weather_code"`
}

// ForecastResponse is the envelope returned by the weather API. Current is a
// pointer so a response without a "current" object is distinguishable from
// one with zeroed values; a nil Current means the reading is invalid.
type ForecastResponse struct {
	Current *CurrentConditions `json:"current"`
}

// CurrentConditions mirrors the upstream "current" object field names.
type CurrentConditions struct {
	Temperature         float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	RelativeHumidity    int     `json:"relative_humidity_2m"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WeatherCode         int     `json:"weather_code"`
}
