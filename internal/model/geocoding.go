package model

// GeocodeCandidate is one match for a place name. Ambiguous names yield
// several candidates in upstream ranking order.
type GeocodeCandidate struct {
	Name      string  `json:"name"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeocodingResponse is the envelope returned by the geocoding API. The
// upstream payload carries more fields per result; only the ones the
// pipeline uses are decoded.
type GeocodingResponse struct {
	Results []GeocodeCandidate `json:"results"`
}
