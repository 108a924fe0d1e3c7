package weatherapi

import (
	"fmt"
	"net/url"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentWeatherRequest defines the input for a current weather query
type CurrentWeatherRequest struct {
	City        string `json:"city" jsonschema:"Name of the city"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"Two-letter country code (e.g. 'ES', 'US')"`
}

// CoordinatesWeatherRequest defines the input for a weather query by location
type CoordinatesWeatherRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location"`
}

// ForecastWeatherRequest defines the input for a forecast query
type ForecastWeatherRequest struct {
	City        string `json:"city" jsonschema:"Name of the city"`
	CountryCode string `json:"country_code,omitempty" jsonschema:"Two-letter country code (e.g. 'ES', 'US')"`
	Days        int    `json:"days,omitempty" jsonschema:"Number of days to forecast (1-5)"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The forecast endpoint returns one measurement every three hours
	measurementsPerDay = 8

	// Maximum number of forecast days supported
	MaxForecastDays = 5
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentWeatherRequest to URL query parameters
func (r *CurrentWeatherRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("q", r.query())
	result.Set("appid", apiKey)
	result.Set("units", "metric")
	result.Set("lang", "es")
	return result
}

// Values converts CoordinatesWeatherRequest to URL query parameters
func (r *CoordinatesWeatherRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("lat", strconv.FormatFloat(r.Latitude, 'f', -1, 64))
	result.Set("lon", strconv.FormatFloat(r.Longitude, 'f', -1, 64))
	result.Set("appid", apiKey)
	result.Set("units", "metric")
	result.Set("lang", "es")
	return result
}

// Values converts ForecastWeatherRequest to URL query parameters
func (r *ForecastWeatherRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("q", (&CurrentWeatherRequest{City: r.City, CountryCode: r.CountryCode}).query())
	result.Set("appid", apiKey)
	result.Set("units", "metric")
	result.Set("lang", "es")
	result.Set("cnt", fmt.Sprint(r.days()*measurementsPerDay))
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// days returns the requested number of days, clamped to the supported range
func (r *ForecastWeatherRequest) days() int {
	if r.Days < 1 || r.Days > MaxForecastDays {
		return MaxForecastDays
	}
	return r.Days
}

func (r *CurrentWeatherRequest) query() string {
	if r.CountryCode != "" {
		return r.City + "," + r.CountryCode
	}
	return r.City
}
