package weatherapi

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	clima "github.com/sysnetvision/go-clima"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentWeather struct {
	client *Client
}

type weatherByCoordinates struct {
	client *Client
}

type forecastWeather struct {
	client *Client
}

var _ tool.Tool = (*currentWeather)(nil)
var _ tool.Tool = (*weatherByCoordinates)(nil)
var _ tool.Tool = (*forecastWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns a slice of weather tools for use with LLM agents
func NewTools(apiKey string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	// Create a client
	client, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}

	return []tool.Tool{
		&currentWeather{client: client},
		&weatherByCoordinates{client: client},
		&forecastWeather{client: client},
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return "current_weather"
}

func (*currentWeather) Description() string {
	return "Get current weather conditions for a city including temperature, humidity, pressure and wind."
}

// Return the JSON schema for the tool input
func (*currentWeather) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[CurrentWeatherRequest](nil)
	if err != nil {
		return nil, err
	}
	schema.Required = []string{"city"}
	return schema, nil
}

// Run the tool with the given input
func (c *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, clima.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.City == "" {
		return nil, clima.ErrBadParameter.With("city is required")
	}

	return c.client.Current(ctx, &req), nil
}

///////////////////////////////////////////////////////////////////////////////
// WEATHER BY COORDINATES

func (*weatherByCoordinates) Name() string {
	return "weather_by_coordinates"
}

func (*weatherByCoordinates) Description() string {
	return "Get current weather conditions for a geographic location given its latitude and longitude."
}

// Return the JSON schema for the tool input
func (*weatherByCoordinates) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[CoordinatesWeatherRequest](nil)
	if err != nil {
		return nil, err
	}
	schema.Required = []string{"latitude", "longitude"}
	return schema, nil
}

// Run the tool with the given input
func (w *weatherByCoordinates) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CoordinatesWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, clima.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	return w.client.CurrentByCoordinates(ctx, &req), nil
}

///////////////////////////////////////////////////////////////////////////////
// FORECAST WEATHER

func (*forecastWeather) Name() string {
	return "forecast_weather"
}

func (*forecastWeather) Description() string {
	return "Get the weather forecast for a city for up to five days, one entry per day."
}

// Return the JSON schema for the tool input
func (*forecastWeather) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[ForecastWeatherRequest](nil)
	if err != nil {
		return nil, err
	}
	schema.Required = []string{"city"}

	// Add validation constraints for days
	if daysField, ok := schema.Properties["days"]; ok && daysField != nil {
		min := float64(1)
		max := float64(MaxForecastDays)
		daysField.Minimum = &min
		daysField.Maximum = &max
	}

	return schema, nil
}

// Run the tool with the given input
func (f *forecastWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ForecastWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, clima.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Validate required fields
	if req.City == "" {
		return nil, clima.ErrBadParameter.With("city is required")
	}

	return f.client.Forecast(ctx, &req), nil
}
