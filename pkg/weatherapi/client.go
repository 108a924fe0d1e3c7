/*
weatherapi implements an API client for the OpenWeatherMap API
https://openweathermap.org/api
*/
package weatherapi

import (
	"context"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	clima "github.com/sysnetvision/go-clima"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint       = "https://api.openweathermap.org/data/2.5"
	defaultTimeout = 10 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new OpenWeatherMap client with the given API key
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if apiKey == "" {
		return nil, clima.ErrConfiguration.With("missing API key")
	}

	// Create client. Caller options may override the defaults, which
	// allows pointing the client at a different endpoint.
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptTimeout(defaultTimeout),
	}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    apiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current weather for a city. Failures are folded
// into the returned report rather than returned as an error, so the
// report can be handed back to a caller as-is.
func (c *Client) Current(ctx context.Context, req *CurrentWeatherRequest) *Report {
	var response currentResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("weather"), client.OptQuery(req.Values(c.key))); err != nil {
		return errorReport(err)
	}
	return reportFromResponse(&response)
}

// CurrentByCoordinates returns the current weather for a geographic location
func (c *Client) CurrentByCoordinates(ctx context.Context, req *CoordinatesWeatherRequest) *Report {
	var response currentResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("weather"), client.OptQuery(req.Values(c.key))); err != nil {
		return errorReport(err)
	}
	return reportFromResponse(&response)
}

// Forecast returns a forecast for a city, one entry per day
func (c *Client) Forecast(ctx context.Context, req *ForecastWeatherRequest) *ForecastReport {
	var response forecastResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values(c.key))); err != nil {
		return forecastErrorReport(err)
	}
	return forecastReportFromResponse(&response, req.days())
}
