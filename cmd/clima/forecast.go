package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clima "github.com/sysnetvision/go-clima"
	weatherapi "github.com/sysnetvision/go-clima/pkg/weatherapi"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ForecastCommand struct {
	City    string `arg:"" help:"City name"`
	Country string `help:"Two-letter country code (e.g. 'ES')"`
	Days    int    `help:"Number of days to forecast (1-5)" default:"5"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ForecastCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ForecastCommand",
		attribute.String("city", cmd.City),
		attribute.Int("days", cmd.Days),
	)
	defer func() { endSpan(err) }()

	// Validate arguments
	if cmd.Days < 1 || cmd.Days > weatherapi.MaxForecastDays {
		return clima.ErrBadParameter.Withf("days must be between 1 and %d", weatherapi.MaxForecastDays)
	}

	// Create the client
	client, err := ctx.WeatherClient()
	if err != nil {
		return err
	}

	// Fetch the forecast
	report := client.Forecast(parent, &weatherapi.ForecastWeatherRequest{
		City:        cmd.City,
		CountryCode: cmd.Country,
		Days:        cmd.Days,
	})
	if report.Error {
		return clima.ErrUpstream.With(report.Message)
	}

	// Print the forecast
	fmt.Printf("Pronóstico para %s, %s\n", report.City, report.Country)
	for _, entry := range report.Forecast {
		fmt.Printf("  %s  %s  %s  %s  %s\n",
			entry.Date, entry.Temperature, entry.Humidity, entry.WindSpeed, entry.Description)
	}
	return nil
}
