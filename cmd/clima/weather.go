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

type WeatherCommand struct {
	City      string   `arg:"" optional:"" help:"City name"`
	Country   string   `help:"Two-letter country code (e.g. 'ES')"`
	Latitude  *float64 `help:"Latitude, used with --longitude instead of a city"`
	Longitude *float64 `help:"Longitude, used with --latitude instead of a city"`
	JSON      bool     `help:"Output the report as JSON"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *WeatherCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "WeatherCommand",
		attribute.String("city", cmd.City),
	)
	defer func() { endSpan(err) }()

	// Create the client
	client, err := ctx.WeatherClient()
	if err != nil {
		return err
	}

	// Fetch the report by city or by coordinates
	var report *weatherapi.Report
	switch {
	case cmd.Latitude != nil && cmd.Longitude != nil:
		report = client.CurrentByCoordinates(parent, &weatherapi.CoordinatesWeatherRequest{
			Latitude:  *cmd.Latitude,
			Longitude: *cmd.Longitude,
		})
	case cmd.City != "":
		report = client.Current(parent, &weatherapi.CurrentWeatherRequest{
			City:        cmd.City,
			CountryCode: cmd.Country,
		})
	default:
		return clima.ErrBadParameter.With("a city or a latitude and longitude is required")
	}
	if report.Error {
		return clima.ErrUpstream.With(report.Message)
	}

	// Print the report
	if cmd.JSON {
		fmt.Println(report)
		return nil
	}
	fmt.Printf("Clima en %s, %s\n", report.City, report.Country)
	fmt.Printf("  Temperatura: %s\n", report.Temperature)
	fmt.Printf("  Sensación térmica: %s\n", report.FeelsLike)
	fmt.Printf("  Humedad: %s\n", report.Humidity)
	fmt.Printf("  Presión: %s\n", report.Pressure)
	fmt.Printf("  Viento: %s\n", report.WindSpeed)
	fmt.Printf("  Visibilidad: %s\n", report.Visibility)
	fmt.Printf("  Descripción: %s\n", report.Description)
	return nil
}
