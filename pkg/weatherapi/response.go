package weatherapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	// Packages
	schema "github.com/sysnetvision/go-clima/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - OPENWEATHERMAP WIRE FORMAT

// currentResponse is the raw response from GET /weather
type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main    owmMain `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility *int `json:"visibility,omitempty"`
	Coord      struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
}

// forecastResponse is the raw response from GET /forecast
type forecastResponse struct {
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
	List []forecastItem `json:"list"`
}

// forecastItem is a single three-hourly measurement
type forecastItem struct {
	DtTxt   string  `json:"dt_txt"`
	Main    owmMain `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// owmMain carries the temperature block shared by both endpoints
type owmMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

///////////////////////////////////////////////////////////////////////////////
// TYPES - REPORTS

// Report is a normalized current weather record. The Error flag is set
// when the upstream request failed, in which case Message describes the
// failure and the remaining fields are empty.
type Report struct {
	Error       bool         `json:"error"`
	Message     string       `json:"message,omitempty"`
	City        string       `json:"ciudad,omitempty"`
	Country     string       `json:"pais,omitempty"`
	Temperature string       `json:"temperatura,omitempty"`
	FeelsLike   string       `json:"sensacion_termica,omitempty"`
	Humidity    string       `json:"humedad,omitempty"`
	Pressure    string       `json:"presion,omitempty"`
	Description string       `json:"descripcion,omitempty"`
	WindSpeed   string       `json:"velocidad_viento,omitempty"`
	Visibility  string       `json:"visibilidad,omitempty"`
	Coordinates *Coordinates `json:"coordenadas,omitempty"`
}

// Coordinates is a geographic location
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ForecastReport is a normalized forecast record with one entry per day
type ForecastReport struct {
	Error    bool            `json:"error"`
	Message  string          `json:"message,omitempty"`
	City     string          `json:"ciudad,omitempty"`
	Country  string          `json:"pais,omitempty"`
	Forecast []ForecastEntry `json:"pronostico,omitempty"`
}

// ForecastEntry is the forecast for a single day
type ForecastEntry struct {
	Date        string `json:"fecha"`
	Temperature string `json:"temperatura"`
	Description string `json:"descripcion"`
	Humidity    string `json:"humedad"`
	WindSpeed   string `json:"velocidad_viento"`
}

///////////////////////////////////////////////////////////////////////////////
// REPORT CONVERSION

// reportFromResponse normalizes a raw current weather response
func reportFromResponse(resp *currentResponse) *Report {
	report := &Report{
		City:        resp.Name,
		Country:     resp.Sys.Country,
		Temperature: formatTemperature(resp.Main.Temp),
		FeelsLike:   formatTemperature(resp.Main.FeelsLike),
		Humidity:    fmt.Sprintf("%d%%", resp.Main.Humidity),
		Pressure:    fmt.Sprintf("%d hPa", resp.Main.Pressure),
		WindSpeed:   formatWindSpeed(resp.Wind.Speed),
		Visibility:  formatVisibility(resp.Visibility),
		Coordinates: &Coordinates{Lat: resp.Coord.Lat, Lon: resp.Coord.Lon},
	}
	if len(resp.Weather) > 0 {
		report.Description = titleCase(resp.Weather[0].Description)
	}
	return report
}

// forecastReportFromResponse normalizes a raw forecast response, keeping
// one measurement per day
func forecastReportFromResponse(resp *forecastResponse, days int) *ForecastReport {
	report := &ForecastReport{
		City:    resp.City.Name,
		Country: resp.City.Country,
	}
	for i := 0; i < len(resp.List) && i < days*measurementsPerDay; i += measurementsPerDay {
		item := resp.List[i]
		entry := ForecastEntry{
			Date:        item.DtTxt,
			Temperature: formatTemperature(item.Main.Temp),
			Humidity:    fmt.Sprintf("%d%%", item.Main.Humidity),
			WindSpeed:   formatWindSpeed(item.Wind.Speed),
		}
		if len(item.Weather) > 0 {
			entry.Description = titleCase(item.Weather[0].Description)
		}
		report.Forecast = append(report.Forecast, entry)
	}
	return report
}

// errorReport folds a request failure into a Report. Transport failures
// are reported as connection errors, anything else carries the upstream
// error text which includes the HTTP status.
func errorReport(err error) *Report {
	return &Report{
		Error:   true,
		Message: errorMessage(err),
	}
}

// forecastErrorReport folds a request failure into a ForecastReport
func forecastErrorReport(err error) *ForecastReport {
	return &ForecastReport{
		Error:   true,
		Message: errorMessage(err),
	}
}

func errorMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return "Error de conexión: " + err.Error()
	}
	return "Error: " + err.Error()
}

///////////////////////////////////////////////////////////////////////////////
// FORMATTING

// formatTemperature renders a temperature in Celsius to one decimal place
func formatTemperature(v float64) string {
	return fmt.Sprintf("%.1f°C", v)
}

// formatWindSpeed renders a wind speed in metres per second
func formatWindSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " m/s"
}

// formatVisibility renders a visibility in metres, or "N/A" when the
// measurement is absent
func formatVisibility(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d m", *v)
}

// titleCase capitalizes the first letter of each word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r := []rune(word)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Report) String() string {
	return schema.Stringify(r)
}

func (r ForecastReport) String() string {
	return schema.Stringify(r)
}
