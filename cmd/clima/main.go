package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	clima "github.com/sysnetvision/go-clima"
	agent "github.com/sysnetvision/go-clima/pkg/agent"
	openai "github.com/sysnetvision/go-clima/pkg/openai"
	tool "github.com/sysnetvision/go-clima/pkg/tool"
	weatherapi "github.com/sysnetvision/go-clima/pkg/weatherapi"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Credentials
	OpenAI      `embed:"" help:"OpenAI configuration"`
	OpenWeather `embed:"" help:"OpenWeatherMap configuration"`

	// Context
	ctx      context.Context
	tracer   trace.Tracer
	defaults *Defaults
}

type OpenAI struct {
	OpenAIKey string `env:"OPENAI_API_KEY" help:"OpenAI API Key"`
}

type OpenWeather struct {
	WeatherKey string `env:"OPENWEATHER_API_KEY" help:"OpenWeatherMap API Key"`
}

type CLI struct {
	Globals

	// Commands
	Chat     ChatCommand     `cmd:"" help:"Send a message to the assistant"`
	Ask      AskCommand      `cmd:"" help:"Ask the assistant, with weather tools available"`
	Weather  WeatherCommand  `cmd:"" help:"Return the current weather for a city or location"`
	Forecast ForecastCommand `cmd:"" help:"Return the weather forecast for a city"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	appName = "clima"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Load credentials from a .env file when present, before kong reads
	// the environment
	_ = godotenv.Load()

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather assistant command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.tracer = otel.Tracer(appName)

	// Load defaults
	defaults, err := NewDefaults(appName)
	if err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
	cli.Globals.defaults = defaults

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}

	// Persist defaults
	cmd.FatalIfErrorf(defaults.Save())
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generator returns an OpenAI client configured from the global flags
func (g *Globals) Generator() (*openai.Client, error) {
	if g.OpenAIKey == "" {
		return nil, clima.ErrConfiguration.With("OPENAI_API_KEY not set")
	}
	return openai.New(g.OpenAIKey, g.clientOpts()...)
}

// WeatherClient returns an OpenWeatherMap client configured from the global flags
func (g *Globals) WeatherClient() (*weatherapi.Client, error) {
	if g.WeatherKey == "" {
		return nil, clima.ErrConfiguration.With("OPENWEATHER_API_KEY not set")
	}
	return weatherapi.New(g.WeatherKey, g.clientOpts()...)
}

// Agent returns an agent with the weather toolkit registered
func (g *Globals) Agent() (*agent.Agent, error) {
	generator, err := g.Generator()
	if err != nil {
		return nil, err
	}
	if g.WeatherKey == "" {
		return nil, clima.ErrConfiguration.With("OPENWEATHER_API_KEY not set")
	}
	tools, err := weatherapi.NewTools(g.WeatherKey, g.clientOpts()...)
	if err != nil {
		return nil, err
	}
	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		return nil, err
	}
	return agent.New(generator, toolkit)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	return result
}

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
