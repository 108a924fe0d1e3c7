package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	openai "github.com/sysnetvision/go-clima/pkg/openai"
	schema "github.com/sysnetvision/go-clima/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCommand struct {
	Message     string  `arg:"" optional:"" help:"Message to send" default:"Hola como estas?."`
	Model       string  `help:"Model to use (defaults to the last model used)" optional:""`
	Temperature float64 `help:"Sampling temperature" default:"0.7"`
	MaxTokens   uint    `help:"Maximum tokens to generate" default:"100"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	systemPrompt = "Eres un asistente experto de la app SysNetVision presentate como tal."
	defaultModel = "gpt-3.5-turbo"
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCommand) Run(ctx *Globals) (err error) {
	// Load the stored model when not explicitly set
	if cmd.Model == "" {
		cmd.Model = ctx.defaults.GetString("model")
	}
	if cmd.Model == "" {
		cmd.Model = defaultModel
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand",
		attribute.String("model", cmd.Model),
	)
	defer func() { endSpan(err) }()

	// Create the generator
	generator, err := ctx.Generator()
	if err != nil {
		return err
	}

	// Store the model as a default
	ctx.defaults.Set("model", cmd.Model)

	// Send the message
	message := schema.NewMessage(schema.RoleUser, cmd.Message)
	response, err := generator.WithoutSession(parent, cmd.Model, message,
		openai.WithSystemPrompt(systemPrompt),
		openai.WithTemperature(cmd.Temperature),
		openai.WithMaxTokens(cmd.MaxTokens),
	)
	if err != nil {
		return err
	}

	// Print the response
	printMarkdown(response.Text())
	return nil
}
