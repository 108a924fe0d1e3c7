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

type AskCommand struct {
	Prompt string `arg:"" help:"Question to ask the assistant"`
	Model  string `help:"Model to use (defaults to the last model used)" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	askSystemPrompt = "Eres un asistente que entrega datos sobre el clima del mundo en tiempo real usando las funciones de clima disponibles."
	askDefaultModel = "gpt-4o"
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	// Load the stored model when not explicitly set
	if cmd.Model == "" {
		cmd.Model = ctx.defaults.GetString("model")
	}
	if cmd.Model == "" {
		cmd.Model = askDefaultModel
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand",
		attribute.String("model", cmd.Model),
	)
	defer func() { endSpan(err) }()

	// Create the agent with the weather toolkit
	agent, err := ctx.Agent()
	if err != nil {
		return err
	}

	// Store the model as a default
	ctx.defaults.Set("model", cmd.Model)

	// Run the exchange
	session := schema.Conversation{}
	message := schema.NewMessage(schema.RoleUser, cmd.Prompt)
	response, err := agent.Run(parent, cmd.Model, &session, message,
		openai.WithSystemPrompt(askSystemPrompt),
	)
	if err != nil {
		return err
	}

	// Print the response
	printMarkdown(response.Text())
	return nil
}
